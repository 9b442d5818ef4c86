package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"os"
	"time"

	"go.lepak.sg/adt/tree/binary"
)

var (
	seed     = flag.Int64("s", 0, "seed (default current unix time in ns)")
	num      = flag.Int("n", 10, "number of nodes in the tree")
	balanced = flag.Bool("b", false, "if true, keep building the tree until it is balanced")
	workers  = flag.Int("w", 1, "number of goroutines building trees with -b")
	timeout  = flag.Duration("t", 10*time.Second, "give up on -b after this long")
)

func main() {
	flag.Parse()

	if *seed == 0 {
		*seed = time.Now().UnixNano()
	}

	var tr *binary.Tree[int]
	attempts := 0

	if *balanced {
		ctx, cancel := context.WithTimeout(context.Background(), *timeout)
		defer cancel()

		var err error
		tr, attempts, err = binary.BuildRandomBalanced(ctx, *num, *seed, *workers)
		if err != nil {
			log.Fatalf("no balanced tree after %d attempts: %v", attempts, err)
		}
	} else {
		tr = binary.BuildRandom(*num, *seed)
	}

	fmt.Print("preorder: ")
	if err := tr.DisplayPreorder(os.Stdout); err != nil {
		log.Fatal(err)
	}

	inorder := make([]int, 0, *num)
	for n := range tr.InOrderCoroutine().Items() {
		inorder = append(inorder, n)
	}

	fmt.Println("inorder:", inorder)

	fmt.Println("tree:")
	fmt.Println(tr.String())

	fmt.Println("height:", tr.Height(), "ideal:", binary.IdealHeight(tr.Len()))

	if ok, err := tr.Balanced(); err != nil {
		fmt.Println("balanced:", err)
	} else {
		fmt.Println("balanced:", ok)
	}

	if *balanced {
		fmt.Println("attempts:", attempts)
	}
	fmt.Println("seed:", *seed)
}
