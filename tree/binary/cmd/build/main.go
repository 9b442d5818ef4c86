package main

import (
	"bufio"
	"fmt"
	"log"
	"os"
	"strconv"
	"strings"

	"go.lepak.sg/adt/tree/binary"
)

func main() {
	stdin := bufio.NewReader(os.Stdin)

	fmt.Print("in-order: ")
	in, err := readInts(stdin)
	if err != nil {
		log.Fatalf("read in-order: %v", err)
	}
	fmt.Println(in)

	fmt.Print("pre-order: ")
	pre, err := readInts(stdin)
	if err != nil {
		log.Fatalf("read pre-order: %v", err)
	}
	fmt.Println(pre)

	fmt.Print("mode (i/r): ")
	line, err := stdin.ReadString('\n')
	if err != nil {
		log.Fatalf("read mode: %v", err)
	}

	var impl func([]int, []int) (*binary.Tree[int], error)
	switch strings.TrimSpace(line) {
	case "i":
		// interesting...
		// actual type params of the function cannot be inferred
		// even though the variable has the fully instantiated type
		impl = binary.BuildFromPreAndInOrderIter[[]int, int]
	case "r":
		impl = binary.BuildFromPreAndInOrderRec[[]int, int]
	default:
		log.Fatalf("not a valid mode: %q", line)
	}

	tr, err := impl(pre, in)
	if err != nil {
		log.Fatalf("build: %v", err)
	}

	fmt.Println("tree:")
	fmt.Print(tr.String())
	fmt.Println("nodes:", tr.Len(), "height:", tr.Height())
}

// readInts reads one line of space-separated integers.
func readInts(r *bufio.Reader) ([]int, error) {
	raw, err := r.ReadString('\n')
	if err != nil {
		return nil, err
	}

	raws := strings.Fields(raw)
	out := make([]int, len(raws))

	for i, rawNum := range raws {
		num, err := strconv.Atoi(rawNum)
		if err != nil {
			return nil, fmt.Errorf("item %d: %w", i, err)
		}

		out[i] = num
	}
	return out, nil
}
