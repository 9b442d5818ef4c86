package binary

import (
	"context"
	"errors"
	"fmt"
	"math/bits"
	"math/rand"
	"sync"
	"sync/atomic"

	"go.lepak.sg/adt/tree"
	"golang.org/x/exp/constraints"
	"golang.org/x/exp/slices"
	"golang.org/x/sync/errgroup"
)

// IdealHeight returns the smallest possible height of a binary tree
// with num nodes.
func IdealHeight(num int) int {
	if num <= 0 {
		return 0
	}
	return bits.Len(uint(num))
}

func shuffledKeys(rd *rand.Rand, num int) []int {
	nodes := make([]int, num)
	for i := 0; i < num; i++ {
		nodes[i] = i
	}

	rd.Shuffle(num, func(i, j int) {
		nodes[i], nodes[j] = nodes[j], nodes[i]
	})

	return nodes
}

// BuildRandom builds a binary tree with num nodes.
// Node keys are in the range [0, num) and are inserted in a random order.
// The seed for the random insert order is a parameter,
// which ensures repeatable results.
func BuildRandom(num int, seed int64) *Tree[int] {
	rd := rand.New(rand.NewSource(seed))
	return FromSlice(shuffledKeys(rd, num))
}

// errFound stops the other workers once one of them has a balanced tree.
var errFound = errors.New("found")

// BuildRandomBalanced builds a balanced binary tree with num nodes.
// Node keys are in the range [0, num) and are inserted in a random order
// until Balanced reports true.
// Attempts are spread over workers goroutines, each with its own
// random source derived from seed. With one worker the result is
// repeatable for a given seed.
// Along the created binary tree, the total number of attempts made
// is also returned. If ctx is done before a balanced tree is found,
// the context's error is returned.
func BuildRandomBalanced(ctx context.Context, num int, seed int64, workers int) (*Tree[int], int, error) {
	if num <= 0 {
		return nil, 0, fmt.Errorf("build %d nodes: %w", num, ErrEmptyTree)
	}

	if workers < 1 {
		workers = 1
	}

	var (
		attempts int64
		result   *Tree[int]
		once     sync.Once
	)

	eg, ctx := errgroup.WithContext(ctx)
	for w := 0; w < workers; w++ {
		rd := rand.New(rand.NewSource(seed + int64(w)))

		eg.Go(func() error {
			for {
				select {
				case <-ctx.Done():
					return ctx.Err()
				default:
				}

				atomic.AddInt64(&attempts, 1)
				tr := BuildRandom(num, rd.Int63())

				// num > 0, so the tree is never empty
				if ok, _ := tr.Balanced(); ok {
					once.Do(func() {
						result = tr
					})
					return errFound
				}
			}
		})
	}

	err := eg.Wait()
	if !errors.Is(err, errFound) {
		return nil, int(atomic.LoadInt64(&attempts)), err
	}

	return result, int(atomic.LoadInt64(&attempts)), nil
}

// BuildFromPreAndInOrderIter iteratively builds a binary tree
// from its pre- and in-order traversal.
// The keys must be distinct and in must be sorted.
func BuildFromPreAndInOrderIter[S ~[]T, T constraints.Ordered](
	pre, in S) (*Tree[T], error) {
	// Iterative method. Time O(N^2) Space O(N) (1x nodes, 1x the inOrderMap)
	if err := checkTraversals(pre, in); err != nil {
		return nil, err
	}

	inOrderMap := make(map[T]int, len(in))
	for i, v := range in {
		inOrderMap[v] = i
	}

	for _, v := range pre {
		if _, ok := inOrderMap[v]; !ok {
			return nil, errors.New("pre-order key not found in in-order traversal")
		}
	}

	tr := &Tree[T]{root: tree.NodeOf(pre[0])}

	for _, toInsert := range pre[1:] {
		// The idea: walk down the tree to find where toInsert should go
		current, parent := tr.root, (*tree.Node[T])(nil)

		toInsertIdx := inOrderMap[toInsert]

		var result tree.Order
		for current != nil {
			currentKeyIdx, ok := inOrderMap[current.Key]
			if !ok {
				// This is actually impossible as
				// every pre-order key was checked above
				panic("current node key not found in in-order traversal")
			}
			// not actually tree-related, this Compare function is just handy
			result = tree.Compare(toInsertIdx, currentKeyIdx)
			switch result {
			case tree.Less:
				// toInsert is first - go left
				current, parent = current.Left, current
			case tree.Greater:
				// current node key is first - go right
				current, parent = current.Right, current
			default:
				// since we've already checked that the in-order traversal
				// doesn't contain any duplicate keys while building inOrderMap,
				// this can only be caused by:
				return nil, errors.New("duplicated key in pre-order traversal")
			}
		}

		switch result {
		case tree.Less:
			parent.SetLeft(tree.NodeOf(toInsert))
		case tree.Greater:
			parent.SetRight(tree.NodeOf(toInsert))
		default:
			panic("unreachable")
		}
	}

	// Every pre-order is accepted by the walk above, even ones that
	// cannot come from a tree with this in-order traversal.
	if !slices.Equal(tr.PreOrderSlice(), []T(pre)) {
		return nil, errors.New("pre-order key not found in in-order traversal")
	}

	return tr, nil
}

// BuildFromPreAndInOrderRec recursively builds a binary tree
// from its pre- and in-order traversal.
// The keys must be distinct and in must be sorted.
func BuildFromPreAndInOrderRec[S ~[]T, T constraints.Ordered](
	pre, in S) (tr *Tree[T], err error) {
	// Recursive method. Time O(N^2) Space O(N) (stack frames)
	if err := checkTraversals(pre, in); err != nil {
		return nil, err
	}

	// the visit panics on inconsistent input rather than threading
	// errors through every frame
	defer func() {
		r := recover()
		if r == nil {
			return
		}
		if rerr, ok := r.(traversalError); ok {
			tr, err = nil, rerr
			return
		}
		panic(r)
	}()

	tr = &Tree[T]{root: buildFromPreAndInOrderRecVisit(pre, in)}

	return tr, nil
}

type traversalError string

func (e traversalError) Error() string {
	return string(e)
}

func checkTraversals[S ~[]T, T constraints.Ordered](pre, in S) error {
	if len(in) == 0 {
		return errors.New("nothing to build")
	}

	if len(in) != len(pre) {
		return errors.New("pre- and in-order traversals have different lengths")
	}

	seen := make(map[T]struct{}, len(in))
	for _, v := range in {
		if _, ok := seen[v]; ok {
			return errors.New("duplicated key in in-order traversal")
		}
		seen[v] = struct{}{}
	}

	if !slices.IsSorted(in) {
		return errors.New("in-order traversal is not sorted")
	}

	return nil
}

func buildFromPreAndInOrderRecVisit[S ~[]T, T constraints.Ordered](
	pre, in S) *tree.Node[T] {
	// N = len(pre) = len(in)
	// At least N calls to this function

	if len(pre) != len(in) {
		panic(fmt.Sprintf("invariant broken: "+
			"(len(pre) == %d) != (len(in) == %d)", len(pre), len(in)))
	}

	if len(pre) == 0 {
		return nil
	}

	if len(pre) == 1 {
		if in[0] != pre[0] {
			panic(traversalError("pre-order key not found in in-order traversal"))
		}

		return tree.NodeOf(pre[0])
	}

	x := pre[0]
	// O(N) but this gets smaller
	xi := slices.Index(in, x)
	if xi < 0 {
		panic(traversalError("pre-order key not found in in-order traversal"))
	}

	inleft, inright := in[0:xi], in[xi+1:]

	preleft, preright := pre[1:xi+1], pre[xi+1:]

	n := tree.NodeOf(x)
	n.SetLeft(buildFromPreAndInOrderRecVisit(preleft, inleft))
	n.SetRight(buildFromPreAndInOrderRecVisit(preright, inright))

	return n
}
