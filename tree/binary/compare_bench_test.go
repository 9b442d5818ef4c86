package binary

import (
	"fmt"
	"math/rand"
	"testing"

	"github.com/emirpasic/gods/trees/redblacktree"
	"github.com/google/btree"
	"github.com/petar/GoLLRB/llrb"
)

// The other trees here are all self-balancing, so they show what
// an unbalanced tree costs on random and on sorted input.

var benchSizes = []int{100, 10000}

func benchKeys(size int, sorted bool) []int {
	keys := make([]int, size)
	for i := range keys {
		keys[i] = i
	}
	if !sorted {
		rd := rand.New(rand.NewSource(int64(size)))
		rd.Shuffle(size, func(i, j int) {
			keys[i], keys[j] = keys[j], keys[i]
		})
	}
	return keys
}

var sideEffect bool

func BenchmarkAddContainsRemove(b *testing.B) {
	for _, size := range benchSizes {
		for _, sorted := range []bool{false, true} {
			keys := benchKeys(size, sorted)
			name := fmt.Sprintf("size=%d/sorted=%t", size, sorted)

			b.Run(name+"/binary", func(b *testing.B) {
				b.ReportAllocs()
				for i := 0; i < b.N; i++ {
					tr := New[int]()
					for _, k := range keys {
						tr.Add(k)
					}
					for _, k := range keys {
						sideEffect = tr.Contains(k)
					}
					for _, k := range keys {
						tr.Remove(k)
					}
				}
			})

			b.Run(name+"/google-btree", func(b *testing.B) {
				b.ReportAllocs()
				for i := 0; i < b.N; i++ {
					tr := btree.NewOrderedG[int](32)
					for _, k := range keys {
						tr.ReplaceOrInsert(k)
					}
					for _, k := range keys {
						sideEffect = tr.Has(k)
					}
					for _, k := range keys {
						tr.Delete(k)
					}
				}
			})

			b.Run(name+"/gods-redblack", func(b *testing.B) {
				b.ReportAllocs()
				for i := 0; i < b.N; i++ {
					tr := redblacktree.NewWithIntComparator()
					for _, k := range keys {
						tr.Put(k, struct{}{})
					}
					for _, k := range keys {
						_, sideEffect = tr.Get(k)
					}
					for _, k := range keys {
						tr.Remove(k)
					}
				}
			})

			b.Run(name+"/llrb", func(b *testing.B) {
				b.ReportAllocs()
				for i := 0; i < b.N; i++ {
					tr := llrb.New()
					for _, k := range keys {
						tr.ReplaceOrInsert(llrb.Int(k))
					}
					for _, k := range keys {
						sideEffect = tr.Has(llrb.Int(k))
					}
					for _, k := range keys {
						tr.Delete(llrb.Int(k))
					}
				}
			})
		}
	}
}

func BenchmarkCopy(b *testing.B) {
	for _, size := range benchSizes {
		tr := FromSlice(benchKeys(size, false))
		b.Run(fmt.Sprintf("size=%d", size), func(b *testing.B) {
			b.ReportAllocs()
			for i := 0; i < b.N; i++ {
				trForBench = tr.Copy()
			}
		})
	}
}
