package testutils

import (
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

// recorder collects failures instead of failing the real test.
type recorder struct {
	errors []string
}

func (r *recorder) Log(...any) {}

func (r *recorder) Logf(string, ...any) {}

func (r *recorder) Error(args ...any) {
	r.errors = append(r.errors, fmt.Sprint(args...))
}

func (r *recorder) Errorf(f string, args ...any) {
	r.errors = append(r.errors, fmt.Sprintf(f, args...))
}

func TestDrain(t *testing.T) {
	ch := make(chan int, 3)
	ch <- 1
	ch <- 2
	close(ch)

	r := &recorder{}
	Drain(r, []int{1, 2}, ch)
	assert.Empty(t, r.errors)
}

func TestDrain_Unclosed(t *testing.T) {
	ch := make(chan int, 1)
	ch <- 1

	r := &recorder{}
	Drain(r, []int{1}, ch)
	assert.Len(t, r.errors, 1)
}

func TestDrain_ClosedEarly(t *testing.T) {
	ch := make(chan int)
	close(ch)

	r := &recorder{}
	Drain(r, []int{1}, ch)
	assert.Len(t, r.errors, 1)
}

func TestDrainBlocking(t *testing.T) {
	ch := make(chan int)
	go func() {
		defer close(ch)
		for i := 1; i <= 3; i++ {
			ch <- i
		}
	}()

	r := &recorder{}
	DrainBlocking(r, []int{1, 2, 3}, ch, time.Second)
	assert.Empty(t, r.errors)
}

func TestDrainBlocking_Timeout(t *testing.T) {
	ch := make(chan int)

	r := &recorder{}
	DrainBlocking(r, []int{1}, ch, 10*time.Millisecond)
	assert.Len(t, r.errors, 1)
}
