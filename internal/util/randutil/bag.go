package randutil

import (
	"math/rand/v2"
)

// Bag holds distinct values and hands them out in random order.
type Bag[T comparable] struct {
	pos map[T]int
	v   []T
	rnd *rand.Rand
}

// NewBag creates a bag that draws using rnd. A nil rnd uses the global
// generator.
func NewBag[T comparable](rnd *rand.Rand) *Bag[T] {
	return &Bag[T]{pos: make(map[T]int), rnd: rnd}
}

func (b *Bag[T]) intN(n int) int {
	if b.rnd == nil {
		return rand.IntN(n)
	}
	return b.rnd.IntN(n)
}

// Add puts val into the bag. It returns false if val is already there.
func (b *Bag[T]) Add(val T) bool {
	if b.Has(val) {
		return false
	}
	b.pos[val] = len(b.v)
	b.v = append(b.v, val)
	return true
}

func (b *Bag[T]) Has(val T) bool {
	_, ok := b.pos[val]
	return ok
}

func (b *Bag[T]) Len() int {
	return len(b.v)
}

// Take removes a random value from the bag. It returns false if the bag is
// empty.
func (b *Bag[T]) Take() (T, bool) {
	if len(b.v) == 0 {
		var zero T
		return zero, false
	}
	idx := b.intN(len(b.v))
	val := b.v[idx]
	tail := len(b.v) - 1
	if idx != tail {
		b.v[idx] = b.v[tail]
		b.pos[b.v[idx]] = idx
	}
	b.v = b.v[:tail]
	delete(b.pos, val)
	return val, true
}

// Deal takes every value out of the bag and spreads them over n hands in
// round-robin order, so hand sizes differ by at most one.
func (b *Bag[T]) Deal(n int) [][]T {
	if n <= 0 {
		return nil
	}
	hands := make([][]T, n)
	for i := 0; b.Len() != 0; i = (i + 1) % n {
		val, _ := b.Take()
		hands[i] = append(hands[i], val)
	}
	return hands
}
