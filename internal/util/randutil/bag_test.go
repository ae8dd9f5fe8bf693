package randutil

import (
	"math/rand/v2"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBagStress(t *testing.T) {
	rnd := rand.New(rand.NewPCG(1, 2))
	b := NewBag[int64](rnd)
	actual := make(map[int64]struct{})
	const iters = 50_000
	const numbers = 20
	for range iters {
		v := rnd.Int64N(numbers)
		switch rnd.IntN(2) {
		case 0:
			_, had := actual[v]
			actual[v] = struct{}{}
			require.Equal(t, !had, b.Add(v), "add %v", v)
		case 1:
			if b.Len() == 0 {
				_, ok := b.Take()
				require.False(t, ok)
				continue
			}
			got, ok := b.Take()
			require.True(t, ok)
			_, had := actual[got]
			require.True(t, had, "unexpected take %v", got)
			delete(actual, got)
		default:
			panic("must not happen")
		}
		require.Equal(t, len(actual), b.Len())
		for v := range actual {
			require.True(t, b.Has(v))
		}
	}
}

func TestBagDeal(t *testing.T) {
	b := NewBag[string](rand.New(rand.NewPCG(3, 4)))
	for _, s := range []string{"a", "b", "c", "d", "e", "f", "g"} {
		b.Add(s)
	}
	hands := b.Deal(3)
	require.Len(t, hands, 3)
	assert.Len(t, hands[0], 3)
	assert.Len(t, hands[1], 2)
	assert.Len(t, hands[2], 2)
	assert.Zero(t, b.Len())

	seen := make(map[string]bool)
	for _, h := range hands {
		for _, s := range h {
			assert.False(t, seen[s], s)
			seen[s] = true
		}
	}
	assert.Len(t, seen, 7)

	assert.Nil(t, b.Deal(0))
}
