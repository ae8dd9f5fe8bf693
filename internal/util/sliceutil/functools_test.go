package sliceutil

import (
	"strconv"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestMap(t *testing.T) {
	assert.Equal(t, []string{"1", "2", "3"}, Map([]int{1, 2, 3}, strconv.Itoa))
	assert.Empty(t, Map([]int(nil), strconv.Itoa))
}

func TestFilterMap(t *testing.T) {
	got := FilterMap([]int{1, 2, 3, 4}, func(v int) (int, bool) { return v * 10, v%2 == 0 })
	assert.Equal(t, []int{20, 40}, got)
}

func TestKeyBy(t *testing.T) {
	type item struct {
		k string
		v int
	}
	got := KeyBy([]item{{"a", 1}, {"b", 2}, {"a", 3}}, func(i item) string { return i.k })
	assert.Len(t, got, 2)
	assert.Equal(t, 3, got["a"].v)
	assert.Equal(t, 2, got["b"].v)
}
