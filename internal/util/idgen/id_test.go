package idgen

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
)

func TestIDUnique(t *testing.T) {
	seen := make(map[uuid.UUID]struct{})
	for range 10_000 {
		id := ID()
		_, ok := seen[id]
		require.False(t, ok, "duplicate id %v", id)
		seen[id] = struct{}{}
	}
}

func TestIDVersion(t *testing.T) {
	require.Equal(t, uuid.Version(7), ID().Version())
}

func TestSequence(t *testing.T) {
	a, b := uuid.New(), uuid.New()
	src := Sequence(a, b)
	require.Equal(t, a, src())
	require.Equal(t, b, src())
	require.NotEqual(t, uuid.Nil, src())
}
