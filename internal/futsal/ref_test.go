package futsal

import (
	"errors"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRef(t *testing.T) {
	var zero Ref
	assert.False(t, zero.IsAssigned())
	assert.Equal(t, Unassigned(), zero)
	assert.Empty(t, zero.String())

	id := uuid.New()
	r := Existing(id)
	got, ok := r.ID()
	require.True(t, ok)
	assert.Equal(t, id, got)
	assert.Equal(t, id.String(), r.String())
}

func TestParseRef(t *testing.T) {
	r, err := ParseRef("")
	require.NoError(t, err)
	assert.False(t, r.IsAssigned())

	r, err = ParseRef("   ")
	require.NoError(t, err)
	assert.False(t, r.IsAssigned())

	id := uuid.New()
	r, err = ParseRef(id.String())
	require.NoError(t, err)
	assert.Equal(t, Existing(id), r)

	_, err = ParseRef("not-an-id")
	require.ErrorIs(t, err, ErrInvalidID)
}

func TestParseID(t *testing.T) {
	for _, s := range []string{"", "123", "zzzzzzzz-zzzz-zzzz-zzzz-zzzzzzzzzzzz", uuid.Nil.String()} {
		_, err := ParseID("tournament", s)
		require.Error(t, err, "input %q", s)
		assert.True(t, errors.Is(err, ErrInvalidID))
		assert.True(t, errors.Is(err, ErrInvalidArgument))
		assert.False(t, errors.Is(err, ErrNotFound))
	}

	id := uuid.New()
	got, err := ParseID("tournament", " "+id.String()+" ")
	require.NoError(t, err)
	assert.Equal(t, id, got)
}

func TestTeamNotFoundIsDistinct(t *testing.T) {
	assert.False(t, errors.Is(ErrTeamNotFound, ErrNotFound))
	assert.False(t, errors.Is(ErrAssignmentNotFound, ErrNotFound))
}

func TestMatchInvolves(t *testing.T) {
	home, away := uuid.New(), uuid.New()
	m := Match{
		HomeTeam: Team{ID: Existing(home)},
		AwayTeam: Team{ID: Existing(away)},
	}
	assert.True(t, m.Involves(home))
	assert.True(t, m.Involves(away))
	assert.False(t, m.Involves(uuid.New()))
}
