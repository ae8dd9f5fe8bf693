package database

import (
	"context"
	"strings"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rafiq2704/FutsalManagerApp/internal/futsal"
	"github.com/rafiq2704/FutsalManagerApp/internal/util/timeutil"
)

func TestRedBlueScenario(t *testing.T) {
	ctx := context.Background()
	db := newTestDB(t)

	tid, err := db.AddEditTournament(ctx, futsal.Tournament{
		Date: timeutil.NewDate(2023, time.May, 1),
		Name: "T",
	})
	require.NoError(t, err)
	red, err := db.AddEditTeam(ctx, futsal.Team{Name: "Red"})
	require.NoError(t, err)
	blue, err := db.AddEditTeam(ctx, futsal.Team{Name: "Blue"})
	require.NoError(t, err)
	require.NoError(t, db.AssignTeam(ctx, tid.String(), red.String()))
	require.NoError(t, db.AssignTeam(ctx, tid.String(), blue.String()))

	match := futsal.Match{
		HomeTeam: futsal.Team{ID: futsal.Existing(red)},
		AwayTeam: futsal.Team{ID: futsal.Existing(blue)},
	}
	m1, err := db.AddMatch(ctx, tid.String(), match)
	require.NoError(t, err)
	m2, err := db.AddMatch(ctx, tid.String(), match)
	require.NoError(t, err)
	require.Equal(t, m1, m2)

	x, err := db.AddEditPlayer(ctx, futsal.Player{Name: "X"})
	require.NoError(t, err)
	for range 3 {
		_, err := db.AddMatchScore(ctx, tid.String(), m1.String(), red.String(), x.String(), "")
		require.NoError(t, err)
	}

	n, err := db.GetTotalScoresByMatchTeam(ctx, tid.String(), m1.String(), red.String())
	require.NoError(t, err)
	assert.EqualValues(t, 3, n)

	n, err = db.GetTotalScoresByMatchTeam(ctx, tid.String(), m1.String(), blue.String())
	require.NoError(t, err)
	assert.Zero(t, n)

	m, ok, err := db.GetMatchByID(ctx, m1.String())
	require.NoError(t, err)
	require.True(t, ok)
	assert.EqualValues(t, 3, m.HomeGoals)
	assert.EqualValues(t, 0, m.AwayGoals)
}

func TestAddMatchScoreChecks(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t)
	db := f.db

	green, err := db.AddEditTeam(ctx, futsal.Team{Name: "Green"})
	require.NoError(t, err)
	mid := f.addMatch(t, f.red, f.blue)
	tid := f.tournament.String()

	_, err = db.AddMatchScore(ctx, tid, mid.String(), green.String(), f.player.String(), "")
	require.ErrorIs(t, err, futsal.ErrInvalidArgument)

	_, err = db.AddMatchScore(ctx, tid, uuid.NewString(), f.red.String(), f.player.String(), "")
	require.ErrorIs(t, err, futsal.ErrNotFound)

	_, err = db.AddMatchScore(ctx, uuid.NewString(), mid.String(), f.red.String(), f.player.String(), "")
	require.ErrorIs(t, err, futsal.ErrNotFound)

	_, err = db.AddMatchScore(ctx, tid, mid.String(), f.red.String(), uuid.NewString(), "")
	require.ErrorIs(t, err, futsal.ErrNotFound)

	_, err = db.AddMatchScore(ctx, tid, mid.String(), f.red.String(), f.player.String(), strings.Repeat("x", 513))
	require.ErrorIs(t, err, futsal.ErrInvalidArgument)

	scores, err := db.GetScoresByMatch(ctx, tid, mid.String())
	require.NoError(t, err)
	assert.Empty(t, scores)
}

func TestScoresByMatch(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t)
	db := f.db

	mid := f.addMatch(t, f.red, f.blue)
	tid := f.tournament.String()
	before := time.Now().UTC().Add(-time.Second)

	var ids []uuid.UUID
	for _, remark := range []string{"penalty", " volley ", ""} {
		id, err := db.AddMatchScore(ctx, tid, mid.String(), f.blue.String(), f.player.String(), remark)
		require.NoError(t, err)
		ids = append(ids, id)
	}

	scores, err := db.GetScoresByMatch(ctx, tid, mid.String())
	require.NoError(t, err)
	require.Len(t, scores, 3)
	for i, s := range scores {
		assert.Equal(t, ids[i].String(), s.ID.String())
		assert.Equal(t, f.blue, s.TeamID)
		assert.Equal(t, f.player, s.PlayerID)
		assert.Equal(t, mid, s.MatchID)
		assert.True(t, s.CreatedAt.After(before))
	}
	assert.Equal(t, "volley", scores[1].Remark)

	require.NoError(t, db.DeleteScore(ctx, ids[0].String()))
	require.ErrorIs(t, db.DeleteScore(ctx, ids[0].String()), futsal.ErrNotFound)

	n, err := db.GetTotalScoresByMatchTeam(ctx, tid, mid.String(), f.blue.String())
	require.NoError(t, err)
	assert.EqualValues(t, 2, n)
}
