package database

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rafiq2704/FutsalManagerApp/internal/futsal"
)

func TestAddMatchTwice(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t)
	db := f.db

	first := f.addMatch(t, f.red, f.blue)
	second := f.addMatch(t, f.red, f.blue)
	swapped := f.addMatch(t, f.blue, f.red)
	assert.Equal(t, first, second)
	assert.Equal(t, first, swapped)

	var cnt int64
	require.NoError(t, db.db.Model(&Match{}).Count(&cnt).Error)
	assert.EqualValues(t, 1, cnt)

	matches, err := db.GetMatches(ctx, f.tournament.String())
	require.NoError(t, err)
	require.Len(t, matches, 1)
	m := matches[0]
	assert.Equal(t, first.String(), m.ID.String())
	assert.Equal(t, f.tournament, m.TournamentID)
	assert.Equal(t, "Red", m.HomeTeam.Name)
	assert.Equal(t, "#ff0000", m.HomeTeam.Color)
	assert.Equal(t, "Blue", m.AwayTeam.Name)
	assert.True(t, m.Involves(f.red))
	assert.False(t, m.Involves(f.player))
}

func TestAddMatchInvalid(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t)
	db := f.db
	tid := f.tournament.String()

	_, err := db.AddMatch(ctx, tid, futsal.Match{
		HomeTeam: futsal.Team{ID: futsal.Existing(f.red)},
		AwayTeam: futsal.Team{ID: futsal.Existing(f.red)},
	})
	require.ErrorIs(t, err, futsal.ErrInvalidArgument)

	_, err = db.AddMatch(ctx, tid, futsal.Match{
		HomeTeam: futsal.Team{ID: futsal.Existing(f.red)},
	})
	require.ErrorIs(t, err, futsal.ErrInvalidArgument)

	_, err = db.AddMatch(ctx, tid, futsal.Match{
		ID:       futsal.Existing(uuid.New()),
		HomeTeam: futsal.Team{ID: futsal.Existing(f.red)},
		AwayTeam: futsal.Team{ID: futsal.Existing(f.blue)},
	})
	require.ErrorIs(t, err, futsal.ErrInvalidArgument)

	_, err = db.AddMatch(ctx, tid, futsal.Match{
		HomeTeam: futsal.Team{ID: futsal.Existing(f.red)},
		AwayTeam: futsal.Team{ID: futsal.Existing(uuid.New())},
	})
	require.ErrorIs(t, err, futsal.ErrTeamNotFound)

	_, err = db.AddMatch(ctx, uuid.NewString(), futsal.Match{
		HomeTeam: futsal.Team{ID: futsal.Existing(f.red)},
		AwayTeam: futsal.Team{ID: futsal.Existing(f.blue)},
	})
	require.ErrorIs(t, err, futsal.ErrNotFound)
}

func TestUpdateMatch(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t)
	db := f.db

	green, err := db.AddEditTeam(ctx, futsal.Team{Name: "Green"})
	require.NoError(t, err)
	redBlue := f.addMatch(t, f.red, f.blue)
	redGreen := f.addMatch(t, f.red, green)

	err = db.UpdateMatch(ctx, futsal.Match{
		ID:       futsal.Existing(redBlue),
		HomeTeam: futsal.Team{ID: futsal.Existing(f.blue)},
		AwayTeam: futsal.Team{ID: futsal.Existing(green)},
	})
	require.NoError(t, err)

	m, ok, err := db.GetMatchByID(ctx, redBlue.String())
	require.NoError(t, err)
	require.True(t, ok)
	assert.Equal(t, "Blue", m.HomeTeam.Name)
	assert.Equal(t, "Green", m.AwayTeam.Name)

	err = db.UpdateMatch(ctx, futsal.Match{
		ID:       futsal.Existing(redBlue),
		HomeTeam: futsal.Team{ID: futsal.Existing(green)},
		AwayTeam: futsal.Team{ID: futsal.Existing(f.red)},
	})
	require.ErrorIs(t, err, futsal.ErrInvalidArgument, "duplicates %v", redGreen)

	err = db.UpdateMatch(ctx, futsal.Match{
		ID:       futsal.Existing(uuid.New()),
		HomeTeam: futsal.Team{ID: futsal.Existing(f.red)},
		AwayTeam: futsal.Team{ID: futsal.Existing(f.blue)},
	})
	require.ErrorIs(t, err, futsal.ErrNotFound)

	err = db.UpdateMatch(ctx, futsal.Match{
		HomeTeam: futsal.Team{ID: futsal.Existing(f.red)},
		AwayTeam: futsal.Team{ID: futsal.Existing(f.blue)},
	})
	require.ErrorIs(t, err, futsal.ErrInvalidArgument)

	_, ok, err = db.GetMatchByID(ctx, uuid.NewString())
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestDeleteMatch(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t)
	db := f.db

	mid := f.addMatch(t, f.red, f.blue)
	_, err := db.AddMatchScore(ctx, f.tournament.String(), mid.String(), f.red.String(), f.player.String(), "")
	require.NoError(t, err)

	require.NoError(t, db.DeleteMatch(ctx, mid.String()))
	require.ErrorIs(t, db.DeleteMatch(ctx, mid.String()), futsal.ErrNotFound)

	var cnt int64
	require.NoError(t, db.db.Model(&Score{}).Count(&cnt).Error)
	assert.Zero(t, cnt)
}

func TestDeleteAllMatchesByTournament(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t)
	db := f.db

	green, err := db.AddEditTeam(ctx, futsal.Team{Name: "Green"})
	require.NoError(t, err)
	first := f.addMatch(t, f.red, f.blue)
	second := f.addMatch(t, green, f.red)
	_, err = db.AddMatchScore(ctx, f.tournament.String(), second.String(), green.String(), f.player.String(), "")
	require.NoError(t, err)

	matches, err := db.GetMatches(ctx, f.tournament.String())
	require.NoError(t, err)
	require.Len(t, matches, 2)
	assert.Equal(t, first.String(), matches[0].ID.String())
	assert.Equal(t, second.String(), matches[1].ID.String())
	assert.EqualValues(t, 1, matches[1].HomeGoals)
	assert.EqualValues(t, 0, matches[1].AwayGoals)

	require.NoError(t, db.DeleteAllMatchesByTournament(ctx, f.tournament.String()))
	matches, err = db.GetMatches(ctx, f.tournament.String())
	require.NoError(t, err)
	assert.Empty(t, matches)
}

func TestMatchWithRemovedTeam(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t)
	db := f.db

	mid := f.addMatch(t, f.red, f.blue)
	require.NoError(t, db.DeleteAllTeams(ctx))

	m, ok, err := db.GetMatchByID(ctx, mid.String())
	require.NoError(t, err)
	require.True(t, ok)
	assert.Equal(t, f.red.String(), m.HomeTeam.ID.String())
	assert.Empty(t, m.HomeTeam.Name)
}
