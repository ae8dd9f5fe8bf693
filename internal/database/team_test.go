package database

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rafiq2704/FutsalManagerApp/internal/futsal"
)

func TestTeamCRUD(t *testing.T) {
	ctx := context.Background()
	db := newTestDB(t)

	teams, err := db.GetAllTeams(ctx)
	require.NoError(t, err)
	require.NotNil(t, teams)
	assert.Empty(t, teams)

	id, err := db.AddEditTeam(ctx, futsal.Team{Name: " Red ", Color: "F00"})
	require.NoError(t, err)

	team, ok, err := db.GetTeamByName(ctx, "Red")
	require.NoError(t, err)
	require.True(t, ok)
	assert.Equal(t, futsal.Team{ID: futsal.Existing(id), Name: "Red", Color: "#ff0000"}, team)

	_, ok, err = db.GetTeamByName(ctx, "red")
	require.NoError(t, err)
	assert.False(t, ok)

	again, err := db.AddEditTeam(ctx, futsal.Team{ID: futsal.Existing(id), Name: "Crimson"})
	require.NoError(t, err)
	assert.Equal(t, id, again)

	team, ok, err = db.GetTeamByID(ctx, id.String())
	require.NoError(t, err)
	require.True(t, ok)
	assert.Equal(t, "Crimson", team.Name)
	assert.Empty(t, team.Color)

	_, err = db.AddEditTeam(ctx, futsal.Team{ID: futsal.Existing(uuid.New()), Name: "Ghost"})
	require.ErrorIs(t, err, futsal.ErrTeamNotFound)

	_, err = db.AddEditTeam(ctx, futsal.Team{Name: "Odd", Color: "not a colour"})
	require.ErrorIs(t, err, futsal.ErrInvalidArgument)

	_, _, err = db.GetTeamByName(ctx, "  ")
	require.ErrorIs(t, err, futsal.ErrInvalidArgument)
}

func TestAssignTeam(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t)
	db := f.db

	for range 2 {
		require.NoError(t, db.AssignTeam(ctx, f.tournament.String(), f.red.String()))
	}
	require.NoError(t, db.AssignTeam(ctx, f.tournament.String(), f.blue.String()))

	n, err := db.GetTotalTeamsByTournament(ctx, f.tournament.String())
	require.NoError(t, err)
	assert.EqualValues(t, 2, n)

	teams, err := db.GetTeamsByTournament(ctx, f.tournament.String())
	require.NoError(t, err)
	require.Len(t, teams, 2)
	assert.Equal(t, "Blue", teams[0].Name)
	assert.Equal(t, "Red", teams[1].Name)

	err = db.AssignTeam(ctx, f.tournament.String(), uuid.NewString())
	require.ErrorIs(t, err, futsal.ErrTeamNotFound)
	require.NotErrorIs(t, err, futsal.ErrNotFound)

	err = db.AssignTeam(ctx, uuid.NewString(), f.red.String())
	require.ErrorIs(t, err, futsal.ErrNotFound)
}

func TestTeamResets(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t)
	db := f.db

	other, err := db.AddEditTournament(ctx, futsal.Tournament{
		Date: mustDate(t, "2023-06-01"),
		Name: "June Cup",
	})
	require.NoError(t, err)
	require.NoError(t, db.AssignTeam(ctx, f.tournament.String(), f.red.String()))
	require.NoError(t, db.AssignTeam(ctx, other.String(), f.red.String()))
	require.NoError(t, db.AssignTeam(ctx, other.String(), f.blue.String()))

	require.NoError(t, db.DeleteTeamAssignmentsByTournament(ctx, other.String()))
	n, err := db.GetTotalTeamsByTournament(ctx, other.String())
	require.NoError(t, err)
	assert.Zero(t, n)
	n, err = db.GetTotalTeamsByTournament(ctx, f.tournament.String())
	require.NoError(t, err)
	assert.EqualValues(t, 1, n)

	require.NoError(t, db.DeleteAllTeamsAssignment(ctx))
	n, err = db.GetTotalTeamsByTournament(ctx, f.tournament.String())
	require.NoError(t, err)
	assert.Zero(t, n)

	teams, err := db.GetAllTeams(ctx)
	require.NoError(t, err)
	assert.Len(t, teams, 2)

	require.NoError(t, db.AssignTeam(ctx, f.tournament.String(), f.red.String()))
	require.NoError(t, db.DeleteAllTeams(ctx))
	teams, err = db.GetAllTeams(ctx)
	require.NoError(t, err)
	assert.Empty(t, teams)
	n, err = db.GetTotalTeamsByTournament(ctx, f.tournament.String())
	require.NoError(t, err)
	assert.Zero(t, n)
}
