package futsal

import (
	"context"

	"github.com/google/uuid"

	"github.com/rafiq2704/FutsalManagerApp/internal/util/timeutil"
)

// Lookups returning (T, bool, error) report a missing entity with false and a
// nil error. Operations that modify a missing entity fail with ErrNotFound or a
// more specific error. Malformed ids fail with ErrInvalidID before the store
// is touched.

type TournamentDB interface {
	GetAllTournaments(ctx context.Context) ([]Tournament, error)
	GetTournamentByDate(ctx context.Context, date timeutil.Date) (Tournament, bool, error)
	GetTournamentByID(ctx context.Context, tournamentID string) (Tournament, bool, error)
	AddEditTournament(ctx context.Context, t Tournament) (uuid.UUID, error)
	DeleteTournament(ctx context.Context, tournamentID string) error
}

type PlayerDB interface {
	GetAllPlayers(ctx context.Context, includeDeleted bool) ([]Player, error)
	GetPlayersByName(ctx context.Context, name string) ([]Player, error)
	GetPlayerByID(ctx context.Context, playerID string) (Player, bool, error)
	AddEditPlayer(ctx context.Context, p Player) (uuid.UUID, error)
	DeletePlayer(ctx context.Context, playerID string) error

	AssignPlayer(ctx context.Context, playerID, teamID, tournamentID string) error
	GetPlayerStatusByTournament(ctx context.Context, playerID, tournamentID string) (PlayerAssignment, bool, error)
	UpdatePlayerByTournament(ctx context.Context, a PlayerAssignment) error
	GetPlayersByTeam(ctx context.Context, tournamentID, teamID string) ([]PlayerAssignment, error)
	GetTotalPlayerByTeam(ctx context.Context, tournamentID, teamID string) (int64, error)
	DeleteAllPlayerAssignments(ctx context.Context) error
	DeletePlayerAssignmentsByTournament(ctx context.Context, tournamentID string) error
}

type TeamDB interface {
	AddEditTeam(ctx context.Context, t Team) (uuid.UUID, error)
	GetTeamByName(ctx context.Context, name string) (Team, bool, error)
	GetTeamByID(ctx context.Context, teamID string) (Team, bool, error)
	GetAllTeams(ctx context.Context) ([]Team, error)
	// DeleteAllTeams removes every team and also every team assignment, as
	// if DeleteAllTeamsAssignment ran first. Player assignments and matches
	// that refer to the removed teams are kept.
	DeleteAllTeams(ctx context.Context) error

	AssignTeam(ctx context.Context, tournamentID, teamID string) error
	GetTeamsByTournament(ctx context.Context, tournamentID string) ([]Team, error)
	GetTotalTeamsByTournament(ctx context.Context, tournamentID string) (int64, error)
	DeleteAllTeamsAssignment(ctx context.Context) error
	DeleteTeamAssignmentsByTournament(ctx context.Context, tournamentID string) error
}

type MatchDB interface {
	AddMatch(ctx context.Context, tournamentID string, m Match) (uuid.UUID, error)
	UpdateMatch(ctx context.Context, m Match) error
	DeleteMatch(ctx context.Context, matchID string) error
	DeleteAllMatchesByTournament(ctx context.Context, tournamentID string) error
	GetMatches(ctx context.Context, tournamentID string) ([]Match, error)
	GetMatchByID(ctx context.Context, matchID string) (Match, bool, error)
}

type ScoreDB interface {
	AddMatchScore(ctx context.Context, tournamentID, matchID, teamID, playerID, remark string) (uuid.UUID, error)
	GetTotalScoresByMatchTeam(ctx context.Context, tournamentID, matchID, teamID string) (int64, error)
	GetScoresByMatch(ctx context.Context, tournamentID, matchID string) ([]Score, error)
	DeleteScore(ctx context.Context, scoreID string) error
}

// Repository is everything the application needs from storage.
type Repository interface {
	TournamentDB
	PlayerDB
	TeamDB
	MatchDB
	ScoreDB
}

// Admin runs arbitrary statements against the store. It bypasses every
// invariant kept by Repository and is meant for maintenance only.
type Admin interface {
	ExecRaw(ctx context.Context, statement string) (int64, error)
}
