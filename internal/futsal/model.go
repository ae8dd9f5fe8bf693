package futsal

import (
	"time"

	"github.com/google/uuid"

	"github.com/rafiq2704/FutsalManagerApp/internal/util/timeutil"
)

type Tournament struct {
	ID        Ref
	Date      timeutil.Date
	Name      string `validate:"required,max=128"`
	IsDeleted bool
}

type Player struct {
	ID        Ref
	Name      string `validate:"required,max=128"`
	IsDeleted bool

	// TotalGoals is derived from recorded scores and is never stored.
	TotalGoals int64
}

type Team struct {
	ID    Ref
	Name  string `validate:"required,max=128"`
	Color string `validate:"omitempty,hexcolor"`
}

// PlayerAssignment places a player into a team for one tournament, together
// with the player's per-tournament status.
type PlayerAssignment struct {
	PlayerID     uuid.UUID
	TeamID       uuid.UUID
	TournamentID uuid.UUID
	Name         string
	Paid         bool
	Attendance   bool
}

type Match struct {
	ID           Ref
	TournamentID uuid.UUID
	HomeTeam     Team
	AwayTeam     Team

	// Goals are derived from recorded scores.
	HomeGoals int64
	AwayGoals int64
}

// Involves reports whether the team plays in the match.
func (m Match) Involves(teamID uuid.UUID) bool {
	home, _ := m.HomeTeam.ID.ID()
	away, _ := m.AwayTeam.ID.ID()
	return teamID == home || teamID == away
}

// Score is a single goal.
type Score struct {
	ID           Ref
	TournamentID uuid.UUID
	MatchID      uuid.UUID
	TeamID       uuid.UUID
	PlayerID     uuid.UUID
	Remark       string `validate:"max=512"`
	CreatedAt    time.Time
}
