package database

import (
	"github.com/google/uuid"

	"github.com/rafiq2704/FutsalManagerApp/internal/futsal"
	"github.com/rafiq2704/FutsalManagerApp/internal/util/timeutil"
)

type Tournament struct {
	ID        uuid.UUID     `gorm:"type:text;primaryKey"`
	Date      timeutil.Date `gorm:"type:text;index"`
	Name      string
	IsDeleted bool
}

func (t Tournament) toDomain() futsal.Tournament {
	return futsal.Tournament{
		ID:        futsal.Existing(t.ID),
		Date:      t.Date,
		Name:      t.Name,
		IsDeleted: t.IsDeleted,
	}
}

type Player struct {
	ID        uuid.UUID `gorm:"type:text;primaryKey"`
	Name      string    `gorm:"index"`
	IsDeleted bool      `gorm:"index"`
}

func (p Player) toDomain() futsal.Player {
	return futsal.Player{
		ID:        futsal.Existing(p.ID),
		Name:      p.Name,
		IsDeleted: p.IsDeleted,
	}
}

// PlayerAssignment has no surrogate id: the (player, team, tournament) triple
// is the key.
type PlayerAssignment struct {
	PlayerID     uuid.UUID `gorm:"type:text;primaryKey"`
	TeamID       uuid.UUID `gorm:"type:text;primaryKey"`
	TournamentID uuid.UUID `gorm:"type:text;primaryKey;index"`
	Paid         bool
	Attendance   bool
}

type Team struct {
	ID    uuid.UUID `gorm:"type:text;primaryKey"`
	Name  string    `gorm:"index"`
	Color string
}

func (t Team) toDomain() futsal.Team {
	return futsal.Team{
		ID:    futsal.Existing(t.ID),
		Name:  t.Name,
		Color: t.Color,
	}
}

type TeamAssignment struct {
	TeamID       uuid.UUID `gorm:"type:text;primaryKey"`
	TournamentID uuid.UUID `gorm:"type:text;primaryKey;index"`
}

type Match struct {
	ID           uuid.UUID `gorm:"type:text;primaryKey"`
	TournamentID uuid.UUID `gorm:"type:text;index"`
	HomeTeamID   uuid.UUID `gorm:"type:text"`
	AwayTeamID   uuid.UUID `gorm:"type:text"`
}

type Score struct {
	ID           uuid.UUID `gorm:"type:text;primaryKey"`
	TournamentID uuid.UUID `gorm:"type:text;index:idx_scores_match,priority:1"`
	MatchID      uuid.UUID `gorm:"type:text;index:idx_scores_match,priority:2"`
	TeamID       uuid.UUID `gorm:"type:text"`
	PlayerID     uuid.UUID `gorm:"type:text;index"`
	Remark       string
	RecordedAt   timeutil.UTCTime
}

func (s Score) toDomain() futsal.Score {
	return futsal.Score{
		ID:           futsal.Existing(s.ID),
		TournamentID: s.TournamentID,
		MatchID:      s.MatchID,
		TeamID:       s.TeamID,
		PlayerID:     s.PlayerID,
		Remark:       s.Remark,
		CreatedAt:    s.RecordedAt.UTC(),
	}
}

// The players table is the one checked on startup to decide whether the
// schema exists.
var models = []any{
	&Tournament{},
	&Player{},
	&PlayerAssignment{},
	&Team{},
	&TeamAssignment{},
	&Match{},
	&Score{},
}
