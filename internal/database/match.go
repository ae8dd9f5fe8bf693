package database

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/rafiq2704/FutsalManagerApp/internal/futsal"
	"github.com/rafiq2704/FutsalManagerApp/internal/util/sliceutil"
	"github.com/rafiq2704/FutsalManagerApp/internal/util/slogx"
)

func matchSides(m futsal.Match) (home, away uuid.UUID, err error) {
	home, okHome := m.HomeTeam.ID.ID()
	away, okAway := m.AwayTeam.ID.ID()
	if !okHome || !okAway {
		return uuid.Nil, uuid.Nil, fmt.Errorf("%w: match needs home and away teams", futsal.ErrInvalidArgument)
	}
	if home == away {
		return uuid.Nil, uuid.Nil, fmt.Errorf("%w: team %v cannot play itself", futsal.ErrInvalidArgument, home)
	}
	return home, away, nil
}

// pairQuery selects matches of the tournament between the two teams, in any
// order.
func pairQuery(tx *gorm.DB, tournamentID, a, b uuid.UUID) *gorm.DB {
	return tx.Model(&Match{}).
		Where("tournament_id = ?", tournamentID).
		Where("(home_team_id = ? AND away_team_id = ?) OR (home_team_id = ? AND away_team_id = ?)", a, b, b, a)
}

// AddMatch returns the id of the existing match if the two teams already
// play each other in the tournament, regardless of which side is home.
func (d *DB) AddMatch(ctx context.Context, tournamentID string, m futsal.Match) (uuid.UUID, error) {
	if m.ID.IsAssigned() {
		return uuid.Nil, fmt.Errorf("%w: new match already has id %v", futsal.ErrInvalidArgument, m.ID)
	}
	trid, err := futsal.ParseID("tournament", tournamentID)
	if err != nil {
		return uuid.Nil, err
	}
	home, away, err := matchSides(m)
	if err != nil {
		return uuid.Nil, err
	}

	var id uuid.UUID
	err = d.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := d.mustExist(tx, &Tournament{}, trid, "tournament", futsal.ErrNotFound); err != nil {
			return err
		}
		if err := d.mustExist(tx, &Team{}, home, "home team", futsal.ErrTeamNotFound); err != nil {
			return err
		}
		if err := d.mustExist(tx, &Team{}, away, "away team", futsal.ErrTeamNotFound); err != nil {
			return err
		}

		var existing []Match
		if err := pairQuery(tx, trid, home, away).Order("rowid").Limit(1).Find(&existing).Error; err != nil {
			return fmt.Errorf("find match: %w", err)
		}
		if len(existing) != 0 {
			id = existing[0].ID
			d.log.Info("match already exists", slogx.ID("match_id", id))
			return nil
		}

		id = d.newID()
		err := tx.Create(&Match{
			ID:           id,
			TournamentID: trid,
			HomeTeamID:   home,
			AwayTeamID:   away,
		}).Error
		if err != nil {
			return fmt.Errorf("create match: %w", err)
		}
		return nil
	})
	if err != nil {
		return uuid.Nil, err
	}
	return id, nil
}

// UpdateMatch changes the teams of a match. The match stays in its
// tournament.
func (d *DB) UpdateMatch(ctx context.Context, m futsal.Match) error {
	id, ok := m.ID.ID()
	if !ok {
		return fmt.Errorf("%w: match has no id", futsal.ErrInvalidID)
	}
	home, away, err := matchSides(m)
	if err != nil {
		return err
	}

	return d.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var rows []Match
		if err := tx.Where("id = ?", id).Limit(1).Find(&rows).Error; err != nil {
			return fmt.Errorf("get match: %w", err)
		}
		if len(rows) == 0 {
			return fmt.Errorf("%w: match %v", futsal.ErrNotFound, id)
		}
		cur := rows[0]

		if err := d.mustExist(tx, &Team{}, home, "home team", futsal.ErrTeamNotFound); err != nil {
			return err
		}
		if err := d.mustExist(tx, &Team{}, away, "away team", futsal.ErrTeamNotFound); err != nil {
			return err
		}

		var dup int64
		if err := pairQuery(tx, cur.TournamentID, home, away).Where("id <> ?", id).Count(&dup).Error; err != nil {
			return fmt.Errorf("find match: %w", err)
		}
		if dup != 0 {
			return fmt.Errorf("%w: teams %v and %v already play in tournament %v",
				futsal.ErrInvalidArgument, home, away, cur.TournamentID)
		}

		err := tx.Model(&Match{}).Where("id = ?", id).Updates(map[string]any{
			"home_team_id": home,
			"away_team_id": away,
		}).Error
		if err != nil {
			return fmt.Errorf("update match: %w", err)
		}
		return nil
	})
}

// DeleteMatch removes the match and the goals scored in it.
func (d *DB) DeleteMatch(ctx context.Context, matchID string) error {
	id, err := futsal.ParseID("match", matchID)
	if err != nil {
		return err
	}
	return d.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("match_id = ?", id).Delete(&Score{}).Error; err != nil {
			return fmt.Errorf("delete match scores: %w", err)
		}
		res := tx.Where("id = ?", id).Delete(&Match{})
		if res.Error != nil {
			return fmt.Errorf("delete match: %w", res.Error)
		}
		if res.RowsAffected == 0 {
			return fmt.Errorf("%w: match %v", futsal.ErrNotFound, id)
		}
		return nil
	})
}

func (d *DB) DeleteAllMatchesByTournament(ctx context.Context, tournamentID string) error {
	id, err := futsal.ParseID("tournament", tournamentID)
	if err != nil {
		return err
	}
	return d.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("tournament_id = ?", id).Delete(&Score{}).Error; err != nil {
			return fmt.Errorf("delete tournament scores: %w", err)
		}
		if err := tx.Where("tournament_id = ?", id).Delete(&Match{}).Error; err != nil {
			return fmt.Errorf("delete tournament matches: %w", err)
		}
		return nil
	})
}

type goalCount struct {
	MatchID uuid.UUID
	TeamID  uuid.UUID
	Goals   int64
}

type matchTeam struct {
	match uuid.UUID
	team  uuid.UUID
}

// fillMatches resolves team names and counts goals for the given rows.
func (d *DB) fillMatches(tx *gorm.DB, rows []Match) ([]futsal.Match, error) {
	if len(rows) == 0 {
		return []futsal.Match{}, nil
	}

	teamIDs := make([]uuid.UUID, 0, 2*len(rows))
	matchIDs := make([]uuid.UUID, 0, len(rows))
	for _, m := range rows {
		teamIDs = append(teamIDs, m.HomeTeamID, m.AwayTeamID)
		matchIDs = append(matchIDs, m.ID)
	}

	var teams []Team
	if err := tx.Where("id IN ?", teamIDs).Find(&teams).Error; err != nil {
		return nil, fmt.Errorf("get match teams: %w", err)
	}
	teamsByID := sliceutil.KeyBy(teams, func(t Team) uuid.UUID { return t.ID })

	var counts []goalCount
	err := tx.Model(&Score{}).
		Select("match_id, team_id, COUNT(*) AS goals").
		Where("match_id IN ?", matchIDs).
		Group("match_id, team_id").
		Scan(&counts).Error
	if err != nil {
		return nil, fmt.Errorf("count goals: %w", err)
	}
	goals := make(map[matchTeam]int64, len(counts))
	for _, c := range counts {
		goals[matchTeam{match: c.MatchID, team: c.TeamID}] = c.Goals
	}

	team := func(id uuid.UUID) futsal.Team {
		if t, ok := teamsByID[id]; ok {
			return t.toDomain()
		}
		// The team was removed by a table-wide reset.
		return futsal.Team{ID: futsal.Existing(id)}
	}
	return sliceutil.Map(rows, func(m Match) futsal.Match {
		return futsal.Match{
			ID:           futsal.Existing(m.ID),
			TournamentID: m.TournamentID,
			HomeTeam:     team(m.HomeTeamID),
			AwayTeam:     team(m.AwayTeamID),
			HomeGoals:    goals[matchTeam{match: m.ID, team: m.HomeTeamID}],
			AwayGoals:    goals[matchTeam{match: m.ID, team: m.AwayTeamID}],
		}
	}), nil
}

// GetMatches lists matches of the tournament in the order they were added.
func (d *DB) GetMatches(ctx context.Context, tournamentID string) ([]futsal.Match, error) {
	id, err := futsal.ParseID("tournament", tournamentID)
	if err != nil {
		return nil, err
	}
	tx := d.db.WithContext(ctx)
	var rows []Match
	if err := tx.Where("tournament_id = ?", id).Order("rowid").Find(&rows).Error; err != nil {
		return nil, fmt.Errorf("list matches: %w", err)
	}
	return d.fillMatches(tx, rows)
}

func (d *DB) GetMatchByID(ctx context.Context, matchID string) (futsal.Match, bool, error) {
	id, err := futsal.ParseID("match", matchID)
	if err != nil {
		return futsal.Match{}, false, err
	}
	tx := d.db.WithContext(ctx)
	var rows []Match
	if err := tx.Where("id = ?", id).Limit(1).Find(&rows).Error; err != nil {
		return futsal.Match{}, false, fmt.Errorf("get match: %w", err)
	}
	if len(rows) == 0 {
		return futsal.Match{}, false, nil
	}
	res, err := d.fillMatches(tx, rows)
	if err != nil {
		return futsal.Match{}, false, err
	}
	return res[0], true, nil
}
