package database

import (
	"context"
	"fmt"
	"strings"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/rafiq2704/FutsalManagerApp/internal/futsal"
	"github.com/rafiq2704/FutsalManagerApp/internal/util/sliceutil"
)

func (d *DB) AddEditTeam(ctx context.Context, t futsal.Team) (uuid.UUID, error) {
	t.Normalize()
	if err := t.Validate(); err != nil {
		return uuid.Nil, err
	}

	id, ok := t.ID.ID()
	if !ok {
		id = d.newID()
		err := d.db.WithContext(ctx).Create(&Team{
			ID:    id,
			Name:  t.Name,
			Color: t.Color,
		}).Error
		if err != nil {
			return uuid.Nil, fmt.Errorf("create team: %w", err)
		}
		return id, nil
	}

	res := d.db.WithContext(ctx).Model(&Team{}).Where("id = ?", id).Updates(map[string]any{
		"name":  t.Name,
		"color": t.Color,
	})
	if res.Error != nil {
		return uuid.Nil, fmt.Errorf("update team: %w", res.Error)
	}
	if res.RowsAffected == 0 {
		return uuid.Nil, fmt.Errorf("%w: team %v", futsal.ErrTeamNotFound, id)
	}
	return id, nil
}

// GetTeamByName matches the name exactly, after trimming surrounding spaces.
func (d *DB) GetTeamByName(ctx context.Context, name string) (futsal.Team, bool, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return futsal.Team{}, false, fmt.Errorf("%w: no team name", futsal.ErrInvalidArgument)
	}
	var rows []Team
	err := d.db.WithContext(ctx).Where("name = ?", name).Order("rowid").Limit(1).Find(&rows).Error
	if err != nil {
		return futsal.Team{}, false, fmt.Errorf("get team by name: %w", err)
	}
	if len(rows) == 0 {
		return futsal.Team{}, false, nil
	}
	return rows[0].toDomain(), true, nil
}

func (d *DB) GetTeamByID(ctx context.Context, teamID string) (futsal.Team, bool, error) {
	id, err := futsal.ParseID("team", teamID)
	if err != nil {
		return futsal.Team{}, false, err
	}
	var rows []Team
	err = d.db.WithContext(ctx).Where("id = ?", id).Limit(1).Find(&rows).Error
	if err != nil {
		return futsal.Team{}, false, fmt.Errorf("get team: %w", err)
	}
	if len(rows) == 0 {
		return futsal.Team{}, false, nil
	}
	return rows[0].toDomain(), true, nil
}

func (d *DB) GetAllTeams(ctx context.Context) ([]futsal.Team, error) {
	var rows []Team
	if err := d.db.WithContext(ctx).Order("name").Find(&rows).Error; err != nil {
		return nil, fmt.Errorf("list teams: %w", err)
	}
	return sliceutil.Map(rows, Team.toDomain), nil
}

// DeleteAllTeams clears the whole teams table together with the team
// assignments. Player assignments and matches referring to the teams are kept.
func (d *DB) DeleteAllTeams(ctx context.Context) error {
	return d.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := allRows(tx).Delete(&TeamAssignment{}).Error; err != nil {
			return fmt.Errorf("delete team assignments: %w", err)
		}
		if err := allRows(tx).Delete(&Team{}).Error; err != nil {
			return fmt.Errorf("delete teams: %w", err)
		}
		return nil
	})
}

// AssignTeam does nothing if the team is already in the tournament.
func (d *DB) AssignTeam(ctx context.Context, tournamentID, teamID string) error {
	ids, err := parseIDs("tournament", tournamentID, "team", teamID)
	if err != nil {
		return err
	}
	trid, tid := ids[0], ids[1]
	return d.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := d.mustExist(tx, &Team{}, tid, "team", futsal.ErrTeamNotFound); err != nil {
			return err
		}
		if err := d.mustExist(tx, &Tournament{}, trid, "tournament", futsal.ErrNotFound); err != nil {
			return err
		}
		err := tx.Clauses(clause.OnConflict{DoNothing: true}).Create(&TeamAssignment{
			TeamID:       tid,
			TournamentID: trid,
		}).Error
		if err != nil {
			return fmt.Errorf("create team assignment: %w", err)
		}
		return nil
	})
}

func (d *DB) GetTeamsByTournament(ctx context.Context, tournamentID string) ([]futsal.Team, error) {
	id, err := futsal.ParseID("tournament", tournamentID)
	if err != nil {
		return nil, err
	}
	var rows []Team
	err = d.db.WithContext(ctx).
		Joins("JOIN team_assignments ON team_assignments.team_id = teams.id").
		Where("team_assignments.tournament_id = ?", id).
		Order("teams.name").
		Find(&rows).Error
	if err != nil {
		return nil, fmt.Errorf("list tournament teams: %w", err)
	}
	return sliceutil.Map(rows, Team.toDomain), nil
}

func (d *DB) GetTotalTeamsByTournament(ctx context.Context, tournamentID string) (int64, error) {
	id, err := futsal.ParseID("tournament", tournamentID)
	if err != nil {
		return 0, err
	}
	var cnt int64
	err = d.db.WithContext(ctx).Model(&TeamAssignment{}).Where("tournament_id = ?", id).Count(&cnt).Error
	if err != nil {
		return 0, fmt.Errorf("count tournament teams: %w", err)
	}
	return cnt, nil
}

func (d *DB) DeleteAllTeamsAssignment(ctx context.Context) error {
	if err := allRows(d.db.WithContext(ctx)).Delete(&TeamAssignment{}).Error; err != nil {
		return fmt.Errorf("delete team assignments: %w", err)
	}
	return nil
}

func (d *DB) DeleteTeamAssignmentsByTournament(ctx context.Context, tournamentID string) error {
	id, err := futsal.ParseID("tournament", tournamentID)
	if err != nil {
		return err
	}
	err = d.db.WithContext(ctx).Where("tournament_id = ?", id).Delete(&TeamAssignment{}).Error
	if err != nil {
		return fmt.Errorf("delete tournament team assignments: %w", err)
	}
	return nil
}
