package database

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/rafiq2704/FutsalManagerApp/internal/futsal"
	"github.com/rafiq2704/FutsalManagerApp/internal/util/sliceutil"
	"github.com/rafiq2704/FutsalManagerApp/internal/util/slogx"
)

type playerWithGoals struct {
	Player
	TotalGoals int64
}

func (p playerWithGoals) toDomain() futsal.Player {
	res := p.Player.toDomain()
	res.TotalGoals = p.TotalGoals
	return res
}

type assignmentWithName struct {
	PlayerAssignment
	Name string
}

func (a assignmentWithName) toDomain() futsal.PlayerAssignment {
	return futsal.PlayerAssignment{
		PlayerID:     a.PlayerID,
		TeamID:       a.TeamID,
		TournamentID: a.TournamentID,
		Name:         a.Name,
		Paid:         a.Paid,
		Attendance:   a.Attendance,
	}
}

func (d *DB) GetAllPlayers(ctx context.Context, includeDeleted bool) ([]futsal.Player, error) {
	tx := d.db.WithContext(ctx).Model(&Player{}).
		Select("players.*, COUNT(scores.id) AS total_goals").
		Joins("LEFT JOIN scores ON scores.player_id = players.id").
		Group("players.id").
		Order("players.name")
	if !includeDeleted {
		tx = tx.Where("players.is_deleted = ?", false)
	}
	var rows []playerWithGoals
	if err := tx.Scan(&rows).Error; err != nil {
		return nil, fmt.Errorf("list players: %w", err)
	}
	return sliceutil.Map(rows, playerWithGoals.toDomain), nil
}

func escapeLike(s string) string {
	return strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`).Replace(s)
}

// GetPlayersByName returns non-deleted players whose name contains the given
// text, ignoring ASCII case.
func (d *DB) GetPlayersByName(ctx context.Context, name string) ([]futsal.Player, error) {
	pattern := "%" + escapeLike(strings.TrimSpace(name)) + "%"
	var rows []Player
	err := d.db.WithContext(ctx).
		Where(`name LIKE ? ESCAPE '\'`, pattern).
		Where("is_deleted = ?", false).
		Order("name").
		Find(&rows).Error
	if err != nil {
		return nil, fmt.Errorf("search players: %w", err)
	}
	return sliceutil.Map(rows, Player.toDomain), nil
}

func (d *DB) GetPlayerByID(ctx context.Context, playerID string) (futsal.Player, bool, error) {
	id, err := futsal.ParseID("player", playerID)
	if err != nil {
		return futsal.Player{}, false, err
	}
	var rows []Player
	err = d.db.WithContext(ctx).Where("id = ?", id).Limit(1).Find(&rows).Error
	if err != nil {
		return futsal.Player{}, false, fmt.Errorf("get player: %w", err)
	}
	if len(rows) == 0 {
		return futsal.Player{}, false, nil
	}
	return rows[0].toDomain(), true, nil
}

func (d *DB) AddEditPlayer(ctx context.Context, p futsal.Player) (uuid.UUID, error) {
	p.Normalize()
	if err := p.Validate(); err != nil {
		return uuid.Nil, err
	}

	id, ok := p.ID.ID()
	if !ok {
		id = d.newID()
		err := d.db.WithContext(ctx).Create(&Player{
			ID:        id,
			Name:      p.Name,
			IsDeleted: p.IsDeleted,
		}).Error
		if err != nil {
			return uuid.Nil, fmt.Errorf("create player: %w", err)
		}
		return id, nil
	}

	res := d.db.WithContext(ctx).Model(&Player{}).Where("id = ?", id).Updates(map[string]any{
		"name":       p.Name,
		"is_deleted": p.IsDeleted,
	})
	if res.Error != nil {
		return uuid.Nil, fmt.Errorf("update player: %w", res.Error)
	}
	if res.RowsAffected == 0 {
		return uuid.Nil, fmt.Errorf("%w: player %v", futsal.ErrNotFound, id)
	}
	return id, nil
}

// DeletePlayer only marks the player deleted if any assignment or score
// refers to them. Players without history are removed.
func (d *DB) DeletePlayer(ctx context.Context, playerID string) error {
	id, err := futsal.ParseID("player", playerID)
	if err != nil {
		return err
	}
	return d.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var assigned, scored int64
		if err := tx.Model(&PlayerAssignment{}).Where("player_id = ?", id).Count(&assigned).Error; err != nil {
			return fmt.Errorf("count assignments: %w", err)
		}
		if err := tx.Model(&Score{}).Where("player_id = ?", id).Count(&scored).Error; err != nil {
			return fmt.Errorf("count scores: %w", err)
		}

		var res *gorm.DB
		if assigned != 0 || scored != 0 {
			res = tx.Model(&Player{}).Where("id = ?", id).Update("is_deleted", true)
		} else {
			res = tx.Where("id = ?", id).Delete(&Player{})
		}
		if res.Error != nil {
			return fmt.Errorf("delete player: %w", res.Error)
		}
		if res.RowsAffected == 0 {
			return fmt.Errorf("%w: player %v", futsal.ErrNotFound, id)
		}
		d.log.Info("player deleted",
			slogx.ID("player_id", id),
			slog.Bool("soft", assigned != 0 || scored != 0),
		)
		return nil
	})
}

// AssignPlayer does nothing if the player is already in the team for the
// tournament.
func (d *DB) AssignPlayer(ctx context.Context, playerID, teamID, tournamentID string) error {
	ids, err := parseIDs("player", playerID, "team", teamID, "tournament", tournamentID)
	if err != nil {
		return err
	}
	pid, tid, trid := ids[0], ids[1], ids[2]
	return d.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := d.mustExist(tx, &Player{}, pid, "player", futsal.ErrNotFound); err != nil {
			return err
		}
		if err := d.mustExist(tx, &Team{}, tid, "team", futsal.ErrTeamNotFound); err != nil {
			return err
		}
		if err := d.mustExist(tx, &Tournament{}, trid, "tournament", futsal.ErrNotFound); err != nil {
			return err
		}
		err := tx.Clauses(clause.OnConflict{DoNothing: true}).Create(&PlayerAssignment{
			PlayerID:     pid,
			TeamID:       tid,
			TournamentID: trid,
		}).Error
		if err != nil {
			return fmt.Errorf("create player assignment: %w", err)
		}
		return nil
	})
}

func (d *DB) assignmentsWithNames(ctx context.Context) *gorm.DB {
	return d.db.WithContext(ctx).Model(&PlayerAssignment{}).
		Select("player_assignments.*, players.name AS name").
		Joins("LEFT JOIN players ON players.id = player_assignments.player_id")
}

// GetPlayerStatusByTournament returns the player's assignment in the
// tournament. If the player was put into several teams, the assignment with
// the lowest team id is returned.
func (d *DB) GetPlayerStatusByTournament(ctx context.Context, playerID, tournamentID string) (futsal.PlayerAssignment, bool, error) {
	ids, err := parseIDs("player", playerID, "tournament", tournamentID)
	if err != nil {
		return futsal.PlayerAssignment{}, false, err
	}
	var rows []assignmentWithName
	err = d.assignmentsWithNames(ctx).
		Where("player_assignments.player_id = ? AND player_assignments.tournament_id = ?", ids[0], ids[1]).
		Order("player_assignments.team_id").
		Limit(1).
		Scan(&rows).Error
	if err != nil {
		return futsal.PlayerAssignment{}, false, fmt.Errorf("get player status: %w", err)
	}
	if len(rows) == 0 {
		return futsal.PlayerAssignment{}, false, nil
	}
	return rows[0].toDomain(), true, nil
}

// UpdatePlayerByTournament stores paid and attendance flags of the player in
// the tournament. A nil TeamID updates the player's assignments in every team.
func (d *DB) UpdatePlayerByTournament(ctx context.Context, a futsal.PlayerAssignment) error {
	if a.PlayerID == uuid.Nil || a.TournamentID == uuid.Nil {
		return fmt.Errorf("%w: player assignment needs player and tournament", futsal.ErrInvalidID)
	}
	tx := d.db.WithContext(ctx).Model(&PlayerAssignment{}).
		Where("player_id = ? AND tournament_id = ?", a.PlayerID, a.TournamentID)
	if a.TeamID != uuid.Nil {
		tx = tx.Where("team_id = ?", a.TeamID)
	}
	res := tx.Updates(map[string]any{
		"paid":       a.Paid,
		"attendance": a.Attendance,
	})
	if res.Error != nil {
		return fmt.Errorf("update player assignment: %w", res.Error)
	}
	if res.RowsAffected == 0 {
		return fmt.Errorf("%w: player %v in tournament %v", futsal.ErrAssignmentNotFound, a.PlayerID, a.TournamentID)
	}
	return nil
}

func (d *DB) GetPlayersByTeam(ctx context.Context, tournamentID, teamID string) ([]futsal.PlayerAssignment, error) {
	ids, err := parseIDs("tournament", tournamentID, "team", teamID)
	if err != nil {
		return nil, err
	}
	var rows []assignmentWithName
	err = d.assignmentsWithNames(ctx).
		Where("player_assignments.tournament_id = ? AND player_assignments.team_id = ?", ids[0], ids[1]).
		Order("players.name").
		Scan(&rows).Error
	if err != nil {
		return nil, fmt.Errorf("list team players: %w", err)
	}
	return sliceutil.Map(rows, assignmentWithName.toDomain), nil
}

func (d *DB) GetTotalPlayerByTeam(ctx context.Context, tournamentID, teamID string) (int64, error) {
	ids, err := parseIDs("tournament", tournamentID, "team", teamID)
	if err != nil {
		return 0, err
	}
	var cnt int64
	err = d.db.WithContext(ctx).Model(&PlayerAssignment{}).
		Where("tournament_id = ? AND team_id = ?", ids[0], ids[1]).
		Count(&cnt).Error
	if err != nil {
		return 0, fmt.Errorf("count team players: %w", err)
	}
	return cnt, nil
}

func (d *DB) DeleteAllPlayerAssignments(ctx context.Context) error {
	if err := allRows(d.db.WithContext(ctx)).Delete(&PlayerAssignment{}).Error; err != nil {
		return fmt.Errorf("delete player assignments: %w", err)
	}
	return nil
}

func (d *DB) DeletePlayerAssignmentsByTournament(ctx context.Context, tournamentID string) error {
	id, err := futsal.ParseID("tournament", tournamentID)
	if err != nil {
		return err
	}
	err = d.db.WithContext(ctx).Where("tournament_id = ?", id).Delete(&PlayerAssignment{}).Error
	if err != nil {
		return fmt.Errorf("delete tournament player assignments: %w", err)
	}
	return nil
}
