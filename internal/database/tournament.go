package database

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/rafiq2704/FutsalManagerApp/internal/futsal"
	"github.com/rafiq2704/FutsalManagerApp/internal/util/sliceutil"
	"github.com/rafiq2704/FutsalManagerApp/internal/util/timeutil"
)

func (d *DB) GetAllTournaments(ctx context.Context) ([]futsal.Tournament, error) {
	var rows []Tournament
	err := d.db.WithContext(ctx).Order("date").Order("name").Find(&rows).Error
	if err != nil {
		return nil, fmt.Errorf("list tournaments: %w", err)
	}
	return sliceutil.Map(rows, Tournament.toDomain), nil
}

func (d *DB) GetTournamentByDate(ctx context.Context, date timeutil.Date) (futsal.Tournament, bool, error) {
	if date.IsZero() {
		return futsal.Tournament{}, false, fmt.Errorf("%w: no tournament date", futsal.ErrInvalidArgument)
	}
	if !date.Valid() {
		return futsal.Tournament{}, false, fmt.Errorf("%w: invalid tournament date %v", futsal.ErrInvalidArgument, date)
	}
	var rows []Tournament
	err := d.db.WithContext(ctx).Where("date = ?", date).Order("name").Limit(1).Find(&rows).Error
	if err != nil {
		return futsal.Tournament{}, false, fmt.Errorf("get tournament by date: %w", err)
	}
	if len(rows) == 0 {
		return futsal.Tournament{}, false, nil
	}
	return rows[0].toDomain(), true, nil
}

func (d *DB) GetTournamentByID(ctx context.Context, tournamentID string) (futsal.Tournament, bool, error) {
	id, err := futsal.ParseID("tournament", tournamentID)
	if err != nil {
		return futsal.Tournament{}, false, err
	}
	var rows []Tournament
	err = d.db.WithContext(ctx).Where("id = ?", id).Limit(1).Find(&rows).Error
	if err != nil {
		return futsal.Tournament{}, false, fmt.Errorf("get tournament: %w", err)
	}
	if len(rows) == 0 {
		return futsal.Tournament{}, false, nil
	}
	return rows[0].toDomain(), true, nil
}

func (d *DB) AddEditTournament(ctx context.Context, t futsal.Tournament) (uuid.UUID, error) {
	t.Normalize()
	if err := t.Validate(); err != nil {
		return uuid.Nil, err
	}

	id, ok := t.ID.ID()
	if !ok {
		id = d.newID()
		err := d.db.WithContext(ctx).Create(&Tournament{
			ID:        id,
			Date:      t.Date,
			Name:      t.Name,
			IsDeleted: t.IsDeleted,
		}).Error
		if err != nil {
			return uuid.Nil, fmt.Errorf("create tournament: %w", err)
		}
		return id, nil
	}

	res := d.db.WithContext(ctx).Model(&Tournament{}).Where("id = ?", id).Updates(map[string]any{
		"date":       t.Date,
		"name":       t.Name,
		"is_deleted": t.IsDeleted,
	})
	if res.Error != nil {
		return uuid.Nil, fmt.Errorf("update tournament: %w", res.Error)
	}
	if res.RowsAffected == 0 {
		return uuid.Nil, fmt.Errorf("%w: tournament %v", futsal.ErrNotFound, id)
	}
	return id, nil
}

// DeleteTournament removes the tournament row only. Matches, scores and
// assignments of the tournament are kept; use the tournament-scoped resets
// to clear them.
func (d *DB) DeleteTournament(ctx context.Context, tournamentID string) error {
	id, err := futsal.ParseID("tournament", tournamentID)
	if err != nil {
		return err
	}
	res := d.db.WithContext(ctx).Where("id = ?", id).Delete(&Tournament{})
	if res.Error != nil {
		return fmt.Errorf("delete tournament: %w", res.Error)
	}
	if res.RowsAffected == 0 {
		return fmt.Errorf("%w: tournament %v", futsal.ErrNotFound, id)
	}
	return nil
}
