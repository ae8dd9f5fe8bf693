package database

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"gorm.io/gorm"

	"github.com/rafiq2704/FutsalManagerApp/internal/futsal"
)

// Admin executes raw statements. Nothing it does is checked against the
// repository invariants.
type Admin struct {
	db  *gorm.DB
	log *slog.Logger
}

var _ futsal.Admin = (*Admin)(nil)

func (a *Admin) ExecRaw(ctx context.Context, statement string) (int64, error) {
	statement = strings.TrimSpace(statement)
	if statement == "" {
		return 0, fmt.Errorf("%w: empty statement", futsal.ErrInvalidArgument)
	}
	a.log.WarnContext(ctx, "executing raw statement", slog.String("sql", statement))
	res := a.db.WithContext(ctx).Exec(statement)
	if res.Error != nil {
		return 0, fmt.Errorf("exec: %w", res.Error)
	}
	return res.RowsAffected, nil
}
