package main

import (
	"context"
	"fmt"
	"io"
	"strings"
	"text/tabwriter"

	"github.com/google/uuid"

	"github.com/rafiq2704/FutsalManagerApp/internal/futsal"
	"github.com/rafiq2704/FutsalManagerApp/internal/util/style"
	"github.com/rafiq2704/FutsalManagerApp/internal/util/timeutil"
)

type table struct {
	w *tabwriter.Writer
}

func newTable(out io.Writer, header ...string) *table {
	t := &table{w: tabwriter.NewWriter(out, 0, 4, 2, ' ', 0)}
	t.row(sliceAny(header)...)
	return t
}

func sliceAny[T any](v []T) []any {
	res := make([]any, len(v))
	for i, x := range v {
		res[i] = x
	}
	return res
}

func (t *table) row(cols ...any) {
	for i, c := range cols {
		if i != 0 {
			_, _ = io.WriteString(t.w, "\t")
		}
		_, _ = fmt.Fprint(t.w, c)
	}
	_, _ = io.WriteString(t.w, "\n")
}

func (t *table) flush() error {
	return t.w.Flush()
}

func yesNo(b bool) string {
	if b {
		return "yes"
	}
	return "no"
}

// kit renders a team colour swatch. It goes into the last column, as escape
// sequences would break the alignment of anything after it.
func kit(t futsal.Team) string {
	if sw := style.Swatch(t.Color); sw != "" {
		return sw + " " + t.Color
	}
	return t.Color
}

func teamName(t futsal.Team) string {
	if t.Name == "" {
		return "(removed " + t.ID.String() + ")"
	}
	return t.Name
}

// resolveTournament accepts either a tournament id or its date.
func resolveTournament(ctx context.Context, db futsal.TournamentDB, s string) (futsal.Tournament, error) {
	s = strings.TrimSpace(s)
	var (
		t   futsal.Tournament
		ok  bool
		err error
	)
	if date, dateErr := timeutil.ParseDate(s); dateErr == nil {
		t, ok, err = db.GetTournamentByDate(ctx, date)
	} else {
		t, ok, err = db.GetTournamentByID(ctx, s)
	}
	if err != nil {
		return futsal.Tournament{}, err
	}
	if !ok {
		return futsal.Tournament{}, fmt.Errorf("%w: tournament %q", futsal.ErrNotFound, s)
	}
	return t, nil
}

// resolveTeam accepts either a team id or its exact name.
func resolveTeam(ctx context.Context, db futsal.TeamDB, s string) (futsal.Team, error) {
	s = strings.TrimSpace(s)
	var (
		t   futsal.Team
		ok  bool
		err error
	)
	if _, parseErr := uuid.Parse(s); parseErr == nil {
		t, ok, err = db.GetTeamByID(ctx, s)
	} else {
		t, ok, err = db.GetTeamByName(ctx, s)
	}
	if err != nil {
		return futsal.Team{}, err
	}
	if !ok {
		return futsal.Team{}, fmt.Errorf("%w: %q", futsal.ErrTeamNotFound, s)
	}
	return t, nil
}

func resolvePlayer(ctx context.Context, db futsal.PlayerDB, s string) (futsal.Player, error) {
	p, ok, err := db.GetPlayerByID(ctx, s)
	if err != nil {
		return futsal.Player{}, err
	}
	if !ok {
		return futsal.Player{}, fmt.Errorf("%w: player %q", futsal.ErrNotFound, s)
	}
	return p, nil
}

func mustID(r futsal.Ref) uuid.UUID {
	id, ok := r.ID()
	if !ok {
		panic("must not happen")
	}
	return id
}
