package main

import (
	"context"
	"fmt"
	"log/slog"
	"math/rand/v2"
	"strings"

	petname "github.com/dustinkirkland/golang-petname"
	"github.com/google/uuid"
	"github.com/lucasb-eyer/go-colorful"
	"github.com/spf13/cobra"

	"github.com/rafiq2704/FutsalManagerApp/internal/futsal"
	"github.com/rafiq2704/FutsalManagerApp/internal/util/randutil"
	"github.com/rafiq2704/FutsalManagerApp/internal/util/timeutil"
)

type seedOptions struct {
	Date    timeutil.Date
	Teams   int
	Players int
	Goals   int
}

func titleName(words int) string {
	parts := strings.Split(petname.Generate(words, " "), " ")
	for i, p := range parts {
		if p != "" {
			parts[i] = strings.ToUpper(p[:1]) + p[1:]
		}
	}
	return strings.Join(parts, " ")
}

// maxNameDraws bounds repeated draws before uniqueNames starts numbering
// names.
const maxNameDraws = 32

// uniqueNames draws n distinct names. Generated names repeat now and then,
// and the one-word pool is small, so once draws keep colliding a numbered
// form such as "Lynx 2" is used.
func uniqueNames(n, words int) []string {
	if n <= 0 {
		return nil
	}
	seen := make(map[string]struct{}, n)
	res := make([]string, 0, n)
	misses := 0
	for len(res) < n {
		name := titleName(words)
		if _, ok := seen[name]; ok {
			misses++
			if misses < maxNameDraws {
				continue
			}
			base := name
			for i := 2; ; i++ {
				name = fmt.Sprintf("%s %d", base, i)
				if _, ok := seen[name]; !ok {
					break
				}
			}
		}
		misses = 0
		seen[name] = struct{}{}
		res = append(res, name)
	}
	return res
}

// seed fills the database with a demo tournament: teams with random kits,
// players dealt randomly over the teams, a round robin of matches and some
// goals.
func seed(ctx context.Context, log *slog.Logger, db futsal.Repository, o seedOptions) (uuid.UUID, error) {
	if o.Teams < 2 {
		return uuid.Nil, fmt.Errorf("%w: need at least two teams", futsal.ErrInvalidArgument)
	}
	if o.Players < 0 {
		return uuid.Nil, fmt.Errorf("%w: negative number of players", futsal.ErrInvalidArgument)
	}
	if o.Goals < 0 {
		return uuid.Nil, fmt.Errorf("%w: negative number of goals", futsal.ErrInvalidArgument)
	}
	tid, err := db.AddEditTournament(ctx, futsal.Tournament{
		Date: o.Date,
		Name: titleName(1) + " Cup",
	})
	if err != nil {
		return uuid.Nil, fmt.Errorf("add tournament: %w", err)
	}

	teams := make([]uuid.UUID, 0, o.Teams)
	for _, name := range uniqueNames(o.Teams, 2) {
		id, err := db.AddEditTeam(ctx, futsal.Team{
			Name:  name,
			Color: colorful.FastHappyColor().Hex(),
		})
		if err != nil {
			return uuid.Nil, fmt.Errorf("add team: %w", err)
		}
		if err := db.AssignTeam(ctx, tid.String(), id.String()); err != nil {
			return uuid.Nil, fmt.Errorf("assign team: %w", err)
		}
		teams = append(teams, id)
	}

	bag := randutil.NewBag[uuid.UUID](nil)
	for _, name := range uniqueNames(o.Teams*o.Players, 1) {
		id, err := db.AddEditPlayer(ctx, futsal.Player{Name: name})
		if err != nil {
			return uuid.Nil, fmt.Errorf("add player: %w", err)
		}
		bag.Add(id)
	}
	rosters := bag.Deal(len(teams))
	for i, roster := range rosters {
		for _, pid := range roster {
			if err := db.AssignPlayer(ctx, pid.String(), teams[i].String(), tid.String()); err != nil {
				return uuid.Nil, fmt.Errorf("assign player: %w", err)
			}
		}
	}

	type fixture struct {
		id         uuid.UUID
		home, away int
	}
	var fixtures []fixture
	for i := range teams {
		for j := i + 1; j < len(teams); j++ {
			id, err := db.AddMatch(ctx, tid.String(), futsal.Match{
				HomeTeam: futsal.Team{ID: futsal.Existing(teams[i])},
				AwayTeam: futsal.Team{ID: futsal.Existing(teams[j])},
			})
			if err != nil {
				return uuid.Nil, fmt.Errorf("add match: %w", err)
			}
			fixtures = append(fixtures, fixture{id: id, home: i, away: j})
		}
	}

	for range o.Goals {
		f := fixtures[rand.IntN(len(fixtures))]
		side := f.home
		if rand.IntN(2) == 1 {
			side = f.away
		}
		roster := rosters[side]
		if len(roster) == 0 {
			continue
		}
		scorer := roster[rand.IntN(len(roster))]
		_, err := db.AddMatchScore(ctx, tid.String(), f.id.String(), teams[side].String(), scorer.String(), "")
		if err != nil {
			return uuid.Nil, fmt.Errorf("add score: %w", err)
		}
	}

	log.Info("seeded tournament",
		slog.String("tournament_id", tid.String()),
		slog.Int("teams", len(teams)),
		slog.Int("matches", len(fixtures)),
	)
	return tid, nil
}

func seedCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "seed",
		Args:  cobra.NoArgs,
		Short: "Create a demo tournament with random teams, players and goals",
	}
	p := cmd.Flags()
	date := p.StringP("date", "d", "today", "tournament date (YYYY-MM-DD)")
	teams := p.IntP("teams", "t", 4, "number of teams")
	players := p.IntP("players", "p", 5, "players per team")
	goals := p.IntP("goals", "g", 20, "number of goals to record")
	cmd.RunE = func(cmd *cobra.Command, _ []string) error {
		d, err := parseDateFlag(*date)
		if err != nil {
			return err
		}
		return run(cmd, func(ctx context.Context, e *env) error {
			id, err := seed(ctx, e.log, e.db, seedOptions{
				Date:    d,
				Teams:   *teams,
				Players: *players,
				Goals:   *goals,
			})
			if err != nil {
				return err
			}
			_, _ = fmt.Fprintln(e.out, id)
			return nil
		})
	}
	return cmd
}
