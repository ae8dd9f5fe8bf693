package main

import (
	"context"
	"fmt"
	"strings"

	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"

	"github.com/rafiq2704/FutsalManagerApp/internal/futsal"
	"github.com/rafiq2704/FutsalManagerApp/internal/util/human"
	"github.com/rafiq2704/FutsalManagerApp/internal/util/sliceutil"
	"github.com/rafiq2704/FutsalManagerApp/internal/util/style"
	"github.com/rafiq2704/FutsalManagerApp/internal/util/timeutil"
)

func tournamentCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:     "tournament",
		Aliases: []string{"t"},
		Short:   "Manage tournaments",
	}
	cmd.AddCommand(
		tournamentAddCmd(),
		tournamentEditCmd(),
		tournamentListCmd(),
		tournamentShowCmd(),
		tournamentByDateCmd(),
		tournamentDeleteCmd(),
		tournamentResetCmd(),
	)
	return cmd
}

func parseDateFlag(s string) (timeutil.Date, error) {
	if s == "" || s == "today" {
		return timeutil.Today(), nil
	}
	return timeutil.ParseDate(s)
}

func tournamentAddCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "add NAME",
		Args:  cobra.MinimumNArgs(1),
		Short: "Create a tournament",
	}
	date := cmd.Flags().StringP("date", "d", "today", "tournament date (YYYY-MM-DD)")
	cmd.RunE = func(cmd *cobra.Command, args []string) error {
		d, err := parseDateFlag(*date)
		if err != nil {
			return err
		}
		return run(cmd, func(ctx context.Context, e *env) error {
			id, err := e.db.AddEditTournament(ctx, futsal.Tournament{
				Date: d,
				Name: strings.Join(args, " "),
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

func tournamentEditCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "edit TOURNAMENT",
		Args:  cobra.ExactArgs(1),
		Short: "Change a tournament",
	}
	p := cmd.Flags()
	name := p.StringP("name", "n", "", "new name")
	date := p.StringP("date", "d", "", "new date (YYYY-MM-DD)")
	deleted := p.Bool("deleted", false, "mark the tournament deleted")
	cmd.RunE = func(cmd *cobra.Command, args []string) error {
		return run(cmd, func(ctx context.Context, e *env) error {
			t, err := resolveTournament(ctx, e.db, args[0])
			if err != nil {
				return err
			}
			if cmd.Flags().Changed("name") {
				t.Name = *name
			}
			if cmd.Flags().Changed("date") {
				if t.Date, err = timeutil.ParseDate(*date); err != nil {
					return err
				}
			}
			if cmd.Flags().Changed("deleted") {
				t.IsDeleted = *deleted
			}
			_, err = e.db.AddEditTournament(ctx, t)
			return err
		})
	}
	return cmd
}

func printTournaments(e *env, ts []futsal.Tournament) error {
	tab := newTable(e.out, "ID", "DATE", "NAME", "DELETED")
	for _, t := range ts {
		tab.row(t.ID, t.Date, t.Name, yesNo(t.IsDeleted))
	}
	return tab.flush()
}

func tournamentListCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "list",
		Args:  cobra.NoArgs,
		Short: "List tournaments",
	}
	all := cmd.Flags().BoolP("all", "a", false, "include deleted tournaments")
	cmd.RunE = func(cmd *cobra.Command, _ []string) error {
		return run(cmd, func(ctx context.Context, e *env) error {
			ts, err := e.db.GetAllTournaments(ctx)
			if err != nil {
				return err
			}
			if !*all {
				ts = sliceutil.FilterMap(ts, func(t futsal.Tournament) (futsal.Tournament, bool) {
					return t, !t.IsDeleted
				})
			}
			return printTournaments(e, ts)
		})
	}
	return cmd
}

func tournamentByDateCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "by-date DATE",
		Args:  cobra.ExactArgs(1),
		Short: "Find the tournament held on a date",
		RunE: func(cmd *cobra.Command, args []string) error {
			d, err := timeutil.ParseDate(args[0])
			if err != nil {
				return err
			}
			return run(cmd, func(ctx context.Context, e *env) error {
				t, ok, err := e.db.GetTournamentByDate(ctx, d)
				if err != nil {
					return err
				}
				if !ok {
					return fmt.Errorf("%w: no tournament on %v", futsal.ErrNotFound, d)
				}
				return printTournaments(e, []futsal.Tournament{t})
			})
		},
	}
}

type teamRoster struct {
	team    futsal.Team
	players []futsal.PlayerAssignment
}

func tournamentShowCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "show TOURNAMENT",
		Args:  cobra.ExactArgs(1),
		Short: "Show teams, players and matches of a tournament",
		RunE: func(cmd *cobra.Command, args []string) error {
			return run(cmd, func(ctx context.Context, e *env) error {
				t, err := resolveTournament(ctx, e.db, args[0])
				if err != nil {
					return err
				}
				tid := t.ID.String()

				teams, err := e.db.GetTeamsByTournament(ctx, tid)
				if err != nil {
					return err
				}
				rosters := make([]teamRoster, len(teams))
				var matches []futsal.Match

				g, gctx := errgroup.WithContext(ctx)
				g.Go(func() error {
					var err error
					matches, err = e.db.GetMatches(gctx, tid)
					return err
				})
				for i, team := range teams {
					g.Go(func() error {
						players, err := e.db.GetPlayersByTeam(gctx, tid, team.ID.String())
						if err != nil {
							return fmt.Errorf("players of %q: %w", team.Name, err)
						}
						rosters[i] = teamRoster{team: team, players: players}
						return nil
					})
				}
				if err := g.Wait(); err != nil {
					return err
				}

				_, _ = fmt.Fprintf(e.out, "%s  %v\n\n", style.WithS(t.Name, style.Bold), t.Date)
				for _, r := range rosters {
					_, _ = fmt.Fprintf(e.out, "%s (%d)\n", style.WithS(teamName(r.team), style.Bold), len(r.players))
					for _, p := range r.players {
						_, _ = fmt.Fprintf(e.out, "  %s  paid: %s  present: %s\n", p.Name, yesNo(p.Paid), yesNo(p.Attendance))
					}
				}
				if len(matches) != 0 {
					_, _ = fmt.Fprintln(e.out)
					tab := newTable(e.out, "MATCH", "HOME", "RESULT", "AWAY")
					for _, m := range matches {
						tab.row(m.ID, teamName(m.HomeTeam), human.Goals(m.HomeGoals, m.AwayGoals), teamName(m.AwayTeam))
					}
					return tab.flush()
				}
				return nil
			})
		},
	}
}

func tournamentDeleteCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "delete TOURNAMENT",
		Args:  cobra.ExactArgs(1),
		Short: "Delete a tournament",
		Long: `Delete a tournament.

Matches, goals and assignments of the tournament are kept. Run "tournament
reset" first to remove them.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			return run(cmd, func(ctx context.Context, e *env) error {
				t, err := resolveTournament(ctx, e.db, args[0])
				if err != nil {
					return err
				}
				return e.db.DeleteTournament(ctx, t.ID.String())
			})
		},
	}
}

func tournamentResetCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "reset [TOURNAMENT]",
		Args:  cobra.MaximumNArgs(1),
		Short: "Remove matches, goals and assignments",
		Long: `Remove matches, goals, and team and player assignments of a tournament.

With --all-tournaments, team and player assignments of every tournament are
removed instead. Matches are kept in that case.`,
	}
	all := cmd.Flags().Bool("all-tournaments", false, "clear assignments of every tournament")
	cmd.RunE = func(cmd *cobra.Command, args []string) error {
		if *all != (len(args) == 0) {
			return fmt.Errorf("%w: give either a tournament or --all-tournaments", futsal.ErrInvalidArgument)
		}
		return run(cmd, func(ctx context.Context, e *env) error {
			if *all {
				if err := e.db.DeleteAllPlayerAssignments(ctx); err != nil {
					return err
				}
				return e.db.DeleteAllTeamsAssignment(ctx)
			}
			t, err := resolveTournament(ctx, e.db, args[0])
			if err != nil {
				return err
			}
			tid := t.ID.String()
			if err := e.db.DeleteAllMatchesByTournament(ctx, tid); err != nil {
				return err
			}
			if err := e.db.DeletePlayerAssignmentsByTournament(ctx, tid); err != nil {
				return err
			}
			return e.db.DeleteTeamAssignmentsByTournament(ctx, tid)
		})
	}
	return cmd
}
