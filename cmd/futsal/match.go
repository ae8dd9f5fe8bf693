package main

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/rafiq2704/FutsalManagerApp/internal/futsal"
	"github.com/rafiq2704/FutsalManagerApp/internal/util/human"
)

func matchCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:     "match",
		Aliases: []string{"m"},
		Short:   "Manage matches",
	}
	cmd.AddCommand(
		matchAddCmd(),
		matchEditCmd(),
		matchDeleteCmd(),
		matchListCmd(),
		matchClearCmd(),
	)
	return cmd
}

func resolveSides(ctx context.Context, db futsal.TeamDB, home, away string) (futsal.Match, error) {
	h, err := resolveTeam(ctx, db, home)
	if err != nil {
		return futsal.Match{}, err
	}
	a, err := resolveTeam(ctx, db, away)
	if err != nil {
		return futsal.Match{}, err
	}
	return futsal.Match{HomeTeam: h, AwayTeam: a}, nil
}

func matchAddCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "add TOURNAMENT HOME AWAY",
		Args:  cobra.ExactArgs(3),
		Short: "Schedule a match",
		Long: `Schedule a match between two teams.

If the teams already play each other in the tournament, the id of that match
is printed and nothing is added.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			return run(cmd, func(ctx context.Context, e *env) error {
				t, err := resolveTournament(ctx, e.db, args[0])
				if err != nil {
					return err
				}
				m, err := resolveSides(ctx, e.db, args[1], args[2])
				if err != nil {
					return err
				}
				id, err := e.db.AddMatch(ctx, t.ID.String(), m)
				if err != nil {
					return err
				}
				_, _ = fmt.Fprintln(e.out, id)
				return nil
			})
		},
	}
}

func matchEditCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "edit MATCH HOME AWAY",
		Args:  cobra.ExactArgs(3),
		Short: "Change the teams of a match",
		RunE: func(cmd *cobra.Command, args []string) error {
			return run(cmd, func(ctx context.Context, e *env) error {
				m, err := resolveSides(ctx, e.db, args[1], args[2])
				if err != nil {
					return err
				}
				if m.ID, err = futsal.ParseRef(args[0]); err != nil {
					return err
				}
				if !m.ID.IsAssigned() {
					return fmt.Errorf("%w: no match id", futsal.ErrInvalidID)
				}
				return e.db.UpdateMatch(ctx, m)
			})
		},
	}
}

func matchDeleteCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "delete MATCH",
		Args:  cobra.ExactArgs(1),
		Short: "Delete a match and its goals",
		RunE: func(cmd *cobra.Command, args []string) error {
			return run(cmd, func(ctx context.Context, e *env) error {
				return e.db.DeleteMatch(ctx, args[0])
			})
		},
	}
}

func matchListCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "list TOURNAMENT",
		Args:  cobra.ExactArgs(1),
		Short: "List matches of a tournament with results",
		RunE: func(cmd *cobra.Command, args []string) error {
			return run(cmd, func(ctx context.Context, e *env) error {
				t, err := resolveTournament(ctx, e.db, args[0])
				if err != nil {
					return err
				}
				ms, err := e.db.GetMatches(ctx, t.ID.String())
				if err != nil {
					return err
				}
				tab := newTable(e.out, "ID", "HOME", "RESULT", "AWAY")
				for _, m := range ms {
					tab.row(m.ID, teamName(m.HomeTeam), human.Goals(m.HomeGoals, m.AwayGoals), teamName(m.AwayTeam))
				}
				return tab.flush()
			})
		},
	}
}

func matchClearCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "clear TOURNAMENT",
		Args:  cobra.ExactArgs(1),
		Short: "Delete all matches of a tournament",
		RunE: func(cmd *cobra.Command, args []string) error {
			return run(cmd, func(ctx context.Context, e *env) error {
				t, err := resolveTournament(ctx, e.db, args[0])
				if err != nil {
					return err
				}
				return e.db.DeleteAllMatchesByTournament(ctx, t.ID.String())
			})
		},
	}
}
