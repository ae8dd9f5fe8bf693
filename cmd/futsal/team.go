package main

import (
	"context"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/rafiq2704/FutsalManagerApp/internal/futsal"
)

func teamCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "team",
		Short: "Manage teams",
	}
	cmd.AddCommand(
		teamAddCmd(),
		teamEditCmd(),
		teamListCmd(),
		teamFindCmd(),
		teamAssignCmd(),
		teamByTournamentCmd(),
		teamResetCmd(),
	)
	return cmd
}

func teamAddCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "add NAME",
		Args:  cobra.MinimumNArgs(1),
		Short: "Create a team",
	}
	color := cmd.Flags().String("color", "", "kit colour, as #rrggbb")
	cmd.RunE = func(cmd *cobra.Command, args []string) error {
		return run(cmd, func(ctx context.Context, e *env) error {
			id, err := e.db.AddEditTeam(ctx, futsal.Team{
				Name:  strings.Join(args, " "),
				Color: *color,
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

func teamEditCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "edit TEAM",
		Args:  cobra.ExactArgs(1),
		Short: "Rename a team or change its colour",
	}
	p := cmd.Flags()
	name := p.StringP("name", "n", "", "new name")
	color := p.String("color", "", "new kit colour, empty to clear")
	cmd.RunE = func(cmd *cobra.Command, args []string) error {
		return run(cmd, func(ctx context.Context, e *env) error {
			t, err := resolveTeam(ctx, e.db, args[0])
			if err != nil {
				return err
			}
			if cmd.Flags().Changed("name") {
				t.Name = *name
			}
			if cmd.Flags().Changed("color") {
				t.Color = *color
			}
			_, err = e.db.AddEditTeam(ctx, t)
			return err
		})
	}
	return cmd
}

func printTeams(e *env, ts []futsal.Team) error {
	tab := newTable(e.out, "ID", "NAME", "KIT")
	for _, t := range ts {
		tab.row(t.ID, t.Name, kit(t))
	}
	return tab.flush()
}

func teamListCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Args:  cobra.NoArgs,
		Short: "List all teams",
		RunE: func(cmd *cobra.Command, _ []string) error {
			return run(cmd, func(ctx context.Context, e *env) error {
				ts, err := e.db.GetAllTeams(ctx)
				if err != nil {
					return err
				}
				return printTeams(e, ts)
			})
		},
	}
}

func teamFindCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "find NAME",
		Args:  cobra.MinimumNArgs(1),
		Short: "Find a team by its exact name",
		RunE: func(cmd *cobra.Command, args []string) error {
			return run(cmd, func(ctx context.Context, e *env) error {
				name := strings.Join(args, " ")
				t, ok, err := e.db.GetTeamByName(ctx, name)
				if err != nil {
					return err
				}
				if !ok {
					return fmt.Errorf("%w: %q", futsal.ErrTeamNotFound, name)
				}
				return printTeams(e, []futsal.Team{t})
			})
		},
	}
}

func teamAssignCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "assign TEAM TOURNAMENT",
		Args:  cobra.ExactArgs(2),
		Short: "Enter a team into a tournament",
		RunE: func(cmd *cobra.Command, args []string) error {
			return run(cmd, func(ctx context.Context, e *env) error {
				t, err := resolveTournament(ctx, e.db, args[1])
				if err != nil {
					return err
				}
				team, err := resolveTeam(ctx, e.db, args[0])
				if err != nil {
					return err
				}
				return e.db.AssignTeam(ctx, t.ID.String(), team.ID.String())
			})
		},
	}
}

func teamByTournamentCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "by-tournament TOURNAMENT",
		Args:  cobra.ExactArgs(1),
		Short: "List teams entered into a tournament",
		RunE: func(cmd *cobra.Command, args []string) error {
			return run(cmd, func(ctx context.Context, e *env) error {
				t, err := resolveTournament(ctx, e.db, args[0])
				if err != nil {
					return err
				}
				ts, err := e.db.GetTeamsByTournament(ctx, t.ID.String())
				if err != nil {
					return err
				}
				total, err := e.db.GetTotalTeamsByTournament(ctx, t.ID.String())
				if err != nil {
					return err
				}
				if err := printTeams(e, ts); err != nil {
					return err
				}
				_, _ = fmt.Fprintf(e.out, "%d teams in %s\n", total, t.Name)
				return nil
			})
		},
	}
}

func teamResetCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "reset",
		Args:  cobra.NoArgs,
		Short: "Remove every team",
		Long: `Remove every team and every team assignment, in all tournaments.

With --assignments-only, teams are kept and only their tournament entries
are removed.`,
	}
	onlyAssignments := cmd.Flags().Bool("assignments-only", false, "keep teams, clear their tournament entries")
	cmd.RunE = func(cmd *cobra.Command, _ []string) error {
		return run(cmd, func(ctx context.Context, e *env) error {
			if *onlyAssignments {
				return e.db.DeleteAllTeamsAssignment(ctx)
			}
			return e.db.DeleteAllTeams(ctx)
		})
	}
	return cmd
}
