package main

import (
	"context"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/rafiq2704/FutsalManagerApp/internal/futsal"
)

func playerCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:     "player",
		Aliases: []string{"p"},
		Short:   "Manage players and their tournament status",
	}
	cmd.AddCommand(
		playerAddCmd(),
		playerEditCmd(),
		playerListCmd(),
		playerFindCmd(),
		playerDeleteCmd(),
		playerAssignCmd(),
		playerStatusCmd(),
		playerSetStatusCmd(),
		playerByTeamCmd(),
	)
	return cmd
}

func playerAddCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "add NAME",
		Args:  cobra.MinimumNArgs(1),
		Short: "Register a player",
		RunE: func(cmd *cobra.Command, args []string) error {
			return run(cmd, func(ctx context.Context, e *env) error {
				id, err := e.db.AddEditPlayer(ctx, futsal.Player{Name: strings.Join(args, " ")})
				if err != nil {
					return err
				}
				_, _ = fmt.Fprintln(e.out, id)
				return nil
			})
		},
	}
}

func playerEditCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "edit PLAYER",
		Args:  cobra.ExactArgs(1),
		Short: "Rename or restore a player",
	}
	p := cmd.Flags()
	name := p.StringP("name", "n", "", "new name")
	deleted := p.Bool("deleted", false, "mark the player deleted")
	cmd.RunE = func(cmd *cobra.Command, args []string) error {
		return run(cmd, func(ctx context.Context, e *env) error {
			pl, err := resolvePlayer(ctx, e.db, args[0])
			if err != nil {
				return err
			}
			if cmd.Flags().Changed("name") {
				pl.Name = *name
			}
			if cmd.Flags().Changed("deleted") {
				pl.IsDeleted = *deleted
			}
			_, err = e.db.AddEditPlayer(ctx, pl)
			return err
		})
	}
	return cmd
}

func printPlayers(e *env, ps []futsal.Player) error {
	tab := newTable(e.out, "ID", "NAME", "GOALS", "DELETED")
	for _, p := range ps {
		tab.row(p.ID, p.Name, p.TotalGoals, yesNo(p.IsDeleted))
	}
	return tab.flush()
}

func playerListCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "list",
		Args:  cobra.NoArgs,
		Short: "List players with their goals",
	}
	all := cmd.Flags().BoolP("all", "a", false, "include deleted players")
	cmd.RunE = func(cmd *cobra.Command, _ []string) error {
		return run(cmd, func(ctx context.Context, e *env) error {
			ps, err := e.db.GetAllPlayers(ctx, *all)
			if err != nil {
				return err
			}
			return printPlayers(e, ps)
		})
	}
	return cmd
}

func playerFindCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "find TEXT",
		Args:  cobra.MinimumNArgs(1),
		Short: "Find players by part of their name",
		RunE: func(cmd *cobra.Command, args []string) error {
			return run(cmd, func(ctx context.Context, e *env) error {
				ps, err := e.db.GetPlayersByName(ctx, strings.Join(args, " "))
				if err != nil {
					return err
				}
				return printPlayers(e, ps)
			})
		},
	}
}

func playerDeleteCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "delete PLAYER",
		Args:  cobra.ExactArgs(1),
		Short: "Delete a player",
		Long: `Delete a player.

Players who were ever assigned to a team or scored a goal are only marked
deleted, so that past tournaments stay intact.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			return run(cmd, func(ctx context.Context, e *env) error {
				return e.db.DeletePlayer(ctx, args[0])
			})
		},
	}
}

func playerAssignCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "assign PLAYER TEAM TOURNAMENT",
		Args:  cobra.ExactArgs(3),
		Short: "Put a player into a team for a tournament",
		RunE: func(cmd *cobra.Command, args []string) error {
			return run(cmd, func(ctx context.Context, e *env) error {
				team, err := resolveTeam(ctx, e.db, args[1])
				if err != nil {
					return err
				}
				t, err := resolveTournament(ctx, e.db, args[2])
				if err != nil {
					return err
				}
				return e.db.AssignPlayer(ctx, args[0], team.ID.String(), t.ID.String())
			})
		},
	}
}

func playerStatusCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "status PLAYER TOURNAMENT",
		Args:  cobra.ExactArgs(2),
		Short: "Show the team and status of a player in a tournament",
		RunE: func(cmd *cobra.Command, args []string) error {
			return run(cmd, func(ctx context.Context, e *env) error {
				t, err := resolveTournament(ctx, e.db, args[1])
				if err != nil {
					return err
				}
				a, ok, err := e.db.GetPlayerStatusByTournament(ctx, args[0], t.ID.String())
				if err != nil {
					return err
				}
				if !ok {
					return fmt.Errorf("%w: player does not play in %q", futsal.ErrAssignmentNotFound, t.Name)
				}
				team, _, err := e.db.GetTeamByID(ctx, a.TeamID.String())
				if err != nil {
					return err
				}
				if !team.ID.IsAssigned() {
					team.ID = futsal.Existing(a.TeamID)
				}
				tab := newTable(e.out, "PLAYER", "TEAM", "PAID", "PRESENT")
				tab.row(a.Name, teamName(team), yesNo(a.Paid), yesNo(a.Attendance))
				return tab.flush()
			})
		},
	}
}

func playerSetStatusCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "set-status PLAYER TOURNAMENT",
		Args:  cobra.ExactArgs(2),
		Short: "Record payment and attendance of a player",
	}
	p := cmd.Flags()
	paid := p.Bool("paid", false, "the player has paid")
	present := p.Bool("present", false, "the player attended")
	teamArg := p.String("team", "", "only change the assignment in this team")
	cmd.RunE = func(cmd *cobra.Command, args []string) error {
		return run(cmd, func(ctx context.Context, e *env) error {
			t, err := resolveTournament(ctx, e.db, args[1])
			if err != nil {
				return err
			}
			pl, err := resolvePlayer(ctx, e.db, args[0])
			if err != nil {
				return err
			}
			a := futsal.PlayerAssignment{
				PlayerID:     mustID(pl.ID),
				TournamentID: mustID(t.ID),
				Paid:         *paid,
				Attendance:   *present,
			}
			if *teamArg != "" {
				team, err := resolveTeam(ctx, e.db, *teamArg)
				if err != nil {
					return err
				}
				a.TeamID = mustID(team.ID)
			}
			return e.db.UpdatePlayerByTournament(ctx, a)
		})
	}
	return cmd
}

func playerByTeamCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "by-team TOURNAMENT TEAM",
		Args:  cobra.ExactArgs(2),
		Short: "List players of a team in a tournament",
		RunE: func(cmd *cobra.Command, args []string) error {
			return run(cmd, func(ctx context.Context, e *env) error {
				t, err := resolveTournament(ctx, e.db, args[0])
				if err != nil {
					return err
				}
				team, err := resolveTeam(ctx, e.db, args[1])
				if err != nil {
					return err
				}
				tid, teamID := t.ID.String(), team.ID.String()
				ps, err := e.db.GetPlayersByTeam(ctx, tid, teamID)
				if err != nil {
					return err
				}
				total, err := e.db.GetTotalPlayerByTeam(ctx, tid, teamID)
				if err != nil {
					return err
				}
				tab := newTable(e.out, "ID", "NAME", "PAID", "PRESENT")
				for _, p := range ps {
					tab.row(p.PlayerID, p.Name, yesNo(p.Paid), yesNo(p.Attendance))
				}
				if err := tab.flush(); err != nil {
					return err
				}
				_, _ = fmt.Fprintf(e.out, "%d players in %s\n", total, teamName(team))
				return nil
			})
		},
	}
}
