package main

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/spf13/cobra"

	"github.com/rafiq2704/FutsalManagerApp/internal/futsal"
	"github.com/rafiq2704/FutsalManagerApp/internal/util/human"
	"github.com/rafiq2704/FutsalManagerApp/internal/util/sliceutil"
)

func scoreCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:     "score",
		Aliases: []string{"goal"},
		Short:   "Record and list goals",
	}
	cmd.AddCommand(
		scoreAddCmd(),
		scoreListCmd(),
		scoreCountCmd(),
		scoreDeleteCmd(),
	)
	return cmd
}

func scoreAddCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "add TOURNAMENT MATCH TEAM PLAYER",
		Args:  cobra.ExactArgs(4),
		Short: "Record a goal",
	}
	remark := cmd.Flags().StringP("remark", "r", "", "free text note, such as \"penalty\"")
	cmd.RunE = func(cmd *cobra.Command, args []string) error {
		return run(cmd, func(ctx context.Context, e *env) error {
			t, err := resolveTournament(ctx, e.db, args[0])
			if err != nil {
				return err
			}
			team, err := resolveTeam(ctx, e.db, args[2])
			if err != nil {
				return err
			}
			id, err := e.db.AddMatchScore(ctx, t.ID.String(), args[1], team.ID.String(), args[3], *remark)
			if err != nil {
				return err
			}
			_, _ = fmt.Fprintln(e.out, id)
			return nil
		})
	}
	return cmd
}

func scoreListCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "list TOURNAMENT MATCH",
		Args:  cobra.ExactArgs(2),
		Short: "List goals of a match in the order they were recorded",
		RunE: func(cmd *cobra.Command, args []string) error {
			return run(cmd, func(ctx context.Context, e *env) error {
				t, err := resolveTournament(ctx, e.db, args[0])
				if err != nil {
					return err
				}
				m, ok, err := e.db.GetMatchByID(ctx, args[1])
				if err != nil {
					return err
				}
				if !ok {
					return fmt.Errorf("%w: match %q", futsal.ErrNotFound, args[1])
				}
				scores, err := e.db.GetScoresByMatch(ctx, t.ID.String(), args[1])
				if err != nil {
					return err
				}
				players, err := e.db.GetAllPlayers(ctx, true)
				if err != nil {
					return err
				}
				byID := sliceutil.KeyBy(players, func(p futsal.Player) uuid.UUID { return mustID(p.ID) })

				now := time.Now()
				tab := newTable(e.out, "ID", "TEAM", "PLAYER", "RECORDED", "REMARK")
				for _, s := range scores {
					team := m.AwayTeam
					if mustID(m.HomeTeam.ID) == s.TeamID {
						team = m.HomeTeam
					}
					tab.row(s.ID, teamName(team), byID[s.PlayerID].Name, human.Ago(now, s.CreatedAt), s.Remark)
				}
				return tab.flush()
			})
		},
	}
}

func scoreCountCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "count TOURNAMENT MATCH TEAM",
		Args:  cobra.ExactArgs(3),
		Short: "Count goals of a team in a match",
		RunE: func(cmd *cobra.Command, args []string) error {
			return run(cmd, func(ctx context.Context, e *env) error {
				t, err := resolveTournament(ctx, e.db, args[0])
				if err != nil {
					return err
				}
				team, err := resolveTeam(ctx, e.db, args[2])
				if err != nil {
					return err
				}
				n, err := e.db.GetTotalScoresByMatchTeam(ctx, t.ID.String(), args[1], team.ID.String())
				if err != nil {
					return err
				}
				_, _ = fmt.Fprintln(e.out, n)
				return nil
			})
		},
	}
}

func scoreDeleteCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "delete SCORE",
		Args:  cobra.ExactArgs(1),
		Short: "Delete a wrongly recorded goal",
		RunE: func(cmd *cobra.Command, args []string) error {
			return run(cmd, func(ctx context.Context, e *env) error {
				return e.db.DeleteScore(ctx, args[0])
			})
		},
	}
}
