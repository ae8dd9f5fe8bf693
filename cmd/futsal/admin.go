package main

import (
	"context"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/rafiq2704/FutsalManagerApp/internal/futsal"
)

func adminCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "admin",
		Short: "Maintenance commands that bypass all checks",
	}
	cmd.AddCommand(adminExecCmd())
	return cmd
}

func adminExecCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "exec STATEMENT",
		Args:  cobra.MinimumNArgs(1),
		Short: "Run a raw SQL statement",
		Long: `Run a raw SQL statement against the database.

The statement is not checked in any way and can break the data. It only runs
when --yes is given.`,
	}
	yes := cmd.Flags().Bool("yes", false, "confirm running the statement")
	cmd.RunE = func(cmd *cobra.Command, args []string) error {
		if !*yes {
			return fmt.Errorf("refusing to run a raw statement without --yes")
		}
		return run(cmd, func(ctx context.Context, e *env) error {
			var admin futsal.Admin = e.db.UnsafeAdmin()
			n, err := admin.ExecRaw(ctx, strings.Join(args, " "))
			if err != nil {
				return err
			}
			_, _ = fmt.Fprintf(e.out, "%d rows affected\n", n)
			return nil
		})
	}
	return cmd
}
