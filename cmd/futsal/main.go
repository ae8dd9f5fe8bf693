package main

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/mattn/go-colorable"
	"github.com/spf13/cobra"

	"github.com/rafiq2704/FutsalManagerApp/internal/database"
	"github.com/rafiq2704/FutsalManagerApp/internal/util/signal"
	"github.com/rafiq2704/FutsalManagerApp/internal/util/slogx"
	"github.com/rafiq2704/FutsalManagerApp/internal/util/style"
)

var rootCmd = &cobra.Command{
	Version:       "indev",
	Use:           "futsal",
	Short:         "Keeps players, teams, matches and goals of futsal tournaments",
	SilenceUsage:  true,
	SilenceErrors: true,
}

var (
	configPath string
	dbPath     string
)

type env struct {
	log *slog.Logger
	db  *database.DB
	out io.Writer
}

// run opens the database described by the global flags and calls f with it.
func run(cmd *cobra.Command, f func(ctx context.Context, e *env) error) error {
	opts, err := LoadOptions(configPath)
	if err != nil {
		return err
	}
	if dbPath != "" {
		opts.DB.Path = dbPath
	}
	if err := opts.FillDefaults(); err != nil {
		return err
	}

	log, err := slogx.New(colorable.NewColorableStderr(), opts.Log)
	if err != nil {
		return fmt.Errorf("create logger: %w", err)
	}

	ctx, cancel := signal.NotifyContext(cmd.Context(), log, os.Interrupt)
	defer cancel()

	db, err := database.New(log, opts.DB)
	if err != nil {
		return fmt.Errorf("open db: %w", err)
	}
	defer db.Close()

	return f(ctx, &env{
		log: log,
		db:  db,
		out: colorable.NewColorableStdout(),
	})
}

func main() {
	p := rootCmd.PersistentFlags()
	p.StringVarP(&configPath, "config", "c", "", "options file")
	p.StringVar(&dbPath, "db", "", "database file (overrides the options file)")

	rootCmd.AddCommand(
		tournamentCmd(),
		playerCmd(),
		teamCmd(),
		matchCmd(),
		scoreCmd(),
		adminCmd(),
		seedCmd(),
	)

	if err := rootCmd.ExecuteContext(context.Background()); err != nil {
		fmt.Fprintf(os.Stderr, "%s %v\n", style.WithSE("error:", style.Bold, style.FgRed), err)
		os.Exit(1)
	}
}
