package main

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"github.com/amarkin/studybot/internal/cli"
	"github.com/amarkin/studybot/internal/db"
	"github.com/amarkin/studybot/internal/planner"
	"github.com/amarkin/studybot/internal/store"
	"github.com/mattn/go-isatty"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	// Determine DB path: env var or default ~/.studybot/studybot.db
	dbPath := os.Getenv("STUDYBOT_DB")
	if dbPath == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return fmt.Errorf("finding home directory: %w", err)
		}
		dbPath = filepath.Join(home, ".studybot", "studybot.db")
	}

	database, err := db.OpenDB(dbPath)
	if err != nil {
		return fmt.Errorf("opening database: %w", err)
	}
	defer database.Close()

	p, err := planner.Load(context.Background(), store.NewSQLitePlanStore(database))
	if err != nil {
		return err
	}

	app := &cli.App{Planner: p}

	// Detect interactive terminal for the chat-shell entrypoint.
	app.IsInteractive = func() bool {
		return isatty.IsTerminal(os.Stdin.Fd()) || isatty.IsCygwinTerminal(os.Stdin.Fd())
	}

	rootCmd := cli.NewRootCmd(app)
	return rootCmd.Execute()
}
