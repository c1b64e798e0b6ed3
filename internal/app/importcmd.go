package app

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/blackwell-systems/studypulse/internal/config"
	"github.com/blackwell-systems/studypulse/internal/store"
	"github.com/blackwell-systems/studypulse/internal/study"
)

var importCmd = &cobra.Command{
	Use:   "import <events.jsonl>",
	Short: "Load completion events from a JSONL export",
	Long: `Import completion events into the local database. Each line of the
input is one JSON event object. Re-importing the same export is safe:
events already present (same task and timestamp) are skipped.`,
	Args: cobra.ExactArgs(1),
	RunE: runImport,
}

func init() {
	rootCmd.AddCommand(importCmd)
}

func runImport(cmd *cobra.Command, args []string) error {
	if _, err := config.Load(flagConfig); err != nil {
		return fmt.Errorf("loading config: %w", err)
	}

	events, err := study.ParseEventsFile(args[0])
	if err != nil {
		return fmt.Errorf("reading events file: %w", err)
	}
	if len(events) == 0 {
		fmt.Println("No events found in", args[0])
		return nil
	}

	db, err := store.Open(config.DBPath())
	if err != nil {
		return fmt.Errorf("opening database: %w", err)
	}
	defer func() { _ = db.Close() }()

	inserted, err := db.ImportEvents(events)
	if err != nil {
		return fmt.Errorf("importing events: %w", err)
	}

	fmt.Printf("Imported %d of %d events (%d already present)\n",
		inserted, len(events), len(events)-inserted)
	return nil
}
