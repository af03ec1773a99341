package block

import (
	"fmt"

	"github.com/felixgeelhaar/dayplan/adapter/cli"
	"github.com/felixgeelhaar/dayplan/internal/timetable/application/commands"
	"github.com/google/uuid"
	"github.com/spf13/cobra"
)

var skipDate string

var skipCmd = &cobra.Command{
	Use:   "skip [block-id]",
	Short: "Skip one occurrence of a recurring block",
	Long: `Record an exception so a recurring block does not apply on one date.

The freed window becomes available to tasks when the day is replanned.

Examples:
  dayplan block skip 4f2a... --date 2026-09-01
  dayplan block skip 4f2a... --date tomorrow`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		app := cli.GetApp()
		if app == nil || app.AddExceptionHandler == nil {
			return fmt.Errorf("application not initialized - database connection required")
		}

		blockID, err := uuid.Parse(args[0])
		if err != nil {
			return fmt.Errorf("invalid block id: %w", err)
		}
		day, err := cli.ParseDayArg(skipDate)
		if err != nil {
			return fmt.Errorf("invalid date: %w", err)
		}

		if _, err := app.AddExceptionHandler.Handle(cmd.Context(), commands.AddExceptionCommand{
			BlockID: blockID,
			Day:     day,
		}); err != nil {
			return fmt.Errorf("failed to skip occurrence: %w", err)
		}

		fmt.Printf("Occurrence on %s skipped for block %s\n", day, blockID)
		return nil
	},
}

func init() {
	skipCmd.Flags().StringVarP(&skipDate, "date", "d", "", "occurrence date to skip (today, tomorrow, YYYY-MM-DD)")
	_ = skipCmd.MarkFlagRequired("date")
}
