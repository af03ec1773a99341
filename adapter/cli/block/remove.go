package block

import (
	"fmt"

	"github.com/felixgeelhaar/dayplan/adapter/cli"
	"github.com/felixgeelhaar/dayplan/internal/timetable/application/commands"
	"github.com/google/uuid"
	"github.com/spf13/cobra"
)

var removeCmd = &cobra.Command{
	Use:   "remove [block-id]",
	Short: "Remove an unavailable block",
	Long:  `Remove a block and replan today's timetable without it.`,
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		app := cli.GetApp()
		if app == nil || app.RemoveBlockHandler == nil {
			return fmt.Errorf("application not initialized - database connection required")
		}

		blockID, err := uuid.Parse(args[0])
		if err != nil {
			return fmt.Errorf("invalid block id: %w", err)
		}

		if _, err := app.RemoveBlockHandler.Handle(cmd.Context(), commands.RemoveBlockCommand{BlockID: blockID}); err != nil {
			return fmt.Errorf("failed to remove block: %w", err)
		}

		fmt.Printf("Block removed: %s\n", blockID)
		return nil
	},
}
