package block

import (
	"github.com/spf13/cobra"
)

// Cmd is the block command group
var Cmd = &cobra.Command{
	Use:   "block",
	Short: "Manage unavailable blocks",
	Long:  `Declare the hours the planner must leave alone: meetings, commutes, recurring classes.`,
}

func init() {
	Cmd.AddCommand(addCmd)
	Cmd.AddCommand(removeCmd)
	Cmd.AddCommand(skipCmd)
}
