package task

import (
	"fmt"
	"strings"

	"github.com/felixgeelhaar/dayplan/adapter/cli"
	"github.com/felixgeelhaar/dayplan/internal/timetable/application/queries"
	"github.com/spf13/cobra"
)

var listAll bool

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List tasks",
	Long: `List pending tasks. Use --all to include completed ones.

Examples:
  dayplan task list
  dayplan task list --all`,
	RunE: func(cmd *cobra.Command, args []string) error {
		app := cli.GetApp()
		if app == nil || app.ListTasksHandler == nil {
			return fmt.Errorf("application not initialized - database connection required")
		}

		tasks, err := app.ListTasksHandler.Handle(cmd.Context(), queries.ListTasksQuery{
			IncludeCompleted: listAll,
		})
		if err != nil {
			return fmt.Errorf("failed to list tasks: %w", err)
		}

		if len(tasks) == 0 {
			fmt.Println("No tasks. Add one with: dayplan task add")
			return nil
		}

		fmt.Println()
		fmt.Println("  TASKS")
		fmt.Println(strings.Repeat("-", 60))
		for _, t := range tasks {
			status := "[ ]"
			if t.Completed {
				status = "[x]"
			}
			scheduled := ""
			if t.ScheduledAt != nil {
				scheduled = fmt.Sprintf("  @ %s", t.ScheduledAt.Format("Jan 2 15:04"))
			}
			fmt.Printf("  %s %s (%dm, %s/%s, due %s)%s\n",
				status, t.Name, t.DurationMin, t.Priority, t.Category,
				t.Deadline.Format("Jan 2"), scheduled)
			fmt.Printf("      ID: %s\n", t.ID)
		}
		fmt.Println()
		return nil
	},
}

func init() {
	listCmd.Flags().BoolVarP(&listAll, "all", "a", false, "include completed tasks")
}
