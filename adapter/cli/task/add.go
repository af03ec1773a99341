package task

import (
	"fmt"
	"time"

	"github.com/felixgeelhaar/dayplan/adapter/cli"
	"github.com/felixgeelhaar/dayplan/internal/timetable/application/commands"
	"github.com/spf13/cobra"
)

var (
	priority string
	category string
	duration int
	deadline string
)

var addCmd = &cobra.Command{
	Use:   "add [name]",
	Short: "Add a new task",
	Long: `Add a task for the planner to schedule.

Examples:
  dayplan task add "Write report" -d 90 --deadline 2026-09-01
  dayplan task add "Review PR" -d 30 -p high -c work
  dayplan task add "Read chapter 4" -d 45 -p medium -c study --deadline tomorrow`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		app := cli.GetApp()
		if app == nil || app.CreateTaskHandler == nil {
			return fmt.Errorf("application not initialized - database connection required")
		}

		day, err := cli.ParseDayArg(deadline)
		if err != nil {
			return fmt.Errorf("invalid deadline (use YYYY-MM-DD): %w", err)
		}
		// deadline lands at end of day so same-day tasks stay eligible
		due := day.At(23, 59)

		createCmd := commands.CreateTaskCommand{
			Name:            args[0],
			DurationMinutes: duration,
			Deadline:        due,
			Priority:        priority,
			Category:        category,
		}

		result, err := app.CreateTaskHandler.Handle(cmd.Context(), createCmd)
		if err != nil {
			return fmt.Errorf("failed to add task: %w", err)
		}

		fmt.Printf("Task added: %s\n", result.TaskID)
		fmt.Printf("  name: %s\n", args[0])
		fmt.Printf("  duration: %d minutes\n", duration)
		fmt.Printf("  deadline: %s\n", due.Format("2006-01-02 15:04"))
		fmt.Printf("  priority: %s, category: %s\n", priority, category)
		return nil
	},
}

func init() {
	addCmd.Flags().IntVarP(&duration, "duration", "d", 30, "estimated duration in minutes")
	addCmd.Flags().StringVar(&deadline, "deadline", time.Now().Format("2006-01-02"), "deadline date (today, tomorrow, YYYY-MM-DD)")
	addCmd.Flags().StringVarP(&priority, "priority", "p", "medium", "task priority (low, medium, high)")
	addCmd.Flags().StringVarP(&category, "category", "c", "work", "task category (work, study, leisure)")
}
