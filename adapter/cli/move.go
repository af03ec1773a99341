package cli

import (
	"fmt"

	"github.com/felixgeelhaar/dayplan/internal/timetable/application/commands"
	"github.com/google/uuid"
	"github.com/spf13/cobra"
)

var (
	moveDate  string
	moveStart string
)

var moveCmd = &cobra.Command{
	Use:   "move [task-id]",
	Short: "Move a scheduled task to a new start time",
	Long: `Move a task's block within its day's timetable.

A move that would collide with another block is rejected silently and
the timetable stays as it was.

Examples:
  dayplan move 4f2a... --start 14:00
  dayplan move 4f2a... --date tomorrow --start 09:30`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		app := GetApp()
		if app == nil || app.MoveBlockHandler == nil {
			return fmt.Errorf("application not initialized - database connection required")
		}

		taskID, err := uuid.Parse(args[0])
		if err != nil {
			return fmt.Errorf("invalid task id: %w", err)
		}
		day, err := ParseDayArg(moveDate)
		if err != nil {
			return fmt.Errorf("invalid date: %w", err)
		}
		newStart, err := ParseClockOn(day, moveStart)
		if err != nil {
			return err
		}

		result, err := app.MoveBlockHandler.Handle(cmd.Context(), commands.MoveBlockCommand{
			Day:      day,
			TaskID:   taskID,
			NewStart: newStart,
		})
		if err != nil {
			return fmt.Errorf("failed to move task: %w", err)
		}

		if !result.Moved {
			fmt.Println("Move rejected: the target slot conflicts with another block.")
			return nil
		}

		fmt.Printf("Task moved to %s\n", newStart.Format("15:04"))
		printTimetable(result.Timetable)
		return nil
	},
}

func init() {
	moveCmd.Flags().StringVarP(&moveDate, "date", "d", "", "day of the block (today, tomorrow, YYYY-MM-DD)")
	moveCmd.Flags().StringVarP(&moveStart, "start", "s", "", "new start time (HH:MM)")
	_ = moveCmd.MarkFlagRequired("start")
	rootCmd.AddCommand(moveCmd)
}
