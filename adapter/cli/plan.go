package cli

import (
	"fmt"
	"strings"

	"github.com/felixgeelhaar/dayplan/internal/timetable/application/commands"
	"github.com/felixgeelhaar/dayplan/internal/timetable/domain"
	"github.com/spf13/cobra"
)

var planDate string

var planCmd = &cobra.Command{
	Use:   "plan",
	Short: "Generate the timetable for a day",
	Long: `Generate a conflict-free timetable for a day.

Pending tasks are placed into the free time between your unavailable
hours, ordered by deadline urgency, priority, and category. Recovery
breaks are inserted after long stretches of focused work.

Examples:
  dayplan plan                    # Plan today
  dayplan plan --date tomorrow
  dayplan plan --date 2026-09-01`,
	RunE: func(cmd *cobra.Command, args []string) error {
		app := GetApp()
		if app == nil || app.PlanDayHandler == nil {
			return fmt.Errorf("application not initialized - database connection required")
		}

		day, err := ParseDayArg(planDate)
		if err != nil {
			return fmt.Errorf("invalid date: %w", err)
		}

		result, err := app.PlanDayHandler.Handle(cmd.Context(), commands.PlanDayCommand{Day: day})
		if err != nil {
			return fmt.Errorf("failed to plan day: %w", err)
		}

		fmt.Println()
		fmt.Printf("  TIMETABLE: %s\n", day.Time().Format("Monday, January 2, 2006"))
		fmt.Println(strings.Repeat("=", 60))
		printTimetable(result.Timetable)
		fmt.Printf("\n  %d tasks placed, %d blocks total\n\n", result.Placed, len(result.Timetable))

		return nil
	},
}

func printTimetable(tt domain.Timetable) {
	if len(tt) == 0 {
		fmt.Println("    Nothing scheduled.")
		return
	}
	for _, b := range tt {
		marker := blockMarker(b)
		fmt.Printf("    %s - %s  %s %s\n",
			b.Start.Format("15:04"),
			b.End.Format("15:04"),
			marker,
			b.Title,
		)
	}
}

func blockMarker(b domain.TimeBlock) string {
	switch b.Type {
	case domain.BlockTypeTask:
		if b.Task != nil {
			return fmt.Sprintf("[%s]", strings.ToUpper(b.Task.Priority.String()[:1]))
		}
		return "[T]"
	case domain.BlockTypeBreak:
		return "[~]"
	case domain.BlockTypeUnavailable:
		return "[x]"
	default:
		return "[ ]"
	}
}

func init() {
	planCmd.Flags().StringVarP(&planDate, "date", "d", "", "date to plan (today, tomorrow, YYYY-MM-DD)")
	rootCmd.AddCommand(planCmd)
}
