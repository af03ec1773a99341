package cli

import (
	"fmt"
	"strings"

	"github.com/felixgeelhaar/dayplan/internal/timetable/application/queries"
	"github.com/spf13/cobra"
)

var showDate string

var showCmd = &cobra.Command{
	Use:   "show",
	Short: "Show a day's stored timetable",
	Long: `Show the stored timetable for a day without regenerating it.

Examples:
  dayplan show
  dayplan show --date 2026-09-01`,
	RunE: func(cmd *cobra.Command, args []string) error {
		app := GetApp()
		if app == nil || app.GetTimetableHandler == nil {
			return fmt.Errorf("application not initialized - database connection required")
		}

		day, err := ParseDayArg(showDate)
		if err != nil {
			return fmt.Errorf("invalid date: %w", err)
		}

		tt, err := app.GetTimetableHandler.Handle(cmd.Context(), queries.GetTimetableQuery{Day: day})
		if err != nil {
			return fmt.Errorf("failed to load timetable: %w", err)
		}

		fmt.Println()
		fmt.Printf("  TIMETABLE: %s\n", day.Time().Format("Monday, January 2, 2006"))
		fmt.Println(strings.Repeat("=", 60))

		if len(tt.Blocks) == 0 {
			fmt.Println("    Nothing scheduled. Run: dayplan plan")
			fmt.Println()
			return nil
		}

		for _, b := range tt.Blocks {
			fmt.Printf("    %s - %s  %-12s %s\n",
				b.StartTime.Format("15:04"),
				b.EndTime.Format("15:04"),
				b.BlockType,
				b.Title,
			)
		}
		fmt.Printf("\n    %d tasks, %d breaks, %d%% of the day scheduled\n\n",
			tt.TaskCount, tt.BreakCount, tt.UtilizationPct)
		return nil
	},
}

func init() {
	showCmd.Flags().StringVarP(&showDate, "date", "d", "", "date to show (today, tomorrow, YYYY-MM-DD)")
	rootCmd.AddCommand(showCmd)
}
