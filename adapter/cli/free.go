package cli

import (
	"fmt"
	"strings"
	"time"

	"github.com/felixgeelhaar/dayplan/internal/timetable/application/queries"
	"github.com/spf13/cobra"
)

var (
	freeDate string
	freeMin  int
)

var freeCmd = &cobra.Command{
	Use:   "free",
	Short: "Show free slots in a day's timetable",
	Long: `Show the unoccupied intervals of a day's stored timetable.

Examples:
  dayplan free
  dayplan free --min 60
  dayplan free --date tomorrow`,
	RunE: func(cmd *cobra.Command, args []string) error {
		app := GetApp()
		if app == nil || app.FreeSlotsHandler == nil {
			return fmt.Errorf("application not initialized - database connection required")
		}

		day, err := ParseDayArg(freeDate)
		if err != nil {
			return fmt.Errorf("invalid date: %w", err)
		}

		slots, err := app.FreeSlotsHandler.Handle(cmd.Context(), queries.FreeSlotsQuery{
			Day:         day,
			MinDuration: time.Duration(freeMin) * time.Minute,
		})
		if err != nil {
			return fmt.Errorf("failed to find free slots: %w", err)
		}

		fmt.Println()
		fmt.Printf("  FREE SLOTS: %s\n", day.Time().Format("Monday, January 2, 2006"))
		fmt.Println(strings.Repeat("=", 60))

		if len(slots) == 0 {
			fmt.Println("    No free slots.")
			fmt.Println()
			return nil
		}

		total := 0
		for _, s := range slots {
			total += s.DurationMin
			fmt.Printf("    %s - %s  (%dm)\n",
				s.StartTime.Format("15:04"),
				s.EndTime.Format("15:04"),
				s.DurationMin,
			)
		}
		fmt.Printf("\n    Total free: %dh %dm\n\n", total/60, total%60)
		return nil
	},
}

func init() {
	freeCmd.Flags().StringVarP(&freeDate, "date", "d", "", "date to inspect (today, tomorrow, YYYY-MM-DD)")
	freeCmd.Flags().IntVarP(&freeMin, "min", "m", 15, "minimum slot length in minutes")
	rootCmd.AddCommand(freeCmd)
}
