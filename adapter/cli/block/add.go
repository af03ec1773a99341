package block

import (
	"fmt"
	"strings"
	"time"

	"github.com/felixgeelhaar/dayplan/adapter/cli"
	"github.com/felixgeelhaar/dayplan/internal/timetable/application/commands"
	"github.com/felixgeelhaar/dayplan/internal/timetable/domain"
	"github.com/spf13/cobra"
)

var (
	description string
	date        string
	start       string
	end         string
	repeat      string
	onDays      []string
)

var addCmd = &cobra.Command{
	Use:   "add [title]",
	Short: "Add an unavailable block",
	Long: `Add a one-off or recurring unavailable block.

Tasks whose placement collides with the block lose it and are replanned.

Examples:
  dayplan block add "Dentist" --date 2026-09-01 --start 10:00 --end 11:00
  dayplan block add "Lunch" --start 12:00 --end 12:45 --repeat daily
  dayplan block add "Gym" --start 18:00 --end 19:30 --repeat weekly --on mon,wed,fri`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		app := cli.GetApp()
		if app == nil || app.AddBlockHandler == nil {
			return fmt.Errorf("application not initialized - database connection required")
		}

		day, err := cli.ParseDayArg(date)
		if err != nil {
			return fmt.Errorf("invalid date: %w", err)
		}
		startTime, err := cli.ParseClockOn(day, start)
		if err != nil {
			return err
		}
		endTime, err := cli.ParseClockOn(day, end)
		if err != nil {
			return err
		}

		recurrence, err := parseRecurrence(repeat, onDays)
		if err != nil {
			return err
		}

		result, err := app.AddBlockHandler.Handle(cmd.Context(), commands.AddBlockCommand{
			Title:       args[0],
			Description: description,
			StartTime:   startTime,
			EndTime:     endTime,
			Recurrence:  recurrence,
		})
		if err != nil {
			return fmt.Errorf("failed to add block: %w", err)
		}

		fmt.Printf("Block added: %s\n", result.BlockID)
		fmt.Printf("  %s - %s  %s\n", startTime.Format("15:04"), endTime.Format("15:04"), args[0])
		if recurrence != nil {
			fmt.Printf("  repeats: %s\n", repeat)
		}
		if result.Cleared > 0 {
			fmt.Printf("  %d conflicting tasks were replanned\n", result.Cleared)
		}
		return nil
	},
}

func parseRecurrence(repeat string, onDays []string) (*domain.Recurrence, error) {
	switch strings.ToLower(repeat) {
	case "":
		return nil, nil
	case "daily":
		return &domain.Recurrence{Type: domain.RecurrenceDaily}, nil
	case "weekly":
		days, err := parseWeekdays(onDays)
		if err != nil {
			return nil, err
		}
		return &domain.Recurrence{Type: domain.RecurrenceWeekly, Days: days}, nil
	default:
		return nil, fmt.Errorf("invalid repeat %q (use daily or weekly)", repeat)
	}
}

var weekdayNames = map[string]time.Weekday{
	"sun": time.Sunday, "mon": time.Monday, "tue": time.Tuesday, "wed": time.Wednesday,
	"thu": time.Thursday, "fri": time.Friday, "sat": time.Saturday,
}

func parseWeekdays(names []string) ([]time.Weekday, error) {
	var out []time.Weekday
	for _, n := range names {
		for _, part := range strings.Split(n, ",") {
			part = strings.ToLower(strings.TrimSpace(part))
			if part == "" {
				continue
			}
			wd, ok := weekdayNames[part]
			if !ok {
				return nil, fmt.Errorf("invalid weekday %q (use mon..sun)", part)
			}
			out = append(out, wd)
		}
	}
	if len(out) == 0 {
		return nil, fmt.Errorf("weekly blocks need --on with at least one weekday")
	}
	return out, nil
}

func init() {
	addCmd.Flags().StringVar(&description, "description", "", "block description")
	addCmd.Flags().StringVarP(&date, "date", "d", "", "date of the block (today, tomorrow, YYYY-MM-DD)")
	addCmd.Flags().StringVarP(&start, "start", "s", "", "start time (HH:MM)")
	addCmd.Flags().StringVarP(&end, "end", "e", "", "end time (HH:MM)")
	addCmd.Flags().StringVarP(&repeat, "repeat", "r", "", "recurrence (daily, weekly)")
	addCmd.Flags().StringSliceVar(&onDays, "on", nil, "weekdays for weekly recurrence (mon,wed,fri)")
	_ = addCmd.MarkFlagRequired("start")
	_ = addCmd.MarkFlagRequired("end")
}
