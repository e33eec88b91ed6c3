package cmd

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"workdays/internal/holidays"
	"workdays/internal/platform/config"
	"workdays/internal/platform/logger"
	"workdays/internal/workingdate"
)

type calcOptions struct {
	days        int
	hours       float64
	date        string
	holidays    []string
	offline     bool
	holidaysURL string
	timeout     time.Duration
	asJSON      bool
}

func newCalcCommand() *cobra.Command {
	opts := &calcOptions{}
	c := &cobra.Command{
		Use:   "calc",
		Short: "Compute the instant after N working days and H working hours",
		Example: `  workdays calc --days 1 --hours 2 --date 2025-01-10T13:00:00Z
  workdays calc --hours 3.5 --offline --holiday 2025-01-06`,
		Args: cobra.NoArgs,
		RunE: func(c *cobra.Command, _ []string) error {
			if !c.Flags().Changed("days") && !c.Flags().Changed("hours") {
				return fmt.Errorf("at least one of --days or --hours is required")
			}
			if opts.days == 0 && opts.hours == 0 {
				return fmt.Errorf("at least one of --days or --hours must be positive")
			}
			return runCalc(c, opts)
		},
	}

	f := c.Flags()
	f.IntVar(&opts.days, "days", 0, "working days to add")
	f.Float64Var(&opts.hours, "hours", 0, "working hours to add, fractions allowed")
	f.StringVar(&opts.date, "date", "", "ISO-8601 anchor instant (default: now)")
	f.StringSliceVar(&opts.holidays, "holiday", nil, "extra holiday date YYYY-MM-DD (repeatable)")
	f.BoolVar(&opts.offline, "offline", false, "do not fetch the holiday feed")
	f.StringVar(&opts.holidaysURL, "holidays-url", config.DefaultHolidaysURL, "holiday feed URL")
	f.DurationVar(&opts.timeout, "timeout", 5*time.Second, "holiday feed timeout")
	f.BoolVar(&opts.asJSON, "json", false, "print the API response body instead of the bare date")
	return c
}

func runCalc(c *cobra.Command, opts *calcOptions) error {
	level, _ := c.Flags().GetString("log-level")
	log := logger.NewWithWriter(c.ErrOrStderr(), level)

	extra, rejected := holidays.NewSet(opts.holidays)
	if len(rejected) > 0 {
		return fmt.Errorf("invalid --holiday values: %v", rejected)
	}

	var source holidays.Source = holidays.Static(holidays.Set{})
	if !opts.offline {
		feed, err := holidays.NewFeedSource(opts.holidaysURL,
			holidays.WithTimeout(opts.timeout),
			holidays.WithFeedLogger(log),
		)
		if err != nil {
			return err
		}
		source = feed
	}

	failSoft, err := holidays.NewFailSoft(source, holidays.WithLogger(log))
	if err != nil {
		return err
	}
	service, err := workingdate.New(withExtraHolidays{base: failSoft, extra: extra}, workingdate.WithLogger(log))
	if err != nil {
		return err
	}

	result, err := service.NextWorkingDate(c.Context(), workingdate.Request{
		Days:  opts.days,
		Hours: opts.hours,
		Date:  opts.date,
	})
	if err != nil {
		return err
	}

	if result.HolidayStatus != holidays.StatusFresh {
		fmt.Fprintf(c.ErrOrStderr(), "warning: holiday feed unavailable, computed without its holidays\n")
	}
	if opts.asJSON {
		return json.NewEncoder(c.OutOrStdout()).Encode(map[string]any{
			"success": true,
			"date":    result.Formatted(),
		})
	}
	_, err = fmt.Fprintln(c.OutOrStdout(), result.Formatted())
	return err
}

// withExtraHolidays adds the --holiday dates to whatever the feed served,
// including a degraded empty set.
type withExtraHolidays struct {
	base  workingdate.HolidayProvider
	extra holidays.Set
}

func (p withExtraHolidays) Holidays(ctx context.Context) holidays.Result {
	res := p.base.Holidays(ctx)
	res.Set = holidays.Merge(res.Set, p.extra)
	return res
}
