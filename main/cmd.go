package main

import (
	"fmt"
	"io"
	"log/slog"
	"strconv"

	"github.com/pkg/errors"
	"github.com/spf13/cobra"

	"ever/datetime"
)

/***** FUNCTION ********************************/

func newRootCmd(cfg *Config) *cobra.Command {
	root := &cobra.Command{
		Use:   "ever",
		Short: "Civil time on a millisecond offset from 1970-01-01 00:00:00 UTC",
		Long: `ever converts millisecond offsets from 1970-01-01 00:00:00 UTC to civil
dates and back, formats and parses them with %-directive patterns, and
derives Julian dates and GPS time.

Pattern directives:
  %Y year   %M month   %D day   %j day of year
  %h hour   %m minute  %s second   %f millisecond
  %S seconds since 1970 (format only)   %% a literal '%'

Negative offsets must follow "--", e.g. "ever info -- -1874817877000".`,
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			if err := cfg.Validate(); err != nil {
				return err
			}

			InitLogger(LogConfig{Level: cfg.LogLevel, Format: cfg.LogFormat, Output: cmd.ErrOrStderr()})
			return nil
		},
	}

	flags := root.PersistentFlags()
	flags.StringVar(&cfg.Pattern, "pattern", cfg.Pattern, "pattern used to format and parse")
	flags.StringVar(&cfg.LogLevel, "log-level", cfg.LogLevel, "log level (debug, info, warn, error)")
	flags.StringVar(&cfg.LogFormat, "log-format", cfg.LogFormat, "log format (json, text)")

	root.AddCommand(
		newFormatCmd(cfg),
		newParseCmd(cfg),
		newInfoCmd(),
		newAddCmd(cfg),
		newGPSCmd(),
		newRunCmd(cfg),
	)

	return root
}

/***********************************************/

func parseOffset(arg string) (datetime.Instant, error) {
	ms, err := strconv.ParseInt(arg, 10, 64)

	if err != nil {
		return datetime.Instant{}, errors.Wrapf(err, "invalid offset %q", arg)
	}

	return datetime.Millis2Instant(ms), nil
}

/***********************************************/

func newFormatCmd(cfg *Config) *cobra.Command {
	return &cobra.Command{
		Use:   "format [offset-ms ...]",
		Short: "Format offsets, or the current time, with the pattern",
		RunE: func(cmd *cobra.Command, args []string) error {
			out := cmd.OutOrStdout()

			if len(args) == 0 {
				fmt.Fprintln(out, datetime.Now().Format(cfg.Pattern))
				return nil
			}

			for _, arg := range args {
				i, err := parseOffset(arg)

				if err != nil {
					return err
				}

				fmt.Fprintln(out, i.Format(cfg.Pattern))
			}

			return nil
		},
	}
}

/***********************************************/

func newParseCmd(cfg *Config) *cobra.Command {
	return &cobra.Command{
		Use:   "parse <text>",
		Short: "Parse text with the pattern and describe the instant",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			i, err := datetime.Parse(cfg.Pattern, args[0])

			if err != nil {
				return err
			}

			writeInfo(cmd.OutOrStdout(), i)
			return nil
		},
	}
}

/***********************************************/

func newInfoCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "info <offset-ms>",
		Short: "Describe the instant at an offset",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			i, err := parseOffset(args[0])

			if err != nil {
				return err
			}

			writeInfo(cmd.OutOrStdout(), i)
			return nil
		},
	}
}

/***********************************************/

func writeInfo(w io.Writer, i datetime.Instant) {
	fmt.Fprintf(w, "offset:       %d\n", i.UnixMilli())
	fmt.Fprintf(w, "text:         %s\n", i.Format("%Y-%M-%D %h:%m:%s.%f"))
	fmt.Fprintf(w, "year:         %d\n", i.Year())
	fmt.Fprintf(w, "month:        %d\n", i.Month())
	fmt.Fprintf(w, "day:          %d\n", i.MonthDay())
	fmt.Fprintf(w, "year day:     %d\n", i.YearDay())
	fmt.Fprintf(w, "week day:     %d\n", i.WeekDay())
	fmt.Fprintf(w, "iso week day: %d\n", i.IsoWeekDay())
	fmt.Fprintf(w, "jd:           %.6f\n", i.JulianDate())
	fmt.Fprintf(w, "mjd:          %.6f\n", i.ModifiedJulianDate())
	fmt.Fprintf(w, "gps:          %d\n", i.ToGPS().UnixMilli())
}

/***********************************************/

func newAddCmd(cfg *Config) *cobra.Command {
	var years, months, days int
	var seconds int64

	cmd := &cobra.Command{
		Use:   "add <offset-ms>",
		Short: "Shift an offset by calendar years, months, days and seconds",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			i, err := parseOffset(args[0])

			if err != nil {
				return err
			}

			r := i.AddDate(years, months, days).Add(seconds)
			slog.Debug("shifted", "from", i.UnixMilli(), "to", r.UnixMilli())

			fmt.Fprintf(cmd.OutOrStdout(), "%d %s\n", r.UnixMilli(), r.Format(cfg.Pattern))
			return nil
		},
	}

	cmd.Flags().IntVar(&years, "years", 0, "years to add")
	cmd.Flags().IntVar(&months, "months", 0, "months to add")
	cmd.Flags().IntVar(&days, "days", 0, "days to add")
	cmd.Flags().Int64Var(&seconds, "seconds", 0, "seconds to add")

	return cmd
}

/***********************************************/

func newGPSCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "gps <offset-ms>",
		Short: "Convert an offset to GPS time",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			i, err := parseOffset(args[0])

			if err != nil {
				return err
			}

			week, sow := i.GPSWeekSow()
			out := cmd.OutOrStdout()

			fmt.Fprintf(out, "leap seconds: %d\n", i.LeapSeconds())
			fmt.Fprintf(out, "gps offset:   %d\n", i.ToGPS().UnixMilli())
			fmt.Fprintf(out, "gps week:     %d\n", week)
			fmt.Fprintf(out, "gps sow:      %.3f\n", sow)
			return nil
		},
	}
}

/***********************************************/

func newRunCmd(cfg *Config) *cobra.Command {
	var jobFile string

	cmd := &cobra.Command{
		Use:   "run",
		Short: "Run a batch job file (json, toml or yaml)",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			slog.Info("ever run started")
			slog.Info("parsing the job file", "path", jobFile)

			var job Job

			if err := job.ParseFile(jobFile, cfg.Pattern, cfg.Workers); err != nil {
				return errors.Wrap(err, "error in the job file")
			}

			slog.Info("finished parsing the job file", "tasks", len(job.Tasks), "instants", job.Count())

			if err := process(cmd.Context(), &job, cmd.OutOrStdout()); err != nil {
				return errors.Wrap(err, "error in processing tasks")
			}

			slog.Info("finished")
			return nil
		},
	}

	cmd.Flags().StringVar(&jobFile, "job", "./job.json", "the path of the job file")

	return cmd
}

/***********************************************/
