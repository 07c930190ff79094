// Package cli wires the formatting packages into the raisefmt command line.
package cli

import (
	"fmt"
	"io"
	"log/slog"
	"strconv"
	"strings"
	"time"

	"github.com/spf13/cobra"
	"github.com/stellarraise/display/internal/summary"
	"github.com/stellarraise/display/pkg/amount"
	"github.com/stellarraise/display/pkg/dateutil"
)

type globalOptions struct {
	symbol   string
	decimals int
	locale   string
	timezone string
	now      string
	verbose  bool
}

// app carries state shared by every subcommand.
type app struct {
	opts globalOptions
	log  summary.Logger
}

// NewRootCommand builds the raisefmt command tree.
func NewRootCommand() *cobra.Command {
	a := &app{log: summary.NopLogger{}}

	root := &cobra.Command{
		Use:           "raisefmt",
		Short:         "Render Stellar amounts and campaign deadlines as display strings",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRun: func(cmd *cobra.Command, _ []string) {
			a.log = newLogger(cmd.ErrOrStderr(), a.opts.verbose)
		},
	}

	pf := root.PersistentFlags()
	pf.StringVar(&a.opts.symbol, "symbol", amount.DefaultSymbol, "currency symbol appended to amounts")
	pf.IntVar(&a.opts.decimals, "decimals", amount.DefaultDecimals, "fractional digits for full amounts")
	pf.StringVar(&a.opts.locale, "locale", dateutil.DefaultLocale, "IETF language tag for dates")
	pf.StringVar(&a.opts.timezone, "tz", "", "IANA time zone for dates (default: local)")
	pf.StringVar(&a.opts.now, "now", "", "pin the current time (RFC 3339 or Unix seconds)")
	pf.BoolVarP(&a.opts.verbose, "verbose", "v", false, "enable debug logging")

	root.AddCommand(
		a.currencyCommand(),
		a.compactCommand(),
		a.progressCommand(),
		a.toLumensCommand(),
		a.toStroopsCommand(),
		a.dateCommand("date", "Render a timestamp as a calendar date", (*dateutil.Formatter).FormatDate),
		a.dateCommand("datetime", "Render a timestamp as a date and time", (*dateutil.Formatter).FormatDateTime),
		a.relativeCommand(),
		a.expiredCommand(),
		a.reportCommand(),
		a.exampleCommand(),
	)
	return root
}

// Execute runs the root command with the given arguments and streams.
func Execute(args []string, stdout, stderr io.Writer) error {
	root := NewRootCommand()
	root.SetArgs(args)
	root.SetOut(stdout)
	root.SetErr(stderr)
	return root.Execute()
}

func newLogger(w io.Writer, verbose bool) summary.Logger {
	level := slog.LevelWarn
	if verbose {
		level = slog.LevelDebug
	}
	return summary.SlogLogger{L: slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{Level: level}))}
}

func (a *app) amountOptions() []amount.Option {
	return []amount.Option{amount.WithDecimals(a.opts.decimals), amount.WithSymbol(a.opts.symbol)}
}

// clock returns the pinned --now time when set, otherwise the system clock.
func (a *app) clock() (dateutil.Clock, error) {
	if a.opts.now == "" {
		return time.Now, nil
	}
	t, err := parseInstant(a.opts.now)
	if err != nil {
		return nil, fmt.Errorf("invalid --now %q: %w", a.opts.now, err)
	}
	return func() time.Time { return t }, nil
}

func (a *app) location() (*time.Location, error) {
	if a.opts.timezone == "" {
		return time.Local, nil
	}
	loc, err := time.LoadLocation(a.opts.timezone)
	if err != nil {
		return nil, fmt.Errorf("invalid --tz %q: %w", a.opts.timezone, err)
	}
	return loc, nil
}

func (a *app) dateFormatter() (*dateutil.Formatter, error) {
	clock, err := a.clock()
	if err != nil {
		return nil, err
	}
	loc, err := a.location()
	if err != nil {
		return nil, err
	}
	return dateutil.New(dateutil.WithClock(clock), dateutil.WithLocation(loc)), nil
}

func parseInstant(s string) (time.Time, error) {
	if secs, err := strconv.ParseInt(s, 10, 64); err == nil {
		return time.Unix(secs, 0), nil
	}
	return time.Parse(time.RFC3339, s)
}

// stroopsArg reads an optional stroop amount. Missing or malformed values are
// reported as absent so formatting falls back to its zero rendering.
func (a *app) stroopsArg(args []string, i int) *amount.Stroops {
	if i >= len(args) {
		return nil
	}
	v, err := amount.ParseStroops(args[i])
	if err != nil {
		a.log.Warnf("treating amount as absent: %v", err)
		return nil
	}
	return &v
}

// timestampArg reads an optional Unix timestamp, reporting malformed values as absent.
func (a *app) timestampArg(args []string, i int) *dateutil.Timestamp {
	if i >= len(args) {
		return nil
	}
	v, err := strconv.ParseInt(strings.TrimSpace(args[i]), 10, 64)
	if err != nil {
		a.log.Warnf("treating timestamp %q as absent: %v", args[i], err)
		return nil
	}
	ts := dateutil.Timestamp(v)
	return &ts
}

func valueOrZero(s *amount.Stroops) amount.Stroops {
	if s == nil {
		return 0
	}
	return *s
}
