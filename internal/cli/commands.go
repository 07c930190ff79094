package cli

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/spf13/cobra"
	"github.com/stellarraise/display/internal/config"
	"github.com/stellarraise/display/internal/domain"
	"github.com/stellarraise/display/internal/output"
	"github.com/stellarraise/display/internal/summary"
	"github.com/stellarraise/display/pkg/amount"
	"github.com/stellarraise/display/pkg/dateutil"
	"gopkg.in/yaml.v3"
)

func (a *app) currencyCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "currency [stroops]",
		Short: "Render stroops as a full lumen amount, e.g. 1,250.00 XLM",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			fmt.Fprintln(cmd.OutOrStdout(), amount.FormatCurrency(a.stroopsArg(args, 0), a.amountOptions()...))
			return nil
		},
	}
}

func (a *app) compactCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "compact [stroops]",
		Short: "Render stroops with K/M abbreviations, e.g. 1.50M XLM",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			fmt.Fprintln(cmd.OutOrStdout(), amount.FormatCompact(a.stroopsArg(args, 0), amount.WithSymbol(a.opts.symbol)))
			return nil
		},
	}
}

func (a *app) progressCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "progress [raised] [goal]",
		Short: "Render raised/goal as a percentage clamped to 100%",
		Args:  cobra.MaximumNArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			raised := valueOrZero(a.stroopsArg(args, 0))
			goal := valueOrZero(a.stroopsArg(args, 1))
			fmt.Fprintln(cmd.OutOrStdout(), amount.FormatProgress(raised, goal))
			return nil
		},
	}
}

func (a *app) toLumensCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "to-lumens [stroops]",
		Short: "Convert a stroop count to lumens without rounding",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			fmt.Fprintln(cmd.OutOrStdout(), amount.ToMajorUnits(valueOrZero(a.stroopsArg(args, 0))).String())
			return nil
		},
	}
}

func (a *app) toStroopsCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "to-stroops [lumens]",
		Short: "Convert a lumen amount to stroops, truncating below one stroop",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			var l amount.Lumens
			if len(args) == 1 {
				parsed, err := amount.NewLumensFromString(args[0])
				if err != nil {
					a.log.Warnf("treating lumens %q as absent: %v", args[0], err)
				} else {
					l = parsed
				}
			}
			fmt.Fprintln(cmd.OutOrStdout(), amount.ToSmallestUnits(l).String())
			return nil
		},
	}
}

type dateRenderer func(f *dateutil.Formatter, ts *dateutil.Timestamp, locale string) string

func (a *app) dateCommand(use, short string, render dateRenderer) *cobra.Command {
	return &cobra.Command{
		Use:   use + " [unix-seconds]",
		Short: short,
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			f, err := a.dateFormatter()
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), render(f, a.timestampArg(args, 0), a.opts.locale))
			return nil
		},
	}
}

func (a *app) relativeCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "relative [unix-seconds]",
		Short: "Describe a deadline relative to now, e.g. 3 days left",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			f, err := a.dateFormatter()
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), f.FormatRelativeTime(a.timestampArg(args, 0)))
			return nil
		},
	}
}

func (a *app) expiredCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "expired [unix-seconds]",
		Short: "Print true when now is past the timestamp",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			f, err := a.dateFormatter()
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), strconv.FormatBool(f.IsExpired(a.timestampArg(args, 0))))
			return nil
		},
	}
}

func (a *app) reportCommand() *cobra.Command {
	var (
		configPath string
		format     string
		outDir     string
	)
	cmd := &cobra.Command{
		Use:   "report",
		Short: "Render every campaign in a YAML file",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, err := config.NewInputParser().LoadFromFile(configPath)
			if err != nil {
				return err
			}
			a.applyDisplayFlags(cmd, &cfg.Display)

			clock, err := a.clock()
			if err != nil {
				return err
			}
			engine := summary.NewEngine()
			engine.SetLogger(a.log)
			engine.Now = clock

			report, err := engine.Build(cfg)
			if err != nil {
				return fmt.Errorf("failed to build report: %w", err)
			}

			if outDir == "" {
				return output.Render(cmd.OutOrStdout(), report, format)
			}
			f, err := output.Lookup(format)
			if err != nil {
				return err
			}
			path, err := output.WriteFormatted(f, report, outDir)
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "wrote %s\n", path)
			return nil
		},
	}
	cmd.Flags().StringVarP(&configPath, "config", "c", "campaigns.yaml", "campaign YAML file")
	cmd.Flags().StringVarP(&format, "format", "f", "console", "output format: "+strings.Join(output.AvailableFormatterNames(), ", "))
	cmd.Flags().StringVarP(&outDir, "out", "o", "", "write to a timestamped file in this directory instead of stdout")
	return cmd
}

// applyDisplayFlags lets explicitly set global flags override the file's display block.
func (a *app) applyDisplayFlags(cmd *cobra.Command, ds *domain.DisplaySettings) {
	flags := cmd.Flags()
	if flags.Changed("symbol") {
		ds.Symbol = a.opts.symbol
	}
	if flags.Changed("decimals") {
		ds.Decimals = a.opts.decimals
	}
	if flags.Changed("locale") {
		ds.Locale = a.opts.locale
	}
	if flags.Changed("tz") {
		ds.Timezone = a.opts.timezone
	}
}

func (a *app) exampleCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "example [path]",
		Short: "Write a sample campaign YAML file",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			clock, err := a.clock()
			if err != nil {
				return err
			}
			parser := config.NewInputParser()
			if len(args) == 0 {
				return writeYAML(cmd, parser.CreateExampleConfiguration(clock()))
			}
			if err := parser.WriteExample(args[0], clock()); err != nil {
				return err
			}
			a.log.Infof("wrote example configuration to %s", args[0])
			fmt.Fprintf(cmd.OutOrStdout(), "wrote %s\n", args[0])
			return nil
		},
	}
}

func writeYAML(cmd *cobra.Command, v any) error {
	data, err := yaml.Marshal(v)
	if err != nil {
		return fmt.Errorf("failed to marshal YAML: %w", err)
	}
	_, err = cmd.OutOrStdout().Write(data)
	return err
}
