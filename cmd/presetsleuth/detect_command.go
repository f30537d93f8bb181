package main

import (
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/google/uuid"
	"github.com/spf13/cobra"

	"presetsleuth/internal/logging"
	"presetsleuth/internal/match"
	"presetsleuth/internal/params"
	"presetsleuth/internal/report"
)

func newDetectCommand(ctx *commandContext) *cobra.Command {
	var outputFlag string
	var colorFlag string
	var verbose int

	cmd := &cobra.Command{
		Use:   "detect [text...|-]",
		Short: "Determine which x265 preset produced a set of encoder parameters",
		Long: `Determine which x265 preset produced a set of encoder parameters.

The input is free-form encoder-parameter text, for example the Encoding
settings line from a mediainfo dump. Pass '-' to read the text from stdin,
or pass the text itself as arguments.

Examples:
  mediainfo video.mkv | presetsleuth detect -
  presetsleuth detect "bframes=8 rc-lookahead=40 ref=5"
  presetsleuth detect -v -o json "ctu=32 min-cu-size=8"`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := ctx.ensureConfig()
			if err != nil {
				return fmt.Errorf("load configuration: %w", err)
			}

			outputFormat := strings.ToLower(strings.TrimSpace(outputFlag))
			if outputFormat == "" {
				outputFormat = cfg.Output.Format
			}
			if outputFormat != "text" && outputFormat != "json" {
				return fmt.Errorf("unsupported output format %q (use text or json)", outputFlag)
			}

			colorValue := colorFlag
			if strings.TrimSpace(colorValue) == "" {
				colorValue = cfg.Output.Color
			}
			colorMode, err := report.ParseColorMode(colorValue)
			if err != nil {
				return err
			}

			logger, err := logging.New(logging.Options{
				Level:  cfg.Logging.Level,
				Format: cfg.Logging.Format,
				Writer: cmd.ErrOrStderr(),
			})
			if err != nil {
				return fmt.Errorf("setup logging: %w", err)
			}
			runID := uuid.NewString()
			logger = logger.With(logging.String("run_id", runID))

			raw, err := readDetectInput(cmd, args)
			if err != nil {
				return err
			}

			parsed := params.Parse(raw)
			logger.Debug("parsed encoder parameters",
				logging.Int("recognized", len(parsed.Set)),
				logging.Int("unknown", len(parsed.Unknown)),
				logging.Int("warnings", len(parsed.Warnings)),
			)

			results, err := match.New().Match(parsed.Set)
			if err != nil {
				if errors.Is(err, match.ErrEmptyInput) {
					return fmt.Errorf("%w (%d unrecognized fields; nothing to score)", err, len(parsed.Unknown))
				}
				return err
			}
			logger.Debug("ranked presets",
				logging.String("best", results[0].Preset),
				logging.Float64("score", results[0].Score),
				logging.Bool("indeterminate", results[0].Indeterminate),
			)

			var reporter report.Reporter
			if outputFormat == "json" {
				reporter = report.JSON{}
			} else {
				reporter = report.Console{
					Color:         colorMode,
					Verbose:       verbose,
					TopCandidates: cfg.Output.TopCandidates,
				}
			}
			return reporter.Render(cmd.OutOrStdout(), report.Input{
				Results:  results,
				Params:   parsed.Set,
				Unknown:  parsed.Unknown,
				Warnings: parsed.Warnings,
				RunID:    runID,
			})
		},
	}

	cmd.Flags().StringVarP(&outputFlag, "output", "o", "", "Report format: text or json (default from config)")
	cmd.Flags().StringVar(&colorFlag, "color", "", "Color mode: auto, always, or never (default from config)")
	cmd.Flags().CountVarP(&verbose, "verbose", "v", "Show ranking and comparison tables; repeat for all parameters")

	return cmd
}

// readDetectInput returns the raw parameter text: stdin when the sole
// argument is '-', otherwise the arguments joined with spaces.
func readDetectInput(cmd *cobra.Command, args []string) (string, error) {
	if len(args) == 1 && args[0] == "-" {
		data, err := io.ReadAll(cmd.InOrStdin())
		if err != nil {
			return "", fmt.Errorf("read stdin: %w", err)
		}
		return string(data), nil
	}
	for _, arg := range args {
		if arg == "-" {
			return "", fmt.Errorf("'-' must be the only input argument")
		}
	}
	return strings.Join(args, " "), nil
}
