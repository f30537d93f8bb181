package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"presetsleuth/internal/params"
	"presetsleuth/internal/presets"
	"presetsleuth/internal/report"
)

// listColumns are the parameters that differ most visibly across presets;
// the full table is available via `presets show`.
var listColumns = []string{"bframes", "rc-lookahead", "ref", "me", "subme", "rd", "max-merge"}

func newPresetsCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "presets",
		Short: "Inspect the reference preset table",
		RunE: func(cmd *cobra.Command, args []string) error {
			return cmd.Help()
		},
	}

	cmd.AddCommand(newPresetsListCommand())
	cmd.AddCommand(newPresetsShowCommand())
	return cmd
}

func newPresetsListCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List the canonical presets, fastest to slowest",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			headers := append([]string{"Preset"}, listColumns...)
			rows := make([][]string, 0, len(presets.Names()))
			for _, profile := range presets.All() {
				row := []string{profile.Name}
				for _, column := range listColumns {
					row = append(row, profile.Params[column].String())
				}
				rows = append(rows, row)
			}
			aligns := make([]report.Alignment, len(headers))
			for i := 1; i < len(aligns); i++ {
				aligns[i] = report.AlignRight
			}
			fmt.Fprintln(cmd.OutOrStdout(), report.Table(headers, rows, aligns))
			return nil
		},
	}
}

func newPresetsShowCommand() *cobra.Command {
	var outputFlag string

	cmd := &cobra.Command{
		Use:   "show <preset>",
		Short: "Show a preset's full canonical parameter set",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			name := strings.ToLower(strings.TrimSpace(args[0]))
			profile, err := presets.For(name)
			if err != nil {
				return err
			}

			if strings.EqualFold(strings.TrimSpace(outputFlag), "json") {
				values := map[string]string{}
				for paramName, value := range profile.Params {
					values[paramName] = value.String()
				}
				return writeJSON(cmd, map[string]any{
					"preset":     profile.Name,
					"parameters": values,
				})
			}

			rows := make([][]string, 0, len(profile.Params))
			for _, paramName := range profile.Params.Names() {
				value := profile.Params[paramName]
				spec, _ := params.Lookup(paramName)
				rows = append(rows, []string{paramName, spec.Kind.String(), value.String()})
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Preset: %s\n", profile.Name)
			fmt.Fprintln(cmd.OutOrStdout(), report.Table(
				[]string{"Parameter", "Kind", "Value"},
				rows,
				[]report.Alignment{report.AlignLeft, report.AlignLeft, report.AlignRight},
			))
			return nil
		},
	}

	cmd.Flags().StringVarP(&outputFlag, "output", "o", "", "Output format: text or json")
	return cmd
}
