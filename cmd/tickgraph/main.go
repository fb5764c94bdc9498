package main

import (
	"fmt"
	"io"

	"github.com/fmizzell/tickgraph"
	"github.com/spf13/cobra"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fatal("%v", err)
	}
}

func newRootCmd() *cobra.Command {
	var format formatValue

	cmd := &cobra.Command{
		Use:   "tickgraph --output-fmt <graphviz|markdown>",
		Short: "Convert a TickTick summary into a task graph or checklist",
		Long: `Read a TickTick summary export from stdin and print either a Graphviz
description of the task graph or a Markdown checklist report grouped by priority.`,
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE:          runReport,
	}

	cmd.Flags().Var(&format, "output-fmt", "Report format: graphviz or markdown (required)")
	cmd.Flags().StringP("output", "o", "", "Write the report to this file instead of stdout")
	cmd.Flags().String("config", "", "YAML config file providing defaults for these flags")
	cmd.Flags().BoolP("verbose", "v", false, "Log parsing and graph details to stderr")

	if err := cmd.RegisterFlagCompletionFunc("output-fmt", completeFormats); err != nil {
		panic(fmt.Sprintf("Failed to register output-fmt completion: %v", err))
	}

	return cmd
}

func runReport(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig(cmd.Flags())
	if err != nil {
		return err
	}
	logger := newLogger(cmd.ErrOrStderr(), cfg.Verbose)

	input, err := readInput(cmd.InOrStdin())
	if err != nil {
		return err
	}
	logger.Printf("read %d bytes of input", len(input))

	var out io.Writer = cmd.OutOrStdout()
	if cfg.Output != "" {
		sink, err := tickgraph.NewFileSink(cfg.Output)
		if err != nil {
			return err
		}
		out = sink
	}

	if err := tickgraph.Convert(input, cfg.Format, out, tickgraph.WithLogger(logger)); err != nil {
		return err
	}

	if cfg.Output != "" {
		logger.Printf("wrote %s report to %s", cfg.Format, cfg.Output)
	}
	return nil
}

func completeFormats(cmd *cobra.Command, args []string, toComplete string) ([]string, cobra.ShellCompDirective) {
	names := make([]string, 0, len(tickgraph.Formats))
	for _, f := range tickgraph.Formats {
		names = append(names, f.String())
	}
	return names, cobra.ShellCompDirectiveNoFileComp
}
