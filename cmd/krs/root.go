package main

import (
	"fmt"
	"os"

	"github.com/npillmayer/schuko/gtrace"
	"github.com/npillmayer/schuko/tracing"
	"github.com/npillmayer/schuko/tracing/gologadapter"
	"github.com/pterm/pterm"
	"github.com/spf13/cobra"
)

var traceLevelFlag string

var rootCmd = &cobra.Command{
	Use:   "krs",
	Short: "Analyze context-free grammars for ambiguity",
	Long: `krs analyzes a context-free grammar written in production-rule notation:
- flags likely ambiguity sources (expression ambiguity, dangling else, ...),
- reports LL(1) conflicts and FIRST/FOLLOW sets,
- rewrites the grammar to reduce known ambiguity classes,
- derives parse-tree skeletons and sample strings for inspection.`,
	SilenceErrors: true,
	SilenceUsage:  true,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		initDisplay()
		gtrace.SyntaxTracer = gologadapter.New()
		tracer().SetTraceLevel(traceLevel(traceLevelFlag))
	},
}

func init() {
	rootCmd.PersistentFlags().StringVar(&traceLevelFlag, "trace", "Error", "trace level [Debug|Info|Error]")
}

func Execute() error {
	err := rootCmd.Execute()
	if err != nil {
		fmt.Fprintf(os.Stderr, "%v\n", err)
		return err
	}
	return nil
}

// We use pterm for moderately fancy output.
func initDisplay() {
	pterm.Error.Prefix = pterm.Prefix{
		Text:  " Error ",
		Style: pterm.NewStyle(pterm.BgRed, pterm.FgBlack),
	}
	pterm.Warning.Prefix = pterm.Prefix{
		Text:  " Warn  ",
		Style: pterm.NewStyle(pterm.BgYellow, pterm.FgBlack),
	}
}

func traceLevel(l string) tracing.TraceLevel {
	return tracing.TraceLevelFromString(l)
}
