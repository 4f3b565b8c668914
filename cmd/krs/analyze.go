package main

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"path/filepath"

	verr "github.com/manideep395/KRS-Ambiguity-Checker/error"
	"github.com/manideep395/KRS-Ambiguity-Checker/grammar"
	"github.com/manideep395/KRS-Ambiguity-Checker/spec"
	"github.com/pterm/pterm"
	"github.com/spf13/cobra"
)

var analyzeFlags = struct {
	compact *bool
	json    *string
}{}

func init() {
	cmd := &cobra.Command{
		Use:     "analyze",
		Short:   "Report ambiguity findings, LL(1) conflicts, and FIRST/FOLLOW sets",
		Example: `  krs analyze grammar.txt --json report.json`,
		Args:    cobra.MaximumNArgs(1),
		RunE:    runAnalyze,
	}
	analyzeFlags.compact = cmd.Flags().Bool("compact", false, "enable the compact notation scanner")
	analyzeFlags.json = cmd.Flags().String("json", "", "write the full report as JSON to a file")
	rootCmd.AddCommand(cmd)
}

func runAnalyze(cmd *cobra.Command, args []string) error {
	src, name, err := readSource(args)
	if err != nil {
		return err
	}
	g, gerrs := parseGrammar(src, name, *analyzeFlags.compact)
	if gerrs != nil {
		return gerrs
	}

	res := grammar.DetectAmbiguity(g)
	ff := grammar.GenFirstFollow(g)
	conflicts := ff.Conflicts()
	unreachable := g.Unreachable()
	tr := grammar.Transform(g)

	printVerdict(res)

	if len(unreachable) > 0 {
		pterm.Warning.Println(fmt.Sprintf("unreachable non-terminals: %v", unreachable))
	}

	fmt.Fprintf(os.Stdout, "\n%v non-terminals, %v terminals\n\n", len(g.NonTerminals()), len(g.Terminals()))
	for _, head := range g.Heads() {
		first, _ := ff.First(head)
		follow, _ := ff.Follow(head)
		fmt.Fprintf(os.Stdout, "FIRST(%v)  = %v\n", head, first)
		fmt.Fprintf(os.Stdout, "FOLLOW(%v) = %v\n", head, follow)
	}

	if len(conflicts) > 0 {
		fmt.Fprintln(os.Stdout)
		for _, c := range conflicts {
			pterm.Warning.Println(c.Description())
		}
	}

	if *analyzeFlags.json != "" {
		report := buildReport(string(src), g, res, ff, conflicts, unreachable, tr)
		err := writeReport(report, *analyzeFlags.json)
		if err != nil {
			return fmt.Errorf("Cannot write the report: %w", err)
		}
	}

	return nil
}

func printVerdict(res *grammar.Result) {
	switch res.Status {
	case grammar.StatusAmbiguous:
		pterm.Error.Println(fmt.Sprintf("ambiguity: %v", res.Status))
	case grammar.StatusPossiblyAmbiguous:
		pterm.Warning.Println(fmt.Sprintf("ambiguity: %v", res.Status))
	default:
		pterm.Success.Println(fmt.Sprintf("ambiguity: %v", res.Status))
	}
	pterm.Println(res.Explanation)

	for _, reason := range res.Reasons {
		line := fmt.Sprintf("[%v] %v: %v", reason.Severity, reason.Type, reason.Description)
		switch reason.Severity {
		case grammar.SeverityHigh:
			pterm.Error.Println(line)
		case grammar.SeverityMedium:
			pterm.Warning.Println(line)
		default:
			pterm.Info.Println(line)
		}
		for _, rule := range reason.InvolvedRules {
			fmt.Fprintf(os.Stdout, "    %v\n", rule)
		}
	}
}

// readSource reads the grammar text from the file argument, or stdin when
// no argument was given.
func readSource(args []string) ([]byte, string, error) {
	if len(args) == 0 {
		src, err := io.ReadAll(os.Stdin)
		if err != nil {
			return nil, "", err
		}
		return src, "stdin", nil
	}
	src, err := os.ReadFile(args[0])
	if err != nil {
		return nil, "", fmt.Errorf("Cannot open the grammar file %s: %w", args[0], err)
	}
	return src, filepath.Base(args[0]), nil
}

func parseGrammar(src []byte, name string, compact bool) (*grammar.Grammar, verr.SpecErrors) {
	p := spec.Parser{
		Compact:    compact,
		SourceName: name,
	}
	return grammar.ParseWith(p, bytes.NewReader(src))
}

func buildReport(source string, g *grammar.Grammar, res *grammar.Result, ff *grammar.FirstFollow, conflicts []*grammar.Conflict, unreachable []string, tr *grammar.TransformResult) *spec.Report {
	report := &spec.Report{
		Status:      string(res.Status),
		Source:      source,
		Explanation: res.Explanation,
		Unreachable: unreachable,
	}

	for _, reason := range res.Reasons {
		report.Reasons = append(report.Reasons, &spec.Reason{
			Type:          reason.Type,
			Description:   reason.Description,
			InvolvedRules: reason.InvolvedRules,
			Severity:      string(reason.Severity),
		})
	}
	for _, c := range conflicts {
		report.Conflicts = append(report.Conflicts, &spec.Conflict{
			Kind:         string(c.Kind),
			NonTerminal:  c.Head,
			Alternative1: c.Alternative1,
			Alternative2: c.Alternative2,
			Terminals:    c.Terminals,
		})
	}
	for _, head := range g.Heads() {
		first, _ := ff.First(head)
		follow, _ := ff.Follow(head)
		report.Symbols = append(report.Symbols, &spec.SymbolSets{
			Symbol: head,
			First:  first,
			Follow: follow,
		})
	}
	if tr.Success {
		report.Converted = tr.Grammar.Text()
	}
	for _, step := range tr.Steps {
		report.Steps = append(report.Steps, &spec.Step{
			Name:        step.Name,
			Description: step.Description,
			Before:      step.Before,
			After:       step.After,
		})
	}

	return report
}

func writeReport(report *spec.Report, path string) error {
	f, err := os.OpenFile(path, os.O_WRONLY|os.O_CREATE|os.O_TRUNC, 0644)
	if err != nil {
		return err
	}
	defer f.Close()

	b, err := json.Marshal(report)
	if err != nil {
		return err
	}
	fmt.Fprintf(f, "%v\n", string(b))
	return nil
}
