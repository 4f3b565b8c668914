package main

import (
	"fmt"
	"os"
	"strings"

	"github.com/manideep395/KRS-Ambiguity-Checker/grammar"
	"github.com/pterm/pterm"
	"github.com/spf13/cobra"
)

var transformFlags = struct {
	compact *bool
	output  *string
}{}

func init() {
	cmd := &cobra.Command{
		Use:     "transform",
		Short:   "Rewrite the grammar to reduce known ambiguity classes",
		Example: `  krs transform grammar.txt -o converted.txt`,
		Args:    cobra.MaximumNArgs(1),
		RunE:    runTransform,
	}
	transformFlags.compact = cmd.Flags().Bool("compact", false, "enable the compact notation scanner")
	transformFlags.output = cmd.Flags().StringP("output", "o", "", "output file path for the converted grammar (default stdout)")
	rootCmd.AddCommand(cmd)
}

func runTransform(cmd *cobra.Command, args []string) error {
	src, name, err := readSource(args)
	if err != nil {
		return err
	}
	g, gerrs := parseGrammar(src, name, *transformFlags.compact)
	if gerrs != nil {
		return gerrs
	}

	tr := grammar.Transform(g)
	if !tr.Success {
		pterm.Info.Println(tr.Explanation)
		return nil
	}

	for i, step := range tr.Steps {
		pterm.Info.Println(fmt.Sprintf("%v. %v: %v", i+1, step.Name, step.Description))
		fmt.Fprintf(os.Stdout, "before:\n%v", indent(step.Before))
		fmt.Fprintf(os.Stdout, "after:\n%v", indent(step.After))
	}
	pterm.Success.Println(tr.Explanation)

	return writeConverted(tr.Grammar.Text(), *transformFlags.output)
}

func indent(text string) string {
	var b strings.Builder
	for _, line := range strings.Split(strings.TrimRight(text, "\n"), "\n") {
		fmt.Fprintf(&b, "    %v\n", line)
	}
	return b.String()
}

func writeConverted(text, path string) error {
	if path == "" {
		fmt.Fprint(os.Stdout, text)
		return nil
	}
	f, err := os.OpenFile(path, os.O_WRONLY|os.O_CREATE|os.O_TRUNC, 0644)
	if err != nil {
		return err
	}
	defer f.Close()
	fmt.Fprint(f, text)
	return nil
}
