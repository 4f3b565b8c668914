package main

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"text/template"

	"github.com/manideep395/KRS-Ambiguity-Checker/spec"
	"github.com/spf13/cobra"
)

func init() {
	cmd := &cobra.Command{
		Use:     "show",
		Short:   "Print a report in a readable format",
		Example: `  krs show report.json`,
		Args:    cobra.ExactArgs(1),
		RunE:    runShow,
	}
	rootCmd.AddCommand(cmd)
}

func runShow(cmd *cobra.Command, args []string) error {
	report, err := readReport(args[0])
	if err != nil {
		return err
	}

	err = writeTextReport(os.Stdout, report)
	if err != nil {
		return err
	}

	return nil
}

func readReport(path string) (*spec.Report, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("Cannot open the report %s: %w", path, err)
	}
	defer f.Close()

	d, err := io.ReadAll(f)
	if err != nil {
		return nil, err
	}

	report := &spec.Report{}
	err = json.Unmarshal(d, report)
	if err != nil {
		return nil, err
	}

	return report, nil
}

const reportTemplate = `Status: {{ .Status }}

# Original Grammar

{{ .Source }}
# Explanation

{{ .Explanation }}
{{ if .Converted }}
# Converted Grammar

{{ .Converted }}{{ end }}
# Transformation Steps
{{ if .Steps }}
{{ range $i, $s := .Steps -}}
{{ inc $i }}. {{ $s.Name }}: {{ $s.Description }}
{{ end -}}
{{ else }}
none
{{ end }}`

func writeTextReport(w io.Writer, report *spec.Report) error {
	fns := template.FuncMap{
		"inc": func(i int) int {
			return i + 1
		},
	}

	tmpl, err := template.New("").Funcs(fns).Parse(reportTemplate)
	if err != nil {
		return err
	}

	return tmpl.Execute(w, report)
}
