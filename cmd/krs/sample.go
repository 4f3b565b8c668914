package main

import (
	"fmt"
	"os"

	"github.com/manideep395/KRS-Ambiguity-Checker/grammar"
	"github.com/pterm/pterm"
	"github.com/spf13/cobra"
)

var sampleFlags = struct {
	compact    *bool
	depth      *int
	maxTrees   *int
	maxSamples *int
}{}

func init() {
	cmd := &cobra.Command{
		Use:     "sample",
		Short:   "Derive parse-tree skeletons and sample strings",
		Example: `  krs sample grammar.txt --depth 5`,
		Args:    cobra.MaximumNArgs(1),
		RunE:    runSample,
	}
	sampleFlags.compact = cmd.Flags().Bool("compact", false, "enable the compact notation scanner")
	sampleFlags.depth = cmd.Flags().Int("depth", grammar.DefaultTreeDepth, "maximum expansion depth")
	sampleFlags.maxTrees = cmd.Flags().Int("max-trees", grammar.DefaultTreeAlternatives, "maximum number of parse trees")
	sampleFlags.maxSamples = cmd.Flags().Int("max-samples", grammar.DefaultSampleCount, "maximum number of sample strings")
	rootCmd.AddCommand(cmd)
}

func runSample(cmd *cobra.Command, args []string) error {
	src, name, err := readSource(args)
	if err != nil {
		return err
	}
	g, gerrs := parseGrammar(src, name, *sampleFlags.compact)
	if gerrs != nil {
		return gerrs
	}

	trees := grammar.BuildParseTrees(g, *sampleFlags.depth, *sampleFlags.maxTrees)
	for i, tree := range trees {
		pterm.Println(fmt.Sprintf("parse tree %v of %v", i+1, len(trees)))
		root := pterm.NewTreeFromLeveledList(leveledTree(tree, pterm.LeveledList{}, 0))
		pterm.DefaultTree.WithRoot(root).Render()
	}
	if len(trees) > 1 {
		pterm.Info.Println("the start symbol has several alternatives; compare the trees for diverging structure")
	}

	samples := grammar.GenerateSamples(g, 0, 0, *sampleFlags.maxSamples)
	if len(samples) > 0 {
		pterm.Println("sample strings:")
		for i, s := range samples {
			fmt.Fprintf(os.Stdout, "%4v. %v\n", i+1, s)
		}
	}

	return nil
}

func leveledTree(n *grammar.TreeNode, ll pterm.LeveledList, level int) pterm.LeveledList {
	ll = append(ll, pterm.LeveledListItem{
		Level: level,
		Text:  n.Label,
	})
	for _, child := range n.Children {
		ll = leveledTree(child, ll, level+1)
	}
	return ll
}
