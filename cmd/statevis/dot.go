package main

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"
	"github.com/statevis/statevis"
)

// dotCmd represents the dot command
var dotCmd = &cobra.Command{
	Use:   "dot",
	Short: "Emit the Graphviz DOT document",
	Long:  `Parses the transition table and writes the clustered DOT document to stdout or to the file given with --output.`,
	Run: func(cmd *cobra.Command, args []string) {
		if err := runDot(cmd); err != nil {
			fmt.Printf("Error: %v\n", err)
			os.Exit(1)
		}
	},
}

func init() {
	dotCmd.Flags().Bool("self-loops", false, "Include self-loop transitions discovered during expansion")
	dotCmd.Flags().Bool("unusual", false, "Include unusual-input transitions outside the error-path clusters")
	dotCmd.Flags().StringP("output", "o", "", "Write the document to a file instead of stdout")
	dotCmd.Flags().String("name", "", "Graph name (default: input file base name)")
	rootCmd.AddCommand(dotCmd)
}

func runDot(cmd *cobra.Command) error {
	opts, err := buildOptions(cmd)
	if err != nil {
		return err
	}

	input, _ := cmd.Flags().GetString("input")
	opts.IncludeSelfLoops, _ = cmd.Flags().GetBool("self-loops")
	opts.IncludeUnusual, _ = cmd.Flags().GetBool("unusual")

	if name, _ := cmd.Flags().GetString("name"); name != "" {
		opts.Name = name
	} else {
		opts.Name = graphName(input)
	}

	ts, _, err := statevis.ParseFile(input, opts)
	if err != nil {
		return err
	}

	doc := statevis.Build(ts, opts)

	out := os.Stdout
	if path, _ := cmd.Flags().GetString("output"); path != "" {
		f, err := os.Create(path)
		if err != nil {
			return err
		}
		defer f.Close()
		out = f
	}

	return doc.WriteDOT(out)
}

// graphName derives the graph name from the input file: base name without
// extension, lowercased.
func graphName(input string) string {
	base := filepath.Base(input)
	base = strings.TrimSuffix(base, filepath.Ext(base))
	return strings.ToLower(base)
}
