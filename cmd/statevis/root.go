package main

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/spf13/cobra"
	"github.com/statevis/statevis"
)

var rootCmd = &cobra.Command{
	Use:   "statevis",
	Short: "Statevis turns protocol state tables into Graphviz diagrams",
	Long:  `Statevis reads a STATES transition table and emits a Graphviz DOT document clustered by start state, with error paths isolated into their own clusters.`,
}

// Execute adds all child commands to the root command and sets flags appropriately.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Println(err)
		os.Exit(1)
	}
}

func init() {
	// Persistent flags (available to all commands)
	rootCmd.PersistentFlags().StringP("input", "f", "STATES", "Path to the transition table")
	rootCmd.PersistentFlags().StringP("config", "c", "", "Optional YAML config overriding unusual inputs and start markers")
	rootCmd.PersistentFlags().BoolP("verbose", "v", false, "Enable debug logging")
}

// buildOptions assembles library options from the persistent flags.
func buildOptions(cmd *cobra.Command) (statevis.Options, error) {
	opts := statevis.DefaultOptions()

	level := slog.LevelInfo
	if verbose, _ := cmd.Flags().GetBool("verbose"); verbose {
		level = slog.LevelDebug
	}
	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level}))
	opts.Logger = statevis.NewSlogLogger(logger)

	if cfgPath, _ := cmd.Flags().GetString("config"); cfgPath != "" {
		var err error
		opts, err = statevis.LoadConfig(cfgPath, opts)
		if err != nil {
			return opts, err
		}
	}

	return opts, nil
}
