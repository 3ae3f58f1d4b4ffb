package main

import (
	"fmt"

	"github.com/spf13/cobra"
	"github.com/statevis/statevis"
)

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print the version number of statevis",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Printf("statevis version %s\n", statevis.Version)
	},
}

func init() {
	rootCmd.AddCommand(versionCmd)
}
