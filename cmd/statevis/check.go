package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"github.com/statevis/statevis"
)

// checkCmd represents the check command
var checkCmd = &cobra.Command{
	Use:   "check",
	Short: "Check the transition table for malformed lines",
	Long:  `Parses the transition table and reports every line matching neither the state-declaration nor the transition pattern.`,
	Run: func(cmd *cobra.Command, args []string) {
		if err := runCheck(cmd); err != nil {
			fmt.Printf("Check failed: %v\n", err)
			os.Exit(1)
		}
		fmt.Println("Table is well-formed")
	},
}

func init() {
	rootCmd.AddCommand(checkCmd)
}

func runCheck(cmd *cobra.Command) error {
	opts, err := buildOptions(cmd)
	if err != nil {
		return err
	}

	input, _ := cmd.Flags().GetString("input")
	ts, errs, err := statevis.ParseFile(input, opts)
	if err != nil {
		return err
	}

	for _, e := range errs {
		fmt.Println(e)
	}
	if len(errs) > 0 {
		return fmt.Errorf("%d malformed line(s) in %s", len(errs), input)
	}

	fmt.Printf("%d transitions, %d states\n", len(ts), len(ts.States()))
	return nil
}
