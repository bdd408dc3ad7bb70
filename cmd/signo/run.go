package main

import (
	"fmt"
	"os"

	"github.com/RobinBoers/signo"
	"github.com/spf13/cobra"
)

// runCmd evaluates a single source file: one argument <path>; on success
// prints nothing extra beyond the program's own side effects; on error
// prints the formatted diagnostic and exits non-zero.
var runCmd = &cobra.Command{
	Use:   "run <path>",
	Short: "Evaluate a Signo source file",
	Args:  cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		_, _, err := signo.EvalFile(args[0])
		if err != nil {
			fmt.Fprintln(os.Stderr, err)
			os.Exit(1)
		}
	},
}

func init() {
	rootCmd.AddCommand(runCmd)
}
