package main

import (
	"github.com/RobinBoers/signo/repl"
	"github.com/spf13/cobra"
)

var replCmd = &cobra.Command{
	Use:   "repl",
	Short: "Start an interactive Signo session",
	Run: func(cmd *cobra.Command, args []string) {
		repl.Run()
	},
}

func init() {
	rootCmd.AddCommand(replCmd)
}
