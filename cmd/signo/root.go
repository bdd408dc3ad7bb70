// Package main wires up the signo command-line tool: a root command
// plus "run <path>" and "repl" subcommands.
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "signo",
	Short: "Signo is a small Lisp-family language with an interactive evaluator",
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
