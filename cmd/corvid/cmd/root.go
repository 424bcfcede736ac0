package cmd

import (
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "corvid",
	Short: "Corvid language front-end",
	Long: `corvid is the syntactic front-end of the Corvid compiler.

It lexes and parses Corvid source modules into an AST and reports
syntax errors with source snippets. Type checking and code generation
are separate tools consuming its output.`,
	SilenceUsage:  true,
	SilenceErrors: true,
}

func Execute() error {
	return rootCmd.Execute()
}
