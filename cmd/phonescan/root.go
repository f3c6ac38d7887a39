// Package main provides the entry point for the phonescan CLI.
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

// NewRootCmd creates the root command for phonescan.
func NewRootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "phonescan",
		Short: "Phone number analysis tool",
		Long: `Phonescan analyzes phone numbers and reports everything it can derive
from them: canonical formats, numbering-plan validity, the mobile carrier,
the geographic region of the prefix, and the usage category.

Numbers entered without a country code are interpreted against the default
region (Indonesia). Every analysis is appended to a local history database
so past results can be reviewed with 'phonescan history'.`,
		Version:       getVersion(),
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	// Global flags that apply to all commands
	cmd.PersistentFlags().BoolP("verbose", "v", false, "Enable verbose logging")

	// Add subcommands
	cmd.AddCommand(NewAnalyzeCmd())
	cmd.AddCommand(NewHistoryCmd())
	cmd.AddCommand(NewInitCmd())
	cmd.AddCommand(NewVersionCmd())

	return cmd
}

// Execute runs the root command.
func Execute() {
	if err := NewRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
