// Package cli implements the emoji command line tool, a thin wrapper
// around the lookup and search API of the root package.
package cli

import (
	"github.com/spf13/cobra"
)

// NewRootCommand creates the root command with all subcommands attached.
func NewRootCommand(version string) *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "emoji",
		Short: "Look up, search and substitute Unicode emojis",
		Long: `emoji is a small reference tool for the Unicode emoji repertoire.

It looks up emojis by Unicode sequence or by gemoji shortcode, searches
the repertoire by approximate name, and substitutes :shortcode: tokens
in text by the emojis they name.`,
		Version:       version,
		SilenceUsage:  true,
		SilenceErrors: false,
	}
	rootCmd.AddCommand(newLookupCommand())
	rootCmd.AddCommand(newSearchCommand())
	rootCmd.AddCommand(newReplaceCommand())
	return rootCmd
}
