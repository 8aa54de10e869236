package cli

import (
	"fmt"
	"strings"

	"github.com/npillmayer/emojis"
	"github.com/spf13/cobra"
)

func newSearchCommand() *cobra.Command {
	var limit int
	cmd := &cobra.Command{
		Use:   "search <query>",
		Short: "Search emojis by approximate name",
		Long: `Search the emoji repertoire by name or shortcode, with fuzzy matching.
Results are printed best match first.

Examples:
  emoji search star
  emoji search grining   (typos are fine)
  emoji search --limit 3 face`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			query := strings.Join(args, " ")
			matches := emojis.Search(query)
			if len(matches) == 0 {
				return fmt.Errorf("nothing matches %q", query)
			}
			if limit > 0 && len(matches) > limit {
				matches = matches[:limit]
			}
			out := cmd.OutOrStdout()
			for _, e := range matches {
				if code, ok := e.Shortcode(); ok {
					fmt.Fprintf(out, "%s  %-40s :%s:\n", e, e.Name(), code)
				} else {
					fmt.Fprintf(out, "%s  %s\n", e, e.Name())
				}
			}
			return nil
		},
	}
	cmd.Flags().IntVarP(&limit, "limit", "n", 10, "maximum number of results, 0 for all")
	return cmd
}
