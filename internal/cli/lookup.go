package cli

import (
	"fmt"
	"strings"

	"github.com/npillmayer/emojis"
	"github.com/spf13/cobra"
)

func newLookupCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "lookup <emoji or shortcode>",
		Short: "Look up a single emoji",
		Long: `Look up a single emoji, either by its Unicode sequence or by a gemoji
shortcode (with or without surrounding colons), and print what is known
about it.

Examples:
  emoji lookup 🚀
  emoji lookup rocket
  emoji lookup :rocket:`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			arg := args[0]
			e := emojis.Lookup(arg)
			if e == nil {
				e = emojis.LookupShortcode(strings.Trim(arg, ":"))
			}
			if e == nil {
				return fmt.Errorf("no emoji known for %q", arg)
			}
			printEmoji(cmd, e)
			return nil
		},
	}
}

func printEmoji(cmd *cobra.Command, e *emojis.Emoji) {
	out := cmd.OutOrStdout()
	fmt.Fprintf(out, "%s  %s\n", e, e.Name())
	fmt.Fprintf(out, "group:      %s\n", e.Group())
	fmt.Fprintf(out, "since:      E%s\n", e.UnicodeVersion())
	if codes := e.Shortcodes(); len(codes) > 0 {
		fmt.Fprintf(out, "shortcodes: :%s:\n", strings.Join(codes, ": :"))
	}
	if tone, ok := e.SkinTone(); ok {
		fmt.Fprintf(out, "skin tone:  %s\n", tone)
		var family []string
		for it := e.SkinTones(); it.Next(); {
			family = append(family, it.Emoji().String())
		}
		fmt.Fprintf(out, "variants:   %s\n", strings.Join(family, " "))
	}
}
