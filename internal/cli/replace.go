package cli

import (
	"io"
	"os"
	"strings"

	"github.com/npillmayer/emojis"
	"github.com/spf13/cobra"
)

func newReplaceCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "replace [text…]",
		Short: "Substitute :shortcode: tokens in text",
		Long: `Substitute every :shortcode: token naming an emoji by the emoji itself.
Text is taken from the arguments, or from stdin when none are given.
Tokens that do not name an emoji pass through unchanged.

Examples:
  emoji replace "launch :rocket: now"
  git log --oneline | emoji replace`,
		RunE: func(cmd *cobra.Command, args []string) error {
			if len(args) > 0 {
				if err := replaceShortcodes(strings.Join(args, " "), cmd.OutOrStdout()); err != nil {
					return err
				}
				_, err := io.WriteString(cmd.OutOrStdout(), "\n")
				return err
			}
			input, err := io.ReadAll(os.Stdin)
			if err != nil {
				return err
			}
			return replaceShortcodes(string(input), cmd.OutOrStdout())
		},
	}
}

// replaceShortcodes copies src to dst, substituting every :shortcode:
// token that names an emoji. A colon can close one token and open the
// next, so ":maybe:rocket:" resolves its second token.
func replaceShortcodes(src string, dst io.Writer) error {
	// The index values frame a candidate token like so:
	//
	//	: r o c k e t :
	//	i             j
	for {
		i := strings.IndexByte(src, ':')
		if i < 0 {
			break
		}
		j := strings.IndexByte(src[i+1:], ':')
		if j < 0 {
			break
		}
		j += i + 1
		if e := emojis.LookupShortcode(src[i+1 : j]); e != nil {
			if _, err := io.WriteString(dst, src[:i]); err != nil {
				return err
			}
			if _, err := io.WriteString(dst, e.String()); err != nil {
				return err
			}
			src = src[j+1:]
		} else {
			// not a shortcode; the closing colon may open the next token
			if _, err := io.WriteString(dst, src[:i+1]); err != nil {
				return err
			}
			src = src[i+1:]
		}
	}
	_, err := io.WriteString(dst, src)
	return err
}
