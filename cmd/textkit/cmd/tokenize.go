package cmd

import (
	"context"
	"strings"

	"github.com/spf13/cobra"

	"github.com/msto63/textkit/internal/tui/playground"
)

func newTokenizeCommand(opts *options) *cobra.Command {
	var (
		delimiters string
		noTrim     bool
		keepEmpty  bool
		styled     bool
	)

	cmd := &cobra.Command{
		Use:   "tokenize [text]",
		Short: "Zerlegt Text an Trennzeichen in Tokens",
		Long: `Zerlegt Text an jedem Zeichen aus --delimiters. Tokens werden
standardmäßig getrimmt und leere Tokens verworfen.

Beispiele:
  textkit tokenize "a, b;c"
  textkit tokenize --delimiters "|" --keep-empty "a| |b"
  cat liste.txt | textkit tokenize --styled`,
		RunE: func(cmd *cobra.Command, args []string) error {
			text, err := readText(cmd, args)
			if err != nil {
				return err
			}

			req := tokenizeRequest{Text: &text}
			if cmd.Flags().Changed("delimiters") {
				req.Delimiters = &delimiters
			}
			if noTrim {
				trim := false
				req.TrimTokens = &trim
			}
			if keepEmpty {
				ignore := false
				req.IgnoreEmptyTokens = &ignore
			}

			return opts.withBackend(cmd, func(ctx context.Context, b backend) error {
				tokens, err := b.Tokenize(ctx, req)
				if err != nil {
					return err
				}
				plain := strings.Join(tokens, "\n")
				if styled {
					plain = playground.RenderTokens(tokens)
				}
				return opts.print(cmd, listResult{Input: text, Result: tokens}, plain)
			})
		},
	}

	cmd.Flags().StringVarP(&delimiters, "delimiters", "d", "", "Trennzeichen (Standard aus der Config)")
	cmd.Flags().BoolVar(&noTrim, "no-trim", false, "Tokens nicht trimmen")
	cmd.Flags().BoolVar(&keepEmpty, "keep-empty", false, "Leere Tokens behalten")
	cmd.Flags().BoolVar(&styled, "styled", false, "Tokens farbig darstellen")
	return cmd
}
