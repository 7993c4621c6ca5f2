package cmd

import (
	"context"
	"strings"

	"github.com/spf13/cobra"
)

func newURLPatternCommand(opts *options) *cobra.Command {
	return &cobra.Command{
		Use:   "url-pattern [url...]",
		Short: "Entfernt einen führenden Slash aus URL-Pattern",
		Long: `Entfernt genau einen führenden "/" aus jedem URL-Pattern.
Ohne Argumente wird eine URL pro Zeile von stdin gelesen.

Beispiele:
  textkit url-pattern /test.do //api/v1
  cat routes.txt | textkit url-pattern`,
		RunE: func(cmd *cobra.Command, args []string) error {
			urls, err := readLines(cmd, args)
			if err != nil {
				return err
			}
			return opts.withBackend(cmd, func(ctx context.Context, b backend) error {
				results, err := b.StandardURLPatterns(ctx, urls)
				if err != nil {
					return err
				}
				return opts.print(cmd, listResult{Input: urls, Result: results}, strings.Join(results, "\n"))
			})
		},
	}
}
