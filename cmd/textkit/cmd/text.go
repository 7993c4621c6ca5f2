package cmd

import (
	"context"
	"strconv"

	"github.com/spf13/cobra"
)

func newIsEmptyCommand(opts *options) *cobra.Command {
	return &cobra.Command{
		Use:   "is-empty [text]",
		Short: "Prüft, ob ein Text leer ist",
		Long: `Gibt true aus, wenn der Text leer ist oder nur aus Leerraum besteht.

Beispiele:
  textkit is-empty "   "
  echo "Text" | textkit is-empty`,
		RunE: func(cmd *cobra.Command, args []string) error {
			text, err := readText(cmd, args)
			if err != nil {
				return err
			}
			return opts.withBackend(cmd, func(ctx context.Context, b backend) error {
				empty, err := b.IsEmpty(ctx, &text)
				if err != nil {
					return err
				}
				return opts.print(cmd, boolResult{Input: text, Result: empty}, strconv.FormatBool(empty))
			})
		},
	}
}

func newUpperFirstCommand(opts *options) *cobra.Command {
	return newCaseCommand(opts, "upper-first", "Erstes Zeichen in Großbuchstaben",
		func(ctx context.Context, b backend, text *string, rule string) (string, error) {
			return b.UpperFirst(ctx, text, rule)
		})
}

func newLowerFirstCommand(opts *options) *cobra.Command {
	return newCaseCommand(opts, "lower-first", "Erstes Zeichen in Kleinbuchstaben",
		func(ctx context.Context, b backend, text *string, rule string) (string, error) {
			return b.LowerFirst(ctx, text, rule)
		})
}

type caseFunc func(ctx context.Context, b backend, text *string, rule string) (string, error)

func newCaseCommand(opts *options, name, short string, fn caseFunc) *cobra.Command {
	var caseRule string

	cmd := &cobra.Command{
		Use:   name + " [text]",
		Short: short,
		Long: short + `. Der Rest des Textes bleibt unverändert; ein leerer
Text ergibt eine leere Ausgabe.

Case-Regeln:
  unicode  - Unicode-Fallabbildung (Standard)
  ascii    - nur a-z und A-Z werden verändert

Beispiele:
  textkit ` + name + ` "hello world"
  textkit ` + name + ` --case-rule ascii "élan"`,
		RunE: func(cmd *cobra.Command, args []string) error {
			text, err := readText(cmd, args)
			if err != nil {
				return err
			}
			return opts.withBackend(cmd, func(ctx context.Context, b backend) error {
				result, err := fn(ctx, b, &text, caseRule)
				if err != nil {
					return err
				}
				return opts.print(cmd, textResult{Input: text, Result: result}, result)
			})
		},
	}

	cmd.Flags().StringVar(&caseRule, "case-rule", "", "Case-Regel (unicode, ascii; Standard aus der Config)")
	return cmd
}
