package cmd

import (
	"github.com/spf13/cobra"

	"github.com/msto63/textkit/internal/tui/playground"
)

func newPlaygroundCommand(opts *options) *cobra.Command {
	return &cobra.Command{
		Use:   "playground",
		Short: "Interaktiver Spielplatz für die Text-Funktionen",
		Long: `Startet eine Terminal-Oberfläche, die alle Funktionen live auf den
eingegebenen Text anwendet.

Tastenkürzel:
  tab      Feld wechseln (Text / Trennzeichen)
  ctrl+t   Trimmen an/aus
  ctrl+e   Leere Tokens verwerfen an/aus
  ctrl+r   Case-Regel wechseln
  esc      Beenden`,
		RunE: func(cmd *cobra.Command, args []string) error {
			return playground.Run(opts.config.Text)
		},
	}
}
