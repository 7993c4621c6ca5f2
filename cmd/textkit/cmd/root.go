package cmd

import (
	"strings"

	"github.com/spf13/cobra"
)

// NewRootCommand builds the textkit command tree
func NewRootCommand() *cobra.Command {
	opts := &options{}

	rootCmd := &cobra.Command{
		Use:   "textkit",
		Short: "textkit - Text-Hilfsfunktionen",
		Long: `textkit bündelt kleine Text-Hilfsfunktionen: Leerprüfung,
Groß-/Kleinschreibung des ersten Zeichens, URL-Pattern-Normalisierung
und Tokenisierung.

Ohne --remote und --addr laufen alle Befehle lokal. Mit --remote werden sie
an den textkitd unter client.address aus der Config gesendet, mit
--addr HOST:PORT an die angegebene Adresse.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return opts.load(cmd)
		},
	}

	flags := rootCmd.PersistentFlags()
	flags.StringVar(&opts.cfgFile, "config", "", "Config-Datei (TOML oder YAML)")
	flags.BoolVar(&opts.remote, "remote", false, "An textkitd unter client.address senden")
	flags.StringVar(&opts.addr, "addr", "", "textkitd-Adresse (impliziert --remote)")
	flags.BoolVar(&opts.json, "json", false, "Ausgabe als JSON")
	flags.BoolVarP(&opts.verbose, "verbose", "v", false, "Verbose Output")

	rootCmd.AddCommand(
		newIsEmptyCommand(opts),
		newUpperFirstCommand(opts),
		newLowerFirstCommand(opts),
		newURLPatternCommand(opts),
		newTokenizeCommand(opts),
		newPlaygroundCommand(opts),
		newVersionCommand(opts),
	)

	return rootCmd
}

// Execute runs the root command with the process arguments
func Execute() error {
	return NewRootCommand().Execute()
}

// remoteAddress returns the daemon address, or "" for local execution
func (o *options) remoteAddress() string {
	if addr := strings.TrimSpace(o.addr); addr != "" {
		return addr
	}
	if o.remote && o.config != nil {
		return o.config.Client.Address
	}
	return ""
}
