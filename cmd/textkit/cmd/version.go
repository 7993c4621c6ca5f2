package cmd

import (
	"fmt"
	"runtime"

	"github.com/spf13/cobra"

	"github.com/msto63/textkit/pkg/core/version"
)

type versionInfo struct {
	Version   string `json:"version"`
	Library   string `json:"library"`
	API       string `json:"api"`
	Commit    string `json:"commit"`
	BuildDate string `json:"build_date"`
	GoVersion string `json:"go_version"`
	Platform  string `json:"platform"`
}

func newVersionCommand(opts *options) *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Zeigt die Version an",
		RunE: func(cmd *cobra.Command, args []string) error {
			info := versionInfo{
				Version:   version.ServiceVersion("textkit"),
				Library:   version.ServiceVersion("stringx"),
				API:       version.API,
				Commit:    version.Commit,
				BuildDate: version.BuildDate,
				GoVersion: runtime.Version(),
				Platform:  runtime.GOOS + "/" + runtime.GOARCH,
			}
			if opts.json {
				return writeJSON(cmd, info)
			}

			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "textkit v%s\n", info.Version)
			fmt.Fprintf(out, "  stringx:    v%s\n", info.Library)
			fmt.Fprintf(out, "  API:        %s\n", info.API)
			fmt.Fprintf(out, "  Git Commit: %s\n", info.Commit)
			fmt.Fprintf(out, "  Build Date: %s\n", info.BuildDate)
			fmt.Fprintf(out, "  Go Version: %s\n", info.GoVersion)
			fmt.Fprintf(out, "  OS/Arch:    %s\n", info.Platform)
			return nil
		},
	}
}
