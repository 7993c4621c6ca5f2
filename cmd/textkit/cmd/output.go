package cmd

import (
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"
)

// writeJSON encodes v as indented JSON to the command's stdout.
func writeJSON(cmd *cobra.Command, v any) error {
	enc := json.NewEncoder(cmd.OutOrStdout())
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}

// textResult is the JSON shape of a single text result
type textResult struct {
	Input  string `json:"input"`
	Result string `json:"result"`
}

// boolResult is the JSON shape of a boolean result
type boolResult struct {
	Input  string `json:"input"`
	Result bool   `json:"result"`
}

// listResult is the JSON shape of a list result
type listResult struct {
	Input  any      `json:"input"`
	Result []string `json:"result"`
}

func (o *options) print(cmd *cobra.Command, v any, plain string) error {
	if o.json {
		return writeJSON(cmd, v)
	}
	_, err := fmt.Fprintln(cmd.OutOrStdout(), plain)
	return err
}
