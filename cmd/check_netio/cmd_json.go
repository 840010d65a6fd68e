package main

import (
	"fmt"

	"github.com/jwalton/go-supportscolor"
	"github.com/spf13/cobra"
	"github.com/tidwall/gjson"
	"github.com/tidwall/pretty"
)

var jsonPath string

var jsonCmd = &cobra.Command{
	Use:   "json",
	Short: "Dump the raw device status JSON",
	Long:  "Dump the device status for debugging, pretty-printed, or extract a single value with --path (gjson syntax, e.g. Agent.Model or Outputs.0.State). Not a monitoring check.",
	Args:  cobra.NoArgs,
	RunE:  runJSONDump,
}

func init() {
	jsonCmd.Flags().StringVar(&jsonPath, "path", "", "print only the value at this path")
	rootCmd.AddCommand(jsonCmd)
}

func runJSONDump(_ *cobra.Command, _ []string) error {
	body, err := newClient().Fetch()
	if err != nil {
		return failUnknown(err)
	}

	if jsonPath != "" {
		res := gjson.GetBytes(body, jsonPath)
		if !res.Exists() {
			return fmt.Errorf("path %q not found in device status", jsonPath)
		}
		fmt.Fprintln(stdout, res.String())
		return nil
	}

	out := pretty.Pretty(body)
	if supportscolor.Stdout().SupportsColor {
		out = pretty.Color(out, nil)
	}
	_, _ = stdout.Write(out)
	return nil
}
