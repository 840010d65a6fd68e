package main

import (
	"github.com/spf13/cobra"

	"github.com/netio-tools/check-netio/pkg/netiocheck"
)

var (
	outputID  string
	outputOn  bool
	outputOff bool
)

var outputCmd = &cobra.Command{
	Use:   "output",
	Short: "Check output state",
	Args:  cobra.NoArgs,
	RunE:  runOutputCheck,
}

func init() {
	outputCmd.Flags().StringVarP(&outputID, "output_id", "n", "1", "ID of output to check")
	outputCmd.Flags().BoolVar(&outputOn, "on", false, "expect the output to be powered on")
	outputCmd.Flags().BoolVar(&outputOff, "off", false, "expect the output to be powered off")
	outputCmd.MarkFlagsMutuallyExclusive("on", "off")
	rootCmd.AddCommand(outputCmd)
}

func runOutputCheck(_ *cobra.Command, _ []string) error {
	c := &netiocheck.StateCheck{Client: newClient(), OutputID: outputID}
	switch {
	case outputOn:
		state := 1
		c.Expect = &state
	case outputOff:
		state := 0
		c.Expect = &state
	}
	return runCheck(c)
}
