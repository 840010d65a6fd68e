package main

import (
	"github.com/spf13/cobra"

	"github.com/netio-tools/check-netio/pkg/netiocheck"
)

var (
	setOutputID string
	setOn       bool
	setOff      bool
	setRestart  bool
	setPing     bool
	setToggle   bool
)

var setOutputCmd = &cobra.Command{
	Use:   "set_output",
	Short: "Switch an output on, off, restart, ping or toggle it",
	Args:  cobra.NoArgs,
	RunE:  runSetOutput,
}

func init() {
	setOutputCmd.Flags().StringVarP(&setOutputID, "output_id", "n", "1", "ID of output to switch")
	setOutputCmd.Flags().BoolVar(&setOn, "on", false, "power the output on")
	setOutputCmd.Flags().BoolVar(&setOff, "off", false, "power the output off")
	setOutputCmd.Flags().BoolVar(&setRestart, "restart", false, "power-cycle the output")
	setOutputCmd.Flags().BoolVar(&setPing, "ping", false, "send a short off pulse")
	setOutputCmd.Flags().BoolVar(&setToggle, "toggle", false, "invert the output state")
	setOutputCmd.MarkFlagsMutuallyExclusive("on", "off", "restart", "ping", "toggle")
	setOutputCmd.MarkFlagsOneRequired("on", "off", "restart", "ping", "toggle")
	rootCmd.AddCommand(setOutputCmd)
}

// selectedAction maps the action flags to the action name sent to
// the device.
func selectedAction() string {
	switch {
	case setOn:
		return "on"
	case setOff:
		return "off"
	case setRestart:
		return "restart"
	case setPing:
		return "ping"
	case setToggle:
		return "toggle"
	default:
		return ""
	}
}

func runSetOutput(_ *cobra.Command, _ []string) error {
	return runCheck(&netiocheck.SetOutputCheck{
		Client:   newClient(),
		OutputID: setOutputID,
		Action:   selectedAction(),
	})
}
