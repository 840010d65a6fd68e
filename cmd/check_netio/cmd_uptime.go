package main

import (
	"github.com/spf13/cobra"

	"github.com/netio-tools/check-netio/pkg/netiocheck"
)

var (
	uptimeMin int64
	uptimeMax int64
)

var uptimeCmd = &cobra.Command{
	Use:   "uptime",
	Short: "Check PDU uptime",
	Args:  cobra.NoArgs,
	RunE:  runUptimeCheck,
}

func init() {
	uptimeCmd.Flags().Int64Var(&uptimeMin, "min", 0, "minimum expected uptime in seconds")
	uptimeCmd.Flags().Int64Var(&uptimeMax, "max", 0, "maximum expected uptime in seconds")
	rootCmd.AddCommand(uptimeCmd)
}

func runUptimeCheck(cmd *cobra.Command, _ []string) error {
	c := &netiocheck.UptimeCheck{Client: newClient()}

	// a bound left at its default is no bound at all
	if cmd.Flags().Changed("min") {
		c.Min = &uptimeMin
	}
	if cmd.Flags().Changed("max") {
		c.Max = &uptimeMax
	}
	return runCheck(c)
}
