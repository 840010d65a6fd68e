package main

import (
	"github.com/spf13/cobra"

	"github.com/netio-tools/check-netio/pkg/netiocheck"
)

var (
	loadOutputID string
	loadMinWatts float64
	loadMaxWatts float64
	loadMinAmps  float64
	loadMaxAmps  float64
)

var loadCmd = &cobra.Command{
	Use:   "load",
	Short: "Check output load",
	Args:  cobra.NoArgs,
	RunE:  runLoadCheck,
}

func init() {
	loadCmd.Flags().StringVarP(&loadOutputID, "output_id", "n", "1", "ID of output to check")
	loadCmd.Flags().Float64Var(&loadMinWatts, "min-watts", 0, "expect minimum load in W")
	loadCmd.Flags().Float64Var(&loadMaxWatts, "max-watts", 0, "expect maximum load in W")
	loadCmd.Flags().Float64Var(&loadMinAmps, "min-amps", 0, "expect minimum load in A")
	loadCmd.Flags().Float64Var(&loadMaxAmps, "max-amps", 0, "expect maximum load in A")
	rootCmd.AddCommand(loadCmd)
}

func runLoadCheck(cmd *cobra.Command, _ []string) error {
	c := &netiocheck.LoadCheck{Client: newClient(), OutputID: loadOutputID}

	if cmd.Flags().Changed("min-watts") {
		c.MinWatts = &loadMinWatts
	}
	if cmd.Flags().Changed("max-watts") {
		c.MaxWatts = &loadMaxWatts
	}
	if cmd.Flags().Changed("min-amps") {
		c.MinAmps = &loadMinAmps
	}
	if cmd.Flags().Changed("max-amps") {
		c.MaxAmps = &loadMaxAmps
	}
	return runCheck(c)
}
