package main

import (
	"github.com/spf13/cobra"

	"github.com/netio-tools/check-netio/pkg/netiocheck"
)

var (
	infoExpectMAC   string
	infoMinFirmware string
)

var infoCmd = &cobra.Command{
	Use:   "info",
	Short: "Get PDU info",
	Args:  cobra.NoArgs,
	RunE:  runInfoCheck,
}

func init() {
	infoCmd.Flags().StringVar(&infoExpectMAC, "expect-mac", "", "expected MAC address (compared case-insensitively)")
	infoCmd.Flags().StringVar(&infoMinFirmware, "min-firmware", "", "minimum expected firmware version")
	rootCmd.AddCommand(infoCmd)
}

func runInfoCheck(_ *cobra.Command, _ []string) error {
	return runCheck(&netiocheck.InfoCheck{
		Client:      newClient(),
		ExpectMAC:   infoExpectMAC,
		MinFirmware: infoMinFirmware,
	})
}
