package main

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"
)

// Version is set at build time via ldflags
var Version = "dev"

var (
	address  string
	port     int
	authUser string
	authPass string
	verbose  bool
	timeout  time.Duration
)

var rootCmd = &cobra.Command{
	Use:     "check_netio",
	Short:   "Monitoring plugin for Netio PDU devices",
	Long:    "check_netio queries the JSON API of a Netio power distribution unit and reports device health in monitoring-plugin format (exit codes 0/1/2/3, perfdata on stdout).",
	Version: Version,
	Args:    cobra.NoArgs,
	// invoking without a subcommand behaves like "info"
	RunE: runInfoCheck,
}

func init() {
	rootCmd.PersistentFlags().StringVarP(&address, "address", "H", "192.168.50.220", "IP address of the device")
	rootCmd.PersistentFlags().IntVarP(&port, "port", "p", 80, "JSON API port")
	rootCmd.PersistentFlags().StringVarP(&authUser, "user", "k", "", "username used to access the console")
	rootCmd.PersistentFlags().StringVarP(&authPass, "password", "K", "", "password used to access the console")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "dump the raw device status to stderr")
	rootCmd.PersistentFlags().DurationVar(&timeout, "timeout", 10*time.Second, "HTTP request timeout")
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		// unparsable invocations count as UNKNOWN for the
		// invoking monitoring framework
		fmt.Fprintf(stderr, "UNKNOWN - %v\n", err)
		osExit(3)
	}
}
