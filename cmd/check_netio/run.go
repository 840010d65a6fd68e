package main

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/netio-tools/check-netio/pkg/netio"
	"github.com/netio-tools/check-netio/pkg/plugin"
)

// Checker is implemented by all device checks.
type Checker interface {
	Run() (*plugin.Report, error)
}

// Swapped out in tests so command runs can be observed without
// terminating the test process.
var (
	osExit           = os.Exit
	stdout io.Writer = os.Stdout
	stderr io.Writer = os.Stderr
)

// newClient assembles the device client from the global flags.
func newClient() *netio.Client {
	return &netio.Client{
		Address:  address,
		Port:     port,
		Username: authUser,
		Password: authPass,
		Timeout:  timeout,
	}
}

// runCheck executes a check, prints its report and terminates the
// process with the verdict's exit code. Transport failures become an
// UNKNOWN line on stdout; rejected credentials get their own message
// on stderr. Neither is ever reported as OK.
func runCheck(c Checker) error {
	rep, err := c.Run()
	if err != nil {
		return failUnknown(err)
	}
	osExit(rep.Flush(stdout, stderr, verbose))
	return nil
}

// failUnknown reports an environment failure and exits with the
// UNKNOWN code.
func failUnknown(err error) error {
	if errors.Is(err, netio.ErrUnauthorized) {
		fmt.Fprintf(stderr, "access denied: %v\n", err)
		osExit(plugin.StatusUnknown.ExitCode())
		return nil
	}
	fmt.Fprintf(stdout, "UNKNOWN - %v\n", err)
	osExit(plugin.StatusUnknown.ExitCode())
	return nil
}
