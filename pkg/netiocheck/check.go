// Package netiocheck implements the monitoring checks run against a
// Netio PDU: device info, uptime, per-output state and load, and the
// set_output control operation. Each check fetches a fresh status
// snapshot and builds one plugin.Report; transport failures propagate
// as errors and are never folded into the report.
package netiocheck

import (
	"fmt"

	"github.com/netio-tools/check-netio/pkg/netio"
	"github.com/netio-tools/check-netio/pkg/plugin"
)

// resolveOutput locates the single output matching id. When the id
// resolves to zero or several outputs the report is flagged UNKNOWN
// with a lookup error message and ok is false.
func resolveOutput(rep *plugin.Report, snap *netio.Snapshot, id string) (netio.Output, bool) {
	out, ok := snap.FindOutput(id)
	if !ok {
		rep.Appendf("ERROR - Unable to find output ID '%s'", id)
		rep.Unknown()
		return netio.Output{}, false
	}
	return out, true
}

// recordOutputMetrics sets the per-output perfdata shared by the
// state and load checks and returns the current in amps.
func recordOutputMetrics(rep *plugin.Report, out netio.Output) float64 {
	rep.SetPerfData("state", out.State)
	current := float64(out.Current) / 1000
	rep.SetPerfData("current", formatAmps(current))
	rep.SetPerfData("load", formatWatts(out.Load))
	rep.SetPerfData("power_factor", out.PowerFactor)
	return current
}

func formatAmps(v float64) string {
	return fmt.Sprintf("%vA", v)
}

func formatWatts(v float64) string {
	return fmt.Sprintf("%vW", v)
}
