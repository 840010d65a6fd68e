package netiocheck

import (
	"fmt"

	"github.com/netio-tools/check-netio/pkg/netio"
	"github.com/netio-tools/check-netio/pkg/plugin"
)

// UptimeCheck verifies the device uptime against optional bounds.
// Min and Max may both be set; the min branch is evaluated first and
// only one message is emitted per run.
type UptimeCheck struct {
	Client *netio.Client
	Min    *int64 // minimum expected uptime in seconds
	Max    *int64 // maximum expected uptime in seconds
}

// Run executes the uptime check.
func (c *UptimeCheck) Run() (*plugin.Report, error) {
	rep := plugin.NewReport()
	snap, err := c.Client.Status()
	if err != nil {
		return nil, err
	}
	rep.AddDebug(string(snap.Raw))

	uptime := snap.Agent.Uptime
	rep.SetPerfData("uptime", fmt.Sprintf("%ds", uptime))

	switch {
	case c.Min != nil && uptime < *c.Min:
		rep.Appendf("Uptime %ds is lower than expected %ds", uptime, *c.Min)
		rep.Error()
	case c.Max != nil && uptime > *c.Max:
		rep.Appendf("Uptime %ds is larger than expected %ds", uptime, *c.Max)
		rep.Error()
	default:
		rep.Appendf("Device %s - uptime is %ds", snap.Agent.DeviceName, uptime)
	}
	return rep, nil
}
