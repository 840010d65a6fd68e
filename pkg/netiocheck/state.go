package netiocheck

import (
	"fmt"

	"github.com/netio-tools/check-netio/pkg/netio"
	"github.com/netio-tools/check-netio/pkg/plugin"
)

// StateCheck verifies the power state of one output.
type StateCheck struct {
	Client   *netio.Client
	OutputID string
	Expect   *int // expected state: 1 on, 0 off, nil for no expectation
}

// Run executes the output state check.
func (c *StateCheck) Run() (*plugin.Report, error) {
	rep := plugin.NewReport()
	snap, err := c.Client.Status()
	if err != nil {
		return nil, err
	}
	rep.AddDebug(string(snap.Raw))
	rep.SetPerfData("uptime", fmt.Sprintf("%ds", snap.Agent.Uptime))

	out, ok := resolveOutput(rep, snap, c.OutputID)
	if !ok {
		return rep, nil
	}
	recordOutputMetrics(rep, out)

	if c.Expect != nil {
		rep.AddDebug(fmt.Sprintf("%+v", out))
		if out.State != *c.Expect {
			rep.Appendf("Output %s(%s) state is %d, should be %d", c.OutputID, out.Name, out.State, *c.Expect)
			rep.Error()
			return rep, nil
		}
	}
	rep.Appendf("Output %s(%s) state is %d", c.OutputID, out.Name, out.State)
	return rep, nil
}
