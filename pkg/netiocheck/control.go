package netiocheck

import (
	"github.com/netio-tools/check-netio/pkg/netio"
	"github.com/netio-tools/check-netio/pkg/plugin"
)

// SetOutputCheck switches one output and reports the state before
// and after. This is the only operation with a side effect on the
// device: on and off are idempotent, restart, ping and toggle are
// not.
type SetOutputCheck struct {
	Client   *netio.Client
	OutputID string
	Action   string // off, on, restart, ping or toggle
}

// Run executes the control operation.
func (c *SetOutputCheck) Run() (*plugin.Report, error) {
	rep := plugin.NewReport()
	snap, err := c.Client.Status()
	if err != nil {
		return nil, err
	}
	rep.AddDebug(string(snap.Raw))

	out, ok := resolveOutput(rep, snap, c.OutputID)
	if !ok {
		return rep, nil
	}
	rep.SetPerfData("old_state", out.State)

	code := netio.ActionCode(c.Action)
	after, err := c.Client.Command(netio.CommandRequest{
		Outputs: []netio.OutputCommand{{ID: out.ID, Action: code}},
	})
	if err != nil {
		return nil, err
	}
	rep.AddDebug(string(after.Raw))

	out, ok = resolveOutput(rep, after, c.OutputID)
	if !ok {
		return rep, nil
	}
	rep.SetPerfData("new_state", out.State)
	rep.Appendf("Output %s(%s) action %s(%d) applied, state is %d",
		c.OutputID, out.Name, c.Action, code, out.State)
	return rep, nil
}
