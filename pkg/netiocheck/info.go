package netiocheck

import (
	"fmt"
	"strings"

	"github.com/Masterminds/semver/v3"

	"github.com/netio-tools/check-netio/pkg/netio"
	"github.com/netio-tools/check-netio/pkg/plugin"
)

// InfoCheck reports device identity and optionally verifies the MAC
// address and a minimum firmware version.
type InfoCheck struct {
	Client      *netio.Client
	ExpectMAC   string // expected MAC address, compared case-insensitively
	MinFirmware string // minimum firmware version, semver
}

// Run executes the info check.
func (c *InfoCheck) Run() (*plugin.Report, error) {
	rep := plugin.NewReport()
	snap, err := c.Client.Status()
	if err != nil {
		return nil, err
	}
	rep.AddDebug(string(snap.Raw))

	agent := snap.Agent
	if c.ExpectMAC != "" && !strings.EqualFold(c.ExpectMAC, agent.MAC) {
		rep.Appendf("Device %s, with %s, expected %s", agent.DeviceName, agent.MAC, c.ExpectMAC)
		rep.Error()
		return rep, nil
	}
	if c.MinFirmware != "" {
		want, err := semver.NewVersion(c.MinFirmware)
		if err != nil {
			return nil, fmt.Errorf("invalid minimum firmware version %q: %w", c.MinFirmware, err)
		}
		have, err := semver.NewVersion(agent.Version)
		if err != nil {
			rep.Appendf("Device %s reports unparsable firmware version '%s'", agent.DeviceName, agent.Version)
			rep.Unknown()
			return rep, nil
		}
		if have.LessThan(want) {
			rep.Appendf("Device %s firmware %s is older than expected %s", agent.DeviceName, agent.Version, c.MinFirmware)
			rep.Error()
			return rep, nil
		}
	}
	rep.Appendf("Device %s, (model: %s, S/N: %s, MAC %s)",
		agent.DeviceName, agent.Model, agent.SerialNumber, agent.MAC)
	return rep, nil
}
