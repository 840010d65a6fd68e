// Package netio talks to the JSON API of Netio power distribution
// units. A device exposes one endpoint, /netio.json: GET returns the
// full status snapshot, POST with an Outputs payload switches
// sockets and returns the post-change state.
package netio

import "strconv"

// Agent describes the device itself.
type Agent struct {
	Model        string `json:"Model"`
	Version      string `json:"Version"`
	DeviceName   string `json:"DeviceName"`
	MAC          string `json:"MAC"`
	SerialNumber string `json:"SerialNumber"`
	Uptime       int64  `json:"Uptime"`
}

// Output is one controllable power socket.
type Output struct {
	ID          int     `json:"ID"`
	Name        string  `json:"Name"`
	State       int     `json:"State"`
	Action      int     `json:"Action"`
	Current     int64   `json:"Current"` // milliamps
	Load        float64 `json:"Load"`    // watts
	PowerFactor float64 `json:"PowerFactor"`
}

// Snapshot is one decoded status response. Raw holds the undecoded
// body for verbose debug dumps.
type Snapshot struct {
	Agent   Agent    `json:"Agent"`
	Outputs []Output `json:"Outputs"`

	Raw []byte `json:"-"`
}

// FindOutput returns the single output whose ID matches id. IDs are
// compared as strings so the flag value passes through untouched.
// The second return is false when the id matches no output or more
// than one.
func (s *Snapshot) FindOutput(id string) (Output, bool) {
	var found []Output
	for _, o := range s.Outputs {
		if strconv.Itoa(o.ID) == id {
			found = append(found, o)
		}
	}
	if len(found) != 1 {
		return Output{}, false
	}
	return found[0], true
}

// Action codes accepted by the device.
const (
	ActionOff     = 0
	ActionOn      = 1
	ActionRestart = 2
	ActionPing    = 3
	ActionToggle  = 4
	ActionNone    = 6
)

// ActionCode maps an action name to the device's numeric code.
// Unrecognized names map to ActionNone, which the device ignores.
func ActionCode(name string) int {
	switch name {
	case "off":
		return ActionOff
	case "on":
		return ActionOn
	case "restart":
		return ActionRestart
	case "ping":
		return ActionPing
	case "toggle":
		return ActionToggle
	default:
		return ActionNone
	}
}
