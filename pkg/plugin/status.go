package plugin

// Status is the verdict of a check, ordered by the standard
// monitoring-plugin exit codes.
type Status int

const (
	StatusOK       Status = 0
	StatusWarning  Status = 1
	StatusCritical Status = 2
	StatusUnknown  Status = 3
)

// String returns the conventional name for the status.
func (s Status) String() string {
	switch s {
	case StatusOK:
		return "OK"
	case StatusWarning:
		return "WARNING"
	case StatusCritical:
		return "CRITICAL"
	case StatusUnknown:
		return "UNKNOWN"
	default:
		return "UNKNOWN"
	}
}

// ExitCode returns the process exit code for the status.
func (s Status) ExitCode() int {
	return int(s)
}

// merge resolves a status transition. This is not a plain max over
// the ordinals: Unknown is absorbing and never downgrades, Critical
// applies only over OK and Warning, Warning applies only over OK.
func merge(current, next Status) Status {
	switch {
	case current == StatusUnknown || next == StatusUnknown:
		return StatusUnknown
	case next == StatusCritical:
		return StatusCritical
	case next == StatusWarning && current == StatusOK:
		return StatusWarning
	default:
		return current
	}
}
