// Package plugin implements the monitoring-plugin output contract:
// one status line on stdout, optional performance data after a "|"
// separator, debug lines on stderr in verbose mode, and a process
// exit code equal to the verdict (0 OK, 1 WARNING, 2 CRITICAL,
// 3 UNKNOWN).
package plugin

import (
	"fmt"
	"io"
	"strings"
)

// Report accumulates the outcome of a single check run: the verdict,
// the message fragments making up the status line, performance data
// and debug output. One Report is built per invocation and flushed
// exactly once.
type Report struct {
	status   Status
	parts    []string
	perfKeys []string
	perfData map[string]string
	debug    []string
}

// NewReport returns an empty Report with status OK.
func NewReport() *Report {
	return &Report{perfData: make(map[string]string)}
}

// Append adds a message fragment. Fragments are concatenated without
// any separator at render time, so each fragment carries its own
// spacing and punctuation.
func (r *Report) Append(s string) {
	r.parts = append(r.parts, s)
}

// Appendf adds a formatted message fragment.
func (r *Report) Appendf(format string, args ...any) {
	r.Append(fmt.Sprintf(format, args...))
}

// SetPerfData inserts or overwrites a performance-data entry. The
// last write for a name wins; output order follows first insertion.
func (r *Report) SetPerfData(name string, value any) {
	if _, ok := r.perfData[name]; !ok {
		r.perfKeys = append(r.perfKeys, name)
	}
	r.perfData[name] = fmt.Sprintf("%v", value)
}

// PerfData returns the rendered value for a performance-data entry.
func (r *Report) PerfData(name string) (string, bool) {
	v, ok := r.perfData[name]
	return v, ok
}

// AddDebug records a debug entry, printed to stderr in verbose mode.
func (r *Report) AddDebug(v any) {
	r.debug = append(r.debug, fmt.Sprintf("%v", v))
}

// Error escalates the verdict to CRITICAL unless it is already
// UNKNOWN.
func (r *Report) Error() {
	r.status = merge(r.status, StatusCritical)
}

// Warn escalates the verdict to WARNING if it is currently OK.
func (r *Report) Warn() {
	r.status = merge(r.status, StatusWarning)
}

// Unknown sets the verdict to UNKNOWN. UNKNOWN is sticky: later
// Error calls do not downgrade it.
func (r *Report) Unknown() {
	r.status = merge(r.status, StatusUnknown)
}

// Status returns the current verdict.
func (r *Report) Status() Status {
	return r.status
}

// Line renders the status line without a trailing newline. CRITICAL
// reports are prefixed with "ERROR - " and WARNING reports with
// "WARNING - ". Performance data is omitted for UNKNOWN reports so
// a failed lookup does not feed bogus samples into graphs.
func (r *Report) Line() string {
	var b strings.Builder
	switch r.status {
	case StatusCritical:
		b.WriteString("ERROR - ")
	case StatusWarning:
		b.WriteString("WARNING - ")
	}
	for _, p := range r.parts {
		b.WriteString(p)
	}
	if r.status != StatusUnknown && len(r.perfKeys) > 0 {
		b.WriteString("|")
		for _, k := range r.perfKeys {
			b.WriteString(k)
			b.WriteString("=")
			b.WriteString(r.perfData[k])
			b.WriteString(" ")
		}
	}
	return b.String()
}

// Flush writes the status line to out and, in verbose mode, each
// debug entry on its own line to errOut. It returns the exit code
// for the verdict; terminating the process is the caller's job.
func (r *Report) Flush(out, errOut io.Writer, verbose bool) int {
	fmt.Fprintln(out, r.Line())
	if verbose {
		for _, ln := range r.debug {
			fmt.Fprintln(errOut, ln)
		}
	}
	return r.status.ExitCode()
}
