package plugin

import (
	"bytes"
	"testing"
)

func TestLinePrefixes(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(r *Report)
		want   string
	}{
		{
			name:   "ok has no prefix",
			mutate: func(r *Report) { r.Append("all good") },
			want:   "all good",
		},
		{
			name: "warning prefix",
			mutate: func(r *Report) {
				r.Append("getting close")
				r.Warn()
			},
			want: "WARNING - getting close",
		},
		{
			name: "critical prefix",
			mutate: func(r *Report) {
				r.Append("over the limit")
				r.Error()
			},
			want: "ERROR - over the limit",
		},
		{
			name: "unknown has no prefix",
			mutate: func(r *Report) {
				r.Append("no such output")
				r.Unknown()
			},
			want: "no such output",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := NewReport()
			tt.mutate(r)
			if got := r.Line(); got != tt.want {
				t.Errorf("Line() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestFragmentsConcatenateWithoutSeparator(t *testing.T) {
	r := NewReport()
	r.Append("Output 1(lamp) load 0.05A, 11W")
	r.Append(", that is greater than 10W")

	want := "Output 1(lamp) load 0.05A, 11W, that is greater than 10W"
	if got := r.Line(); got != want {
		t.Errorf("Line() = %q, want %q", got, want)
	}
}

func TestPerfDataRendering(t *testing.T) {
	r := NewReport()
	r.Append("Device rack-pdu - uptime is 50s")
	r.SetPerfData("uptime", "50s")
	r.SetPerfData("state", 1)

	want := "Device rack-pdu - uptime is 50s|uptime=50s state=1 "
	if got := r.Line(); got != want {
		t.Errorf("Line() = %q, want %q", got, want)
	}
}

func TestPerfDataLastWriteWinsKeepsOrder(t *testing.T) {
	r := NewReport()
	r.SetPerfData("uptime", "5s")
	r.SetPerfData("state", 0)
	r.SetPerfData("uptime", "6s")
	r.Append("x")

	want := "x|uptime=6s state=0 "
	if got := r.Line(); got != want {
		t.Errorf("Line() = %q, want %q", got, want)
	}
}

func TestUnknownSuppressesPerfData(t *testing.T) {
	r := NewReport()
	r.Append("ERROR - Unable to find output ID '9'")
	r.SetPerfData("uptime", "5s")
	r.Unknown()

	want := "ERROR - Unable to find output ID '9'"
	if got := r.Line(); got != want {
		t.Errorf("Line() = %q, want %q", got, want)
	}
}

func TestFlushWritesDebugOnlyWhenVerbose(t *testing.T) {
	r := NewReport()
	r.Append("ok")
	r.AddDebug("raw status dump")
	r.AddDebug("second line")

	var out, errOut bytes.Buffer
	code := r.Flush(&out, &errOut, false)
	if code != 0 {
		t.Errorf("Flush() = %d, want 0", code)
	}
	if got := out.String(); got != "ok\n" {
		t.Errorf("stdout = %q, want %q", got, "ok\n")
	}
	if errOut.Len() != 0 {
		t.Errorf("stderr = %q, want empty", errOut.String())
	}

	out.Reset()
	r.Flush(&out, &errOut, true)
	if got := errOut.String(); got != "raw status dump\nsecond line\n" {
		t.Errorf("stderr = %q, want debug lines", got)
	}
}

func TestFlushExitCodes(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(r *Report)
		want   int
	}{
		{"ok", func(_ *Report) {}, 0},
		{"warning", func(r *Report) { r.Warn() }, 1},
		{"critical", func(r *Report) { r.Error() }, 2},
		{"unknown", func(r *Report) { r.Unknown() }, 3},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := NewReport()
			tt.mutate(r)
			var out, errOut bytes.Buffer
			if got := r.Flush(&out, &errOut, false); got != tt.want {
				t.Errorf("Flush() = %d, want %d", got, tt.want)
			}
		})
	}
}
