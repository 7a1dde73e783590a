package main

import (
	"bytes"
	"strings"
	"testing"
)

func TestReport(t *testing.T) {
	var buf bytes.Buffer
	report(&buf)
	out := buf.String()
	for _, want := range []string{"GOARCH:", "Fixed1..Fixed12", "=== float32 ===", "=== float64 ===", "Sentinel:"} {
		if !strings.Contains(out, want) {
			t.Errorf("report missing %q:\n%s", want, out)
		}
	}
}
