package cmd

import (
	"bytes"
	"fmt"
	"strings"
	"testing"

	"github.com/sakinahapp/sakinah/internal/version"
)

func TestVersionCommand(t *testing.T) {
	tests := []struct {
		name    string
		short   bool
		wantOut string
	}{
		{"default version output", false, fmt.Sprintf("sakinah %s", version.Full())},
		{"short flag version output", true, version.Short()},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			versionShort = tt.short
			t.Cleanup(func() { versionShort = false })

			var buf bytes.Buffer
			versionCmd.SetOut(&buf)
			t.Cleanup(func() { versionCmd.SetOut(nil) })

			if err := runVersion(versionCmd, nil); err != nil {
				t.Fatalf("runVersion: %v", err)
			}
			if got := strings.TrimSpace(buf.String()); got != tt.wantOut {
				t.Errorf("got %q, want %q", got, tt.wantOut)
			}
		})
	}
}
