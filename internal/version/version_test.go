package version

import (
	"runtime/debug"
	"strings"
	"testing"
)

func TestFull(t *testing.T) {
	result := Full()
	if result == "" {
		t.Fatal("Full() returned empty string")
	}
	if !strings.Contains(result, Version) {
		t.Errorf("Full() %q does not contain version %q", result, Version)
	}
}

func TestShort(t *testing.T) {
	result := Short()
	if result != Version {
		t.Errorf("Short() = %q, want %q", result, Version)
	}
}

func TestUserAgent(t *testing.T) {
	if got := UserAgent(); got != "sakinah/"+Version {
		t.Errorf("UserAgent() = %q", got)
	}
}

func TestFromBuildInfo(t *testing.T) {
	oldV, oldC, oldD := Version, Commit, Date
	t.Cleanup(func() { Version, Commit, Date = oldV, oldC, oldD })

	Version, Commit, Date = "dev", "none", "unknown"
	fromBuildInfo(&debug.BuildInfo{
		Main: debug.Module{Version: "v0.3.0"},
		Settings: []debug.BuildSetting{
			{Key: "vcs.revision", Value: "0123456789abcdef"},
			{Key: "vcs.time", Value: "2026-10-01T08:00:00Z"},
		},
	})
	if Version != "v0.3.0" || Commit != "0123456" || Date != "2026-10-01T08:00:00Z" {
		t.Errorf("got %s %s %s", Version, Commit, Date)
	}

	// ldflags values win.
	Version, Commit = "v1.0.0", "abc"
	fromBuildInfo(&debug.BuildInfo{Main: debug.Module{Version: "(devel)"}, Settings: []debug.BuildSetting{{Key: "vcs.revision", Value: "ffff"}}})
	if Version != "v1.0.0" || Commit != "abc" {
		t.Errorf("ldflags values overwritten: %s %s", Version, Commit)
	}

	fromBuildInfo(nil)
}
