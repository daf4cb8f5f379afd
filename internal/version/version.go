// Package version reports the sakinah build.
package version

import "runtime/debug"

// Overridden with -ldflags "-X github.com/sakinahapp/sakinah/internal/version.Version=..." at release.
var (
	Version = "dev"
	Commit  = "none"
	Date    = "unknown"
)

// Full returns version, commit and build date.
func Full() string {
	return Version + " (" + Commit + ") " + Date
}

func Short() string {
	return Version
}

// UserAgent identifies sakinah to the content APIs.
func UserAgent() string {
	return "sakinah/" + Version
}

func init() {
	if info, ok := debug.ReadBuildInfo(); ok {
		fromBuildInfo(info)
	}
}

// fromBuildInfo fills whichever of Version, Commit and Date still hold
// their placeholder, so `go install` builds report something useful.
func fromBuildInfo(info *debug.BuildInfo) {
	if info == nil {
		return
	}
	if v := info.Main.Version; Version == "dev" && v != "" && v != "(devel)" {
		Version = v
	}

	settings := make(map[string]string, len(info.Settings))
	for _, s := range info.Settings {
		settings[s.Key] = s.Value
	}
	if rev := settings["vcs.revision"]; Commit == "none" && rev != "" {
		Commit = rev[:min(len(rev), 7)]
	}
	if ts := settings["vcs.time"]; Date == "unknown" && ts != "" {
		Date = ts
	}
}
