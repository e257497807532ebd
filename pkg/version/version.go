// Package version reports the build of amplify-outputs.
package version

import (
	"fmt"
	"runtime/debug"
	"strings"
	"time"
)

const devVersion = "0.0.0-dev"

// Set through -ldflags "-X"; otherwise filled from the module build info.
var (
	Version   = devVersion
	Commit    = ""
	BuildTime = ""
)

var readBuildInfo = debug.ReadBuildInfo

func init() {
	populateFromBuildInfo()
}

func populateFromBuildInfo() {
	if Version != "" && Version != devVersion {
		return
	}
	if bi, ok := readBuildInfo(); ok && bi != nil {
		applyBuildSettings(bi.Settings)
	}
}

func applyBuildSettings(settings []debug.BuildSetting) {
	vcs := make(map[string]string, len(settings))
	for _, s := range settings {
		vcs[s.Key] = s.Value
	}

	if Commit == "" {
		Commit = shortRevision(vcs["vcs.revision"])
	}
	if BuildTime == "" {
		BuildTime = utcTimestamp(vcs["vcs.time"])
	}
	if tag := vcs["vcs.tag"]; tag != "" {
		Version = strings.TrimPrefix(tag, "v")
		if strings.EqualFold(vcs["vcs.modified"], "true") {
			Version += "-dirty"
		}
	}
}

func shortRevision(rev string) string {
	if len(rev) < 7 {
		return ""
	}
	return rev[:7]
}

func utcTimestamp(value string) string {
	ts, err := time.Parse(time.RFC3339, value)
	if err != nil {
		return ""
	}
	return ts.UTC().Format("2006-01-02T15:04:05Z")
}

// FormatVersion renders the version with whatever build metadata is known,
// e.g. "1.2.3 (commit: abc1234, built at: 2025-10-23T10:20:30Z)".
func FormatVersion() string {
	ver := Version
	if ver == "" {
		ver = devVersion
	}

	switch {
	case BuildTime != "":
		commit := Commit
		if commit == "" {
			commit = "development"
		}
		return fmt.Sprintf("%s (commit: %s, built at: %s)", ver, commit, BuildTime)
	case Commit != "":
		return fmt.Sprintf("%s (commit: %s)", ver, Commit)
	default:
		return ver + " (development)"
	}
}
