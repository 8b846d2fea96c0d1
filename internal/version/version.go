// Package version holds build metadata injected via ldflags.
package version

import (
	"fmt"
	"runtime"
)

//nolint:revive // Set via ldflags at build time.
var (
	Version = "dev"
	Commit  = "unknown"
	Date    = "unknown"
)

// Info is build metadata plus the Go runtime that built the binary.
type Info struct {
	Version   string `json:"version"`
	Commit    string `json:"commit"`
	Date      string `json:"date"`
	GoVersion string `json:"go_version"`
}

// Get returns the current build info.
func Get() Info {
	return Info{Version: Version, Commit: Commit, Date: Date, GoVersion: runtime.Version()}
}

// String formats build info on one line, e.g. "v1.2.0 (abc1234, 2026-01-02, go1.25.1)".
func String() string {
	i := Get()
	return fmt.Sprintf("%s (%s, %s, %s)", i.Version, i.Commit, i.Date, i.GoVersion)
}
