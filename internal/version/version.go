package version

import (
	"fmt"
	"runtime"
)

// Set via ldflags at build time:
//
//	go build -buildmode=c-shared -ldflags "-X github.com/soyeahso/xpshim/internal/version.Version=1.0.0
//	  -X github.com/soyeahso/xpshim/internal/version.Commit=abc123
//	  -X github.com/soyeahso/xpshim/internal/version.Date=2026-01-01"
var (
	Version = "dev"
	Commit  = "unknown"
	Date    = "unknown"
)

// Info returns a formatted version string.
func Info() string {
	return fmt.Sprintf("xpshim %s (commit: %s, built: %s, %s/%s, %s)",
		Version, short(Commit), Date, runtime.GOOS, runtime.GOARCH, runtime.Version())
}

func short(s string) string {
	if len(s) > 7 {
		return s[:7]
	}
	return s
}
