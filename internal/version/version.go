// Package version reports the version of the itksn binary.
package version

import (
	"fmt"
	"io"
	"runtime"
	"runtime/debug"
	"sync"
	"time"

	"golang.org/x/mod/module"
)

const defaultVersion = "(devel)"

// version may be set by a builder using
// -ldflags='-X github.com/reoring/itksn/internal/version.version=<version>'.
// Building through the module system fills in the build info instead.
var version = defaultVersion

// Version returns the ldflags version, else the main module version, else
// a pseudo-version from the VCS stamp, else "(devel)".
func Version() string { return versionOnce() }

var versionOnce = sync.OnceValue(func() string {
	bi, ok := debug.ReadBuildInfo()
	if !ok {
		return version
	}
	return resolve(version, bi)
})

func resolve(ldflags string, bi *debug.BuildInfo) string {
	if ldflags != defaultVersion && ldflags != "" {
		return ldflags
	}
	switch bi.Main.Version {
	case "", defaultVersion:
	case "v0.0.0-00010101000000-000000000000": // directory replace directive
	default:
		return bi.Main.Version
	}
	var (
		vcsTime     time.Time
		vcsRevision string
	)
	for _, s := range bi.Settings {
		switch s.Key {
		case "vcs.time":
			vcsTime, _ = time.Parse(time.RFC3339Nano, s.Value)
		case "vcs.revision":
			vcsRevision = s.Value
			// cmd/go uses a 12 character revision prefix
			if len(vcsRevision) > 12 {
				vcsRevision = vcsRevision[:12]
			}
		}
	}
	if vcsRevision != "" {
		return module.PseudoVersion("", "", vcsTime, vcsRevision)
	}
	return defaultVersion
}

// Print writes the version followed by the go version and the non-empty
// build settings.
func Print(w io.Writer) {
	fmt.Fprintf(w, "itksn version %s\n", Version())
	bi, ok := debug.ReadBuildInfo()
	if !ok {
		return
	}
	fmt.Fprintf(w, "\ngo version %s\n", runtime.Version())
	for _, s := range bi.Settings {
		if s.Value == "" {
			continue
		}
		fmt.Fprintf(w, "%16s %s\n", s.Key, s.Value)
	}
}
