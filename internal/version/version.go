// Package version describes the running build of the API.
package version

import (
	"fmt"
	"runtime"
	"runtime/debug"
)

// Fixed API metadata. These are constants so a build cannot change the
// payload of the index endpoint.
const (
	AppName     = "HandTracking 3D Pro API"
	Description = "Backend API for hand tracking app (health check only)"
)

// Build metadata, set with
// -ldflags "-X github.com/handtracking3d/handtracking-api/internal/version.Revision=..."
var (
	Version   = "1.0.0"
	Revision  = ""
	BuildDate = ""
)

// Info is a snapshot of the build metadata.
type Info struct {
	Version   string
	Revision  string
	Modified  bool
	BuildDate string
	GoVersion string
	Platform  string
}

// Get returns the build metadata, falling back to the vcs stamp of the
// binary for anything ldflags left empty.
func Get() Info {
	info := Info{
		Version:   Version,
		Revision:  Revision,
		BuildDate: BuildDate,
		GoVersion: runtime.Version(),
		Platform:  runtime.GOOS + "/" + runtime.GOARCH,
	}
	if bi, ok := debug.ReadBuildInfo(); ok {
		info.fillFromVCS(bi.Settings)
	}
	return info
}

func (i *Info) fillFromVCS(settings []debug.BuildSetting) {
	for _, s := range settings {
		switch s.Key {
		case "vcs.revision":
			if i.Revision == "" {
				i.Revision = s.Value
			}
		case "vcs.time":
			if i.BuildDate == "" {
				i.BuildDate = s.Value
			}
		case "vcs.modified":
			i.Modified = s.Value == "true"
		}
	}
}

// ShortRevision is the first 7 characters of the revision, "unknown" when
// the binary carries none.
func (i Info) ShortRevision() string {
	rev := i.Revision
	if rev == "" {
		return "unknown"
	}
	if len(rev) > 7 {
		rev = rev[:7]
	}
	if i.Modified {
		rev += "-dirty"
	}
	return rev
}

// String renders `1.0.0 (5e23a4b; go1.23.6; linux/amd64)`, with the build
// date appended when known.
func (i Info) String() string {
	s := fmt.Sprintf("%s (%s; %s; %s", i.Version, i.ShortRevision(), i.GoVersion, i.Platform)
	if i.BuildDate != "" {
		s += "; " + i.BuildDate
	}
	return s + ")"
}
