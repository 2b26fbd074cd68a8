// Package version reports the build of the running binary.
package version

// BuildInfo holds version information about the build.
type BuildInfo struct {
	Service string `json:"service"`
	Version string `json:"version"`
	Commit  string `json:"commit"`
	Date    string `json:"date"`
}

// Info returns the build information for service. The variables below are set at link time:
//
//	-ldflags "-X 'scotuspredict/internal/core/version.version=v0.1.0'
//	          -X 'scotuspredict/internal/core/version.commit=abcd'
//	          -X 'scotuspredict/internal/core/version.date=2026-10-01'"
func Info(service string) BuildInfo {
	return BuildInfo{
		Service: service,
		Version: version,
		Commit:  commit,
		Date:    date,
	}
}

// String is the short form shown in page footers
func (b BuildInfo) String() string {
	if b.Commit == "" || b.Commit == "none" {
		return b.Service + " " + b.Version
	}
	c := b.Commit
	if len(c) > 7 {
		c = c[:7]
	}
	return b.Service + " " + b.Version + " (" + c + ")"
}

var (
	version = "dev"
	commit  = "none"
	date    = "unknown"
)
