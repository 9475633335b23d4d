package models

// devVersion is reported by binaries built without -ldflags.
const devVersion = "dev"

// AppBuildInfo is the build metadata injected with -ldflags. It is logged
// on startup and the version is reported by GET /health.
type AppBuildInfo struct {
	Version string
	Date    string
	Commit  string
}

func NewAppBuildInfo(version, date, commit string) AppBuildInfo {
	return AppBuildInfo{Version: version, Date: date, Commit: commit}
}

// BuildVersion returns the release version, or "dev" for unversioned builds.
func (a AppBuildInfo) BuildVersion() string {
	switch a.Version {
	case "", "N/A":
		return devVersion
	default:
		return a.Version
	}
}
