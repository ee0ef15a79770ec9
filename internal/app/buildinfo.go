package app

// Build information populated via -ldflags at build time.
var (
    BuildVersion = "0.0.0-dev"
    BuildCommit  = "unknown"
    BuildDate    = "unknown"
)

// BuildInfo is the JSON shape reported by the health endpoint.
type BuildInfo struct {
    Version string `json:"version"`
    Commit  string `json:"commit"`
    Date    string `json:"date"`
}

// CurrentBuild returns the values linked into this binary.
func CurrentBuild() BuildInfo {
    return BuildInfo{Version: BuildVersion, Commit: BuildCommit, Date: BuildDate}
}
