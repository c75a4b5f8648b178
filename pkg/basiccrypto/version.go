package basiccrypto

var (
	Version   = "v0.0.0-in-progress"
	GitCommit = "unknown"
)

// ToolkitVersion returns the semantic version populated at build time via
// ldflags. In development it defaults to v0.0.0-in-progress.
func ToolkitVersion() string {
	return Version
}

// BuildInfo returns the version together with the commit it was built from.
func BuildInfo() string {
	return Version + " (" + GitCommit + ")"
}
