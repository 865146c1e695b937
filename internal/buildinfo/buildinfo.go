// Package buildinfo carries the version identity stamped into the binary at
// link time. The build target overrides these variables via -ldflags; a
// binary built without them reports the development defaults.
package buildinfo

// Version and Commit are set at link time.
var (
	Version = "dev"
	Commit  = "none"
)

// String renders the stamped identity for the -version flag.
func String() string {
	return "drover " + Version + " (" + Commit + ")"
}
