// Package version holds the build version, overridden via ldflags on
// release builds.
package version

// Version is the current release identifier.
var Version = "0.1.0"
