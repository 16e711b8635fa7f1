// Package version holds the build version, injected at link time:
//
//	go build -ldflags "-X github.com/san-kum/sparkline/internal/version.Version=v1.2.0"
package version

// Version is overwritten by the linker for release builds.
var Version = "dev"
