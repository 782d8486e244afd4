package main

import (
	"fmt"

	goversion "github.com/hashicorp/go-version"
)

// The main version number that is being run at the moment.
var version = "0.1.0"

// A pre-release marker for the version. If this is "" (empty string)
// then it means that it is a final release. Otherwise, this is a pre-release
// such as "dev" (in development), "beta", "rc1", etc.
var prerelease = "dev"

func init() {
	// version and prerelease may be overridden via -ldflags
	// and have to form a valid semantic version
	fullVersion()
}

// fullVersion parses the version including prerelease
func fullVersion() *goversion.Version {
	return goversion.Must(goversion.NewVersion(VersionString()))
}

// VersionString returns the complete version string, including prerelease
func VersionString() string {
	if prerelease != "" {
		return fmt.Sprintf("%s-%s", version, prerelease)
	}
	return version
}
