// Copyright Amazon.com, Inc. or its affiliates. All Rights Reserved.
// SPDX-License-Identifier: Apache-2.0

package version

import (
	"fmt"
	"runtime"
)

// Version information set at build time with -ldflags
var (
	// Version is the current version of lgpd-scan
	Version = "0.0.0-development"

	// GitCommit is the git commit hash
	GitCommit = "unknown"

	// GoVersion is the version of Go used to build
	GoVersion = runtime.Version()

	// Platform is the OS/Arch combination
	Platform = fmt.Sprintf("%s/%s", runtime.GOOS, runtime.GOARCH)
)

// Info returns formatted version information
func Info() string {
	return fmt.Sprintf("lgpd-scan %s (commit: %s, go: %s, platform: %s)",
		Version, GitCommit, GoVersion, Platform)
}
