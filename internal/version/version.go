package version

import "github.com/fatih/color"

// Build metadata for the spvlift binary. Release builds override these
// through -ldflags; a source build reports the -dev version with the git
// fields left blank.

const (
	major = "0"
	minor = "1"
	patch = "0"
)

var semverColor = color.New(color.FgCyan, color.Bold)

var (
	// Version is the semantic version string shown by the version command.
	Version = semverColor.Sprint(major) + "." + semverColor.Sprint(minor) + "." + semverColor.Sprint(patch) + "-dev"

	// GitCommit is the hash of the commit the binary was built from.
	GitCommit = ""

	// GitMessage is the subject line of that commit.
	GitMessage = ""

	// BuildDate is the build timestamp in ISO-8601.
	BuildDate = ""
)
