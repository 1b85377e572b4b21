package gridconv

import (
	"fmt"
	"io"
	"runtime/debug"
	"strconv"
)

// Set at build time via `-ldflags "-X 'github.com/doismellburning/gridconv/src.GRIDCONV_VERSION=X'"`
var GRIDCONV_VERSION string

func getBuildSettingOrDefault(bi *debug.BuildInfo, key string, defaultValue string) string {
	if bi == nil {
		return defaultValue
	}

	for _, bs := range bi.Settings {
		if bs.Key == key {
			return bs.Value
		}
	}

	return defaultValue
}

// versionString gives the one line shown by --version.
func versionString(bi *debug.BuildInfo) string {
	var buildTimeStr = getBuildSettingOrDefault(bi, "vcs.time", "UNKNOWN")

	var (
		buildCommit               = getBuildSettingOrDefault(bi, "vcs.revision", "UNKNOWN")
		buildDirtyStr             = getBuildSettingOrDefault(bi, "vcs.modified", "INVALID")
		buildDirty, buildDirtyErr = strconv.ParseBool(buildDirtyStr)
	)

	if buildDirty {
		buildCommit += "-DIRTY"
	} else if buildDirtyErr != nil {
		buildCommit += "-UNKNOWNDIRTY"
	}

	var version = GRIDCONV_VERSION
	if version == "" {
		version = "!UNKNOWN!"
	}

	return fmt.Sprintf("gridconv - Version %s (revision %s, built at %s)", version, buildCommit, buildTimeStr)
}

func printVersion(w io.Writer, verbose bool) {
	var buildInfo, _ = debug.ReadBuildInfo()

	fmt.Fprintln(w, versionString(buildInfo))

	if verbose {
		fmt.Fprintf(w, "\nBuildInfo: %+v\n", buildInfo)
	}
}
