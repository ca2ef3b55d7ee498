package buildinfo

import (
	"runtime/debug"
)

const (
	keyRevision = "vcs.revision"
	keyTime     = "vcs.time"
	keyModified = "vcs.modified"
)

var (
	GitRef              = getBuildInfoKey(keyRevision, "(devel)")
	GitTime             = getBuildInfoKey(keyTime, "unknown")
	Modified            = getBuildInfoKey(keyModified, "false") == "true"
	InstrumentationName = "github.com/trackhaus/trackhaus"
	Version             = GitRef
	ShortRef            = shortRef(GitRef)
)

func shortRef(ref string) string {
	if len(ref) > 7 {
		return ref[:7]
	}
	return ref
}

func getBuildInfoKey(key string, def string) string {
	if info, ok := debug.ReadBuildInfo(); ok {
		for _, setting := range info.Settings {
			if setting.Key == key {
				return setting.Value
			}
		}
	}
	return def
}
