package platform

import (
	"github.com/runtimedeps/cli/internal/catalog"
)

// Compatible reports whether a component applies to the target. Both
// dimensions must hold: the platform tag matches the target platform and
// the architecture tag matches the target architecture, where the wildcard
// catalog.Neutral matches any value.
//
// Pure function; a component with missing tags fails the dimension and is
// excluded rather than producing an error.
func Compatible(c catalog.Component, t Target) bool {
	return dimensionMatches(c.Platforms, t.Platform) &&
		dimensionMatches(c.Architectures, t.Architecture)
}

// dimensionMatches compares only the first tag of the sequence. Catalogs
// declare single-valued tags today; entries past index 0 are carried in
// the model but do not participate in matching.
func dimensionMatches(tags []string, value string) bool {
	if len(tags) == 0 {
		return false
	}
	return tags[0] == catalog.Neutral || tags[0] == value
}
