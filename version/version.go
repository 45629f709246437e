// Package version defines the schema-version value type shared across
// the migration framework.
package version

import "fmt"

// Version is a non-negative, totally-ordered schema tag. It is an
// immutable value type — there are no setters, only constructors and
// comparisons.
type Version int

// New validates and constructs a Version. Negative versions are a
// programmer fault (see spec.md §7) and are reported as a Go error,
// never as a result.Result.
func New(v int) (Version, error) {
	if v < 0 {
		return 0, fmt.Errorf("version: negative version %d", v)
	}
	return Version(v), nil
}

// Before reports whether v comes strictly before other.
func (v Version) Before(other Version) bool { return v < other }

// After reports whether v comes strictly after other.
func (v Version) After(other Version) bool { return v > other }

// String renders the version for logs and diagnostics.
func (v Version) String() string { return fmt.Sprintf("v%d", int(v)) }
