package fixer

import (
	"fmt"

	log "github.com/golang/glog"

	"github.com/shyptr/datafixer/diagnostics"
	"github.com/shyptr/datafixer/types"
	"github.com/shyptr/datafixer/version"
)

// Context is the per-migration-call object DataFixer.Update threads
// through every fix and rule application: structured info/warn
// logging via glog (grounded on golang-open2opaque/internal/fix's
// `log "github.com/golang/glog"` usage throughout fix.go) plus an
// optional diagnostics attachment. A Context is never shared across
// concurrent migrations (spec.md §5).
type Context struct {
	recorder *diagnostics.Recorder
	report   *diagnostics.MigrationReport
}

// NewContext builds a plain Context with diagnostics disabled.
func NewContext() *Context {
	return &Context{}
}

// NewDiagnosticContext builds a Context that records a MigrationReport
// for typeID's migration from from to to.
func NewDiagnosticContext(opts diagnostics.Options, typeID types.TypeID, from, to version.Version) *Context {
	return &Context{recorder: diagnostics.NewRecorder(opts, typeID, from, to)}
}

// Info logs a structured informational message.
func (c *Context) Info(format string, args ...interface{}) {
	log.Infof(format, args...)
}

// Warn logs a structured warning and, when diagnostics are enabled,
// captures it into the eventual MigrationReport.
func (c *Context) Warn(format string, args ...interface{}) {
	log.Warningf(format, args...)
	if c.DiagnosticsEnabled() {
		c.recorder.RecordWarning(fmt.Sprintf(format, args...))
	}
}

// DiagnosticsEnabled reports whether this Context records a
// MigrationReport. Safe to call on a nil Context.
func (c *Context) DiagnosticsEnabled() bool {
	return c != nil && c.recorder != nil
}

// Recorder returns the diagnostics recorder, or nil when diagnostics
// are disabled.
func (c *Context) Recorder() *diagnostics.Recorder {
	if c == nil {
		return nil
	}
	return c.recorder
}

// Report returns the MigrationReport once DataFixer.Update has
// finished, or nil if diagnostics were never enabled or the migration
// hasn't completed yet.
func (c *Context) Report() *diagnostics.MigrationReport {
	if c == nil {
		return nil
	}
	return c.report
}
