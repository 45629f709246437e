// Package diagnostics implements the optional migration report
// (component I, spec.md §4.9): per-fix, per-rule execution records a
// caller can ask for when migrating with a diagnostic Context.
//
// Grounded on golang-open2opaque/internal/fix/stats.go, which
// accumulates a *spb.Entry per rewritten proto access as the fix
// passes run; MigrationReport/FixExecution/RuleApplication here are
// that same idea reshaped around fixes and rules instead of AST
// rewrites.
package diagnostics

import (
	"fmt"
	"sync"
	"time"

	"github.com/go-playground/validator/v10"

	"github.com/shyptr/datafixer/types"
	"github.com/shyptr/datafixer/version"
)

// Options configures what a migration call's diagnostics capture.
type Options struct {
	CaptureSnapshots     bool
	CaptureRuleDetails   bool
	MaxSnapshotLength    int `validate:"gte=0"` // 0 = unlimited
	PrettyPrintSnapshots bool
}

var (
	optsValidate     *validator.Validate
	optsValidateOnce sync.Once
)

func validateOptions() *validator.Validate {
	optsValidateOnce.Do(func() { optsValidate = validator.New() })
	return optsValidate
}

// RuleApplication records one TypeRewriteRule application that
// actually matched. Identity applications are not recorded.
type RuleApplication struct {
	RuleName string
	Before   string // empty unless Options.CaptureSnapshots
	After    string // empty unless Options.CaptureSnapshots
}

// FixExecution records one DataFix application within a migration
// call.
type FixExecution struct {
	Name             string
	From, To         version.Version
	Duration         time.Duration
	RuleApplications []RuleApplication
	Before, After    string // empty unless Options.CaptureSnapshots
}

// MigrationReport is the full record of one DataFixer.Update call.
type MigrationReport struct {
	TypeID        types.TypeID
	From, To      version.Version
	Start, End    time.Time
	FixExecutions []FixExecution
	TouchedTypes  []types.TypeID
	Warnings      []string
	Before, After string // overall snapshots, empty unless captured
}

type fixInProgress struct {
	name          string
	from, to      version.Version
	start, end    time.Time
	rules         []RuleApplication
	before, after string
}

// Recorder accumulates one migration call's diagnostics. It is
// per-call state, never shared across concurrent migrations (spec.md
// §5: "A Context ... is per-call, not shared").
type Recorder struct {
	opts         Options
	typeID       types.TypeID
	from, to     version.Version
	start        time.Time
	fixes        []fixInProgress
	touchedTypes map[types.TypeID]bool
	touchedOrder []types.TypeID
	warnings     []string
}

// NewRecorder starts recording a migration of typeID from from to to.
// A negative MaxSnapshotLength is a programmer fault, not a recoverable
// Result error (spec.md §7), so it panics rather than returning one.
func NewRecorder(opts Options, typeID types.TypeID, from, to version.Version) *Recorder {
	if err := validateOptions().Struct(opts); err != nil {
		panic(fmt.Errorf("diagnostics: invalid options: %w", err))
	}
	return &Recorder{
		opts:         opts,
		typeID:       typeID,
		from:         from,
		to:           to,
		start:        time.Now(),
		touchedTypes: make(map[types.TypeID]bool),
	}
}

// Options returns the capture configuration this recorder was built
// with.
func (r *Recorder) Options() Options { return r.opts }

// RecordWarning appends a warning surfaced via Context.Warn.
func (r *Recorder) RecordWarning(msg string) {
	r.warnings = append(r.warnings, msg)
}

// BeginFix starts timing a fix application and returns its index, to
// be passed back to RecordRuleApplication/FinishFix.
func (r *Recorder) BeginFix(name string, from, to version.Version) int {
	r.fixes = append(r.fixes, fixInProgress{name: name, from: from, to: to, start: time.Now()})
	return len(r.fixes) - 1
}

// RecordRuleApplication appends a matched rule application to the fix
// at index idx.
func (r *Recorder) RecordRuleApplication(idx int, app RuleApplication) {
	if idx < 0 || idx >= len(r.fixes) {
		return
	}
	r.fixes[idx].rules = append(r.fixes[idx].rules, app)
}

// TouchType records that a fix touched a particular TypeID (used when
// a fix cascades into nested types).
func (r *Recorder) TouchType(id types.TypeID) {
	if r.touchedTypes[id] {
		return
	}
	r.touchedTypes[id] = true
	r.touchedOrder = append(r.touchedOrder, id)
}

// FinishFix closes out the fix at index idx with optional before/after
// snapshots.
func (r *Recorder) FinishFix(idx int, before, after string) {
	if idx < 0 || idx >= len(r.fixes) {
		return
	}
	r.fixes[idx].before, r.fixes[idx].after = before, after
	r.fixes[idx].end = time.Now()
}

// Finish closes the recorder and renders the final MigrationReport.
func (r *Recorder) Finish(overallBefore, overallAfter string) *MigrationReport {
	execs := make([]FixExecution, len(r.fixes))
	for i, f := range r.fixes {
		end := f.end
		if end.IsZero() {
			end = time.Now()
		}
		execs[i] = FixExecution{
			Name:             f.name,
			From:             f.from,
			To:               f.to,
			Duration:         end.Sub(f.start),
			RuleApplications: f.rules,
			Before:           f.before,
			After:            f.after,
		}
	}
	return &MigrationReport{
		TypeID:        r.typeID,
		From:          r.from,
		To:            r.to,
		Start:         r.start,
		End:           time.Now(),
		FixExecutions: execs,
		TouchedTypes:  append([]types.TypeID{}, r.touchedOrder...),
		Warnings:      append([]string{}, r.warnings...),
		Before:        overallBefore,
		After:         overallAfter,
	}
}
