// Package fixer implements the migration runtime (component H,
// spec.md §4.8): a Bootstrap-driven factory that builds an immutable
// SchemaRegistry + FixRegistry pair, and a DataFixer whose Update
// method walks the ordered fixes applicable to a version range.
//
// Grounded on golang-open2opaque/internal/fix/fix.go's `Level`-ordered
// rewrite driver (itself built from a frozen `rewrites` table, applied
// in order, logging via glog as it goes) — the closest real-world
// analogue to "a registry of named, versioned, ordered fixes applied
// to a value."
package fixer

import (
	"fmt"

	"github.com/shyptr/datafixer/diagnostics"
	"github.com/shyptr/datafixer/ops"
	"github.com/shyptr/datafixer/types"
	"github.com/shyptr/datafixer/version"
)

// Bootstrap is the two-callback protocol a caller implements to wire
// up a DataFixer (spec.md §4.8): RegisterSchemas populates the
// SchemaRegistry, RegisterFixes populates the FixRegistryBuilder.
// Both registries are frozen immediately after, so neither callback
// may retain the registry/builder for later mutation.
type Bootstrap[V any] interface {
	RegisterSchemas(schemas *types.SchemaRegistry) error
	RegisterFixes(fixes *FixRegistryBuilder[V]) error
}

// DataFixer captures a frozen (schemas, fixes, current_version) triple
// (spec.md §3: "build-once, freeze, share-many"). It carries no
// mutable state and is freely shareable across goroutines.
type DataFixer[V any] struct {
	schemas        *types.SchemaRegistry
	fixes          *FixRegistry[V]
	currentVersion version.Version
}

// DataFixerFactory drives a Bootstrap to produce a DataFixer.
type DataFixerFactory[V any] struct{}

// Create drives bootstrap's two callbacks, freezes both registries,
// and returns the resulting DataFixer (spec.md §4.8, "Construction").
func (DataFixerFactory[V]) Create(currentVersion version.Version, bootstrap Bootstrap[V]) (*DataFixer[V], error) {
	schemas := types.NewSchemaRegistry()
	if err := bootstrap.RegisterSchemas(schemas); err != nil {
		return nil, fmt.Errorf("fixer: register_schemas: %w", err)
	}
	fixBuilder := NewFixRegistryBuilder[V]()
	if err := bootstrap.RegisterFixes(fixBuilder); err != nil {
		return nil, fmt.Errorf("fixer: register_fixes: %w", err)
	}
	schemas.Freeze()
	fixes := fixBuilder.Freeze()
	return &DataFixer[V]{schemas: schemas, fixes: fixes, currentVersion: currentVersion}, nil
}

// CurrentVersion returns the version this DataFixer was created for.
func (f *DataFixer[V]) CurrentVersion() version.Version { return f.currentVersion }

// Schemas returns the frozen SchemaRegistry, for callers that need to
// inspect schema structure directly (e.g. the example program).
func (f *DataFixer[V]) Schemas() *types.SchemaRegistry { return f.schemas }

// Update migrates tagged from version from to version to (spec.md
// §4.8, "Update operation"):
//
//   - from == to: returns the input unchanged.
//   - from > to: backward migration is unsupported, returns an error.
//   - no fixes registered in (from, to]: returns the input unchanged.
//   - else: applies every fix with From in [from, to], in ascending
//     From order (ties broken by registration order), threading the
//     Dynamic value through each.
//
// ctx may be nil; a nil Context disables diagnostics and routes
// info/warn logging through glog only.
func (f *DataFixer[V]) Update(tagged types.TaggedDynamic[V], from, to version.Version, ctx *Context) (types.TaggedDynamic[V], error) {
	if from == to {
		return tagged, nil
	}
	if from > to {
		return types.TaggedDynamic[V]{}, fmt.Errorf("fixer: backward migration not supported: from=%s to=%s", from, to)
	}
	if !f.fixes.HasFixesAfter(tagged.TypeID, from, to) {
		return tagged, nil
	}

	applicable := f.fixes.ApplicableInRange(tagged.TypeID, from, to)
	d := tagged.Value

	var snapshot func(ops.Dynamic[V]) string
	var overallBefore string
	if ctx.DiagnosticsEnabled() {
		opts := ctx.Recorder().Options()
		if opts.CaptureSnapshots {
			snapshot = diagnostics.DefaultSnapshot[V](opts.PrettyPrintSnapshots)
			overallBefore = snapshot(d)
		}
	}

	for _, fix := range applicable {
		d = fix.Apply(tagged.TypeID, d, ctx)
	}

	if ctx.DiagnosticsEnabled() {
		var overallAfter string
		if snapshot != nil {
			overallAfter = snapshot(d)
		}
		ctx.report = ctx.recorder.Finish(overallBefore, overallAfter)
	}
	return types.TaggedDynamic[V]{TypeID: tagged.TypeID, Value: d}, nil
}
