package fixer

import (
	"fmt"

	"github.com/shyptr/datafixer/diagnostics"
	"github.com/shyptr/datafixer/ops"
	"github.com/shyptr/datafixer/rewrite"
	"github.com/shyptr/datafixer/types"
	"github.com/shyptr/datafixer/version"
)

// DataFix is a named, versioned transformation unit (spec.md §4.8):
// `apply` rewrites a Dynamic value tagged with a TypeID, given a
// per-call Context. Invariant: From <= To, checked by
// FixRegistryBuilder.Register, which also runs the `validate` tags
// below through go-playground/validator.
type DataFix[V any] struct {
	Name     string `validate:"required"`
	From, To version.Version
	Apply    func(id types.TypeID, d ops.Dynamic[V], ctx *Context) ops.Dynamic[V] `validate:"required"`
}

// NewDataFix builds a DataFix straight from an apply function, for
// fixes that aren't schema-rewrite-shaped (e.g. pure computed field
// derivations).
func NewDataFix[V any](name string, from, to version.Version, apply func(types.TypeID, ops.Dynamic[V], *Context) ops.Dynamic[V]) DataFix[V] {
	return DataFix[V]{Name: name, From: from, To: to, Apply: apply}
}

// NewSchemaDataFix builds a DataFix whose transformation is produced
// by makeRule(in_schema, out_schema) -> TypeRewriteRule (spec.md §4.8,
// the "SchemaDataFix" subclass form — Go has no subclassing, so this
// is a second constructor for the same DataFix struct rather than a
// second type). Apply performs the stepwise application spec.md §4.8
// describes: resolve in/out schemas, resolve the TypeID's Type in the
// input schema, wrap the value as Typed, build and apply the rule
// (optionally wrapped for diagnostics), unwrap the result.
func NewSchemaDataFix[V any](name string, from, to version.Version, schemas *types.SchemaRegistry, makeRule func(in, out *types.Schema) rewrite.TypeRewriteRule[V]) DataFix[V] {
	return DataFix[V]{
		Name: name, From: from, To: to,
		Apply: func(id types.TypeID, d ops.Dynamic[V], ctx *Context) ops.Dynamic[V] {
			inSchema, err := schemas.Require(int(from))
			if err != nil {
				panic(fmt.Errorf("fixer: fix %q: %w", name, err))
			}
			outSchema, err := schemas.Require(int(to))
			if err != nil {
				panic(fmt.Errorf("fixer: fix %q: %w", name, err))
			}
			t, err := inSchema.Require(id)
			if err != nil {
				panic(fmt.Errorf("fixer: fix %q: %w", name, err))
			}
			typed := types.Of[V](id, t, d)
			rule := makeRule(inSchema, outSchema)

			rec := ctx.Recorder()
			if rec == nil {
				out := rule.Apply(typed)
				return out.Value
			}

			idx := rec.BeginFix(name, from, to)
			opts := rec.Options()
			snapshot := diagnostics.DefaultSnapshot[V](opts.PrettyPrintSnapshots)
			wrapped := diagnostics.WrapRule(rule, opts, snapshot, func(app diagnostics.RuleApplication) {
				rec.RecordRuleApplication(idx, app)
			})
			out := wrapped.Apply(typed)

			var before, after string
			if opts.CaptureSnapshots {
				before, after = snapshot(d), snapshot(out.Value)
			}
			rec.FinishFix(idx, before, after)
			rec.TouchType(id)
			return out.Value
		},
	}
}
