package diagnostics

import (
	"fmt"

	"github.com/shyptr/datafixer/ops"
	"github.com/shyptr/datafixer/rewrite"
	"github.com/shyptr/datafixer/types"
)

// DefaultSnapshot renders a Dynamic's underlying value as a string for
// before/after snapshots. pretty switches between %v and %#v, the
// closest stdlib equivalent to a "pretty_print" toggle without pulling
// in a format-specific pretty-printer the snapshot target doesn't
// necessarily use (V is any tree format, not just JSON).
func DefaultSnapshot[V any](pretty bool) func(ops.Dynamic[V]) string {
	if pretty {
		return func(d ops.Dynamic[V]) string { return fmt.Sprintf("%#v", d.Value) }
	}
	return func(d ops.Dynamic[V]) string { return fmt.Sprintf("%v", d.Value) }
}

func truncate(s string, max int) string {
	if max <= 0 || len(s) <= max {
		return s
	}
	return s[:max] + "...(truncated)"
}

// WrapRule augments rule with recording, without subclassing it: the
// wrapper calls through to rule.TryApply and reports each match to
// sink, skipping identity applications (spec.md §4.9: "identity
// applications may be skipped, at the wrapper's discretion"). When
// opts.CaptureRuleDetails is false, rule is returned unwrapped.
func WrapRule[V any](rule rewrite.TypeRewriteRule[V], opts Options, snapshot func(ops.Dynamic[V]) string, sink func(RuleApplication)) rewrite.TypeRewriteRule[V] {
	if !opts.CaptureRuleDetails {
		return rule
	}
	name := rule.Name
	return rewrite.Rule(name, func(t types.Typed[V]) (types.Typed[V], bool) {
		out, matched := rule.TryApply(t)
		if !matched {
			return out, false
		}
		app := RuleApplication{RuleName: name}
		if opts.CaptureSnapshots && snapshot != nil {
			app.Before = truncate(snapshot(t.Value), opts.MaxSnapshotLength)
			app.After = truncate(snapshot(out.Value), opts.MaxSnapshotLength)
		}
		sink(app)
		return out, true
	})
}
