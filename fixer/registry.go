package fixer

import (
	"fmt"
	"sort"
	"sync"

	"github.com/go-playground/validator/v10"

	"github.com/shyptr/datafixer/types"
	"github.com/shyptr/datafixer/version"
)

// fixValidate is a package-wide validator instance, built once
// (grounded on schemabuilder/validator.go's sync.Once singleton in the
// teacher repo) and reused across every Register call.
var (
	fixValidate     *validator.Validate
	fixValidateOnce sync.Once
)

func validateFix() *validator.Validate {
	fixValidateOnce.Do(func() { fixValidate = validator.New() })
	return fixValidate
}

// FixRegistryBuilder accumulates DataFixes per TypeID before freezing
// (spec.md §4.8, "fix_registrar"). Grounded on
// golang-open2opaque/internal/fix/rules.go's `rewrites []rewrite{...}`
// ordered table, generalized to be keyed by TypeID and to validate
// from<=to at registration.
type FixRegistryBuilder[V any] struct {
	byType map[types.TypeID][]DataFix[V]
	frozen bool
}

// NewFixRegistryBuilder starts an empty, unfrozen builder.
func NewFixRegistryBuilder[V any]() *FixRegistryBuilder[V] {
	return &FixRegistryBuilder[V]{byType: make(map[types.TypeID][]DataFix[V])}
}

// Register appends fix under id, preserving insertion order among
// fixes with equal From. Registering after Freeze or a fix with
// From > To is an error (spec.md §3 FixRegistry invariants).
func (b *FixRegistryBuilder[V]) Register(id types.TypeID, fix DataFix[V]) error {
	if b.frozen {
		return fmt.Errorf("fixer: cannot register fix %q: registry is frozen", fix.Name)
	}
	if err := validateFix().Struct(fix); err != nil {
		return fmt.Errorf("fixer: invalid fix: %w", err)
	}
	if fix.From > fix.To {
		return fmt.Errorf("fixer: fix %q has from=%s > to=%s", fix.Name, fix.From, fix.To)
	}
	b.byType[id] = append(b.byType[id], fix)
	return nil
}

// Freeze stable-sorts each TypeID's fixes by From (preserving
// insertion order for ties) and returns the immutable FixRegistry.
func (b *FixRegistryBuilder[V]) Freeze() *FixRegistry[V] {
	b.frozen = true
	out := make(map[types.TypeID][]DataFix[V], len(b.byType))
	for id, fixes := range b.byType {
		sorted := append([]DataFix[V]{}, fixes...)
		sort.SliceStable(sorted, func(i, j int) bool { return sorted[i].From < sorted[j].From })
		out[id] = sorted
	}
	return &FixRegistry[V]{byType: out}
}

// FixRegistry is the frozen, shared-immutable view of every registered
// fix, keyed by TypeID and version-ordered (spec.md §3).
type FixRegistry[V any] struct {
	byType map[types.TypeID][]DataFix[V]
}

// HasFixesAfter reports whether any fix's From falls in (from, to] —
// the exclusive-lower probe DataFixer.Update uses to decide whether a
// migration is a no-op (spec.md §4.8).
func (r *FixRegistry[V]) HasFixesAfter(id types.TypeID, from, to version.Version) bool {
	for _, f := range r.byType[id] {
		if f.From > from && f.From <= to {
			return true
		}
	}
	return false
}

// ApplicableInRange returns every fix whose From falls in [from, to]
// inclusive-inclusive, in application order — the window
// DataFixer.Update actually applies (spec.md §4.8).
func (r *FixRegistry[V]) ApplicableInRange(id types.TypeID, from, to version.Version) []DataFix[V] {
	var out []DataFix[V]
	for _, f := range r.byType[id] {
		if f.From >= from && f.From <= to {
			out = append(out, f)
		}
	}
	return out
}
