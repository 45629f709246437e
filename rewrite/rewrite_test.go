package rewrite_test

import (
	"testing"

	"github.com/shyptr/datafixer/formatadapters/jsonops"
	"github.com/shyptr/datafixer/ops"
	"github.com/shyptr/datafixer/rewrite"
	"github.com/shyptr/datafixer/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func playerTyped(o jsonops.Ops, entries ...ops.MapEntry[any]) types.Typed[any] {
	return types.Of[any]("player", nil, ops.Of[any](o, jsonops.NewMap(entries...)))
}

func TestTransformMatchesOnTypeID(t *testing.T) {
	o := jsonops.Ops{}
	rule := rewrite.Transform[any]("player", func(d ops.Dynamic[any]) ops.Dynamic[any] {
		return d.Set("touched", ops.Of[any](o, true))
	})

	in := playerTyped(o, ops.MapEntry[any]{Key: "name", Value: "Steve"})
	out := rule.Apply(in)
	assert.True(t, out.Value.Has("touched"))

	other := types.Of[any]("monster", nil, ops.Of[any](o, jsonops.NewMap()))
	unmatched := rule.Apply(other)
	assert.False(t, unmatched.Value.Has("touched"))
}

func TestRenameField(t *testing.T) {
	o := jsonops.Ops{}
	rule := rewrite.RenameField[any]("playerName", "name")
	in := playerTyped(o, ops.MapEntry[any]{Key: "playerName", Value: "Steve"})

	out := rule.Apply(in)
	assert.False(t, out.Value.Has("playerName"))
	name, _ := out.Value.Get("name").AsString().Get()
	assert.Equal(t, "Steve", name)

	noOld := playerTyped(o, ops.MapEntry[any]{Key: "name", Value: "Steve"})
	unchanged := rule.Apply(noOld)
	assert.True(t, unchanged.Value.Has("name"))
	assert.False(t, unchanged.Value.Has("playerName"))
}

func TestSequenceChainsLeftToRight(t *testing.T) {
	o := jsonops.Ops{}
	rule := rewrite.Sequence[any](
		rewrite.RenameField[any]("playerName", "name"),
		rewrite.RenameField[any]("xp", "experience"),
	)
	in := playerTyped(o,
		ops.MapEntry[any]{Key: "playerName", Value: "Steve"},
		ops.MapEntry[any]{Key: "xp", Value: int64(1500)},
	)
	out := rule.Apply(in)
	name, _ := out.Value.Get("name").AsString().Get()
	assert.Equal(t, "Steve", name)
	assert.True(t, out.Value.Has("experience"))
	assert.False(t, out.Value.Has("xp"))
}

func TestChoiceFirstMatchWins(t *testing.T) {
	o := jsonops.Ops{}
	rule := rewrite.Choice[any](
		rewrite.RenameField[any]("missing", "whatever"),
		rewrite.RenameField[any]("xp", "experience"),
		rewrite.RenameField[any]("xp", "shouldNotRun"),
	)
	in := playerTyped(o, ops.MapEntry[any]{Key: "xp", Value: int64(10)})
	out := rule.Apply(in)
	assert.True(t, out.Value.Has("experience"))
	assert.False(t, out.Value.Has("shouldNotRun"))
}

func TestConditionalGuards(t *testing.T) {
	o := jsonops.Ops{}
	rule := rewrite.IfFieldEquals[any]("kind", "monster", rewrite.AddField[any]("lootTable", func(d ops.Dynamic[any]) ops.Dynamic[any] {
		return ops.Of[any](o, "loot_tables/default.json")
	}))

	monster := playerTyped(o, ops.MapEntry[any]{Key: "kind", Value: "monster"})
	out := rule.Apply(monster)
	assert.True(t, out.Value.Has("lootTable"))

	player := playerTyped(o, ops.MapEntry[any]{Key: "kind", Value: "player"})
	unchanged := rule.Apply(player)
	assert.False(t, unchanged.Value.Has("lootTable"))
}

func TestPathBasedRules(t *testing.T) {
	o := jsonops.Ops{}
	inner := jsonops.NewMap(ops.MapEntry[any]{Key: "x", Value: int32(1)})
	in := playerTyped(o, ops.MapEntry[any]{Key: "position", Value: inner})

	rule := rewrite.RenameFieldAt[any]("position.x", "longitude")
	out := rule.Apply(in)
	pos := out.Value.Get("position")
	assert.False(t, pos.Has("x"))
	lon, _ := pos.Get("longitude").AsNumber().Get()
	assert.Equal(t, float64(1), lon)
}

func TestAddFieldAtOnMissingParentIsIdentity(t *testing.T) {
	o := jsonops.Ops{}
	in := playerTyped(o, ops.MapEntry[any]{Key: "name", Value: "Steve"})
	rule := rewrite.AddFieldAt[any]("inventory.slots", func(d ops.Dynamic[any]) ops.Dynamic[any] {
		return ops.Of[any](o, int32(0))
	})
	out := rule.Apply(in)
	assert.False(t, out.Value.Has("inventory"))
}

func TestBatchGroupsFieldOps(t *testing.T) {
	o := jsonops.Ops{}
	batch := rewrite.NewBatch[any]().
		Rename("playerName", "name").
		Remove("legacyFlag").
		Add("migratedAt", func(d ops.Dynamic[any]) ops.Dynamic[any] { return ops.Of[any](o, "v2") })

	in := playerTyped(o,
		ops.MapEntry[any]{Key: "playerName", Value: "Steve"},
		ops.MapEntry[any]{Key: "legacyFlag", Value: true},
	)
	out := rewrite.Batch(batch).Apply(in)
	assert.False(t, out.Value.Has("playerName"))
	assert.False(t, out.Value.Has("legacyFlag"))
	assert.True(t, out.Value.Has("migratedAt"))
	name, _ := out.Value.Get("name").AsString().Get()
	assert.Equal(t, "Steve", name)
}

func TestParsePathRejectsEmptySegments(t *testing.T) {
	_, err := rewrite.ParsePath("a..b")
	require.Error(t, err)

	p, err := rewrite.ParsePath("a.b.c")
	require.NoError(t, err)
	assert.Equal(t, rewrite.Path{"a", "b", "c"}, p)
}
