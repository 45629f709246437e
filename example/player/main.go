// Command player walks through the six end-to-end scenarios a
// schema-versioned migration framework has to get right: renaming a
// field, chaining fixes across several versions, recognizing a no-op,
// restructuring nested data, dispatching a fix onto one variant of a
// tagged choice, and surfacing a decode error without mutating the
// input.
package main

import (
	"fmt"

	"github.com/shyptr/datafixer/codec"
	"github.com/shyptr/datafixer/dsl"
	"github.com/shyptr/datafixer/fixer"
	"github.com/shyptr/datafixer/formatadapters/jsonops"
	"github.com/shyptr/datafixer/ops"
	"github.com/shyptr/datafixer/rewrite"
	"github.com/shyptr/datafixer/types"
	"github.com/shyptr/datafixer/version"
)

const (
	playerType   types.TypeID = "player"
	entityType   types.TypeID = "entity"
	locationType types.TypeID = "location"
)

func main() {
	renameField()
	multiStepChain()
	noOpSameVersion()
	nestingRestructure()
	taggedChoiceDispatch()
	errorSurface()
}

// toPlain converts a Dynamic into plain Go maps/slices/primitives for
// readable printing, dogfooding the Ops accessor contract rather than
// reaching into jsonops internals.
func toPlain(d ops.Dynamic[any]) any {
	switch {
	case d.IsMap():
		entries := d.AsMapEntries().MustGet()
		m := make(map[string]any, len(entries))
		for _, e := range entries {
			m[e.Key.AsString().MustGet()] = toPlain(e.Value)
		}
		return m
	case d.IsList():
		items := d.AsList().MustGet()
		out := make([]any, len(items))
		for i, it := range items {
			out[i] = toPlain(it)
		}
		return out
	case d.IsString():
		return d.AsString().MustGet()
	case d.IsNumber():
		return d.AsNumber().MustGet()
	case d.IsBool():
		return d.AsBool().MustGet()
	default:
		return nil
	}
}

func wrap(m jsonops.Map) ops.Dynamic[any] {
	return ops.Of[any](jsonops.Ops{}, m)
}

// --- Scenario 1: rename field, v1 -> v2 ---

type renameBootstrap struct{}

func (renameBootstrap) RegisterSchemas(schemas *types.SchemaRegistry) error {
	v1 := types.NewSchema(1, nil, map[types.TypeID]types.TypeTemplate{
		playerType: dsl.And(dsl.Field("playerName", dsl.String), dsl.Field("xp", dsl.Long)),
	})
	v2 := types.NewSchema(2, nil, map[types.TypeID]types.TypeTemplate{
		playerType: dsl.And(dsl.Field("name", dsl.String), dsl.Field("experience", dsl.Long)),
	})
	for _, s := range []*types.Schema{v1, v2} {
		if err := schemas.Register(s); err != nil {
			return err
		}
	}
	return nil
}

func (renameBootstrap) RegisterFixes(fixes *fixer.FixRegistryBuilder[any]) error {
	v1, _ := version.New(1)
	v2, _ := version.New(2)
	fix := fixer.NewDataFix[any]("rename player fields", v1, v2,
		func(id types.TypeID, d ops.Dynamic[any], ctx *fixer.Context) ops.Dynamic[any] {
			rule := rewrite.Sequence[any](
				rewrite.RenameField[any]("playerName", "name"),
				rewrite.RenameField[any]("xp", "experience"),
			)
			typed := types.Of[any](id, nil, d)
			return rule.Apply(typed).Value
		})
	return fixes.Register(playerType, fix)
}

func renameField() {
	v1, _ := version.New(1)
	v2, _ := version.New(2)
	df, err := fixer.DataFixerFactory[any]{}.Create(v2, renameBootstrap{})
	if err != nil {
		panic(err)
	}

	input := types.TaggedDynamic[any]{
		TypeID: playerType,
		Value: wrap(jsonops.NewMap(
			ops.MapEntry[any]{Key: "playerName", Value: "Steve"},
			ops.MapEntry[any]{Key: "xp", Value: int64(1500)},
		)),
	}
	out, err := df.Update(input, v1, v2, fixer.NewContext())
	if err != nil {
		panic(err)
	}
	fmt.Println("1. rename field v1->v2:", toPlain(out.Value))
}

// --- Scenario 2: multi-step chain with compute, v1 -> v3 ---

type chainBootstrap struct{}

func (chainBootstrap) RegisterSchemas(schemas *types.SchemaRegistry) error {
	v1 := types.NewSchema(1, nil, map[types.TypeID]types.TypeTemplate{
		playerType: dsl.And(dsl.Field("playerName", dsl.String), dsl.Field("xp", dsl.Long)),
	})
	v2 := types.NewSchema(2, nil, map[types.TypeID]types.TypeTemplate{
		playerType: dsl.And(dsl.Field("name", dsl.String), dsl.Field("experience", dsl.Long)),
	})
	v3 := types.NewSchema(3, nil, map[types.TypeID]types.TypeTemplate{
		playerType: dsl.And(
			dsl.Field("name", dsl.String),
			dsl.Field("experience", dsl.Long),
			dsl.Field("level", dsl.Long),
		),
	})
	for _, s := range []*types.Schema{v1, v2, v3} {
		if err := schemas.Register(s); err != nil {
			return err
		}
	}
	return nil
}

func (chainBootstrap) RegisterFixes(fixes *fixer.FixRegistryBuilder[any]) error {
	v1, _ := version.New(1)
	v2, _ := version.New(2)
	v3, _ := version.New(3)

	rename := fixer.NewDataFix[any]("rename player fields", v1, v2,
		func(id types.TypeID, d ops.Dynamic[any], ctx *fixer.Context) ops.Dynamic[any] {
			rule := rewrite.Sequence[any](
				rewrite.RenameField[any]("playerName", "name"),
				rewrite.RenameField[any]("xp", "experience"),
			)
			return rule.Apply(types.Of[any](id, nil, d)).Value
		})
	addLevel := fixer.NewDataFix[any]("derive level from experience", v2, v3,
		func(id types.TypeID, d ops.Dynamic[any], ctx *fixer.Context) ops.Dynamic[any] {
			rule := rewrite.AddField[any]("level", func(d ops.Dynamic[any]) ops.Dynamic[any] {
				exp := int64(d.Get("experience").AsNumber().OrElse(0))
				return ops.Of[any](d.Ops, d.Ops.CreateLong(exp/100))
			})
			return rule.Apply(types.Of[any](id, nil, d)).Value
		})

	if err := fixes.Register(playerType, rename); err != nil {
		return err
	}
	return fixes.Register(playerType, addLevel)
}

func multiStepChain() {
	v1, _ := version.New(1)
	v3, _ := version.New(3)
	df, err := fixer.DataFixerFactory[any]{}.Create(v3, chainBootstrap{})
	if err != nil {
		panic(err)
	}

	input := types.TaggedDynamic[any]{
		TypeID: playerType,
		Value: wrap(jsonops.NewMap(
			ops.MapEntry[any]{Key: "playerName", Value: "Steve"},
			ops.MapEntry[any]{Key: "xp", Value: int64(1500)},
		)),
	}
	out, err := df.Update(input, v1, v3, fixer.NewContext())
	if err != nil {
		panic(err)
	}
	fmt.Println("2. multi-step chain v1->v3:", toPlain(out.Value))
}

// --- Scenario 3: no-op when target equals current ---

func noOpSameVersion() {
	v3, _ := version.New(3)
	df, err := fixer.DataFixerFactory[any]{}.Create(v3, chainBootstrap{})
	if err != nil {
		panic(err)
	}

	input := types.TaggedDynamic[any]{
		TypeID: playerType,
		Value: wrap(jsonops.NewMap(
			ops.MapEntry[any]{Key: "name", Value: "Bob"},
			ops.MapEntry[any]{Key: "experience", Value: int64(3000)},
			ops.MapEntry[any]{Key: "level", Value: int64(30)},
		)),
	}
	out, err := df.Update(input, v3, v3, fixer.NewContext())
	if err != nil {
		panic(err)
	}
	fmt.Println("3. no-op at v3->v3:", toPlain(out.Value))
}

// --- Scenario 4: nesting restructure ---

type positionBootstrap struct{}

func (positionBootstrap) RegisterSchemas(schemas *types.SchemaRegistry) error {
	v1 := types.NewSchema(1, nil, map[types.TypeID]types.TypeTemplate{
		locationType: dsl.And(
			dsl.Field("name", dsl.String),
			dsl.Field("x", dsl.Double), dsl.Field("y", dsl.Double), dsl.Field("z", dsl.Double),
		),
	})
	v2 := types.NewSchema(2, nil, map[types.TypeID]types.TypeTemplate{
		locationType: dsl.And(
			dsl.Field("name", dsl.String),
			dsl.Field("position", dsl.And(dsl.Field("x", dsl.Double), dsl.Field("y", dsl.Double), dsl.Field("z", dsl.Double))),
		),
	})
	for _, s := range []*types.Schema{v1, v2} {
		if err := schemas.Register(s); err != nil {
			return err
		}
	}
	return nil
}

func (positionBootstrap) RegisterFixes(fixes *fixer.FixRegistryBuilder[any]) error {
	v1, _ := version.New(1)
	v2, _ := version.New(2)
	fix := fixer.NewDataFix[any]("group coordinates into position", v1, v2,
		func(id types.TypeID, d ops.Dynamic[any], ctx *fixer.Context) ops.Dynamic[any] {
			rule := rewrite.Sequence[any](
				rewrite.AddField[any]("position", func(d ops.Dynamic[any]) ops.Dynamic[any] {
					pos := jsonops.NewMap(
						ops.MapEntry[any]{Key: "x", Value: d.Get("x").Value},
						ops.MapEntry[any]{Key: "y", Value: d.Get("y").Value},
						ops.MapEntry[any]{Key: "z", Value: d.Get("z").Value},
					)
					return ops.Of[any](d.Ops, pos)
				}),
				rewrite.RemoveField[any]("x"),
				rewrite.RemoveField[any]("y"),
				rewrite.RemoveField[any]("z"),
			)
			return rule.Apply(types.Of[any](id, nil, d)).Value
		})
	return fixes.Register(locationType, fix)
}

func nestingRestructure() {
	v1, _ := version.New(1)
	v2, _ := version.New(2)
	df, err := fixer.DataFixerFactory[any]{}.Create(v2, positionBootstrap{})
	if err != nil {
		panic(err)
	}

	input := types.TaggedDynamic[any]{
		TypeID: locationType,
		Value: wrap(jsonops.NewMap(
			ops.MapEntry[any]{Key: "name", Value: "Steve"},
			ops.MapEntry[any]{Key: "x", Value: 100.5},
			ops.MapEntry[any]{Key: "y", Value: 64.0},
			ops.MapEntry[any]{Key: "z", Value: -200.25},
		)),
	}
	out, err := df.Update(input, v1, v2, fixer.NewContext())
	if err != nil {
		panic(err)
	}
	fmt.Println("4. nesting restructure v1->v2:", toPlain(out.Value))
}

// --- Scenario 5: tagged choice dispatch ---

type entityBootstrap struct{}

func entityTemplate() types.TypeTemplate {
	return dsl.TaggedChoice("type",
		dsl.Case{Value: "player", Template: dsl.And(dsl.Field("name", dsl.String), dsl.Field("level", dsl.Long))},
		dsl.Case{Value: "monster", Template: dsl.And(dsl.Field("species", dsl.String), dsl.Field("health", dsl.Long), dsl.Field("damage", dsl.Long))},
		dsl.Case{Value: "item", Template: dsl.And(dsl.Field("itemId", dsl.String), dsl.Field("count", dsl.Long))},
	)
}

func (entityBootstrap) RegisterSchemas(schemas *types.SchemaRegistry) error {
	v1 := types.NewSchema(1, nil, map[types.TypeID]types.TypeTemplate{entityType: entityTemplate()})
	v2 := types.NewSchema(2, nil, map[types.TypeID]types.TypeTemplate{entityType: entityTemplate()})
	for _, s := range []*types.Schema{v1, v2} {
		if err := schemas.Register(s); err != nil {
			return err
		}
	}
	return nil
}

func (entityBootstrap) RegisterFixes(fixes *fixer.FixRegistryBuilder[any]) error {
	v1, _ := version.New(1)
	v2, _ := version.New(2)
	fix := fixer.NewDataFix[any]("add loot table to monsters", v1, v2,
		func(id types.TypeID, d ops.Dynamic[any], ctx *fixer.Context) ops.Dynamic[any] {
			rule := rewrite.IfFieldEquals[any]("type", "monster",
				rewrite.AddField[any]("lootTable", func(d ops.Dynamic[any]) ops.Dynamic[any] {
					species := d.Get("species").AsString().OrElse("unknown")
					return ops.Of[any](d.Ops, d.Ops.CreateString("loot_tables/"+species+".json"))
				}))
			return rule.Apply(types.Of[any](id, nil, d)).Value
		})
	return fixes.Register(entityType, fix)
}

func taggedChoiceDispatch() {
	v1, _ := version.New(1)
	v2, _ := version.New(2)
	df, err := fixer.DataFixerFactory[any]{}.Create(v2, entityBootstrap{})
	if err != nil {
		panic(err)
	}

	entities := []jsonops.Map{
		jsonops.NewMap(
			ops.MapEntry[any]{Key: "type", Value: "player"},
			ops.MapEntry[any]{Key: "name", Value: "Steve"},
			ops.MapEntry[any]{Key: "level", Value: int64(10)},
		),
		jsonops.NewMap(
			ops.MapEntry[any]{Key: "type", Value: "monster"},
			ops.MapEntry[any]{Key: "species", Value: "zombie"},
			ops.MapEntry[any]{Key: "health", Value: int64(20)},
			ops.MapEntry[any]{Key: "damage", Value: int64(3)},
		),
		jsonops.NewMap(
			ops.MapEntry[any]{Key: "type", Value: "item"},
			ops.MapEntry[any]{Key: "itemId", Value: "diamond"},
			ops.MapEntry[any]{Key: "count", Value: int64(64)},
		),
	}
	for _, e := range entities {
		input := types.TaggedDynamic[any]{TypeID: entityType, Value: wrap(e)}
		out, err := df.Update(input, v1, v2, fixer.NewContext())
		if err != nil {
			panic(err)
		}
		fmt.Println("5. tagged choice dispatch:", toPlain(out.Value))
	}
}

// --- Scenario 6: error surface ---

func errorSurface() {
	nameField := codec.Field("name", codec.String[any]())
	bad := wrap(jsonops.NewMap(ops.MapEntry[any]{Key: "name", Value: int64(42)}))
	c := codec.Field1[string, string, any](nameField, func(s string) string { return s }, func(s string) string { return s })
	_, err := c.Decode(bad).Get()
	fmt.Println("6. error surface:", err)
}
