package fixer_test

import (
	"testing"

	"github.com/shyptr/datafixer/diagnostics"
	"github.com/shyptr/datafixer/dsl"
	"github.com/shyptr/datafixer/fixer"
	"github.com/shyptr/datafixer/formatadapters/jsonops"
	"github.com/shyptr/datafixer/ops"
	"github.com/shyptr/datafixer/rewrite"
	"github.com/shyptr/datafixer/types"
	"github.com/shyptr/datafixer/version"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const playerType types.TypeID = "player"

// playerBootstrap keeps the SchemaRegistry it builds so RegisterFixes
// can hand it to NewSchemaDataFix — the registry isn't frozen until
// after both callbacks return, so the fixes it hands out may still
// call schemas.Require at apply time.
type playerBootstrap struct {
	schemas *types.SchemaRegistry
}

func (b *playerBootstrap) RegisterSchemas(schemas *types.SchemaRegistry) error {
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
	b.schemas = schemas
	return nil
}

func (b *playerBootstrap) RegisterFixes(fixes *fixer.FixRegistryBuilder[any]) error {
	v1, _ := version.New(1)
	v2, _ := version.New(2)
	fix := fixer.NewSchemaDataFix[any]("rename player fields", v1, v2, b.schemas,
		func(in, out *types.Schema) rewrite.TypeRewriteRule[any] {
			return rewrite.Sequence[any](
				rewrite.RenameField[any]("playerName", "name"),
				rewrite.RenameField[any]("xp", "experience"),
			)
		})
	return fixes.Register(playerType, fix)
}

func buildFixer(t *testing.T) *fixer.DataFixer[any] {
	t.Helper()
	v1, _ := version.New(1)
	factory := fixer.DataFixerFactory[any]{}
	df, err := factory.Create(v1, &playerBootstrap{})
	require.NoError(t, err)
	return df
}

func TestUpdateIdentityWhenFromEqualsTo(t *testing.T) {
	df := buildFixer(t)
	o := jsonops.Ops{}
	v1, _ := version.New(1)
	tagged := types.TaggedDynamic[any]{TypeID: playerType, Value: ops.Of[any](o, jsonops.NewMap())}

	out, err := df.Update(tagged, v1, v1, nil)
	require.NoError(t, err)
	assert.Equal(t, tagged, out)
}

func TestUpdateRejectsBackwardMigration(t *testing.T) {
	df := buildFixer(t)
	o := jsonops.Ops{}
	v1, _ := version.New(1)
	v2, _ := version.New(2)
	tagged := types.TaggedDynamic[any]{TypeID: playerType, Value: ops.Of[any](o, jsonops.NewMap())}

	_, err := df.Update(tagged, v2, v1, nil)
	assert.Error(t, err)
}

func TestUpdateRenamesPlayerFields(t *testing.T) {
	df := buildFixer(t)
	o := jsonops.Ops{}
	v1, _ := version.New(1)
	v2, _ := version.New(2)
	tagged := types.TaggedDynamic[any]{
		TypeID: playerType,
		Value: ops.Of[any](o, jsonops.NewMap(
			ops.MapEntry[any]{Key: "playerName", Value: "Steve"},
			ops.MapEntry[any]{Key: "xp", Value: int64(1500)},
		)),
	}

	out, err := df.Update(tagged, v1, v2, fixer.NewContext())
	require.NoError(t, err)
	assert.True(t, out.Value.Has("name"))
	assert.True(t, out.Value.Has("experience"))
	assert.False(t, out.Value.Has("playerName"))
}

func TestUpdateWithDiagnosticsProducesReport(t *testing.T) {
	df := buildFixer(t)
	o := jsonops.Ops{}
	v1, _ := version.New(1)
	v2, _ := version.New(2)
	tagged := types.TaggedDynamic[any]{
		TypeID: playerType,
		Value: ops.Of[any](o, jsonops.NewMap(
			ops.MapEntry[any]{Key: "playerName", Value: "Steve"},
			ops.MapEntry[any]{Key: "xp", Value: int64(1500)},
		)),
	}

	ctx := fixer.NewDiagnosticContext(diagnostics.Options{
		CaptureSnapshots:   true,
		CaptureRuleDetails: true,
	}, playerType, v1, v2)

	_, err := df.Update(tagged, v1, v2, ctx)
	require.NoError(t, err)

	report := ctx.Report()
	require.NotNil(t, report)
	require.Len(t, report.FixExecutions, 1)
	assert.Equal(t, "rename player fields", report.FixExecutions[0].Name)
	assert.NotEmpty(t, report.FixExecutions[0].RuleApplications)
	assert.NotEmpty(t, report.Before, "overall before snapshot must be captured when CaptureSnapshots is set")
	assert.NotEmpty(t, report.After, "overall after snapshot must be captured when CaptureSnapshots is set")
	assert.NotEqual(t, report.Before, report.After)
}
