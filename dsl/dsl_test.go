package dsl_test

import (
	"testing"

	"github.com/shyptr/datafixer/dsl"
	"github.com/shyptr/datafixer/types"
	"github.com/stretchr/testify/assert"
)

func eval(t types.TypeTemplate) types.Type {
	return t(types.NewFamily(0))
}

func TestAndBuildsRightAssociativeProduct(t *testing.T) {
	tmpl := dsl.And(dsl.Field("a", dsl.Int), dsl.Field("b", dsl.String), dsl.Field("c", dsl.Bool))
	ty := eval(tmpl).(*types.Product)
	assert.Equal(t, "a", ty.First.(*types.Field).Name)
	inner := ty.Second.(*types.Product)
	assert.Equal(t, "b", inner.First.(*types.Field).Name)
	assert.Equal(t, "c", inner.Second.(*types.Field).Name)
}

func TestOrBuildsRightAssociativeSum(t *testing.T) {
	tmpl := dsl.Or(dsl.Int, dsl.String, dsl.Bool)
	ty := eval(tmpl).(*types.Sum)
	assert.Equal(t, types.Int, ty.Left.(*types.Primitive).Kind)
	inner := ty.Right.(*types.Sum)
	assert.Equal(t, types.String, inner.Left.(*types.Primitive).Kind)
}

func TestDescribeNotation(t *testing.T) {
	ty := eval(dsl.List(dsl.Optional(dsl.String)))
	assert.Equal(t, "List<Optional<String>>", ty.Describe())

	field := eval(dsl.Field("name", dsl.String))
	assert.Equal(t, "name: String", field.Describe())

	opt := eval(dsl.OptionalField("nickname", dsl.String))
	assert.Equal(t, "?nickname: String", opt.Describe())

	assert.Equal(t, "…", eval(dsl.Remainder).Describe())
}

func TestTaggedChoiceDescribe(t *testing.T) {
	tmpl := dsl.TaggedChoice("type",
		dsl.Case{Value: "player", Template: dsl.Field("level", dsl.Int)},
		dsl.Case{Value: "monster", Template: dsl.Field("health", dsl.Int)},
	)
	ty := eval(tmpl)
	assert.Equal(t, "TaggedChoice<type>{player → level: Int, monster → health: Int}", ty.Describe())
}

func TestRecursiveDescribe(t *testing.T) {
	tmpl := dsl.Recursive("list", func(self types.TypeTemplate) types.TypeTemplate {
		return dsl.And(dsl.Field("value", dsl.Int), dsl.OptionalField("next", self))
	})
	ty := eval(tmpl)
	assert.Contains(t, ty.Describe(), "µlist")
}
