package optics_test

import (
	"testing"

	"github.com/shyptr/datafixer/formatadapters/jsonops"
	"github.com/shyptr/datafixer/ops"
	"github.com/shyptr/datafixer/optics"
	"github.com/stretchr/testify/assert"
)

type Point struct{ X, Y int }

func xLens() optics.Lens[Point, int] {
	return optics.Lens[Point, int]{
		Get: func(p Point) int { return p.X },
		Set: func(p Point, x int) Point { return Point{X: x, Y: p.Y} },
	}
}

func TestLensLaws(t *testing.T) {
	l := xLens()
	p := Point{X: 1, Y: 2}

	assert.Equal(t, p, l.Set(p, l.Get(p)))
	assert.Equal(t, 9, l.Get(l.Set(p, 9)))
	assert.Equal(t, l.Set(p, 9), l.Set(l.Set(p, 5), 9))
}

type Shape interface{ isShape() }
type Circle struct{ R int }
type Square struct{ Side int }

func (Circle) isShape() {}
func (Square) isShape() {}

func circlePrism() optics.Prism[Shape, Circle] {
	return optics.Prism[Shape, Circle]{
		GetOption: func(s Shape) (Circle, bool) {
			c, ok := s.(Circle)
			return c, ok
		},
		ReverseGet: func(c Circle) Shape { return c },
	}
}

func TestPrismLaws(t *testing.T) {
	p := circlePrism()
	var s Shape = Circle{R: 4}

	c, ok := p.GetOption(s)
	assert.True(t, ok)
	assert.Equal(t, s, p.ReverseGet(c))

	c2, ok2 := p.GetOption(p.ReverseGet(Circle{R: 7}))
	assert.True(t, ok2)
	assert.Equal(t, Circle{R: 7}, c2)

	_, ok3 := p.GetOption(Square{Side: 2})
	assert.False(t, ok3)
}

func TestIsoLaws(t *testing.T) {
	iso := optics.Iso[int, string]{
		Get:     func(i int) string { return string(rune('a' + i)) },
		Reverse: func(s string) int { return int(s[0] - 'a') },
	}
	assert.Equal(t, 3, iso.Reverse(iso.Get(3)))
	assert.Equal(t, "d", iso.Get(iso.Reverse("d")))
}

func TestComposeLensPrismIsAffine(t *testing.T) {
	type Holder struct{ S Shape }
	holderLens := optics.Lens[Holder, Shape]{
		Get: func(h Holder) Shape { return h.S },
		Set: func(h Holder, s Shape) Holder { return Holder{S: s} },
	}
	affine := optics.ComposeLensPrism(holderLens, circlePrism())

	c, ok := affine.GetOption(Holder{S: Circle{R: 2}})
	assert.True(t, ok)
	assert.Equal(t, Circle{R: 2}, c)

	_, ok2 := affine.GetOption(Holder{S: Square{Side: 1}})
	assert.False(t, ok2)

	updated := affine.Set(Holder{S: Circle{R: 2}}, Circle{R: 99})
	assert.Equal(t, Circle{R: 99}, updated.S)
}

func TestFieldFinder(t *testing.T) {
	o := jsonops.Ops{}
	dyn := ops.Of[any](o, jsonops.NewMap(
		ops.MapEntry[any]{Key: "name", Value: "Steve"},
	))
	finder := optics.FieldFinder[any]("name")

	v, ok := finder.GetOption(dyn)
	assert.True(t, ok)
	name, _ := v.AsString().Get()
	assert.Equal(t, "Steve", name)

	_, ok2 := finder.GetOption(ops.Of[any](o, jsonops.NewMap()))
	assert.False(t, ok2)
}

func TestRemainderFinder(t *testing.T) {
	o := jsonops.Ops{}
	dyn := ops.Of[any](o, jsonops.NewMap(
		ops.MapEntry[any]{Key: "name", Value: "Steve"},
		ops.MapEntry[any]{Key: "xp", Value: int64(100)},
		ops.MapEntry[any]{Key: "level", Value: int32(1)},
	))
	remainder := optics.RemainderFinder[any]("name")
	foci := remainder.ToList(dyn)
	assert.Len(t, foci, 2)
}
