package result_test

import (
	"errors"
	"testing"

	"github.com/shyptr/datafixer/result"
	"github.com/stretchr/testify/assert"
)

func TestOkGet(t *testing.T) {
	r := result.Ok(42)
	assert.True(t, r.IsOk())
	v, err := r.Get()
	assert.NoError(t, err)
	assert.Equal(t, 42, v)
}

func TestErrCarriesMessage(t *testing.T) {
	r := result.Err[int](errors.New("boom"))
	assert.True(t, r.IsError())
	_, ok := r.Partial()
	assert.False(t, ok)
}

func TestErrPartialFallback(t *testing.T) {
	r := result.ErrPartial(errors.New("partial decode"), 7)
	p, ok := r.Partial()
	assert.True(t, ok)
	assert.Equal(t, 7, p)
}

func TestMap(t *testing.T) {
	r := result.Map(result.Ok(2), func(i int) int { return i * 10 })
	assert.Equal(t, 20, r.MustGet())

	e := result.Map(result.Err[int](errors.New("x")), func(i int) int { return i * 10 })
	assert.True(t, e.IsError())
}

func TestFlatMap(t *testing.T) {
	double := func(i int) result.Result[int] { return result.Ok(i * 2) }
	r := result.FlatMap(result.Ok(3), double)
	assert.Equal(t, 6, r.MustGet())

	e := result.FlatMap(result.Err[int](errors.New("x")), double)
	assert.True(t, e.IsError())
}

func TestOrElse(t *testing.T) {
	assert.Equal(t, 5, result.Ok(5).OrElse(-1))
	assert.Equal(t, -1, result.Err[int](errors.New("x")).OrElse(-1))
}
