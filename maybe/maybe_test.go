package maybe_test

import (
	"testing"

	. "github.com/npillmayer/cascade/maybe"
	"github.com/stretchr/testify/assert"
)

func TestMaybeSimple(t *testing.T) {
	x := Just("blue") // infers type
	y := Nothing[string]()

	var v string
	switch m := x.Match(); m {
	case m.Just(&v):
		t.Logf("Just(%s)", v)
	case m.Nothing():
		t.Error("expected Just, matched Nothing")
	}
	assert.Equal(t, "blue", v)

	var w string
	nothing := false
	switch m := y.Match(); m {
	case m.Just(&w):
		t.Logf("Just(%s)", w)
	case m.Nothing():
		nothing = true
	}
	assert.True(t, nothing)
	assert.Equal(t, "", w)
}

func TestMaybeWithDefault(t *testing.T) {
	assert.Equal(t, 7, Just(7).WithDefault(100))
	assert.Equal(t, 100, Nothing[int]().WithDefault(100))
	assert.True(t, Just(0).IsJust())
	assert.False(t, Nothing[int]().IsJust())
}

func TestMaybeMap(t *testing.T) {
	double := func(n int) int { return n * 2 }
	assert.Equal(t, 14, Just(7).Map(double).WithDefault(0))
	assert.False(t, Nothing[int]().Map(double).IsJust())
}

func TestMaybeAndThen(t *testing.T) {
	gt0 := func(n int) Maybe[bool] {
		if n > 0 {
			return Just(true)
		}
		return Nothing[bool]()
	}
	var isGreater bool
	switch m := AndThen(gt0, Just(7)).Match(); m {
	case m.Just(&isGreater):
	case m.Nothing():
		t.Error("expected Just(7) |> andThen(gt0) to be true, isn't")
	}
	assert.True(t, isGreater)
	assert.False(t, AndThen(gt0, Just(-1)).IsJust())
	assert.False(t, AndThen(gt0, Nothing[int]()).IsJust())
}

func TestMaybeOneOf(t *testing.T) {
	assert.Equal(t, 2, OneOf(Nothing[int](), Just(2), Just(3)).WithDefault(0))
	assert.False(t, OneOf[int]().IsJust())
	assert.False(t, OneOf(Nothing[int](), nil).IsJust())
}
