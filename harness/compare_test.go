package harness

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/weiihann/fntest/tuple"
)

func TestDeepEqual(t *testing.T) {
	assert.True(t, DeepEqual([]int{1, 2}, []int{1, 2}))
	assert.False(t, DeepEqual([]int{1, 2}, []int{2, 1}))
	assert.True(t, DeepEqual(map[string]int{"a": 1}, map[string]int{"a": 1}))
	assert.True(t, DeepEqual([]byte("abc"), []byte("abc")))
}

func TestSliceAndMapEqual(t *testing.T) {
	eq := SliceEqual(FloatEqual(0.01))
	assert.True(t, eq([]float64{1, 2}, []float64{1.001, 1.999}))
	assert.False(t, eq([]float64{1}, []float64{1, 2}))

	meq := MapEqual[string](Equal[int])
	assert.True(t, meq(map[string]int{"a": 1}, map[string]int{"a": 1}))
	assert.False(t, meq(map[string]int{"a": 1}, map[string]int{"b": 1}))
	assert.False(t, meq(map[string]int{"a": 1}, map[string]int{"a": 2}))
}

func TestFloatEqual(t *testing.T) {
	eq := FloatEqual(1e-6)
	assert.True(t, eq(math.NaN(), math.NaN()))
	assert.False(t, eq(math.NaN(), 0))
	assert.True(t, eq(math.Inf(1), math.Inf(1)))
	assert.False(t, eq(1, 1.1))
}

func TestTextEqual(t *testing.T) {
	assert.True(t, TextEqual("caf\u00e9", "cafe\u0301"))
	assert.False(t, TextEqual("cafe", "caf\u00e9"))
}

func TestStringers(t *testing.T) {
	assert.Equal(t, "( 1, x )", BundleString(tuple.Of2(1, "x")))
	assert.Equal(t, "[1 2]", Sprint([]int{1, 2}))

	n := 7
	type box struct{ N *int }
	assert.Contains(t, SpewString(box{N: &n}), "N:<*>7")
}
