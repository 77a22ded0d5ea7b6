package dict_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/ecmwf/metkit-sub000/dict"
)

func TestLongDoubleWidening(t *testing.T) {
	v := dict.Long(42)
	f, ok := v.AsDouble()
	assert.True(t, ok)
	assert.Equal(t, 42.0, f)

	_, ok = v.AsString()
	assert.False(t, ok)
}

func TestBoolRoundTrip(t *testing.T) {
	tv := dict.Bool(true)
	b, ok := tv.AsBool()
	assert.True(t, ok)
	assert.True(t, b)

	fv := dict.Bool(false)
	b, ok = fv.AsBool()
	assert.True(t, ok)
	assert.False(t, b)
}

func TestMissingIsMissing(t *testing.T) {
	assert.True(t, dict.Missing().IsMissing())
	assert.False(t, dict.Long(0).IsMissing())
	assert.False(t, dict.Undefined().IsMissing())
}

func TestKindMismatchReturnsFalse(t *testing.T) {
	s := dict.String("sfc")
	_, ok := s.AsLong()
	assert.False(t, ok)
	_, ok = s.AsDouble()
	assert.False(t, ok)

	str, ok := s.AsString()
	assert.True(t, ok)
	assert.Equal(t, "sfc", str)
}

func TestArrayAccessors(t *testing.T) {
	longs := dict.LongArray([]int64{1, 2, 3})
	got, ok := longs.AsLongArray()
	assert.True(t, ok)
	assert.Equal(t, []int64{1, 2, 3}, got)

	_, ok = longs.AsDoubleArray()
	assert.False(t, ok)

	dbls := dict.DoubleArray([]float64{270.1, 271.4})
	dgot, ok := dbls.AsDoubleArray()
	assert.True(t, ok)
	assert.Equal(t, []float64{270.1, 271.4}, dgot)
}

func TestStringRendering(t *testing.T) {
	assert.Equal(t, "null", dict.Missing().String())
	assert.Equal(t, `"sfc"`, dict.String("sfc").String())
	assert.Equal(t, "167", dict.Long(167).String())
}
