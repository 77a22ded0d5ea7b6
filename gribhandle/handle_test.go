package gribhandle_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ecmwf/metkit-sub000/dict"
	"github.com/ecmwf/metkit-sub000/gribhandle"
)

func TestLoadSampleRejectsUnknownName(t *testing.T) {
	_, err := gribhandle.LoadSample("GRIB1")
	assert.Error(t, err)
}

func TestSetMissingIsNotHas(t *testing.T) {
	h, err := gribhandle.LoadSample("GRIB2")
	require.NoError(t, err)

	require.NoError(t, h.Set("number", dict.Long(3)))
	assert.True(t, h.Has("number"))

	require.NoError(t, h.SetMissing("number"))
	assert.False(t, h.Has("number"))

	v, ok := h.Get("number")
	require.True(t, ok)
	assert.True(t, v.IsMissing())
}

func TestCloneIsIndependent(t *testing.T) {
	h, err := gribhandle.LoadSample("GRIB2")
	require.NoError(t, err)
	require.NoError(t, h.Set("param", dict.Long(167)))

	cloned := h.Clone().(*gribhandle.Handle)
	require.NoError(t, cloned.Set("param", dict.Long(130)))

	orig, _ := h.GetInt("param")
	got, _ := cloned.GetInt("param")
	assert.EqualValues(t, 167, orig)
	assert.EqualValues(t, 130, got)
}

func TestForceSetBypassesMissing(t *testing.T) {
	h, err := gribhandle.LoadSample("GRIB2")
	require.NoError(t, err)

	require.NoError(t, h.SetMissing("values"))
	require.NoError(t, h.ForceSet("values", dict.DoubleArray([]float64{1, 2, 3})))
	assert.True(t, h.Has("values"))
}
