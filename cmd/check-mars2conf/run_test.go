package main

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBasicSuitePasses(t *testing.T) {
	suite, err := loadSuite("testdata/basic.yaml")
	require.NoError(t, err)
	require.NotEmpty(t, suite.Cases)

	var out bytes.Buffer
	failures := runSuite(&out, suite)
	assert.Equal(t, 0, failures, "output:\n%s", out.String())
}

func TestToValueDispatchesByYAMLScalarType(t *testing.T) {
	v := toValue(167)
	n, ok := v.AsLong()
	assert.True(t, ok)
	assert.EqualValues(t, 167, n)

	v = toValue("sfc")
	s, ok := v.AsString()
	assert.True(t, ok)
	assert.Equal(t, "sfc", s)

	v = toValue(1.5)
	f, ok := v.AsDouble()
	assert.True(t, ok)
	assert.Equal(t, 1.5, f)
}

func TestParseSectionKeyRejectsMalformed(t *testing.T) {
	_, err := parseSectionKey("sectionX")
	assert.Error(t, err)

	_, err = parseSectionKey("foo4")
	assert.Error(t, err)

	n, err := parseSectionKey("section4")
	assert.NoError(t, err)
	assert.Equal(t, 4, n)
}
