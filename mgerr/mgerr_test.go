package mgerr_test

import (
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/ecmwf/metkit-sub000/mgerr"
)

func TestWrapNilIsNil(t *testing.T) {
	assert.NoError(t, mgerr.Wrap("anything", nil))
}

func TestWrapPreservesChainForErrorsIs(t *testing.T) {
	sentinel := errors.New("boom")
	wrapped := mgerr.Wrap("layout: build", sentinel)
	assert.True(t, errors.Is(wrapped, sentinel))
}

func TestDictErrorUnwrapAndFormat(t *testing.T) {
	cause := errors.New("not a long")
	err := &mgerr.DictError{Dict: "mars", Key: "param", Kind: "Long", Err: cause}

	assert.ErrorIs(t, err, cause)
	assert.Contains(t, err.Error(), "mars")
	assert.Contains(t, err.Error(), "param")

	var target *mgerr.DictError
	assert.True(t, errors.As(err, &target))
	assert.Equal(t, "mars", target.Dict)
}

func TestDictErrorWithoutCauseOmitsNil(t *testing.T) {
	err := &mgerr.DictError{Dict: "aux", Key: "bitmapPresent", Kind: "Bool"}
	assert.NotContains(t, err.Error(), "<nil>")
}

func TestResolutionErrorWithoutCauseOmitsNil(t *testing.T) {
	err := &mgerr.ResolutionError{Section: 4, Detail: "no recipe matched"}
	assert.NotContains(t, err.Error(), "<nil>")
	assert.Contains(t, err.Error(), "section 4")
}

func TestResolutionErrorWithCauseIncludesIt(t *testing.T) {
	cause := errors.New("signature overflow")
	err := &mgerr.ResolutionError{Section: 5, Detail: "hash build", Err: cause}
	assert.ErrorIs(t, err, cause)
	assert.Contains(t, err.Error(), "signature overflow")
}

func TestEncoderErrorFormatsAllFields(t *testing.T) {
	cause := errors.New("bad levelist")
	err := &mgerr.EncoderError{Stage: 1, Section: 4, Concept: "level", Variant: "IsobaricInHpa", Err: cause}

	msg := err.Error()
	assert.Contains(t, msg, "stage=1")
	assert.Contains(t, msg, "section=4")
	assert.Contains(t, msg, "level")
	assert.Contains(t, msg, "IsobaricInHpa")
	assert.ErrorIs(t, err, cause)
}

func TestPrintChainEmitsOneFramePerCause(t *testing.T) {
	inner := errors.New("key \"levtype\" absent")
	mid := &mgerr.MatcherError{Concept: "level", Err: inner}
	outer := mgerr.Wrap("layout: concept classification failed", mid)

	var buf strings.Builder
	mgerr.PrintChain(&buf, outer)

	lines := strings.Split(strings.TrimRight(buf.String(), "\n"), "\n")
	assert.Len(t, lines, 3)
	assert.Contains(t, lines[0], "classification failed")
	assert.Contains(t, lines[1], "matcher level")
	assert.Contains(t, lines[2], "levtype")
}

func TestNotImplementedHasNoUnwrap(t *testing.T) {
	err := &mgerr.NotImplemented{Feature: "data representation template 50"}
	assert.Equal(t, "not implemented: data representation template 50", err.Error())

	var target *mgerr.NotImplemented
	assert.True(t, errors.As(err, &target))
	assert.Nil(t, errors.Unwrap(err))
}
