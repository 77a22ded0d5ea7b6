// Package mgerr defines the encoding pipeline's error taxonomy. Every
// exported error type carries structured context (stage/section/concept,
// key/kind, param/levtype, ...) and wraps an optional cause with %w so the
// full chain survives errors.Is/errors.As/errors.Unwrap, in keeping with the
// stdlib-only error style already used throughout the decode side.
package mgerr

import (
	"errors"
	"fmt"
	"io"
)

// DictError reports a failed or type-mismatched dictionary access.
type DictError struct {
	Dict string
	Key  string
	Kind string
	Err  error
}

func (e *DictError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("dict %s: key %q (%s): %v", e.Dict, e.Key, e.Kind, e.Err)
	}
	return fmt.Sprintf("dict %s: key %q (%s)", e.Dict, e.Key, e.Kind)
}

func (e *DictError) Unwrap() error { return e.Err }

// MatcherError reports a concept matcher that could not classify the
// request, optionally naming the MARS param/levtype that defeated it.
type MatcherError struct {
	Concept string
	Param   string
	Levtype string
	Err     error
}

func (e *MatcherError) Error() string {
	s := fmt.Sprintf("matcher %s", e.Concept)
	if e.Param != "" {
		s += fmt.Sprintf(" param=%s", e.Param)
	}
	if e.Levtype != "" {
		s += fmt.Sprintf(" levtype=%s", e.Levtype)
	}
	if e.Err != nil {
		s += fmt.Sprintf(": %v", e.Err)
	}
	return s
}

func (e *MatcherError) Unwrap() error { return e.Err }

// ResolutionError reports a failure to resolve a section template from the
// active concept set: no recipe matched, or the signature key overflowed
// its fixed capacity.
type ResolutionError struct {
	Section int
	Detail  string
	Err     error
}

func (e *ResolutionError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("resolution section %d: %s: %v", e.Section, e.Detail, e.Err)
	}
	return fmt.Sprintf("resolution section %d: %s", e.Section, e.Detail)
}

func (e *ResolutionError) Unwrap() error { return e.Err }

// RegistryError reports a problem building a compile-time-style registry:
// duplicate concept/variant registration, duplicate signature keys inside a
// SectionTemplateSelector, or an out-of-range dense index.
type RegistryError struct {
	Registry string
	Detail   string
	Err      error
}

func (e *RegistryError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("registry %s: %s: %v", e.Registry, e.Detail, e.Err)
	}
	return fmt.Sprintf("registry %s: %s", e.Registry, e.Detail)
}

func (e *RegistryError) Unwrap() error { return e.Err }

// TableError reports a failure in a code table lookup (e.g. an undefined
// virtual local definition number, an unmapped statistical process code).
type TableError struct {
	Table string
	Key   string
	Err   error
}

func (e *TableError) Error() string {
	return fmt.Sprintf("table %s: key %q: %v", e.Table, e.Key, e.Err)
}

func (e *TableError) Unwrap() error { return e.Err }

// EncoderError reports a failure inside SpecializedEncoder.Encode, tagged
// with the stage/section/concept/variant active when it happened and a
// JSON snapshot of the input dictionaries for diagnostics.
type EncoderError struct {
	Stage   int
	Section int
	Concept string
	Variant string
	Inputs  string
	Err     error
}

func (e *EncoderError) Error() string {
	s := fmt.Sprintf("encoder stage=%d section=%d concept=%s variant=%s",
		e.Stage, e.Section, e.Concept, e.Variant)
	if e.Inputs != "" {
		s += " inputs=" + e.Inputs
	}
	return fmt.Sprintf("%s: %v", s, e.Err)
}

func (e *EncoderError) Unwrap() error { return e.Err }

// NotImplemented marks a deliberately unsupported combination: a packing
// type, grid template, or option not covered by the current implementation.
type NotImplemented struct {
	Feature string
}

func (e *NotImplemented) Error() string {
	return fmt.Sprintf("not implemented: %s", e.Feature)
}

// Wrap joins an error into an existing chain with a contextual prefix;
// every public entry point wraps its failures this way so the full cause
// chain reaches the caller.
func Wrap(context string, err error) error {
	if err == nil {
		return nil
	}
	return fmt.Errorf("%s: %w", context, err)
}

// PrintChain walks err's cause chain and writes one indented frame per
// link, outermost first. Each frame is the link's own message with its
// wrapped cause's text stripped, so context appears exactly once.
func PrintChain(w io.Writer, err error) {
	depth := 0
	for err != nil {
		msg := err.Error()
		if cause := errors.Unwrap(err); cause != nil {
			if stripped, ok := stripSuffix(msg, cause.Error()); ok {
				msg = stripped
			}
		}
		for i := 0; i < depth; i++ {
			fmt.Fprint(w, "  ")
		}
		fmt.Fprintln(w, msg)
		err = errors.Unwrap(err)
		depth++
	}
}

func stripSuffix(msg, causeText string) (string, bool) {
	if causeText == "" || len(msg) <= len(causeText) {
		return msg, false
	}
	if msg[len(msg)-len(causeText):] != causeText {
		return msg, false
	}
	trimmed := msg[:len(msg)-len(causeText)]
	for len(trimmed) > 0 && (trimmed[len(trimmed)-1] == ' ' || trimmed[len(trimmed)-1] == ':') {
		trimmed = trimmed[:len(trimmed)-1]
	}
	return trimmed, true
}
