// Package gribhandle implements the GRIB handle capability the encoding
// pipeline treats as an external collaborator: a dict.Dict-compatible,
// ecCodes-like key-value store that accumulates header fields during
// encoding and finally serializes itself into a wire-format GRIB2 message
// through the section and template packages' write-side builders.
package gribhandle

import (
	"fmt"
	"sort"
	"strings"

	"github.com/ecmwf/metkit-sub000/dict"
)

// Handle is the GRIB message under construction. It satisfies dict.Dict so
// plan.Callback and encoder code can treat it uniformly with MarsDict/
// AuxDict, plus two GRIB-specific escape hatches, SetMissing and ForceSet,
// that only the handle offers, never MARS/aux/opts.
type Handle struct {
	sample string
	keys   map[string]dict.Value
	missing map[string]bool
}

// LoadSample seeds a new Handle from a named sample. Only "GRIB2" is
// defined; the sample is a compiled-in default rather than a file fetched
// over HTTP or disk.
func LoadSample(name string) (*Handle, error) {
	if name != "GRIB2" {
		return nil, fmt.Errorf("gribhandle: unknown sample %q", name)
	}
	return &Handle{
		sample:  name,
		keys:    make(map[string]dict.Value),
		missing: make(map[string]bool),
	}, nil
}

func (h *Handle) Has(key string) bool {
	if h.missing[key] {
		return false
	}
	v, ok := h.keys[key]
	return ok && !v.IsMissing()
}

func (h *Handle) Get(key string) (dict.Value, bool) {
	if h.missing[key] {
		return dict.Missing(), true
	}
	v, ok := h.keys[key]
	return v, ok
}

func (h *Handle) Set(key string, v dict.Value) error {
	delete(h.missing, key)
	h.keys[key] = v
	return nil
}

// SetMissing marks a key as explicitly absent (GRIB's "missing" sentinel),
// distinct from the key never having been set at all.
func (h *Handle) SetMissing(key string) error {
	h.missing[key] = true
	delete(h.keys, key)
	return nil
}

// ForceSet writes a key bypassing any type coherence check a future
// stricter Set might apply. The only call sites are in encoder.InjectValues,
// for "bitmapPresent", "missingValue", "bitmap" and the "values" array.
func (h *Handle) ForceSet(key string, v dict.Value) error {
	delete(h.missing, key)
	h.keys[key] = v
	return nil
}

func (h *Handle) Clone() dict.Dict {
	clone := &Handle{
		sample:  h.sample,
		keys:    make(map[string]dict.Value, len(h.keys)),
		missing: make(map[string]bool, len(h.missing)),
	}
	for k, v := range h.keys {
		clone.keys[k] = v
	}
	for k := range h.missing {
		clone.missing[k] = true
	}
	return clone
}

func (h *Handle) ToJSON() string {
	keys := make([]string, 0, len(h.keys))
	for k := range h.keys {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	var b strings.Builder
	b.WriteByte('{')
	for i, k := range keys {
		if i > 0 {
			b.WriteByte(',')
		}
		fmt.Fprintf(&b, "%q:%s", k, h.keys[k].String())
	}
	b.WriteByte('}')
	return b.String()
}

func (h *Handle) GetInt(key string) (int64, bool) {
	v, ok := h.Get(key)
	if !ok {
		return 0, false
	}
	return v.AsLong()
}

func (h *Handle) GetFloat(key string) (float64, bool) {
	v, ok := h.Get(key)
	if !ok {
		return 0, false
	}
	return v.AsDouble()
}

func (h *Handle) GetBool(key string) (bool, bool) {
	v, ok := h.Get(key)
	if !ok {
		return false, false
	}
	return v.AsBool()
}

func (h *Handle) GetString(key string) (string, bool) {
	v, ok := h.Get(key)
	if !ok {
		return "", false
	}
	return v.AsString()
}

func (h *Handle) GetIntOpt(key string, def int64) int64 {
	if v, ok := h.GetInt(key); ok {
		return v
	}
	return def
}

func (h *Handle) GetFloatOpt(key string, def float64) float64 {
	if v, ok := h.GetFloat(key); ok {
		return v
	}
	return def
}

func (h *Handle) GetBoolOpt(key string, def bool) bool {
	if v, ok := h.GetBool(key); ok {
		return v
	}
	return def
}

func (h *Handle) GetStringOpt(key string, def string) string {
	if v, ok := h.GetString(key); ok {
		return v
	}
	return def
}
