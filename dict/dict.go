package dict

import (
	"fmt"
	"sort"
	"strings"
)

// Dict is the uniform read/write contract shared by every dictionary the
// encoder touches: MARS requests, auxiliary parameter metadata, options, and
// (via gribhandle.Handle) the GRIB message under construction.
type Dict interface {
	Has(key string) bool
	Get(key string) (Value, bool)
	Set(key string, v Value) error
	Clone() Dict
	ToJSON() string

	GetInt(key string) (int64, bool)
	GetFloat(key string) (float64, bool)
	GetBool(key string) (bool, bool)
	GetString(key string) (string, bool)

	GetIntOpt(key string, def int64) int64
	GetFloatOpt(key string, def float64) float64
	GetBoolOpt(key string, def bool) bool
	GetStringOpt(key string, def string) string
}

// plain is a minimal map-backed Dict; MarsDict, AuxDict and OptionsDict embed
// it and add domain-specific constructors and accessors.
type plain struct {
	values map[string]Value
}

func newPlain() plain {
	return plain{values: make(map[string]Value)}
}

func (d plain) Has(key string) bool {
	v, ok := d.values[key]
	return ok && !v.IsMissing()
}

func (d plain) Get(key string) (Value, bool) {
	v, ok := d.values[key]
	return v, ok
}

func (d *plain) Set(key string, v Value) error {
	if d.values == nil {
		d.values = make(map[string]Value)
	}
	d.values[key] = v
	return nil
}

func (d plain) cloneMap() map[string]Value {
	out := make(map[string]Value, len(d.values))
	for k, v := range d.values {
		out[k] = v
	}
	return out
}

func (d plain) ToJSON() string {
	keys := make([]string, 0, len(d.values))
	for k := range d.values {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	var b strings.Builder
	b.WriteByte('{')
	for i, k := range keys {
		if i > 0 {
			b.WriteByte(',')
		}
		fmt.Fprintf(&b, "%q:%s", k, jsonValue(d.values[k]))
	}
	b.WriteByte('}')
	return b.String()
}

func jsonValue(v Value) string {
	switch v.Kind() {
	case KindString:
		s, _ := v.AsString()
		return fmt.Sprintf("%q", s)
	case KindLong:
		n, _ := v.AsLong()
		return fmt.Sprintf("%d", n)
	case KindDouble:
		f, _ := v.AsDouble()
		return fmt.Sprintf("%g", f)
	case KindMissing:
		return "null"
	default:
		return fmt.Sprintf("%q", v.String())
	}
}

func (d plain) GetInt(key string) (int64, bool) {
	v, ok := d.values[key]
	if !ok {
		return 0, false
	}
	return v.AsLong()
}

func (d plain) GetFloat(key string) (float64, bool) {
	v, ok := d.values[key]
	if !ok {
		return 0, false
	}
	return v.AsDouble()
}

func (d plain) GetBool(key string) (bool, bool) {
	v, ok := d.values[key]
	if !ok {
		return false, false
	}
	return v.AsBool()
}

func (d plain) GetString(key string) (string, bool) {
	v, ok := d.values[key]
	if !ok {
		return "", false
	}
	return v.AsString()
}

func (d plain) GetIntOpt(key string, def int64) int64 {
	if v, ok := d.GetInt(key); ok {
		return v
	}
	return def
}

func (d plain) GetFloatOpt(key string, def float64) float64 {
	if v, ok := d.GetFloat(key); ok {
		return v
	}
	return def
}

func (d plain) GetBoolOpt(key string, def bool) bool {
	if v, ok := d.GetBool(key); ok {
		return v
	}
	return def
}

func (d plain) GetStringOpt(key string, def string) string {
	if v, ok := d.GetString(key); ok {
		return v
	}
	return def
}

// MarsDict holds the MARS retrieval-language request keys (param, levtype,
// levelist, stream, type, ...) that drive concept matching.
type MarsDict struct {
	plain
}

func NewMarsDict() *MarsDict {
	return &MarsDict{plain: newPlain()}
}

func (d *MarsDict) Clone() Dict {
	return &MarsDict{plain: plain{values: d.cloneMap()}}
}

// AuxDict holds parameter/miscellaneous metadata that rides alongside the
// MARS request but is not itself part of the retrieval language: bitmap
// presence, missing-value overrides, generating-process metadata, and so on.
type AuxDict struct {
	plain
}

func NewAuxDict() *AuxDict {
	return &AuxDict{plain: newPlain()}
}

func (d *AuxDict) Clone() Dict {
	return &AuxDict{plain: plain{values: d.cloneMap()}}
}

// OptionsDict is a read-only adapter exposing mars2grib.Options as a Dict so
// concept matchers and recipes can query options uniformly alongside MARS
// and auxiliary keys. Set always fails: options are fixed for the lifetime
// of an encode call.
type OptionsDict struct {
	plain
}

func NewOptionsDict(values map[string]Value) *OptionsDict {
	return &OptionsDict{plain: plain{values: values}}
}

func (d *OptionsDict) Clone() Dict {
	return &OptionsDict{plain: plain{values: d.cloneMap()}}
}

func (d *OptionsDict) Set(string, Value) error {
	return fmt.Errorf("dict: OptionsDict is read-only")
}
