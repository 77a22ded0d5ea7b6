// Package dict provides a uniform, type-checked view over the heterogeneous
// key-value stores the encoder consumes: the MARS request, auxiliary
// parameter metadata, encoder options, and the GRIB handle itself.
package dict

import "fmt"

// Kind identifies the native representation backing a Value.
type Kind uint8

const (
	KindMissing Kind = iota
	KindUndefined
	KindLong
	KindDouble
	KindString
	KindBytes
	KindLongArray
	KindDoubleArray
	KindFloatArray
	KindStringArray
	KindByteArray
)

func (k Kind) String() string {
	switch k {
	case KindMissing:
		return "Missing"
	case KindUndefined:
		return "Undefined"
	case KindLong:
		return "Long"
	case KindDouble:
		return "Double"
	case KindString:
		return "String"
	case KindBytes:
		return "Bytes"
	case KindLongArray:
		return "LongArray"
	case KindDoubleArray:
		return "DoubleArray"
	case KindFloatArray:
		return "FloatArray"
	case KindStringArray:
		return "StringArray"
	case KindByteArray:
		return "ByteArray"
	default:
		return "Unknown"
	}
}

// Value is the sum type shared by every dictionary backend: MARS requests,
// auxiliary metadata, options, and GRIB handles all store and retrieve
// Values, differing only in which Kinds they accept.
type Value struct {
	kind   Kind
	long   int64
	dbl    float64
	str    string
	bytes  []byte
	longs  []int64
	dbls   []float64
	floats []float32
	strs   []string
}

func Missing() Value   { return Value{kind: KindMissing} }
func Undefined() Value { return Value{kind: KindUndefined} }
func Long(v int64) Value { return Value{kind: KindLong, long: v} }
func Bool(v bool) Value {
	if v {
		return Long(1)
	}
	return Long(0)
}
func Double(v float64) Value   { return Value{kind: KindDouble, dbl: v} }
func String(v string) Value    { return Value{kind: KindString, str: v} }
func Bytes(v []byte) Value     { return Value{kind: KindBytes, bytes: v} }
func LongArray(v []int64) Value   { return Value{kind: KindLongArray, longs: v} }
func DoubleArray(v []float64) Value { return Value{kind: KindDoubleArray, dbls: v} }
func FloatArray(v []float32) Value  { return Value{kind: KindFloatArray, floats: v} }
func StringArray(v []string) Value  { return Value{kind: KindStringArray, strs: v} }
func ByteArray(v []byte) Value      { return Value{kind: KindByteArray, bytes: v} }

func (v Value) Kind() Kind { return v.kind }
func (v Value) IsMissing() bool { return v.kind == KindMissing }

func (v Value) AsLong() (int64, bool) {
	if v.kind != KindLong {
		return 0, false
	}
	return v.long, true
}

func (v Value) AsDouble() (float64, bool) {
	switch v.kind {
	case KindDouble:
		return v.dbl, true
	case KindLong:
		return float64(v.long), true
	default:
		return 0, false
	}
}

func (v Value) AsBool() (bool, bool) {
	if v.kind != KindLong {
		return false, false
	}
	return v.long != 0, true
}

func (v Value) AsString() (string, bool) {
	if v.kind != KindString {
		return "", false
	}
	return v.str, true
}

func (v Value) AsBytes() ([]byte, bool) {
	if v.kind != KindBytes && v.kind != KindByteArray {
		return nil, false
	}
	return v.bytes, true
}

func (v Value) AsLongArray() ([]int64, bool) {
	if v.kind != KindLongArray {
		return nil, false
	}
	return v.longs, true
}

func (v Value) AsDoubleArray() ([]float64, bool) {
	if v.kind != KindDoubleArray {
		return nil, false
	}
	return v.dbls, true
}

func (v Value) AsFloatArray() ([]float32, bool) {
	if v.kind != KindFloatArray {
		return nil, false
	}
	return v.floats, true
}

func (v Value) AsStringArray() ([]string, bool) {
	if v.kind != KindStringArray {
		return nil, false
	}
	return v.strs, true
}

// String renders a diagnostic representation, used by ToJSON implementations
// and error context; never used on a hot path.
func (v Value) String() string {
	switch v.kind {
	case KindMissing:
		return "null"
	case KindUndefined:
		return "undefined"
	case KindLong:
		return fmt.Sprintf("%d", v.long)
	case KindDouble:
		return fmt.Sprintf("%g", v.dbl)
	case KindString:
		return fmt.Sprintf("%q", v.str)
	case KindBytes, KindByteArray:
		return fmt.Sprintf("<%d bytes>", len(v.bytes))
	case KindLongArray:
		return fmt.Sprintf("%v", v.longs)
	case KindDoubleArray:
		return fmt.Sprintf("%v", v.dbls)
	case KindFloatArray:
		return fmt.Sprintf("%v", v.floats)
	case KindStringArray:
		return fmt.Sprintf("%v", v.strs)
	default:
		return "?"
	}
}
