package encoder

import (
	"math"

	"github.com/ecmwf/metkit-sub000/dict"
	"github.com/ecmwf/metkit-sub000/gribhandle"
	"github.com/ecmwf/metkit-sub000/mgerr"
)

// InjectValues writes the payload array, and optionally a derived bitmap,
// into handle. It rejects a non-unity "values-scale-factor" as
// NotImplemented rather than silently mis-scaling the field.
func InjectValues(values []float64, aux dict.Dict, handle *gribhandle.Handle) error {
	if scale, ok := aux.GetFloat("values-scale-factor"); ok && scale != 1.0 {
		return &mgerr.NotImplemented{Feature: "values-scale-factor != 1.0"}
	}

	bitmapPresent := aux.GetBoolOpt("bitmapPresent", false)
	if err := handle.ForceSet("bitmapPresent", dict.Bool(bitmapPresent)); err != nil {
		return err
	}

	if bitmapPresent {
		missingValue := aux.GetFloatOpt("missingValue", math.Inf(1))
		if err := handle.ForceSet("missingValue", dict.Double(missingValue)); err != nil {
			return err
		}
		if err := handle.ForceSet("bitmap", dict.Bytes(buildBitmap(values, missingValue))); err != nil {
			return err
		}
	}

	return handle.ForceSet("values", dict.DoubleArray(values))
}

// InjectValuesFloat32 widens a float32 payload to float64 before delegating
// to InjectValues.
func InjectValuesFloat32(values []float32, aux dict.Dict, handle *gribhandle.Handle) error {
	widened := make([]float64, len(values))
	for i, v := range values {
		widened[i] = float64(v)
	}
	return InjectValues(widened, aux, handle)
}

func buildBitmap(values []float64, missingValue float64) []byte {
	n := len(values)
	out := make([]byte, (n+7)/8)
	for i, v := range values {
		if v == missingValue {
			continue
		}
		byteIdx := i / 8
		bitOffset := 7 - (i % 8)
		out[byteIdx] |= 1 << uint(bitOffset)
	}
	return out
}
