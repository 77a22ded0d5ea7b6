package concept

import (
	"fmt"

	"github.com/ecmwf/metkit-sub000/dict"
	"github.com/ecmwf/metkit-sub000/mgerr"
)

// getOrThrow fetches a required MARS key: one that, if absent, makes the
// request impossible to classify.
func getOrThrow[T any](mars dict.Dict, key string, get func(dict.Dict, string) (T, bool)) (T, error) {
	v, ok := get(mars, key)
	if !ok {
		var zero T
		return zero, &mgerr.DictError{Dict: "mars", Key: key, Kind: fmt.Sprintf("%T", zero)}
	}
	return v, nil
}

func getStringOrThrow(mars dict.Dict, key string) (string, error) {
	return getOrThrow(mars, key, dict.Dict.GetString)
}

func getIntOrThrow(mars dict.Dict, key string) (int64, error) {
	return getOrThrow(mars, key, dict.Dict.GetInt)
}

// paramRange is a half-open [lo, hi) interval of MARS param ids.
type paramRange struct{ lo, hi int64 }

func rng(lo, hi int64) paramRange { return paramRange{lo: lo, hi: hi} }

func (r paramRange) contains(p int64) bool { return p >= r.lo && p < r.hi }

// matchAny reports whether param equals any literal in ids or falls inside
// any of ranges.
func matchAny(param int64, ids []int64, ranges ...paramRange) bool {
	for _, id := range ids {
		if param == id {
			return true
		}
	}
	for _, r := range ranges {
		if r.contains(param) {
			return true
		}
	}
	return false
}

func hasAll(d dict.Dict, keys ...string) bool {
	for _, k := range keys {
		if !d.Has(k) {
			return false
		}
	}
	return true
}
