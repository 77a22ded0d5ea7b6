package mars2grib

import (
	"regexp"
	"strconv"
	"strings"

	"github.com/ecmwf/metkit-sub000/dict"
)

// marsAliases maps legacy MARS keyword spellings onto the canonical short
// forms classification runs against.
var marsAliases = map[string]map[string]string{
	"class": {"o": "od", "odesk": "od", "research": "rd"},
	"type":  {"forecast": "fc", "analysis": "an", "controlforecast": "cf", "perturbedforecast": "pf"},
	"levtype": {
		"surface":     "sfc",
		"pressurelevel": "pl",
		"modellevel":  "ml",
		"hybridlevel": "ml",
	},
}

// legacyGridPattern matches the legacy LxxxxXnnn / Lnnnxnnn grid spec
// fixMarsGrid rewrites into the "dLon/dLat" increment form.
var legacyGridPattern = regexp.MustCompile(`(?i)^L(\d+)X(\d+)$`)

// sanitizeMarsDict lower-cases the values of the keys in marsAliases and
// resolves them through that table; keys and other values are not touched.
// It mutates a clone, never the original.
func sanitizeMarsDict(mars dict.Dict) dict.Dict {
	clone := mars.Clone()
	applyAliases(clone)
	return clone
}

func applyAliases(d dict.Dict) {
	md, ok := d.(*dict.MarsDict)
	if !ok {
		return
	}
	for key, table := range marsAliases {
		v, ok := md.GetString(key)
		if !ok {
			continue
		}
		folded := strings.ToLower(v)
		if canonical, ok := table[folded]; ok {
			md.Set(key, dict.String(canonical))
		} else {
			md.Set(key, dict.String(folded))
		}
	}
}

// sanitizeMiscDict is the aux-dict counterpart of sanitizeMarsDict; it
// returns a clone of aux with no case folding or alias resolution.
func sanitizeMiscDict(aux dict.Dict) dict.Dict {
	return aux.Clone()
}

// fixMarsGrid rewrites a legacy "L<dx>X<dy>" grid spec into the
// "dx/dy"-increment convention the representation matcher expects,
// converting the legacy fixed-point hundredths-of-a-degree encoding.
func fixMarsGrid(mars dict.Dict) dict.Dict {
	grid, ok := mars.GetString("grid")
	if !ok {
		return mars
	}
	m := legacyGridPattern.FindStringSubmatch(grid)
	if m == nil {
		return mars
	}

	dx, err1 := strconv.ParseFloat(m[1], 64)
	dy, err2 := strconv.ParseFloat(m[2], 64)
	if err1 != nil || err2 != nil {
		return mars
	}

	clone := mars.Clone()
	md, ok := clone.(*dict.MarsDict)
	if !ok {
		return mars
	}
	rewritten := strconv.FormatFloat(dx/100, 'g', -1, 64) + "/" + strconv.FormatFloat(dy/100, 'g', -1, 64)
	md.Set("grid", dict.String(rewritten))
	return clone
}
