// Package concept implements the classification layer: each concept (level,
// param, statistics, ...) maps an active MARS request plus options onto one
// of a small, fixed set of variants via a matcher function. Variants across
// all concepts share a single dense global numbering so the resolver and
// plan builder can index them in flat arrays without per-message
// allocation; the dense numbering is produced once at init() time and is
// immutable afterwards.
package concept

import "github.com/ecmwf/metkit-sub000/dict"

// ID names one of the fixed set of concepts recipes can reference.
type ID int

const (
	Level ID = iota
	Param
	Statistics
	GeneratingProcess
	Ensemble
	Representation
	Packing
	Wave
	Composition
	Origin
	ReferenceTime
	DataType
	Tables
	Mars
	Nil
	LongRange
	Satellite
	Analysis
	Destine
	ShapeOfTheEarth
	PointInTime
	Derived

	NConcepts
)

var conceptNames = [NConcepts]string{
	Level:             "level",
	Param:             "param",
	Statistics:        "statistics",
	GeneratingProcess: "generatingProcess",
	Ensemble:          "ensemble",
	Representation:    "representation",
	Packing:           "packing",
	Wave:              "wave",
	Composition:       "composition",
	Origin:            "origin",
	ReferenceTime:     "referenceTime",
	DataType:          "dataType",
	Tables:            "tables",
	Mars:              "mars",
	Nil:               "nil",
	LongRange:         "longrange",
	Satellite:         "satellite",
	Analysis:          "analysis",
	Destine:           "destine",
	ShapeOfTheEarth:   "shapeOfTheEarth",
	PointInTime:       "pointInTime",
	Derived:           "derived",
}

func (c ID) String() string {
	if c < 0 || int(c) >= len(conceptNames) {
		return "unknown"
	}
	return conceptNames[c]
}

// ByName resolves a recipe's ConceptSpec.Name back to an ID.
func ByName(name string) (ID, bool) {
	for i, n := range conceptNames {
		if n == name {
			return ID(i), true
		}
	}
	return -1, false
}

// Variant is a global, dense index across every concept's variant space:
// Variant 0 is concept Level's first variant, and so on, so the resolver's
// TemplateSignatureKey can store plain integers instead of (concept,
// local-id) pairs.
type Variant int

// Missing is the sentinel a matcher returns when a concept does not apply
// to the active request (e.g. "wave" for a surface parameter).
const Missing Variant = -1

// Matcher classifies an active MARS request (plus auxiliary metadata and
// options) into one of the concept's variants, or Missing if the concept
// does not apply. A matcher may return an error only for a malformed or
// genuinely ambiguous request; "concept not applicable" must use Missing,
// never an error.
type Matcher func(mars dict.Dict, aux dict.Dict, opts dict.Dict) (Variant, error)

type registration struct {
	concept      ID
	offset       Variant
	variantNames []string
	matcher      Matcher
}

var registry [NConcepts]registration
var totalVariants Variant

func register(c ID, names []string, m Matcher) {
	registry[c] = registration{
		concept:      c,
		offset:       totalVariants,
		variantNames: names,
		matcher:      m,
	}
	totalVariants += Variant(len(names))
}

// Offset returns the global variant index of concept c's first (zeroth)
// local variant; used by the resolver to translate a matcher's local result
// into the dense global space the TemplateSignatureKey stores.
func Offset(c ID) Variant {
	return registry[c].offset
}

// Global translates a concept-local variant index into the dense global
// numbering. Matchers return local indices (e.g. Level's "Surface" is
// always local index 0); callers resolving layouts use Global to compare
// across concepts.
func Global(c ID, local Variant) Variant {
	if local == Missing {
		return Missing
	}
	return registry[c].offset + local
}

// VariantName renders a global variant index back to a human string for
// diagnostics, e.g. "level:IsobaricInHpa".
func VariantName(v Variant) string {
	if v == Missing {
		return "Missing"
	}
	for _, r := range registry {
		n := Variant(len(r.variantNames))
		if v >= r.offset && v < r.offset+n {
			return r.concept.String() + ":" + r.variantNames[v-r.offset]
		}
	}
	return "unknown"
}

// TotalVariants returns the size of the dense global variant space, used to
// size fixed-capacity arrays in the resolver.
func TotalVariants() Variant {
	return totalVariants
}

// LocalOf converts a global variant index back to its concept-local index,
// the inverse of Global.
func LocalOf(c ID, v Variant) Variant {
	if v == Missing {
		return Missing
	}
	return v - registry[c].offset
}

// VariantByName resolves a concept-local variant name (e.g. "CCSDS" within
// Packing) to its global index, for recipes that pin a structural concept
// to one specific variant.
func VariantByName(c ID, name string) (Variant, bool) {
	r := registry[c]
	for i, n := range r.variantNames {
		if n == name {
			return r.offset + Variant(i), true
		}
	}
	return Missing, false
}

// Match runs concept c's registered matcher and returns a global variant.
func Match(c ID, mars, aux, opts dict.Dict) (Variant, error) {
	r := registry[c]
	if r.matcher == nil {
		return Missing, nil
	}
	local, err := r.matcher(mars, aux, opts)
	if err != nil {
		return Missing, err
	}
	if local == Missing {
		return Missing, nil
	}
	return r.offset + local, nil
}

// ActiveConcepts is the result of matching every registered concept against
// one request: a fixed-size array indexed by ID, holding Missing where a
// concept does not apply.
type ActiveConcepts [NConcepts]Variant

// MatchAll runs every registered concept's matcher against the request.
func MatchAll(mars, aux, opts dict.Dict) (ActiveConcepts, error) {
	var active ActiveConcepts
	for c := ID(0); c < NConcepts; c++ {
		v, err := Match(c, mars, aux, opts)
		if err != nil {
			return active, err
		}
		active[c] = v
	}
	return active, nil
}
