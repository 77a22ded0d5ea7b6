// Package plan flattens a resolved layout.HeaderLayout into an
// EncodingPlan: a fixed-capacity, per-stage, per-section list of callbacks
// that write GRIB keys into the handle under construction. Splitting
// construction (layout + plan, done once) from execution (walking the
// plan, done per encode call) is what lets a SpecializedEncoder be reused
// across many encode() calls without re-running concept classification or
// template resolution each time.
package plan

import (
	"github.com/ecmwf/metkit-sub000/concept"
	"github.com/ecmwf/metkit-sub000/dict"
	"github.com/ecmwf/metkit-sub000/layout"
)

// NStages is the number of sequential encoding phases a plan executes.
// Between stages the handle is cloned to discard any transient state the
// previous stage's callbacks left behind.
const NStages = 4

// Callback writes one concept's contribution to the active handle. mars/par
// carry the request and auxiliary metadata; opts carries encoder options;
// handle is the GRIB dictionary under construction.
type Callback func(mars, par, opts dict.Dict, handle dict.Dict) error

// Cell is one scheduled unit of work: which concept/variant produced this
// callback, kept for error context, plus the callback itself.
type Cell struct {
	Concept  concept.ID
	Variant  concept.Variant
	Section  int
	Callback Callback
}

// EncodingPlan is the flattened, fixed-capacity schedule a
// SpecializedEncoder walks on every encode() call: Stages[s][section] lists
// the callbacks that run, in order, for that section during stage s.
type EncodingPlan struct {
	Stages [NStages][layout.NSections][]Cell
}

// stageOf assigns each concept to one of the four sequential stages. The
// order follows section dependency: identification-level concepts first,
// then grid/representation, then product definition, then data
// representation/packing, so a later stage's callback can rely on an
// earlier stage's handle keys already being set.
func stageOf(c concept.ID) int {
	switch c {
	case concept.Origin, concept.Tables, concept.ReferenceTime, concept.DataType, concept.Mars, concept.Destine:
		return 0
	case concept.Representation, concept.ShapeOfTheEarth:
		return 1
	case concept.GeneratingProcess, concept.PointInTime, concept.Level, concept.Param,
		concept.Statistics, concept.Ensemble, concept.Derived, concept.Wave,
		concept.Composition, concept.LongRange, concept.Satellite, concept.Analysis:
		return 2
	case concept.Packing:
		return 3
	default:
		return 2
	}
}

// sectionOf assigns each concept to the GRIB2 section its callback writes
// into, for Cell bookkeeping and error context; each concept is scheduled
// under exactly one section.
func sectionOf(c concept.ID) int {
	switch c {
	case concept.Origin, concept.Tables, concept.ReferenceTime, concept.DataType:
		return 1
	case concept.Destine:
		return 2
	case concept.Representation, concept.ShapeOfTheEarth:
		return 3
	case concept.Packing:
		return 5
	default:
		return 4
	}
}

// Build flattens a resolved header layout into an executable plan, looking
// up each active concept's registered callback. A concept with no
// registered callback (Nil, or one that resolved to Missing) contributes
// no cell.
func Build(hl *layout.HeaderLayout) *EncodingPlan {
	p := &EncodingPlan{}
	for s := range p.Stages {
		for sec := range p.Stages[s] {
			p.Stages[s][sec] = make([]Cell, 0, concept.NConcepts)
		}
	}

	for c := concept.ID(0); c < concept.NConcepts; c++ {
		v := hl.Active[c]
		if v == concept.Missing {
			continue
		}
		cb, ok := callbackFor(c)
		if !ok {
			continue
		}
		stage := stageOf(c)
		section := sectionOf(c)
		cell := Cell{Concept: c, Variant: v, Section: section, Callback: cb}
		p.Stages[stage][section] = append(p.Stages[stage][section], cell)
	}

	return p
}
