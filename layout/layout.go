// Package layout assembles a HeaderLayout: the resolved template number and
// active concept set for every GRIB2 section, computed once per encode call
// and then reused for the lifetime of a SpecializedEncoder built from it.
package layout

import (
	"github.com/ecmwf/metkit-sub000/concept"
	"github.com/ecmwf/metkit-sub000/dict"
	"github.com/ecmwf/metkit-sub000/mgerr"
	"github.com/ecmwf/metkit-sub000/resolver"
)

// NSections is the number of GRIB2 sections a header layout resolves a
// template for (0 through 5; sections 6-8 have no template variability).
const NSections = 6

var selectors [NSections]*resolver.SectionTemplateSelector

func init() {
	for s := 0; s < NSections; s++ {
		sel, err := resolver.Build(s)
		if err != nil {
			panic(err)
		}
		selectors[s] = sel
	}
}

// SectionLayout is one section's resolved template number, the compressed
// signature key that produced it, and the full active concept set (carried
// for encoding-plan construction, which needs per-concept variants beyond
// what the compressed key retains).
type SectionLayout struct {
	SectionID      int
	TemplateNumber int
	Key            resolver.TemplateSignatureKey
	Active         concept.ActiveConcepts
}

// HeaderLayout is the fully resolved structural description of a GRIB2
// message header: one SectionLayout per section, all sharing the same
// active concept set.
type HeaderLayout struct {
	Sections [NSections]SectionLayout
	Active   concept.ActiveConcepts
}

// Build classifies the request once (concept.MatchAll) and resolves every
// section's template number from the shared active concept set.
func Build(mars, aux, opts dict.Dict) (*HeaderLayout, error) {
	active, err := concept.MatchAll(mars, aux, opts)
	if err != nil {
		return nil, mgerr.Wrap("layout: concept classification failed", err)
	}

	var hl HeaderLayout
	hl.Active = active

	for s := 0; s < NSections; s++ {
		tn, key, err := selectors[s].Select(active)
		if err != nil {
			return nil, mgerr.Wrap("layout: section template resolution failed", err)
		}
		hl.Sections[s] = SectionLayout{
			SectionID:      s,
			TemplateNumber: tn,
			Key:            key,
			Active:         active,
		}
	}

	return &hl, nil
}
