// Package recipe declares, per GRIB2 section, the fixed table mapping a
// template number onto the ordered set of concepts that section's encoding
// depends on. Recipes are pure data: the resolver package turns them into
// searchable SectionTemplateSelectors once at startup.
package recipe

import "github.com/ecmwf/metkit-sub000/concept"

// ConceptSpec names one concept a section template depends on, and, for
// structural concepts (concept.IsStructural), the specific variant this
// template row requires. Non-structural concepts only need to be present;
// Variant is ignored for them.
type ConceptSpec struct {
	Concept concept.ID
	Variant string
}

// C builds a ConceptSpec from a concept name, optionally pinning a specific
// variant name for structural concepts (e.g. C("packing", "CCSDS")).
// Panics on an unknown name/variant since recipe tables are built once at
// init() time from literal constants.
func C(name string, variant ...string) ConceptSpec {
	id, ok := concept.ByName(name)
	if !ok {
		panic("recipe: unknown concept " + name)
	}
	spec := ConceptSpec{Concept: id}
	if len(variant) > 0 {
		spec.Variant = variant[0]
		if _, ok := concept.VariantByName(id, spec.Variant); !ok {
			panic("recipe: unknown variant " + spec.Variant + " for concept " + name)
		}
	}
	return spec
}

// SectionRecipe is one row of a section's recipe table: a GRIB template
// number and the ordered concepts whose classification determines whether
// this row applies to a given request.
type SectionRecipe struct {
	TemplateNumber int
	Concepts       []ConceptSpec
}

// ForSection returns the recipe table for a GRIB2 section number (0-5).
func ForSection(sectionID int) []SectionRecipe {
	switch sectionID {
	case 0:
		return Section0
	case 1:
		return Section1
	case 2:
		return Section2
	case 3:
		return Section3
	case 4:
		return Section4
	case 5:
		return Section5
	default:
		return nil
	}
}
