package resolver

import (
	"github.com/ecmwf/metkit-sub000/concept"
	"github.com/ecmwf/metkit-sub000/recipe"
)

// present is the compressed value a non-structural concept takes when
// active; it is chosen far outside the dense global variant space so it
// can never collide with a real concept.Global(...) value.
const present concept.Variant = 1 << 30

// CompressionMask fixes, per section, the ordered set of concepts that
// participate in template selection and strips every other concept before
// comparing keys; concepts irrelevant to a section's structure never reach
// its lookup.
type CompressionMask struct {
	concepts []concept.ID
}

func buildCompressionMask(recipes []recipe.SectionRecipe) CompressionMask {
	seen := make(map[concept.ID]bool)
	var ordered []concept.ID
	for _, r := range recipes {
		for _, cs := range r.Concepts {
			if !seen[cs.Concept] {
				seen[cs.Concept] = true
				ordered = append(ordered, cs.Concept)
			}
		}
	}
	return CompressionMask{concepts: ordered}
}

func findSpec(specs []recipe.ConceptSpec, c concept.ID) (recipe.ConceptSpec, bool) {
	for _, s := range specs {
		if s.Concept == c {
			return s, true
		}
	}
	return recipe.ConceptSpec{}, false
}

// compressRecipe builds the key a recipe row expects: Missing for concepts
// the row doesn't list, an exact pinned variant for structural concepts,
// and the present sentinel for non-structural concepts it requires.
func (m CompressionMask) compressRecipe(r recipe.SectionRecipe) TemplateSignatureKey {
	var key TemplateSignatureKey
	key.size = uint16(len(m.concepts))
	for i, c := range m.concepts {
		spec, listed := findSpec(r.Concepts, c)
		switch {
		case !listed:
			key.data[i] = concept.Missing
		case concept.IsStructural(c):
			v, _ := concept.VariantByName(c, spec.Variant)
			key.data[i] = v
		default:
			key.data[i] = present
		}
	}
	return key
}

// CompressActive builds the key a classified request produces, using the
// same column order and present/Missing/exact-variant encoding as
// compressRecipe so the two are directly comparable.
func (m CompressionMask) CompressActive(active concept.ActiveConcepts) TemplateSignatureKey {
	var key TemplateSignatureKey
	key.size = uint16(len(m.concepts))
	for i, c := range m.concepts {
		v := active[c]
		switch {
		case v == concept.Missing:
			key.data[i] = concept.Missing
		case concept.IsStructural(c):
			key.data[i] = v
		default:
			key.data[i] = present
		}
	}
	return key
}
