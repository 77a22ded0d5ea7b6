package resolver

import (
	"fmt"
	"sort"

	"github.com/ecmwf/metkit-sub000/concept"
	"github.com/ecmwf/metkit-sub000/mgerr"
	"github.com/ecmwf/metkit-sub000/recipe"
)

// strategy names the lookup algorithm a selector picked at construction,
// chosen by candidate count: a single candidate short-circuits, small
// tables scan linearly, mid-sized tables binary-search a sorted index, and
// large tables hash.
type strategy int

const (
	strategySingle strategy = iota
	strategyLinear
	strategyBinary
	strategyHash
)

type indexEntry struct {
	key            TemplateSignatureKey
	templateNumber int
}

// SectionTemplateSelector resolves a section's active concepts to a
// template number. It is built once per section at startup and is
// immutable and safe for concurrent reads thereafter.
type SectionTemplateSelector struct {
	sectionID int
	mask      CompressionMask
	entries   []indexEntry
	strategy  strategy
	hashIndex map[TemplateSignatureKey]int
}

// Build constructs the selector for one GRIB2 section from its recipe
// table. Duplicate signature keys (two rows compressing to the same key)
// are a registry error: the recipe table is ambiguous.
func Build(sectionID int) (*SectionTemplateSelector, error) {
	recipes := recipe.ForSection(sectionID)
	if len(recipes) == 0 {
		return nil, &mgerr.RegistryError{
			Registry: "resolver",
			Detail:   fmt.Sprintf("section %d has no recipes", sectionID),
		}
	}

	mask := buildCompressionMask(recipes)
	entries := make([]indexEntry, 0, len(recipes))
	seen := make(map[TemplateSignatureKey]int, len(recipes))

	for _, r := range recipes {
		key := mask.compressRecipe(r)
		if prior, dup := seen[key]; dup {
			return nil, &mgerr.RegistryError{
				Registry: "resolver",
				Detail: fmt.Sprintf("section %d: templates %d and %d share a signature",
					sectionID, prior, r.TemplateNumber),
			}
		}
		seen[key] = r.TemplateNumber
		entries = append(entries, indexEntry{key: key, templateNumber: r.TemplateNumber})
	}

	sel := &SectionTemplateSelector{sectionID: sectionID, mask: mask, entries: entries}

	switch n := len(entries); {
	case n == 1:
		sel.strategy = strategySingle
	case n < 16:
		sel.strategy = strategyLinear
	case n < 256:
		sel.strategy = strategyBinary
		sort.Slice(sel.entries, func(i, j int) bool {
			return sel.entries[i].key.Less(sel.entries[j].key)
		})
	default:
		sel.strategy = strategyHash
		sel.hashIndex = make(map[TemplateSignatureKey]int, n)
		for _, e := range entries {
			sel.hashIndex[e.key] = e.templateNumber
		}
	}

	return sel, nil
}

// Select resolves the template number for an active concept set, returning
// the compressed key too (callers fold it into the section's SectionLayout
// for downstream diagnostics).
func (s *SectionTemplateSelector) Select(active concept.ActiveConcepts) (int, TemplateSignatureKey, error) {
	key := s.mask.CompressActive(active)

	switch s.strategy {
	case strategySingle:
		if s.entries[0].key == key {
			return s.entries[0].templateNumber, key, nil
		}
	case strategyLinear:
		for _, e := range s.entries {
			if e.key == key {
				return e.templateNumber, key, nil
			}
		}
	case strategyBinary:
		i := sort.Search(len(s.entries), func(i int) bool {
			return !s.entries[i].key.Less(key)
		})
		if i < len(s.entries) && s.entries[i].key == key {
			return s.entries[i].templateNumber, key, nil
		}
	case strategyHash:
		if tn, ok := s.hashIndex[key]; ok {
			return tn, key, nil
		}
	}

	return 0, key, &mgerr.ResolutionError{
		Section: s.sectionID,
		Detail:  "no recipe matched the active concept set",
	}
}

// SectionID returns the GRIB2 section number this selector resolves.
func (s *SectionTemplateSelector) SectionID() int { return s.sectionID }
