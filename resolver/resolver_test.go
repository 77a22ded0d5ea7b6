package resolver_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ecmwf/metkit-sub000/concept"
	"github.com/ecmwf/metkit-sub000/recipe"
	"github.com/ecmwf/metkit-sub000/resolver"
)

// TestSingleCandidateSection: a section whose recipe table has exactly one
// row resolves via the direct-compare strategy and always succeeds
// regardless of which concepts are active.
func TestSingleCandidateSection(t *testing.T) {
	require.Len(t, recipe.Section0, 1)

	sel, err := resolver.Build(0)
	require.NoError(t, err)
	assert.Equal(t, 0, sel.SectionID())

	var active concept.ActiveConcepts
	for i := range active {
		active[i] = concept.Missing
	}

	tn, _, err := sel.Select(active)
	require.NoError(t, err)
	assert.Equal(t, 0, tn)
}

// TestSection4LinearStrategyDisambiguatesByPresence exercises the
// compression-mask logic that lets two section4 rows sharing every concept
// except one ("ensemble") be told apart purely by whether that concept is
// active, without pinning its exact variant.
func TestSection4LinearStrategyDisambiguatesByPresence(t *testing.T) {
	sel, err := resolver.Build(4)
	require.NoError(t, err)

	var deterministic concept.ActiveConcepts
	for i := range deterministic {
		deterministic[i] = concept.Missing
	}
	deterministic[concept.GeneratingProcess] = concept.Global(concept.GeneratingProcess, concept.GenProcDeterministic)
	deterministic[concept.PointInTime] = concept.Global(concept.PointInTime, concept.PointInTimeDefault)
	deterministic[concept.Level] = concept.Global(concept.Level, concept.LevelSurface)
	deterministic[concept.Param] = concept.Global(concept.Param, concept.ParamDefault)

	tn, _, err := sel.Select(deterministic)
	require.NoError(t, err)
	assert.Equal(t, 0, tn)

	ensemble := deterministic
	ensemble[concept.GeneratingProcess] = concept.Global(concept.GeneratingProcess, concept.GenProcEnsemble)
	ensemble[concept.Ensemble] = concept.Global(concept.Ensemble, concept.EnsemblePerturbedParameters)

	tn, _, err = sel.Select(ensemble)
	require.NoError(t, err)
	assert.Equal(t, 1, tn)
}

// TestNoMatchingRecipeErrors: an active concept set with no active concepts
// at all satisfies no section4 row (every row requires at least
// generatingProcess+param) and surfaces a ResolutionError.
func TestNoMatchingRecipeErrors(t *testing.T) {
	sel, err := resolver.Build(4)
	require.NoError(t, err)

	var empty concept.ActiveConcepts
	for i := range empty {
		empty[i] = concept.Missing
	}

	_, _, err = sel.Select(empty)
	require.Error(t, err)
}

// TestStructuralPackingVariantSelectsTemplate covers section5, where the
// packing concept is structural: its exact variant (not mere presence)
// determines the data representation template number.
func TestStructuralPackingVariantSelectsTemplate(t *testing.T) {
	sel, err := resolver.Build(5)
	require.NoError(t, err)

	var simple concept.ActiveConcepts
	for i := range simple {
		simple[i] = concept.Missing
	}
	simple[concept.Packing] = concept.Global(concept.Packing, concept.PackingSimple)

	tn, _, err := sel.Select(simple)
	require.NoError(t, err)
	assert.Equal(t, 0, tn)

	ccsds := simple
	ccsds[concept.Packing] = concept.Global(concept.Packing, concept.PackingCCSDS)

	tn, _, err = sel.Select(ccsds)
	require.NoError(t, err)
	assert.Equal(t, 42, tn)
}
