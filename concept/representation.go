package concept

import "github.com/ecmwf/metkit-sub000/dict"

// Representation classifies the horizontal grid family directly from the
// MARS "grid" key's conventional forms: truncation => spherical harmonics,
// "N<n>"/"O<n>" => reduced Gaussian, "F<n>" => regular Gaussian. Any other
// grid (such as "<dx>/<dy>" lat/lon increments) or no grid at all gives
// Missing; the matcher never returns ReprRegularLatLon.
const (
	ReprSphericalHarmonics Variant = iota
	ReprRegularGaussian
	ReprReducedGaussian
	ReprRegularLatLon
	nReprVariants
)

var reprVariantNames = []string{
	ReprSphericalHarmonics: "SphericalHarmonics",
	ReprRegularGaussian:    "RegularGaussian",
	ReprReducedGaussian:    "ReducedGaussian",
	ReprRegularLatLon:      "RegularLatLon",
}

func init() {
	register(Representation, reprVariantNames, matchRepresentation)
}

func matchRepresentation(mars, aux, opts dict.Dict) (Variant, error) {
	if mars.Has("truncation") {
		return ReprSphericalHarmonics, nil
	}

	grid, ok := mars.GetString("grid")
	if !ok {
		return Missing, nil
	}

	switch {
	case len(grid) > 0 && grid[0] == 'F':
		return ReprRegularGaussian, nil
	case len(grid) > 0 && (grid[0] == 'N' || grid[0] == 'O'):
		return ReprReducedGaussian, nil
	default:
		// e.g. "1/1", "0.25/0.25" style regular lat/lon increments: this is
		// grid definition template 0's default path, which needs no
		// representation concept of its own, only shapeOfTheEarth.
		return Missing, nil
	}
}
