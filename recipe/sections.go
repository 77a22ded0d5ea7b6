package recipe

// Section0 (Indicator) has a single fixed layout; discipline is always
// written as 0 by the section initializer, so no concept pins it.
var Section0 = []SectionRecipe{
	{TemplateNumber: 0, Concepts: []ConceptSpec{}},
}

// Section1 (Identification) depends on the origin/table/reference-time
// concepts, all of which resolve for every request.
var Section1 = []SectionRecipe{
	{TemplateNumber: 0, Concepts: []ConceptSpec{
		C("origin"), C("tables"), C("referenceTime"), C("dataType"),
	}},
}

// Section2 (Local Use) is driven by the mars concept: every MARS-originated
// request carries local definition 1 ("Standard") unless a more specific
// concept is active — long-range (15), satellite (24), analysis (36), or a
// Destination Earth dataset. The DestinE rows use encoder-specific virtual
// template numbers (1001/1002/1004); the section initializer layer maps
// them onto the real local definition written to the handle.
var Section2 = []SectionRecipe{
	{TemplateNumber: 1, Concepts: []ConceptSpec{C("mars")}},
	{TemplateNumber: 15, Concepts: []ConceptSpec{C("mars"), C("longrange")}},
	{TemplateNumber: 24, Concepts: []ConceptSpec{C("mars"), C("satellite")}},
	{TemplateNumber: 36, Concepts: []ConceptSpec{C("mars"), C("analysis")}},
	{TemplateNumber: 1001, Concepts: []ConceptSpec{C("mars"), C("destine", "ClimateDT")}},
	{TemplateNumber: 1002, Concepts: []ConceptSpec{C("mars"), C("destine", "ExtremesDT")}},
	{TemplateNumber: 1004, Concepts: []ConceptSpec{C("mars"), C("destine", "OnDemandExtremesDT")}},
}

// Section3 (Grid Definition) picks a grid definition template from the
// representation concept's exact variant (representation is structural):
// 0 is regular lat/lon, 40 is Gaussian — regular and reduced share the
// template number, matching GRIB2 Table 3.1, and the encoded payload does
// not distinguish them (no per-parallel point list is written) — and 50
// is spherical harmonic coefficients.
var Section3 = []SectionRecipe{
	{TemplateNumber: 0, Concepts: []ConceptSpec{C("shapeOfTheEarth")}},
	{TemplateNumber: 40, Concepts: []ConceptSpec{C("shapeOfTheEarth"), C("representation", "RegularGaussian")}},
	{TemplateNumber: 40, Concepts: []ConceptSpec{C("shapeOfTheEarth"), C("representation", "ReducedGaussian")}},
	{TemplateNumber: 50, Concepts: []ConceptSpec{C("shapeOfTheEarth"), C("representation", "SphericalHarmonics")}},
}

// Section4 (Product Definition) is the richest table; PDT numbers follow
// GRIB2 Table 4.0.
var Section4 = []SectionRecipe{
	// 0: Analysis or forecast at a horizontal level/layer at a point in time.
	{TemplateNumber: 0, Concepts: []ConceptSpec{
		C("generatingProcess"), C("pointInTime"), C("level"), C("param"),
	}},
	// 1: Individual ensemble forecast, control and perturbed, at a point in
	// time.
	{TemplateNumber: 1, Concepts: []ConceptSpec{
		C("generatingProcess"), C("pointInTime"), C("level"), C("param"), C("ensemble"),
	}},
	// 2: Derived forecast based on all ensemble members at a point in time.
	{TemplateNumber: 2, Concepts: []ConceptSpec{
		C("generatingProcess"), C("pointInTime"), C("level"), C("param"), C("derived"),
	}},
	// 8: Average, accumulation, extreme values or other statistically
	// processed values over a time interval.
	{TemplateNumber: 8, Concepts: []ConceptSpec{
		C("generatingProcess"), C("statistics"), C("level"), C("param"),
	}},
	// 11: Individual ensemble forecast, statistically processed over a time
	// interval.
	{TemplateNumber: 11, Concepts: []ConceptSpec{
		C("generatingProcess"), C("statistics"), C("level"), C("param"), C("ensemble"),
	}},
	// 12: Derived forecast, statistically processed over a time interval.
	{TemplateNumber: 12, Concepts: []ConceptSpec{
		C("generatingProcess"), C("statistics"), C("level"), C("param"), C("derived"),
	}},
	// 40: Analysis or forecast for atmospheric chemical constituents.
	{TemplateNumber: 40, Concepts: []ConceptSpec{
		C("generatingProcess"), C("pointInTime"), C("level"), C("composition"), C("param"),
	}},
	// 42: Average, accumulation and extreme values for atmospheric chemical
	// constituents.
	{TemplateNumber: 42, Concepts: []ConceptSpec{
		C("generatingProcess"), C("statistics"), C("level"), C("composition"), C("param"),
	}},
	// 99: Ocean wave (spectra) parameters.
	{TemplateNumber: 99, Concepts: []ConceptSpec{
		C("generatingProcess"), C("pointInTime"), C("param"), C("wave"),
	}},
}

// Section5 (Data Representation) selects the packing template; packing is
// structural, so each row pins the exact packing variant it encodes.
var Section5 = []SectionRecipe{
	{TemplateNumber: 0, Concepts: []ConceptSpec{C("packing", "Simple")}},
	{TemplateNumber: 42, Concepts: []ConceptSpec{C("packing", "CCSDS")}},
}
