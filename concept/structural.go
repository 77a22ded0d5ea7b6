package concept

// structural concepts discriminate which section template/recipe applies by
// their exact variant (e.g. whether packing is Simple vs CCSDS selects
// section 5 template 0 vs 42); presence-only concepts merely need to be
// active for a recipe row to apply — which exact variant they took (e.g.
// Accumulation vs Average within statistics) does not change template
// selection, only the field values a later callback writes.
var structural = map[ID]bool{
	Packing:        true,
	Representation: true,
	Destine:        true,
}

// IsStructural reports whether concept c's exact matched variant (rather
// than mere presence) participates in section template signature matching.
func IsStructural(c ID) bool {
	return structural[c]
}
