// Package resolver turns a section's recipe table into a
// SectionTemplateSelector: a structure built once at startup that maps an
// active concept set onto the GRIB template number that section should use,
// choosing among four lookup strategies based on how many distinct
// templates the section supports.
package resolver

import "github.com/ecmwf/metkit-sub000/concept"

// maxSignatureSize bounds a TemplateSignatureKey's capacity; it must be at
// least as large as the widest section recipe's concept count. No section
// recipe approaches NConcepts, but sizing to it keeps the bound obviously
// sufficient without per-section tuning.
const maxSignatureSize = int(concept.NConcepts)

// TemplateSignatureKey is a fixed-capacity, ordered array of compressed
// per-concept values: a section's CompressionMask determines column order
// once, and every key for that section (recipe-derived or request-derived)
// shares it. Being a plain comparable Go value (fixed array + length), it
// can be used directly as a map key or compared with ==.
type TemplateSignatureKey struct {
	data [maxSignatureSize]concept.Variant
	size uint16
}

// Less implements the lexicographic, shorter-prefix-first ordering the
// binary-search strategy's sorted signature table relies on.
func (k TemplateSignatureKey) Less(o TemplateSignatureKey) bool {
	n := k.size
	if o.size < n {
		n = o.size
	}
	for i := uint16(0); i < n; i++ {
		if k.data[i] != o.data[i] {
			return k.data[i] < o.data[i]
		}
	}
	return k.size < o.size
}

// Hash is an FNV-style mix over the key's columns, exposed for diagnostics;
// the hash-strategy lookup uses Go's native comparable-struct map rather
// than this value as the bucket key, since TemplateSignatureKey is already
// comparable.
func (k TemplateSignatureKey) Hash() uint64 {
	var h uint64 = 14695981039346656037 // FNV offset basis
	for i := uint16(0); i < k.size; i++ {
		h ^= uint64(k.data[i]) + 0x9e3779b97f4a7c15 + (h << 6) + (h >> 2)
	}
	return h
}
