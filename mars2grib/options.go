// Package mars2grib is the public entry point: it wires dictionary
// sanitization, header layout resolution, specialized encoding, and value
// injection into a single Encode call.
package mars2grib

// Options configures an Encoder at construction time; these never vary per
// Encode call, only per Encoder instance.
type Options struct {
	// ApplyChecks is passed to concept callbacks as the "applyChecks"
	// options key; no callback reads it, and no validation runs whatever
	// its value.
	ApplyChecks bool
	// EnableOverride is passed to concept callbacks as the "enableOverride"
	// options key; no callback reads it, so it does not change which values
	// are written.
	EnableOverride bool
	// EnableBitsPerValueCompression switches the Packing concept to the
	// CCSDS variant instead of simple packing.
	EnableBitsPerValueCompression bool
	// SanitizeMars lower-cases the values of the MARS "class", "type" and
	// "levtype" keys and resolves them through the alias table before
	// classification; keys and all other values are left unchanged.
	SanitizeMars bool
	// SanitizeMisc makes the encoder work on a copy of the auxiliary dict;
	// no case folding or alias resolution is applied to it.
	SanitizeMisc bool
	// FixMarsGrid rewrites legacy LxxxxXnnn/Lnnnxnnn grid specs into the
	// "dLon/dLat" increment form the representation matcher expects.
	FixMarsGrid bool
}

// DefaultOptions returns the defaults every Encoder starts from.
func DefaultOptions() Options {
	return Options{
		ApplyChecks:                   true,
		EnableOverride:                false,
		EnableBitsPerValueCompression: false,
		SanitizeMars:                  false,
		SanitizeMisc:                  false,
		FixMarsGrid:                   true,
	}
}
