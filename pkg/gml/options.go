package gml

// DefaultPrecision is the linearization precision used when none is
// given: the maximum distance, in coordinate units, between an arc and
// the chords replacing it.
const DefaultPrecision = 0.01

// ParseOptions configures parsing behavior.
type ParseOptions struct {
	// SRS adds srsName to SRID mappings. The built-in table maps
	// urn:ogc:def:crs:EPSG::2065 to 2065; an srsName found in neither is
	// a KindUnsupportedSRS error.
	SRS map[string]int

	// Linearize replaces every arc of the parsed geometry with chords,
	// so WKT output uses only linear keywords.
	Linearize bool

	// Precision is the maximum chord deviation used when Linearize is
	// set. It must be finite and positive.
	Precision float64
}

// DefaultParseOptions returns default options.
func DefaultParseOptions() ParseOptions {
	return ParseOptions{
		SRS:       nil,
		Linearize: false,
		Precision: DefaultPrecision,
	}
}

// ConvertOptions configures a Converter.
type ConvertOptions struct {
	ParseOptions

	// SkipInvalid logs and skips geometries that fail to convert
	// instead of aborting the walk. XML syntax and read errors always
	// abort.
	SkipInvalid bool
}

// DefaultConvertOptions returns default options.
func DefaultConvertOptions() ConvertOptions {
	return ConvertOptions{
		ParseOptions: DefaultParseOptions(),
		SkipInvalid:  false,
	}
}
