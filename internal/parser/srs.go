package parser

// knownSRS maps srsName values to SRIDs.
var knownSRS = map[string]int{
	"urn:ogc:def:crs:EPSG::2065": 2065, // S-JTSK (Ferro) / Krovak
}

// SupportedSRS returns the built-in srsName table merged with extra.
// Entries in extra take precedence.
func SupportedSRS(extra map[string]int) map[string]int {
	table := make(map[string]int, len(knownSRS)+len(extra))
	for name, srid := range knownSRS {
		table[name] = srid
	}
	for name, srid := range extra {
		table[name] = srid
	}
	return table
}
