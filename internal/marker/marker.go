package marker

// Raw is one upstream marker record as decoded from the feed, before
// normalization. Keys are upstream field names and vary by feed version;
// only the fields the normalizer consumes are ever validated.
type Raw map[string]string

// Lookup returns the value of the first field name variant present in the
// record. The value may still be empty; inclusion rules are the caller's.
func (r Raw) Lookup(names ...string) (string, bool) {
	for _, n := range names {
		if v, ok := r[n]; ok {
			return v, true
		}
	}
	return "", false
}
