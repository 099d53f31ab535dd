package arrays

// StringSliceParser decodes a PostgreSQL array's wire-literal text
// representation into a []string, for registration as a sqlward
// TypeParser over a text[]-shaped column. Unlike
// internal/typeparser.ArrayParser (which composes with an arbitrary
// per-element scalar decoder), this is for callers who just want plain
// strings back and would rather not wire up a decoder for each element.
func StringSliceParser(raw string) (any, error) {
	var ss []string
	if err := Unmarshal([]byte(raw), &ss); err != nil {
		return nil, err
	}
	return ss, nil
}
