package json

import "encoding/json"

// Parser decodes a json/jsonb column's text representation into a
// generic Go value (map[string]any, []any, string, float64, bool, or
// nil), for registration as a sqlward.TypeParser.
func Parser(raw string) (any, error) {
	var v any
	if err := json.Unmarshal([]byte(raw), &v); err != nil {
		return nil, err
	}
	return v, nil
}
