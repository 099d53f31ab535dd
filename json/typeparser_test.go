package json

import "testing"

func TestParser(t *testing.T) {
	v, err := Parser(`{"a": 1, "b": [true, null]}`)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	m, ok := v.(map[string]any)
	if !ok {
		t.Fatalf("expected map[string]any, got %T", v)
	}
	if m["a"] != 1.0 {
		t.Fatalf("unexpected decode: %v", m)
	}
}

func TestParserInvalid(t *testing.T) {
	if _, err := Parser(`not json`); err == nil {
		t.Fatalf("expected an error for invalid json")
	}
}
