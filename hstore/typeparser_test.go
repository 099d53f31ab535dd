package hstore

import "testing"

func TestParser(t *testing.T) {
	v, err := Parser(`"a"=>"1", "b"=>"2"`)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	m, ok := v.(map[string]string)
	if !ok {
		t.Fatalf("expected map[string]string, got %T", v)
	}
	if m["a"] != "1" || m["b"] != "2" {
		t.Fatalf("unexpected decode: %v", m)
	}
}
