package arrays

import (
	"reflect"
	"testing"
)

func TestStringSliceParser(t *testing.T) {
	v, err := StringSliceParser(`{alice,bob,"carol, the third"}`)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	ss, ok := v.([]string)
	if !ok {
		t.Fatalf("expected []string, got %T", v)
	}
	want := []string{"alice", "bob", "carol, the third"}
	if !reflect.DeepEqual(ss, want) {
		t.Fatalf("unexpected decode: %v", ss)
	}
}
