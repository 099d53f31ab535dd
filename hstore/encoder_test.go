package hstore

import (
	"sort"
	"strings"
	"testing"
)

func TestEncode(t *testing.T) {
	for i, test := range encDecTests {
		if got := Encode(test.in); !samePairs(got, test.out) {
			t.Errorf("%d: want %q (pairs in any order), got %q", i, test.out, got)
		}
	}
}

// samePairs reports whether two encoded hstores hold the same pairs.
// Encode ranges over a map, so the order of its pairs is not fixed.
func samePairs(a, b string) bool {
	as, bs := strings.Split(a, ", "), strings.Split(b, ", ")
	sort.Strings(as)
	sort.Strings(bs)
	return strings.Join(as, ", ") == strings.Join(bs, ", ")
}
