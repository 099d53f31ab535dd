package sqlward

import (
	"context"
	"testing"
)

type fakeLogger struct {
	calls []string
}

func (f *fakeLogger) Error(ctx context.Context, queryID QueryId, message string, fields map[string]any) {
	f.calls = append(f.calls, message)
}

func lc(t *testing.T) (errorLogContext, *fakeLogger) {
	t.Helper()
	fl := &fakeLogger{}
	return errorLogContext{ctx: context.Background(), logger: fl, id: NewQueryId()}, fl
}

func TestCheckAny(t *testing.T) {
	c, _ := lc(t)
	for _, n := range []int{0, 1, 5} {
		if err := checkAny(c, n); err != nil {
			t.Fatalf("checkAny(%d): unexpected error %v", n, err)
		}
	}
}

func TestCheckAtMostOne(t *testing.T) {
	c, fl := lc(t)
	if err := checkAtMostOne(c, 0); err != nil {
		t.Fatalf("0 rows: unexpected error %v", err)
	}
	if err := checkAtMostOne(c, 1); err != nil {
		t.Fatalf("1 row: unexpected error %v", err)
	}
	if err := checkAtMostOne(c, 2); err == nil {
		t.Fatalf("2 rows: expected a DataIntegrity error")
	} else if de := err.(*DriverError); de.Kind != KindDataIntegrity {
		t.Fatalf("expected KindDataIntegrity, got %s", de.Kind)
	}
	if len(fl.calls) != 1 {
		t.Fatalf("expected exactly one log call for the violation, got %d", len(fl.calls))
	}
}

func TestCheckExactlyOne(t *testing.T) {
	c, _ := lc(t)
	if err := checkExactlyOne(c, 0); err == nil {
		t.Fatalf("0 rows: expected a NotFound error")
	} else if de := err.(*DriverError); de.Kind != KindNotFound {
		t.Fatalf("expected KindNotFound, got %s", de.Kind)
	}
	if err := checkExactlyOne(c, 1); err != nil {
		t.Fatalf("1 row: unexpected error %v", err)
	}
	if err := checkExactlyOne(c, 2); err == nil {
		t.Fatalf("2 rows: expected a DataIntegrity error")
	} else if de := err.(*DriverError); de.Kind != KindDataIntegrity {
		t.Fatalf("expected KindDataIntegrity, got %s", de.Kind)
	}
}

func TestCheckAtLeastOne(t *testing.T) {
	c, _ := lc(t)
	if err := checkAtLeastOne(c, 0); err == nil {
		t.Fatalf("0 rows: expected a NotFound error")
	}
	if err := checkAtLeastOne(c, 3); err != nil {
		t.Fatalf("3 rows: unexpected error %v", err)
	}
}

func TestExactlyOneColumn(t *testing.T) {
	c, _ := lc(t)
	if err := exactlyOneColumn(c, nil); err != nil {
		t.Fatalf("no rows: unexpected error %v", err)
	}

	oneCol := []Row{{Fields: []Field{{Name: "id"}}, Values: []any{1}}}
	if err := exactlyOneColumn(c, oneCol); err != nil {
		t.Fatalf("one column: unexpected error %v", err)
	}

	twoCols := []Row{{Fields: []Field{{Name: "id"}, {Name: "name"}}, Values: []any{1, "a"}}}
	if err := exactlyOneColumn(c, twoCols); err == nil {
		t.Fatalf("two columns: expected a DataIntegrity error")
	} else if de := err.(*DriverError); de.Kind != KindDataIntegrity {
		t.Fatalf("expected KindDataIntegrity, got %s", de.Kind)
	}
}

func TestFirstColumns(t *testing.T) {
	rows := []Row{
		{Fields: []Field{{Name: "id"}}, Values: []any{1}},
		{Fields: []Field{{Name: "id"}}, Values: []any{2}},
	}
	got := firstColumns(rows)
	if len(got) != 2 || got[0] != 1 || got[1] != 2 {
		t.Fatalf("unexpected first-column projection: %v", got)
	}
}

func TestRowGetAndFirst(t *testing.T) {
	r := Row{
		Fields: []Field{{Name: "id"}, {Name: "name"}},
		Values: []any{7, "alice"},
	}
	if v, ok := r.Get("name"); !ok || v != "alice" {
		t.Fatalf("Get(%q) = %v, %v", "name", v, ok)
	}
	if _, ok := r.Get("missing"); ok {
		t.Fatalf("expected ok=false for a missing field")
	}
	if r.First() != 7 {
		t.Fatalf("expected First() to return the first column's value, got %v", r.First())
	}
}

func TestQueryIdInheritOrNew(t *testing.T) {
	fresh := InheritOrNew(nil)
	if fresh.String() == "" {
		t.Fatalf("expected a non-empty generated id")
	}

	inherited := NewQueryId()
	got := InheritOrNew(&inherited)
	if got.String() != inherited.String() {
		t.Fatalf("expected InheritOrNew to propagate the inherited id unchanged")
	}
}
