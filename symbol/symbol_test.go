package symbol

import "testing"

func TestInternIsStable(t *testing.T) {
	tbl := NewTable()
	a := tbl.Intern("true")
	b := tbl.Intern("true")
	if a != b {
		t.Errorf("Intern(%q) = %d, then %d, want stable ID", "true", a, b)
	}
}

func TestInternDistinctNames(t *testing.T) {
	tbl := NewTable()
	a := tbl.Intern("true")
	b := tbl.Intern("false")
	if a == b {
		t.Errorf("Intern(true) and Intern(false) both returned %d, want distinct IDs", a)
	}
}

func TestNameRoundTrips(t *testing.T) {
	tbl := NewTable()
	id := tbl.Intern("ok")
	if got := tbl.Name(id); got != "ok" {
		t.Errorf("Name(%d) = %q, want %q", id, got, "ok")
	}
}

func TestNameUnknownIDIsEmpty(t *testing.T) {
	tbl := NewTable()
	if got := tbl.Name(ID(999)); got != "" {
		t.Errorf("Name(999) = %q, want empty string", got)
	}
}

func TestZeroIDNeverIssued(t *testing.T) {
	tbl := NewTable()
	for _, name := range []string{"a", "b", "c"} {
		if id := tbl.Intern(name); id == 0 {
			t.Errorf("Intern(%q) returned the zero ID", name)
		}
	}
}
