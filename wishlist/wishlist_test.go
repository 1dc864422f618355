package wishlist

import "testing"

func TestToggleAdds(t *testing.T) {
	got := Toggle([]string{"pkg1"}, "pkg2")
	if len(got) != 2 || got[0] != "pkg1" || got[1] != "pkg2" {
		t.Fatalf("Toggle add = %v", got)
	}
}

func TestToggleRemoves(t *testing.T) {
	got := Toggle([]string{"pkg1", "pkg2", "pkg3"}, "pkg2")
	if len(got) != 2 || got[0] != "pkg1" || got[1] != "pkg3" {
		t.Fatalf("Toggle remove = %v", got)
	}
}

func TestToggleEmpty(t *testing.T) {
	got := Toggle(nil, "pkg1")
	if len(got) != 1 || got[0] != "pkg1" {
		t.Fatalf("Toggle on empty = %v", got)
	}
}

func TestToggleRoundTrip(t *testing.T) {
	ids := []string{"a", "b"}
	got := Toggle(Toggle(ids, "c"), "c")
	if len(got) != 2 || got[0] != "a" || got[1] != "b" {
		t.Fatalf("double toggle should restore list, got %v", got)
	}
}
