package utils

import (
	"net/http/httptest"
	"testing"

	"go.mongodb.org/mongo-driver/bson"
)

func TestParsePaginationDefaults(t *testing.T) {
	r := httptest.NewRequest("GET", "/api/packages", nil)
	skip, limit := ParsePagination(r, 20, 100)
	if skip != 0 || limit != 20 {
		t.Fatalf("defaults: skip=%d limit=%d", skip, limit)
	}
}

func TestParsePaginationPageAndLimit(t *testing.T) {
	r := httptest.NewRequest("GET", "/api/packages?page=3&limit=10", nil)
	skip, limit := ParsePagination(r, 20, 100)
	if skip != 20 || limit != 10 {
		t.Fatalf("page 3 limit 10: skip=%d limit=%d", skip, limit)
	}
}

func TestParsePaginationCapsLimit(t *testing.T) {
	r := httptest.NewRequest("GET", "/api/packages?limit=5000", nil)
	_, limit := ParsePagination(r, 20, 100)
	if limit != 100 {
		t.Fatalf("limit should cap at 100, got %d", limit)
	}
}

func TestParsePaginationGarbage(t *testing.T) {
	r := httptest.NewRequest("GET", "/api/packages?page=-2&limit=abc", nil)
	skip, limit := ParsePagination(r, 20, 100)
	if skip != 0 || limit != 20 {
		t.Fatalf("garbage input: skip=%d limit=%d", skip, limit)
	}
}

func TestParseSort(t *testing.T) {
	def := bson.D{{Key: "createdAt", Value: -1}}
	allowed := map[string]bool{"basePrice": true, "name": true}

	got := ParseSort("basePrice", def, allowed)
	if got[0].Key != "basePrice" || got[0].Value != 1 {
		t.Fatalf("ascending sort = %v", got)
	}

	got = ParseSort("-basePrice", def, allowed)
	if got[0].Key != "basePrice" || got[0].Value != -1 {
		t.Fatalf("descending sort = %v", got)
	}

	got = ParseSort("password", def, allowed)
	if got[0].Key != "createdAt" {
		t.Fatalf("disallowed field should fall back to default, got %v", got)
	}

	got = ParseSort("", def, allowed)
	if got[0].Key != "createdAt" {
		t.Fatalf("empty sort should fall back to default, got %v", got)
	}
}

func TestCapitalize(t *testing.T) {
	cases := map[string]string{
		"catering": "Catering",
		"dj":       "Dj",
		"":         "",
		"Music":    "Music",
	}
	for in, want := range cases {
		if got := Capitalize(in); got != want {
			t.Errorf("Capitalize(%q) = %q, want %q", in, got, want)
		}
	}
}

func TestContains(t *testing.T) {
	if !Contains([]string{"a", "b"}, "b") {
		t.Error("expected b to be found")
	}
	if Contains([]string{"a", "b"}, "c") {
		t.Error("did not expect c to be found")
	}
}

func TestSanitizeFilename(t *testing.T) {
	if got := SanitizeFilename("../../etc/passwd"); got != "passwd" {
		t.Fatalf("SanitizeFilename path traversal = %q", got)
	}
	if got := SanitizeFilename("my photo (1).png"); got != "my_photo__1_.png" {
		t.Fatalf("SanitizeFilename = %q", got)
	}
}

func TestGenerateID(t *testing.T) {
	id := GenerateID(14)
	if len(id) != 14 {
		t.Fatalf("GenerateID length = %d", len(id))
	}
	if GenerateID(14) == id && GenerateID(14) == id {
		t.Fatal("GenerateID should not repeat")
	}
}
