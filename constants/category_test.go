package constants

import "testing"

func TestCanonicalizeExactMatches(t *testing.T) {
	for _, cat := range AllCategories() {
		got, ok := Canonicalize(string(cat))
		if !ok {
			t.Fatalf("expected %q to canonicalize exactly", cat)
		}
		if got != cat {
			t.Fatalf("expected %q, got %q", cat, got)
		}
	}
}

func TestCanonicalizeIsCaseInsensitive(t *testing.T) {
	got, ok := Canonicalize("  DOCUMENT ")
	if !ok || got != Document {
		t.Fatalf("expected document, got %q (ok=%v)", got, ok)
	}
}

func TestCanonicalizeSynonyms(t *testing.T) {
	cases := map[string]Category{
		"documents": Document,
		"photo":     Images,
		"dataset":   Data,
		"reports":   Report,
	}
	for input, want := range cases {
		got, ok := Canonicalize(input)
		if !ok {
			t.Fatalf("expected synonym %q to resolve", input)
		}
		if got != want {
			t.Fatalf("synonym %q: expected %q, got %q", input, want, got)
		}
	}
}

func TestCanonicalizeUnknownCoercesToOther(t *testing.T) {
	got, ok := Canonicalize("spreadsheet-of-doom")
	if ok {
		t.Fatal("unknown category should not report an exact match")
	}
	if got != Other {
		t.Fatalf("expected other, got %q", got)
	}
}

func TestCanonicalizeEmpty(t *testing.T) {
	got, ok := Canonicalize("")
	if ok || got != Other {
		t.Fatalf("expected other for empty input, got %q (ok=%v)", got, ok)
	}
}
