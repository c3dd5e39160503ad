package menu

import "testing"

func TestCategoriesAreUnique(t *testing.T) {
	if len(Categories) != 23 {
		t.Fatalf("got %d categories, want 23", len(Categories))
	}
	seen := make(map[string]bool, len(Categories))
	for _, c := range Categories {
		if seen[c] {
			t.Fatalf("duplicate category %q", c)
		}
		seen[c] = true
	}
}

func TestIsValidCategory(t *testing.T) {
	if !IsValidCategory("Coffee") {
		t.Fatalf("Coffee should be a valid category")
	}
	if IsValidCategory("coffee") {
		t.Fatalf("category match is case sensitive")
	}
	if IsValidCategory("Cocktails") {
		t.Fatalf("Cocktails is not in the list")
	}
}
