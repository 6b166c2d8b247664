package reconcile

import "testing"

func TestBuildGroupLookup(t *testing.T) {
	lookup := BuildGroupLookup([]string{"Kiama Greens", "Canada Bay Greens"})

	tests := []struct {
		key  string
		want string
	}{
		{"kiama", "Kiama Greens"},
		{"canada bay", "Canada Bay Greens"},
		{"cb", "Canada Bay Greens"},
	}
	for _, tt := range tests {
		got, ok := lookup.Get(tt.key)
		if !ok {
			t.Errorf("lookup missing key %q", tt.key)
			continue
		}
		if got != tt.want {
			t.Errorf("lookup[%q] = %q, want %q", tt.key, got, tt.want)
		}
	}

	if lookup.Len() != 3 {
		t.Errorf("Len() = %d, want 3", lookup.Len())
	}
}

func TestBuildGroupLookupNoSuffix(t *testing.T) {
	lookup := BuildGroupLookup([]string{"Lismore"})
	if got, ok := lookup.Get("lismore"); !ok || got != "Lismore" {
		t.Errorf("lookup[%q] = %q, %v; want %q", "lismore", got, ok, "Lismore")
	}
	// Single-word cleaned names get no initials entry.
	if lookup.Len() != 1 {
		t.Errorf("Len() = %d, want 1", lookup.Len())
	}
}

func TestBuildGroupLookupCollision(t *testing.T) {
	// "Canada Bay" and "Coffs Blue" both produce the initials key "cb";
	// the later group in the list wins the entry.
	lookup := BuildGroupLookup([]string{"Canada Bay Greens", "Coffs Blue Greens"})

	got, ok := lookup.Get("cb")
	if !ok {
		t.Fatal("lookup missing key \"cb\"")
	}
	if got != "Coffs Blue Greens" {
		t.Errorf("lookup[\"cb\"] = %q, want %q (last write wins)", got, "Coffs Blue Greens")
	}

	// The earlier group's cleaned key is untouched.
	if got, _ := lookup.Get("canada bay"); got != "Canada Bay Greens" {
		t.Errorf("lookup[\"canada bay\"] = %q, want %q", got, "Canada Bay Greens")
	}
}

func TestBuildGroupLookupPronounQuirk(t *testing.T) {
	// Group names pass through the same normalizer as participant names,
	// pronoun stripping included. "Sutherland" loses its "her". The quirk
	// is symmetric, so matching still works, and it is pinned here.
	lookup := BuildGroupLookup([]string{"Sutherland Shire Greens"})

	if got, ok := lookup.Get("sutland shire"); !ok || got != "Sutherland Shire Greens" {
		t.Errorf("lookup[%q] = %q, %v; want %q", "sutland shire", got, ok, "Sutherland Shire Greens")
	}
	if got, ok := lookup.Get("ss"); !ok || got != "Sutherland Shire Greens" {
		t.Errorf("lookup[%q] = %q, %v; want %q", "ss", got, ok, "Sutherland Shire Greens")
	}
}
