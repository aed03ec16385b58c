package human

import "testing"

// TestNewTechniqueRegistry_FixedOrder locks in the solver's fixed dispatch
// order: every technique is present, enabled, and never reordered.
func TestNewTechniqueRegistry_FixedOrder(t *testing.T) {
	wantSlugs := []string{
		"naked-single",
		"hidden-single",
		"pointing-pair",
		"pointing-triplet",
		"naked-pair",
		"hidden-pair",
		"naked-triplet",
		"hidden-triplet",
		"naked-quad",
		"hidden-quad",
		"naked-quint",
		"x-wing",
		"singles-chain-rule-2",
		"singles-chain-rule-4",
		"swordfish",
		"y-wing",
		"xyz-wing",
		"bi-value-universal-grave",
		"xy-chain",
		"3d-medusa",
		"jellyfish",
		"unique-rectangle",
		"x-cycle",
		"wxyz-wing",
	}

	r := NewTechniqueRegistry()
	ordered := r.Ordered()
	if len(ordered) != len(wantSlugs) {
		t.Fatalf("got %d techniques, want %d", len(ordered), len(wantSlugs))
	}
	for i, slug := range wantSlugs {
		if ordered[i].Slug != slug {
			t.Errorf("position %d: got slug %q, want %q", i, ordered[i].Slug, slug)
		}
		if !ordered[i].Enabled {
			t.Errorf("technique %q should start enabled", slug)
		}
		if ordered[i].Detector == nil {
			t.Errorf("technique %q has a nil detector", slug)
		}
	}
}

// TestTechniqueRegistry_SetEnabled verifies toggling a known slug removes it
// from Ordered, and that an unknown slug is reported rather than silently
// accepted.
func TestTechniqueRegistry_SetEnabled(t *testing.T) {
	r := NewTechniqueRegistry()

	if !r.SetEnabled("x-wing", false) {
		t.Fatal("SetEnabled on a known slug should return true")
	}
	for _, d := range r.Ordered() {
		if d.Slug == "x-wing" {
			t.Error("x-wing should be absent from Ordered after being disabled")
		}
	}

	if r.SetEnabled("not-a-real-technique", false) {
		t.Error("SetEnabled on an unknown slug should return false")
	}

	if r.GetBySlug("x-wing") == nil {
		t.Error("GetBySlug should still find a disabled technique")
	}
	if r.GetBySlug("not-a-real-technique") != nil {
		t.Error("GetBySlug should return nil for an unknown slug")
	}
}
