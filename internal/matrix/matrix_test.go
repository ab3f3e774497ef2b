package matrix

import "testing"

func TestMatrixSymmetry(t *testing.T) {
	m := New()
	m.Set("a", "b", 0.7)

	if got := m.Similarity("a", "b"); got != 0.7 {
		t.Errorf("Similarity(a, b) = %v, want 0.7", got)
	}
	if got := m.Similarity("b", "a"); got != 0.7 {
		t.Errorf("Similarity(b, a) = %v, want 0.7", got)
	}
}

func TestMatrixIdentityAndMissing(t *testing.T) {
	m := New()
	m.Set("a", "b", 0.3)

	// Same non-empty id is always a perfect match, stored or not.
	if got := m.Similarity("x", "x"); got != 1.0 {
		t.Errorf("Similarity(x, x) = %v, want 1.0", got)
	}
	if got := m.Similarity("", ""); got != 0 {
		t.Errorf("Similarity of empty ids = %v, want 0", got)
	}
	if got := m.Similarity("a", "z"); got != 0 {
		t.Errorf("unknown pair = %v, want 0", got)
	}
}

func TestMatrixHas(t *testing.T) {
	m := New()
	m.Set("a", "b", 0)

	// Set stores both directions, so both ids become row keys.
	if !m.Has("a") || !m.Has("b") {
		t.Error("Has should see both ids of a stored pair")
	}
	if m.Has("c") {
		t.Error("Has reported an id that was never stored")
	}
}

func TestSetNilSafety(t *testing.T) {
	var s *Set

	if s.HasIngredientMatrix() || s.HasTagMatrix() || s.HasRecipeMatrix() {
		t.Error("nil set should report no matrices")
	}
	if got := s.RecipeSimilarity("a", "b"); got != 0 {
		t.Errorf("nil set RecipeSimilarity = %v, want 0", got)
	}

	empty := &Set{}
	if empty.HasIngredientMatrix() {
		t.Error("empty set should report no ingredient matrix")
	}
	if got := empty.IngredientSimilarity("a", "b"); got != 0 {
		t.Errorf("empty set IngredientSimilarity = %v, want 0", got)
	}
}
