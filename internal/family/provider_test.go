package family

import (
	"os"
	"path/filepath"
	"testing"
)

func TestStaticProvider(t *testing.T) {
	configPath := filepath.Join(t.TempDir(), "families.yaml")
	config := `families:
  - id: fam1
    favorite_ingredients: [beef, garlic]
    allergy_ingredients: [peanut]
    not_favorite_recipes: [r9]
    budget: 150000
    cooking_time: 45
  - id: fam2
`
	if err := os.WriteFile(configPath, []byte(config), 0644); err != nil {
		t.Fatalf("write config: %v", err)
	}

	p, err := NewStaticProvider(configPath)
	if err != nil {
		t.Fatalf("NewStaticProvider: %v", err)
	}

	prof, err := p.Profile("fam1")
	if err != nil {
		t.Fatalf("Profile(fam1): %v", err)
	}
	if len(prof.FavoriteIngredientIDs) != 2 || prof.FavoriteIngredientIDs[0] != "beef" {
		t.Errorf("favorites = %v, want [beef garlic]", prof.FavoriteIngredientIDs)
	}
	if len(prof.AllergyIngredientIDs) != 1 || prof.AllergyIngredientIDs[0] != "peanut" {
		t.Errorf("allergies = %v, want [peanut]", prof.AllergyIngredientIDs)
	}
	if len(prof.NotFavoriteRecipeIDs) != 1 || prof.NotFavoriteRecipeIDs[0] != "r9" {
		t.Errorf("disliked recipes = %v, want [r9]", prof.NotFavoriteRecipeIDs)
	}
	if prof.Budget != 150000 || prof.CookingTime != 45 {
		t.Errorf("budget/time = %v/%v, want 150000/45", prof.Budget, prof.CookingTime)
	}

	// Callers get copies: mutations never reach the stored profile.
	prof.MarkCooked("r1")
	again, err := p.Profile("fam1")
	if err != nil {
		t.Fatalf("Profile(fam1) again: %v", err)
	}
	if len(again.CookedRecipeIDs) != 0 {
		t.Errorf("stored profile was mutated: %v", again.CookedRecipeIDs)
	}

	if _, err := p.Profile("ghost"); err == nil {
		t.Error("expected error for unknown family")
	}
}

func TestStaticProviderMissingFile(t *testing.T) {
	if _, err := NewStaticProvider(filepath.Join(t.TempDir(), "none.yaml")); err == nil {
		t.Fatal("expected error for missing config file")
	}
}
