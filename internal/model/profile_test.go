package model

import "testing"

func TestMarkCookedIdempotent(t *testing.T) {
	p := DefaultUserProfile()

	p.MarkCooked("r1")
	p.MarkCooked("r1")
	p.MarkCooked("")
	p.MarkCooked("r2")

	if len(p.CookedRecipeIDs) != 2 {
		t.Fatalf("cooked = %v, want exactly r1 and r2", p.CookedRecipeIDs)
	}
	if !p.HasCooked("r1") || !p.HasCooked("r2") {
		t.Error("HasCooked should report both marked ids")
	}
	if p.HasCooked("r3") {
		t.Error("HasCooked reported an id that was never marked")
	}
}

func TestAddNotFavoriteReportsAdditions(t *testing.T) {
	p := DefaultUserProfile()

	if !p.AddNotFavorite("r1") {
		t.Error("first add should report true")
	}
	if p.AddNotFavorite("r1") {
		t.Error("duplicate add should report false")
	}
	if p.AddNotFavorite("") {
		t.Error("empty id should report false")
	}
	if len(p.NotFavoriteRecipeIDs) != 1 {
		t.Errorf("dislikes = %v, want exactly r1", p.NotFavoriteRecipeIDs)
	}
}

func TestRemoveNotFavorite(t *testing.T) {
	p := DefaultUserProfile()
	p.AddNotFavorite("r1")
	p.AddNotFavorite("r2")
	p.AddNotFavorite("r3")

	p.RemoveNotFavorite("r2")
	p.RemoveNotFavorite("ghost")

	want := []RecipeID{"r1", "r3"}
	if len(p.NotFavoriteRecipeIDs) != len(want) {
		t.Fatalf("dislikes = %v, want %v", p.NotFavoriteRecipeIDs, want)
	}
	for i := range want {
		if p.NotFavoriteRecipeIDs[i] != want[i] {
			t.Errorf("dislikes[%d] = %s, want %s", i, p.NotFavoriteRecipeIDs[i], want[i])
		}
	}
}

func TestProfileCloneIsIndependent(t *testing.T) {
	p := DefaultUserProfile()
	p.FavoriteIngredientIDs = []IngredientID{"i1"}
	p.MarkCooked("r1")
	p.FeedbackRecipeIDs["r1"] = 5

	clone := p.Clone()
	clone.FavoriteIngredientIDs = append(clone.FavoriteIngredientIDs, "i2")
	clone.MarkCooked("r2")
	clone.AddNotFavorite("r3")
	clone.FeedbackRecipeIDs["r1"] = 1

	if len(p.FavoriteIngredientIDs) != 1 {
		t.Errorf("original favorites changed: %v", p.FavoriteIngredientIDs)
	}
	if len(p.CookedRecipeIDs) != 1 {
		t.Errorf("original cooked set changed: %v", p.CookedRecipeIDs)
	}
	if len(p.NotFavoriteRecipeIDs) != 0 {
		t.Errorf("original dislikes changed: %v", p.NotFavoriteRecipeIDs)
	}
	if p.FeedbackRecipeIDs["r1"] != 5 {
		t.Errorf("original feedback changed: %v", p.FeedbackRecipeIDs)
	}
}

func TestRequirementsCloneIsIndependent(t *testing.T) {
	r := DefaultUserRequirements()
	r.RecipeTypes = []string{"main"}

	clone := r.Clone()
	clone.RecipeTypes[0] = "soup"
	clone.ExcludeMethods = append(clone.ExcludeMethods, "fry")

	if r.RecipeTypes[0] != "main" {
		t.Errorf("original recipe types changed: %v", r.RecipeTypes)
	}
	if len(r.ExcludeMethods) != 0 {
		t.Errorf("original exclude methods changed: %v", r.ExcludeMethods)
	}
}
