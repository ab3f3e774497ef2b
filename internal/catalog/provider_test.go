package catalog

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/manhnguyen41/FoodRecommender/internal/model"
)

func writeFile(t *testing.T, dir, name, content string) {
	t.Helper()
	if err := os.WriteFile(filepath.Join(dir, name), []byte(content), 0644); err != nil {
		t.Fatalf("write %s: %v", name, err)
	}
}

func TestFileProviderLoadsAndNormalizes(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, "recipes.json", `[
		{
			"id": "r1",
			"name": "Phở bò",
			"tags": [
				{"tag_id": "t1", "name": "Luộc", "group": [7]},
				{"tag_id": "t2", "name": "Món Chính", "group": [9]},
				{"tag_id": "t3", "name": "Bữa Sáng", "group": [10]}
			]
		},
		{
			"id": "r2",
			"name": "Salad",
			"difficulty": "2",
			"recipe_type": ["Món Phụ"],
			"meal_type": ["Lunch"]
		}
	]`)
	writeFile(t, dir, "ingredients.json", `[{"ingredient_id": "i1", "name": "beef"}]`)

	p, err := NewFileProvider(dir)
	if err != nil {
		t.Fatalf("NewFileProvider: %v", err)
	}
	if len(p.Recipes()) != 2 {
		t.Fatalf("loaded %d recipes, want 2", len(p.Recipes()))
	}

	// r1 had no label lists: derive from tag groups and canonicalize.
	r1, err := p.Recipe("r1")
	if err != nil {
		t.Fatalf("Recipe(r1): %v", err)
	}
	if len(r1.Methods) != 1 || r1.Methods[0] != "luộc" {
		t.Errorf("r1 methods = %v, want [luộc]", r1.Methods)
	}
	if len(r1.RecipeTypes) != 1 || r1.RecipeTypes[0] != "main" {
		t.Errorf("r1 recipe types = %v, want [main]", r1.RecipeTypes)
	}
	if len(r1.MealTypes) != 1 || r1.MealTypes[0] != "breakfast" {
		t.Errorf("r1 meal types = %v, want [breakfast]", r1.MealTypes)
	}
	if r1.Difficulty != model.DefaultDifficulty {
		t.Errorf("r1 difficulty = %q, want default %q", r1.Difficulty, model.DefaultDifficulty)
	}

	// r2 carried its own lists: keep them, just canonicalized.
	r2, err := p.Recipe("r2")
	if err != nil {
		t.Fatalf("Recipe(r2): %v", err)
	}
	if len(r2.RecipeTypes) != 1 || r2.RecipeTypes[0] != "side" {
		t.Errorf("r2 recipe types = %v, want [side]", r2.RecipeTypes)
	}
	if len(r2.MealTypes) != 1 || r2.MealTypes[0] != "lunch" {
		t.Errorf("r2 meal types = %v, want [lunch]", r2.MealTypes)
	}
	if r2.Difficulty != "2" {
		t.Errorf("r2 difficulty = %q, want 2", r2.Difficulty)
	}

	if len(p.Ingredients()) != 1 {
		t.Errorf("loaded %d ingredients, want 1", len(p.Ingredients()))
	}
	// tags.json absent: tolerated.
	if len(p.Tags()) != 0 {
		t.Errorf("loaded %d tags, want 0", len(p.Tags()))
	}
}

func TestFileProviderMissingRecipesFile(t *testing.T) {
	if _, err := NewFileProvider(t.TempDir()); err == nil {
		t.Fatal("expected error when recipes.json is missing")
	}
}

func TestFileProviderUnknownRecipe(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, "recipes.json", `[{"id": "r1", "name": "a"}]`)

	p, err := NewFileProvider(dir)
	if err != nil {
		t.Fatalf("NewFileProvider: %v", err)
	}
	if _, err := p.Recipe("ghost"); err == nil {
		t.Error("expected error for unknown recipe id")
	}
}

func TestCanonicalize(t *testing.T) {
	cases := []struct {
		in, want string
	}{
		{"Món Chính", "main"},
		{"món tráng miệng", "dessert"},
		{"  Bữa Tối  ", "dinner"},
		{"Steam", "steam"},
		{"", ""},
	}
	for _, tc := range cases {
		if got := canonicalize(tc.in); got != tc.want {
			t.Errorf("canonicalize(%q) = %q, want %q", tc.in, got, tc.want)
		}
	}
}
