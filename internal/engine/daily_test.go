package engine

import (
	"testing"

	"github.com/manhnguyen41/FoodRecommender/internal/model"
)

func TestDailyQuotasServingSizeFour(t *testing.T) {
	c := testCatalog(12, "main", "side", "soup", "dessert")
	e := New(c, nil)

	p := model.DefaultUserProfile()
	plan := e.SuggestDailyMeals(p, model.DefaultUserRequirements(), 4)

	for _, slot := range []string{model.SlotLunch, model.SlotDinner} {
		meal := plan.Meal(slot)
		if meal == nil {
			t.Fatalf("plan has no %s", slot)
		}
		if got := len(meal.Recipes[model.CategoryMain]); got != 4 {
			t.Errorf("%s mains = %d, want 4", slot, got)
		}
		if got := len(meal.Recipes[model.CategorySide]); got != 2 {
			t.Errorf("%s sides = %d, want 2", slot, got)
		}
		if got := len(meal.Recipes[model.CategorySoup]); got != 1 {
			t.Errorf("%s soups = %d, want 1", slot, got)
		}
		if got := len(meal.Recipes[model.CategoryDessert]); got != 1 {
			t.Errorf("%s desserts = %d, want 1", slot, got)
		}
	}

	breakfast := plan.Meal(model.SlotBreakfast)
	if got := len(breakfast.Recipes[model.CategoryMain]); got != 1 {
		t.Errorf("breakfast mains = %d, want 1", got)
	}

	if plan.Summary.TotalRecipes != 17 {
		t.Errorf("total = %d, want 17", plan.Summary.TotalRecipes)
	}
	if plan.Summary.ServingSize != 4 {
		t.Errorf("serving size = %d, want 4", plan.Summary.ServingSize)
	}

	wantCounts := map[string]int{
		model.SlotBreakfast: 1,
		model.SlotLunch:     8,
		model.SlotDinner:    8,
	}
	for slot, want := range wantCounts {
		if got := plan.Summary.MealCounts[slot]; got != want {
			t.Errorf("summary count for %s = %d, want %d", slot, got, want)
		}
	}
}

func TestDailyQuotasServingSizeOne(t *testing.T) {
	c := testCatalog(5, "main", "side", "soup", "dessert")
	e := New(c, nil)

	plan := e.SuggestDailyMeals(model.DefaultUserProfile(), model.DefaultUserRequirements(), 1)

	lunch := plan.Meal(model.SlotLunch)
	if got := len(lunch.Recipes[model.CategoryMain]); got != 1 {
		t.Errorf("mains = %d, want 1 (floored)", got)
	}
	if got := len(lunch.Recipes[model.CategorySide]); got != 1 {
		t.Errorf("sides = %d, want 1 (floored)", got)
	}
}

func TestDailyNoDuplicateRecipes(t *testing.T) {
	c := testCatalog(10, "main", "side", "soup", "dessert")
	e := New(c, nil)

	plan := e.SuggestDailyMeals(model.DefaultUserProfile(), model.DefaultUserRequirements(), 4)

	seen := make(map[model.RecipeID]bool)
	for _, id := range plan.RecipeIDs() {
		if seen[id] {
			t.Errorf("recipe %s appears twice in the plan", id)
		}
		seen[id] = true
	}
}

func TestDailyRecipeIDsResolve(t *testing.T) {
	c := testCatalog(6, "main", "side", "soup", "dessert")
	e := New(c, nil)

	plan := e.SuggestDailyMeals(model.DefaultUserProfile(), model.DefaultUserRequirements(), 2)

	for _, id := range plan.RecipeIDs() {
		if _, ok := e.Recipe(id); !ok {
			t.Errorf("plan references %s which is not in the catalog", id)
		}
	}
}

func TestDailyMarksPicksCooked(t *testing.T) {
	c := testCatalog(6, "main", "side", "soup", "dessert")
	e := New(c, nil)

	p := model.DefaultUserProfile()
	plan := e.SuggestDailyMeals(p, model.DefaultUserRequirements(), 2)

	for _, id := range plan.RecipeIDs() {
		if !p.HasCooked(id) {
			t.Errorf("pick %s was not recorded in cookedRecipeIds", id)
		}
	}
}

func TestDailyShortfallAcceptedSilently(t *testing.T) {
	// Only one main exists, so the serving-size-4 quota of 4 cannot be
	// met; the category list just comes back shorter.
	c := &staticCatalog{recipes: []*model.Recipe{
		testRecipe("m1", "main"),
		testRecipe("s1", "soup"),
	}}
	e := New(c, nil)

	plan := e.SuggestDailyMeals(model.DefaultUserProfile(), model.DefaultUserRequirements(), 4)

	lunch := plan.Meal(model.SlotLunch)
	if got := len(lunch.Recipes[model.CategoryMain]); got > 1 {
		t.Errorf("lunch mains = %d, cannot exceed catalog", got)
	}
	if got := len(lunch.Recipes[model.CategoryDessert]); got != 0 {
		t.Errorf("desserts = %d, want 0 when none exist", got)
	}
}

func TestDailyDefaultServingSize(t *testing.T) {
	c := testCatalog(8, "main", "side", "soup", "dessert")
	e := New(c, nil)

	plan := e.SuggestDailyMeals(model.DefaultUserProfile(), model.DefaultUserRequirements(), 0)
	if plan.Summary.ServingSize != DefaultServingSize {
		t.Errorf("serving size = %d, want default %d", plan.Summary.ServingSize, DefaultServingSize)
	}
}
