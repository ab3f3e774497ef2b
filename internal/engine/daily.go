package engine

import (
	"time"

	"github.com/manhnguyen41/FoodRecommender/internal/model"
)

// DefaultServingSize is assumed when a request does not state one.
const DefaultServingSize = 2

// mainDishCount and sideDishCount derive category quotas from the serving
// size: one soup and one dessert regardless, two mains per two eaters, one
// side per two eaters, each floored at one.
func mainDishCount(servingSize int) int {
	if n := (servingSize / 2) * 2; n > 1 {
		return n
	}
	return 1
}

func sideDishCount(servingSize int) int {
	if n := servingSize / 2; n > 1 {
		return n
	}
	return 1
}

// SuggestDailyMeals assembles one day of meals: a single uncategorized pick
// for breakfast, and a soup/main/side/dessert structure for lunch and dinner.
// Every pick is appended to the profile's cookedRecipeIds before the next
// category call, which is what keeps a recipe from appearing twice in the
// plan. Category order is therefore load-bearing and must stay
// soup, main, side, dessert.
func (e *Engine) SuggestDailyMeals(profile *model.UserProfile, req *model.UserRequirements, servingSize int) *model.DailyPlan {
	if servingSize <= 0 {
		servingSize = DefaultServingSize
	}

	plan := &model.DailyPlan{}
	for _, slot := range model.Slots {
		plan.Meals = append(plan.Meals, e.assembleMeal(slot, profile, req, servingSize))
	}

	total := 0
	mealCounts := make(map[string]int, len(plan.Meals))
	for _, meal := range plan.Meals {
		count := len(meal.RecipeIDs())
		mealCounts[meal.Slot] = count
		total += count
	}
	plan.Summary = model.DailySummary{
		TotalRecipes: total,
		MealCounts:   mealCounts,
		ServingSize:  servingSize,
		GeneratedAt:  time.Now().UTC().Format(time.RFC3339),
	}
	return plan
}

func (e *Engine) assembleMeal(slot string, profile *model.UserProfile, req *model.UserRequirements, servingSize int) *model.MealEntry {
	meal := model.NewMealEntry(slot)

	mealReq := req.Clone()
	mealReq.MealType = slot
	if mealReq.Difficulty == "" {
		mealReq.Difficulty = model.DefaultDifficulty
	}

	if slot == model.SlotBreakfast {
		// Breakfast is a single dish with no category constraint; the
		// pick is filed under "main".
		e.pickCategory(meal, model.CategoryMain, nil, profile, mealReq, 1)
		return meal
	}

	e.pickCategory(meal, model.CategorySoup, []string{model.CategorySoup}, profile, mealReq, 1)
	e.pickCategory(meal, model.CategoryMain, []string{model.CategoryMain}, profile, mealReq, mainDishCount(servingSize))
	e.pickCategory(meal, model.CategorySide, []string{model.CategorySide}, profile, mealReq, sideDishCount(servingSize))
	e.pickCategory(meal, model.CategoryDessert, []string{model.CategoryDessert}, profile, mealReq, 1)
	return meal
}

// pickCategory runs one top-k call constrained to recipeTypes and records the
// picks in both the meal and the profile. A shortfall against k is accepted
// silently; the category list just comes back shorter.
func (e *Engine) pickCategory(meal *model.MealEntry, category string, recipeTypes []string, profile *model.UserProfile, mealReq *model.UserRequirements, k int) {
	catReq := mealReq.Clone()
	catReq.RecipeTypes = recipeTypes

	picks, _ := e.RecommendTopK(profile, catReq, k)
	for _, recipe := range picks {
		meal.Add(category, recipe.ID)
		profile.MarkCooked(recipe.ID)
	}
}
