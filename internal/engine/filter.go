package engine

import (
	"strconv"
	"strings"

	"github.com/manhnguyen41/FoodRecommender/internal/model"
)

// Eligible reports whether recipe may be offered to this profile under these
// requirements. Pure predicate, no side effects.
func Eligible(recipe *model.Recipe, profile *model.UserProfile, req *model.UserRequirements) bool {
	if profile.HasCooked(recipe.ID) {
		return false
	}

	if containsAnyIngredient(recipe, profile.AllergyIngredientIDs) ||
		containsAnyIngredient(recipe, profile.NotSuggestedPathologyIngredientIDs) ||
		containsAnyIngredient(recipe, profile.NotSuggestedDietModeIngredientIDs) {
		return false
	}

	if req.MealType != "" && req.MealType != model.MealTypeAll {
		if !matchesMealType(recipe.MealTypes, req.MealType) {
			return false
		}
	}

	if len(req.RecipeTypes) > 0 {
		if !matchesRecipeType(recipe.RecipeTypes, req.RecipeTypes) {
			return false
		}
	}

	if req.Difficulty != "" {
		// Both sides must parse; unparseable values skip the check
		// instead of rejecting.
		recipeDiff, err1 := strconv.Atoi(difficultyOrDefault(recipe.Difficulty))
		reqDiff, err2 := strconv.Atoi(req.Difficulty)
		if err1 == nil && err2 == nil && recipeDiff > reqDiff {
			return false
		}
	}

	if len(req.ExcludeMethods) > 0 && intersects(recipe.Methods, req.ExcludeMethods) {
		return false
	}

	if ceiling := lesserCeilingFloat(profile.Budget, req.Budget); ceiling > 0 && recipe.Cost > ceiling {
		return false
	}
	if ceiling := lesserCeilingInt(profile.CookingTime, req.CookingTime); ceiling > 0 && recipe.CookingTime > ceiling {
		return false
	}

	return true
}

func difficultyOrDefault(d string) string {
	if d == "" {
		return model.DefaultDifficulty
	}
	return d
}

func containsAnyIngredient(recipe *model.Recipe, ids []model.IngredientID) bool {
	if len(ids) == 0 {
		return false
	}
	for _, ing := range recipe.Ingredients {
		for _, id := range ids {
			if ing.IngredientID == id {
				return true
			}
		}
	}
	return false
}

func matchesMealType(recipeMealTypes []string, want string) bool {
	if len(recipeMealTypes) == 0 {
		return false
	}
	for _, mt := range recipeMealTypes {
		if strings.EqualFold(mt, want) {
			return true
		}
	}
	return false
}

func matchesRecipeType(recipeTypes []string, wanted []string) bool {
	if len(recipeTypes) == 0 {
		return false
	}
	for _, rt := range recipeTypes {
		lower := strings.ToLower(rt)
		for _, want := range wanted {
			if lower == strings.ToLower(want) {
				return true
			}
		}
	}
	return false
}

func intersects(a, b []string) bool {
	for _, x := range a {
		for _, y := range b {
			if x == y {
				return true
			}
		}
	}
	return false
}

// lesserCeilingFloat returns the tighter of two optional ceilings; 0 means
// the ceiling is unset.
func lesserCeilingFloat(a, b float64) float64 {
	switch {
	case a <= 0:
		return b
	case b <= 0:
		return a
	case a < b:
		return a
	default:
		return b
	}
}

func lesserCeilingInt(a, b int) int {
	switch {
	case a <= 0:
		return b
	case b <= 0:
		return a
	case a < b:
		return a
	default:
		return b
	}
}
