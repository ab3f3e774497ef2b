package engine

import (
	"errors"

	"github.com/manhnguyen41/FoodRecommender/internal/model"
)

// Replacement reason codes.
const (
	ReasonIngredients = "ingredients"
	ReasonDifficulty  = "difficulty"
	ReasonMethod      = "method"
)

var (
	// ErrMealNotFound means the plan has no meal entry for the slot.
	ErrMealNotFound = errors.New("meal not found in plan")
	// ErrRecipeNotFound means the id to replace is not in the catalog.
	ErrRecipeNotFound = errors.New("recipe not found")
	// ErrUnknownReason means the reason code is not one of the three
	// supported values.
	ErrUnknownReason = errors.New("unknown replacement reason")
)

// ReplaceRecipe swaps one dish of the plan for a fresh recommendation, chosen
// according to the stated reason:
//
//   - ingredients: the removed recipe is temporarily disliked so the scorer
//     steers away from similar dishes;
//   - difficulty: the difficulty ceiling drops one step below the removed
//     recipe's level;
//   - method: the removed recipe's cooking methods are excluded outright.
//
// The candidate search stays inside the removed recipe's own dish category
// (no category constraint for breakfast). On success the new recipe replaces
// the first occurrence of the old id in the meal entry and is marked cooked;
// when no candidate survives, the plan is left untouched and (nil, 0, nil) is
// returned. Plan/catalog lookup failures and bad reason codes are errors and
// never mutate anything.
func (e *Engine) ReplaceRecipe(plan *model.DailyPlan, slot string, oldID model.RecipeID, reason string, profile *model.UserProfile, req *model.UserRequirements) (*model.Recipe, float64, error) {
	meal := plan.Meal(slot)
	if meal == nil {
		return nil, 0, ErrMealNotFound
	}
	oldRecipe, ok := e.byID[oldID]
	if !ok {
		return nil, 0, ErrRecipeNotFound
	}

	mealReq := req.Clone()
	mealReq.MealType = slot
	if mealReq.Difficulty == "" {
		mealReq.Difficulty = model.DefaultDifficulty
	}
	if slot == model.SlotBreakfast {
		mealReq.RecipeTypes = nil
	} else if len(oldRecipe.RecipeTypes) > 0 {
		mealReq.RecipeTypes = append([]string(nil), oldRecipe.RecipeTypes...)
	}

	searchProfile := profile
	switch reason {
	case ReasonIngredients:
		searchProfile = profile.Clone()
		searchProfile.AddNotFavorite(oldID)
	case ReasonDifficulty:
		switch oldRecipe.Difficulty {
		case "2":
			mealReq.Difficulty = "1"
		case "3":
			mealReq.Difficulty = "2"
		}
	case ReasonMethod:
		mealReq.ExcludeMethods = append([]string(nil), oldRecipe.Methods...)
	default:
		return nil, 0, ErrUnknownReason
	}

	candidates, scores := e.RecommendTopK(searchProfile, mealReq, 1)
	if len(candidates) == 0 {
		return nil, 0, nil
	}

	newRecipe, newScore := candidates[0], scores[0]
	profile.MarkCooked(newRecipe.ID)
	patchMeal(meal, oldID, newRecipe.ID)
	return newRecipe, newScore, nil
}

// patchMeal rewrites the first occurrence of oldID in any category list of
// the meal with newID. Category sizes never change.
func patchMeal(meal *model.MealEntry, oldID, newID model.RecipeID) {
	for category, ids := range meal.Recipes {
		for i, id := range ids {
			if id == oldID {
				meal.Recipes[category][i] = newID
				return
			}
		}
	}
}
