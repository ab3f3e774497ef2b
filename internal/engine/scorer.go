package engine

import (
	"strings"

	"github.com/manhnguyen41/FoodRecommender/internal/matrix"
	"github.com/manhnguyen41/FoodRecommender/internal/model"
)

// Scorer turns an eligible recipe into a ranking key. Scores are signed and
// unbounded; only their relative order matters.
type Scorer interface {
	Score(recipe *model.Recipe, profile *model.UserProfile, req *model.UserRequirements) float64
}

// Scoring weights of the matrix path.
const (
	availabilityExactThreshold = 0.9
	availabilityExactBonus     = 3.0
	availabilitySimWeight      = 2.0
	mealSlotBonusMatrix        = 5.0
)

// Scoring weights of the fallback path.
const (
	fallbackIngredientWeight     = 1.0
	fallbackTagWeight            = 0.5
	fallbackAvailabilityBonus    = 2.0
	fallbackSuggestedBonus       = 1.0
	mealSlotBonusFallback        = 2.0
	fallbackRecipeAffinityWeight = 2.0
)

// mealSlotSynonyms maps a meal slot to the labels a recipe's meal-type tags
// may carry for it. Matching is substring-based so compound labels still hit.
var mealSlotSynonyms = map[string][]string{
	model.SlotBreakfast: {"bữa sáng", "sáng", "breakfast", "morning"},
	model.SlotLunch:     {"bữa trưa", "trưa", "lunch", "noon"},
	model.SlotDinner:    {"bữa tối", "tối", "dinner", "evening"},
}

// mealSlotMatches reports whether any of the recipe's meal-type labels names
// the requested slot.
func mealSlotMatches(recipeMealTypes []string, mealType string) bool {
	if mealType == "" || mealType == model.MealTypeAll || len(recipeMealTypes) == 0 {
		return false
	}
	synonyms, ok := mealSlotSynonyms[strings.ToLower(mealType)]
	if !ok {
		return false
	}
	for _, label := range recipeMealTypes {
		lower := strings.ToLower(label)
		for _, syn := range synonyms {
			if strings.Contains(lower, syn) {
				return true
			}
		}
	}
	return false
}

// matrixScorer ranks by similarity lookups. Every term takes the maximum
// similarity over pairs whose ids both resolve in the matrix; a term with no
// resolvable pair contributes 0.
type matrixScorer struct {
	matrices *matrix.Set
}

func (s *matrixScorer) Score(recipe *model.Recipe, profile *model.UserProfile, req *model.UserRequirements) float64 {
	score := 0.0

	if sim, ok := s.maxIngredientSimilarity(recipe, profile.FavoriteIngredientIDs); ok {
		score += sim
	}
	if sim, ok := s.maxIngredientSimilarity(recipe, profile.NotFavoriteIngredientIDs); ok {
		score -= sim
	}

	if sim, ok := s.maxTagSimilarity(recipe, profile.IncludeTags); ok {
		score += sim
	}
	if sim, ok := s.maxTagSimilarity(recipe, profile.ExcludeTags); ok {
		score -= sim
	}

	score += s.availabilityScore(recipe, req.AvailableIngredientIDs)

	if sim, ok := s.maxIngredientSimilarity(recipe, profile.SuggestedDietModeIngredientIDs); ok {
		score += sim
	}
	if sim, ok := s.maxIngredientSimilarity(recipe, profile.SuggestedPathologyIngredientIDs); ok {
		score += sim
	}

	if mealSlotMatches(recipe.MealTypes, req.MealType) {
		score += mealSlotBonusMatrix
	}

	for _, favID := range profile.FavoriteRecipeIDs {
		score += s.matrices.RecipeSimilarity(favID, recipe.ID)
	}
	for _, notFavID := range profile.NotFavoriteRecipeIDs {
		score -= s.matrices.RecipeSimilarity(notFavID, recipe.ID)
	}

	return score
}

// maxIngredientSimilarity returns the maximum similarity between any user
// ingredient and any recipe ingredient, considering only pairs whose ids both
// resolve in the matrix. ok is false when no pair resolves.
func (s *matrixScorer) maxIngredientSimilarity(recipe *model.Recipe, ids []model.IngredientID) (float64, bool) {
	if len(ids) == 0 || len(recipe.Ingredients) == 0 {
		return 0, false
	}
	best, found := 0.0, false
	for _, userID := range ids {
		if !s.matrices.Ingredient.Has(string(userID)) {
			continue
		}
		for _, ing := range recipe.Ingredients {
			if !s.matrices.Ingredient.Has(string(ing.IngredientID)) {
				continue
			}
			sim := s.matrices.IngredientSimilarity(userID, ing.IngredientID)
			if !found || sim > best {
				best, found = sim, true
			}
		}
	}
	return best, found
}

func (s *matrixScorer) maxTagSimilarity(recipe *model.Recipe, ids []model.TagID) (float64, bool) {
	if len(ids) == 0 || len(recipe.Tags) == 0 {
		return 0, false
	}
	best, found := 0.0, false
	for _, userID := range ids {
		if !s.matrices.Tag.Has(string(userID)) {
			continue
		}
		for _, tag := range recipe.Tags {
			if !s.matrices.Tag.Has(string(tag.TagID)) {
				continue
			}
			sim := s.matrices.TagSimilarity(userID, tag.TagID)
			if !found || sim > best {
				best, found = sim, true
			}
		}
	}
	return best, found
}

// availabilityScore rewards recipes the user can cook with ingredients at
// hand: a near-exact ingredient match earns a flat bonus, anything weaker
// earns a scaled similarity, and only the best pair counts.
func (s *matrixScorer) availabilityScore(recipe *model.Recipe, available []model.IngredientID) float64 {
	if len(available) == 0 || len(recipe.Ingredients) == 0 {
		return 0
	}
	best, found := 0.0, false
	for _, availID := range available {
		if !s.matrices.Ingredient.Has(string(availID)) {
			continue
		}
		for _, ing := range recipe.Ingredients {
			if !s.matrices.Ingredient.Has(string(ing.IngredientID)) {
				continue
			}
			sim := s.matrices.IngredientSimilarity(availID, ing.IngredientID)
			pairScore := sim * availabilitySimWeight
			if sim > availabilityExactThreshold {
				pairScore = availabilityExactBonus
			}
			if !found || pairScore > best {
				best, found = pairScore, true
			}
		}
	}
	if !found {
		return 0
	}
	return best
}

// fallbackScorer ranks by exact id membership with fixed weights. It still
// uses the recipe similarity matrix for recipe-level affinity when loaded.
type fallbackScorer struct {
	matrices *matrix.Set
}

func (s *fallbackScorer) Score(recipe *model.Recipe, profile *model.UserProfile, req *model.UserRequirements) float64 {
	score := 0.0

	for _, id := range profile.FavoriteIngredientIDs {
		if hasIngredient(recipe, id) {
			score += fallbackIngredientWeight
		}
	}
	for _, id := range profile.NotFavoriteIngredientIDs {
		if hasIngredient(recipe, id) {
			score -= fallbackIngredientWeight
		}
	}

	for _, id := range profile.IncludeTags {
		if hasTag(recipe, id) {
			score += fallbackTagWeight
		}
	}
	for _, id := range profile.ExcludeTags {
		if hasTag(recipe, id) {
			score -= fallbackTagWeight
		}
	}

	for _, id := range req.AvailableIngredientIDs {
		if hasIngredient(recipe, id) {
			score += fallbackAvailabilityBonus
		}
	}

	for _, id := range profile.SuggestedDietModeIngredientIDs {
		if hasIngredient(recipe, id) {
			score += fallbackSuggestedBonus
		}
	}
	for _, id := range profile.SuggestedPathologyIngredientIDs {
		if hasIngredient(recipe, id) {
			score += fallbackSuggestedBonus
		}
	}

	if mealSlotMatches(recipe.MealTypes, req.MealType) {
		score += mealSlotBonusFallback
	}

	for _, favID := range profile.FavoriteRecipeIDs {
		score += s.matrices.RecipeSimilarity(favID, recipe.ID) * fallbackRecipeAffinityWeight
	}
	for _, notFavID := range profile.NotFavoriteRecipeIDs {
		score -= s.matrices.RecipeSimilarity(notFavID, recipe.ID) * fallbackRecipeAffinityWeight
	}

	return score
}

func hasIngredient(recipe *model.Recipe, id model.IngredientID) bool {
	for _, ing := range recipe.Ingredients {
		if ing.IngredientID == id {
			return true
		}
	}
	return false
}

func hasTag(recipe *model.Recipe, id model.TagID) bool {
	for _, tag := range recipe.Tags {
		if tag.TagID == id {
			return true
		}
	}
	return false
}
