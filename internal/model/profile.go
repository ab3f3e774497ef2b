package model

// DefaultDifficulty is the easiest difficulty level, used whenever a profile,
// requirement or recipe does not state one.
const DefaultDifficulty = "1"

// MealTypeAll disables meal-slot filtering in UserRequirements.
const MealTypeAll = "all"

// UserProfile is the mutable working state of one planning session.
// CookedRecipeIDs and NotFavoriteRecipeIDs are append-only accumulators while
// a plan is assembled: they encode "already chosen this session" and
// "temporarily excluded" respectively. One request owns one profile; the
// server hands every request its own copy.
type UserProfile struct {
	FamilyID                           string            `json:"familyId"`
	FavoriteIngredientIDs              []IngredientID    `json:"favoriteIngredientIds"`
	NotFavoriteIngredientIDs           []IngredientID    `json:"notFavoriteIngredientIds"`
	AllergyIngredientIDs               []IngredientID    `json:"allergyIngredientIds"`
	SuggestedDietModeIngredientIDs     []IngredientID    `json:"suggestedDietModeIngredientIds"`
	SuggestedPathologyIngredientIDs    []IngredientID    `json:"suggestedPathologyIngredientIds"`
	NotSuggestedDietModeIngredientIDs  []IngredientID    `json:"notSuggestedDietModeIngredientIds"`
	NotSuggestedPathologyIngredientIDs []IngredientID    `json:"notSuggestedPathologyIngredientIds"`
	Budget                             float64           `json:"budget,omitempty"`
	CookingTime                        int               `json:"cookingTime,omitempty"`
	IncludeTags                        []TagID           `json:"includeTags"`
	ExcludeTags                        []TagID           `json:"excludeTags"`
	FavoriteRecipeIDs                  []RecipeID        `json:"favoriteRecipeIds"`
	NotFavoriteRecipeIDs               []RecipeID        `json:"notFavoriteRecipeIds"`
	CookedRecipeIDs                    []RecipeID        `json:"cookedRecipeIds"`
	FeedbackRecipeIDs                  map[RecipeID]int  `json:"feedbackRecipeIds"`
}

// DefaultUserProfile returns a profile with all collections empty.
func DefaultUserProfile() *UserProfile {
	return &UserProfile{
		FamilyID:          "default",
		FeedbackRecipeIDs: make(map[RecipeID]int),
	}
}

// HasCooked reports whether id was already picked this session.
func (p *UserProfile) HasCooked(id RecipeID) bool {
	for _, cooked := range p.CookedRecipeIDs {
		if cooked == id {
			return true
		}
	}
	return false
}

// MarkCooked appends id to the cooked set. Idempotent.
func (p *UserProfile) MarkCooked(id RecipeID) {
	if id == "" || p.HasCooked(id) {
		return
	}
	p.CookedRecipeIDs = append(p.CookedRecipeIDs, id)
}

// AddNotFavorite appends id to the dislike set and reports whether it was
// actually added, so a caller can later undo exactly its own additions.
func (p *UserProfile) AddNotFavorite(id RecipeID) bool {
	if id == "" {
		return false
	}
	for _, existing := range p.NotFavoriteRecipeIDs {
		if existing == id {
			return false
		}
	}
	p.NotFavoriteRecipeIDs = append(p.NotFavoriteRecipeIDs, id)
	return true
}

// RemoveNotFavorite removes the first occurrence of id from the dislike set.
func (p *UserProfile) RemoveNotFavorite(id RecipeID) {
	for i, existing := range p.NotFavoriteRecipeIDs {
		if existing == id {
			p.NotFavoriteRecipeIDs = append(p.NotFavoriteRecipeIDs[:i], p.NotFavoriteRecipeIDs[i+1:]...)
			return
		}
	}
}

// Clone returns a deep copy. The replacement engine scores against a
// throwaway copy without leaking temporary dislikes into the session profile.
func (p *UserProfile) Clone() *UserProfile {
	clone := *p
	clone.FavoriteIngredientIDs = append([]IngredientID(nil), p.FavoriteIngredientIDs...)
	clone.NotFavoriteIngredientIDs = append([]IngredientID(nil), p.NotFavoriteIngredientIDs...)
	clone.AllergyIngredientIDs = append([]IngredientID(nil), p.AllergyIngredientIDs...)
	clone.SuggestedDietModeIngredientIDs = append([]IngredientID(nil), p.SuggestedDietModeIngredientIDs...)
	clone.SuggestedPathologyIngredientIDs = append([]IngredientID(nil), p.SuggestedPathologyIngredientIDs...)
	clone.NotSuggestedDietModeIngredientIDs = append([]IngredientID(nil), p.NotSuggestedDietModeIngredientIDs...)
	clone.NotSuggestedPathologyIngredientIDs = append([]IngredientID(nil), p.NotSuggestedPathologyIngredientIDs...)
	clone.IncludeTags = append([]TagID(nil), p.IncludeTags...)
	clone.ExcludeTags = append([]TagID(nil), p.ExcludeTags...)
	clone.FavoriteRecipeIDs = append([]RecipeID(nil), p.FavoriteRecipeIDs...)
	clone.NotFavoriteRecipeIDs = append([]RecipeID(nil), p.NotFavoriteRecipeIDs...)
	clone.CookedRecipeIDs = append([]RecipeID(nil), p.CookedRecipeIDs...)
	clone.FeedbackRecipeIDs = make(map[RecipeID]int, len(p.FeedbackRecipeIDs))
	for id, rating := range p.FeedbackRecipeIDs {
		clone.FeedbackRecipeIDs[id] = rating
	}
	return &clone
}

// UserRequirements are the situational constraints of one recommendation
// call. Zero values (empty string, 0) mean "no constraint".
type UserRequirements struct {
	MealType               string         `json:"mealType"`
	CookingTime            int            `json:"cookingTime,omitempty"`
	Budget                 float64        `json:"budget,omitempty"`
	Difficulty             string         `json:"difficulty"`
	ExcludeMethods         []string       `json:"excludeMethod"`
	RecipeTypes            []string       `json:"recipeType"`
	AvailableIngredientIDs []IngredientID `json:"availableIngredientIds"`
	ServingSize            int            `json:"serving_size,omitempty"`
}

// DefaultUserRequirements returns requirements with no meal filter and the
// easiest difficulty ceiling.
func DefaultUserRequirements() *UserRequirements {
	return &UserRequirements{
		MealType:   MealTypeAll,
		Difficulty: DefaultDifficulty,
	}
}

// Clone returns a copy whose slice fields may be reassigned freely.
func (r *UserRequirements) Clone() *UserRequirements {
	clone := *r
	clone.ExcludeMethods = append([]string(nil), r.ExcludeMethods...)
	clone.RecipeTypes = append([]string(nil), r.RecipeTypes...)
	clone.AvailableIngredientIDs = append([]IngredientID(nil), r.AvailableIngredientIDs...)
	return &clone
}
