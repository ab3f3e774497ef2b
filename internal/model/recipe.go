package model

// RecipeID, IngredientID and TagID are opaque identifiers. All id
// comparisons in the engine are typed-string equality; nothing re-stringifies
// raw values at call sites.
type RecipeID string

type IngredientID string

type TagID string

// RecipeIngredient links a recipe to one of its ingredients.
type RecipeIngredient struct {
	IngredientID IngredientID `json:"ingredient_id"`
	Name         string       `json:"name"`
}

// RecipeTag links a recipe to one of its tags. Groups carries the tag group
// column from the source database.
type RecipeTag struct {
	TagID  TagID  `json:"tag_id"`
	Name   string `json:"name"`
	Groups []int  `json:"group,omitempty"`
}

// Recipe is one dish in the catalog. The engine only reads it; the derived
// Methods/RecipeTypes/MealTypes lists are filled and canonicalized by the
// catalog provider at load time.
type Recipe struct {
	ID          RecipeID           `json:"id"`
	Name        string             `json:"name"`
	Cost        float64            `json:"cost"`
	CookingTime int                `json:"cooking_time"`
	Difficulty  string             `json:"difficulty"` // ordinal, "1" when unset
	Ingredients []RecipeIngredient `json:"ingredients"`
	Tags        []RecipeTag        `json:"tags"`
	Methods     []string           `json:"method"`
	RecipeTypes []string           `json:"recipe_type"`
	MealTypes   []string           `json:"meal_type"`
}

// IngredientIDs returns the ids of the recipe's ingredient associations.
func (r *Recipe) IngredientIDs() []IngredientID {
	ids := make([]IngredientID, 0, len(r.Ingredients))
	for _, ing := range r.Ingredients {
		ids = append(ids, ing.IngredientID)
	}
	return ids
}

// TagIDs returns the ids of the recipe's tag associations.
func (r *Recipe) TagIDs() []TagID {
	ids := make([]TagID, 0, len(r.Tags))
	for _, tag := range r.Tags {
		ids = append(ids, tag.TagID)
	}
	return ids
}

// Ingredient is used mostly as a key into the ingredient similarity matrix.
type Ingredient struct {
	ID           IngredientID `json:"ingredient_id"`
	Name         string       `json:"name"`
	Cost         float64      `json:"cost,omitempty"`
	AllergenFlag bool         `json:"allergen_flag,omitempty"`
	Category     string       `json:"category,omitempty"`
}

// Tag is used mostly as a key into the tag similarity matrix.
type Tag struct {
	ID     TagID  `json:"tag_id"`
	Name   string `json:"name"`
	Type   string `json:"type,omitempty"`
	Groups []int  `json:"group,omitempty"`
}
