package engine

import (
	"fmt"

	"github.com/manhnguyen41/FoodRecommender/internal/model"
)

// staticCatalog is an in-memory catalog.Provider for tests.
type staticCatalog struct {
	recipes []*model.Recipe
}

func (s *staticCatalog) Recipes() []*model.Recipe        { return s.recipes }
func (s *staticCatalog) Ingredients() []model.Ingredient { return nil }
func (s *staticCatalog) Tags() []model.Tag               { return nil }

func (s *staticCatalog) Recipe(id model.RecipeID) (*model.Recipe, error) {
	for _, r := range s.recipes {
		if r.ID == id {
			return r, nil
		}
	}
	return nil, fmt.Errorf("recipe not found: %s", id)
}

// testRecipe builds a recipe eligible for every meal slot unless overridden.
func testRecipe(id string, categories ...string) *model.Recipe {
	return &model.Recipe{
		ID:          model.RecipeID(id),
		Name:        "recipe " + id,
		Difficulty:  "1",
		RecipeTypes: categories,
		MealTypes:   []string{"breakfast", "lunch", "dinner"},
	}
}

// testCatalog builds n recipes per category, ids like "main-0", "soup-1".
func testCatalog(perCategory int, categories ...string) *staticCatalog {
	c := &staticCatalog{}
	for _, cat := range categories {
		for i := 0; i < perCategory; i++ {
			c.recipes = append(c.recipes, testRecipe(fmt.Sprintf("%s-%d", cat, i), cat))
		}
	}
	return c
}
