// Package engine implements the meal-plan recommendation core: an
// eligibility filter, a multi-criteria scorer over similarity matrices, a
// top-k selector, and the daily/weekly plan assemblers built on top of them.
//
// The engine is synchronous and free of I/O. One planning request owns its
// UserProfile and UserRequirements exclusively; the engine mutates them in
// place as picks accumulate, so concurrent requests must each bring their own
// copies.
package engine

import (
	"github.com/manhnguyen41/FoodRecommender/internal/catalog"
	"github.com/manhnguyen41/FoodRecommender/internal/matrix"
	"github.com/manhnguyen41/FoodRecommender/internal/model"
)

// Engine holds the immutable catalog and similarity data of one instance.
type Engine struct {
	recipes  []*model.Recipe
	byID     map[model.RecipeID]*model.Recipe
	matrices *matrix.Set
	scorer   Scorer
}

// New builds an engine from a catalog provider and an optional matrix set.
// When the ingredient and tag matrices are both loaded the engine scores via
// similarity lookups; otherwise it falls back to exact-match bonuses.
func New(provider catalog.Provider, matrices *matrix.Set) *Engine {
	e := &Engine{
		matrices: matrices,
		byID:     make(map[model.RecipeID]*model.Recipe),
	}
	for _, r := range provider.Recipes() {
		e.recipes = append(e.recipes, r)
		e.byID[r.ID] = r
	}

	if matrices.HasIngredientMatrix() && matrices.HasTagMatrix() {
		e.scorer = &matrixScorer{matrices: matrices}
	} else {
		e.scorer = &fallbackScorer{matrices: matrices}
	}
	return e
}

// Recipes returns the engine's catalog.
func (e *Engine) Recipes() []*model.Recipe {
	return e.recipes
}

// Recipe looks up a catalog recipe by id.
func (e *Engine) Recipe(id model.RecipeID) (*model.Recipe, bool) {
	r, ok := e.byID[id]
	return r, ok
}
