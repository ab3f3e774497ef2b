package engine

import (
	"math/rand"
	"sort"
	"time"

	"github.com/manhnguyen41/FoodRecommender/internal/model"
)

type scoredRecipe struct {
	recipe *model.Recipe
	score  float64
}

// RecommendTopK filters the catalog through Eligible, scores the survivors,
// and returns the best k recipes with their scores as parallel slices. Fewer
// than k survivors yield shorter slices, never an error.
//
// When every survivor scores identically the candidates are shuffled before
// sorting, so repeated calls over a uniform catalog sample uniformly instead
// of returning a stable prefix. This is the only non-deterministic behavior
// in the engine.
func (e *Engine) RecommendTopK(profile *model.UserProfile, req *model.UserRequirements, k int) ([]*model.Recipe, []float64) {
	var scored []scoredRecipe
	for _, recipe := range e.recipes {
		if !Eligible(recipe, profile, req) {
			continue
		}
		scored = append(scored, scoredRecipe{
			recipe: recipe,
			score:  e.scorer.Score(recipe, profile, req),
		})
	}

	if allScoresEqual(scored) {
		r := rand.New(rand.NewSource(time.Now().UnixNano()))
		r.Shuffle(len(scored), func(i, j int) {
			scored[i], scored[j] = scored[j], scored[i]
		})
	}

	sort.SliceStable(scored, func(i, j int) bool {
		return scored[i].score > scored[j].score
	})

	if k > 0 && len(scored) > k {
		scored = scored[:k]
	}

	recipes := make([]*model.Recipe, 0, len(scored))
	scores := make([]float64, 0, len(scored))
	for _, sr := range scored {
		recipes = append(recipes, sr.recipe)
		scores = append(scores, sr.score)
	}
	return recipes, scores
}

func allScoresEqual(scored []scoredRecipe) bool {
	if len(scored) < 2 {
		return false
	}
	first := scored[0].score
	for _, sr := range scored[1:] {
		if sr.score != first {
			return false
		}
	}
	return true
}
