// Package matrix holds precomputed pairwise similarity lookups and their
// on-disk JSON cache. A missing pair or a missing matrix always reads as
// similarity 0 so scoring code never branches on availability.
package matrix

import "github.com/manhnguyen41/FoodRecommender/internal/model"

// Matrix is a sparse symmetric similarity lookup keyed by id pairs.
// Values are expected in [0, 1] but nothing enforces it.
type Matrix struct {
	rows map[string]map[string]float64
}

// New returns an empty matrix.
func New() *Matrix {
	return &Matrix{rows: make(map[string]map[string]float64)}
}

// Set stores the similarity for (a, b) in both directions.
func (m *Matrix) Set(a, b string, sim float64) {
	m.set(a, b, sim)
	if a != b {
		m.set(b, a, sim)
	}
}

func (m *Matrix) set(a, b string, sim float64) {
	row, ok := m.rows[a]
	if !ok {
		row = make(map[string]float64)
		m.rows[a] = row
	}
	row[b] = sim
}

// Similarity returns the stored value for (a, b), or 0 when unknown.
// Identical ids are always similarity 1.
func (m *Matrix) Similarity(a, b string) float64 {
	if a == b && a != "" {
		return 1.0
	}
	if row, ok := m.rows[a]; ok {
		return row[b]
	}
	return 0
}

// Has reports whether id appears as a row key.
func (m *Matrix) Has(id string) bool {
	_, ok := m.rows[id]
	return ok
}

// Len returns the number of row keys.
func (m *Matrix) Len() int {
	return len(m.rows)
}

// rowsCopy returns the raw rows for serialization.
func (m *Matrix) rowsCopy() map[string]map[string]float64 {
	out := make(map[string]map[string]float64, len(m.rows))
	for a, row := range m.rows {
		dst := make(map[string]float64, len(row))
		for b, sim := range row {
			dst[b] = sim
		}
		out[a] = dst
	}
	return out
}

// Set is the bundle of similarity matrices the scorer consumes. Any field
// may be nil; the scorer falls back to attribute heuristics for missing ones.
type Set struct {
	Recipe     *Matrix
	Ingredient *Matrix
	Tag        *Matrix
}

// RecipeSimilarity is a nil-safe lookup on the recipe matrix.
func (s *Set) RecipeSimilarity(a, b model.RecipeID) float64 {
	if s == nil || s.Recipe == nil {
		return 0
	}
	return s.Recipe.Similarity(string(a), string(b))
}

// IngredientSimilarity is a nil-safe lookup on the ingredient matrix.
func (s *Set) IngredientSimilarity(a, b model.IngredientID) float64 {
	if s == nil || s.Ingredient == nil {
		return 0
	}
	return s.Ingredient.Similarity(string(a), string(b))
}

// TagSimilarity is a nil-safe lookup on the tag matrix.
func (s *Set) TagSimilarity(a, b model.TagID) float64 {
	if s == nil || s.Tag == nil {
		return 0
	}
	return s.Tag.Similarity(string(a), string(b))
}

// HasIngredientMatrix reports whether ingredient similarities are loaded.
func (s *Set) HasIngredientMatrix() bool {
	return s != nil && s.Ingredient != nil && s.Ingredient.Len() > 0
}

// HasTagMatrix reports whether tag similarities are loaded.
func (s *Set) HasTagMatrix() bool {
	return s != nil && s.Tag != nil && s.Tag.Len() > 0
}

// HasRecipeMatrix reports whether recipe similarities are loaded.
func (s *Set) HasRecipeMatrix() bool {
	return s != nil && s.Recipe != nil && s.Recipe.Len() > 0
}
