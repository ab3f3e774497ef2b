// Package catalog loads the recipe, ingredient and tag data the engine runs
// against. Providers normalize raw data at load time: tag groups are split
// into method/recipe-type/meal-type lists and Vietnamese labels are rewritten
// to canonical lowercase English, so the engine never sees raw vocabulary.
package catalog

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sync"

	"github.com/manhnguyen41/FoodRecommender/internal/model"
)

// Provider hands out the immutable catalog of one engine instance.
type Provider interface {
	Recipes() []*model.Recipe
	Ingredients() []model.Ingredient
	Tags() []model.Tag
	Recipe(id model.RecipeID) (*model.Recipe, error)
}

// File names inside a FileProvider data directory.
const (
	recipesFile     = "recipes.json"
	ingredientsFile = "ingredients.json"
	tagsFile        = "tags.json"
)

// FileProvider reads the catalog from JSON files exported from the source
// database.
type FileProvider struct {
	recipes     []*model.Recipe
	ingredients []model.Ingredient
	tags        []model.Tag
	byID        map[model.RecipeID]*model.Recipe
	mu          sync.RWMutex
}

// NewFileProvider loads recipes.json, ingredients.json and tags.json from
// dataDir. Missing ingredients/tags files are tolerated; a missing recipes
// file is an error.
func NewFileProvider(dataDir string) (*FileProvider, error) {
	p := &FileProvider{byID: make(map[model.RecipeID]*model.Recipe)}

	var recipes []*model.Recipe
	if err := readJSON(filepath.Join(dataDir, recipesFile), &recipes); err != nil {
		return nil, fmt.Errorf("failed to load recipes: %w", err)
	}
	for _, r := range recipes {
		normalizeRecipe(r)
		p.recipes = append(p.recipes, r)
		p.byID[r.ID] = r
	}

	if err := readJSON(filepath.Join(dataDir, ingredientsFile), &p.ingredients); err != nil && !os.IsNotExist(err) {
		return nil, fmt.Errorf("failed to load ingredients: %w", err)
	}
	if err := readJSON(filepath.Join(dataDir, tagsFile), &p.tags); err != nil && !os.IsNotExist(err) {
		return nil, fmt.Errorf("failed to load tags: %w", err)
	}

	return p, nil
}

func readJSON(path string, v interface{}) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return err
	}
	if err := json.Unmarshal(data, v); err != nil {
		return fmt.Errorf("failed to parse %s: %w", filepath.Base(path), err)
	}
	return nil
}

// normalizeRecipe fills the derived label lists from tag groups when the
// source file does not carry them, then canonicalizes every label. Difficulty
// falls back to the easiest level when unset.
func normalizeRecipe(r *model.Recipe) {
	if len(r.Methods) == 0 && len(r.RecipeTypes) == 0 && len(r.MealTypes) == 0 {
		r.Methods, r.RecipeTypes, r.MealTypes = deriveFromTags(r.Tags)
	}
	r.Methods = canonicalizeAll(r.Methods)
	r.RecipeTypes = canonicalizeAll(r.RecipeTypes)
	r.MealTypes = canonicalizeAll(r.MealTypes)
	if r.Difficulty == "" {
		r.Difficulty = model.DefaultDifficulty
	}
}

// Recipes returns all loaded recipes.
func (p *FileProvider) Recipes() []*model.Recipe {
	p.mu.RLock()
	defer p.mu.RUnlock()
	return p.recipes
}

// Ingredients returns all loaded ingredients.
func (p *FileProvider) Ingredients() []model.Ingredient {
	p.mu.RLock()
	defer p.mu.RUnlock()
	return p.ingredients
}

// Tags returns all loaded tags.
func (p *FileProvider) Tags() []model.Tag {
	p.mu.RLock()
	defer p.mu.RUnlock()
	return p.tags
}

// Recipe looks up one recipe by id.
func (p *FileProvider) Recipe(id model.RecipeID) (*model.Recipe, error) {
	p.mu.RLock()
	defer p.mu.RUnlock()

	r, ok := p.byID[id]
	if !ok {
		return nil, fmt.Errorf("recipe not found: %s", id)
	}
	return r, nil
}
