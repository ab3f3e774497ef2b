// Package family resolves stored household profiles. A request that carries
// only a family id gets its preference lists from here instead of shipping
// them in the request body.
package family

import (
	"fmt"
	"os"
	"sync"

	"github.com/manhnguyen41/FoodRecommender/internal/model"

	"gopkg.in/yaml.v3"
)

// Provider looks up the stored profile of one family.
type Provider interface {
	Profile(familyID string) (*model.UserProfile, error)
}

// StaticProvider serves profiles from a yaml file loaded at startup.
type StaticProvider struct {
	profiles map[string]*model.UserProfile
	mu       sync.RWMutex
}

type staticConfig struct {
	Families []familyEntry `yaml:"families"`
}

type familyEntry struct {
	ID                       string   `yaml:"id"`
	FavoriteIngredients      []string `yaml:"favorite_ingredients"`
	NotFavoriteIngredients   []string `yaml:"not_favorite_ingredients"`
	AllergyIngredients       []string `yaml:"allergy_ingredients"`
	FavoriteRecipes          []string `yaml:"favorite_recipes"`
	NotFavoriteRecipes       []string `yaml:"not_favorite_recipes"`
	SuggestedDietIngredients []string `yaml:"suggested_diet_ingredients"`
	Budget                   float64  `yaml:"budget"`
	CookingTime              int      `yaml:"cooking_time"`
}

// NewStaticProvider loads family profiles from a yaml config file.
func NewStaticProvider(configPath string) (*StaticProvider, error) {
	data, err := os.ReadFile(configPath)
	if err != nil {
		return nil, fmt.Errorf("failed to read family config file: %w", err)
	}

	var config staticConfig
	if err := yaml.Unmarshal(data, &config); err != nil {
		return nil, fmt.Errorf("failed to parse family config: %w", err)
	}

	profiles := make(map[string]*model.UserProfile, len(config.Families))
	for _, entry := range config.Families {
		if entry.ID == "" {
			continue
		}
		profiles[entry.ID] = entry.toProfile()
	}

	return &StaticProvider{profiles: profiles}, nil
}

func (e familyEntry) toProfile() *model.UserProfile {
	p := model.DefaultUserProfile()
	p.FamilyID = e.ID
	p.FavoriteIngredientIDs = toIngredientIDs(e.FavoriteIngredients)
	p.NotFavoriteIngredientIDs = toIngredientIDs(e.NotFavoriteIngredients)
	p.AllergyIngredientIDs = toIngredientIDs(e.AllergyIngredients)
	p.SuggestedDietModeIngredientIDs = toIngredientIDs(e.SuggestedDietIngredients)
	p.FavoriteRecipeIDs = toRecipeIDs(e.FavoriteRecipes)
	p.NotFavoriteRecipeIDs = toRecipeIDs(e.NotFavoriteRecipes)
	p.Budget = e.Budget
	p.CookingTime = e.CookingTime
	return p
}

func toIngredientIDs(raw []string) []model.IngredientID {
	ids := make([]model.IngredientID, 0, len(raw))
	for _, r := range raw {
		ids = append(ids, model.IngredientID(r))
	}
	return ids
}

func toRecipeIDs(raw []string) []model.RecipeID {
	ids := make([]model.RecipeID, 0, len(raw))
	for _, r := range raw {
		ids = append(ids, model.RecipeID(r))
	}
	return ids
}

// Profile returns a copy of the stored profile for familyID. Callers own the
// copy and may mutate it freely.
func (p *StaticProvider) Profile(familyID string) (*model.UserProfile, error) {
	p.mu.RLock()
	defer p.mu.RUnlock()

	stored, ok := p.profiles[familyID]
	if !ok {
		return nil, fmt.Errorf("family not found: %s", familyID)
	}
	return stored.Clone(), nil
}
