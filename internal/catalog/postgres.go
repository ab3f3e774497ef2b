package catalog

import (
	"context"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/manhnguyen41/FoodRecommender/internal/model"
)

// PostgresProvider loads the catalog once from the food database at startup
// and serves it from memory, so request handling never touches the pool.
type PostgresProvider struct {
	recipes     []*model.Recipe
	ingredients []model.Ingredient
	tags        []model.Tag
	byID        map[model.RecipeID]*model.Recipe
}

// ConnectPool opens a pgx pool against dsn and verifies it with a ping.
func ConnectPool(ctx context.Context, dsn string) (*pgxpool.Pool, error) {
	config, err := pgxpool.ParseConfig(dsn)
	if err != nil {
		return nil, fmt.Errorf("failed to parse database dsn: %w", err)
	}
	config.MaxConns = 10
	config.MinConns = 2
	config.MaxConnLifetime = time.Hour

	pool, err := pgxpool.NewWithConfig(ctx, config)
	if err != nil {
		return nil, fmt.Errorf("failed to create connection pool: %w", err)
	}
	if err := pool.Ping(ctx); err != nil {
		pool.Close()
		return nil, fmt.Errorf("failed to ping database: %w", err)
	}
	return pool, nil
}

// NewPostgresProvider reads recipes, their ingredient and tag joins, and the
// flat ingredient/tag lists, then normalizes every recipe.
func NewPostgresProvider(ctx context.Context, pool *pgxpool.Pool) (*PostgresProvider, error) {
	p := &PostgresProvider{byID: make(map[model.RecipeID]*model.Recipe)}

	recipes, err := loadRecipes(ctx, pool)
	if err != nil {
		return nil, err
	}
	ingredientsByRecipe, err := loadRecipeIngredients(ctx, pool)
	if err != nil {
		return nil, err
	}
	tagsByRecipe, err := loadRecipeTags(ctx, pool)
	if err != nil {
		return nil, err
	}

	for _, r := range recipes {
		r.Ingredients = ingredientsByRecipe[r.ID]
		r.Tags = tagsByRecipe[r.ID]
		normalizeRecipe(r)
		p.recipes = append(p.recipes, r)
		p.byID[r.ID] = r
	}

	if p.ingredients, err = loadIngredients(ctx, pool); err != nil {
		return nil, err
	}
	if p.tags, err = loadTags(ctx, pool); err != nil {
		return nil, err
	}

	return p, nil
}

func loadRecipes(ctx context.Context, pool *pgxpool.Pool) ([]*model.Recipe, error) {
	rows, err := pool.Query(ctx, `
		SELECT fr.id, fr.name, COALESCE(fr.cost, 0), COALESCE(fr.cooking_time, 0), COALESCE(fr.difficulty, '')
		FROM public.food_recipe fr`)
	if err != nil {
		return nil, fmt.Errorf("failed to query recipes: %w", err)
	}
	defer rows.Close()

	var recipes []*model.Recipe
	for rows.Next() {
		r := &model.Recipe{}
		if err := rows.Scan(&r.ID, &r.Name, &r.Cost, &r.CookingTime, &r.Difficulty); err != nil {
			return nil, fmt.Errorf("failed to scan recipe row: %w", err)
		}
		recipes = append(recipes, r)
	}
	return recipes, rows.Err()
}

func loadRecipeIngredients(ctx context.Context, pool *pgxpool.Pool) (map[model.RecipeID][]model.RecipeIngredient, error) {
	rows, err := pool.Query(ctx, `
		SELECT fri.recipe_id, fi.id, fi.name
		FROM public.food_recipe_ingredient fri
		JOIN public.food_ingredient fi ON fri.ingredient_id::uuid = fi.id`)
	if err != nil {
		return nil, fmt.Errorf("failed to query recipe ingredients: %w", err)
	}
	defer rows.Close()

	byRecipe := make(map[model.RecipeID][]model.RecipeIngredient)
	for rows.Next() {
		var recipeID model.RecipeID
		var ing model.RecipeIngredient
		if err := rows.Scan(&recipeID, &ing.IngredientID, &ing.Name); err != nil {
			return nil, fmt.Errorf("failed to scan recipe ingredient row: %w", err)
		}
		byRecipe[recipeID] = append(byRecipe[recipeID], ing)
	}
	return byRecipe, rows.Err()
}

func loadRecipeTags(ctx context.Context, pool *pgxpool.Pool) (map[model.RecipeID][]model.RecipeTag, error) {
	rows, err := pool.Query(ctx, `
		SELECT frt.recipe_id, ft.id, ft.name, ft."group"
		FROM public.food_recipe_tag frt
		JOIN public.food_tag ft ON frt.tag_id::uuid = ft.id
		WHERE frt.tag_id IS NOT NULL AND frt.tag_id <> ''`)
	if err != nil {
		return nil, fmt.Errorf("failed to query recipe tags: %w", err)
	}
	defer rows.Close()

	byRecipe := make(map[model.RecipeID][]model.RecipeTag)
	for rows.Next() {
		var recipeID model.RecipeID
		var tag model.RecipeTag
		var groups []int32
		if err := rows.Scan(&recipeID, &tag.TagID, &tag.Name, &groups); err != nil {
			return nil, fmt.Errorf("failed to scan recipe tag row: %w", err)
		}
		tag.Groups = toInts(groups)
		byRecipe[recipeID] = append(byRecipe[recipeID], tag)
	}
	return byRecipe, rows.Err()
}

func loadIngredients(ctx context.Context, pool *pgxpool.Pool) ([]model.Ingredient, error) {
	rows, err := pool.Query(ctx, `
		SELECT fi.id, fi.name, COALESCE(fi.cost, 0), COALESCE(fi.allergen_flag, false), COALESCE(fi.category, '')
		FROM public.food_ingredient fi`)
	if err != nil {
		return nil, fmt.Errorf("failed to query ingredients: %w", err)
	}
	defer rows.Close()

	var ingredients []model.Ingredient
	for rows.Next() {
		var ing model.Ingredient
		if err := rows.Scan(&ing.ID, &ing.Name, &ing.Cost, &ing.AllergenFlag, &ing.Category); err != nil {
			return nil, fmt.Errorf("failed to scan ingredient row: %w", err)
		}
		ingredients = append(ingredients, ing)
	}
	return ingredients, rows.Err()
}

func loadTags(ctx context.Context, pool *pgxpool.Pool) ([]model.Tag, error) {
	rows, err := pool.Query(ctx, `
		SELECT ft.id, ft.name, COALESCE(ft.type, ''), ft."group"
		FROM public.food_tag ft`)
	if err != nil {
		return nil, fmt.Errorf("failed to query tags: %w", err)
	}
	defer rows.Close()

	var tags []model.Tag
	for rows.Next() {
		var tag model.Tag
		var groups []int32
		if err := rows.Scan(&tag.ID, &tag.Name, &tag.Type, &groups); err != nil {
			return nil, fmt.Errorf("failed to scan tag row: %w", err)
		}
		tag.Groups = toInts(groups)
		tags = append(tags, tag)
	}
	return tags, rows.Err()
}

func toInts(in []int32) []int {
	out := make([]int, 0, len(in))
	for _, v := range in {
		out = append(out, int(v))
	}
	return out
}

// Recipes returns all loaded recipes.
func (p *PostgresProvider) Recipes() []*model.Recipe { return p.recipes }

// Ingredients returns all loaded ingredients.
func (p *PostgresProvider) Ingredients() []model.Ingredient { return p.ingredients }

// Tags returns all loaded tags.
func (p *PostgresProvider) Tags() []model.Tag { return p.tags }

// Recipe looks up one recipe by id.
func (p *PostgresProvider) Recipe(id model.RecipeID) (*model.Recipe, error) {
	r, ok := p.byID[id]
	if !ok {
		return nil, fmt.Errorf("recipe not found: %s", id)
	}
	return r, nil
}
