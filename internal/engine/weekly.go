package engine

import (
	"time"

	"github.com/manhnguyen41/FoodRecommender/internal/model"
)

// GenerateWeeklyPlan runs the daily assembler once per weekday with the same
// profile carried across days, so cookedRecipeIds accumulate over the whole
// week. Yesterday's main dishes are pushed into notFavoriteRecipeIds before
// each day runs, a soft rotation penalty through the scorer's dislike term
// rather than a hard exclusion. The penalty is a one-day sliding window: ids
// the rotation itself added are removed again on the next iteration, and
// genuine user dislikes are never touched.
func (e *Engine) GenerateWeeklyPlan(profile *model.UserProfile, req *model.UserRequirements, servingSize int) *model.WeeklyPlan {
	if servingSize <= 0 {
		servingSize = DefaultServingSize
	}

	plan := &model.WeeklyPlan{Days: make(map[string]*model.DailyPlan)}

	var penalized []model.RecipeID
	var prevMains []model.RecipeID
	for _, day := range model.Weekdays {
		for _, id := range penalized {
			profile.RemoveNotFavorite(id)
		}
		penalized = penalized[:0]
		for _, id := range prevMains {
			if profile.AddNotFavorite(id) {
				penalized = append(penalized, id)
			}
		}

		daily := e.SuggestDailyMeals(profile, req, servingSize)
		plan.Days[day] = daily
		prevMains = mainDishIDs(daily)
	}
	for _, id := range penalized {
		profile.RemoveNotFavorite(id)
	}

	breakdown := make(map[string]model.DayBreakdown, len(model.Weekdays))
	total := 0
	for _, day := range model.Weekdays {
		summary := plan.Days[day].Summary
		breakdown[day] = model.DayBreakdown{
			TotalRecipes: summary.TotalRecipes,
			MealCounts:   summary.MealCounts,
		}
		total += summary.TotalRecipes
	}
	plan.Summary = model.WeeklySummary{
		TotalRecipes:   total,
		ServingSize:    servingSize,
		GeneratedAt:    time.Now().UTC().Format(time.RFC3339),
		DailyBreakdown: breakdown,
	}
	return plan
}

// mainDishIDs collects the main-dish picks of a day's lunch and dinner.
// Breakfast is skipped: its single dish is filed under "main" but does not
// take part in rotation.
func mainDishIDs(daily *model.DailyPlan) []model.RecipeID {
	var ids []model.RecipeID
	for _, slot := range []string{model.SlotLunch, model.SlotDinner} {
		if meal := daily.Meal(slot); meal != nil {
			ids = append(ids, meal.Recipes[model.CategoryMain]...)
		}
	}
	return ids
}
