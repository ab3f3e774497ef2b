package model

// Meal slots of a day.
const (
	SlotBreakfast = "breakfast"
	SlotLunch     = "lunch"
	SlotDinner    = "dinner"
)

// Dish categories inside a meal.
const (
	CategoryMain    = "main"
	CategorySide    = "side"
	CategorySoup    = "soup"
	CategoryDessert = "dessert"
)

// Slots lists meal slots in day order.
var Slots = []string{SlotBreakfast, SlotLunch, SlotDinner}

// Weekdays lists the fixed day keys of a weekly plan.
var Weekdays = []string{"monday", "tuesday", "wednesday", "thursday", "friday", "saturday", "sunday"}

// MealEntry is one meal slot with its recipes keyed by category.
type MealEntry struct {
	Slot    string                `json:"mealTypeId"`
	Recipes map[string][]RecipeID `json:"mapRecipe"`
}

// NewMealEntry returns an empty meal for slot.
func NewMealEntry(slot string) *MealEntry {
	return &MealEntry{
		Slot:    slot,
		Recipes: make(map[string][]RecipeID),
	}
}

// Add appends id under category.
func (m *MealEntry) Add(category string, id RecipeID) {
	m.Recipes[category] = append(m.Recipes[category], id)
}

// RecipeIDs returns every recipe id in the meal, categories in no particular
// order.
func (m *MealEntry) RecipeIDs() []RecipeID {
	var ids []RecipeID
	for _, list := range m.Recipes {
		ids = append(ids, list...)
	}
	return ids
}

// DailySummary describes how a daily plan was assembled. MealCounts is keyed
// by meal slot.
type DailySummary struct {
	TotalRecipes int            `json:"total_recipes"`
	MealCounts   map[string]int `json:"meal_counts"`
	ServingSize  int            `json:"serving_size"`
	GeneratedAt  string         `json:"generated_at"`
}

// DailyPlan holds the three meals of one day.
type DailyPlan struct {
	Meals   []*MealEntry `json:"meals"`
	Summary DailySummary `json:"summary"`
}

// Meal returns the entry for slot, or nil when the plan has none.
func (d *DailyPlan) Meal(slot string) *MealEntry {
	for _, meal := range d.Meals {
		if meal.Slot == slot {
			return meal
		}
	}
	return nil
}

// RecipeIDs returns every recipe id in the day.
func (d *DailyPlan) RecipeIDs() []RecipeID {
	var ids []RecipeID
	for _, meal := range d.Meals {
		ids = append(ids, meal.RecipeIDs()...)
	}
	return ids
}

// DayBreakdown is one day's slice of a weekly summary.
type DayBreakdown struct {
	TotalRecipes int            `json:"total_recipes"`
	MealCounts   map[string]int `json:"meal_counts"`
}

// WeeklySummary describes how a weekly plan was assembled. DailyBreakdown is
// keyed by weekday.
type WeeklySummary struct {
	TotalRecipes   int                     `json:"total_recipes"`
	ServingSize    int                     `json:"serving_size"`
	GeneratedAt    string                  `json:"generated_at"`
	DailyBreakdown map[string]DayBreakdown `json:"daily_breakdown"`
}

// WeeklyPlan maps weekday keys to daily plans.
type WeeklyPlan struct {
	Days    map[string]*DailyPlan `json:"days"`
	Summary WeeklySummary         `json:"summary"`
}
