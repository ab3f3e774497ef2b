package catalog

import (
	"strings"

	"github.com/manhnguyen41/FoodRecommender/internal/model"
)

// Tag group ids from the source database schema.
const (
	groupMethod     = 7
	groupRecipeType = 9
	groupMealType   = 10
)

// Source data labels dish and meal categories in Vietnamese. The engine
// compares canonical lowercase English values, so the provider rewrites
// labels once at load time instead of every comparison.
var canonicalLabels = map[string]string{
	"món chính":       "main",
	"món phụ":         "side",
	"món canh":        "soup",
	"món tráng miệng": "dessert",
	"bữa sáng":        "breakfast",
	"bữa trưa":        "lunch",
	"bữa tối":         "dinner",
	"sáng":            "breakfast",
	"trưa":            "lunch",
	"tối":             "dinner",
}

// canonicalize lowercases label and maps known Vietnamese vocabulary to its
// English equivalent. Unknown labels pass through lowercased.
func canonicalize(label string) string {
	lower := strings.ToLower(strings.TrimSpace(label))
	if canonical, ok := canonicalLabels[lower]; ok {
		return canonical
	}
	return lower
}

func canonicalizeAll(labels []string) []string {
	out := make([]string, 0, len(labels))
	for _, label := range labels {
		if c := canonicalize(label); c != "" {
			out = append(out, c)
		}
	}
	return out
}

// deriveFromTags splits a recipe's tags into method, recipe-type and
// meal-type labels by tag group. A tag in group 7 is a cooking method, 9 a
// dish category, 10 a meal slot; groups are checked in that priority order.
func deriveFromTags(tags []model.RecipeTag) (methods, recipeTypes, mealTypes []string) {
	for _, tag := range tags {
		switch {
		case hasGroup(tag.Groups, groupMethod):
			methods = append(methods, tag.Name)
		case hasGroup(tag.Groups, groupRecipeType):
			recipeTypes = append(recipeTypes, tag.Name)
		case hasGroup(tag.Groups, groupMealType):
			mealTypes = append(mealTypes, tag.Name)
		}
	}
	return methods, recipeTypes, mealTypes
}

func hasGroup(groups []int, want int) bool {
	for _, g := range groups {
		if g == want {
			return true
		}
	}
	return false
}
