package server

import (
	"fmt"
	"net/http"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"

	"github.com/manhnguyen41/FoodRecommender/internal/engine"
	"github.com/manhnguyen41/FoodRecommender/internal/family"
	"github.com/manhnguyen41/FoodRecommender/internal/history"
	"github.com/manhnguyen41/FoodRecommender/internal/logger"
	"github.com/manhnguyen41/FoodRecommender/internal/model"
	"github.com/manhnguyen41/FoodRecommender/internal/task"
)

// Days of served-meal history folded into a request's cooked set, so plans do
// not repeat what a family just ate.
const recentHistoryDays = 2

// Server exposes the planning engine over HTTP. Every request builds its own
// UserProfile/UserRequirements, so concurrent requests never share mutable
// state. The family provider and history store are optional; either may be
// nil.
type Server struct {
	router   *gin.Engine
	engine   *engine.Engine
	tasks    *task.Manager
	families family.Provider
	history  history.Store
}

// NewServer wires the routes and middleware.
func NewServer(e *engine.Engine, tm *task.Manager, families family.Provider, hist history.Store) *Server {
	s := &Server{
		router:   gin.Default(),
		engine:   e,
		tasks:    tm,
		families: families,
		history:  hist,
	}
	s.router.Use(cors.New(cors.Config{
		AllowOrigins: []string{"*"},
		AllowMethods: []string{"GET", "POST", "PUT", "OPTIONS"},
		AllowHeaders: []string{"Origin", "Content-Type", "Accept", "Authorization"},
		MaxAge:       12 * time.Hour,
	}))
	s.setupRoutes()
	return s
}

// Run starts the server on addr.
func (s *Server) Run(addr string) error {
	return s.router.Run(addr)
}

func (s *Server) setupRoutes() {
	api := s.router.Group("/api")
	api.POST("/daily-meal", s.handleDailyMeal)
	api.POST("/weekly-meal", s.handleWeeklyMeal)
	api.POST("/replace-recipe", s.handleReplaceRecipe)
	api.GET("/task/:id", s.handleTaskStatus)
	s.router.GET("/health", s.handleHealth)
}

// planRequest carries the profile and requirement fields shared by the
// planning endpoints. Absent fields fall back to the defaults.
type planRequest struct {
	FamilyID               string               `json:"family_id"`
	FavoriteIngredients    []model.IngredientID `json:"favorite_ingredients"`
	NotFavoriteIngredients []model.IngredientID `json:"not_favorite_ingredients"`
	AllergyIngredients     []model.IngredientID `json:"allergy_ingredients"`
	FavoriteRecipes        []model.RecipeID     `json:"favorite_recipes"`
	NotFavoriteRecipes     []model.RecipeID     `json:"not_favorite_recipes"`
	AvailableIngredients   []model.IngredientID `json:"available_ingredients"`
	Difficulty             string               `json:"difficulty"`
	ExcludeMethods         []string             `json:"exclude_methods"`
	Budget                 float64              `json:"budget"`
	CookingTime            int                  `json:"cooking_time"`
	ServingSize            int                  `json:"serving_size"`
	Date                   string               `json:"date"`
	StartDate              string               `json:"start_date"`
	Async                  bool                 `json:"async"`
}

// buildProfile starts from the family's stored profile when the request
// names one, overlays the request's own lists, then folds recent meal
// history into the cooked set.
func (s *Server) buildProfile(r *planRequest) *model.UserProfile {
	p := model.DefaultUserProfile()
	if r.FamilyID != "" {
		p.FamilyID = r.FamilyID
		if s.families != nil {
			stored, err := s.families.Profile(r.FamilyID)
			if err != nil {
				logger.Debug("no stored profile for family %s: %v", r.FamilyID, err)
			} else {
				p = stored
			}
		}
	}

	if len(r.FavoriteIngredients) > 0 {
		p.FavoriteIngredientIDs = r.FavoriteIngredients
	}
	if len(r.NotFavoriteIngredients) > 0 {
		p.NotFavoriteIngredientIDs = r.NotFavoriteIngredients
	}
	if len(r.AllergyIngredients) > 0 {
		p.AllergyIngredientIDs = r.AllergyIngredients
	}
	if len(r.FavoriteRecipes) > 0 {
		p.FavoriteRecipeIDs = r.FavoriteRecipes
	}
	if len(r.NotFavoriteRecipes) > 0 {
		p.NotFavoriteRecipeIDs = append([]model.RecipeID(nil), r.NotFavoriteRecipes...)
	}
	if r.Budget > 0 {
		p.Budget = r.Budget
	}
	if r.CookingTime > 0 {
		p.CookingTime = r.CookingTime
	}

	if s.history != nil && r.FamilyID != "" {
		recent, err := s.history.Recent(r.FamilyID, recentHistoryDays)
		if err != nil {
			logger.Error("failed to load meal history for %s: %v", r.FamilyID, err)
		}
		for _, id := range recent {
			p.MarkCooked(id)
		}
	}
	return p
}

// recordDaily appends a generated plan to the family's meal history.
func (s *Server) recordDaily(familyID string, plan *model.DailyPlan) {
	if s.history == nil || familyID == "" {
		return
	}
	for _, meal := range plan.Meals {
		if err := s.history.Save(familyID, meal.Slot, meal.RecipeIDs()); err != nil {
			logger.Error("failed to record meal history for %s: %v", familyID, err)
			return
		}
	}
}

func (r *planRequest) requirements() *model.UserRequirements {
	req := model.DefaultUserRequirements()
	if r.Difficulty != "" {
		req.Difficulty = r.Difficulty
	}
	req.ExcludeMethods = r.ExcludeMethods
	req.AvailableIngredientIDs = r.AvailableIngredients
	req.Budget = r.Budget
	req.CookingTime = r.CookingTime
	req.ServingSize = r.ServingSize
	return req
}

// parseDate accepts YYYY-MM-DD; anything else falls back to now.
func parseDate(value string) time.Time {
	if value != "" {
		if t, err := time.Parse("2006-01-02", value); err == nil {
			return t
		}
	}
	return time.Now()
}

// profileView is the slice of the mutated profile echoed back to callers so
// session state (what was already picked) stays observable.
type profileView struct {
	CookedRecipeIDs          []model.RecipeID     `json:"cookedRecipeIds"`
	FavoriteIngredientIDs    []model.IngredientID `json:"favoriteIngredientIds"`
	NotFavoriteIngredientIDs []model.IngredientID `json:"notFavoriteIngredientIds"`
}

func viewOf(p *model.UserProfile) profileView {
	view := profileView{
		CookedRecipeIDs:          p.CookedRecipeIDs,
		FavoriteIngredientIDs:    p.FavoriteIngredientIDs,
		NotFavoriteIngredientIDs: p.NotFavoriteIngredientIDs,
	}
	if view.CookedRecipeIDs == nil {
		view.CookedRecipeIDs = []model.RecipeID{}
	}
	if view.FavoriteIngredientIDs == nil {
		view.FavoriteIngredientIDs = []model.IngredientID{}
	}
	if view.NotFavoriteIngredientIDs == nil {
		view.NotFavoriteIngredientIDs = []model.IngredientID{}
	}
	return view
}

type dailyPayload struct {
	Date    int64              `json:"date"`
	Meals   []*model.MealEntry `json:"meals"`
	Summary model.DailySummary `json:"summary"`
}

// handleDailyMeal builds a one-day plan.
// POST /api/daily-meal
func (s *Server) handleDailyMeal(c *gin.Context) {
	var req planRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "error": "invalid request body: " + err.Error()})
		return
	}

	profile := s.buildProfile(&req)
	requirements := req.requirements()
	plan := s.engine.SuggestDailyMeals(profile, requirements, req.ServingSize)
	s.recordDaily(req.FamilyID, plan)

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"data": dailyPayload{
			Date:    parseDate(req.Date).UnixMilli(),
			Meals:   plan.Meals,
			Summary: plan.Summary,
		},
		"user_profile": viewOf(profile),
	})
}

type weeklyDayPayload struct {
	Day     string             `json:"day"`
	Date    int64              `json:"date"`
	Meals   []*model.MealEntry `json:"meals"`
	Summary model.DailySummary `json:"summary"`
}

type weeklyPayload struct {
	Days    []weeklyDayPayload  `json:"days"`
	Summary model.WeeklySummary `json:"summary"`
}

func buildWeeklyPayload(plan *model.WeeklyPlan, start time.Time) weeklyPayload {
	payload := weeklyPayload{Summary: plan.Summary}
	for i, day := range model.Weekdays {
		daily, ok := plan.Days[day]
		if !ok {
			continue
		}
		payload.Days = append(payload.Days, weeklyDayPayload{
			Day:     day,
			Date:    start.AddDate(0, 0, i).UnixMilli(),
			Meals:   daily.Meals,
			Summary: daily.Summary,
		})
	}
	return payload
}

// handleWeeklyMeal builds a seven-day plan. With "async": true the work runs
// in the background and the response carries a task id to poll.
// POST /api/weekly-meal
func (s *Server) handleWeeklyMeal(c *gin.Context) {
	var req planRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "error": "invalid request body: " + err.Error()})
		return
	}

	start := parseDate(req.StartDate)

	if req.Async {
		t := s.tasks.NewTask()
		go s.runWeeklyTask(t.ID, req, start)
		c.JSON(http.StatusAccepted, gin.H{"success": true, "task_id": t.ID})
		return
	}

	profile := s.buildProfile(&req)
	requirements := req.requirements()
	plan := s.engine.GenerateWeeklyPlan(profile, requirements, req.ServingSize)
	s.recordWeekly(req.FamilyID, plan)

	c.JSON(http.StatusOK, gin.H{
		"success":      true,
		"data":         buildWeeklyPayload(plan, start),
		"user_profile": viewOf(profile),
	})
}

func (s *Server) recordWeekly(familyID string, plan *model.WeeklyPlan) {
	for _, day := range model.Weekdays {
		if daily, ok := plan.Days[day]; ok {
			s.recordDaily(familyID, daily)
		}
	}
}

func (s *Server) runWeeklyTask(taskID string, req planRequest, start time.Time) {
	// A panic in plan generation must fail the task, not kill the server.
	defer func() {
		if r := recover(); r != nil {
			logger.Error("weekly task %s panicked: %v", taskID, r)
			if err := s.tasks.SetError(taskID, fmt.Errorf("plan generation failed: %v", r)); err != nil {
				logger.Error("failed to mark task %s failed: %v", taskID, err)
			}
		}
	}()

	if err := s.tasks.UpdateStatus(taskID, task.StatusProcessing); err != nil {
		logger.Error("failed to mark task %s processing: %v", taskID, err)
		return
	}

	profile := s.buildProfile(&req)
	requirements := req.requirements()
	plan := s.engine.GenerateWeeklyPlan(profile, requirements, req.ServingSize)
	s.recordWeekly(req.FamilyID, plan)

	result := gin.H{
		"data":         buildWeeklyPayload(plan, start),
		"user_profile": viewOf(profile),
	}
	if err := s.tasks.SetResult(taskID, result); err != nil {
		logger.Error("failed to store result for task %s: %v", taskID, err)
	}
}

// handleTaskStatus reports an async task.
// GET /api/task/:id
func (s *Server) handleTaskStatus(c *gin.Context) {
	t, err := s.tasks.GetTask(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"success": false, "error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "task": t})
}

type replaceRequest struct {
	planRequest
	DailyPlan         *model.DailyPlan `json:"daily_plan" binding:"required"`
	MealType          string           `json:"meal_type" binding:"required"`
	RecipeID          model.RecipeID   `json:"recipe_id" binding:"required"`
	ReplacementReason string           `json:"replacement_reason" binding:"required"`
}

// handleReplaceRecipe swaps one dish inside a submitted daily plan.
// POST /api/replace-recipe
func (s *Server) handleReplaceRecipe(c *gin.Context) {
	var req replaceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "error": "invalid request body: " + err.Error()})
		return
	}

	profile := s.buildProfile(&req.planRequest)
	requirements := req.requirements()

	newRecipe, newScore, err := s.engine.ReplaceRecipe(
		req.DailyPlan, req.MealType, req.RecipeID, req.ReplacementReason, profile, requirements)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "error": err.Error()})
		return
	}
	if newRecipe == nil {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "error": "no replacement found"})
		return
	}
	if s.history != nil && req.FamilyID != "" {
		if err := s.history.Save(req.FamilyID, req.MealType, []model.RecipeID{newRecipe.ID}); err != nil {
			logger.Error("failed to record replacement for %s: %v", req.FamilyID, err)
		}
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"data": gin.H{
			"daily_plan": req.DailyPlan,
			"new_recipe": gin.H{
				"id":    newRecipe.ID,
				"name":  newRecipe.Name,
				"score": newScore,
			},
		},
		"user_profile": viewOf(profile),
	})
}

func (s *Server) handleHealth(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status":  "ok",
		"recipes": len(s.engine.Recipes()),
	})
}
