// Package api exposes the pantry and recipe features over HTTP.
package api

import (
	"context"
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"

	"github.com/Baptiste68/recette/pkg/diet"
	"github.com/Baptiste68/recette/pkg/inventory"
	"github.com/Baptiste68/recette/pkg/logger"
	"github.com/Baptiste68/recette/pkg/models"
	"github.com/Baptiste68/recette/pkg/optimizer"
	"github.com/Baptiste68/recette/pkg/spoonacular"
)

const defaultRecipeCount = 10

// RecipeSource abstracts the recipe API client so handlers can be tested
// without network access
type RecipeSource interface {
	FindByIngredients(ctx context.Context, ingredients []string, number int) ([]models.RecipeCandidate, error)
	SearchByName(ctx context.Context, query string, params map[string]string, number int) ([]models.RecipeCandidate, error)
	GetRecipeInformation(ctx context.Context, id int64) (*models.RecipeCandidate, error)
}

// IngredientParser turns free-form text into ingredient names
type IngredientParser interface {
	ParseIngredientsFromText(ctx context.Context, text string) ([]string, error)
}

// Handler holds the services behind the HTTP surface
type Handler struct {
	inventory *inventory.Service
	diet      *diet.Service
	recipes   RecipeSource
	parser    IngredientParser // nil when OpenAI is not configured
	log       *logger.Logger
}

// NewHandler creates a new API handler
func NewHandler(inv *inventory.Service, dietSvc *diet.Service, recipes RecipeSource, parser IngredientParser, log *logger.Logger) *Handler {
	return &Handler{
		inventory: inv,
		diet:      dietSvc,
		recipes:   recipes,
		parser:    parser,
		log:       log,
	}
}

// Router builds the gin engine with all routes and CORS configured
func Router(h *Handler, corsOrigins []string) *gin.Engine {
	router := gin.New()
	router.Use(gin.Recovery())

	corsConfig := cors.DefaultConfig()
	if len(corsOrigins) == 1 && corsOrigins[0] == "*" {
		corsConfig.AllowAllOrigins = true
	} else {
		corsConfig.AllowOrigins = corsOrigins
	}
	corsConfig.AllowMethods = []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"}
	router.Use(cors.New(corsConfig))

	router.GET("/healthz", h.Health)

	api := router.Group("/api")
	{
		users := api.Group("/users/:id")
		{
			users.GET("/inventory", h.GetInventory)
			users.POST("/inventory/items", h.AddItem)
			users.PUT("/inventory/items/:name", h.SetQuantity)
			users.DELETE("/inventory/items/:name", h.RemoveItem)
			users.DELETE("/inventory", h.ClearInventory)
			users.GET("/inventory/expiring", h.GetExpiring)
			users.GET("/inventory/stats", h.GetStats)
			users.POST("/inventory/parse", h.ParseItems)

			users.GET("/preferences", h.GetPreferences)
			users.POST("/preferences/regimes", h.AddRegime)
			users.DELETE("/preferences/regimes/:regime", h.RemoveRegime)
			users.POST("/preferences/allergies", h.AddAllergy)
			users.DELETE("/preferences/allergies/:allergy", h.RemoveAllergy)
			users.PUT("/preferences/nutrition", h.SetNutrition)
			users.DELETE("/preferences", h.ResetPreferences)

			users.GET("/recipes/suggestions", h.SuggestRecipes)
			users.GET("/recipes/search", h.SearchRecipes)
		}

		api.GET("/recipes/:id", h.GetRecipe)
	}

	return router
}

// Health reports service liveness
func (h *Handler) Health(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}

// GetInventory returns the full inventory of a user
func (h *Handler) GetInventory(c *gin.Context) {
	inv, err := h.inventory.GetInventory(c.Param("id"))
	if err != nil {
		h.serverError(c, err)
		return
	}
	c.JSON(http.StatusOK, inv)
}

type addItemRequest struct {
	Name       string `json:"name" binding:"required"`
	Quantity   int    `json:"quantity" binding:"required"`
	Expiration string `json:"expiration"`
}

// AddItem adds or merges an item into the inventory
func (h *Handler) AddItem(c *gin.Context) {
	var req addItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	inv, err := h.inventory.AddItem(c.Param("id"), req.Name, req.Quantity, req.Expiration)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, inv)
}

type setQuantityRequest struct {
	Quantity int `json:"quantity"`
}

// SetQuantity updates an item's quantity; zero removes the item
func (h *Handler) SetQuantity(c *gin.Context) {
	var req setQuantityRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	inv, err := h.inventory.SetQuantity(c.Param("id"), c.Param("name"), req.Quantity)
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, inv)
}

// RemoveItem deletes an item from the inventory
func (h *Handler) RemoveItem(c *gin.Context) {
	inv, err := h.inventory.RemoveItem(c.Param("id"), c.Param("name"))
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, inv)
}

// ClearInventory removes all items for a user
func (h *Handler) ClearInventory(c *gin.Context) {
	if err := h.inventory.Clear(c.Param("id")); err != nil {
		h.serverError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"status": "cleared"})
}

// GetExpiring returns expired and soon-expiring items
func (h *Handler) GetExpiring(c *gin.Context) {
	status, err := h.inventory.ExpiryStatus(c.Param("id"), time.Now())
	if err != nil {
		h.serverError(c, err)
		return
	}
	c.JSON(http.StatusOK, status)
}

// GetStats returns a summary of the inventory
func (h *Handler) GetStats(c *gin.Context) {
	inv, err := h.inventory.GetInventory(c.Param("id"))
	if err != nil {
		h.serverError(c, err)
		return
	}
	c.JSON(http.StatusOK, h.inventory.Stats(inv, time.Now()))
}

type parseItemsRequest struct {
	Text string `json:"text" binding:"required"`
}

// ParseItems extracts ingredient names from free-form text and adds each
// as one unit without an expiration date
func (h *Handler) ParseItems(c *gin.Context) {
	if h.parser == nil {
		c.JSON(http.StatusServiceUnavailable, gin.H{"error": "ingredient parsing is not configured"})
		return
	}

	var req parseItemsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	names, err := h.parser.ParseIngredientsFromText(c.Request.Context(), req.Text)
	if err != nil {
		h.serverError(c, err)
		return
	}

	userID := c.Param("id")
	added := make([]string, 0, len(names))
	for _, name := range names {
		if _, err := h.inventory.AddItem(userID, name, 1, ""); err != nil {
			h.log.Warn("Skipping parsed item %q: %v", name, err)
			continue
		}
		added = append(added, name)
	}

	inv, err := h.inventory.GetInventory(userID)
	if err != nil {
		h.serverError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"added": added, "inventory": inv})
}

// GetPreferences returns the dietary preferences of a user
func (h *Handler) GetPreferences(c *gin.Context) {
	prefs, err := h.diet.GetPreferences(c.Param("id"))
	if err != nil {
		h.serverError(c, err)
		return
	}
	c.JSON(http.StatusOK, prefs)
}

type regimeRequest struct {
	Regime string `json:"regime" binding:"required"`
}

// AddRegime activates a regime, rejecting conflicting combinations
func (h *Handler) AddRegime(c *gin.Context) {
	var req regimeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	regime, ok := diet.ParseRegime(req.Regime)
	if !ok {
		c.JSON(http.StatusBadRequest, gin.H{"error": "unknown regime: " + req.Regime})
		return
	}

	added, err := h.diet.AddRegime(c.Param("id"), regime)
	if err != nil {
		h.serverError(c, err)
		return
	}
	if !added {
		c.JSON(http.StatusConflict, gin.H{"error": "regime conflicts with an active regime"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"status": "added"})
}

// RemoveRegime deactivates a regime
func (h *Handler) RemoveRegime(c *gin.Context) {
	regime, ok := diet.ParseRegime(c.Param("regime"))
	if !ok {
		c.JSON(http.StatusBadRequest, gin.H{"error": "unknown regime: " + c.Param("regime")})
		return
	}

	if err := h.diet.RemoveRegime(c.Param("id"), regime); err != nil {
		h.serverError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"status": "removed"})
}

type allergyRequest struct {
	Allergy string `json:"allergy" binding:"required"`
}

// AddAllergy records an allergy and its linked free-from regime
func (h *Handler) AddAllergy(c *gin.Context) {
	var req allergyRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	allergy, ok := diet.ParseAllergy(req.Allergy)
	if !ok {
		c.JSON(http.StatusBadRequest, gin.H{"error": "unknown allergy: " + req.Allergy})
		return
	}

	if err := h.diet.AddAllergy(c.Param("id"), allergy); err != nil {
		h.serverError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"status": "added"})
}

// RemoveAllergy removes an allergy
func (h *Handler) RemoveAllergy(c *gin.Context) {
	allergy, ok := diet.ParseAllergy(c.Param("allergy"))
	if !ok {
		c.JSON(http.StatusBadRequest, gin.H{"error": "unknown allergy: " + c.Param("allergy")})
		return
	}

	if err := h.diet.RemoveAllergy(c.Param("id"), allergy); err != nil {
		h.serverError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"status": "removed"})
}

// SetNutrition updates the nutritional bounds
func (h *Handler) SetNutrition(c *gin.Context) {
	var nutrition diet.Nutrition
	if err := c.ShouldBindJSON(&nutrition); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	if err := h.diet.SetNutrition(c.Param("id"), nutrition); err != nil {
		h.serverError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"status": "updated"})
}

// ResetPreferences clears all dietary preferences
func (h *Handler) ResetPreferences(c *gin.Context) {
	if err := h.diet.ResetPreferences(c.Param("id")); err != nil {
		h.serverError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"status": "reset"})
}

// SuggestRecipes runs the full suggestion pipeline: load the inventory,
// drop incompatible ingredients, fetch candidates, rank them against the
// pantry and post-filter against the preferences.
func (h *Handler) SuggestRecipes(c *gin.Context) {
	userID := c.Param("id")

	inv, err := h.inventory.GetInventory(userID)
	if err != nil {
		h.serverError(c, err)
		return
	}
	if len(inv.Items) == 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "inventory is empty"})
		return
	}

	prefs, err := h.diet.GetPreferences(userID)
	if err != nil {
		h.serverError(c, err)
		return
	}

	names := diet.FilterIngredients(h.inventory.ItemNames(inv), prefs)
	if len(names) == 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "no inventory item is compatible with the active preferences"})
		return
	}

	number := intQuery(c, "number", defaultRecipeCount)
	candidates, err := h.recipes.FindByIngredients(c.Request.Context(), names, number)
	if err != nil {
		h.recipeError(c, err)
		return
	}

	ranked := optimizer.Optimize(inv, candidates, time.Now())
	ranked = diet.FilterMatches(ranked, prefs)

	c.JSON(http.StatusOK, gin.H{"recipes": ranked, "queried_ingredients": names})
}

// SearchRecipes searches recipes by name, carrying the user's diet and
// intolerances into the upstream query
func (h *Handler) SearchRecipes(c *gin.Context) {
	query := c.Query("q")
	if query == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "query parameter q is required"})
		return
	}

	prefs, err := h.diet.GetPreferences(c.Param("id"))
	if err != nil {
		h.serverError(c, err)
		return
	}

	number := intQuery(c, "number", defaultRecipeCount)
	recipes, err := h.recipes.SearchByName(c.Request.Context(), query, diet.SearchParams(prefs), number)
	if err != nil {
		h.recipeError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"recipes": recipes})
}

// GetRecipe returns the details of one recipe
func (h *Handler) GetRecipe(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "recipe id must be an integer"})
		return
	}

	recipe, err := h.recipes.GetRecipeInformation(c.Request.Context(), id)
	if err != nil {
		h.recipeError(c, err)
		return
	}

	c.JSON(http.StatusOK, recipe)
}

func (h *Handler) serverError(c *gin.Context, err error) {
	h.log.Error("Request %s %s failed: %v", c.Request.Method, c.Request.URL.Path, err)
	c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
}

// recipeError maps upstream recipe API failures to HTTP statuses
func (h *Handler) recipeError(c *gin.Context, err error) {
	if errors.Is(err, spoonacular.ErrQuotaExceeded) {
		c.JSON(http.StatusTooManyRequests, gin.H{"error": "recipe API quota exceeded, try again later"})
		return
	}
	h.serverError(c, err)
}

func intQuery(c *gin.Context, key string, fallback int) int {
	value := c.Query(key)
	if value == "" {
		return fallback
	}
	n, err := strconv.Atoi(value)
	if err != nil || n <= 0 {
		return fallback
	}
	return n
}
