// Package spoonacular is a thin client for the Spoonacular recipe API.
package spoonacular

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/go-resty/resty/v2"

	"github.com/Baptiste68/recette/pkg/logger"
	"github.com/Baptiste68/recette/pkg/models"
)

// ErrQuotaExceeded is returned when the API key's daily quota is used up
var ErrQuotaExceeded = errors.New("spoonacular quota exceeded")

// Client calls the Spoonacular recipe API
type Client struct {
	client *resty.Client
	apiKey string
	log    *logger.Logger
}

// New creates a Spoonacular client
func New(apiKey, baseURL string, log *logger.Logger) *Client {
	client := resty.New().
		SetBaseURL(baseURL).
		SetTimeout(15 * time.Second)

	return &Client{
		client: client,
		apiKey: apiKey,
		log:    log,
	}
}

// FindByIngredients searches recipes that use the given ingredients.
// Ranking 2 minimizes missing ingredients; pantry staples are ignored.
func (c *Client) FindByIngredients(ctx context.Context, ingredients []string, number int) ([]models.RecipeCandidate, error) {
	if len(ingredients) == 0 {
		return nil, fmt.Errorf("no ingredients provided")
	}

	var recipes []models.RecipeCandidate
	resp, err := c.client.R().
		SetContext(ctx).
		SetQueryParams(map[string]string{
			"apiKey":          c.apiKey,
			"ingredients":     strings.Join(ingredients, ","),
			"number":          strconv.Itoa(number),
			"ranking":         "2",
			"ignorePantry":    "true",
			"fillIngredients": "true",
		}).
		SetResult(&recipes).
		Get("/recipes/findByIngredients")
	if err != nil {
		return nil, fmt.Errorf("findByIngredients request failed: %w", err)
	}
	if err := checkStatus(resp); err != nil {
		return nil, err
	}

	c.log.Debug("findByIngredients returned %d recipes for %d ingredients", len(recipes), len(ingredients))
	return recipes, nil
}

// complexSearchResponse is the envelope of the complexSearch endpoint
type complexSearchResponse struct {
	Results      []models.RecipeCandidate `json:"results"`
	TotalResults int                      `json:"totalResults"`
}

// SearchByName searches recipes by free-text query. The extra params carry
// diet, intolerances and nutritional bounds.
func (c *Client) SearchByName(ctx context.Context, query string, params map[string]string, number int) ([]models.RecipeCandidate, error) {
	queryParams := map[string]string{
		"apiKey":               c.apiKey,
		"query":                query,
		"number":               strconv.Itoa(number),
		"addRecipeInformation": "true",
		"fillIngredients":      "true",
	}
	for k, v := range params {
		queryParams[k] = v
	}

	var result complexSearchResponse
	resp, err := c.client.R().
		SetContext(ctx).
		SetQueryParams(queryParams).
		SetResult(&result).
		Get("/recipes/complexSearch")
	if err != nil {
		return nil, fmt.Errorf("complexSearch request failed: %w", err)
	}
	if err := checkStatus(resp); err != nil {
		return nil, err
	}

	c.log.Debug("complexSearch %q returned %d of %d recipes", query, len(result.Results), result.TotalResults)
	return result.Results, nil
}

// GetRecipeInformation fetches the full details of one recipe
func (c *Client) GetRecipeInformation(ctx context.Context, id int64) (*models.RecipeCandidate, error) {
	var recipe models.RecipeCandidate
	resp, err := c.client.R().
		SetContext(ctx).
		SetQueryParam("apiKey", c.apiKey).
		SetResult(&recipe).
		Get(fmt.Sprintf("/recipes/%d/information", id))
	if err != nil {
		return nil, fmt.Errorf("recipe information request failed: %w", err)
	}
	if err := checkStatus(resp); err != nil {
		return nil, err
	}

	return &recipe, nil
}

func checkStatus(resp *resty.Response) error {
	switch {
	case resp.StatusCode() == http.StatusPaymentRequired:
		return ErrQuotaExceeded
	case resp.IsError():
		return fmt.Errorf("spoonacular returned status %d: %s", resp.StatusCode(), resp.String())
	}
	return nil
}
