package services

import (
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"os"
	"strconv"
	"strings"
	"time"
)

// Recipe is one candidate dish returned by the RecipeDB API.
type Recipe struct {
	ID          string   `json:"recipe_id"`
	Title       string   `json:"recipe_title"`
	Region      string   `json:"region"`
	SubRegion   string   `json:"sub_region"`
	Diet        string   `json:"diet"`
	Calories    float64  `json:"calories"`
	Protein     float64  `json:"protein_g"`
	Carbs       float64  `json:"carbs_g"`
	Fat         float64  `json:"fat_g"`
	Ingredients []string `json:"ingredients"`
}

// RecipeQuery carries the filter parameters for a recipe search.
type RecipeQuery struct {
	Region             string
	Diet               string // "vegetarian" | "vegan" | "non_vegetarian"
	MinCalories        float64
	MaxCalories        float64
	ExcludeIngredients []string
	Limit              int
}

// RecipeSource is the slice of the RecipeDB API the chart generator needs.
type RecipeSource interface {
	SearchRecipes(q RecipeQuery) ([]Recipe, error)
}

// RecipeDetailSource covers the per-recipe detail and flavor-pairing
// endpoints used by the recipe browsing surface and, when search results
// omit ingredients, by the generator.
type RecipeDetailSource interface {
	GetRecipeIngredients(recipeID string) ([]string, error)
	GetRecipeInstructions(recipeID string) ([]string, error)
	GetIngredientPairings(ingredient string) ([]string, error)
}

// RecipeDBService talks to the hosted RecipeDB/FoodOScope HTTP API.
type RecipeDBService struct {
	baseURL string
	apiKey  string
	client  *http.Client
}

func NewRecipeDBService() *RecipeDBService {
	base := os.Getenv("RECIPEDB_BASE_URL")
	if base == "" {
		base = "https://cosylab.iiitd.edu.in/recipe-search"
	}
	return &RecipeDBService{
		baseURL: strings.TrimRight(base, "/"),
		apiKey:  os.Getenv("RECIPEDB_API_KEY"),
		client:  &http.Client{Timeout: 10 * time.Second},
	}
}

type recipeSearchResponse struct {
	Payload struct {
		Data []Recipe `json:"data"`
	} `json:"payload"`
}

// SearchRecipes calls the filtered recipe search endpoint.
func (s *RecipeDBService) SearchRecipes(q RecipeQuery) ([]Recipe, error) {
	params := url.Values{}
	if q.Region != "" {
		params.Set("region", q.Region)
	}
	if q.Diet != "" {
		params.Set("diet", q.Diet)
	}
	if q.MinCalories > 0 {
		params.Set("calories_min", strconv.FormatFloat(q.MinCalories, 'f', 0, 64))
	}
	if q.MaxCalories > 0 {
		params.Set("calories_max", strconv.FormatFloat(q.MaxCalories, 'f', 0, 64))
	}
	if len(q.ExcludeIngredients) > 0 {
		params.Set("exclude_ingredients", strings.Join(q.ExcludeIngredients, ","))
	}
	limit := q.Limit
	if limit <= 0 {
		limit = 10
	}
	params.Set("limit", strconv.Itoa(limit))

	u := fmt.Sprintf("%s/recipes?%s", s.baseURL, params.Encode())

	req, err := http.NewRequest(http.MethodGet, u, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to build recipe search request: %w", err)
	}
	if s.apiKey != "" {
		req.Header.Set("Authorization", "Bearer "+s.apiKey)
	}

	resp, err := s.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("failed to call recipe search: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("failed to read recipe search response: %w", err)
	}
	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("recipedb API error %d: %s", resp.StatusCode, string(body))
	}

	var sr recipeSearchResponse
	if err := json.Unmarshal(body, &sr); err != nil {
		return nil, fmt.Errorf("failed to parse recipe search JSON: %w", err)
	}
	return sr.Payload.Data, nil
}

type recipeIngredientsResponse struct {
	Payload struct {
		Ingredients []struct {
			Name string `json:"ingredient"`
		} `json:"ingredients"`
	} `json:"payload"`
}

// GetRecipeIngredients looks up the ingredient list for a recipe.
func (s *RecipeDBService) GetRecipeIngredients(recipeID string) ([]string, error) {
	u := fmt.Sprintf("%s/recipes/%s/ingredients", s.baseURL, url.PathEscape(recipeID))

	req, err := http.NewRequest(http.MethodGet, u, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to build ingredient request: %w", err)
	}
	if s.apiKey != "" {
		req.Header.Set("Authorization", "Bearer "+s.apiKey)
	}

	resp, err := s.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("failed to call ingredient lookup: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("failed to read ingredient response: %w", err)
	}
	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("recipedb API error %d: %s", resp.StatusCode, string(body))
	}

	var ir recipeIngredientsResponse
	if err := json.Unmarshal(body, &ir); err != nil {
		return nil, fmt.Errorf("failed to parse ingredient JSON: %w", err)
	}

	names := make([]string, 0, len(ir.Payload.Ingredients))
	for _, ing := range ir.Payload.Ingredients {
		names = append(names, ing.Name)
	}
	return names, nil
}

type ingredientPairingsResponse struct {
	Payload struct {
		Pairings []string `json:"pairings"`
	} `json:"payload"`
}

// GetIngredientPairings returns ingredients that pair well with the given
// one by shared flavor compounds (FlavorDB-backed endpoint).
func (s *RecipeDBService) GetIngredientPairings(ingredient string) ([]string, error) {
	u := fmt.Sprintf("%s/ingredients/%s/pairings", s.baseURL, url.PathEscape(ingredient))

	req, err := http.NewRequest(http.MethodGet, u, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to build pairing request: %w", err)
	}
	if s.apiKey != "" {
		req.Header.Set("Authorization", "Bearer "+s.apiKey)
	}

	resp, err := s.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("failed to call pairing lookup: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("failed to read pairing response: %w", err)
	}
	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("recipedb API error %d: %s", resp.StatusCode, string(body))
	}

	var pr ingredientPairingsResponse
	if err := json.Unmarshal(body, &pr); err != nil {
		return nil, fmt.Errorf("failed to parse pairing JSON: %w", err)
	}
	return pr.Payload.Pairings, nil
}

type recipeInstructionsResponse struct {
	Payload struct {
		Steps []string `json:"steps"`
	} `json:"payload"`
}

// GetRecipeInstructions fetches preparation steps for a recipe.
func (s *RecipeDBService) GetRecipeInstructions(recipeID string) ([]string, error) {
	u := fmt.Sprintf("%s/recipes/%s/instructions", s.baseURL, url.PathEscape(recipeID))

	req, err := http.NewRequest(http.MethodGet, u, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to build instruction request: %w", err)
	}
	if s.apiKey != "" {
		req.Header.Set("Authorization", "Bearer "+s.apiKey)
	}

	resp, err := s.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("failed to call instruction lookup: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("failed to read instruction response: %w", err)
	}
	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("recipedb API error %d: %s", resp.StatusCode, string(body))
	}

	var ir recipeInstructionsResponse
	if err := json.Unmarshal(body, &ir); err != nil {
		return nil, fmt.Errorf("failed to parse instruction JSON: %w", err)
	}
	return ir.Payload.Steps, nil
}
