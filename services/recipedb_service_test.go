package services

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestRecipeDB(handler http.Handler) (*RecipeDBService, *httptest.Server) {
	srv := httptest.NewServer(handler)
	svc := &RecipeDBService{
		baseURL: srv.URL,
		apiKey:  "test-key",
		client:  &http.Client{Timeout: 5 * time.Second},
	}
	return svc, srv
}

func TestSearchRecipes(t *testing.T) {
	var gotReq *http.Request
	svc, srv := newTestRecipeDB(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotReq = r.Clone(r.Context())
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{
			"payload": {
				"data": [
					{
						"recipe_id": "2610",
						"recipe_title": "Vegetable Upma",
						"region": "Indian",
						"sub_region": "South Indian",
						"diet": "vegetarian",
						"calories": 310.5,
						"protein_g": 8.2,
						"carbs_g": 52.0,
						"fat_g": 9.1,
						"ingredients": ["semolina", "mustard seeds", "curry leaves"]
					}
				]
			}
		}`))
	}))
	defer srv.Close()

	recipes, err := svc.SearchRecipes(RecipeQuery{
		Region:             "Indian",
		Diet:               "vegetarian",
		MinCalories:        200,
		MaxCalories:        400,
		ExcludeIngredients: []string{"milk", "ghee"},
		Limit:              5,
	})
	require.NoError(t, err)
	require.Len(t, recipes, 1)

	r := recipes[0]
	assert.Equal(t, "2610", r.ID)
	assert.Equal(t, "Vegetable Upma", r.Title)
	assert.Equal(t, 310.5, r.Calories)
	assert.Equal(t, []string{"semolina", "mustard seeds", "curry leaves"}, r.Ingredients)

	require.NotNil(t, gotReq)
	assert.Equal(t, "/recipes", gotReq.URL.Path)
	q := gotReq.URL.Query()
	assert.Equal(t, "Indian", q.Get("region"))
	assert.Equal(t, "vegetarian", q.Get("diet"))
	assert.Equal(t, "200", q.Get("calories_min"))
	assert.Equal(t, "400", q.Get("calories_max"))
	assert.Equal(t, "milk,ghee", q.Get("exclude_ingredients"))
	assert.Equal(t, "5", q.Get("limit"))
	assert.Equal(t, "Bearer test-key", gotReq.Header.Get("Authorization"))
}

func TestSearchRecipesUpstreamError(t *testing.T) {
	svc, srv := newTestRecipeDB(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "rate limited", http.StatusTooManyRequests)
	}))
	defer srv.Close()

	_, err := svc.SearchRecipes(RecipeQuery{Region: "Indian"})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "429")
	assert.Contains(t, err.Error(), "rate limited")
}

func TestSearchRecipesBadJSON(t *testing.T) {
	svc, srv := newTestRecipeDB(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte("not json"))
	}))
	defer srv.Close()

	_, err := svc.SearchRecipes(RecipeQuery{})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "parse")
}

func TestGetRecipeIngredients(t *testing.T) {
	svc, srv := newTestRecipeDB(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/recipes/2610/ingredients", r.URL.Path)
		w.Write([]byte(`{"payload": {"ingredients": [{"ingredient": "semolina"}, {"ingredient": "curry leaves"}]}}`))
	}))
	defer srv.Close()

	names, err := svc.GetRecipeIngredients("2610")
	require.NoError(t, err)
	assert.Equal(t, []string{"semolina", "curry leaves"}, names)
}

func TestGetIngredientPairings(t *testing.T) {
	svc, srv := newTestRecipeDB(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/ingredients/ginger/pairings", r.URL.Path)
		assert.Equal(t, "Bearer test-key", r.Header.Get("Authorization"))
		w.Write([]byte(`{"payload": {"pairings": ["honey", "lemon", "cardamom"]}}`))
	}))
	defer srv.Close()

	pairings, err := svc.GetIngredientPairings("ginger")
	require.NoError(t, err)
	assert.Equal(t, []string{"honey", "lemon", "cardamom"}, pairings)
}

func TestGetIngredientPairingsUpstreamError(t *testing.T) {
	svc, srv := newTestRecipeDB(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "not found", http.StatusNotFound)
	}))
	defer srv.Close()

	_, err := svc.GetIngredientPairings("unobtainium")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "404")
}

func TestGetRecipeInstructions(t *testing.T) {
	svc, srv := newTestRecipeDB(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/recipes/2610/instructions", r.URL.Path)
		w.Write([]byte(`{"payload": {"steps": ["Roast the semolina.", "Add water and simmer."]}}`))
	}))
	defer srv.Close()

	steps, err := svc.GetRecipeInstructions("2610")
	require.NoError(t, err)
	require.Len(t, steps, 2)
	assert.Equal(t, "Roast the semolina.", steps[0])
}
