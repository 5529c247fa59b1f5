package service

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newRecipeFixture(handler http.HandlerFunc) (*RecipeClient, *httptest.Server) {
	srv := httptest.NewServer(handler)
	client := NewRecipeClient("test-key", "gemini-2.5-flash")
	client.baseURL = srv.URL
	return client, srv
}

func TestGenerateRecipes(t *testing.T) {
	var gotPath string
	var gotBody generateContentRequest

	client, srv := newRecipeFixture(func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		require.NoError(t, json.NewDecoder(r.Body).Decode(&gotBody))

		resp := generateContentResponse{}
		resp.Candidates = []struct {
			Content content `json:"content"`
		}{
			{Content: content{Parts: []part{{Text: "## Ensalada Fresca"}}}},
		}
		json.NewEncoder(w).Encode(resp)
	})
	defer srv.Close()

	text, err := client.GenerateRecipes(context.Background(), []string{"Zanahoria", "Col"})
	require.NoError(t, err)
	assert.Equal(t, "## Ensalada Fresca", text)

	assert.Equal(t, "/models/gemini-2.5-flash:generateContent", gotPath)
	require.Len(t, gotBody.Contents, 1)
	require.Len(t, gotBody.Contents[0].Parts, 1)
	assert.Contains(t, gotBody.Contents[0].Parts[0].Text, "Zanahoria, Col")
}

func TestGenerateRecipesUpstreamError(t *testing.T) {
	client, srv := newRecipeFixture(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusTooManyRequests)
	})
	defer srv.Close()

	_, err := client.GenerateRecipes(context.Background(), []string{"Piña"})
	assert.ErrorIs(t, err, ErrRecipeUnavailable)
}

func TestGenerateRecipesEmptyCandidates(t *testing.T) {
	client, srv := newRecipeFixture(func(w http.ResponseWriter, r *http.Request) {
		json.NewEncoder(w).Encode(generateContentResponse{})
	})
	defer srv.Close()

	_, err := client.GenerateRecipes(context.Background(), []string{"Piña"})
	assert.ErrorIs(t, err, ErrRecipeUnavailable)
}
