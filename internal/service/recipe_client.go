package service

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strings"
	"time"

	"go.uber.org/zap"

	"github.com/lazaroperez207/agro-en-casa/internal/util"
)

// ErrRecipeUnavailable is the user-facing failure for recipe generation
var ErrRecipeUnavailable = errors.New("No se pudieron generar las recetas. Por favor, inténtalo de nuevo más tarde.")

const recipePromptTemplate = `Eres un chef creativo y amigable. Tu tarea es sugerir 2 o 3 recetas sencillas y deliciosas basadas en una lista de ingredientes.

Ingredientes disponibles: %s.

Por favor, formatea tu respuesta en Markdown. Para cada receta, incluye:
1. Un título atractivo para la receta usando un encabezado (ej. '## Ensalada Fresca de Verano').
2. Una lista de 'Ingredientes' necesarios (puedes añadir ingredientes comunes como aceite, sal, pimienta).
3. Una sección de 'Instrucciones' con los pasos a seguir.

Sé claro, conciso y asegúrate de que las recetas sean fáciles de seguir para un cocinero principiante.`

// RecipeClient calls the Gemini generateContent endpoint to turn a list
// of ingredient names into markdown recipe suggestions. One attempt per
// invocation, no retry.
type RecipeClient struct {
	apiKey     string
	model      string
	baseURL    string
	httpClient *http.Client
	logger     *zap.Logger
}

// NewRecipeClient creates a new recipe client
func NewRecipeClient(apiKey, model string) *RecipeClient {
	return &RecipeClient{
		apiKey:  apiKey,
		model:   model,
		baseURL: "https://generativelanguage.googleapis.com/v1beta",
		httpClient: &http.Client{
			Timeout: 30 * time.Second,
		},
		logger: util.GetLogger(),
	}
}

type generateContentRequest struct {
	Contents []content `json:"contents"`
}

type content struct {
	Parts []part `json:"parts"`
}

type part struct {
	Text string `json:"text"`
}

type generateContentResponse struct {
	Candidates []struct {
		Content content `json:"content"`
	} `json:"candidates"`
}

// GenerateRecipes returns markdown recipe text for the ingredients, or
// the user-facing error string on any failure
func (c *RecipeClient) GenerateRecipes(ctx context.Context, ingredients []string) (string, error) {
	ctx, span := util.StartSpan(ctx, "RecipeClient.GenerateRecipes")
	defer span.End()

	start := time.Now()
	defer func() {
		util.RecipeRequestLatency.Observe(time.Since(start).Seconds())
	}()

	prompt := fmt.Sprintf(recipePromptTemplate, strings.Join(ingredients, ", "))
	body, err := json.Marshal(generateContentRequest{
		Contents: []content{{Parts: []part{{Text: prompt}}}},
	})
	if err != nil {
		return "", fmt.Errorf("failed to marshal request: %w", err)
	}

	url := fmt.Sprintf("%s/models/%s:generateContent?key=%s", c.baseURL, c.model, c.apiKey)
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(body))
	if err != nil {
		return "", fmt.Errorf("failed to build request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		util.RecipeRequestsTotal.WithLabelValues("error").Inc()
		c.logger.Error("Recipe generation call failed", zap.Error(err))
		return "", ErrRecipeUnavailable
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		util.RecipeRequestsTotal.WithLabelValues("error").Inc()
		c.logger.Error("Recipe generation returned non-OK status",
			zap.Int("status", resp.StatusCode))
		return "", ErrRecipeUnavailable
	}

	var result generateContentResponse
	if err := json.NewDecoder(resp.Body).Decode(&result); err != nil {
		util.RecipeRequestsTotal.WithLabelValues("error").Inc()
		c.logger.Error("Failed to decode recipe response", zap.Error(err))
		return "", ErrRecipeUnavailable
	}

	if len(result.Candidates) == 0 || len(result.Candidates[0].Content.Parts) == 0 {
		util.RecipeRequestsTotal.WithLabelValues("empty").Inc()
		return "", ErrRecipeUnavailable
	}

	util.RecipeRequestsTotal.WithLabelValues("success").Inc()
	return result.Candidates[0].Content.Parts[0].Text, nil
}
