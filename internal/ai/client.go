// Package ai implements the generative meal-plan collaborator: a client
// for the Gemini generateContent REST API plus the Planner interface the
// service layer consumes (and tests stub).
package ai

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"regexp"
	"time"

	apperrors "budgetbites/internal/errors"
	"budgetbites/internal/models"
)

// Usage reports token consumption for one collaborator call.
type Usage struct {
	PromptTokens     int
	CompletionTokens int
}

// PlanContext carries the generation inputs shared by all plan calls.
type PlanContext struct {
	Month       string
	Budget      *models.Budget
	Preferences *models.Preference
}

// Planner is the generative collaborator behind meal plan generation.
// Implementations must return AppErrors with distinguishable messages for
// transport failures (AI_UNAVAILABLE) and unusable payloads
// (AI_BAD_RESPONSE); callers do not retry.
type Planner interface {
	GenerateMonthlyPlan(ctx context.Context, pc PlanContext) ([]models.MealPlan, Usage, error)
	RegenerateDailyMeal(ctx context.Context, date string, mealType models.MealType, pc PlanContext) (*models.MealPlan, Usage, error)
	RegenerateTodayMeals(ctx context.Context, date string, pc PlanContext) ([]models.MealPlan, Usage, error)
}

// Client calls the Gemini generateContent endpoint.
type Client struct {
	baseURL string
	apiKey  string
	model   string
	httpc   *http.Client
}

var _ Planner = (*Client)(nil)

// NewClient creates a Gemini client. baseURL is the API root without a
// trailing slash, e.g. https://generativelanguage.googleapis.com.
func NewClient(baseURL, apiKey, model string, timeout time.Duration) *Client {
	return &Client{
		baseURL: baseURL,
		apiKey:  apiKey,
		model:   model,
		httpc:   &http.Client{Timeout: timeout},
	}
}

// Wire types for the generateContent envelope.

type generateRequest struct {
	Contents         []content        `json:"contents"`
	GenerationConfig generationConfig `json:"generationConfig"`
}

type content struct {
	Role  string `json:"role"`
	Parts []part `json:"parts"`
}

type part struct {
	Text string `json:"text"`
}

type generationConfig struct {
	Temperature      float64 `json:"temperature"`
	TopK             int     `json:"topK"`
	TopP             float64 `json:"topP"`
	MaxOutputTokens  int     `json:"maxOutputTokens"`
	ResponseMIMEType string  `json:"responseMimeType"`
}

type generateResponse struct {
	Candidates []struct {
		Content *content `json:"content"`
	} `json:"candidates"`
	UsageMetadata struct {
		PromptTokenCount     int `json:"promptTokenCount"`
		CandidatesTokenCount int `json:"candidatesTokenCount"`
	} `json:"usageMetadata"`
}

// planPayload is the shape of one generated meal on the wire: a MealPlan
// minus identifier and timestamps.
type planPayload struct {
	Date          string                `json:"date"`
	MealType      models.MealType       `json:"meal_type"`
	MenuName      string                `json:"menu_name"`
	Ingredients   models.IngredientList `json:"ingredients"`
	Recipe        models.StringList     `json:"recipe"`
	Nutrition     models.Nutrition      `json:"nutrition"`
	CookingTime   int                   `json:"cooking_time"`
	EstimatedCost int                   `json:"estimated_cost"`
}

// toModel converts a wire payload to a MealPlan. The estimated cost is
// recomputed from the ingredient costs when the reported value disagrees,
// so stored plans always satisfy the cost invariant.
func (p planPayload) toModel() models.MealPlan {
	cost := p.EstimatedCost
	if total := p.Ingredients.TotalCost(); total > 0 && total != cost {
		cost = total
	}
	return models.MealPlan{
		Date:          p.Date,
		MealType:      p.MealType,
		MenuName:      p.MenuName,
		Ingredients:   p.Ingredients,
		Recipe:        p.Recipe,
		Nutrition:     p.Nutrition,
		CookingTime:   p.CookingTime,
		EstimatedCost: cost,
	}
}

// GenerateMonthlyPlan asks the collaborator for a full month of meals.
func (c *Client) GenerateMonthlyPlan(ctx context.Context, pc PlanContext) ([]models.MealPlan, Usage, error) {
	prompt := buildMonthlyPrompt(pc)
	text, usage, err := c.generate(ctx, prompt, generationConfig{
		Temperature:      0.7,
		TopK:             40,
		TopP:             0.95,
		MaxOutputTokens:  1000000,
		ResponseMIMEType: "application/json",
	})
	if err != nil {
		return nil, usage, err
	}

	plans, err := parsePlans(text)
	if err != nil {
		return nil, usage, err
	}
	return plans, usage, nil
}

// RegenerateDailyMeal asks the collaborator for one replacement meal.
func (c *Client) RegenerateDailyMeal(ctx context.Context, date string, mealType models.MealType, pc PlanContext) (*models.MealPlan, Usage, error) {
	prompt := buildDailyPrompt(date, mealType, pc)
	text, usage, err := c.generate(ctx, prompt, generationConfig{
		Temperature:      0.8,
		TopK:             40,
		TopP:             0.95,
		MaxOutputTokens:  65536,
		ResponseMIMEType: "application/json",
	})
	if err != nil {
		return nil, usage, err
	}

	raw, err := extractJSON(text)
	if err != nil {
		return nil, usage, err
	}

	var payload planPayload
	if err := json.Unmarshal(raw, &payload); err != nil {
		return nil, usage, apperrors.Wrap(apperrors.ErrAIBadResponse, err)
	}
	if payload.MenuName == "" {
		return nil, usage, apperrors.WithMessage(apperrors.ErrAIBadResponse, "response is missing a meal plan")
	}
	// The model occasionally omits the key we asked it to echo back.
	if payload.Date == "" {
		payload.Date = date
	}
	if payload.MealType == "" {
		payload.MealType = mealType
	}

	plan := payload.toModel()
	return &plan, usage, nil
}

// RegenerateTodayMeals asks the collaborator for a full day (3 meals).
func (c *Client) RegenerateTodayMeals(ctx context.Context, date string, pc PlanContext) ([]models.MealPlan, Usage, error) {
	prompt := buildTodayPrompt(date, pc)
	text, usage, err := c.generate(ctx, prompt, generationConfig{
		Temperature:      0.7,
		TopK:             40,
		TopP:             0.95,
		MaxOutputTokens:  65536,
		ResponseMIMEType: "application/json",
	})
	if err != nil {
		return nil, usage, err
	}

	plans, err := parsePlans(text)
	if err != nil {
		return nil, usage, err
	}
	return plans, usage, nil
}

// generate performs one generateContent round trip and returns the text of
// the first candidate.
func (c *Client) generate(ctx context.Context, prompt string, cfg generationConfig) (string, Usage, error) {
	body, err := json.Marshal(generateRequest{
		Contents:         []content{{Role: "user", Parts: []part{{Text: prompt}}}},
		GenerationConfig: cfg,
	})
	if err != nil {
		return "", Usage{}, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}

	url := fmt.Sprintf("%s/v1beta/models/%s:generateContent?key=%s", c.baseURL, c.model, c.apiKey)
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(body))
	if err != nil {
		return "", Usage{}, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpc.Do(req)
	if err != nil {
		return "", Usage{}, apperrors.Wrap(apperrors.ErrAIUnavailable, err)
	}
	defer resp.Body.Close()

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", Usage{}, apperrors.Wrap(apperrors.ErrAIUnavailable, err)
	}
	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return "", Usage{}, apperrors.WithMessage(apperrors.ErrAIUnavailable,
			fmt.Sprintf("meal plan service returned status %d", resp.StatusCode))
	}

	var parsed generateResponse
	if err := json.Unmarshal(data, &parsed); err != nil {
		return "", Usage{}, apperrors.Wrap(apperrors.ErrAIBadResponse, err)
	}
	usage := Usage{
		PromptTokens:     parsed.UsageMetadata.PromptTokenCount,
		CompletionTokens: parsed.UsageMetadata.CandidatesTokenCount,
	}
	if len(parsed.Candidates) == 0 || parsed.Candidates[0].Content == nil || len(parsed.Candidates[0].Content.Parts) == 0 {
		return "", usage, apperrors.WithMessage(apperrors.ErrAIBadResponse, "response has no content parts")
	}
	return parsed.Candidates[0].Content.Parts[0].Text, usage, nil
}

var (
	fencedJSON = regexp.MustCompile("(?s)```json\\s*(.*?)\\s*```")
	braceJSON  = regexp.MustCompile(`(?s)\{.*\}`)
)

// extractJSON returns the JSON document embedded in a model response.
// JSON mode normally returns bare JSON; older models wrap it in a fenced
// block or surround it with prose, so fall back to extraction.
func extractJSON(text string) ([]byte, error) {
	if json.Valid([]byte(text)) {
		return []byte(text), nil
	}
	if m := fencedJSON.FindStringSubmatch(text); m != nil {
		return []byte(m[1]), nil
	}
	if m := braceJSON.FindString(text); m != "" {
		return []byte(m), nil
	}
	return nil, apperrors.WithMessage(apperrors.ErrAIBadResponse, "could not extract JSON from response")
}

// parsePlans decodes a {"plans": [...]} response. A missing plans array is
// a hard failure: no partial acceptance.
func parsePlans(text string) ([]models.MealPlan, error) {
	raw, err := extractJSON(text)
	if err != nil {
		return nil, err
	}

	var wrapper struct {
		Plans []planPayload `json:"plans"`
	}
	if err := json.Unmarshal(raw, &wrapper); err != nil {
		return nil, apperrors.Wrap(apperrors.ErrAIBadResponse, err)
	}
	if wrapper.Plans == nil {
		return nil, apperrors.WithMessage(apperrors.ErrAIBadResponse, "response has no plans array")
	}

	plans := make([]models.MealPlan, 0, len(wrapper.Plans))
	for _, p := range wrapper.Plans {
		plans = append(plans, p.toModel())
	}
	return plans, nil
}
