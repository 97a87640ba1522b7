package openai

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"math"
	"net/http"
	"strings"
	"time"

	"fitcircle/internal/models"
)

const (
	DefaultBaseURL = "https://api.openai.com/v1"
	DefaultModel   = "gpt-4o-mini"
	DefaultTimeout = 60 * time.Second

	mealPlanTool = "create_meal_plan"
)

var (
	ErrRateLimited      = errors.New("ai gateway rate limit exceeded")
	ErrQuotaExhausted   = errors.New("ai gateway credits exhausted")
	ErrGenerationFailed = errors.New("ai gateway failed to generate a meal plan")
)

type Config struct {
	APIKey  string
	BaseURL string
	Model   string
	Timeout time.Duration
}

type Client struct {
	apiKey     string
	baseURL    string
	model      string
	httpClient *http.Client
}

type ContentItem struct {
	Type string `json:"type"`
	Text string `json:"text,omitempty"`
}

type ChatMessage struct {
	Role    string        `json:"role"`
	Content []ContentItem `json:"content"`
}

type ToolFunction struct {
	Name        string          `json:"name"`
	Description string          `json:"description,omitempty"`
	Parameters  json.RawMessage `json:"parameters,omitempty"`
}

type Tool struct {
	Type     string       `json:"type"`
	Function ToolFunction `json:"function"`
}

type ToolChoice struct {
	Type     string `json:"type"`
	Function struct {
		Name string `json:"name"`
	} `json:"function"`
}

type ChatCompletionRequest struct {
	Model       string        `json:"model"`
	Messages    []ChatMessage `json:"messages"`
	Tools       []Tool        `json:"tools,omitempty"`
	ToolChoice  *ToolChoice   `json:"tool_choice,omitempty"`
	Temperature float64       `json:"temperature,omitempty"`
}

type ChatCompletionResponse struct {
	Choices []struct {
		Message struct {
			Content   string `json:"content"`
			ToolCalls []struct {
				Type     string `json:"type"`
				Function struct {
					Name      string `json:"name"`
					Arguments string `json:"arguments"`
				} `json:"function"`
			} `json:"tool_calls"`
		} `json:"message"`
	} `json:"choices"`
}

// MealPlanRequest carries what the prompt is built from. An empty MealType
// asks for a full day of four meals.
type MealPlanRequest struct {
	CalorieGoal int
	Preference  string
	Allergies   []string
	MealType    models.MealType
}

// generatedMeal mirrors the tool arguments. Numbers arrive as JSON numbers
// that may carry fractions.
type generatedMeal struct {
	Type        models.MealType `json:"type"`
	Time        string          `json:"time"`
	Title       string          `json:"title"`
	Ingredients string          `json:"ingredients"`
	Calories    float64         `json:"calories"`
	Tag         string          `json:"tag"`
	Protein     float64         `json:"protein"`
	Carbs       float64         `json:"carbs"`
	Fat         float64         `json:"fat"`
}

const mealPlanSchema = `{
  "type": "object",
  "properties": {
    "meals": {
      "type": "array",
      "items": {
        "type": "object",
        "properties": {
          "type": {"type": "string", "enum": ["breakfast", "lunch", "dinner", "snack"]},
          "time": {"type": "string", "description": "Suggested time like 08:00 AM"},
          "title": {"type": "string", "description": "Name of the meal"},
          "ingredients": {"type": "string", "description": "Main ingredients, comma separated"},
          "calories": {"type": "number", "description": "Estimated calories"},
          "tag": {"type": "string", "description": "Diet tag like High Protein, Vegan, Keto Friendly, Low Carb, High Fiber"},
          "protein": {"type": "number", "description": "Grams of protein"},
          "carbs": {"type": "number", "description": "Grams of carbohydrates"},
          "fat": {"type": "number", "description": "Grams of fat"}
        },
        "required": ["type", "time", "title", "ingredients", "calories", "tag", "protein", "carbs", "fat"],
        "additionalProperties": false
      }
    }
  },
  "required": ["meals"],
  "additionalProperties": false
}`

const systemPrompt = `You are a nutrition expert that creates personalized meal recommendations.
Always respond with valid JSON matching the exact schema requested.
Consider the user's calorie goals, dietary preferences, and allergies when creating meals.
Make meals practical, delicious, and nutritious.`

func NewClient(cfg Config) (*Client, error) {
	if cfg.APIKey == "" {
		return nil, fmt.Errorf("OPENAI_API_KEY is not set")
	}
	if cfg.BaseURL == "" {
		cfg.BaseURL = DefaultBaseURL
	}
	if cfg.Model == "" {
		cfg.Model = DefaultModel
	}
	if cfg.Timeout <= 0 {
		cfg.Timeout = DefaultTimeout
	}

	return &Client{
		apiKey:     cfg.APIKey,
		baseURL:    strings.TrimRight(cfg.BaseURL, "/"),
		model:      cfg.Model,
		httpClient: &http.Client{Timeout: cfg.Timeout},
	}, nil
}

func buildUserPrompt(req MealPlanRequest) string {
	scope := "complete daily"
	count := "4 meals"
	if req.MealType != "" {
		scope = string(req.MealType)
		count = "1 meal"
	}

	allergies := "none"
	if len(req.Allergies) > 0 {
		allergies = strings.Join(req.Allergies, ", ")
	}

	return fmt.Sprintf(`Generate a %s meal plan for someone with:
- Daily calorie goal: %d kcal
- Dietary preference: %s
- Allergies/restrictions: %s

Create %s (breakfast, lunch, dinner, snack if complete day).
Each meal should fit proportionally within the daily calorie goal.`, scope, req.CalorieGoal, req.Preference, allergies, count)
}

func (c *Client) buildRequest(req MealPlanRequest) ChatCompletionRequest {
	choice := &ToolChoice{Type: "function"}
	choice.Function.Name = mealPlanTool

	return ChatCompletionRequest{
		Model: c.model,
		Messages: []ChatMessage{
			{Role: "system", Content: []ContentItem{{Type: "text", Text: systemPrompt}}},
			{Role: "user", Content: []ContentItem{{Type: "text", Text: buildUserPrompt(req)}}},
		},
		Tools: []Tool{{
			Type: "function",
			Function: ToolFunction{
				Name:        mealPlanTool,
				Description: "Create a personalized meal plan with nutritional information",
				Parameters:  json.RawMessage(mealPlanSchema),
			},
		}},
		ToolChoice: choice,
	}
}

// GenerateMealPlan forces a create_meal_plan tool call and decodes its
// arguments. Errors wrap ErrRateLimited, ErrQuotaExhausted or ErrGenerationFailed.
func (c *Client) GenerateMealPlan(ctx context.Context, req MealPlanRequest) (*models.MealPlan, error) {
	jsonData, err := json.Marshal(c.buildRequest(req))
	if err != nil {
		return nil, fmt.Errorf("failed to marshal request: %w", err)
	}

	request, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/chat/completions", bytes.NewBuffer(jsonData))
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}
	request.Header.Set("Content-Type", "application/json")
	request.Header.Set("Authorization", fmt.Sprintf("Bearer %s", c.apiKey))

	response, err := c.httpClient.Do(request)
	if err != nil {
		return nil, fmt.Errorf("%w: failed to send request: %v", ErrGenerationFailed, err)
	}
	defer response.Body.Close()

	switch {
	case response.StatusCode == http.StatusTooManyRequests:
		return nil, ErrRateLimited
	case response.StatusCode == http.StatusPaymentRequired:
		return nil, ErrQuotaExhausted
	case response.StatusCode < 200 || response.StatusCode >= 300:
		body, _ := io.ReadAll(io.LimitReader(response.Body, 4096))
		return nil, fmt.Errorf("%w: status %d: %s", ErrGenerationFailed, response.StatusCode, strings.TrimSpace(string(body)))
	}

	var result ChatCompletionResponse
	if err := json.NewDecoder(response.Body).Decode(&result); err != nil {
		return nil, fmt.Errorf("%w: failed to decode response: %v", ErrGenerationFailed, err)
	}
	if len(result.Choices) == 0 || len(result.Choices[0].Message.ToolCalls) == 0 {
		return nil, fmt.Errorf("%w: no tool call in response", ErrGenerationFailed)
	}

	var args struct {
		Meals []generatedMeal `json:"meals"`
	}
	raw := result.Choices[0].Message.ToolCalls[0].Function.Arguments
	if err := json.Unmarshal([]byte(raw), &args); err != nil {
		return nil, fmt.Errorf("%w: failed to parse tool arguments: %v", ErrGenerationFailed, err)
	}

	plan := &models.MealPlan{Meals: make([]models.GeneratedMeal, 0, len(args.Meals))}
	for _, m := range args.Meals {
		plan.Meals = append(plan.Meals, models.GeneratedMeal{
			Type:        m.Type,
			Time:        m.Time,
			Title:       m.Title,
			Ingredients: m.Ingredients,
			Calories:    int(math.Round(m.Calories)),
			Tag:         m.Tag,
			Protein:     m.Protein,
			Carbs:       m.Carbs,
			Fat:         m.Fat,
		})
	}
	return plan, nil
}
