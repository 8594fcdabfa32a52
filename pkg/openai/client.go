package openai

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"github.com/sashabaranov/go-openai"

	"github.com/Baptiste68/recette/pkg/logger"
)

// Client represents an OpenAI API client
type Client struct {
	client *openai.Client
	model  string
	logger *logger.Logger
}

// New creates a new OpenAI client
func New(apiKey, apiBase, model string) *Client {
	config := openai.DefaultConfig(apiKey)
	if apiBase != "" {
		config.BaseURL = apiBase
	}

	client := openai.NewClientWithConfig(config)
	return &Client{
		client: client,
		model:  model,
		logger: logger.New("openai"),
	}
}

// ParseIngredientsFromText extracts ingredient names from free-form text,
// for example "j'ai acheté 2 tomates, du lait et un reste de poulet".
func (c *Client) ParseIngredientsFromText(ctx context.Context, text string) ([]string, error) {
	ctx, cancel := context.WithTimeout(ctx, 15*time.Second)
	defer cancel()

	prompt := fmt.Sprintf(`
You are a cooking assistant. Extract all food ingredients from the following text.
The text may be in French or English; keep each ingredient name in its original language.
Return only a JSON array of ingredient names, no other text.
For example: ["tomates", "lait", "poulet"]

Text: %s
`, text)

	c.logger.Info("Parsing ingredients from text")
	c.logger.Debug("Text to parse (first 100 chars): %s", truncateString(text, 100))

	resp, err := c.client.CreateChatCompletion(
		ctx,
		openai.ChatCompletionRequest{
			Model: c.model,
			Messages: []openai.ChatCompletionMessage{
				{
					Role:    openai.ChatMessageRoleUser,
					Content: prompt,
				},
			},
			Temperature: 0.2,
		},
	)

	if err != nil {
		return nil, fmt.Errorf("OpenAI API error: %w", err)
	}

	if len(resp.Choices) == 0 {
		return nil, fmt.Errorf("no response from OpenAI API")
	}

	content := resp.Choices[0].Message.Content
	c.logger.Debug("OpenAI response (first 100 chars): %s", truncateString(content, 100))

	// Clean up the response - sometimes the model returns markdown code blocks
	content = cleanJSONResponse(content)

	var ingredients []string
	if err := json.Unmarshal([]byte(content), &ingredients); err != nil {
		c.logger.Error("Failed to parse response: %v, Content: %s", err, content)

		// Try to extract ingredients using a more lenient approach
		extracted := extractIngredientsFromText(content)
		if len(extracted) > 0 {
			c.logger.Info("Extracted %d ingredients using fallback method", len(extracted))
			return extracted, nil
		}

		return nil, fmt.Errorf("failed to parse OpenAI response: %w", err)
	}

	return ingredients, nil
}

// Helper functions

// truncateString truncates a string to the specified length
func truncateString(s string, maxLen int) string {
	if len(s) <= maxLen {
		return s
	}
	return s[:maxLen] + "..."
}

// cleanJSONResponse cleans up the JSON response from OpenAI
// Sometimes the model returns markdown code blocks with ```json and ``` delimiters
func cleanJSONResponse(s string) string {
	s = strings.TrimSpace(s)

	if strings.HasPrefix(s, "```") {
		// Skip the first line, which might contain "```json"
		firstLineEnd := strings.Index(s, "\n")
		if firstLineEnd != -1 {
			s = s[firstLineEnd+1:]
		}

		if strings.HasSuffix(s, "```") {
			s = s[:len(s)-3]
		}

		s = strings.TrimSpace(s)
	}

	return s
}

// extractIngredientsFromText extracts ingredients from text using a simple heuristic
// This is a fallback method when JSON parsing fails
func extractIngredientsFromText(s string) []string {
	words := strings.FieldsFunc(s, func(r rune) bool {
		return r == ',' || r == '\n' || r == '"' || r == '[' || r == ']' || r == '\t'
	})

	var ingredients []string
	for _, word := range words {
		word = strings.TrimSpace(word)
		if len(word) <= 1 {
			continue
		}
		if word == "null" || word == "true" || word == "false" {
			continue
		}
		if word[0] >= '0' && word[0] <= '9' {
			continue
		}

		ingredients = append(ingredients, word)
	}

	return ingredients
}
