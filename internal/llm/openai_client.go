// ABOUTME: OpenAI client implementing the extractor, summarizer, and generator contracts
// ABOUTME: JSON-out prompts with timeouts and bounded retries (configurable)
package llm

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"github.com/harper/studybuddy/internal/models"
	"github.com/harper/studybuddy/internal/util"
	openai "github.com/sashabaranov/go-openai"
)

// DefaultChatModel is the default model for all study guide calls
const DefaultChatModel = "gpt-4o-mini"

// ClientConfig holds configuration for the OpenAI client
type ClientConfig struct {
	APIKey     string
	ChatModel  string
	Timeout    time.Duration
	MaxRetries int
	RetryDelay time.Duration
}

// DefaultConfig returns the default client configuration
func DefaultConfig(apiKey string) *ClientConfig {
	return &ClientConfig{
		APIKey:     apiKey,
		ChatModel:  DefaultChatModel,
		Timeout:    30 * time.Second,
		MaxRetries: 3,
		RetryDelay: time.Second * 2,
	}
}

// Client wraps the OpenAI API as the model backend for extraction,
// summarization, and question generation. Constructed explicitly and
// passed in; there is no ambient singleton.
type Client struct {
	client     *openai.Client
	chatModel  string
	timeout    time.Duration
	maxRetries int
	retryDelay time.Duration
}

// NewClient creates a client with the default configuration
func NewClient(apiKey string) (*Client, error) {
	return NewClientWithConfig(DefaultConfig(apiKey))
}

// NewClientWithConfig creates a client with custom configuration
func NewClientWithConfig(config *ClientConfig) (*Client, error) {
	if config.APIKey == "" {
		return nil, fmt.Errorf("OpenAI API key is required")
	}
	model := config.ChatModel
	if model == "" {
		model = DefaultChatModel
	}
	timeout := config.Timeout
	if timeout <= 0 {
		timeout = 30 * time.Second
	}
	return &Client{
		client:     openai.NewClient(config.APIKey),
		chatModel:  model,
		timeout:    timeout,
		maxRetries: config.MaxRetries,
		retryDelay: config.RetryDelay,
	}, nil
}

// Extract pulls entities, keywords, and noun phrases out of chunk text.
// The model cannot report word offsets, so spans come back as -1 and the
// aggregator skips overlap attribution for these signals.
func (c *Client) Extract(chunkText string) (models.Extraction, error) {
	if strings.TrimSpace(chunkText) == "" {
		return models.Extraction{}, nil
	}

	systemPrompt := `You are a concept extraction assistant. Given a passage, extract:
1. entities: named entities as {"text": ..., "label": ...} with labels like PERSON, ORG, GPE, DATE
2. keywords: salient terms as {"text": ..., "score": 0.0-1.0}
3. noun_phrases: multi-word noun phrases as plain strings

Return ONLY a JSON object with these three fields. No additional text.`

	userPrompt := fmt.Sprintf("Extract concepts from this passage:\n\n%s", chunkText)

	type extractResponse struct {
		Entities []struct {
			Text  string `json:"text"`
			Label string `json:"label"`
		} `json:"entities"`
		Keywords []struct {
			Text  string  `json:"text"`
			Score float64 `json:"score"`
		} `json:"keywords"`
		NounPhrases []string `json:"noun_phrases"`
	}

	var parsed extractResponse
	if err := c.completeJSON(systemPrompt, userPrompt, 0.3, &parsed); err != nil {
		return models.Extraction{}, err
	}

	var ext models.Extraction
	for _, e := range parsed.Entities {
		ext.Entities = append(ext.Entities, models.Entity{Text: e.Text, Label: e.Label, Start: -1, End: -1})
	}
	for _, k := range parsed.Keywords {
		ext.Keywords = append(ext.Keywords, models.Keyword{Text: k.Text, Score: k.Score, Start: -1, End: -1})
	}
	for _, np := range parsed.NounPhrases {
		ext.NounPhrases = append(ext.NounPhrases, models.NounPhrase{Text: np, Start: -1, End: -1})
	}
	return ext, nil
}

// Summarize compresses text toward maxWords words
func (c *Client) Summarize(text string, maxWords int) (string, error) {
	if strings.TrimSpace(text) == "" {
		return "", nil
	}
	if maxWords <= 0 {
		maxWords = 100
	}

	systemPrompt := fmt.Sprintf(
		"You are a summarization assistant. Summarize the user's text in at most %d words. Return only the summary text.",
		maxWords)

	content, err := c.complete(systemPrompt, text, 0.3)
	if err != nil {
		return "", err
	}
	return strings.TrimSpace(content), nil
}

// Generate produces candidate study questions for a seed concept or passage.
// It may return fewer than count; deduplication happens downstream.
func (c *Client) Generate(seed string, count int) ([]string, error) {
	if strings.TrimSpace(seed) == "" || count <= 0 {
		return nil, nil
	}

	systemPrompt := fmt.Sprintf(`You are a study question assistant. Given a concept or passage, write up to %d study questions about it.
Return ONLY a JSON array of question strings. Each question must end with a question mark.`, count)

	var questions []string
	if err := c.completeJSON(systemPrompt, seed, 0.7, &questions); err != nil {
		return nil, err
	}
	if len(questions) > count {
		questions = questions[:count]
	}
	return questions, nil
}

// complete runs one chat completion with retries and returns raw content
func (c *Client) complete(systemPrompt, userPrompt string, temperature float32) (string, error) {
	var lastErr error

	for attempt := 0; attempt <= c.maxRetries; attempt++ {
		if attempt > 0 {
			time.Sleep(util.CalculateBackoff(c.retryDelay, attempt))
		}

		ctx, cancel := context.WithTimeout(context.Background(), c.timeout)

		resp, err := c.client.CreateChatCompletion(ctx, openai.ChatCompletionRequest{
			Model: c.chatModel,
			Messages: []openai.ChatCompletionMessage{
				{Role: openai.ChatMessageRoleSystem, Content: systemPrompt},
				{Role: openai.ChatMessageRoleUser, Content: userPrompt},
			},
			Temperature: temperature,
		})

		if err != nil {
			cancel()
			lastErr = fmt.Errorf("attempt %d: %w", attempt+1, err)
			continue
		}

		if len(resp.Choices) == 0 {
			cancel()
			lastErr = fmt.Errorf("attempt %d: no completion choices returned", attempt+1)
			continue
		}

		cancel()
		return resp.Choices[0].Message.Content, nil
	}

	return "", fmt.Errorf("completion failed after %d attempts: %w", c.maxRetries+1, lastErr)
}

// completeJSON runs a completion and unmarshals the JSON response into out
func (c *Client) completeJSON(systemPrompt, userPrompt string, temperature float32, out interface{}) error {
	content, err := c.complete(systemPrompt, userPrompt, temperature)
	if err != nil {
		return err
	}
	content = stripCodeFence(content)
	if err := json.Unmarshal([]byte(content), out); err != nil {
		return fmt.Errorf("failed to parse JSON response: %w", err)
	}
	return nil
}

// stripCodeFence removes a ```json fence the model sometimes wraps around output
func stripCodeFence(content string) string {
	content = strings.TrimSpace(content)
	if !strings.HasPrefix(content, "```") {
		return content
	}
	content = strings.TrimPrefix(content, "```json")
	content = strings.TrimPrefix(content, "```")
	content = strings.TrimSuffix(content, "```")
	return strings.TrimSpace(content)
}
