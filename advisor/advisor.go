// Package advisor asks the generative model for a short recommendation for
// a scored threat. The model is the only external dependency in the request
// path, so every exit returns usable text: errors, timeouts, an open
// breaker, or an empty completion all degrade to the level's static action
// item instead of failing the request.
package advisor

import (
	"context"
	"fmt"
	"log"
	"strings"
	"time"

	"github.com/sashabaranov/go-openai"
	"github.com/sony/gobreaker/v2"

	"go-sentinel/scoring"
	"go-sentinel/types"
)

const (
	SourceModel    = "model"
	SourceFallback = "fallback"

	maxFieldLength  = 64
	maxPromptLength = 600
	maxTokens       = 150
)

// Request carries the context the model needs for one recommendation.
type Request struct {
	Disease string
	City    string
	Score   int
	Level   types.ThreatLevel
}

type Advisor struct {
	client  *openai.Client
	breaker *gobreaker.CircuitBreaker[string]
	model   string
	timeout time.Duration
}

func New(client *openai.Client, model string, timeout time.Duration) *Advisor {
	cb := gobreaker.NewCircuitBreaker[string](gobreaker.Settings{
		Name:        "openai-recommendation",
		MaxRequests: 1,
		Interval:    60 * time.Second,
		Timeout:     30 * time.Second,
		ReadyToTrip: func(counts gobreaker.Counts) bool {
			return counts.ConsecutiveFailures > 5
		},
	})
	return &Advisor{client: client, breaker: cb, model: model, timeout: timeout}
}

// Recommend returns the recommendation text and where it came from
// (SourceModel or SourceFallback). It never fails.
func (a *Advisor) Recommend(ctx context.Context, req Request) (string, string) {
	ctx, cancel := context.WithTimeout(ctx, a.timeout)
	defer cancel()

	text, err := a.breaker.Execute(func() (string, error) {
		return a.complete(ctx, req)
	})
	if err != nil {
		log.Printf("advisor: model call failed for %s/%s, using action item: %v", req.Disease, req.City, err)
		return scoring.ActionItem(req.Level), SourceFallback
	}
	return text, SourceModel
}

func (a *Advisor) complete(ctx context.Context, req Request) (string, error) {
	resp, err := a.client.CreateChatCompletion(
		ctx,
		openai.ChatCompletionRequest{
			Model: a.model,
			Messages: []openai.ChatCompletionMessage{
				{
					Role:    openai.ChatMessageRoleSystem,
					Content: "You are a public-health analyst who writes short, actionable outbreak recommendations for local officials.",
				},
				{
					Role:    openai.ChatMessageRoleUser,
					Content: buildPrompt(req),
				},
			},
			MaxTokens:   maxTokens,
			N:           1,
			Temperature: 0.4,
		},
	)
	if err != nil {
		return "", fmt.Errorf("openai chat completion error: %w", err)
	}
	if len(resp.Choices) == 0 || strings.TrimSpace(resp.Choices[0].Message.Content) == "" {
		return "", fmt.Errorf("openai returned empty response or choices")
	}
	return strings.TrimSpace(resp.Choices[0].Message.Content), nil
}

// buildPrompt keeps the prompt bounded no matter what the client sent as
// disease or city.
func buildPrompt(req Request) string {
	prompt := fmt.Sprintf(
		"A disease-surveillance dashboard reports a threat score of %d out of 10 (%s) for %s in %s, based on search-interest and social-chatter signals. Write a recommendation for local health officials (2-3 sentences maximum): what to monitor and what immediate steps to take.",
		req.Score,
		req.Level,
		truncate(req.Disease, maxFieldLength),
		truncate(req.City, maxFieldLength),
	)
	if len(prompt) > maxPromptLength {
		prompt = prompt[:maxPromptLength]
	}
	return prompt
}

func truncate(s string, n int) string {
	if len(s) <= n {
		return s
	}
	return s[:n]
}
