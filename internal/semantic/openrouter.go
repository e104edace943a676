// Package semantic is the LLM-backed layer of the matching pipeline: query
// attribute extraction, embedding generation, vector search and reason
// personalization. Every entry point degrades instead of failing; the
// rule-based ranking path never waits on a broken model API.
package semantic

import (
	"context"
	"errors"
	"fmt"

	"github.com/go-resty/resty/v2"
	"github.com/sony/gobreaker"

	"github.com/dmuchance/bouncematch/internal/logger"
)

// LLM is the outbound model API as the semantic layer consumes it.
type LLM interface {
	// CreateEmbedding returns the embedding vector for one input text.
	CreateEmbedding(ctx context.Context, input string) ([]float32, error)

	// CreateCompletion runs one system+user chat turn and returns the raw
	// assistant message content.
	CreateCompletion(ctx context.Context, system, user string) (string, error)
}

// OpenRouterClient talks to the OpenRouter API. Each endpoint sits behind its
// own circuit breaker so a broken completion model does not take embedding
// traffic down with it.
type OpenRouterClient struct {
	http            *resty.Client
	embeddings      *gobreaker.CircuitBreaker
	completions     *gobreaker.CircuitBreaker
	embeddingModel  string
	completionModel string
}

// NewOpenRouterClient creates a new OpenRouter API client
func NewOpenRouterClient(baseURL, apiKey, embeddingModel, completionModel string) *OpenRouterClient {
	client := resty.New().
		SetBaseURL(baseURL).
		SetTimeout(RequestTimeout).
		SetRetryCount(0). // the breakers own failure handling
		SetAuthToken(apiKey).
		SetHeader("Content-Type", "application/json")

	return &OpenRouterClient{
		http:            client,
		embeddings:      newBreaker("openrouter-embeddings"),
		completions:     newBreaker("openrouter-completions"),
		embeddingModel:  embeddingModel,
		completionModel: completionModel,
	}
}

func newBreaker(name string) *gobreaker.CircuitBreaker {
	return gobreaker.NewCircuitBreaker(gobreaker.Settings{
		Name:        name,
		MaxRequests: BreakerMaxRequests,
		Interval:    BreakerInterval,
		Timeout:     BreakerTimeout,
		ReadyToTrip: func(counts gobreaker.Counts) bool {
			ratio := float64(counts.TotalFailures) / float64(counts.Requests)
			return counts.Requests >= BreakerMinRequests && ratio >= BreakerFailureRatio
		},
		OnStateChange: func(cbName string, from gobreaker.State, to gobreaker.State) {
			logger.Warn("Circuit breaker state changed",
				"circuit", cbName,
				"from", from.String(),
				"to", to.String())
		},
	})
}

type chatMessage struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

type responseFormat struct {
	Type string `json:"type"`
}

type completionRequest struct {
	Model          string          `json:"model"`
	Messages       []chatMessage   `json:"messages"`
	Temperature    float64         `json:"temperature"`
	ResponseFormat *responseFormat `json:"response_format,omitempty"`
}

type completionResponse struct {
	Choices []struct {
		Message chatMessage `json:"message"`
	} `json:"choices"`
}

type embeddingRequest struct {
	Model string `json:"model"`
	Input string `json:"input"`
}

type embeddingResponse struct {
	Data []struct {
		Embedding []float32 `json:"embedding"`
	} `json:"data"`
}

// CreateEmbedding calls the embeddings endpoint through its circuit breaker.
func (c *OpenRouterClient) CreateEmbedding(ctx context.Context, input string) ([]float32, error) {
	result, err := c.embeddings.Execute(func() (interface{}, error) {
		var parsed embeddingResponse
		resp, err := c.http.R().
			SetContext(ctx).
			SetBody(embeddingRequest{Model: c.embeddingModel, Input: input}).
			SetResult(&parsed).
			Post(EmbeddingEndpoint)
		if err != nil {
			return nil, fmt.Errorf(ErrMsgEmbeddingRequest, err)
		}
		if resp.IsError() {
			return nil, fmt.Errorf(ErrMsgEmbeddingStatus, resp.StatusCode())
		}
		if len(parsed.Data) == 0 {
			return nil, errors.New(ErrMsgEmbeddingEmpty)
		}
		return parsed.Data[0].Embedding, nil
	})
	if err != nil {
		return nil, err
	}
	return result.([]float32), nil
}

// CreateCompletion calls the chat endpoint through its circuit breaker. The
// request pins temperature to zero and asks for a JSON object response so
// callers can parse the content deterministically.
func (c *OpenRouterClient) CreateCompletion(ctx context.Context, system, user string) (string, error) {
	result, err := c.completions.Execute(func() (interface{}, error) {
		var parsed completionResponse
		resp, err := c.http.R().
			SetContext(ctx).
			SetBody(completionRequest{
				Model: c.completionModel,
				Messages: []chatMessage{
					{Role: "system", Content: system},
					{Role: "user", Content: user},
				},
				Temperature:    CompletionTemp,
				ResponseFormat: &responseFormat{Type: "json_object"},
			}).
			SetResult(&parsed).
			Post(CompletionEndpoint)
		if err != nil {
			return nil, fmt.Errorf(ErrMsgCompletionRequest, err)
		}
		if resp.IsError() {
			return nil, fmt.Errorf(ErrMsgCompletionStatus, resp.StatusCode())
		}
		if len(parsed.Choices) == 0 {
			return nil, errors.New(ErrMsgCompletionEmpty)
		}
		return parsed.Choices[0].Message.Content, nil
	})
	if err != nil {
		return "", err
	}
	return result.(string), nil
}
