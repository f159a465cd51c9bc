// Package gemini implements the text-generation collaborator that turns a
// house description into a structured floor-plan payload.
//
// The client is a thin wrapper around the Google GenAI SDK. It owns the
// architectural prompt and the generation settings; parsing and validating
// the returned payload is the plan package's job.
package gemini

import (
	"context"
	"fmt"

	"google.golang.org/genai"

	"github.com/matzehuels/planforge/pkg/errors"
)

// DefaultModel is the text-generation model used when none is configured.
const DefaultModel = "gemini-2.5-flash"

// Client wraps the Google GenAI client for floor-plan generation.
type Client struct {
	client *genai.Client
	model  string
}

// NewClient creates a client authenticated with an API key. The key is
// required: its absence is a typed UNAUTHORIZED failure raised at startup
// rather than a crash mid-request.
func NewClient(ctx context.Context, apiKey, model string) (*Client, error) {
	if apiKey == "" {
		return nil, errors.New(errors.ErrCodeUnauthorized, "missing API key (set GEMINI_API_KEY)")
	}
	if model == "" {
		model = DefaultModel
	}
	if err := errors.ValidateModelName(model); err != nil {
		return nil, err
	}

	client, err := genai.NewClient(ctx, &genai.ClientConfig{
		APIKey:  apiKey,
		Backend: genai.BackendGeminiAPI,
	})
	if err != nil {
		return nil, fmt.Errorf("create genai client: %w", err)
	}

	return &Client{client: client, model: model}, nil
}

// Model returns the configured model name.
func (c *Client) Model() string {
	return c.model
}

// GeneratePlan asks the model for a floor-plan payload and returns the raw
// response text. The text is expected to contain a JSON object, possibly
// wrapped in a Markdown code fence; the caller strips and parses it.
//
// The call blocks until the model responds or ctx is done. No retry or
// timeout policy lives here; the caller owns the context.
func (c *Client) GeneratePlan(ctx context.Context, description string) (string, error) {
	if err := errors.ValidateDescription(description); err != nil {
		return "", err
	}

	resp, err := c.client.Models.GenerateContent(ctx, c.model,
		[]*genai.Content{{
			Role:  "user",
			Parts: []*genai.Part{{Text: BuildPrompt(description)}},
		}},
		&genai.GenerateContentConfig{
			Temperature:      genai.Ptr(float32(0.2)),
			TopP:             genai.Ptr(float32(1)),
			ResponseMIMEType: "application/json",
		},
	)
	if err != nil {
		return "", errors.Wrap(errors.ErrCodeGeneration, err, "gemini generate")
	}

	text := resp.Text()
	if text == "" {
		return "", errors.New(errors.ErrCodeGeneration, "empty gemini response")
	}
	return text, nil
}

// Close releases resources held by the client.
func (c *Client) Close() error {
	return nil
}
