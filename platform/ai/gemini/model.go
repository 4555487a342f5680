// Package gemini provides a single-turn completion client backed by the
// Gemini API.
package gemini

import (
	"context"
	"fmt"

	"google.golang.org/genai"
)

// Config for the Gemini API.
type Config struct {
	APIKey string
	Model  string
}

// Model generates completions through the Gemini API.
type Model struct {
	config Config
}

func NewModel(cfg Config) *Model {
	if cfg.Model == "" {
		cfg.Model = "gemini-2.0-flash"
	}
	return &Model{config: cfg}
}

func (m *Model) Name() string {
	return m.config.Model
}

// Complete sends a system and user message pair and returns the model's reply.
func (m *Model) Complete(ctx context.Context, system, user string) (string, error) {
	client, err := genai.NewClient(ctx, &genai.ClientConfig{
		APIKey:  m.config.APIKey,
		Backend: genai.BackendGeminiAPI,
	})
	if err != nil {
		return "", fmt.Errorf("failed to create gemini client: %v", err)
	}

	genConfig := &genai.GenerateContentConfig{}
	if system != "" {
		genConfig.SystemInstruction = genai.NewContentFromText(system, genai.RoleUser)
	}

	resp, err := client.Models.GenerateContent(ctx, m.config.Model, genai.Text(user), genConfig)
	if err != nil {
		return "", fmt.Errorf("gemini generate content: %v", err)
	}

	text := resp.Text()
	if text == "" {
		return "", fmt.Errorf("gemini api error: empty response")
	}

	return text, nil
}
