package ai

import (
	"context"
	"fmt"
	"strings"

	"github.com/google/generative-ai-go/genai"
	"google.golang.org/api/option"
)

// Generator produces caption and vibe text from an upstream model
type Generator interface {
	GenerateCaption(ctx context.Context, title string, tags []string) (string, error)
	GenerateVibe(ctx context.Context, title string, tags []string) (string, error)
}

// GeminiGenerator calls the Gemini API for caption and vibe generation
type GeminiGenerator struct {
	client *genai.Client
	model  *genai.GenerativeModel
}

// NewGeminiGenerator creates a generator backed by the given Gemini model
func NewGeminiGenerator(ctx context.Context, apiKey, modelName string) (*GeminiGenerator, error) {
	client, err := genai.NewClient(ctx, option.WithAPIKey(apiKey))
	if err != nil {
		return nil, fmt.Errorf("create gemini client: %w", err)
	}

	model := client.GenerativeModel(modelName)
	maxTokens := int32(64)
	temperature := float32(0.9)
	model.GenerationConfig.ResponseMIMEType = "text/plain"
	model.GenerationConfig.MaxOutputTokens = &maxTokens
	model.GenerationConfig.Temperature = &temperature

	return &GeminiGenerator{client: client, model: model}, nil
}

// Close releases the underlying API client
func (g *GeminiGenerator) Close() error {
	return g.client.Close()
}

// GenerateCaption produces a short caption for a meme
func (g *GeminiGenerator) GenerateCaption(ctx context.Context, title string, tags []string) (string, error) {
	prompt := fmt.Sprintf(
		`Generate a funny, short (max 10 words) cyberpunk-themed caption for a meme with the title %q and tags: %s. Make it witty and internet culture relevant.`,
		title, strings.Join(tags, ", "))
	return g.generate(ctx, prompt)
}

// GenerateVibe produces a 2-3 word vibe description for a meme
func (g *GeminiGenerator) GenerateVibe(ctx context.Context, title string, tags []string) (string, error) {
	prompt := fmt.Sprintf(
		`Based on a meme with title %q and tags: %s, generate a short 2-3 word cyberpunk-themed vibe description (like "Neon Crypto Chaos" or "Digital Wasteland Energy"). Be creative and capture the essence of internet meme culture with a cyberpunk twist.`,
		title, strings.Join(tags, ", "))
	return g.generate(ctx, prompt)
}

func (g *GeminiGenerator) generate(ctx context.Context, prompt string) (string, error) {
	resp, err := g.model.GenerateContent(ctx, genai.Text(prompt))
	if err != nil {
		return "", fmt.Errorf("gemini API error: %w", err)
	}

	if len(resp.Candidates) == 0 || resp.Candidates[0].Content == nil || len(resp.Candidates[0].Content.Parts) == 0 {
		return "", fmt.Errorf("gemini API error: empty response")
	}

	text, ok := resp.Candidates[0].Content.Parts[0].(genai.Text)
	if !ok {
		return "", fmt.Errorf("gemini API error: unexpected response part")
	}
	return strings.TrimSpace(string(text)), nil
}
