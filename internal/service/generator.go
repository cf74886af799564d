package service

import (
	"context"
	"fmt"

	"github.com/0xzahra/gmn/internal/config"
	"github.com/0xzahra/gmn/internal/domain"
)

// CaptionRequest carries the inputs of one caption generation call.
// ImageData is a base64 data URL and may be empty when the user only
// selected tags.
type CaptionRequest struct {
	ImageData string
	Mode      domain.SignalMode
	TagLabels []string
}

// ArtRequest carries the inputs of one artwork generation call.
type ArtRequest struct {
	CaptionText string
	TagLabels   []string
	Mode        domain.SignalMode
	Style       domain.ImageStyle
}

// Generator is a caption/art provider. Implementations talk to one
// upstream model API and normalize its output.
type Generator interface {
	// Name returns the provider identifier for logging and metrics.
	Name() string
	// GenerateCaptions produces the detected context and caption
	// variants for a request. Any upstream or decode failure is an error;
	// callers decide whether to fall back.
	GenerateCaptions(ctx context.Context, req CaptionRequest) (*domain.SignalResult, error)
	// GenerateArt produces a base64 image data URL for a caption, or
	// empty string when the model returned no image.
	GenerateArt(ctx context.Context, req ArtRequest) (string, error)
}

// NewGenerator builds the configured provider.
// Parameters:
//   - cfg: generation configuration with the provider selector.
// Returns:
//   - Generator: provider instance.
//   - error: non-nil for unknown providers.
func NewGenerator(cfg *config.GenerationConfig) (Generator, error) {
	switch cfg.Provider {
	case "gemini":
		return NewGeminiGenerator(&cfg.Gemini), nil
	case "openai":
		return NewOpenAIGenerator(&cfg.OpenAI), nil
	default:
		return nil, fmt.Errorf("unknown generation provider %q", cfg.Provider)
	}
}
