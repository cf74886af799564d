package service

import (
	"context"
	"fmt"
	"time"

	"github.com/go-resty/resty/v2"

	"github.com/0xzahra/gmn/internal/config"
	"github.com/0xzahra/gmn/internal/domain"
	"github.com/0xzahra/gmn/internal/prompts"
)

// OpenAIGenerator talks to an OpenAI-compatible API.
type OpenAIGenerator struct {
	client       *resty.Client
	baseURL      string
	captionModel string
	imageModel   string
}

// NewOpenAIGenerator creates an OpenAI-backed Generator.
// Parameters:
//   - cfg: OpenAI configuration with API key, base URL, and models.
// Returns:
//   - *OpenAIGenerator: initialized provider.
func NewOpenAIGenerator(cfg *config.OpenAIConfig) *OpenAIGenerator {
	client := resty.New()
	client.SetHeader("Authorization", "Bearer "+cfg.APIKey)
	client.SetHeader("Content-Type", "application/json")
	client.SetTimeout(90 * time.Second)

	baseURL := cfg.BaseURL
	if baseURL == "" {
		baseURL = "https://api.openai.com/v1"
	}

	return &OpenAIGenerator{
		client:       client,
		baseURL:      baseURL,
		captionModel: cfg.CaptionModel,
		imageModel:   cfg.ImageModel,
	}
}

// Name returns the provider identifier.
func (g *OpenAIGenerator) Name() string {
	return "openai"
}

// OpenAI-compatible Chat Completion API request/response structures
type openAIRequest struct {
	Model          string                `json:"model"`
	Messages       []openAIMessage       `json:"messages"`
	ResponseFormat *openAIResponseFormat `json:"response_format,omitempty"`
}

type openAIResponseFormat struct {
	Type string `json:"type"`
}

type openAIMessage struct {
	Role    string      `json:"role"`
	Content interface{} `json:"content"` // string for system, []interface{} for user with images
}

type openAITextContent struct {
	Type string `json:"type"`
	Text string `json:"text"`
}

type openAIImageContent struct {
	Type     string         `json:"type"`
	ImageURL openAIImageURL `json:"image_url"`
}

type openAIImageURL struct {
	URL string `json:"url"`
}

type openAIResponse struct {
	Choices []struct {
		Message struct {
			Content string `json:"content"`
		} `json:"message"`
	} `json:"choices"`
	Error *struct {
		Message string `json:"message"`
		Type    string `json:"type"`
	} `json:"error,omitempty"`
}

type openAIImageRequest struct {
	Model          string `json:"model"`
	Prompt         string `json:"prompt"`
	N              int    `json:"n"`
	Size           string `json:"size,omitempty"`
	ResponseFormat string `json:"response_format,omitempty"`
}

type openAIImageResponse struct {
	Data []struct {
		B64JSON string `json:"b64_json"`
	} `json:"data"`
	Error *struct {
		Message string `json:"message"`
	} `json:"error,omitempty"`
}

// GenerateCaptions produces caption variants through chat completions.
// Parameters:
//   - ctx: context carrying the generation deadline.
//   - req: caption request.
// Returns:
//   - *domain.SignalResult: decoded context and captions.
//   - error: non-nil on transport, HTTP, or payload failure.
func (g *OpenAIGenerator) GenerateCaptions(ctx context.Context, req CaptionRequest) (*domain.SignalResult, error) {
	prompt := prompts.CaptionPrompt(string(req.Mode), req.TagLabels)

	userContent := []interface{}{
		openAITextContent{Type: "text", Text: prompt},
	}
	if req.ImageData != "" {
		mime, data := splitDataURL(req.ImageData)
		userContent = append(userContent, openAIImageContent{
			Type:     "image_url",
			ImageURL: openAIImageURL{URL: fmt.Sprintf("data:%s;base64,%s", mime, data)},
		})
	}

	body := openAIRequest{
		Model: g.captionModel,
		Messages: []openAIMessage{
			{Role: "system", Content: prompts.CaptionSystemRole},
			{Role: "user", Content: userContent},
		},
		ResponseFormat: &openAIResponseFormat{Type: "json_object"},
	}

	var result openAIResponse
	resp, err := g.client.R().
		SetContext(ctx).
		SetBody(body).
		SetResult(&result).
		Post(g.baseURL + "/chat/completions")
	if err != nil {
		return nil, fmt.Errorf("openai request failed: %w", err)
	}
	if resp.IsError() {
		return nil, fmt.Errorf("openai API error: status=%d body=%s", resp.StatusCode(), resp.String())
	}
	if result.Error != nil {
		return nil, fmt.Errorf("openai API error: %s", result.Error.Message)
	}
	if len(result.Choices) == 0 {
		return nil, fmt.Errorf("openai returned no choices")
	}
	return decodeCaptionPayload(result.Choices[0].Message.Content)
}

// GenerateArt renders caption artwork through the images endpoint.
// Parameters:
//   - ctx: context for cancellation and deadlines.
//   - req: art request.
// Returns:
//   - string: PNG data URL, or empty when no image came back.
//   - error: non-nil on transport or HTTP failure.
func (g *OpenAIGenerator) GenerateArt(ctx context.Context, req ArtRequest) (string, error) {
	stylePrompt := prompts.MemeStylePrompt
	if req.Style == domain.StyleAlt {
		stylePrompt = prompts.AltStylePrompt
	}
	prompt := prompts.ArtPrompt(stylePrompt, req.CaptionText, req.TagLabels, string(req.Mode))

	body := openAIImageRequest{
		Model:          g.imageModel,
		Prompt:         prompt,
		N:              1,
		Size:           "1536x1024",
		ResponseFormat: "b64_json",
	}

	var result openAIImageResponse
	resp, err := g.client.R().
		SetContext(ctx).
		SetBody(body).
		SetResult(&result).
		Post(g.baseURL + "/images/generations")
	if err != nil {
		return "", fmt.Errorf("openai image request failed: %w", err)
	}
	if resp.IsError() {
		return "", fmt.Errorf("openai image API error: status=%d body=%s", resp.StatusCode(), resp.String())
	}
	if result.Error != nil {
		return "", fmt.Errorf("openai image API error: %s", result.Error.Message)
	}
	if len(result.Data) == 0 || result.Data[0].B64JSON == "" {
		return "", nil
	}
	return "data:image/png;base64," + result.Data[0].B64JSON, nil
}
