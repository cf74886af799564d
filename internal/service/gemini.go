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

// GeminiGenerator talks to the Gemini REST API directly.
type GeminiGenerator struct {
	client       *resty.Client
	baseURL      string
	apiKey       string
	captionModel string
	imageModel   string
}

// NewGeminiGenerator creates a Gemini-backed Generator.
// Parameters:
//   - cfg: Gemini configuration with API key, base URL, and models.
// Returns:
//   - *GeminiGenerator: initialized provider.
func NewGeminiGenerator(cfg *config.GeminiConfig) *GeminiGenerator {
	client := resty.New()
	client.SetHeader("Content-Type", "application/json")
	client.SetTimeout(90 * time.Second)

	baseURL := cfg.BaseURL
	if baseURL == "" {
		baseURL = "https://generativelanguage.googleapis.com/v1beta"
	}

	return &GeminiGenerator{
		client:       client,
		baseURL:      baseURL,
		apiKey:       cfg.APIKey,
		captionModel: cfg.CaptionModel,
		imageModel:   cfg.ImageModel,
	}
}

// Name returns the provider identifier.
func (g *GeminiGenerator) Name() string {
	return "gemini"
}

// Gemini generateContent request/response structures.
type geminiRequest struct {
	Contents         []geminiContent         `json:"contents"`
	GenerationConfig *geminiGenerationConfig `json:"generationConfig,omitempty"`
}

type geminiContent struct {
	Parts []geminiPart `json:"parts"`
}

type geminiPart struct {
	Text       string            `json:"text,omitempty"`
	InlineData *geminiInlineData `json:"inlineData,omitempty"`
}

type geminiInlineData struct {
	MimeType string `json:"mimeType"`
	Data     string `json:"data"`
}

type geminiGenerationConfig struct {
	ResponseMimeType string             `json:"responseMimeType,omitempty"`
	ResponseSchema   interface{}        `json:"responseSchema,omitempty"`
	ImageConfig      *geminiImageConfig `json:"imageConfig,omitempty"`
}

type geminiImageConfig struct {
	AspectRatio string `json:"aspectRatio"`
}

type geminiResponse struct {
	Candidates []struct {
		Content struct {
			Parts []geminiPart `json:"parts"`
		} `json:"content"`
	} `json:"candidates"`
	Error *struct {
		Code    int    `json:"code"`
		Message string `json:"message"`
		Status  string `json:"status"`
	} `json:"error,omitempty"`
}

// captionSchema constrains the caption response shape server-side.
var captionSchema = map[string]interface{}{
	"type": "OBJECT",
	"properties": map[string]interface{}{
		"detected_context": map[string]interface{}{"type": "STRING"},
		"captions": map[string]interface{}{
			"type": "ARRAY",
			"items": map[string]interface{}{
				"type": "OBJECT",
				"properties": map[string]interface{}{
					"text": map[string]interface{}{"type": "STRING"},
					"mood": map[string]interface{}{"type": "STRING"},
				},
			},
		},
	},
}

// GenerateCaptions analyzes the image (when present) and produces the
// caption variants.
// Parameters:
//   - ctx: context carrying the generation deadline.
//   - req: caption request.
// Returns:
//   - *domain.SignalResult: decoded context and captions.
//   - error: non-nil on transport, HTTP, or payload failure.
func (g *GeminiGenerator) GenerateCaptions(ctx context.Context, req CaptionRequest) (*domain.SignalResult, error) {
	prompt := prompts.CaptionPrompt(string(req.Mode), req.TagLabels)

	var parts []geminiPart
	if req.ImageData != "" {
		mime, data := splitDataURL(req.ImageData)
		parts = append(parts, geminiPart{InlineData: &geminiInlineData{MimeType: mime, Data: data}})
	}
	parts = append(parts, geminiPart{Text: prompt})

	body := geminiRequest{
		Contents: []geminiContent{{Parts: parts}},
		GenerationConfig: &geminiGenerationConfig{
			ResponseMimeType: "application/json",
			ResponseSchema:   captionSchema,
		},
	}

	raw, err := g.generateContent(ctx, g.captionModel, &body)
	if err != nil {
		return nil, err
	}

	text := ""
	for _, p := range raw {
		if p.Text != "" {
			text = p.Text
			break
		}
	}
	if text == "" {
		return nil, fmt.Errorf("gemini returned no text part")
	}
	return decodeCaptionPayload(text)
}

// GenerateArt renders artwork for a caption with the image model.
// Parameters:
//   - ctx: context for cancellation and deadlines.
//   - req: art request.
// Returns:
//   - string: PNG data URL, or empty when no image part came back.
//   - error: non-nil on transport or HTTP failure.
func (g *GeminiGenerator) GenerateArt(ctx context.Context, req ArtRequest) (string, error) {
	stylePrompt := prompts.MemeStylePrompt
	if req.Style == domain.StyleAlt {
		stylePrompt = prompts.AltStylePrompt
	}
	prompt := prompts.ArtPrompt(stylePrompt, req.CaptionText, req.TagLabels, string(req.Mode))

	body := geminiRequest{
		Contents: []geminiContent{{Parts: []geminiPart{{Text: prompt}}}},
		GenerationConfig: &geminiGenerationConfig{
			ImageConfig: &geminiImageConfig{AspectRatio: "16:9"},
		},
	}

	parts, err := g.generateContent(ctx, g.imageModel, &body)
	if err != nil {
		return "", err
	}
	for _, p := range parts {
		if p.InlineData != nil && p.InlineData.Data != "" {
			return "data:image/png;base64," + p.InlineData.Data, nil
		}
	}
	return "", nil
}

// generateContent posts one generateContent call and returns the first
// candidate's parts.
func (g *GeminiGenerator) generateContent(ctx context.Context, model string, body *geminiRequest) ([]geminiPart, error) {
	endpoint := fmt.Sprintf("%s/models/%s:generateContent", g.baseURL, model)

	var result geminiResponse
	resp, err := g.client.R().
		SetContext(ctx).
		SetQueryParam("key", g.apiKey).
		SetBody(body).
		SetResult(&result).
		Post(endpoint)
	if err != nil {
		return nil, fmt.Errorf("gemini request failed: %w", err)
	}
	if resp.IsError() {
		return nil, fmt.Errorf("gemini API error: status=%d body=%s", resp.StatusCode(), resp.String())
	}
	if result.Error != nil {
		return nil, fmt.Errorf("gemini API error: %s (%s)", result.Error.Message, result.Error.Status)
	}
	if len(result.Candidates) == 0 {
		return nil, fmt.Errorf("gemini returned no candidates")
	}
	return result.Candidates[0].Content.Parts, nil
}
