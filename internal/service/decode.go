package service

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/0xzahra/gmn/internal/domain"
)

// captionPayload is the one schema both providers must produce.
type captionPayload struct {
	DetectedContext string `json:"detected_context"`
	Captions        []struct {
		Text string `json:"text"`
		Mood string `json:"mood"`
	} `json:"captions"`
}

// stripFences removes markdown code fences models sometimes wrap
// around JSON payloads.
// Parameters:
//   - s: raw model output.
// Returns:
//   - string: trimmed payload without ```json / ``` markers.
func stripFences(s string) string {
	s = strings.ReplaceAll(s, "```json", "")
	s = strings.ReplaceAll(s, "```", "")
	return strings.TrimSpace(s)
}

// decodeCaptionPayload parses model output into a SignalResult. A
// payload that does not match the schema, or that carries no captions,
// is an error.
// Parameters:
//   - raw: model output, possibly fence-wrapped.
// Returns:
//   - *domain.SignalResult: context plus bare captions (no IDs yet).
//   - error: non-nil on parse or shape failure.
func decodeCaptionPayload(raw string) (*domain.SignalResult, error) {
	var payload captionPayload
	if err := json.Unmarshal([]byte(stripFences(raw)), &payload); err != nil {
		return nil, fmt.Errorf("decode caption payload: %w", err)
	}
	if len(payload.Captions) == 0 {
		return nil, fmt.Errorf("caption payload carried no captions")
	}

	result := &domain.SignalResult{
		Context:  payload.DetectedContext,
		Captions: make([]domain.GeneratedCaption, 0, len(payload.Captions)),
	}
	if result.Context == "" {
		result.Context = "Visual Signal"
	}
	for _, c := range payload.Captions {
		if c.Text == "" {
			return nil, fmt.Errorf("caption payload carried an empty caption text")
		}
		result.Captions = append(result.Captions, domain.GeneratedCaption{
			Text: c.Text,
			Mood: c.Mood,
		})
	}
	return result, nil
}

// splitDataURL separates a data URL into MIME type and base64 body.
// Raw base64 without a data: prefix passes through with the default
// image/jpeg MIME type.
// Parameters:
//   - s: data URL or bare base64 string.
// Returns:
//   - string: MIME type.
//   - string: base64 payload.
func splitDataURL(s string) (string, string) {
	if !strings.HasPrefix(s, "data:") {
		return "image/jpeg", s
	}
	rest := strings.TrimPrefix(s, "data:")
	idx := strings.Index(rest, ",")
	if idx < 0 {
		return "image/jpeg", s
	}
	meta := rest[:idx]
	mime := strings.TrimSuffix(meta, ";base64")
	if mime == "" {
		mime = "image/jpeg"
	}
	return mime, rest[idx+1:]
}
