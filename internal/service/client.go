package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/0xzahra/gmn/internal/domain"
	"github.com/0xzahra/gmn/internal/logger"
)

// CaptionClient wraps a Generator with the fail-soft contract: any
// provider failure degrades to the deterministic fallback set, so the
// pipeline always has captions to show. Only context cancellation and
// deadline expiry propagate as errors, which leaves timeout handling
// to the orchestrator.
type CaptionClient struct {
	gen Generator
}

// NewCaptionClient creates a CaptionClient over gen.
// Parameters:
//   - gen: provider to wrap.
// Returns:
//   - *CaptionClient: fail-soft client.
func NewCaptionClient(gen Generator) *CaptionClient {
	return &CaptionClient{gen: gen}
}

// RequestCaptions runs a caption generation call.
// Parameters:
//   - ctx: context carrying the generation deadline.
//   - req: caption request.
// Returns:
//   - *domain.SignalResult: provider result or the fallback set.
//   - bool: true when the result is the fallback set.
//   - error: only ctx cancellation/deadline errors.
func (c *CaptionClient) RequestCaptions(ctx context.Context, req CaptionRequest) (*domain.SignalResult, bool, error) {
	result, err := c.gen.GenerateCaptions(ctx, req)
	if err != nil {
		if errors.Is(err, context.DeadlineExceeded) || errors.Is(err, context.Canceled) {
			return nil, false, err
		}
		logger.CtxError(ctx, "caption generation failed, serving fallback: provider=%s err=%v", c.gen.Name(), err)
		return FallbackResult(req.Mode), true, nil
	}
	return result, false, nil
}

// RequestArt runs an artwork generation call. Failures are silent:
// the caller reverts the caption to its unillustrated state.
// Parameters:
//   - ctx: context for cancellation and deadlines.
//   - req: art request.
// Returns:
//   - string: image data URL, or empty on failure/no image.
func (c *CaptionClient) RequestArt(ctx context.Context, req ArtRequest) string {
	url, err := c.gen.GenerateArt(ctx, req)
	if err != nil {
		logger.CtxError(ctx, "art generation failed: provider=%s err=%v", c.gen.Name(), err)
		return ""
	}
	return url
}

// FallbackResult is the deterministic degraded output: exactly six
// captions, one per house mood, under the interrupted-signal context.
// Parameters:
//   - mode: signal mode interpolated into each caption.
// Returns:
//   - *domain.SignalResult: the fallback set.
func FallbackResult(mode domain.SignalMode) *domain.SignalResult {
	return &domain.SignalResult{
		Context: domain.ContextFallback,
		Captions: []domain.GeneratedCaption{
			{ID: "err1", Text: fmt.Sprintf("%s. Network congested. We build regardless.", mode), Mood: "Stoic"},
			{ID: "err2", Text: fmt.Sprintf("Manual %s override initiated. Stay based.", mode), Mood: "Manual"},
			{ID: "err3", Text: fmt.Sprintf("Connection unstable. Conviction remains high. %s.", mode), Mood: "Glitch"},
			{ID: "err4", Text: fmt.Sprintf("System reboot required. Still early. %s.", mode), Mood: "Tech"},
			{ID: "err5", Text: fmt.Sprintf("Signals fading, but bags are heavy. %s.", mode), Mood: "Degen"},
			{ID: "err6", Text: fmt.Sprintf("Offline mode active. Touch grass. %s.", mode), Mood: "Zen"},
		},
	}
}
