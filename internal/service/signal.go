package service

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"sync/atomic"
	"time"

	"github.com/google/uuid"

	"github.com/0xzahra/gmn/internal/domain"
	"github.com/0xzahra/gmn/internal/logger"
	"github.com/0xzahra/gmn/internal/metrics"
	"github.com/0xzahra/gmn/internal/repository"
)

var (
	// ErrEmptyInput means the request carried neither an image nor tags.
	ErrEmptyInput = errors.New("nothing to analyze: provide an image or at least one tag")

	// ErrGenerationInFlight means a generation run is already active.
	ErrGenerationInFlight = errors.New("a generation is already in flight")

	// ErrCaptionNotFound means the caption ID is not in the current result set.
	ErrCaptionNotFound = errors.New("caption not found in current signal")

	// ErrNoCurrentSignal means no generation has completed yet.
	ErrNoCurrentSignal = errors.New("no current signal")
)

// GenerateInput carries one generation request.
type GenerateInput struct {
	Mode      domain.SignalMode
	Tags      []string // shortcut tag IDs
	ImageData string   // base64 data URL, optional
}

// SignalService orchestrates the generation pipeline: it guards
// against overlapping runs, races the caption client against a hard
// deadline, enriches the result, snapshots it into history, and owns
// the current result set for feedback and artwork.
type SignalService struct {
	client  *CaptionClient
	history *repository.HistoryRepository
	seeder  Seeder
	timeout time.Duration

	inFlight atomic.Bool

	mu      sync.RWMutex
	current *domain.SignalResult
	curMode domain.SignalMode
	curTags []string // resolved labels of the current run
}

// NewSignalService creates the orchestrator.
// Parameters:
//   - client: fail-soft caption client.
//   - history: history repository for run snapshots.
//   - seeder: engagement counter seeder.
//   - timeout: hard deadline for one generation run.
// Returns:
//   - *SignalService: orchestrator instance.
func NewSignalService(client *CaptionClient, history *repository.HistoryRepository, seeder Seeder, timeout time.Duration) *SignalService {
	if timeout <= 0 {
		timeout = 60 * time.Second
	}
	return &SignalService{
		client:  client,
		history: history,
		seeder:  seeder,
		timeout: timeout,
	}
}

// Generate runs one signal generation end to end. Degraded outcomes
// (fallback, timeout) are results, not errors; errors are reserved for
// rejected requests.
// Parameters:
//   - ctx: request context.
//   - in: generation input.
// Returns:
//   - *domain.SignalResult: the new current result set.
//   - error: ErrEmptyInput or ErrGenerationInFlight.
func (s *SignalService) Generate(ctx context.Context, in GenerateInput) (*domain.SignalResult, error) {
	if in.ImageData == "" && len(in.Tags) == 0 {
		return nil, ErrEmptyInput
	}
	if !s.inFlight.CompareAndSwap(false, true) {
		return nil, ErrGenerationInFlight
	}
	defer s.inFlight.Store(false)

	ctx = logger.SetSignalID(ctx, uuid.NewString())
	ctx = logger.WithField(ctx, logger.FieldMode, string(in.Mode))
	labels := domain.ResolveLabels(in.Tags)
	start := time.Now()

	genCtx, cancel := context.WithTimeout(ctx, s.timeout)
	defer cancel()

	result, fromFallback, err := s.client.RequestCaptions(genCtx, CaptionRequest{
		ImageData: in.ImageData,
		Mode:      in.Mode,
		TagLabels: labels,
	})
	if err != nil {
		// Deadline or cancellation. The run yields the error context
		// with no captions and leaves history untouched.
		logger.CtxWarn(ctx, "signal generation timed out: %v", err)
		result = &domain.SignalResult{Context: domain.ContextTimeout, Captions: []domain.GeneratedCaption{}}
		s.setCurrent(result, in.Mode, labels)
		metrics.SignalGenerations.WithLabelValues(metrics.OutcomeTimeout).Inc()
		metrics.GenerationDuration.Observe(time.Since(start).Seconds())
		return result, nil
	}

	s.enrich(result)

	item := domain.HistoryItem{
		ID:        domain.NewTimeID(),
		Timestamp: time.Now().UnixMilli(),
		Mode:      in.Mode,
		Context:   result.Context,
		Captions:  append([]domain.GeneratedCaption(nil), result.Captions...),
		ImageMeta: InspectImage(in.ImageData),
	}
	// Oversized payloads are dropped from the snapshot; the run itself
	// still succeeds.
	if in.ImageData != "" && len(in.ImageData) < domain.MaxHistoryImageLen {
		item.ImageData = in.ImageData
	}
	if err := s.history.Append(ctx, item); err != nil {
		logger.CtxError(ctx, "history append failed: %v", err)
	}

	s.setCurrent(result, in.Mode, labels)

	outcome := metrics.OutcomeSuccess
	if fromFallback {
		outcome = metrics.OutcomeFallback
	}
	metrics.SignalGenerations.WithLabelValues(outcome).Inc()
	metrics.GenerationDuration.Observe(time.Since(start).Seconds())
	logger.With(logger.Fields{
		logger.FieldDurationMs: time.Since(start).Milliseconds(),
		logger.FieldCount:      len(result.Captions),
		logger.FieldStatus:     outcome,
	}).Info(ctx, "signal generated")

	return s.snapshotCurrent(), nil
}

// enrich assigns generated IDs and seeds engagement counters. Fallback
// captions keep their fixed IDs.
func (s *SignalService) enrich(result *domain.SignalResult) {
	now := time.Now().UnixMilli()
	for i := range result.Captions {
		c := &result.Captions[i]
		if c.ID == "" {
			c.ID = fmt.Sprintf("gen-%d-%d", now, i)
		}
		c.LikeCount, c.DislikeCount = s.seeder.Seed()
	}
}

func (s *SignalService) setCurrent(result *domain.SignalResult, mode domain.SignalMode, labels []string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.current = result
	s.curMode = mode
	s.curTags = labels
}

// snapshotCurrent returns a deep copy of the current result set.
func (s *SignalService) snapshotCurrent() *domain.SignalResult {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.current == nil {
		return nil
	}
	out := &domain.SignalResult{
		Context:  s.current.Context,
		Captions: append([]domain.GeneratedCaption(nil), s.current.Captions...),
	}
	return out
}

// Current returns the current result set.
// Parameters: none.
// Returns:
//   - *domain.SignalResult: copy of the live captions and context.
//   - error: ErrNoCurrentSignal before the first completed run.
func (s *SignalService) Current() (*domain.SignalResult, error) {
	out := s.snapshotCurrent()
	if out == nil {
		return nil, ErrNoCurrentSignal
	}
	return out, nil
}

// Like toggles the like state of a caption in the current result set.
// Liking clears a dislike flag but never rolls back the dislike
// counter; only the like counter moves with the toggle.
// Parameters:
//   - id: caption ID.
// Returns:
//   - *domain.GeneratedCaption: updated caption copy.
//   - error: ErrCaptionNotFound for unknown IDs.
func (s *SignalService) Like(id string) (*domain.GeneratedCaption, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	c := s.findCaption(id)
	if c == nil {
		return nil, ErrCaptionNotFound
	}
	c.Liked = !c.Liked
	c.Disliked = false
	if c.Liked {
		c.LikeCount++
	} else {
		c.LikeCount--
	}
	out := *c
	return &out, nil
}

// Dislike toggles the dislike state of a caption in the current
// result set, mirroring Like.
// Parameters:
//   - id: caption ID.
// Returns:
//   - *domain.GeneratedCaption: updated caption copy.
//   - error: ErrCaptionNotFound for unknown IDs.
func (s *SignalService) Dislike(id string) (*domain.GeneratedCaption, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	c := s.findCaption(id)
	if c == nil {
		return nil, ErrCaptionNotFound
	}
	c.Disliked = !c.Disliked
	c.Liked = false
	if c.Disliked {
		c.DislikeCount++
	} else {
		c.DislikeCount--
	}
	out := *c
	return &out, nil
}

// GenerateArt renders artwork for one caption of the current result
// set. The per-caption flag makes repeat requests no-ops while art is
// in flight or already attached; failures revert silently.
// Parameters:
//   - ctx: request context.
//   - id: caption ID.
//   - style: art direction.
// Returns:
//   - *domain.GeneratedCaption: caption copy after the attempt.
//   - error: ErrCaptionNotFound for unknown IDs.
func (s *SignalService) GenerateArt(ctx context.Context, id string, style domain.ImageStyle) (*domain.GeneratedCaption, error) {
	s.mu.Lock()
	c := s.findCaption(id)
	if c == nil {
		s.mu.Unlock()
		return nil, ErrCaptionNotFound
	}
	if c.IsGeneratingImage || c.ImageURL != "" {
		out := *c
		s.mu.Unlock()
		return &out, nil
	}
	c.IsGeneratingImage = true
	req := ArtRequest{
		CaptionText: c.Text,
		TagLabels:   append([]string(nil), s.curTags...),
		Mode:        s.curMode,
		Style:       style,
	}
	s.mu.Unlock()

	ctx = logger.SetCaptionID(ctx, id)
	url := s.client.RequestArt(ctx, req)

	s.mu.Lock()
	defer s.mu.Unlock()
	c = s.findCaption(id)
	if c == nil {
		// A newer generation replaced the result set mid-flight; the
		// artwork has nowhere to land.
		metrics.ArtGenerations.WithLabelValues(metrics.OutcomeFailure).Inc()
		return nil, ErrCaptionNotFound
	}
	c.IsGeneratingImage = false
	if url != "" {
		c.ImageURL = url
		metrics.ArtGenerations.WithLabelValues(metrics.OutcomeSuccess).Inc()
	} else {
		metrics.ArtGenerations.WithLabelValues(metrics.OutcomeFailure).Inc()
	}
	out := *c
	return &out, nil
}

// ShareLinksFor builds share intents for a caption in the current
// result set.
// Parameters:
//   - id: caption ID.
// Returns:
//   - ShareLinks: compose URLs.
//   - error: ErrCaptionNotFound for unknown IDs.
func (s *SignalService) ShareLinksFor(id string) (ShareLinks, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	c := s.findCaption(id)
	if c == nil {
		return ShareLinks{}, ErrCaptionNotFound
	}
	return BuildShareLinks(c.Text), nil
}

// findCaption locates a caption in the current result set. Caller
// holds the lock.
func (s *SignalService) findCaption(id string) *domain.GeneratedCaption {
	if s.current == nil {
		return nil
	}
	for i := range s.current.Captions {
		if s.current.Captions[i].ID == id {
			return &s.current.Captions[i]
		}
	}
	return nil
}
