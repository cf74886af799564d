package service

import (
	"context"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/0xzahra/gmn/internal/domain"
	"github.com/0xzahra/gmn/internal/repository"
)

// stubGenerator is a scriptable Generator for orchestrator tests.
type stubGenerator struct {
	mu         sync.Mutex
	result     *domain.SignalResult
	captionErr error
	artURL     string
	artErr     error

	// block, when set, makes GenerateCaptions wait until the channel is
	// closed or the context ends. started is closed on entry.
	block   chan struct{}
	started chan struct{}
}

func (s *stubGenerator) Name() string { return "stub" }

func (s *stubGenerator) GenerateCaptions(ctx context.Context, req CaptionRequest) (*domain.SignalResult, error) {
	s.mu.Lock()
	started := s.started
	block := s.block
	s.started = nil
	s.mu.Unlock()
	if started != nil {
		close(started)
	}
	if block != nil {
		select {
		case <-block:
		case <-ctx.Done():
			return nil, ctx.Err()
		}
	}
	if s.captionErr != nil {
		return nil, s.captionErr
	}
	// Return a copy so the orchestrator can mutate freely
	out := &domain.SignalResult{
		Context:  s.result.Context,
		Captions: append([]domain.GeneratedCaption(nil), s.result.Captions...),
	}
	return out, nil
}

func (s *stubGenerator) GenerateArt(ctx context.Context, req ArtRequest) (string, error) {
	return s.artURL, s.artErr
}

func okGenerator() *stubGenerator {
	return &stubGenerator{
		result: &domain.SignalResult{
			Context: "Sunrise over charts",
			Captions: []domain.GeneratedCaption{
				{Text: "gm to the builders", Mood: "Stoic"},
				{Text: "ship before sunrise", Mood: "Tech"},
			},
		},
	}
}

func newTestService(t *testing.T, gen Generator, seeder Seeder, timeout time.Duration) (*SignalService, *repository.HistoryRepository) {
	t.Helper()
	store := repository.NewMemoryStore()
	history := repository.NewHistoryRepository(store)
	require.NoError(t, history.Load(context.Background()))
	svc := NewSignalService(NewCaptionClient(gen), history, seeder, timeout)
	return svc, history
}

func TestGenerateSuccess(t *testing.T) {
	svc, history := newTestService(t, okGenerator(), RandomSeeder{}, time.Second)

	result, err := svc.Generate(context.Background(), GenerateInput{
		Mode: domain.ModeGM,
		Tags: []string{"bull", "gym"},
	})
	require.NoError(t, err)
	assert.Equal(t, "Sunrise over charts", result.Context)
	require.Len(t, result.Captions, 2)

	for i, c := range result.Captions {
		assert.True(t, strings.HasPrefix(c.ID, "gen-"), "caption %d id %q", i, c.ID)
		assert.GreaterOrEqual(t, c.LikeCount, 5)
		assert.Less(t, c.LikeCount, 105)
		assert.GreaterOrEqual(t, c.DislikeCount, 0)
		assert.Less(t, c.DislikeCount, 10)
	}

	items := history.List(context.Background())
	require.Len(t, items, 1)
	assert.Equal(t, domain.ModeGM, items[0].Mode)
	assert.Equal(t, "Sunrise over charts", items[0].Context)
	assert.Len(t, items[0].Captions, 2)
}

func TestGenerateEmptyInput(t *testing.T) {
	svc, _ := newTestService(t, okGenerator(), ZeroSeeder{}, time.Second)

	_, err := svc.Generate(context.Background(), GenerateInput{Mode: domain.ModeGM})
	assert.ErrorIs(t, err, ErrEmptyInput)

	// Tags alone are enough
	_, err = svc.Generate(context.Background(), GenerateInput{Mode: domain.ModeGM, Tags: []string{"bull"}})
	assert.NoError(t, err)
}

func TestGenerateFallbackGoesToHistory(t *testing.T) {
	gen := okGenerator()
	gen.captionErr = assert.AnError
	svc, history := newTestService(t, gen, ZeroSeeder{}, time.Second)

	result, err := svc.Generate(context.Background(), GenerateInput{Mode: domain.ModeGN, Tags: []string{"bear"}})
	require.NoError(t, err)
	assert.Equal(t, domain.ContextFallback, result.Context)
	require.Len(t, result.Captions, 6)
	// Fallback captions keep their fixed IDs
	assert.Equal(t, "err1", result.Captions[0].ID)

	items := history.List(context.Background())
	require.Len(t, items, 1)
	assert.Equal(t, domain.ContextFallback, items[0].Context)
}

func TestGenerateTimeoutSkipsHistory(t *testing.T) {
	gen := okGenerator()
	gen.block = make(chan struct{}) // never closed; only ctx releases it
	svc, history := newTestService(t, gen, ZeroSeeder{}, 30*time.Millisecond)

	result, err := svc.Generate(context.Background(), GenerateInput{Mode: domain.ModeGM, Tags: []string{"bull"}})
	require.NoError(t, err)
	assert.Equal(t, domain.ContextTimeout, result.Context)
	assert.Empty(t, result.Captions)

	assert.Empty(t, history.List(context.Background()))

	// The timed-out run replaces the current result set
	current, err := svc.Current()
	require.NoError(t, err)
	assert.Equal(t, domain.ContextTimeout, current.Context)
}

func TestGenerateInFlightGuard(t *testing.T) {
	gen := okGenerator()
	gen.block = make(chan struct{})
	gen.started = make(chan struct{})
	started := gen.started
	svc, _ := newTestService(t, gen, ZeroSeeder{}, time.Second)

	done := make(chan error, 1)
	go func() {
		_, err := svc.Generate(context.Background(), GenerateInput{Mode: domain.ModeGM, Tags: []string{"bull"}})
		done <- err
	}()

	<-started
	_, err := svc.Generate(context.Background(), GenerateInput{Mode: domain.ModeGM, Tags: []string{"bull"}})
	assert.ErrorIs(t, err, ErrGenerationInFlight)

	close(gen.block)
	require.NoError(t, <-done)

	// The guard releases once the run completes
	_, err = svc.Generate(context.Background(), GenerateInput{Mode: domain.ModeGM, Tags: []string{"bull"}})
	assert.NoError(t, err)
}

func TestGenerateImageThreshold(t *testing.T) {
	svc, history := newTestService(t, okGenerator(), ZeroSeeder{}, time.Second)

	small := "data:image/png;base64," + strings.Repeat("A", 100)
	_, err := svc.Generate(context.Background(), GenerateInput{Mode: domain.ModeGM, ImageData: small})
	require.NoError(t, err)

	big := "data:image/png;base64," + strings.Repeat("A", domain.MaxHistoryImageLen)
	_, err = svc.Generate(context.Background(), GenerateInput{Mode: domain.ModeGM, ImageData: big})
	require.NoError(t, err)

	items := history.List(context.Background())
	require.Len(t, items, 2)
	// Newest first: the oversized payload was dropped from its snapshot
	assert.Empty(t, items[0].ImageData)
	assert.NotNil(t, items[0].ImageMeta)
	assert.Equal(t, small, items[1].ImageData)
}

func TestLikeDislikeToggle(t *testing.T) {
	svc, _ := newTestService(t, okGenerator(), ZeroSeeder{}, time.Second)

	result, err := svc.Generate(context.Background(), GenerateInput{Mode: domain.ModeGM, Tags: []string{"bull"}})
	require.NoError(t, err)
	id := result.Captions[0].ID

	c, err := svc.Like(id)
	require.NoError(t, err)
	assert.True(t, c.Liked)
	assert.Equal(t, 1, c.LikeCount)

	// Toggle off rolls the counter back
	c, err = svc.Like(id)
	require.NoError(t, err)
	assert.False(t, c.Liked)
	assert.Equal(t, 0, c.LikeCount)

	// Dislike clears a like but leaves its counter alone
	_, err = svc.Like(id)
	require.NoError(t, err)
	c, err = svc.Dislike(id)
	require.NoError(t, err)
	assert.True(t, c.Disliked)
	assert.False(t, c.Liked)
	assert.Equal(t, 1, c.LikeCount)
	assert.Equal(t, 1, c.DislikeCount)

	_, err = svc.Like("missing")
	assert.ErrorIs(t, err, ErrCaptionNotFound)
}

func TestFeedbackNeverTouchesHistory(t *testing.T) {
	svc, history := newTestService(t, okGenerator(), ZeroSeeder{}, time.Second)

	result, err := svc.Generate(context.Background(), GenerateInput{Mode: domain.ModeGM, Tags: []string{"bull"}})
	require.NoError(t, err)

	_, err = svc.Like(result.Captions[0].ID)
	require.NoError(t, err)

	items := history.List(context.Background())
	require.Len(t, items, 1)
	assert.False(t, items[0].Captions[0].Liked)
	assert.Equal(t, 0, items[0].Captions[0].LikeCount)
}

func TestGenerateArt(t *testing.T) {
	gen := okGenerator()
	gen.artURL = "data:image/png;base64,QVJU"
	svc, _ := newTestService(t, gen, ZeroSeeder{}, time.Second)

	result, err := svc.Generate(context.Background(), GenerateInput{Mode: domain.ModeGM, Tags: []string{"bull"}})
	require.NoError(t, err)
	id := result.Captions[0].ID

	c, err := svc.GenerateArt(context.Background(), id, domain.StyleMeme)
	require.NoError(t, err)
	assert.Equal(t, gen.artURL, c.ImageURL)
	assert.False(t, c.IsGeneratingImage)

	// Repeat request is a no-op: the artwork stays
	c, err = svc.GenerateArt(context.Background(), id, domain.StyleAlt)
	require.NoError(t, err)
	assert.Equal(t, gen.artURL, c.ImageURL)

	_, err = svc.GenerateArt(context.Background(), "missing", domain.StyleMeme)
	assert.ErrorIs(t, err, ErrCaptionNotFound)
}

func TestGenerateArtFailureRevertsSilently(t *testing.T) {
	gen := okGenerator()
	gen.artErr = assert.AnError
	svc, _ := newTestService(t, gen, ZeroSeeder{}, time.Second)

	result, err := svc.Generate(context.Background(), GenerateInput{Mode: domain.ModeGM, Tags: []string{"bull"}})
	require.NoError(t, err)
	id := result.Captions[0].ID

	c, err := svc.GenerateArt(context.Background(), id, domain.StyleMeme)
	require.NoError(t, err)
	assert.Empty(t, c.ImageURL)
	assert.False(t, c.IsGeneratingImage)
}

func TestShareLinksFor(t *testing.T) {
	svc, _ := newTestService(t, okGenerator(), ZeroSeeder{}, time.Second)

	result, err := svc.Generate(context.Background(), GenerateInput{Mode: domain.ModeGM, Tags: []string{"bull"}})
	require.NoError(t, err)

	links, err := svc.ShareLinksFor(result.Captions[0].ID)
	require.NoError(t, err)
	assert.Contains(t, links.Twitter, "twitter.com/intent/tweet?text=")
	assert.Contains(t, links.Farcaster, "warpcast.com/~/compose?text=")

	_, err = svc.ShareLinksFor("missing")
	assert.ErrorIs(t, err, ErrCaptionNotFound)
}

func TestCurrentBeforeFirstRun(t *testing.T) {
	svc, _ := newTestService(t, okGenerator(), ZeroSeeder{}, time.Second)
	_, err := svc.Current()
	assert.ErrorIs(t, err, ErrNoCurrentSignal)
}
