package api

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/0xzahra/gmn/internal/api/middleware"
	"github.com/0xzahra/gmn/internal/domain"
	"github.com/0xzahra/gmn/internal/repository"
	"github.com/0xzahra/gmn/internal/service"
)

// scriptedGenerator returns a fixed result set.
type scriptedGenerator struct {
	result *domain.SignalResult
	err    error
}

func (g *scriptedGenerator) Name() string { return "scripted" }

func (g *scriptedGenerator) GenerateCaptions(ctx context.Context, req service.CaptionRequest) (*domain.SignalResult, error) {
	if g.err != nil {
		return nil, g.err
	}
	return &domain.SignalResult{
		Context:  g.result.Context,
		Captions: append([]domain.GeneratedCaption(nil), g.result.Captions...),
	}, nil
}

func (g *scriptedGenerator) GenerateArt(ctx context.Context, req service.ArtRequest) (string, error) {
	return "data:image/png;base64,QVJU", nil
}

func newTestRouter(t *testing.T) *gin.Engine {
	t.Helper()
	store := repository.NewMemoryStore()
	history := repository.NewHistoryRepository(store)
	templates := repository.NewTemplateRepository(store)
	profiles := repository.NewProfileRepository(store)
	require.NoError(t, history.Load(context.Background()))
	require.NoError(t, templates.Load(context.Background()))

	gen := &scriptedGenerator{
		result: &domain.SignalResult{
			Context: "Sunrise over charts",
			Captions: []domain.GeneratedCaption{
				{Text: "gm to the builders", Mood: "Stoic"},
			},
		},
	}
	signals := service.NewSignalService(service.NewCaptionClient(gen), history, service.ZeroSeeder{}, time.Second)

	return SetupRouter(Deps{
		Signals:   signals,
		History:   history,
		Templates: templates,
		Profiles:  profiles,
	}, "test", middleware.CORSConfig{AllowAllOrigins: true})
}

func doJSON(r *gin.Engine, method, path string, body interface{}) *httptest.ResponseRecorder {
	var buf bytes.Buffer
	if body != nil {
		_ = json.NewEncoder(&buf).Encode(body)
	}
	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestGenerateEndpoint(t *testing.T) {
	r := newTestRouter(t)

	w := doJSON(r, http.MethodPost, "/api/v1/signals", gin.H{
		"mode": "GM",
		"tags": []string{"bull"},
	})
	require.Equal(t, http.StatusOK, w.Code)

	var result domain.SignalResult
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &result))
	assert.Equal(t, "Sunrise over charts", result.Context)
	require.Len(t, result.Captions, 1)
	assert.NotEmpty(t, result.Captions[0].ID)
}

func TestGenerateEndpointRejections(t *testing.T) {
	r := newTestRouter(t)

	// Missing mode
	w := doJSON(r, http.MethodPost, "/api/v1/signals", gin.H{"tags": []string{"bull"}})
	assert.Equal(t, http.StatusBadRequest, w.Code)

	// Unknown mode
	w = doJSON(r, http.MethodPost, "/api/v1/signals", gin.H{"mode": "BRUNCH", "tags": []string{"bull"}})
	assert.Equal(t, http.StatusBadRequest, w.Code)

	// No image and no tags
	w = doJSON(r, http.MethodPost, "/api/v1/signals", gin.H{"mode": "GM"})
	assert.Equal(t, http.StatusUnprocessableEntity, w.Code)
}

func TestCurrentAndFeedbackEndpoints(t *testing.T) {
	r := newTestRouter(t)

	// Nothing generated yet
	w := doJSON(r, http.MethodGet, "/api/v1/signals/current", nil)
	assert.Equal(t, http.StatusNotFound, w.Code)

	w = doJSON(r, http.MethodPost, "/api/v1/signals", gin.H{"mode": "GM", "tags": []string{"bull"}})
	require.Equal(t, http.StatusOK, w.Code)
	var result domain.SignalResult
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &result))
	id := result.Captions[0].ID

	w = doJSON(r, http.MethodPost, "/api/v1/signals/captions/"+id+"/like", nil)
	require.Equal(t, http.StatusOK, w.Code)
	var caption domain.GeneratedCaption
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &caption))
	assert.True(t, caption.Liked)
	assert.Equal(t, 1, caption.LikeCount)

	w = doJSON(r, http.MethodPost, "/api/v1/signals/captions/unknown/dislike", nil)
	assert.Equal(t, http.StatusNotFound, w.Code)

	// Art
	w = doJSON(r, http.MethodPost, "/api/v1/signals/captions/"+id+"/art", gin.H{"style": "MEME"})
	require.Equal(t, http.StatusOK, w.Code)
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &caption))
	assert.NotEmpty(t, caption.ImageURL)

	w = doJSON(r, http.MethodPost, "/api/v1/signals/captions/"+id+"/art", gin.H{"style": "BEEPLE"})
	assert.Equal(t, http.StatusBadRequest, w.Code)

	// Share
	w = doJSON(r, http.MethodGet, "/api/v1/signals/captions/"+id+"/share", nil)
	require.Equal(t, http.StatusOK, w.Code)
	var links service.ShareLinks
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &links))
	assert.Contains(t, links.Twitter, "twitter.com/intent/tweet")
}

func TestHistoryEndpoint(t *testing.T) {
	r := newTestRouter(t)

	w := doJSON(r, http.MethodPost, "/api/v1/signals", gin.H{"mode": "GM", "tags": []string{"bull"}})
	require.Equal(t, http.StatusOK, w.Code)
	w = doJSON(r, http.MethodPost, "/api/v1/signals", gin.H{"mode": "GN", "tags": []string{"bear"}})
	require.Equal(t, http.StatusOK, w.Code)

	var page struct {
		Items []domain.HistoryItem `json:"items"`
		Total int                  `json:"total"`
	}

	w = doJSON(r, http.MethodGet, "/api/v1/history", nil)
	require.Equal(t, http.StatusOK, w.Code)
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &page))
	assert.Equal(t, 2, page.Total)
	assert.Equal(t, domain.ModeGN, page.Items[0].Mode)

	w = doJSON(r, http.MethodGet, "/api/v1/history?mode=GM", nil)
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &page))
	assert.Equal(t, 1, page.Total)
	assert.Equal(t, domain.ModeGM, page.Items[0].Mode)

	w = doJSON(r, http.MethodGet, "/api/v1/history?sort=OLDEST", nil)
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &page))
	assert.Equal(t, domain.ModeGM, page.Items[0].Mode)
}

func TestTemplateEndpoints(t *testing.T) {
	r := newTestRouter(t)

	w := doJSON(r, http.MethodPost, "/api/v1/templates", gin.H{"text": "gm. we build."})
	require.Equal(t, http.StatusCreated, w.Code)
	var tmpl domain.SavedTemplate
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &tmpl))
	assert.NotEmpty(t, tmpl.ID)

	// Empty text is rejected by binding
	w = doJSON(r, http.MethodPost, "/api/v1/templates", gin.H{"text": ""})
	assert.Equal(t, http.StatusBadRequest, w.Code)

	w = doJSON(r, http.MethodGet, "/api/v1/templates", nil)
	require.Equal(t, http.StatusOK, w.Code)

	w = doJSON(r, http.MethodDelete, "/api/v1/templates/"+tmpl.ID, nil)
	assert.Equal(t, http.StatusNoContent, w.Code)

	w = doJSON(r, http.MethodDelete, "/api/v1/templates/"+tmpl.ID, nil)
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestProfileEndpoints(t *testing.T) {
	r := newTestRouter(t)

	w := doJSON(r, http.MethodGet, "/api/v1/profile", nil)
	assert.Equal(t, http.StatusNotFound, w.Code)

	w = doJSON(r, http.MethodPut, "/api/v1/profile", gin.H{
		"name":         "Operator_01",
		"handle":       "operator",
		"is_logged_in": true,
	})
	require.Equal(t, http.StatusOK, w.Code)

	w = doJSON(r, http.MethodGet, "/api/v1/profile", nil)
	require.Equal(t, http.StatusOK, w.Code)
	var profile domain.UserProfile
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &profile))
	assert.Equal(t, "operator", profile.Handle)

	w = doJSON(r, http.MethodDelete, "/api/v1/profile", nil)
	assert.Equal(t, http.StatusNoContent, w.Code)
}

func TestTagsAndQuoteEndpoints(t *testing.T) {
	r := newTestRouter(t)

	w := doJSON(r, http.MethodGet, "/api/v1/tags", nil)
	require.Equal(t, http.StatusOK, w.Code)
	var tags struct {
		Tags []domain.ShortcutTag `json:"tags"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &tags))
	assert.Len(t, tags.Tags, len(domain.Shortcuts))

	w = doJSON(r, http.MethodGet, "/api/v1/quote", nil)
	require.Equal(t, http.StatusOK, w.Code)
	var quote struct {
		Quote string `json:"quote"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &quote))
	assert.Contains(t, domain.Web3Quotes, quote.Quote)
}

func TestHealthEndpoint(t *testing.T) {
	r := newTestRouter(t)
	w := doJSON(r, http.MethodGet, "/health", nil)
	assert.Equal(t, http.StatusOK, w.Code)
}
