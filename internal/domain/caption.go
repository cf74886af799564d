package domain

// SignalMode selects the time-of-day register of a signal.
// Values are ModeGM (morning) and ModeGN (night).
type SignalMode string

const (
	ModeGM SignalMode = "GM"
	ModeGN SignalMode = "GN"
)

// Valid reports whether the mode is a recognized signal mode.
// Parameters: none.
// Returns:
//   - bool: true for GM or GN.
func (m SignalMode) Valid() bool {
	return m == ModeGM || m == ModeGN
}

// ImageStyle selects the art direction for caption artwork.
type ImageStyle string

const (
	StyleMeme ImageStyle = "MEME"
	StyleAlt  ImageStyle = "ALT_STYLE"
)

// Valid reports whether the style is a recognized image style.
// Parameters: none.
// Returns:
//   - bool: true for MEME or ALT_STYLE.
func (s ImageStyle) Valid() bool {
	return s == StyleMeme || s == StyleAlt
}

// GeneratedCaption is one caption variant produced for a signal,
// carrying its seeded engagement counters and the viewer's feedback state.
type GeneratedCaption struct {
	ID                string `json:"id"`
	Text              string `json:"text"`
	Mood              string `json:"mood"`
	LikeCount         int    `json:"like_count"`
	DislikeCount      int    `json:"dislike_count"`
	Liked             bool   `json:"liked"`
	Disliked          bool   `json:"disliked"`
	ImageURL          string `json:"image_url,omitempty"`
	IsGeneratingImage bool   `json:"is_generating_image,omitempty"`
}

// SignalResult is the outcome of one generation run: the detected
// context line plus the caption variants.
type SignalResult struct {
	Context  string             `json:"context"`
	Captions []GeneratedCaption `json:"captions"`
}

// Generation context strings for the two degraded outcomes. Fallback
// results still carry captions; timed-out results carry none.
const (
	ContextFallback = "Signal Interrupted"
	ContextTimeout  = "System Error - Try Again"
)
