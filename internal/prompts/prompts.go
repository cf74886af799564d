package prompts

import (
	"fmt"
	"strings"
)

// ============================================================================
// Caption Generation Prompts
// ============================================================================

// CaptionSystemRole frames the model as a crypto-native copywriter.
const CaptionSystemRole = "You are a crypto-native creative technologist."

// captionTemplate is the analysis prompt. It asks for exactly six
// variants and pins the register of each mode.
const captionTemplate = `%s
Analyze the image. Generate 6 witty, crypto-culture relevant captions for a "%s" post.
%s
Context for "GM": High energy, builder, "shipping", wagmi.
Context for "GN": Hopium, reflection, "we made it", rest.

Output JSON: { "detected_context": string, "captions": [{"text": string, "mood": string}] }`

// CaptionPrompt assembles the caption-generation prompt for a mode and
// optional user context tags.
// Parameters:
//   - mode: signal mode string (GM or GN).
//   - tagLabels: resolved tag labels; empty slice omits the context line.
// Returns:
//   - string: full prompt text.
func CaptionPrompt(mode string, tagLabels []string) string {
	contextStr := ""
	if len(tagLabels) > 0 {
		contextStr = fmt.Sprintf("User context tags: %s.", strings.Join(tagLabels, ", "))
	}
	return fmt.Sprintf(captionTemplate, CaptionSystemRole, mode, contextStr)
}

// ============================================================================
// Art Generation Prompts
// ============================================================================

// MemeStylePrompt directs the image model toward viral meme aesthetics.
const MemeStylePrompt = "Create a funny, viral crypto meme style image. Cartoonish, high contrast, internet culture aesthetic, pepe or doge vibes but original."

// AltStylePrompt directs the image model toward monumental digital art.
const AltStylePrompt = "Create a Beeple-style digital art masterpiece. Dystopian yet hopeful, cyberpunk, neon aesthetic, highly detailed, 3D render, surrealism, monumental scale."

// artTemplate wraps a style directive around the caption being
// visualized.
const artTemplate = `%s
Visualize this caption: "%s"
Context keywords: %s, %s.
Make it look amazing for Crypto Twitter.
No text in the image.`

// ArtPrompt assembles the art-generation prompt for a caption.
// Parameters:
//   - stylePrompt: MemeStylePrompt or AltStylePrompt.
//   - captionText: the caption to visualize.
//   - tagLabels: resolved tag labels; empty falls back to "Crypto Culture".
//   - mode: signal mode string.
// Returns:
//   - string: full prompt text.
func ArtPrompt(stylePrompt, captionText string, tagLabels []string, mode string) string {
	context := "Crypto Culture"
	if len(tagLabels) > 0 {
		context = strings.Join(tagLabels, ", ")
	}
	return fmt.Sprintf(artTemplate, stylePrompt, captionText, context, mode)
}
