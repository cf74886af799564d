package domain

import "math/rand"

// ShortcutTag is a one-tap context tag the user can attach to a
// generation request instead of, or alongside, an image.
type ShortcutTag struct {
	ID       string `json:"id"`
	Label    string `json:"label"`
	Category string `json:"category"`
}

// Shortcuts is the built-in tag catalog, grouped loosely by sentiment,
// lifestyle, and community.
var Shortcuts = []ShortcutTag{
	{ID: "bull", Label: "Bull Market", Category: "mood"},
	{ID: "bear", Label: "Bear Market", Category: "mood"},

	{ID: "building", Label: "Building", Category: "lifestyle"},
	{ID: "ai", Label: "AI / Agents", Category: "lifestyle"},
	{ID: "shilling", Label: "Shilling", Category: "lifestyle"},
	{ID: "branding", Label: "Personal Brand", Category: "lifestyle"},

	{ID: "connect", Label: "Looking to Connect", Category: "lifestyle"},
	{ID: "community", Label: "Community", Category: "lifestyle"},

	{ID: "gym", Label: "Gym", Category: "lifestyle"},
	{ID: "coffee", Label: "Caffeine", Category: "lifestyle"},
	{ID: "charts", Label: "Charts", Category: "lifestyle"},
	{ID: "focused", Label: "Locked In", Category: "mood"},
	{ID: "tired", Label: "Touch Grass", Category: "mood"},
}

// ResolveLabels maps tag IDs to their display labels for prompt
// assembly. Unknown IDs are skipped.
// Parameters:
//   - ids: selected tag IDs.
// Returns:
//   - []string: labels of the recognized tags, in input order.
func ResolveLabels(ids []string) []string {
	labels := make([]string, 0, len(ids))
	for _, id := range ids {
		for _, t := range Shortcuts {
			if t.ID == id {
				labels = append(labels, t.Label)
				break
			}
		}
	}
	return labels
}

// Web3Quotes is the rotating set of motivational one-liners served on
// the quote endpoint.
var Web3Quotes = []string{
	"Execute your plans, don't procrastinate.",
	"Bear markets are for building, bull markets are for changing your life.",
	"Conviction pays off when the chart looks ugly.",
	"Your network is your net worth. Engage daily.",
	"Don't trust, verify. Then ship it.",
	"Consistency is the only alpha you need.",
	"WAGMI isn't a promise, it's a mindset.",
	"The best time to buy was yesterday. The second best time is now.",
	"Stay based, stay building.",
	"Code is law, but community is culture.",
	"Liquidity flows to where attention goes.",
	"Don't just watch the charts, make the moves.",
}

// RandomQuote returns one quote at random.
// Parameters: none.
// Returns:
//   - string: a quote from Web3Quotes.
func RandomQuote() string {
	return Web3Quotes[rand.Intn(len(Web3Quotes))]
}
