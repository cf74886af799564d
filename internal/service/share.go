package service

import "net/url"

// ShareLinks carries the compose-intent URLs for one caption.
type ShareLinks struct {
	Twitter   string `json:"twitter"`
	Farcaster string `json:"farcaster"`
}

// BuildShareLinks produces the X/Twitter and Warpcast compose URLs
// with the caption text query-encoded.
// Parameters:
//   - text: caption text to share.
// Returns:
//   - ShareLinks: intent URLs.
func BuildShareLinks(text string) ShareLinks {
	encoded := url.QueryEscape(text)
	return ShareLinks{
		Twitter:   "https://twitter.com/intent/tweet?text=" + encoded,
		Farcaster: "https://warpcast.com/~/compose?text=" + encoded,
	}
}
