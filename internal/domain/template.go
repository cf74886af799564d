package domain

import (
	"fmt"
	"sync/atomic"
	"time"
)

// SavedTemplate is a caption text the user kept for reuse. Duplicate
// texts are allowed; each save gets its own ID.
type SavedTemplate struct {
	ID        string `json:"id"`
	Text      string `json:"text"`
	Timestamp int64  `json:"timestamp"`
}

// idCounter disambiguates IDs minted within the same millisecond.
var idCounter uint64

// NewTimeID mints a millisecond-timestamp ID with a monotonic suffix,
// so rapid successive saves never collide.
// Parameters: none.
// Returns:
//   - string: ID of the form "<unix_millis>-<counter>".
func NewTimeID() string {
	n := atomic.AddUint64(&idCounter, 1)
	return fmt.Sprintf("%d-%04d", time.Now().UnixMilli(), n%10000)
}
