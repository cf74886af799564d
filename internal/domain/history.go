package domain

import "sort"

// HistoryCapacity is the maximum number of retained history entries.
// Appending beyond it evicts the oldest entry.
const HistoryCapacity = 20

// HistoryItem is a persisted snapshot of one completed generation run.
// The captions are frozen at snapshot time; later feedback on the
// live result set does not flow back into history.
type HistoryItem struct {
	ID        string             `json:"id"`
	Timestamp int64              `json:"timestamp"`
	Mode      SignalMode         `json:"mode"`
	Context   string             `json:"context"`
	Captions  []GeneratedCaption `json:"captions"`
	ImageData string             `json:"image_data,omitempty"`
	ImageMeta *ImageMeta         `json:"image_meta,omitempty"`
}

// HistoryFilter selects which modes a history view includes.
type HistoryFilter string

const (
	FilterAll HistoryFilter = "ALL"
	FilterGM  HistoryFilter = "GM"
	FilterGN  HistoryFilter = "GN"
)

// HistorySort selects the ordering of a history view.
type HistorySort string

const (
	SortNewest HistorySort = "NEWEST"
	SortOldest HistorySort = "OLDEST"
)

// FilterByMode returns the entries matching the filter. FilterAll (or
// an unrecognized filter) returns the input unchanged. The result is a
// view for presentation; stored history is never reordered or reduced.
// Parameters:
//   - items: history entries, newest first.
//   - filter: mode filter to apply.
// Returns:
//   - []HistoryItem: matching entries in their original order.
func FilterByMode(items []HistoryItem, filter HistoryFilter) []HistoryItem {
	var mode SignalMode
	switch filter {
	case FilterGM:
		mode = ModeGM
	case FilterGN:
		mode = ModeGN
	default:
		return items
	}
	out := make([]HistoryItem, 0, len(items))
	for _, it := range items {
		if it.Mode == mode {
			out = append(out, it)
		}
	}
	return out
}

// SortByTime returns a copy of the entries ordered by timestamp.
// Parameters:
//   - items: history entries.
//   - order: SortNewest (default) or SortOldest.
// Returns:
//   - []HistoryItem: sorted copy; the input slice is untouched.
func SortByTime(items []HistoryItem, order HistorySort) []HistoryItem {
	out := make([]HistoryItem, len(items))
	copy(out, items)
	if order == SortOldest {
		sort.SliceStable(out, func(i, j int) bool { return out[i].Timestamp < out[j].Timestamp })
	} else {
		sort.SliceStable(out, func(i, j int) bool { return out[i].Timestamp > out[j].Timestamp })
	}
	return out
}
