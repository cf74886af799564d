package domain

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func sampleHistory() []HistoryItem {
	return []HistoryItem{
		{ID: "3", Timestamp: 300, Mode: ModeGN, Context: "night"},
		{ID: "2", Timestamp: 200, Mode: ModeGM, Context: "morning"},
		{ID: "1", Timestamp: 100, Mode: ModeGM, Context: "early"},
	}
}

func TestFilterByMode(t *testing.T) {
	items := sampleHistory()

	tests := []struct {
		name    string
		filter  HistoryFilter
		wantIDs []string
	}{
		{"all", FilterAll, []string{"3", "2", "1"}},
		{"gm only", FilterGM, []string{"2", "1"}},
		{"gn only", FilterGN, []string{"3"}},
		{"unknown falls back to all", HistoryFilter("WAGMI"), []string{"3", "2", "1"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := FilterByMode(items, tt.filter)
			ids := make([]string, 0, len(got))
			for _, it := range got {
				ids = append(ids, it.ID)
			}
			assert.Equal(t, tt.wantIDs, ids)
		})
	}
}

func TestSortByTime(t *testing.T) {
	items := sampleHistory()

	newest := SortByTime(items, SortNewest)
	assert.Equal(t, "3", newest[0].ID)
	assert.Equal(t, "1", newest[2].ID)

	oldest := SortByTime(items, SortOldest)
	assert.Equal(t, "1", oldest[0].ID)
	assert.Equal(t, "3", oldest[2].ID)

	// Input order is preserved
	assert.Equal(t, "3", items[0].ID)
}

func TestSignalModeValid(t *testing.T) {
	assert.True(t, ModeGM.Valid())
	assert.True(t, ModeGN.Valid())
	assert.False(t, SignalMode("gm").Valid())
	assert.False(t, SignalMode("").Valid())
}

func TestImageStyleValid(t *testing.T) {
	assert.True(t, StyleMeme.Valid())
	assert.True(t, StyleAlt.Valid())
	assert.False(t, ImageStyle("BEEPLE").Valid())
}

func TestResolveLabels(t *testing.T) {
	labels := ResolveLabels([]string{"bull", "nope", "gym"})
	assert.Equal(t, []string{"Bull Market", "Gym"}, labels)

	assert.Empty(t, ResolveLabels(nil))
}

func TestNewTimeIDDistinct(t *testing.T) {
	seen := make(map[string]bool)
	for i := 0; i < 1000; i++ {
		id := NewTimeID()
		assert.False(t, seen[id], "duplicate ID %s", id)
		seen[id] = true
		assert.True(t, strings.Contains(id, "-"))
	}
}

func TestRandomQuote(t *testing.T) {
	q := RandomQuote()
	assert.Contains(t, Web3Quotes, q)
}
