package domain

// UserProfile is the stored operator identity. The service round-trips
// it as an opaque record; there is no authentication layer behind it.
type UserProfile struct {
	Name       string `json:"name"`
	Handle     string `json:"handle"`
	Avatar     string `json:"avatar"`
	IsLoggedIn bool   `json:"is_logged_in"`
	Provider   string `json:"provider,omitempty"`
}

// UserStats tracks engagement across signal runs.
type UserStats struct {
	Streak         int          `json:"streak"`
	LastSignalDate string       `json:"last_signal_date,omitempty"`
	TotalSignals   int          `json:"total_signals"`
	ModeHistory    []SignalMode `json:"mode_history"`
}
