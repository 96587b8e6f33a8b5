package models

// AppState is the full persisted snapshot: every collection the app tracks
// plus the cash state and free-text notes. It is loaded once at startup and
// rewritten in full after every mutation; the last full write wins.
type AppState struct {
	Members  []*Member      `json:"members"`
	Teams    []*Team        `json:"teams"`
	Bookings []*Booking     `json:"bookings"`
	Ledger   []*LedgerEntry `json:"ledger"`
	Notes    string         `json:"notes"`
	Cash     CashState      `json:"cash"`
}

// NewAppState returns an empty default state, the fallback when no snapshot
// exists or the stored one cannot be read.
func NewAppState() *AppState {
	return &AppState{
		Members:  []*Member{},
		Teams:    []*Team{},
		Bookings: []*Booking{},
		Ledger:   []*LedgerEntry{},
	}
}
