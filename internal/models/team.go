package models

// RosterEntry is one named slot on a team's titular or reserve list.
type RosterEntry struct {
	// Name is the player name exactly as entered.
	Name string `json:"name"`

	// MemberID is a weak reference to a directory Member. It may be empty
	// (never linked) or stale (the member was deleted since); the sync
	// engine treats both as unlinked.
	MemberID string `json:"member_id,omitempty"`
}

// Team represents a named squad.
type Team struct {
	// ID is the unique identifier for the team (UUID format).
	ID string `json:"id"`

	// Name is the squad's display name.
	Name string `json:"name"`

	// Category is a free label (veterans, open, etc.).
	Category string `json:"category"`

	// KitColor is the uniform color.
	KitColor string `json:"kit_color"`

	// Titulars is the starting lineup, in entry order.
	Titulars []RosterEntry `json:"titulars"`

	// Reserves is the bench, in entry order. An entry belongs to exactly
	// one of the two lists at a time.
	Reserves []RosterEntry `json:"reserves"`
}
