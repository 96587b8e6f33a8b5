package models

// Position is the field position a member usually plays.
type Position string

const (
	PositionGoalkeeper Position = "Goalkeeper"
	PositionDefender   Position = "Defender"
	PositionFullback   Position = "Fullback"
	PositionMidfielder Position = "Midfielder"
	PositionForward    Position = "Forward"
	PositionOther      Position = "Other"
)

// ParsePosition maps a free-text position to a known value.
// Unrecognized input defaults to PositionOther.
func ParsePosition(s string) Position {
	switch Position(s) {
	case PositionGoalkeeper, PositionDefender, PositionFullback,
		PositionMidfielder, PositionForward:
		return Position(s)
	default:
		return PositionOther
	}
}

// MemberStatus is a member's standing with the club.
type MemberStatus string

const (
	StatusActive   MemberStatus = "Active"
	StatusPending  MemberStatus = "Pending"
	StatusInactive MemberStatus = "Inactive"
)

// ParseMemberStatus maps a free-text status to a known value.
// Unrecognized input defaults to StatusActive.
func ParseMemberStatus(s string) MemberStatus {
	switch MemberStatus(s) {
	case StatusPending, StatusInactive:
		return MemberStatus(s)
	default:
		return StatusActive
	}
}

// Member represents a club participant in the directory.
type Member struct {
	// ID is the unique identifier for the member (UUID format).
	// Generated at creation, immutable.
	ID string `json:"id"`

	// Name is the display name as entered, trimmed. It need not be unique;
	// the sync engine matches on its normalized form only.
	Name string `json:"name"`

	// Phone is an optional contact number.
	Phone string `json:"phone"`

	// Position is the member's usual field position.
	Position Position `json:"position"`

	// Status is the member's standing with the club.
	Status MemberStatus `json:"status"`

	// Dues is the monthly membership fee, non-negative.
	Dues float64 `json:"dues"`
}
