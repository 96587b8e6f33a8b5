package models

// LedgerKind classifies a cash movement.
type LedgerKind string

const (
	KindIncome  LedgerKind = "Income"
	KindExpense LedgerKind = "Expense"
	KindPending LedgerKind = "Pending"
)

// ParseLedgerKind maps a free-text kind to a known value. It returns false
// for unrecognized input; the ledger has no sensible default kind.
func ParseLedgerKind(s string) (LedgerKind, bool) {
	switch LedgerKind(s) {
	case KindIncome, KindExpense, KindPending:
		return LedgerKind(s), true
	}
	return "", false
}

// LedgerEntry is one financial movement in the club's cash book.
type LedgerEntry struct {
	// ID is the unique identifier for the entry (UUID format).
	ID string `json:"id"`

	// Date is the movement day in YYYY-MM-DD form.
	Date string `json:"date"`

	// Description says what the movement was for.
	Description string `json:"description"`

	// Kind classifies the movement. Pending entries are excluded from
	// balance derivation.
	Kind LedgerKind `json:"kind"`

	// Amount is the movement value, non-negative; Kind carries the sign.
	Amount float64 `json:"amount"`

	// Responsible is the party who handled the money, free text.
	Responsible string `json:"responsible"`
}

// CashState holds the carried-over prior balance. The current balance is
// always derived from it plus the ledger, never stored.
type CashState struct {
	OpeningBalance float64 `json:"opening_balance"`
}
