package export

import (
	"fmt"
	"regexp"

	"github.com/tbrandao/clubsheet/internal/club"
	"github.com/tbrandao/clubsheet/internal/models"
)

var monthRe = regexp.MustCompile(`^\d{4}-(0[1-9]|1[0-2])$`)

// MonthReport is the data snapshot behind the monthly report: the bookings
// and cash movements of one month plus derived totals and the global
// balances.
type MonthReport struct {
	Month          string               `json:"month"`
	Bookings       []models.Booking     `json:"bookings"`
	Ledger         []models.LedgerEntry `json:"ledger"`
	Income         float64              `json:"income"`
	Expenses       float64              `json:"expenses"`
	Pending        float64              `json:"pending"`
	OpeningBalance float64              `json:"opening_balance"`
	CurrentBalance float64              `json:"current_balance"`
}

// BuildMonthReport filters the state down to the given YYYY-MM month and
// derives the totals. The opening and current balances are global, not
// month-scoped; only the listings and per-kind totals are filtered. The
// report copies the matched records, so it stays valid after the state
// moves on.
func BuildMonthReport(state *models.AppState, month string) (*MonthReport, error) {
	if !monthRe.MatchString(month) {
		return nil, fmt.Errorf("invalid month %q, want YYYY-MM", month)
	}

	r := &MonthReport{
		Month:          month,
		OpeningBalance: state.Cash.OpeningBalance,
		CurrentBalance: club.CurrentBalance(state),
	}
	for _, b := range club.BookingsInMonth(state, month) {
		r.Bookings = append(r.Bookings, *b)
	}
	for _, e := range club.LedgerInMonth(state, month) {
		r.Ledger = append(r.Ledger, *e)
	}
	for _, e := range r.Ledger {
		switch e.Kind {
		case models.KindIncome:
			r.Income += e.Amount
		case models.KindExpense:
			r.Expenses += e.Amount
		case models.KindPending:
			r.Pending += e.Amount
		}
	}
	return r, nil
}
