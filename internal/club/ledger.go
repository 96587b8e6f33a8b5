package club

import (
	"strings"

	"github.com/tbrandao/clubsheet/internal/models"
)

// CurrentBalance derives the cash position: opening balance plus all income
// minus all expenses. Pending entries do not move the balance until they are
// reclassified.
func CurrentBalance(state *models.AppState) float64 {
	balance := state.Cash.OpeningBalance
	for _, e := range state.Ledger {
		switch e.Kind {
		case models.KindIncome:
			balance += e.Amount
		case models.KindExpense:
			balance -= e.Amount
		}
	}
	return balance
}

// DayIncome sums the income entries dated on the given YYYY-MM-DD day.
func DayIncome(state *models.AppState, day string) float64 {
	var total float64
	for _, e := range state.Ledger {
		if e.Kind == models.KindIncome && e.Date == day {
			total += e.Amount
		}
	}
	return total
}

// LedgerInMonth returns the ledger entries dated in the given YYYY-MM
// month, in stored order.
func LedgerInMonth(state *models.AppState, month string) []*models.LedgerEntry {
	var out []*models.LedgerEntry
	for _, e := range state.Ledger {
		if inMonth(e.Date, month) {
			out = append(out, e)
		}
	}
	return out
}

// BookingsInMonth returns the bookings dated in the given YYYY-MM month, in
// stored order.
func BookingsInMonth(state *models.AppState, month string) []*models.Booking {
	var out []*models.Booking
	for _, b := range state.Bookings {
		if inMonth(b.Date, month) {
			out = append(out, b)
		}
	}
	return out
}

func inMonth(date, month string) bool {
	return month != "" && strings.HasPrefix(date, month+"-")
}
