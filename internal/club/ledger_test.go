package club

import (
	"math"
	"strings"
	"testing"
	"time"

	"github.com/tbrandao/clubsheet/internal/models"
)

func TestCurrentBalance(t *testing.T) {
	tests := []struct {
		name    string
		opening float64
		ledger  []*models.LedgerEntry
		want    float64
	}{
		{
			name:    "empty ledger is the opening balance",
			opening: 100,
			want:    100,
		},
		{
			name:    "income adds, expense subtracts",
			opening: 100,
			ledger: []*models.LedgerEntry{
				{Kind: models.KindIncome, Amount: 50},
				{Kind: models.KindExpense, Amount: 20},
			},
			want: 130,
		},
		{
			name:    "pending entries are ignored",
			opening: 0,
			ledger: []*models.LedgerEntry{
				{Kind: models.KindIncome, Amount: 10},
				{Kind: models.KindPending, Amount: 999},
			},
			want: 10,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			state := models.NewAppState()
			state.Cash.OpeningBalance = tt.opening
			state.Ledger = tt.ledger
			if got := CurrentBalance(state); math.Abs(got-tt.want) > 1e-9 {
				t.Errorf("CurrentBalance = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestExpenseDecreasesBalanceByExactAmount(t *testing.T) {
	state := models.NewAppState()
	state.Cash.OpeningBalance = 500
	state.Ledger = []*models.LedgerEntry{{Kind: models.KindIncome, Amount: 75}}

	before := CurrentBalance(state)
	state.Ledger = append(state.Ledger, &models.LedgerEntry{Kind: models.KindExpense, Amount: 42.5})
	after := CurrentBalance(state)

	if math.Abs((before-after)-42.5) > 1e-9 {
		t.Errorf("balance moved by %v, want exactly 42.5", before-after)
	}
}

func TestDayIncome(t *testing.T) {
	state := models.NewAppState()
	state.Ledger = []*models.LedgerEntry{
		{Kind: models.KindIncome, Amount: 10, Date: "2026-08-31"},
		{Kind: models.KindIncome, Amount: 5, Date: "2026-08-30"},
		{Kind: models.KindExpense, Amount: 3, Date: "2026-08-31"},
	}
	if got := DayIncome(state, "2026-08-31"); got != 10 {
		t.Errorf("DayIncome = %v, want 10", got)
	}
}

func TestMonthFilters(t *testing.T) {
	state := models.NewAppState()
	state.Ledger = []*models.LedgerEntry{
		{Description: "august dues", Date: "2026-08-05", Kind: models.KindIncome, Amount: 1},
		{Description: "july rent", Date: "2026-07-05", Kind: models.KindExpense, Amount: 1},
	}
	state.Bookings = []*models.Booking{
		{Location: "Court 1", Date: "2026-08-10"},
		{Location: "Court 2", Date: "2026-09-10"},
	}

	ledger := LedgerInMonth(state, "2026-08")
	if len(ledger) != 1 || ledger[0].Description != "august dues" {
		t.Errorf("LedgerInMonth = %+v", ledger)
	}
	bookings := BookingsInMonth(state, "2026-08")
	if len(bookings) != 1 || bookings[0].Location != "Court 1" {
		t.Errorf("BookingsInMonth = %+v", bookings)
	}
	if got := BookingsInMonth(state, ""); got != nil {
		t.Errorf("empty month should match nothing, got %+v", got)
	}
}

func TestDailySummary(t *testing.T) {
	now := time.Date(2026, 8, 31, 9, 30, 0, 0, time.UTC)
	state := models.NewAppState()
	state.Cash.OpeningBalance = 200
	state.Notes = "bring the nets"
	state.Members = []*models.Member{
		{Name: "Ana", Status: models.StatusActive},
		{Name: "Bia", Status: models.StatusActive},
		{Name: "Carla", Status: models.StatusPending},
		{Name: "Dani", Status: models.StatusInactive},
	}
	state.Bookings = []*models.Booking{
		{Date: "2026-08-31", Time: "19:00", Location: "Court 1", TeamName: "Alpha", Price: 80, Status: models.BookingConfirmed},
		{Date: "2026-09-01", Time: "20:00", Location: "Court 2", Status: models.BookingPending},
	}
	state.Ledger = []*models.LedgerEntry{
		{Kind: models.KindIncome, Amount: 40, Date: "2026-08-31"},
	}

	text := DailySummary(state, now)

	for _, want := range []string{
		"Active members: 2 | Pending: 1",
		"Bookings today: 1",
		"Court 1",
		"Opening balance: 200.00",
		"Income today: 40.00",
		"Current balance: 240.00",
		"bring the nets",
	} {
		if !strings.Contains(text, want) {
			t.Errorf("summary missing %q:\n%s", want, text)
		}
	}
	if strings.Contains(text, "Court 2") {
		t.Error("summary includes a booking from another day")
	}
}
