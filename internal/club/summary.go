package club

import (
	"fmt"
	"strings"
	"time"

	"github.com/tbrandao/clubsheet/internal/models"
)

// DailySummary renders the plain-text day report handed to the share
// collaborators: member counts, today's bookings, cash position, and any
// free-text notes. The text is final output, not a template.
func DailySummary(state *models.AppState, now time.Time) string {
	var active, pending int
	for _, m := range state.Members {
		switch m.Status {
		case models.StatusActive:
			active++
		case models.StatusPending:
			pending++
		}
	}

	today := now.Format("2006-01-02")
	var todays []*models.Booking
	for _, b := range state.Bookings {
		if b.Date == today {
			todays = append(todays, b)
		}
	}

	var sb strings.Builder
	fmt.Fprintf(&sb, "CLUB SHEET (%s)\n", now.Format("2006-01-02 15:04"))
	fmt.Fprintf(&sb, "Active members: %d | Pending: %d\n", active, pending)
	fmt.Fprintf(&sb, "Bookings today: %d\n", len(todays))
	for _, b := range todays {
		team := b.TeamName
		if team == "" {
			team = "-"
		}
		fmt.Fprintf(&sb, "- %s %s: %s, %s, %.2f (%s)\n",
			b.Date, b.Time, b.Location, team, b.Price, b.Status)
	}
	sb.WriteString("\nCash:\n")
	fmt.Fprintf(&sb, "Opening balance: %.2f\n", state.Cash.OpeningBalance)
	fmt.Fprintf(&sb, "Income today: %.2f\n", DayIncome(state, today))
	fmt.Fprintf(&sb, "Current balance: %.2f\n", CurrentBalance(state))
	if notes := strings.TrimSpace(state.Notes); notes != "" {
		fmt.Fprintf(&sb, "\nNotes:\n%s\n", notes)
	}
	return sb.String()
}
