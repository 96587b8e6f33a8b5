package export

import (
	"strings"
	"testing"

	"github.com/tbrandao/clubsheet/internal/models"
)

func TestMembersCSV(t *testing.T) {
	members := []*models.Member{
		{Name: "Ana Silva", Phone: "555-1", Position: models.PositionGoalkeeper, Status: models.StatusActive, Dues: 25},
		{Name: `Carlos "Kaka" Dias`, Position: models.PositionOther, Status: models.StatusPending},
	}

	out, err := MembersCSV(members)
	if err != nil {
		t.Fatalf("MembersCSV failed: %v", err)
	}

	lines := strings.Split(strings.TrimRight(out, "\n"), "\n")
	if len(lines) != 3 {
		t.Fatalf("line count = %d, want header + 2 rows:\n%s", len(lines), out)
	}
	if lines[0] != "Name,Phone,Position,Status,Dues" {
		t.Errorf("header = %q", lines[0])
	}
	if lines[1] != "Ana Silva,555-1,Goalkeeper,Active,25.00" {
		t.Errorf("row 1 = %q", lines[1])
	}
	// Embedded quotes doubled per RFC 4180.
	if lines[2] != `"Carlos ""Kaka"" Dias",,Other,Pending,0.00` {
		t.Errorf("row 2 = %q", lines[2])
	}
}

func TestMembersCSVEmptyDirectory(t *testing.T) {
	out, err := MembersCSV(nil)
	if err != nil {
		t.Fatalf("MembersCSV failed: %v", err)
	}
	if strings.TrimRight(out, "\n") != "Name,Phone,Position,Status,Dues" {
		t.Errorf("expected header only, got %q", out)
	}
}

func TestBuildMonthReport(t *testing.T) {
	state := models.NewAppState()
	state.Cash.OpeningBalance = 100
	state.Ledger = []*models.LedgerEntry{
		{Description: "dues", Date: "2026-08-01", Kind: models.KindIncome, Amount: 50},
		{Description: "court rent", Date: "2026-08-15", Kind: models.KindExpense, Amount: 30},
		{Description: "late dues", Date: "2026-08-20", Kind: models.KindPending, Amount: 10},
		{Description: "old income", Date: "2026-07-01", Kind: models.KindIncome, Amount: 500},
	}
	state.Bookings = []*models.Booking{
		{Location: "Court 1", Date: "2026-08-10"},
		{Location: "Court 2", Date: "2026-07-10"},
	}

	r, err := BuildMonthReport(state, "2026-08")
	if err != nil {
		t.Fatalf("BuildMonthReport failed: %v", err)
	}

	if len(r.Ledger) != 3 || len(r.Bookings) != 1 {
		t.Errorf("filtered counts: ledger=%d bookings=%d", len(r.Ledger), len(r.Bookings))
	}
	if r.Income != 50 || r.Expenses != 30 || r.Pending != 10 {
		t.Errorf("totals: income=%v expenses=%v pending=%v", r.Income, r.Expenses, r.Pending)
	}
	// Balances are global: the July income still counts.
	if r.OpeningBalance != 100 || r.CurrentBalance != 620 {
		t.Errorf("balances: opening=%v current=%v", r.OpeningBalance, r.CurrentBalance)
	}
}

func TestBuildMonthReportRejectsBadMonth(t *testing.T) {
	state := models.NewAppState()
	for _, month := range []string{"", "2026", "2026-13", "08-2026", "2026-8"} {
		if _, err := BuildMonthReport(state, month); err == nil {
			t.Errorf("month %q accepted, want error", month)
		}
	}
}
