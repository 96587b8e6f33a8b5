// Package export assembles the read-only snapshots handed to the export
// collaborators: the member CSV and the month report. Rendering beyond CSV
// text (PDF, images) is the consumer's problem; this package only supplies
// the filtered and derived data.
package export

import (
	"bytes"
	"encoding/csv"
	"fmt"
	"strconv"

	"github.com/tbrandao/clubsheet/internal/models"
)

// csvHeader is the fixed member-export column set.
var csvHeader = []string{"Name", "Phone", "Position", "Status", "Dues"}

// MembersCSV renders the directory as CSV text with a header row. Fields
// are quoted per RFC 4180 (double-quote escaping) by encoding/csv.
func MembersCSV(members []*models.Member) (string, error) {
	var buf bytes.Buffer
	w := csv.NewWriter(&buf)

	if err := w.Write(csvHeader); err != nil {
		return "", fmt.Errorf("failed to write CSV header: %w", err)
	}
	for _, m := range members {
		row := []string{
			m.Name,
			m.Phone,
			string(m.Position),
			string(m.Status),
			strconv.FormatFloat(m.Dues, 'f', 2, 64),
		}
		if err := w.Write(row); err != nil {
			return "", fmt.Errorf("failed to write CSV row: %w", err)
		}
	}
	w.Flush()
	if err := w.Error(); err != nil {
		return "", fmt.Errorf("failed to flush CSV: %w", err)
	}
	return buf.String(), nil
}
