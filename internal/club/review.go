package club

import "github.com/tbrandao/clubsheet/internal/models"

// ReviewRow is one freshly created member awaiting detail completion. Name
// is display-only; the editable fields start at directory defaults.
type ReviewRow struct {
	MemberID string              `json:"member_id"`
	Name     string              `json:"name"`
	Phone    string              `json:"phone"`
	Position models.Position     `json:"position"`
	Status   models.MemberStatus `json:"status"`
	Dues     float64             `json:"dues"`
}

// ReviewQueue holds the members created by the most recent sync run for a
// follow-up data-completion pass. Each Load replaces the previous contents,
// it never accumulates across runs.
type ReviewQueue struct {
	rows []ReviewRow
}

// Load replaces the queue contents with rows for the given members.
func (q *ReviewQueue) Load(created []*models.Member) {
	q.rows = make([]ReviewRow, 0, len(created))
	for _, m := range created {
		q.rows = append(q.rows, ReviewRow{
			MemberID: m.ID,
			Name:     m.Name,
			Phone:    m.Phone,
			Position: m.Position,
			Status:   m.Status,
			Dues:     m.Dues,
		})
	}
}

// Rows returns a copy of the queued rows in creation order.
func (q *ReviewQueue) Rows() []ReviewRow {
	return append([]ReviewRow(nil), q.rows...)
}

// Empty reports whether there is anything to review; callers may skip the
// review step entirely when a sync created nothing.
func (q *ReviewQueue) Empty() bool {
	return len(q.rows) == 0
}

// Commit writes the edited rows back into the directory and clears the
// queue. Only members actually queued by the last sync are written; edits
// for other ids, and for members deleted since the sync, are skipped. The
// row's name is not written back, only the completion fields are.
func (q *ReviewQueue) Commit(edits []ReviewRow, dir *Directory) {
	queued := make(map[string]bool, len(q.rows))
	for _, row := range q.rows {
		queued[row.MemberID] = true
	}
	for _, edit := range edits {
		if !queued[edit.MemberID] {
			continue
		}
		m := dir.Get(edit.MemberID)
		if m == nil {
			continue
		}
		m.Phone = edit.Phone
		m.Position = edit.Position
		m.Status = edit.Status
		m.Dues = edit.Dues
	}
	q.rows = nil
}
