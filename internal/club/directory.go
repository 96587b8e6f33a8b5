package club

import (
	"strings"

	"github.com/google/uuid"

	"github.com/tbrandao/clubsheet/internal/models"
)

// Directory is the authoritative member collection, a view over the shared
// application state. All member mutations go through it so the roster
// linkage invariants stay enforceable.
type Directory struct {
	state *models.AppState
}

// NewDirectory wraps the application state's member collection.
func NewDirectory(state *models.AppState) *Directory {
	return &Directory{state: state}
}

// Members returns the directory contents in insertion order.
func (d *Directory) Members() []*models.Member {
	return d.state.Members
}

// Get resolves a member id, or nil if it no longer exists.
func (d *Directory) Get(id string) *models.Member {
	if id == "" {
		return nil
	}
	for _, m := range d.state.Members {
		if m.ID == id {
			return m
		}
	}
	return nil
}

// FindByName returns the first member whose normalized name equals the
// normalized input, in insertion order. If several members share a
// normalized name the earliest created wins; that tie-break is deliberate,
// not arbitrary. Returns nil on no match or empty input.
func (d *Directory) FindByName(name string) *models.Member {
	key := NormalizeName(name)
	if key == "" {
		return nil
	}
	for _, m := range d.state.Members {
		if NormalizeName(m.Name) == key {
			return m
		}
	}
	return nil
}

// Create allocates a new member with default fields (position Other, status
// Active, zero dues, no phone) and appends it to the directory. It never
// fails; duplicate names are allowed.
func (d *Directory) Create(name string) *models.Member {
	m := &models.Member{
		ID:       uuid.New().String(),
		Name:     strings.TrimSpace(name),
		Position: models.PositionOther,
		Status:   models.StatusActive,
	}
	d.state.Members = append(d.state.Members, m)
	return m
}

// Update replaces the mutable fields of the member with the given id.
// Returns false if the id is unknown; the name is part of the update so
// form edits can rename.
func (d *Directory) Update(id string, fields models.Member) bool {
	m := d.Get(id)
	if m == nil {
		return false
	}
	m.Name = strings.TrimSpace(fields.Name)
	m.Phone = fields.Phone
	m.Position = fields.Position
	m.Status = fields.Status
	m.Dues = fields.Dues
	return true
}

// Delete removes the member and clears the MemberID on every roster entry
// across every team that referenced it. Roster entries themselves are never
// removed; they just become unlinked. Returns false if the id is unknown.
func (d *Directory) Delete(id string) bool {
	idx := -1
	for i, m := range d.state.Members {
		if m.ID == id {
			idx = i
			break
		}
	}
	if idx < 0 {
		return false
	}
	d.state.Members = append(d.state.Members[:idx], d.state.Members[idx+1:]...)

	for _, t := range d.state.Teams {
		unlink(t.Titulars, id)
		unlink(t.Reserves, id)
	}
	return true
}

func unlink(entries []models.RosterEntry, memberID string) {
	for i := range entries {
		if entries[i].MemberID == memberID {
			entries[i].MemberID = ""
		}
	}
}
