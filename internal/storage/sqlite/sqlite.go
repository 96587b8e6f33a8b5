// Package sqlite provides a SQLite-backed implementation of the
// storage.Store interface. The whole application state is one snapshot:
// Save rewrites every table inside a single transaction, Load reads them
// back in stored order.
package sqlite

import (
	"context"
	"database/sql"
	"fmt"
	"os"
	"path/filepath"

	_ "modernc.org/sqlite" // Pure Go SQLite driver (no CGO)

	"github.com/tbrandao/clubsheet/internal/models"
	"github.com/tbrandao/clubsheet/internal/storage"
)

// Ensure SQLiteStore implements storage.Store
var _ storage.Store = (*SQLiteStore)(nil)

// SQLiteStore implements storage.Store using SQLite.
type SQLiteStore struct {
	db *sql.DB
}

// New creates a new SQLiteStore with the given database path.
// It creates the parent directories and runs migrations automatically.
func New(dbPath string) (*SQLiteStore, error) {
	dir := filepath.Dir(dbPath)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return nil, fmt.Errorf("failed to create database directory: %w", err)
	}

	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	if _, err := db.Exec("PRAGMA foreign_keys = ON"); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to enable foreign keys: %w", err)
	}

	if err := runMigrations(db); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to run migrations: %w", err)
	}

	return &SQLiteStore{db: db}, nil
}

// Close closes the database connection.
func (s *SQLiteStore) Close() error {
	return s.db.Close()
}

// Save rewrites the full snapshot in one transaction: every table is
// cleared and repopulated from the in-memory state. Last full write wins.
func (s *SQLiteStore) Save(ctx context.Context, state *models.AppState) error {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	for _, table := range []string{"roster_entries", "teams", "members", "bookings", "ledger_entries", "club_state"} {
		if _, err := tx.ExecContext(ctx, "DELETE FROM "+table); err != nil {
			return fmt.Errorf("failed to clear %s: %w", table, err)
		}
	}

	for i, m := range state.Members {
		_, err = tx.ExecContext(ctx,
			"INSERT INTO members (id, seq, name, phone, position, status, dues) VALUES (?, ?, ?, ?, ?, ?, ?)",
			m.ID, i, m.Name, m.Phone, string(m.Position), string(m.Status), m.Dues,
		)
		if err != nil {
			return fmt.Errorf("failed to insert member: %w", err)
		}
	}

	for i, t := range state.Teams {
		_, err = tx.ExecContext(ctx,
			"INSERT INTO teams (id, seq, name, category, kit_color) VALUES (?, ?, ?, ?, ?)",
			t.ID, i, t.Name, t.Category, t.KitColor,
		)
		if err != nil {
			return fmt.Errorf("failed to insert team: %w", err)
		}
		if err := insertEntries(ctx, tx, t.ID, "titular", t.Titulars); err != nil {
			return err
		}
		if err := insertEntries(ctx, tx, t.ID, "reserve", t.Reserves); err != nil {
			return err
		}
	}

	for i, b := range state.Bookings {
		_, err = tx.ExecContext(ctx,
			"INSERT INTO bookings (id, seq, date, time, location, team_name, price, status) VALUES (?, ?, ?, ?, ?, ?, ?, ?)",
			b.ID, i, b.Date, b.Time, b.Location, b.TeamName, b.Price, string(b.Status),
		)
		if err != nil {
			return fmt.Errorf("failed to insert booking: %w", err)
		}
	}

	for i, e := range state.Ledger {
		_, err = tx.ExecContext(ctx,
			"INSERT INTO ledger_entries (id, seq, date, description, kind, amount, responsible) VALUES (?, ?, ?, ?, ?, ?, ?)",
			e.ID, i, e.Date, e.Description, string(e.Kind), e.Amount, e.Responsible,
		)
		if err != nil {
			return fmt.Errorf("failed to insert ledger entry: %w", err)
		}
	}

	_, err = tx.ExecContext(ctx,
		"INSERT INTO club_state (id, opening_balance, notes) VALUES (1, ?, ?)",
		state.Cash.OpeningBalance, state.Notes,
	)
	if err != nil {
		return fmt.Errorf("failed to insert club state: %w", err)
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit transaction: %w", err)
	}
	return nil
}

func insertEntries(ctx context.Context, tx *sql.Tx, teamID, tier string, entries []models.RosterEntry) error {
	for i, e := range entries {
		_, err := tx.ExecContext(ctx,
			"INSERT INTO roster_entries (team_id, tier, seq, name, member_id) VALUES (?, ?, ?, ?, ?)",
			teamID, tier, i, e.Name, e.MemberID,
		)
		if err != nil {
			return fmt.Errorf("failed to insert roster entry: %w", err)
		}
	}
	return nil
}

// Load reads the full snapshot back. A fresh database yields the empty
// default state.
func (s *SQLiteStore) Load(ctx context.Context) (*models.AppState, error) {
	state := models.NewAppState()

	rows, err := s.db.QueryContext(ctx,
		"SELECT id, name, phone, position, status, dues FROM members ORDER BY seq")
	if err != nil {
		return nil, fmt.Errorf("failed to get members: %w", err)
	}
	defer rows.Close()
	for rows.Next() {
		m := &models.Member{}
		var position, status string
		if err := rows.Scan(&m.ID, &m.Name, &m.Phone, &position, &status, &m.Dues); err != nil {
			return nil, fmt.Errorf("failed to scan member: %w", err)
		}
		m.Position = models.ParsePosition(position)
		m.Status = models.ParseMemberStatus(status)
		state.Members = append(state.Members, m)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate members: %w", err)
	}

	teamRows, err := s.db.QueryContext(ctx,
		"SELECT id, name, category, kit_color FROM teams ORDER BY seq")
	if err != nil {
		return nil, fmt.Errorf("failed to get teams: %w", err)
	}
	defer teamRows.Close()
	for teamRows.Next() {
		t := &models.Team{}
		if err := teamRows.Scan(&t.ID, &t.Name, &t.Category, &t.KitColor); err != nil {
			return nil, fmt.Errorf("failed to scan team: %w", err)
		}
		state.Teams = append(state.Teams, t)
	}
	if err := teamRows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate teams: %w", err)
	}

	for _, t := range state.Teams {
		entryRows, err := s.db.QueryContext(ctx,
			"SELECT tier, name, member_id FROM roster_entries WHERE team_id = ? ORDER BY tier, seq",
			t.ID,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to get roster entries: %w", err)
		}
		for entryRows.Next() {
			var tier string
			var e models.RosterEntry
			if err := entryRows.Scan(&tier, &e.Name, &e.MemberID); err != nil {
				entryRows.Close()
				return nil, fmt.Errorf("failed to scan roster entry: %w", err)
			}
			if tier == "titular" {
				t.Titulars = append(t.Titulars, e)
			} else {
				t.Reserves = append(t.Reserves, e)
			}
		}
		entryRows.Close()
		if err := entryRows.Err(); err != nil {
			return nil, fmt.Errorf("failed to iterate roster entries: %w", err)
		}
	}

	bookingRows, err := s.db.QueryContext(ctx,
		"SELECT id, date, time, location, team_name, price, status FROM bookings ORDER BY seq")
	if err != nil {
		return nil, fmt.Errorf("failed to get bookings: %w", err)
	}
	defer bookingRows.Close()
	for bookingRows.Next() {
		b := &models.Booking{}
		var status string
		if err := bookingRows.Scan(&b.ID, &b.Date, &b.Time, &b.Location, &b.TeamName, &b.Price, &status); err != nil {
			return nil, fmt.Errorf("failed to scan booking: %w", err)
		}
		b.Status = models.ParseBookingStatus(status)
		state.Bookings = append(state.Bookings, b)
	}
	if err := bookingRows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate bookings: %w", err)
	}

	ledgerRows, err := s.db.QueryContext(ctx,
		"SELECT id, date, description, kind, amount, responsible FROM ledger_entries ORDER BY seq")
	if err != nil {
		return nil, fmt.Errorf("failed to get ledger entries: %w", err)
	}
	defer ledgerRows.Close()
	for ledgerRows.Next() {
		e := &models.LedgerEntry{}
		var kind string
		if err := ledgerRows.Scan(&e.ID, &e.Date, &e.Description, &kind, &e.Amount, &e.Responsible); err != nil {
			return nil, fmt.Errorf("failed to scan ledger entry: %w", err)
		}
		parsed, ok := models.ParseLedgerKind(kind)
		if !ok {
			// Unknown kind in an old snapshot: keep the row visible but
			// out of balance math.
			parsed = models.KindPending
		}
		e.Kind = parsed
		state.Ledger = append(state.Ledger, e)
	}
	if err := ledgerRows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate ledger entries: %w", err)
	}

	err = s.db.QueryRowContext(ctx,
		"SELECT opening_balance, notes FROM club_state WHERE id = 1",
	).Scan(&state.Cash.OpeningBalance, &state.Notes)
	if err != nil && err != sql.ErrNoRows {
		return nil, fmt.Errorf("failed to get club state: %w", err)
	}

	return state, nil
}
