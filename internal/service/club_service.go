// Package service wires the club engine to persistence. ClubService owns
// the shared application state; every mutation in the system goes through
// one of its methods, which validate input, apply the change through the
// club package, and rewrite the persisted snapshot.
package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"sort"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/tbrandao/clubsheet/internal/club"
	"github.com/tbrandao/clubsheet/internal/models"
	"github.com/tbrandao/clubsheet/internal/storage"
)

// ErrValidation marks a rejected form submission. State is untouched and
// the wrapped message is safe to show the user.
var ErrValidation = errors.New("validation failed")

// ErrNotFound marks an operation against an id that no longer exists.
var ErrNotFound = errors.New("not found")

// ClubService is the single mutation surface over the shared state.
// The mutex serializes handler access; every operation runs to completion
// under it, so a sync can never interleave with any other mutation.
// Accessors return copies of the stored records, never pointers into the
// shared state, so callers can encode them after the lock is released.
type ClubService struct {
	mu     sync.Mutex
	state  *models.AppState
	store  storage.Store
	review club.ReviewQueue
	now    func() time.Time
}

// New loads the persisted snapshot and builds the service over it. A
// snapshot that cannot be read falls back to an empty default state with a
// logged diagnostic; it is never fatal.
func New(ctx context.Context, store storage.Store) *ClubService {
	state, err := store.Load(ctx)
	if err != nil {
		slog.Warn("Stored snapshot unreadable, starting from empty state", "error", err)
		state = models.NewAppState()
	}
	return &ClubService{
		state: state,
		store: store,
		now:   time.Now,
	}
}

func (s *ClubService) persist(ctx context.Context) error {
	if err := s.store.Save(ctx, s.state); err != nil {
		slog.Error("Failed to persist snapshot", "error", err)
		return fmt.Errorf("failed to persist snapshot: %w", err)
	}
	return nil
}

// MemberInput is a member form submission.
type MemberInput struct {
	ID       string  `json:"id"`
	Name     string  `json:"name"`
	Phone    string  `json:"phone"`
	Position string  `json:"position"`
	Status   string  `json:"status"`
	Dues     float64 `json:"dues"`
}

// Members returns the directory filtered by a free-text query matched
// case-insensitively against name, phone, and position. An empty query
// returns everyone, in insertion order.
func (s *ClubService) Members(query string) []models.Member {
	s.mu.Lock()
	defer s.mu.Unlock()

	q := strings.ToLower(strings.TrimSpace(query))
	out := make([]models.Member, 0, len(s.state.Members))
	for _, m := range s.state.Members {
		if q == "" ||
			strings.Contains(strings.ToLower(m.Name), q) ||
			strings.Contains(strings.ToLower(m.Phone), q) ||
			strings.Contains(strings.ToLower(string(m.Position)), q) {
			out = append(out, *m)
		}
	}
	return out
}

// SaveMember creates a member, or updates one when the input carries an id.
func (s *ClubService) SaveMember(ctx context.Context, in MemberInput) (models.Member, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if strings.TrimSpace(in.Name) == "" {
		return models.Member{}, fmt.Errorf("%w: member name is required", ErrValidation)
	}
	if in.Dues < 0 {
		return models.Member{}, fmt.Errorf("%w: dues must not be negative", ErrValidation)
	}

	dir := club.NewDirectory(s.state)
	fields := models.Member{
		Name:     in.Name,
		Phone:    strings.TrimSpace(in.Phone),
		Position: models.ParsePosition(in.Position),
		Status:   models.ParseMemberStatus(in.Status),
		Dues:     in.Dues,
	}

	var m *models.Member
	if in.ID != "" {
		if !dir.Update(in.ID, fields) {
			return models.Member{}, fmt.Errorf("%w: member %s", ErrNotFound, in.ID)
		}
		m = dir.Get(in.ID)
	} else {
		m = dir.Create(in.Name)
		dir.Update(m.ID, fields)
	}

	if err := s.persist(ctx); err != nil {
		return models.Member{}, err
	}
	slog.Info("Member saved", "member_id", m.ID, "name", m.Name)
	return *m, nil
}

// DeleteMember removes a member and unlinks every roster entry that
// referenced it.
func (s *ClubService) DeleteMember(ctx context.Context, id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if !club.NewDirectory(s.state).Delete(id) {
		return fmt.Errorf("%w: member %s", ErrNotFound, id)
	}
	if err := s.persist(ctx); err != nil {
		return err
	}
	slog.Info("Member deleted", "member_id", id)
	return nil
}

// TeamInput is a team form submission. Titulars and Reserves are
// comma-separated name lists.
type TeamInput struct {
	ID       string `json:"id"`
	Name     string `json:"name"`
	Category string `json:"category"`
	KitColor string `json:"kit_color"`
	Titulars string `json:"titulars"`
	Reserves string `json:"reserves"`
}

// Teams returns all teams in insertion order.
func (s *ClubService) Teams() []models.Team {
	s.mu.Lock()
	defer s.mu.Unlock()

	out := make([]models.Team, 0, len(s.state.Teams))
	for _, t := range s.state.Teams {
		out = append(out, copyTeam(t))
	}
	return out
}

// copyTeam clones the team along with its roster slices, which would
// otherwise alias the stored entries.
func copyTeam(t *models.Team) models.Team {
	c := *t
	c.Titulars = append([]models.RosterEntry{}, t.Titulars...)
	c.Reserves = append([]models.RosterEntry{}, t.Reserves...)
	return c
}

// SaveTeam creates or updates a team, then syncs its roster against the
// directory. Members the sync had to create land in the review queue,
// replacing whatever was queued before; the returned rows are that queue.
func (s *ClubService) SaveTeam(ctx context.Context, in TeamInput) (models.Team, []club.ReviewRow, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if strings.TrimSpace(in.Name) == "" {
		return models.Team{}, nil, fmt.Errorf("%w: team name is required", ErrValidation)
	}

	var team *models.Team
	if in.ID != "" {
		team = s.findTeam(in.ID)
		if team == nil {
			return models.Team{}, nil, fmt.Errorf("%w: team %s", ErrNotFound, in.ID)
		}
	} else {
		team = &models.Team{ID: uuid.New().String()}
		s.state.Teams = append(s.state.Teams, team)
	}

	team.Name = strings.TrimSpace(in.Name)
	team.Category = strings.TrimSpace(in.Category)
	team.KitColor = strings.TrimSpace(in.KitColor)
	// Entries are rebuilt from the submitted lists with no links; the sync
	// pass below re-links them by name, so unchanged names keep their
	// member records.
	team.Titulars = club.ParseNames(in.Titulars)
	team.Reserves = club.ParseNames(in.Reserves)

	dir := club.NewDirectory(s.state)
	created := club.SyncTeam(team, dir)
	s.review.Load(created)

	if err := s.persist(ctx); err != nil {
		return models.Team{}, nil, err
	}
	slog.Info("Team saved", "team_id", team.ID, "name", team.Name,
		"titulars", len(team.Titulars), "reserves", len(team.Reserves),
		"members_created", len(created))
	return copyTeam(team), s.review.Rows(), nil
}

// DeleteTeam removes a team. Members stay in the directory.
func (s *ClubService) DeleteTeam(ctx context.Context, id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i, t := range s.state.Teams {
		if t.ID == id {
			s.state.Teams = append(s.state.Teams[:i], s.state.Teams[i+1:]...)
			if err := s.persist(ctx); err != nil {
				return err
			}
			slog.Info("Team deleted", "team_id", id)
			return nil
		}
	}
	return fmt.Errorf("%w: team %s", ErrNotFound, id)
}

// PromoteEntry moves a reserve into the titulars; DemoteEntry the reverse.
// The entry keeps its name and member link and lands at the destination's
// end.
func (s *ClubService) PromoteEntry(ctx context.Context, teamID string, index int) error {
	return s.moveEntry(ctx, teamID, index, club.Promote)
}

// DemoteEntry moves a titular onto the reserves list.
func (s *ClubService) DemoteEntry(ctx context.Context, teamID string, index int) error {
	return s.moveEntry(ctx, teamID, index, club.Demote)
}

func (s *ClubService) moveEntry(ctx context.Context, teamID string, index int, op func(*models.Team, int) bool) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	team := s.findTeam(teamID)
	if team == nil {
		return fmt.Errorf("%w: team %s", ErrNotFound, teamID)
	}
	if !op(team, index) {
		return fmt.Errorf("%w: roster index %d out of range", ErrValidation, index)
	}
	return s.persist(ctx)
}

// SyncAllTeams reconciles every team against the directory in one batch and
// loads the review queue with whatever had to be created.
func (s *ClubService) SyncAllTeams(ctx context.Context) ([]club.ReviewRow, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	created := club.SyncAll(club.NewDirectory(s.state), s.state.Teams)
	s.review.Load(created)
	if err := s.persist(ctx); err != nil {
		return nil, err
	}
	slog.Info("All teams synced", "teams", len(s.state.Teams), "members_created", len(created))
	return s.review.Rows(), nil
}

// ReviewRows returns the pending reconciliation rows from the latest sync.
func (s *ClubService) ReviewRows() []club.ReviewRow {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.review.Rows()
}

// CommitReview writes the edited rows back into the directory and clears
// the queue.
func (s *ClubService) CommitReview(ctx context.Context, edits []club.ReviewRow) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range edits {
		if edits[i].Dues < 0 {
			return fmt.Errorf("%w: dues must not be negative", ErrValidation)
		}
		edits[i].Position = models.ParsePosition(string(edits[i].Position))
		edits[i].Status = models.ParseMemberStatus(string(edits[i].Status))
	}
	s.review.Commit(edits, club.NewDirectory(s.state))
	if err := s.persist(ctx); err != nil {
		return err
	}
	slog.Info("Review committed", "rows", len(edits))
	return nil
}

func (s *ClubService) findTeam(id string) *models.Team {
	for _, t := range s.state.Teams {
		if t.ID == id {
			return t
		}
	}
	return nil
}

// BookingInput is a booking form submission.
type BookingInput struct {
	ID       string  `json:"id"`
	Date     string  `json:"date"`
	Time     string  `json:"time"`
	Location string  `json:"location"`
	TeamName string  `json:"team_name"`
	Price    float64 `json:"price"`
	Status   string  `json:"status"`
}

// Bookings returns all bookings sorted by date then time.
func (s *ClubService) Bookings() []models.Booking {
	s.mu.Lock()
	defer s.mu.Unlock()

	out := make([]models.Booking, 0, len(s.state.Bookings))
	for _, b := range s.state.Bookings {
		out = append(out, *b)
	}
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].Date+out[i].Time < out[j].Date+out[j].Time
	})
	return out
}

// SaveBooking creates a booking, or updates one when the input carries an
// id.
func (s *ClubService) SaveBooking(ctx context.Context, in BookingInput) (models.Booking, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if in.Date == "" || in.Time == "" || strings.TrimSpace(in.Location) == "" {
		return models.Booking{}, fmt.Errorf("%w: booking date, time and location are required", ErrValidation)
	}
	if in.Price < 0 {
		return models.Booking{}, fmt.Errorf("%w: price must not be negative", ErrValidation)
	}

	b := &models.Booking{
		Date:     in.Date,
		Time:     in.Time,
		Location: strings.TrimSpace(in.Location),
		TeamName: strings.TrimSpace(in.TeamName),
		Price:    in.Price,
		Status:   models.ParseBookingStatus(in.Status),
	}

	if in.ID != "" {
		existing := s.findBooking(in.ID)
		if existing == nil {
			return models.Booking{}, fmt.Errorf("%w: booking %s", ErrNotFound, in.ID)
		}
		b.ID = in.ID
		*existing = *b
		b = existing
	} else {
		b.ID = uuid.New().String()
		s.state.Bookings = append(s.state.Bookings, b)
	}

	if err := s.persist(ctx); err != nil {
		return models.Booking{}, err
	}
	slog.Info("Booking saved", "booking_id", b.ID, "date", b.Date, "location", b.Location)
	return *b, nil
}

// DeleteBooking removes a booking.
func (s *ClubService) DeleteBooking(ctx context.Context, id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i, b := range s.state.Bookings {
		if b.ID == id {
			s.state.Bookings = append(s.state.Bookings[:i], s.state.Bookings[i+1:]...)
			if err := s.persist(ctx); err != nil {
				return err
			}
			slog.Info("Booking deleted", "booking_id", id)
			return nil
		}
	}
	return fmt.Errorf("%w: booking %s", ErrNotFound, id)
}

func (s *ClubService) findBooking(id string) *models.Booking {
	for _, b := range s.state.Bookings {
		if b.ID == id {
			return b
		}
	}
	return nil
}

// LedgerInput is a cash movement form submission.
type LedgerInput struct {
	ID          string  `json:"id"`
	Date        string  `json:"date"`
	Description string  `json:"description"`
	Kind        string  `json:"kind"`
	Amount      float64 `json:"amount"`
	Responsible string  `json:"responsible"`
}

// Ledger returns all entries sorted by date.
func (s *ClubService) Ledger() []models.LedgerEntry {
	s.mu.Lock()
	defer s.mu.Unlock()

	out := make([]models.LedgerEntry, 0, len(s.state.Ledger))
	for _, e := range s.state.Ledger {
		out = append(out, *e)
	}
	sort.SliceStable(out, func(i, j int) bool { return out[i].Date < out[j].Date })
	return out
}

// SaveLedgerEntry creates an entry, or updates one when the input carries
// an id.
func (s *ClubService) SaveLedgerEntry(ctx context.Context, in LedgerInput) (models.LedgerEntry, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if in.Date == "" || strings.TrimSpace(in.Description) == "" {
		return models.LedgerEntry{}, fmt.Errorf("%w: ledger date and description are required", ErrValidation)
	}
	kind, ok := models.ParseLedgerKind(in.Kind)
	if !ok {
		return models.LedgerEntry{}, fmt.Errorf("%w: ledger kind must be Income, Expense or Pending", ErrValidation)
	}
	if in.Amount < 0 {
		return models.LedgerEntry{}, fmt.Errorf("%w: amount must not be negative", ErrValidation)
	}

	e := &models.LedgerEntry{
		Date:        in.Date,
		Description: strings.TrimSpace(in.Description),
		Kind:        kind,
		Amount:      in.Amount,
		Responsible: strings.TrimSpace(in.Responsible),
	}

	if in.ID != "" {
		existing := s.findLedgerEntry(in.ID)
		if existing == nil {
			return models.LedgerEntry{}, fmt.Errorf("%w: ledger entry %s", ErrNotFound, in.ID)
		}
		e.ID = in.ID
		*existing = *e
		e = existing
	} else {
		e.ID = uuid.New().String()
		s.state.Ledger = append(s.state.Ledger, e)
	}

	if err := s.persist(ctx); err != nil {
		return models.LedgerEntry{}, err
	}
	slog.Info("Ledger entry saved", "entry_id", e.ID, "kind", e.Kind, "amount", e.Amount)
	return *e, nil
}

// DeleteLedgerEntry removes a cash movement.
func (s *ClubService) DeleteLedgerEntry(ctx context.Context, id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i, e := range s.state.Ledger {
		if e.ID == id {
			s.state.Ledger = append(s.state.Ledger[:i], s.state.Ledger[i+1:]...)
			if err := s.persist(ctx); err != nil {
				return err
			}
			slog.Info("Ledger entry deleted", "entry_id", id)
			return nil
		}
	}
	return fmt.Errorf("%w: ledger entry %s", ErrNotFound, id)
}

func (s *ClubService) findLedgerEntry(id string) *models.LedgerEntry {
	for _, e := range s.state.Ledger {
		if e.ID == id {
			return e
		}
	}
	return nil
}

// CashInput updates the opening balance and free-text notes.
type CashInput struct {
	OpeningBalance float64 `json:"opening_balance"`
	Notes          string  `json:"notes"`
}

// CashSummary is the derived cash position.
type CashSummary struct {
	OpeningBalance float64 `json:"opening_balance"`
	CurrentBalance float64 `json:"current_balance"`
	DayIncome      float64 `json:"day_income"`
	Notes          string  `json:"notes"`
}

// SetCash stores the carried-over opening balance and notes.
func (s *ClubService) SetCash(ctx context.Context, in CashInput) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.state.Cash.OpeningBalance = in.OpeningBalance
	s.state.Notes = in.Notes
	if err := s.persist(ctx); err != nil {
		return err
	}
	slog.Info("Cash state saved", "opening_balance", in.OpeningBalance)
	return nil
}

// Cash derives the current balance and today's income.
func (s *ClubService) Cash() CashSummary {
	s.mu.Lock()
	defer s.mu.Unlock()

	return CashSummary{
		OpeningBalance: s.state.Cash.OpeningBalance,
		CurrentBalance: club.CurrentBalance(s.state),
		DayIncome:      club.DayIncome(s.state, s.now().Format("2006-01-02")),
		Notes:          s.state.Notes,
	}
}

// Summary renders the plain-text daily summary for the share collaborators.
func (s *ClubService) Summary() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return club.DailySummary(s.state, s.now())
}

// Snapshot hands the export/report collaborators a read-only view of the
// state under the service lock.
func (s *ClubService) Snapshot(view func(state *models.AppState)) {
	s.mu.Lock()
	defer s.mu.Unlock()
	view(s.state)
}
