// Package api exposes the form entry points and read views as a local JSON
// API. Each handler validates through the service layer; a rejected
// submission maps to 400 with a user-visible message and leaves state
// unchanged.
package api

import (
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"net/http"

	"github.com/tbrandao/clubsheet/internal/service"
)

// Server holds the handler dependencies.
type Server struct {
	svc *service.ClubService
}

// NewServer creates the API server over the club service.
func NewServer(svc *service.ClubService) *Server {
	return &Server{svc: svc}
}

// Routes registers every endpoint on a fresh mux.
func (s *Server) Routes() *http.ServeMux {
	mux := http.NewServeMux()

	mux.HandleFunc("GET /api/members", s.listMembers)
	mux.HandleFunc("POST /api/members", s.saveMember)
	mux.HandleFunc("POST /api/members/delete", s.deleteMember)

	mux.HandleFunc("GET /api/teams", s.listTeams)
	mux.HandleFunc("POST /api/teams", s.saveTeam)
	mux.HandleFunc("POST /api/teams/delete", s.deleteTeam)
	mux.HandleFunc("POST /api/teams/sync", s.syncTeams)
	mux.HandleFunc("POST /api/teams/promote", s.promote)
	mux.HandleFunc("POST /api/teams/demote", s.demote)

	mux.HandleFunc("GET /api/review", s.listReview)
	mux.HandleFunc("POST /api/review/commit", s.commitReview)

	mux.HandleFunc("GET /api/bookings", s.listBookings)
	mux.HandleFunc("POST /api/bookings", s.saveBooking)
	mux.HandleFunc("POST /api/bookings/delete", s.deleteBooking)

	mux.HandleFunc("GET /api/ledger", s.listLedger)
	mux.HandleFunc("POST /api/ledger", s.saveLedgerEntry)
	mux.HandleFunc("POST /api/ledger/delete", s.deleteLedgerEntry)

	mux.HandleFunc("GET /api/cash", s.getCash)
	mux.HandleFunc("POST /api/cash", s.setCash)

	mux.HandleFunc("GET /api/report", s.monthReport)
	mux.HandleFunc("GET /api/export/members.csv", s.exportMembersCSV)
	mux.HandleFunc("GET /api/share/whatsapp", s.shareWhatsApp)

	return mux
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		slog.Error("Failed to encode response", "error", err)
	}
}

// writeError maps service errors onto HTTP statuses. Validation and
// not-found messages are user-visible; anything else is reported as an
// internal error without leaking details.
func writeError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, service.ErrValidation):
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": err.Error()})
	case errors.Is(err, service.ErrNotFound):
		writeJSON(w, http.StatusNotFound, map[string]string{"error": err.Error()})
	default:
		slog.Error("Request failed", "error", err)
		writeJSON(w, http.StatusInternalServerError, map[string]string{"error": "internal error"})
	}
}

// decode reads a JSON body into v, reporting malformed input as a
// validation failure.
func decode(r *http.Request, v any) error {
	if err := json.NewDecoder(r.Body).Decode(v); err != nil {
		return fmt.Errorf("%w: malformed request body", service.ErrValidation)
	}
	return nil
}
