package api

import (
	"context"
	"fmt"
	"net/http"

	"github.com/tbrandao/clubsheet/internal/club"
	"github.com/tbrandao/clubsheet/internal/export"
	"github.com/tbrandao/clubsheet/internal/models"
	"github.com/tbrandao/clubsheet/internal/service"
	"github.com/tbrandao/clubsheet/internal/share"
)

type idRequest struct {
	ID string `json:"id"`
}

type entryRequest struct {
	TeamID string `json:"team_id"`
	Index  int    `json:"index"`
}

func (s *Server) listMembers(w http.ResponseWriter, r *http.Request) {
	members := s.svc.Members(r.URL.Query().Get("q"))
	writeJSON(w, http.StatusOK, members)
}

func (s *Server) saveMember(w http.ResponseWriter, r *http.Request) {
	var in service.MemberInput
	if err := decode(r, &in); err != nil {
		writeError(w, err)
		return
	}
	m, err := s.svc.SaveMember(r.Context(), in)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, m)
}

func (s *Server) deleteMember(w http.ResponseWriter, r *http.Request) {
	var req idRequest
	if err := decode(r, &req); err != nil {
		writeError(w, err)
		return
	}
	if err := s.svc.DeleteMember(r.Context(), req.ID); err != nil {
		writeError(w, err)
		return
	}
	w.WriteHeader(http.StatusOK)
}

func (s *Server) listTeams(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, s.svc.Teams())
}

// teamResponse pairs the saved team with the review rows produced by its
// sync, so the caller knows whether a review step is needed.
type teamResponse struct {
	Team   models.Team      `json:"team"`
	Review []club.ReviewRow `json:"review"`
}

func (s *Server) saveTeam(w http.ResponseWriter, r *http.Request) {
	var in service.TeamInput
	if err := decode(r, &in); err != nil {
		writeError(w, err)
		return
	}
	team, review, err := s.svc.SaveTeam(r.Context(), in)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, teamResponse{Team: team, Review: review})
}

func (s *Server) deleteTeam(w http.ResponseWriter, r *http.Request) {
	var req idRequest
	if err := decode(r, &req); err != nil {
		writeError(w, err)
		return
	}
	if err := s.svc.DeleteTeam(r.Context(), req.ID); err != nil {
		writeError(w, err)
		return
	}
	w.WriteHeader(http.StatusOK)
}

func (s *Server) syncTeams(w http.ResponseWriter, r *http.Request) {
	review, err := s.svc.SyncAllTeams(r.Context())
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{"review": review})
}

func (s *Server) promote(w http.ResponseWriter, r *http.Request) {
	s.moveEntry(w, r, s.svc.PromoteEntry)
}

func (s *Server) demote(w http.ResponseWriter, r *http.Request) {
	s.moveEntry(w, r, s.svc.DemoteEntry)
}

func (s *Server) moveEntry(w http.ResponseWriter, r *http.Request, op func(ctx context.Context, teamID string, index int) error) {
	var req entryRequest
	if err := decode(r, &req); err != nil {
		writeError(w, err)
		return
	}
	if err := op(r.Context(), req.TeamID, req.Index); err != nil {
		writeError(w, err)
		return
	}
	w.WriteHeader(http.StatusOK)
}

func (s *Server) listReview(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, s.svc.ReviewRows())
}

func (s *Server) commitReview(w http.ResponseWriter, r *http.Request) {
	var edits []club.ReviewRow
	if err := decode(r, &edits); err != nil {
		writeError(w, err)
		return
	}
	if err := s.svc.CommitReview(r.Context(), edits); err != nil {
		writeError(w, err)
		return
	}
	w.WriteHeader(http.StatusOK)
}

func (s *Server) listBookings(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, s.svc.Bookings())
}

func (s *Server) saveBooking(w http.ResponseWriter, r *http.Request) {
	var in service.BookingInput
	if err := decode(r, &in); err != nil {
		writeError(w, err)
		return
	}
	b, err := s.svc.SaveBooking(r.Context(), in)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, b)
}

func (s *Server) deleteBooking(w http.ResponseWriter, r *http.Request) {
	var req idRequest
	if err := decode(r, &req); err != nil {
		writeError(w, err)
		return
	}
	if err := s.svc.DeleteBooking(r.Context(), req.ID); err != nil {
		writeError(w, err)
		return
	}
	w.WriteHeader(http.StatusOK)
}

func (s *Server) listLedger(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, s.svc.Ledger())
}

func (s *Server) saveLedgerEntry(w http.ResponseWriter, r *http.Request) {
	var in service.LedgerInput
	if err := decode(r, &in); err != nil {
		writeError(w, err)
		return
	}
	e, err := s.svc.SaveLedgerEntry(r.Context(), in)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, e)
}

func (s *Server) deleteLedgerEntry(w http.ResponseWriter, r *http.Request) {
	var req idRequest
	if err := decode(r, &req); err != nil {
		writeError(w, err)
		return
	}
	if err := s.svc.DeleteLedgerEntry(r.Context(), req.ID); err != nil {
		writeError(w, err)
		return
	}
	w.WriteHeader(http.StatusOK)
}

func (s *Server) getCash(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, s.svc.Cash())
}

func (s *Server) setCash(w http.ResponseWriter, r *http.Request) {
	var in service.CashInput
	if err := decode(r, &in); err != nil {
		writeError(w, err)
		return
	}
	if err := s.svc.SetCash(r.Context(), in); err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, s.svc.Cash())
}

func (s *Server) monthReport(w http.ResponseWriter, r *http.Request) {
	month := r.URL.Query().Get("month")
	var report *export.MonthReport
	var err error
	s.svc.Snapshot(func(state *models.AppState) {
		report, err = export.BuildMonthReport(state, month)
	})
	if err != nil {
		writeError(w, fmt.Errorf("%w: %v", service.ErrValidation, err))
		return
	}
	writeJSON(w, http.StatusOK, report)
}

func (s *Server) exportMembersCSV(w http.ResponseWriter, r *http.Request) {
	var csvText string
	var err error
	s.svc.Snapshot(func(state *models.AppState) {
		csvText, err = export.MembersCSV(state.Members)
	})
	if err != nil {
		writeError(w, err)
		return
	}
	w.Header().Set("Content-Type", "text/csv; charset=utf-8")
	w.Header().Set("Content-Disposition", `attachment; filename="members.csv"`)
	w.Write([]byte(csvText))
}

func (s *Server) shareWhatsApp(w http.ResponseWriter, r *http.Request) {
	text := s.svc.Summary()
	writeJSON(w, http.StatusOK, map[string]string{
		"text": text,
		"url":  share.WhatsAppLink(text),
	})
}
