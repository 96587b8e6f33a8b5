package api

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/tbrandao/clubsheet/internal/service"
	"github.com/tbrandao/clubsheet/internal/storage/sqlite"
)

func setupTestServer(t *testing.T) *httptest.Server {
	t.Helper()

	tempDir, err := os.MkdirTemp("", "clubsheet-api-test-*")
	if err != nil {
		t.Fatalf("failed to create temp dir: %v", err)
	}
	t.Cleanup(func() { os.RemoveAll(tempDir) })

	store, err := sqlite.New(filepath.Join(tempDir, "test.db"))
	if err != nil {
		t.Fatalf("failed to create store: %v", err)
	}
	t.Cleanup(func() { store.Close() })

	svc := service.New(context.Background(), store)
	server := httptest.NewServer(NewServer(svc).Routes())
	t.Cleanup(server.Close)
	return server
}

func postJSON(t *testing.T, url string, body any) *http.Response {
	t.Helper()
	data, err := json.Marshal(body)
	if err != nil {
		t.Fatalf("failed to marshal body: %v", err)
	}
	resp, err := http.Post(url, "application/json", bytes.NewReader(data))
	if err != nil {
		t.Fatalf("POST %s failed: %v", url, err)
	}
	return resp
}

func decodeBody(t *testing.T, resp *http.Response, v any) {
	t.Helper()
	defer resp.Body.Close()
	if err := json.NewDecoder(resp.Body).Decode(v); err != nil {
		t.Fatalf("failed to decode response: %v", err)
	}
}

func TestMemberEndpoints(t *testing.T) {
	server := setupTestServer(t)

	t.Run("rejects invalid submission with a message", func(t *testing.T) {
		resp := postJSON(t, server.URL+"/api/members", map[string]any{"phone": "555-1"})
		if resp.StatusCode != http.StatusBadRequest {
			t.Fatalf("status = %d, want 400", resp.StatusCode)
		}
		var body map[string]string
		decodeBody(t, resp, &body)
		if body["error"] == "" {
			t.Error("expected a user-visible error message")
		}
	})

	t.Run("creates and lists members", func(t *testing.T) {
		resp := postJSON(t, server.URL+"/api/members", map[string]any{
			"name": "Ana Silva", "position": "Goalkeeper", "dues": 25,
		})
		if resp.StatusCode != http.StatusOK {
			t.Fatalf("status = %d, want 200", resp.StatusCode)
		}
		var created map[string]any
		decodeBody(t, resp, &created)
		if created["id"] == "" {
			t.Error("expected generated id")
		}

		listResp, err := http.Get(server.URL + "/api/members?q=ana")
		if err != nil {
			t.Fatal(err)
		}
		var members []map[string]any
		decodeBody(t, listResp, &members)
		if len(members) != 1 || members[0]["name"] != "Ana Silva" {
			t.Errorf("members = %+v", members)
		}
	})

	t.Run("malformed body is 400 with a message", func(t *testing.T) {
		resp, err := http.Post(server.URL+"/api/members", "application/json", strings.NewReader("{not json"))
		if err != nil {
			t.Fatal(err)
		}
		if resp.StatusCode != http.StatusBadRequest {
			t.Fatalf("status = %d, want 400", resp.StatusCode)
		}
		var body map[string]string
		decodeBody(t, resp, &body)
		if !strings.Contains(body["error"], "malformed request body") {
			t.Errorf("error = %q, want a malformed-body message", body["error"])
		}
	})

	t.Run("delete unknown member is 404", func(t *testing.T) {
		resp := postJSON(t, server.URL+"/api/members/delete", map[string]any{"id": "missing"})
		if resp.StatusCode != http.StatusNotFound {
			t.Errorf("status = %d, want 404", resp.StatusCode)
		}
		resp.Body.Close()
	})
}

func TestTeamSyncFlow(t *testing.T) {
	server := setupTestServer(t)

	resp := postJSON(t, server.URL+"/api/teams", map[string]any{
		"name":     "Alpha",
		"titulars": "Ana, Bia",
		"reserves": "Carla",
	})
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("status = %d, want 200", resp.StatusCode)
	}

	var saved struct {
		Team struct {
			ID       string `json:"id"`
			Titulars []struct {
				Name     string `json:"name"`
				MemberID string `json:"member_id"`
			} `json:"titulars"`
		} `json:"team"`
		Review []struct {
			MemberID string `json:"member_id"`
			Name     string `json:"name"`
		} `json:"review"`
	}
	decodeBody(t, resp, &saved)

	if len(saved.Review) != 3 {
		t.Fatalf("review rows = %d, want 3", len(saved.Review))
	}
	if saved.Team.Titulars[0].MemberID == "" {
		t.Error("titular entry not linked after sync")
	}

	// Commit the review with completed details.
	edits := []map[string]any{
		{"member_id": saved.Review[0].MemberID, "phone": "555-3", "position": "Forward", "status": "Active", "dues": 10},
	}
	commitResp := postJSON(t, server.URL+"/api/review/commit", edits)
	if commitResp.StatusCode != http.StatusOK {
		t.Fatalf("commit status = %d", commitResp.StatusCode)
	}
	commitResp.Body.Close()

	reviewResp, err := http.Get(server.URL + "/api/review")
	if err != nil {
		t.Fatal(err)
	}
	var rows []any
	decodeBody(t, reviewResp, &rows)
	if len(rows) != 0 {
		t.Errorf("review queue not cleared: %+v", rows)
	}

	// Promote the only reserve; the roster move persists.
	promoteResp := postJSON(t, server.URL+"/api/teams/promote", map[string]any{
		"team_id": saved.Team.ID, "index": 0,
	})
	if promoteResp.StatusCode != http.StatusOK {
		t.Fatalf("promote status = %d", promoteResp.StatusCode)
	}
	promoteResp.Body.Close()

	teamsResp, err := http.Get(server.URL + "/api/teams")
	if err != nil {
		t.Fatal(err)
	}
	var teams []struct {
		Titulars []struct {
			Name string `json:"name"`
		} `json:"titulars"`
		Reserves []any `json:"reserves"`
	}
	decodeBody(t, teamsResp, &teams)
	if len(teams[0].Titulars) != 3 || len(teams[0].Reserves) != 0 {
		t.Errorf("promote not applied: %+v", teams[0])
	}
	if teams[0].Titulars[2].Name != "Carla" {
		t.Errorf("promoted entry not appended at end: %+v", teams[0].Titulars)
	}
}

func TestExportAndShareEndpoints(t *testing.T) {
	server := setupTestServer(t)

	resp := postJSON(t, server.URL+"/api/members", map[string]any{"name": "Ana Silva"})
	resp.Body.Close()

	t.Run("members CSV", func(t *testing.T) {
		resp, err := http.Get(server.URL + "/api/export/members.csv")
		if err != nil {
			t.Fatal(err)
		}
		defer resp.Body.Close()
		if ct := resp.Header.Get("Content-Type"); !strings.HasPrefix(ct, "text/csv") {
			t.Errorf("content type = %q", ct)
		}
		data, _ := io.ReadAll(resp.Body)
		if !strings.HasPrefix(string(data), "Name,Phone,Position,Status,Dues\n") {
			t.Errorf("csv = %q", data)
		}
		if !strings.Contains(string(data), "Ana Silva") {
			t.Error("csv missing the member row")
		}
	})

	t.Run("month report validates its input", func(t *testing.T) {
		resp, err := http.Get(server.URL + "/api/report?month=2026-13")
		if err != nil {
			t.Fatal(err)
		}
		if resp.StatusCode != http.StatusBadRequest {
			t.Errorf("status = %d, want 400", resp.StatusCode)
		}
		var badMonth map[string]string
		decodeBody(t, resp, &badMonth)
		if !strings.Contains(badMonth["error"], "invalid month") {
			t.Errorf("error = %q, want an invalid-month message", badMonth["error"])
		}

		resp, err = http.Get(server.URL + "/api/report?month=2026-08")
		if err != nil {
			t.Fatal(err)
		}
		var report map[string]any
		decodeBody(t, resp, &report)
		if report["month"] != "2026-08" {
			t.Errorf("report = %+v", report)
		}
	})

	t.Run("whatsapp share payload", func(t *testing.T) {
		resp, err := http.Get(server.URL + "/api/share/whatsapp")
		if err != nil {
			t.Fatal(err)
		}
		var body map[string]string
		decodeBody(t, resp, &body)
		if !strings.Contains(body["text"], "Active members: 1") {
			t.Errorf("summary text = %q", body["text"])
		}
		if !strings.HasPrefix(body["url"], "https://wa.me/?text=") {
			t.Errorf("share url = %q", body["url"])
		}
	})
}

func TestCashEndpoints(t *testing.T) {
	server := setupTestServer(t)

	resp := postJSON(t, server.URL+"/api/cash", map[string]any{"opening_balance": 100.0, "notes": "carry"})
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("status = %d", resp.StatusCode)
	}
	resp.Body.Close()

	resp = postJSON(t, server.URL+"/api/ledger", map[string]any{
		"date": "2026-08-31", "description": "dues", "kind": "Income", "amount": 50.0,
	})
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("ledger status = %d", resp.StatusCode)
	}
	resp.Body.Close()

	cashResp, err := http.Get(server.URL + "/api/cash")
	if err != nil {
		t.Fatal(err)
	}
	var cash map[string]any
	decodeBody(t, cashResp, &cash)
	if cash["current_balance"].(float64) != 150 {
		t.Errorf("cash = %+v", cash)
	}
}
