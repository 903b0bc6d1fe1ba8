package controllers

import (
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/vizierworks/game-vizier/internal/models"
	"github.com/vizierworks/game-vizier/internal/services"
	"github.com/vizierworks/game-vizier/internal/views"
	"github.com/vizierworks/game-vizier/templates"
)

// newTestRouter mounts the real router around the given completion client.
func newTestRouter(t *testing.T, vizier *services.Vizier, keySet bool) chi.Router {
	t.Helper()

	testPage, err := views.ParseFS(templates.FS, "test.gohtml")
	if err != nil {
		t.Fatalf("failed to parse test page: %v", err)
	}

	system := NewSystemController(vizier, keySet)
	analyze := NewAnalyzeController(vizier, services.NewReportFormatter())
	static := NewStaticController(testPage)

	return NewRouter(system, analyze, static)
}

// degradedVizier is a client constructed without a credential.
func degradedVizier() *services.Vizier {
	return services.NewVizier("", "gpt-4", "http://127.0.0.1:1", time.Second)
}

// fakeUpstream starts a stub chat-completions server and returns a ready
// client pointed at it.
func fakeUpstream(t *testing.T, handler http.HandlerFunc) *services.Vizier {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)
	return services.NewVizier("sk-test", "gpt-4", srv.URL, 5*time.Second)
}

func postJSON(t *testing.T, r chi.Router, path, body string) *httptest.ResponseRecorder {
	t.Helper()
	var req *http.Request
	if body == "" {
		req = httptest.NewRequest(http.MethodPost, path, nil)
	} else {
		req = httptest.NewRequest(http.MethodPost, path, strings.NewReader(body))
		req.Header.Set("Content-Type", "application/json")
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func decodeError(t *testing.T, w *httptest.ResponseRecorder) string {
	t.Helper()
	var apiErr models.APIError
	if err := json.NewDecoder(w.Body).Decode(&apiErr); err != nil {
		t.Fatalf("failed to decode error body %q: %v", w.Body.String(), err)
	}
	return apiErr.Error
}

func TestPostAnalyzeMissingGameData(t *testing.T) {
	r := newTestRouter(t, degradedVizier(), false)

	w := postJSON(t, r, "/api/analyze-game", `{"business_name":"X"}`)
	if w.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d: %s", w.Code, w.Body.String())
	}
	if got := decodeError(t, w); got != "Missing required field: game_data" {
		t.Errorf("error = %q", got)
	}
}

func TestPostAnalyzeMissingBusinessName(t *testing.T) {
	r := newTestRouter(t, degradedVizier(), false)

	w := postJSON(t, r, "/api/analyze-game", `{"game_data":"some game"}`)
	if w.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", w.Code)
	}
	if got := decodeError(t, w); got != "Missing required field: business_name" {
		t.Errorf("error = %q", got)
	}
}

func TestPostAnalyzeNullField(t *testing.T) {
	r := newTestRouter(t, degradedVizier(), false)

	// An explicit null is as bad as a missing key.
	w := postJSON(t, r, "/api/analyze-game", `{"business_name":"X","game_data":null}`)
	if w.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", w.Code)
	}
	if got := decodeError(t, w); got != "Missing required field: game_data" {
		t.Errorf("error = %q", got)
	}
}

func TestPostAnalyzeNoBody(t *testing.T) {
	r := newTestRouter(t, degradedVizier(), false)

	w := postJSON(t, r, "/api/analyze-game", "")
	if w.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", w.Code)
	}
	if got := decodeError(t, w); got != "No JSON data provided" {
		t.Errorf("error = %q", got)
	}
}

func TestPostAnalyzeMalformedBody(t *testing.T) {
	r := newTestRouter(t, degradedVizier(), false)

	w := postJSON(t, r, "/api/analyze-game", "this is not json")
	if w.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", w.Code)
	}
	if got := decodeError(t, w); got != "No JSON data provided" {
		t.Errorf("error = %q", got)
	}
}

func TestPostAnalyzeDegradedMode(t *testing.T) {
	// With no credential the request still succeeds, carrying an
	// explanatory message in the analysis field.
	r := newTestRouter(t, degradedVizier(), false)

	w := postJSON(t, r, "/api/analyze-game",
		`{"business_name":"Space Tactics","game_data":"A turn-based tactics game set on a derelict space station."}`)
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", w.Code, w.Body.String())
	}

	var resp models.AnalysisResponse
	if err := json.NewDecoder(w.Body).Decode(&resp); err != nil {
		t.Fatalf("failed to decode response: %v", err)
	}
	if !resp.Success {
		t.Error("success should be true in degraded mode")
	}
	if resp.Analysis != services.NotConfiguredMessage {
		t.Errorf("analysis = %q", resp.Analysis)
	}
	if len(resp.ReportID) != 8 {
		t.Errorf("report_id = %q, want 8 characters", resp.ReportID)
	}
}

func TestPostAnalyzeHappyPath(t *testing.T) {
	vizier := fakeUpstream(t, func(w http.ResponseWriter, r *http.Request) {
		fmt.Fprint(w, `{"choices":[{"message":{"role":"assistant","content":"## Strength\nA bold premise.\n\nYour humble vizier"}}]}`)
	})
	r := newTestRouter(t, vizier, true)

	w := postJSON(t, r, "/api/analyze-game",
		`{"business_name":"Space Tactics","game_data":"A turn-based tactics game set on a derelict space station."}`)
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", w.Code, w.Body.String())
	}

	var resp models.AnalysisResponse
	if err := json.NewDecoder(w.Body).Decode(&resp); err != nil {
		t.Fatalf("failed to decode response: %v", err)
	}
	if !resp.Success {
		t.Error("success = false")
	}
	if resp.Message != "Game analysis completed successfully!" {
		t.Errorf("message = %q", resp.Message)
	}
	if resp.BusinessName != "Space Tactics" {
		t.Errorf("business_name = %q", resp.BusinessName)
	}
	if resp.Analysis == "" || !strings.Contains(resp.Analysis, "Your humble vizier") {
		t.Errorf("analysis = %q", resp.Analysis)
	}
	if len(resp.ReportID) != 8 {
		t.Errorf("report_id = %q, want 8 characters", resp.ReportID)
	}
	if _, err := time.Parse(services.GeneratedAtLayout, resp.GeneratedAt); err != nil {
		t.Errorf("generated_at %q does not parse: %v", resp.GeneratedAt, err)
	}
}

func TestPostAnalyzeShortDescriptionAccepted(t *testing.T) {
	// The 50-character minimum lives in the browser page only; the API
	// accepts any non-null string.
	r := newTestRouter(t, degradedVizier(), false)

	w := postJSON(t, r, "/api/analyze-game", `{"business_name":"X","game_data":"tiny"}`)
	if w.Code != http.StatusOK {
		t.Errorf("short description rejected with %d: %s", w.Code, w.Body.String())
	}
}

func TestPostAnalyzeEmptyStringsAccepted(t *testing.T) {
	// Only missing/null fields are client errors; empty strings pass.
	r := newTestRouter(t, degradedVizier(), false)

	w := postJSON(t, r, "/api/analyze-game", `{"business_name":"","game_data":""}`)
	if w.Code != http.StatusOK {
		t.Errorf("empty strings rejected with %d: %s", w.Code, w.Body.String())
	}
}

func TestPostAnalyzeUpstreamFailure(t *testing.T) {
	vizier := fakeUpstream(t, func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, `{"error":{"message":"upstream exploded"}}`, http.StatusInternalServerError)
	})
	r := newTestRouter(t, vizier, true)

	w := postJSON(t, r, "/api/analyze-game",
		`{"business_name":"X","game_data":"a game that will never be analyzed"}`)
	if w.Code != http.StatusInternalServerError {
		t.Fatalf("expected 500, got %d: %s", w.Code, w.Body.String())
	}
	if got := decodeError(t, w); !strings.Contains(got, "upstream exploded") {
		t.Errorf("error body does not carry the upstream description: %q", got)
	}
}

func TestPostTest(t *testing.T) {
	var gotUserPrompt string
	vizier := fakeUpstream(t, func(w http.ResponseWriter, r *http.Request) {
		var req struct {
			Messages []struct {
				Role    string `json:"role"`
				Content string `json:"content"`
			} `json:"messages"`
		}
		json.NewDecoder(r.Body).Decode(&req)
		if len(req.Messages) == 2 {
			gotUserPrompt = req.Messages[1].Content
		}
		fmt.Fprint(w, `{"choices":[{"message":{"role":"assistant","content":"Sample analysis."}}]}`)
	})
	r := newTestRouter(t, vizier, true)

	// No request body at all.
	w := postJSON(t, r, "/api/test", "")
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", w.Code, w.Body.String())
	}

	var resp models.AnalysisResponse
	if err := json.NewDecoder(w.Body).Decode(&resp); err != nil {
		t.Fatalf("failed to decode response: %v", err)
	}
	if resp.BusinessName != "Sample Game Idea" {
		t.Errorf("business_name = %q", resp.BusinessName)
	}
	if len(resp.ReportID) != 8 {
		t.Errorf("report_id = %q", resp.ReportID)
	}
	if !strings.Contains(gotUserPrompt, "visual novel") || !strings.Contains(gotUserPrompt, "psychic") {
		t.Errorf("sample description missing from prompt: %q", gotUserPrompt)
	}
}
