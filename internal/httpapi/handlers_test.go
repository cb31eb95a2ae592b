package httpapi

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/lexigon/wordlesolver/config"
	"github.com/lexigon/wordlesolver/solver"
	"github.com/lexigon/wordlesolver/words"
)

func newTestServer() *Server {
	repo := words.NewRepository()
	repo.LoadFromMemory(
		[]string{"CRANE", "SLATE", "CRATE"},
		[]string{"CRANE", "SLATE", "CRATE", "TARES"},
	)
	return NewServer(solver.New(repo, config.NewStore()), repo)
}

func TestSuggestInvalidMethod(t *testing.T) {
	s := newTestServer()
	req := httptest.NewRequest(http.MethodGet, "/api/v1/suggest", nil)
	w := httptest.NewRecorder()

	s.Suggest(w, req)

	if w.Code != http.StatusMethodNotAllowed {
		t.Errorf("Expected status %d, got %d", http.StatusMethodNotAllowed, w.Code)
	}
}

func TestSuggestInvalidJSON(t *testing.T) {
	s := newTestServer()
	req := httptest.NewRequest(http.MethodPost, "/api/v1/suggest", strings.NewReader("not json"))
	w := httptest.NewRecorder()

	s.Suggest(w, req)

	if w.Code != http.StatusBadRequest {
		t.Errorf("Expected status %d, got %d", http.StatusBadRequest, w.Code)
	}
}

func TestSuggestEmptyHistoryReturnsOptimalFirstGuess(t *testing.T) {
	s := newTestServer()
	body, _ := json.Marshal(suggestRequest{})
	req := httptest.NewRequest(http.MethodPost, "/api/v1/suggest", bytes.NewReader(body))
	w := httptest.NewRecorder()

	s.Suggest(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("Expected status %d, got %d", http.StatusOK, w.Code)
	}
	var resp suggestResponse
	if err := json.NewDecoder(w.Body).Decode(&resp); err != nil {
		t.Fatalf("invalid response JSON: %v", err)
	}
	if resp.Word == nil || *resp.Word != "TARES" {
		t.Errorf("word = %v, want TARES", resp.Word)
	}
}

func TestSuggestMalformedPatternReturnsNilWord(t *testing.T) {
	s := newTestServer()
	body, _ := json.Marshal(suggestRequest{
		History: []guessRecordWire{{Word: "CRANE", Pattern: []string{"G", "X"}}}, // wrong length
	})
	req := httptest.NewRequest(http.MethodPost, "/api/v1/suggest", bytes.NewReader(body))
	w := httptest.NewRecorder()

	s.Suggest(w, req)

	var resp suggestResponse
	json.NewDecoder(w.Body).Decode(&resp)
	if resp.Word != nil {
		t.Errorf("word = %v, want nil for a malformed pattern", *resp.Word)
	}
}

func TestPossibleWordsInvalidMethod(t *testing.T) {
	s := newTestServer()
	req := httptest.NewRequest(http.MethodGet, "/api/v1/possible_words", nil)
	w := httptest.NewRecorder()

	s.PossibleWords(w, req)

	if w.Code != http.StatusMethodNotAllowed {
		t.Errorf("Expected status %d, got %d", http.StatusMethodNotAllowed, w.Code)
	}
}

func TestPossibleWordsEmptyHistoryReturnsAnswers(t *testing.T) {
	s := newTestServer()
	body, _ := json.Marshal(suggestRequest{})
	req := httptest.NewRequest(http.MethodPost, "/api/v1/possible_words", bytes.NewReader(body))
	w := httptest.NewRecorder()

	s.PossibleWords(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("Expected status %d, got %d", http.StatusOK, w.Code)
	}
	var resp possibleWordsResponse
	if err := json.NewDecoder(w.Body).Decode(&resp); err != nil {
		t.Fatalf("invalid response JSON: %v", err)
	}
	if resp.Count != 3 || len(resp.Words) != 3 {
		t.Errorf("Count/Words = %d/%v, want 3 answer words", resp.Count, resp.Words)
	}
}

func TestPossibleWordsMalformedPatternReturnsBadRequest(t *testing.T) {
	s := newTestServer()
	body, _ := json.Marshal(suggestRequest{
		History: []guessRecordWire{{Word: "CRANE", Pattern: []string{"G", "X"}}},
	})
	req := httptest.NewRequest(http.MethodPost, "/api/v1/possible_words", bytes.NewReader(body))
	w := httptest.NewRecorder()

	s.PossibleWords(w, req)

	if w.Code != http.StatusBadRequest {
		t.Errorf("Expected status %d, got %d", http.StatusBadRequest, w.Code)
	}
}

func TestSimulatePatternHandlerReturnsPattern(t *testing.T) {
	s := newTestServer()
	body, _ := json.Marshal(simulatePatternRequest{Guess: "CRANE", Target: "CRATE"})
	req := httptest.NewRequest(http.MethodPost, "/api/v1/simulate_pattern", bytes.NewReader(body))
	w := httptest.NewRecorder()

	s.SimulatePattern(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("Expected status %d, got %d", http.StatusOK, w.Code)
	}
	var resp simulatePatternResponse
	if err := json.NewDecoder(w.Body).Decode(&resp); err != nil {
		t.Fatalf("invalid response JSON: %v", err)
	}
	if resp.Pattern != "GGGXG" {
		t.Errorf("Pattern = %s, want GGGXG", resp.Pattern)
	}
}

func TestSimulatePatternHandlerRejectsBadWord(t *testing.T) {
	s := newTestServer()
	body, _ := json.Marshal(simulatePatternRequest{Guess: "CRAN", Target: "CRATE"})
	req := httptest.NewRequest(http.MethodPost, "/api/v1/simulate_pattern", bytes.NewReader(body))
	w := httptest.NewRecorder()

	s.SimulatePattern(w, req)

	if w.Code != http.StatusBadRequest {
		t.Errorf("Expected status %d, got %d", http.StatusBadRequest, w.Code)
	}
}

func TestSuggestStreamInvalidMethod(t *testing.T) {
	s := newTestServer()
	req := httptest.NewRequest(http.MethodGet, "/api/v1/suggest/stream", nil)
	w := httptest.NewRecorder()

	s.SuggestStream(w, req)

	if w.Code != http.StatusMethodNotAllowed {
		t.Errorf("Expected status %d, got %d", http.StatusMethodNotAllowed, w.Code)
	}
}

func TestSuggestStreamEmitsExpectedEvents(t *testing.T) {
	s := newTestServer()
	body, _ := json.Marshal(suggestRequest{})
	req := httptest.NewRequest(http.MethodPost, "/api/v1/suggest/stream", bytes.NewReader(body))
	w := httptest.NewRecorder()

	s.SuggestStream(w, req)

	if w.Header().Get("Content-Type") != "text/event-stream" {
		t.Errorf("Content-Type = %s, want text/event-stream", w.Header().Get("Content-Type"))
	}

	response := w.Body.String()
	for _, want := range []string{"event: stream-created", "event: suggestion", "event: stream-completed", "TARES"} {
		if !strings.Contains(response, want) {
			t.Errorf("response missing %q: %s", want, response)
		}
	}
}

func TestCancelStreamNotFound(t *testing.T) {
	s := newTestServer()
	body, _ := json.Marshal(cancelRequest{StreamID: "nonexistent"})
	req := httptest.NewRequest(http.MethodPost, "/api/v1/suggest/cancel", bytes.NewReader(body))
	w := httptest.NewRecorder()

	s.CancelStream(w, req)

	if w.Code != http.StatusNotFound {
		t.Errorf("Expected status %d, got %d", http.StatusNotFound, w.Code)
	}
}

func TestHealth(t *testing.T) {
	s := newTestServer()
	req := httptest.NewRequest(http.MethodGet, "/health", nil)
	w := httptest.NewRecorder()

	s.Health(w, req)

	if w.Code != http.StatusOK {
		t.Errorf("Expected status %d, got %d", http.StatusOK, w.Code)
	}
}

func TestWordsValidAndInvalid(t *testing.T) {
	s := newTestServer()

	req := httptest.NewRequest(http.MethodGet, "/api/v1/words?word=CRANE", nil)
	w := httptest.NewRecorder()
	s.Words(w, req)
	var resp map[string]bool
	json.NewDecoder(w.Body).Decode(&resp)
	if !resp["valid"] {
		t.Error("expected CRANE to be valid")
	}

	req = httptest.NewRequest(http.MethodGet, "/api/v1/words?word=ZZZZZ", nil)
	w = httptest.NewRecorder()
	s.Words(w, req)
	json.NewDecoder(w.Body).Decode(&resp)
	if resp["valid"] {
		t.Error("expected ZZZZZ to be invalid")
	}
}

func TestNewRouterRegistersAllRoutes(t *testing.T) {
	s := newTestServer()
	mux := s.NewRouter()

	for _, path := range []string{"/api/v1/suggest", "/api/v1/suggest/stream", "/api/v1/suggest/cancel", "/api/v1/possible_words", "/api/v1/simulate_pattern", "/api/v1/words", "/health"} {
		req := httptest.NewRequest(http.MethodGet, path, nil)
		_, pattern := mux.Handler(req)
		if pattern == "" {
			t.Errorf("no handler registered for %s", path)
		}
	}
}
