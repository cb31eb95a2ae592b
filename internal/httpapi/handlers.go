// Package httpapi exposes the solver over HTTP/SSE (SPEC_FULL.md
// §4.10), adapted from the teacher's handlers package but collapsed
// to this spec's single-value best_guess contract rather than the
// teacher's multi-depth iterative-deepening stream.
package httpapi

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/lexigon/wordlesolver/feedback"
	"github.com/lexigon/wordlesolver/logger"
	"github.com/lexigon/wordlesolver/solver"
	"github.com/lexigon/wordlesolver/words"
)

// Server bundles the dependencies every handler needs and exposes
// them as http.HandlerFuncs for mux registration.
type Server struct {
	solver *solver.Solver
	repo   *words.Repository
	log    *logger.Logger

	activeStreams map[string]chan struct{}
	streamsMu     sync.RWMutex
}

// NewServer returns a Server backed by s and repo.
func NewServer(s *solver.Solver, repo *words.Repository) *Server {
	return &Server{
		solver:        s,
		repo:          repo,
		log:           logger.New().WithTag("httpapi"),
		activeStreams: make(map[string]chan struct{}),
	}
}

// guessRecordWire is the JSON wire shape for a single history entry.
type guessRecordWire struct {
	Word    string   `json:"word"`
	Pattern []string `json:"pattern"`
}

// suggestRequest is the JSON wire shape of POST /api/v1/suggest's body.
type suggestRequest struct {
	History []guessRecordWire `json:"history"`
}

func (req suggestRequest) toHistory() (feedback.GuessHistory, bool) {
	history := make(feedback.GuessHistory, 0, len(req.History))
	for _, rec := range req.History {
		pattern, ok := feedback.DecodePattern(rec.Pattern)
		if !ok {
			return nil, false
		}
		history = append(history, feedback.GuessRecord{Word: rec.Word, Pattern: pattern})
	}
	return history, true
}

// suggestResponse is the JSON wire shape of POST /api/v1/suggest's
// response: {"word": "..."} or {"word": null}.
type suggestResponse struct {
	Word *string `json:"word"`
}

// Suggest handles POST /api/v1/suggest: a single synchronous
// best_guess call.
func (s *Server) Suggest(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}

	var req suggestRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		s.log.Error("error decoding suggest request", "error", err)
		http.Error(w, "Invalid request body", http.StatusBadRequest)
		return
	}

	history, ok := req.toHistory()
	if !ok {
		writeJSON(w, http.StatusOK, suggestResponse{})
		return
	}

	guess, ok := s.solver.BestGuess(history)
	if !ok {
		writeJSON(w, http.StatusOK, suggestResponse{})
		return
	}
	writeJSON(w, http.StatusOK, suggestResponse{Word: &guess})
}

// possibleWordsResponse is the JSON wire shape of POST
// /api/v1/possible_words's response.
type possibleWordsResponse struct {
	Words []string `json:"words"`
	Count int      `json:"count"`
}

// PossibleWords handles POST /api/v1/possible_words, wrapping
// words.Repository.PossibleWords/PossibleWordCount (spec.md §1,
// §6's possible_words).
func (s *Server) PossibleWords(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}

	var req suggestRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		s.log.Error("error decoding possible_words request", "error", err)
		http.Error(w, "Invalid request body", http.StatusBadRequest)
		return
	}

	history, ok := req.toHistory()
	if !ok {
		http.Error(w, "Invalid pattern in history", http.StatusBadRequest)
		return
	}

	words := s.repo.PossibleWords(history)
	writeJSON(w, http.StatusOK, possibleWordsResponse{Words: words, Count: len(words)})
}

// simulatePatternRequest is the JSON wire shape of POST
// /api/v1/simulate_pattern's body.
type simulatePatternRequest struct {
	Guess  string `json:"guess"`
	Target string `json:"target"`
}

// simulatePatternResponse is the JSON wire shape of POST
// /api/v1/simulate_pattern's response.
type simulatePatternResponse struct {
	Pattern string `json:"pattern"`
}

// SimulatePattern handles POST /api/v1/simulate_pattern, wrapping
// feedback.SimulatePattern (spec.md §1, §6's simulate_pattern).
func (s *Server) SimulatePattern(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}

	var req simulatePatternRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		s.log.Error("error decoding simulate_pattern request", "error", err)
		http.Error(w, "Invalid request body", http.StatusBadRequest)
		return
	}

	pattern, err := feedback.SimulatePattern(req.Guess, req.Target)
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}
	writeJSON(w, http.StatusOK, simulatePatternResponse{Pattern: pattern})
}

// SuggestStream handles POST /api/v1/suggest/stream. Kept for
// architectural continuity with the teacher's SSE design: opens a
// stream, computes best_guess once (there is only one "depth" in this
// spec), emits a single suggestion event, then a completion event.
func (s *Server) SuggestStream(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}

	var req suggestRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		s.log.Error("error decoding stream request", "error", err)
		http.Error(w, "Invalid request body", http.StatusBadRequest)
		return
	}

	streamID := uuid.New().String()
	streamLog := s.log.WithTag(streamID)

	closeChan := make(chan struct{})
	s.streamsMu.Lock()
	s.activeStreams[streamID] = closeChan
	s.streamsMu.Unlock()
	defer func() {
		s.streamsMu.Lock()
		delete(s.activeStreams, streamID)
		s.streamsMu.Unlock()
	}()

	w.Header().Set("Content-Type", "text/event-stream")
	w.Header().Set("Cache-Control", "no-cache")
	w.Header().Set("Connection", "keep-alive")
	w.Header().Set("Access-Control-Allow-Origin", "*")

	flusher, ok := w.(http.Flusher)
	if !ok {
		streamLog.Error("streaming not supported")
		http.Error(w, "Streaming not supported", http.StatusInternalServerError)
		return
	}

	ctx, cancel := context.WithCancel(r.Context())
	defer cancel()
	go func() {
		<-closeChan
		cancel()
	}()

	writeSSE(w, flusher, "stream-created", map[string]string{"streamId": streamID})

	history, historyOK := req.toHistory()

	select {
	case <-ctx.Done():
		streamLog.Debug("stream cancelled before suggestion computed")
	default:
		var guess string
		var found bool
		if historyOK {
			guess, found = s.solver.BestGuess(history)
		}

		remaining := 0
		if historyOK {
			remaining = s.repo.PossibleWordCount(history)
		}

		event := map[string]any{
			"streamId":          streamID,
			"word":              nil,
			"possibleWordCount": remaining,
		}
		if found {
			event["word"] = guess
		}
		writeSSE(w, flusher, "suggestion", event)
	}

	writeSSE(w, flusher, "stream-completed", map[string]string{"streamId": streamID, "status": "completed"})

	// Brief pause to let the client drain the completion event before
	// the handler returns and the connection closes, matching the
	// teacher's stream-closing behavior.
	time.Sleep(200 * time.Millisecond)
}

type cancelRequest struct {
	StreamID string `json:"streamId"`
}

// CancelStream handles POST /api/v1/suggest/cancel.
func (s *Server) CancelStream(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}

	var req cancelRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "Invalid request body", http.StatusBadRequest)
		return
	}

	s.streamsMu.RLock()
	closeChan, exists := s.activeStreams[req.StreamID]
	s.streamsMu.RUnlock()

	if !exists {
		http.Error(w, "Stream not found", http.StatusNotFound)
		return
	}

	select {
	case closeChan <- struct{}{}:
	default:
	}

	writeJSON(w, http.StatusOK, map[string]string{"status": "cancelled"})
}

// Health handles GET /health.
func (s *Server) Health(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

// Words handles GET /api/v1/words?word=CRANE, wrapping is_valid_word.
func (s *Server) Words(w http.ResponseWriter, r *http.Request) {
	word := r.URL.Query().Get("word")
	writeJSON(w, http.StatusOK, map[string]bool{"valid": s.repo.IsValidWord(word)})
}

func writeJSON(w http.ResponseWriter, status int, payload any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(payload)
}

func writeSSE(w http.ResponseWriter, flusher http.Flusher, event string, payload any) {
	data, err := json.Marshal(payload)
	if err != nil {
		return
	}
	fmt.Fprintf(w, "event: %s\n", event)
	fmt.Fprintf(w, "data: %s\n\n", data)
	flusher.Flush()
}
