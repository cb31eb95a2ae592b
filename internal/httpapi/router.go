package httpapi

import "net/http"

// NewRouter registers every handler on a fresh http.ServeMux, grounded
// on cmd/run.go's route registration (generalized from the package-
// level http.HandleFunc calls to an explicit mux per Server instance).
func (s *Server) NewRouter() *http.ServeMux {
	mux := http.NewServeMux()
	mux.HandleFunc("/api/v1/suggest", s.Suggest)
	mux.HandleFunc("/api/v1/suggest/stream", s.SuggestStream)
	mux.HandleFunc("/api/v1/suggest/cancel", s.CancelStream)
	mux.HandleFunc("/api/v1/possible_words", s.PossibleWords)
	mux.HandleFunc("/api/v1/simulate_pattern", s.SimulatePattern)
	mux.HandleFunc("/api/v1/words", s.Words)
	mux.HandleFunc("/health", s.Health)
	return mux
}
