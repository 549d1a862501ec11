package places

import (
	"context"
	"strings"
	"sync"
	"time"

	"bookflow/models"

	"go.uber.org/zap"
)

// DefaultQuietPeriod is how long an input must stay unchanged before a
// provider call is issued.
const DefaultQuietPeriod = 300 * time.Millisecond

// SuggestResult is the outcome of one debounced lookup. Superseded results
// carry no suggestions; the caller drops them because a newer request for
// the same field was issued in the meantime.
type SuggestResult struct {
	Suggestions []models.AddressSuggestion
	Superseded  bool
}

// DebouncedSuggester collapses rapid keystrokes to at most one outstanding
// provider call per field. Each (session, field) key carries a monotonically
// increasing sequence; a request whose sequence is no longer the latest when
// it wakes up, or when its response arrives, is discarded.
type DebouncedSuggester struct {
	Provider SuggestionProvider
	Quiet    time.Duration
	Logger   *zap.Logger

	mu   sync.Mutex
	seqs map[string]uint64
}

// NewDebouncedSuggester wraps a provider with the standard quiet period.
func NewDebouncedSuggester(provider SuggestionProvider, logger *zap.Logger) *DebouncedSuggester {
	return &DebouncedSuggester{
		Provider: provider,
		Quiet:    DefaultQuietPeriod,
		Logger:   logger,
		seqs:     make(map[string]uint64),
	}
}

func (s *DebouncedSuggester) bump(key string) uint64 {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.seqs[key]++
	return s.seqs[key]
}

func (s *DebouncedSuggester) latest(key string, seq uint64) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.seqs[key] == seq
}

// Fetch waits out the quiet period and then queries the provider, unless a
// newer Fetch for the same key arrived in the meantime. Provider failures
// degrade to an empty list; manual address entry must never be blocked.
func (s *DebouncedSuggester) Fetch(ctx context.Context, key, input, sessionToken string) SuggestResult {
	seq := s.bump(key)

	select {
	case <-ctx.Done():
		return SuggestResult{Superseded: true}
	case <-time.After(s.Quiet):
	}
	if !s.latest(key, seq) {
		return SuggestResult{Superseded: true}
	}

	if strings.TrimSpace(input) == "" {
		return SuggestResult{Suggestions: []models.AddressSuggestion{}}
	}

	suggestions, err := s.Provider.Suggest(ctx, input, sessionToken)
	if err != nil {
		s.Logger.Warn("suggestion provider failed, degrading to empty list",
			zap.String("key", key), zap.Error(err))
		return SuggestResult{Suggestions: []models.AddressSuggestion{}}
	}
	if !s.latest(key, seq) {
		// A newer keystroke was issued while this call was in flight.
		return SuggestResult{Superseded: true}
	}
	return SuggestResult{Suggestions: suggestions}
}

// Forget drops the sequence state for a key, used when a candidate was
// chosen or the session ended.
func (s *DebouncedSuggester) Forget(key string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.seqs, key)
}
