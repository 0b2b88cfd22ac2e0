package service

import (
	"context"
	"fmt"
	"strings"

	lru "github.com/hashicorp/golang-lru/v2"

	"promptpilot/internal/flows"
	"promptpilot/internal/port"
)

// SuggestionService produces context-aware field suggestions. Results are
// cached per input so repeated form edits do not re-query the provider.
type SuggestionService interface {
	SuggestFields(ctx context.Context, input flows.SuggestionInput) ([]string, error)
}

type suggestionService struct {
	completer port.TextCompleter
	cache     *lru.Cache[string, []string]
}

// NewSuggestionService creates a new SuggestionService with an LRU cache of
// the given size. A non-positive size falls back to a small default.
func NewSuggestionService(completer port.TextCompleter, cacheSize int) (SuggestionService, error) {
	if cacheSize <= 0 {
		cacheSize = 64
	}
	cache, err := lru.New[string, []string](cacheSize)
	if err != nil {
		return nil, fmt.Errorf("suggestion.NewSuggestionService: %w", err)
	}
	return &suggestionService{completer: completer, cache: cache}, nil
}

func cacheKey(input flows.SuggestionInput) string {
	var b strings.Builder
	b.WriteString(input.DocumentType)
	b.WriteString("\x1f")
	b.WriteString(input.PrimaryGoal)
	b.WriteString("\x1f")
	b.WriteString(strings.Join(input.SelectedDetails, "\x1e"))
	b.WriteString("\x1f")
	b.WriteString(strings.Join(input.CustomDetails, "\x1e"))
	return b.String()
}

func (s *suggestionService) SuggestFields(ctx context.Context, input flows.SuggestionInput) ([]string, error) {
	key := cacheKey(input)
	if cached, ok := s.cache.Get(key); ok {
		return cached, nil
	}

	suggestions, err := flows.Suggest(ctx, s.completer, input)
	if err != nil {
		return nil, err
	}
	s.cache.Add(key, suggestions)
	return suggestions, nil
}
