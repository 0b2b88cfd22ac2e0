package handler

import (
	"errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"promptpilot/internal/domain"
	"promptpilot/internal/flows"
	"promptpilot/internal/llm"
	"promptpilot/mocks"
)

func TestSuggest_ReturnsSuggestions(t *testing.T) {
	suggestionSvc := new(mocks.MockSuggestionService)
	h := NewSuggestionHandler(suggestionSvc)

	input := flows.SuggestionInput{
		DocumentType:    "Invoice",
		PrimaryGoal:     "Extract Key Invoice Details",
		SelectedDetails: []string{"Invoice Number"},
	}
	suggestionSvc.On("SuggestFields", mock.Anything, input).
		Return([]string{"Vendor GSTIN", "Due Date"}, nil)

	c, w := newTestContext(t, http.MethodPost, "/api/v1/suggestions", SuggestRequest{
		DocumentType:    "Invoice",
		PrimaryGoal:     "Extract Key Invoice Details",
		SelectedDetails: []string{"Invoice Number"},
	})
	setSession(c, uuid.New())
	h.Suggest(c)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "Vendor GSTIN")
}

func TestSuggest_MissingDocumentType(t *testing.T) {
	suggestionSvc := new(mocks.MockSuggestionService)
	h := NewSuggestionHandler(suggestionSvc)

	c, w := newTestContext(t, http.MethodPost, "/api/v1/suggestions", map[string]string{})
	setSession(c, uuid.New())
	h.Suggest(c)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	suggestionSvc.AssertNotCalled(t, "SuggestFields", mock.Anything, mock.Anything)
}

func TestSuggest_ProviderFailure(t *testing.T) {
	suggestionSvc := new(mocks.MockSuggestionService)
	h := NewSuggestionHandler(suggestionSvc)

	suggestionSvc.On("SuggestFields", mock.Anything, mock.Anything).
		Return(nil, domain.ErrEmptyCompletion)

	c, w := newTestContext(t, http.MethodPost, "/api/v1/suggestions", SuggestRequest{
		DocumentType: "Invoice",
	})
	setSession(c, uuid.New())
	h.Suggest(c)

	assert.Equal(t, http.StatusBadGateway, w.Code)
	resp := decodeEnvelope(t, w)
	assert.Equal(t, "EMPTY_COMPLETION", resp.Error.Code)
}

func TestSuggest_ProviderRateLimited(t *testing.T) {
	suggestionSvc := new(mocks.MockSuggestionService)
	h := NewSuggestionHandler(suggestionSvc)

	rateErr := llm.NewRateLimitError("gemini", errors.New("gemini API error (status 429)"), 23)
	suggestionSvc.On("SuggestFields", mock.Anything, mock.Anything).
		Return(nil, fmt.Errorf("suggesting fields: %w", rateErr))

	c, w := newTestContext(t, http.MethodPost, "/api/v1/suggestions", SuggestRequest{
		DocumentType: "Invoice",
	})
	setSession(c, uuid.New())
	h.Suggest(c)

	assert.Equal(t, http.StatusTooManyRequests, w.Code)
	assert.Equal(t, "23", w.Header().Get("Retry-After"))
	resp := decodeEnvelope(t, w)
	assert.Equal(t, "RATE_LIMITED", resp.Error.Code)
}
