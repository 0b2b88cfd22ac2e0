package service_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"promptpilot/internal/flows"
	"promptpilot/internal/port"
	"promptpilot/internal/service"
	"promptpilot/mocks"
)

func TestSuggestFields_CachesByInput(t *testing.T) {
	completer := new(mocks.MockTextCompleter)
	completer.On("Complete", mock.Anything, mock.Anything).
		Return(&port.CompletionOutput{Text: `{"suggested_options": ["Vendor GSTIN", "Due Date"]}`}, nil).
		Once()

	svc, err := service.NewSuggestionService(completer, 8)
	require.NoError(t, err)

	input := flows.SuggestionInput{
		DocumentType:    "Invoice",
		PrimaryGoal:     "Extract Key Invoice Details",
		SelectedDetails: []string{"Invoice Number"},
	}

	first, err := svc.SuggestFields(context.Background(), input)
	require.NoError(t, err)
	second, err := svc.SuggestFields(context.Background(), input)
	require.NoError(t, err)

	assert.Equal(t, []string{"Vendor GSTIN", "Due Date"}, first)
	assert.Equal(t, first, second)
	completer.AssertNumberOfCalls(t, "Complete", 1)
}

func TestSuggestFields_DistinctInputsMiss(t *testing.T) {
	completer := new(mocks.MockTextCompleter)
	completer.On("Complete", mock.Anything, mock.Anything).
		Return(&port.CompletionOutput{Text: `{"suggested_options": ["Due Date"]}`}, nil)

	svc, err := service.NewSuggestionService(completer, 8)
	require.NoError(t, err)

	_, err = svc.SuggestFields(context.Background(), flows.SuggestionInput{DocumentType: "Invoice"})
	require.NoError(t, err)
	_, err = svc.SuggestFields(context.Background(), flows.SuggestionInput{DocumentType: "Receipt"})
	require.NoError(t, err)

	completer.AssertNumberOfCalls(t, "Complete", 2)
}

func TestSuggestFields_ErrorsAreNotCached(t *testing.T) {
	completer := new(mocks.MockTextCompleter)
	completer.On("Complete", mock.Anything, mock.Anything).
		Return(&port.CompletionOutput{Text: "not json"}, nil)

	svc, err := service.NewSuggestionService(completer, 8)
	require.NoError(t, err)

	input := flows.SuggestionInput{DocumentType: "Invoice"}
	_, err = svc.SuggestFields(context.Background(), input)
	require.Error(t, err)
	_, err = svc.SuggestFields(context.Background(), input)
	require.Error(t, err)

	completer.AssertNumberOfCalls(t, "Complete", 2)
}
