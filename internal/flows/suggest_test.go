package flows_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"promptpilot/internal/flows"
	"promptpilot/internal/port"
	"promptpilot/mocks"
)

func TestSuggest_Success(t *testing.T) {
	completer := new(mocks.MockTextCompleter)
	completer.On("Complete", mock.Anything, mock.MatchedBy(func(in port.CompletionInput) bool {
		return assert.Contains(t, in.Prompt, `"Invoice (Generic)"`) &&
			assert.Contains(t, in.Prompt, "- Vendor Name\n") &&
			assert.Contains(t, in.Prompt, "- Warehouse Code\n")
	})).Return(&port.CompletionOutput{Text: `{"suggested_options":["Due Date"," Tax Amount ",""]}`}, nil)

	got, err := flows.Suggest(context.Background(), completer, flows.SuggestionInput{
		DocumentType:    "Invoice (Generic)",
		PrimaryGoal:     "Extract Key Invoice Data",
		SelectedDetails: []string{"Vendor Name"},
		CustomDetails:   []string{"Warehouse Code"},
	})

	require.NoError(t, err)
	assert.Equal(t, []string{"Due Date", "Tax Amount"}, got)
	completer.AssertExpectations(t)
}

func TestSuggest_DropsAlreadyChosenDetails(t *testing.T) {
	completer := new(mocks.MockTextCompleter)
	completer.On("Complete", mock.Anything, mock.Anything).
		Return(&port.CompletionOutput{Text: `{"suggested_options":["vendor name","Due Date","Warehouse Code"]}`}, nil)

	got, err := flows.Suggest(context.Background(), completer, flows.SuggestionInput{
		DocumentType:    "Invoice (Generic)",
		SelectedDetails: []string{"Vendor Name"},
		CustomDetails:   []string{"Warehouse Code"},
	})

	require.NoError(t, err)
	assert.Equal(t, []string{"Due Date"}, got)
}

func TestSuggest_EmptyGoalDefaults(t *testing.T) {
	completer := new(mocks.MockTextCompleter)
	completer.On("Complete", mock.Anything, mock.MatchedBy(func(in port.CompletionInput) bool {
		return assert.Contains(t, in.Prompt, "not yet specified") &&
			assert.Contains(t, in.Prompt, "- None\n")
	})).Return(&port.CompletionOutput{Text: `{"suggested_options":[]}`}, nil)

	got, err := flows.Suggest(context.Background(), completer, flows.SuggestionInput{DocumentType: "Receipt"})

	require.NoError(t, err)
	assert.Empty(t, got)
}
