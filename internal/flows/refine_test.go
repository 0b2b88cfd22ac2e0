package flows_test

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"promptpilot/internal/domain"
	"promptpilot/internal/flows"
	"promptpilot/internal/port"
	"promptpilot/mocks"
)

func TestRefine_Success(t *testing.T) {
	completer := new(mocks.MockTextCompleter)
	completer.On("Complete", mock.Anything, mock.MatchedBy(func(in port.CompletionInput) bool {
		return assert.Contains(t, in.Prompt, "skip the cover page")
	})).Return(&port.CompletionOutput{Text: `{"refined_instructions":"Skip the cover page entirely."}`}, nil)

	refined, err := flows.Refine(context.Background(), completer, "please skip the cover page")

	require.NoError(t, err)
	assert.Equal(t, "Skip the cover page entirely.", refined)
	completer.AssertExpectations(t)
}

func TestRefine_FencedJSON(t *testing.T) {
	completer := new(mocks.MockTextCompleter)
	completer.On("Complete", mock.Anything, mock.Anything).
		Return(&port.CompletionOutput{Text: "```json\n{\"refined_instructions\":\"Tightened.\"}\n```"}, nil)

	refined, err := flows.Refine(context.Background(), completer, "text")

	require.NoError(t, err)
	assert.Equal(t, "Tightened.", refined)
}

func TestRefine_CompleterError(t *testing.T) {
	completer := new(mocks.MockTextCompleter)
	completer.On("Complete", mock.Anything, mock.Anything).Return(nil, errors.New("quota exceeded"))

	_, err := flows.Refine(context.Background(), completer, "text")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "quota exceeded")
}

func TestRefine_EmptyField(t *testing.T) {
	completer := new(mocks.MockTextCompleter)
	completer.On("Complete", mock.Anything, mock.Anything).
		Return(&port.CompletionOutput{Text: `{"refined_instructions":"  "}`}, nil)

	_, err := flows.Refine(context.Background(), completer, "text")
	assert.ErrorIs(t, err, domain.ErrEmptyCompletion)
}

func TestRefine_MalformedJSON(t *testing.T) {
	completer := new(mocks.MockTextCompleter)
	completer.On("Complete", mock.Anything, mock.Anything).
		Return(&port.CompletionOutput{Text: "sure, here are better instructions"}, nil)

	_, err := flows.Refine(context.Background(), completer, "text")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "parsing LLM JSON output")
}
