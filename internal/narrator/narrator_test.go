package narrator

import (
	"context"
	"encoding/json"
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/abhisek/cognitrain/internal/assessment"
	"github.com/abhisek/cognitrain/internal/llm"
)

var testScores = assessment.ScoreSet{
	MemoryNumbers: 80,
	MemoryWords:   60,
	Speed:         90,
	Logic:         40,
	WorkingMemory: 70,
}

func TestNarrateReturnsMessage(t *testing.T) {
	mock := llm.NewMockProvider(llm.MockResponse{
		Content: json.RawMessage(`{"message": "Your processing speed is remarkable. Keep nurturing your logic skills."}`),
	})
	svc := New(mock, DefaultConfig())

	msg, err := svc.Narrate(context.Background(), testScores)
	require.NoError(t, err)
	assert.Equal(t, "Your processing speed is remarkable. Keep nurturing your logic skills.", msg)
	assert.Equal(t, 1, mock.CallCount())

	req := mock.Calls[0]
	assert.Equal(t, ProfileSchema, req.Schema)
	assert.Contains(t, req.Messages[0].Content, "Speed: 90%")
	assert.Contains(t, req.Messages[0].Content, "strongest area appears to be Speed")
	assert.Contains(t, req.Messages[0].Content, "area for growth is Logic")
}

func TestNarrateProviderError(t *testing.T) {
	mock := llm.NewMockProvider(llm.MockResponse{
		Err: &llm.ErrProviderUnavailable{},
	})
	svc := New(mock, DefaultConfig())

	_, err := svc.Narrate(context.Background(), testScores)
	require.Error(t, err)

	var unavailable *llm.ErrProviderUnavailable
	assert.True(t, errors.As(err, &unavailable))
}

func TestNarrateEmptyMessage(t *testing.T) {
	mock := llm.NewMockProvider(llm.MockResponse{
		Content: json.RawMessage(`{"message": "   "}`),
	})
	svc := New(mock, DefaultConfig())

	_, err := svc.Narrate(context.Background(), testScores)
	require.Error(t, err)

	var invalid *llm.ErrInvalidResponse
	assert.True(t, errors.As(err, &invalid))
}

func TestNarrateMalformedResponse(t *testing.T) {
	mock := llm.NewMockProvider(llm.MockResponse{
		Content: json.RawMessage(`not json`),
	})
	svc := New(mock, DefaultConfig())

	_, err := svc.Narrate(context.Background(), testScores)
	require.Error(t, err)
	assert.True(t, strings.Contains(err.Error(), "parse narrative response"))
}

func TestFallbackIsNonEmpty(t *testing.T) {
	assert.NotEmpty(t, Fallback)
}
