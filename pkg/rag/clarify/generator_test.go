package clarify

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"wp-troubleshooting-be/internal/constant"
	"wp-troubleshooting-be/internal/pkg/logger"
	"wp-troubleshooting-be/pkg/llm"
)

// stubProvider returns a canned response or error and records the last call.
type stubProvider struct {
	response string
	err      error
	calls    int
}

func (s *stubProvider) Chat(ctx context.Context, history []llm.Message, options ...llm.Option) (string, error) {
	s.calls++
	if s.err != nil {
		return "", s.err
	}
	return s.response, nil
}

func (s *stubProvider) Generate(ctx context.Context, prompt string, options ...llm.Option) (string, error) {
	return s.Chat(ctx, []llm.Message{{Role: constant.ChatMessageRoleUser, Content: prompt}}, options...)
}

func TestGenerateParsesQuestions(t *testing.T) {
	provider := &stubProvider{response: "1. Which plugin?\n\n2. Since when?\n3. Any error message?\n"}
	g := NewGenerator(provider, logger.NewNoopLogger())

	questions := g.Generate(context.Background(), "help", nil, nil, nil)

	require.Len(t, questions, 3)
	assert.Equal(t, "1. Which plugin?", questions[0])
	assert.Equal(t, "2. Since when?", questions[1])
	assert.Equal(t, 1, provider.calls)
}

func TestGenerateCapsAtFiveQuestions(t *testing.T) {
	provider := &stubProvider{response: "q1\nq2\nq3\nq4\nq5\nq6\nq7"}
	g := NewGenerator(provider, logger.NewNoopLogger())

	questions := g.Generate(context.Background(), "help", nil, nil, nil)

	require.Len(t, questions, 5)
	assert.Equal(t, "q5", questions[4])
}

func TestGenerateFallsBackOnError(t *testing.T) {
	provider := &stubProvider{err: errors.New("connection refused")}
	g := NewGenerator(provider, logger.NewNoopLogger())

	questions := g.Generate(context.Background(), "help", nil, nil, nil)

	assert.Equal(t, constant.FallbackClarifyingQuestions, questions)
}

func TestGenerateFallsBackOnEmptyResponse(t *testing.T) {
	for _, response := range []string{"", "   \n  \n"} {
		provider := &stubProvider{response: response}
		g := NewGenerator(provider, logger.NewNoopLogger())

		questions := g.Generate(context.Background(), "help", nil, nil, nil)

		assert.Equal(t, constant.FallbackClarifyingQuestions, questions)
	}
}
