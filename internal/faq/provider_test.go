package faq

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAnswerKnownQuestions(t *testing.T) {
	p := NewProvider()
	ctx := context.Background()

	tests := []struct {
		query    string
		contains string
	}{
		{"What are your hours?", "8AM - 6PM"},
		{"Are you open on weekends?", "Saturdays"},
		{"Where are you located?", "Main Street Hospital"},
		{"Do you accept Blue Cross insurance?", "insurance"},
		{"Can I park at your clinic?", "parking"},
		{"What should I bring to my appointment?", "photo ID"},
		{"What is your cancellation policy?", "24 hours"},
		{"How much is a consultation?", "fees vary"},
		{"Do I need to wear a mask?", "Masks are optional"},
	}
	for _, tt := range tests {
		answer, found, err := p.Answer(ctx, tt.query)
		require.NoError(t, err, tt.query)
		assert.True(t, found, "expected a match for %q", tt.query)
		assert.Contains(t, answer, tt.contains, "query %q", tt.query)
	}
}

func TestAnswerUnknownQuestions(t *testing.T) {
	p := NewProvider()
	ctx := context.Background()

	unknown := []string{
		"What's the meaning of life?",
		"How do I build a rocket?",
		"What stocks should I buy?",
		"",
		"   ",
	}
	for _, query := range unknown {
		answer, found, err := p.Answer(ctx, query)
		require.NoError(t, err, query)
		assert.False(t, found, "should not match %q", query)
		assert.Empty(t, answer)
	}
}

func TestAnswerFirstEntryWins(t *testing.T) {
	p := NewProviderWithEntries([]Entry{
		{Keywords: []string{"hours"}, Answer: "first"},
		{Keywords: []string{"hours", "open"}, Answer: "second"},
	})

	answer, found, err := p.Answer(context.Background(), "what hours are you open?")
	require.NoError(t, err)
	assert.True(t, found)
	assert.Equal(t, "first", answer)
}

func TestAnswerCancelledContext(t *testing.T) {
	p := NewProvider()
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, _, err := p.Answer(ctx, "hours?")
	assert.ErrorIs(t, err, context.Canceled)
}
