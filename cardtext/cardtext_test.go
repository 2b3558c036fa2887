package cardtext

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseBulk(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		input   string
		want    []Card
		wantErr error
	}{
		{
			name:  "two cards",
			input: "Q: Capital of France?\nA: Paris\nQ: 2+2?\nA: 4",
			want:  []Card{{Front: "Capital of France?", Back: "Paris"}, {Front: "2+2?", Back: "4"}},
		},
		{
			name:  "noise lines are ignored, not concatenated",
			input: "Chapter 1\nQ: Term\nsome note\nA: Definition\ncontinued answer\n",
			want:  []Card{{Front: "Term", Back: "Definition"}},
		},
		{
			name:  "crlf and indentation",
			input: "  Q:  Hola \r\n  A: Hello  \r\n",
			want:  []Card{{Front: "Hola", Back: "Hello"}},
		},
		{
			name:  "second question replaces pending one",
			input: "Q: first\nQ: second\nA: answer",
			want:  []Card{{Front: "second", Back: "answer"}},
		},
		{
			name:  "answer without question is skipped",
			input: "A: orphan\nQ: q\nA: a",
			want:  []Card{{Front: "q", Back: "a"}},
		},
		{
			name:    "unterminated question",
			input:   "Q: what is missing?",
			wantErr: ErrNoFlashcards,
		},
		{
			name:    "empty",
			input:   "",
			wantErr: ErrNoFlashcards,
		},
		{
			name:    "blank fields",
			input:   "Q:\nA: x\nQ: y\nA:   ",
			wantErr: ErrNoFlashcards,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			got, err := ParseBulk(tt.input)
			if tt.wantErr != nil {
				require.Error(t, err)
				assert.True(t, errors.Is(err, tt.wantErr))
				assert.Empty(t, got)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestParseAIResponse(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		input   string
		want    []Card
		wantErr error
	}{
		{
			name:  "two records",
			input: "Q: A?\nA: B\n---\nQ: C?\nA: D\n---",
			want:  []Card{{Front: "A?", Back: "B"}, {Front: "C?", Back: "D"}},
		},
		{
			name:  "preamble and multi-line answer",
			input: "Here are your flashcards:\n\nQ: What is Go?\nA: A language\nfrom Google.\n---\n",
			want:  []Card{{Front: "What is Go?", Back: "A language\nfrom Google."}},
		},
		{
			name:  "record after last separator is dropped",
			input: "Q: one\nA: 1\n---\nQ: two\nA: 2",
			want:  []Card{{Front: "one", Back: "1"}},
		},
		{
			name:  "blank answer discards record",
			input: "Q: one\nA:   \n---\nQ: two\nA: 2\n---",
			want:  []Card{{Front: "two", Back: "2"}},
		},
		{
			name:  "separator with surrounding spaces",
			input: "Q: x\r\nA: y\r\n  ---  \r\n",
			want:  []Card{{Front: "x", Back: "y"}},
		},
		{
			name:  "numbered records",
			input: "1. Q: What is a goroutine?\nA: A lightweight thread\n---\n2) Q: Who made Go?\nA: Google\n---\n",
			want:  []Card{{Front: "What is a goroutine?", Back: "A lightweight thread"}, {Front: "Who made Go?", Back: "Google"}},
		},
		{
			name:    "question only",
			input:   "Q: lonely\n---",
			wantErr: ErrNoFlashcards,
		},
		{
			name:    "no separators",
			input:   "Q: a\nA: b",
			wantErr: ErrNoFlashcards,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			got, err := ParseAIResponse(tt.input)
			if tt.wantErr != nil {
				require.ErrorIs(t, err, tt.wantErr)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}
