// Package cardtext turns delimited question/answer text into flashcard pairs.
//
// Two dialects are understood. Bulk text is line oriented: a "Q:" line opens
// a card and the next "A:" line closes it. AI responses additionally end each
// card with a "---" line, and a card's question or answer may run over
// several lines up to the next marker.
package cardtext

import (
	"errors"
	"strings"
)

// ErrNoFlashcards is returned when the input holds no complete card.
var ErrNoFlashcards = errors.New("no flashcards found")

const (
	questionPrefix  = "Q:"
	answerPrefix    = "A:"
	recordSeparator = "---"
)

type Card struct {
	Front string `json:"front"`
	Back  string `json:"back"`
}

// ParseBulk reads single-line Q:/A: pairs. Lines matching neither prefix are
// skipped, and a Q: with no A: after it is dropped.
func ParseBulk(text string) ([]Card, error) {
	var (
		cards   []Card
		front   string
		pending bool
	)

	for _, line := range splitLines(text) {
		line = strings.TrimSpace(line)
		switch {
		case strings.HasPrefix(line, questionPrefix):
			front = strings.TrimSpace(strings.TrimPrefix(line, questionPrefix))
			pending = front != ""
		case strings.HasPrefix(line, answerPrefix):
			if !pending {
				continue
			}
			back := strings.TrimSpace(strings.TrimPrefix(line, answerPrefix))
			if back == "" {
				continue
			}
			cards = append(cards, Card{Front: front, Back: back})
			front, pending = "", false
		}
	}

	if len(cards) == 0 {
		return nil, ErrNoFlashcards
	}
	return cards, nil
}

// ParseAIResponse reads "Q: ... A: ... ---" records from model output. The
// question starts at the first "Q:" of a record, wherever it sits on its
// line; the answer starts on a line beginning with "A:". Anything after the last separator is an unfinished record and is ignored,
// as are records whose question or answer is blank.
func ParseAIResponse(text string) ([]Card, error) {
	var (
		cards  []Card
		record []string
	)

	for _, line := range splitLines(text) {
		if strings.TrimSpace(line) == recordSeparator {
			if c, ok := parseRecord(record); ok {
				cards = append(cards, c)
			}
			record = record[:0]
			continue
		}
		record = append(record, line)
	}

	if len(cards) == 0 {
		return nil, ErrNoFlashcards
	}
	return cards, nil
}

func parseRecord(lines []string) (Card, bool) {
	var (
		front, back []string
		target      *[]string
	)

	for _, line := range lines {
		trimmed := strings.TrimSpace(line)
		q := strings.Index(trimmed, questionPrefix)
		switch {
		case target == nil && q >= 0:
			// Models often number their cards ("1. Q: ...").
			front = append(front, trimmed[q+len(questionPrefix):])
			target = &front
		case target == &front && strings.HasPrefix(trimmed, answerPrefix):
			back = append(back, strings.TrimPrefix(trimmed, answerPrefix))
			target = &back
		case target != nil:
			*target = append(*target, line)
		}
	}

	c := Card{
		Front: strings.TrimSpace(strings.Join(front, "\n")),
		Back:  strings.TrimSpace(strings.Join(back, "\n")),
	}
	return c, c.Front != "" && c.Back != ""
}

func splitLines(text string) []string {
	text = strings.ReplaceAll(text, "\r\n", "\n")
	return strings.Split(text, "\n")
}
