// Package msglog implements the in-game message log: colored player-facing
// messages with consecutive-duplicate stacking and a bounded history.
package msglog

import "fmt"

// Color classifies a message for rendering. The UI maps these to terminal
// attributes; game logic never deals in raw color codes.
type Color byte

const (
	ColorDefault Color = iota
	ColorWelcome
	ColorHealthRecovered
	ColorStatusApplied
	ColorNeedsTarget
	ColorImpossible
	ColorPlayerAttack
	ColorEnemyAttack
	ColorPlayerDie
	ColorEnemyDie
	ColorDescend
)

// Message is one log entry. Count > 1 means the same text repeated.
type Message struct {
	Text  string
	Color Color
	Count int
}

// FullText returns the display text including the repeat counter.
func (m *Message) FullText() string {
	if m.Count > 1 {
		return fmt.Sprintf("%s (x%d)", m.Text, m.Count)
	}
	return m.Text
}

// Log is a bounded message history. Single-goroutine access only.
type Log struct {
	messages []Message
	limit    int
}

// New creates a log keeping at most limit entries.
func New(limit int) *Log {
	if limit <= 0 {
		limit = 100
	}
	return &Log{
		messages: make([]Message, 0, limit),
		limit:    limit,
	}
}

// Add appends a message. A message identical to the previous one bumps its
// counter instead of adding a new entry.
func (l *Log) Add(text string, color Color) {
	if n := len(l.messages); n > 0 {
		last := &l.messages[n-1]
		if last.Text == text && last.Color == color {
			last.Count++
			return
		}
	}
	if len(l.messages) >= l.limit {
		copy(l.messages, l.messages[1:])
		l.messages = l.messages[:len(l.messages)-1]
	}
	l.messages = append(l.messages, Message{Text: text, Color: color, Count: 1})
}

// Addf is Add with fmt formatting.
func (l *Log) Addf(color Color, format string, args ...any) {
	l.Add(fmt.Sprintf(format, args...), color)
}

// Messages returns the history, oldest first.
func (l *Log) Messages() []Message {
	return l.messages
}

// Tail returns up to n most recent messages, oldest first.
func (l *Log) Tail(n int) []Message {
	if n <= 0 || len(l.messages) == 0 {
		return nil
	}
	if n > len(l.messages) {
		n = len(l.messages)
	}
	return l.messages[len(l.messages)-n:]
}
