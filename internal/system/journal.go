package system

import (
	"github.com/duskhall/server/internal/core/event"
	"github.com/duskhall/server/internal/core/turn"
	"github.com/duskhall/server/internal/handler"
	"github.com/duskhall/server/internal/persist"
)

// JournalSystem dispatches the turn's queued events and records the notable
// ones as run-journal entries. Entries accumulate in memory and are flushed
// by the autosave; without a database the buffer is simply dropped on Drain.
type JournalSystem struct {
	deps    *handler.Deps
	pending []persist.JournalEntry
}

func NewJournalSystem(deps *handler.Deps) *JournalSystem {
	s := &JournalSystem{deps: deps}

	event.Subscribe(deps.Events, func(ev event.ActorDied) {
		typ, subject := "kill", ev.Name
		if ev.IsPlayer {
			typ = "death"
		}
		s.pending = append(s.pending, persist.JournalEntry{
			CharID:    deps.CharID,
			EventType: typ,
			Subject:   subject,
			Amount:    int32(ev.XP),
			Depth:     ev.Depth,
			Turn:      ev.Turn,
		})
	})
	event.Subscribe(deps.Events, func(ev event.ItemConsumed) {
		s.pending = append(s.pending, persist.JournalEntry{
			CharID:    deps.CharID,
			EventType: "consume",
			Subject:   ev.Name,
			ItemID:    ev.ItemID,
			Depth:     ev.Depth,
			Turn:      ev.Turn,
		})
	})
	event.Subscribe(deps.Events, func(ev event.PlayerDescended) {
		s.pending = append(s.pending, persist.JournalEntry{
			CharID:    deps.CharID,
			EventType: "descend",
			Depth:     ev.Depth,
			Turn:      ev.Turn,
		})
	})

	return s
}

func (s *JournalSystem) Phase() turn.Phase { return turn.PhaseJournal }

func (s *JournalSystem) Update(_ int64) {
	s.deps.Events.DispatchAll()
}

// Drain returns the buffered entries and resets the buffer.
func (s *JournalSystem) Drain() []persist.JournalEntry {
	out := s.pending
	s.pending = nil
	return out
}
