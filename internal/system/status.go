package system

import (
	"github.com/duskhall/server/internal/core/turn"
	"github.com/duskhall/server/internal/handler"
	"github.com/duskhall/server/internal/msglog"
	"github.com/duskhall/server/internal/world"
)

// StatusSystem ticks down timed conditions after the monsters have acted.
type StatusSystem struct {
	deps *handler.Deps
}

func NewStatusSystem(deps *handler.Deps) *StatusSystem {
	return &StatusSystem{deps: deps}
}

func (s *StatusSystem) Phase() turn.Phase { return turn.PhaseStatus }

func (s *StatusSystem) Update(_ int64) {
	s.deps.World.AllActors(func(a *world.ActorInfo) {
		if a.Dead || a.AI != world.AIConfused {
			return
		}
		a.ConfusedTurns--
		if a.ConfusedTurns > 0 {
			return
		}
		a.AI = a.PrevAI
		a.PrevAI = world.AINone
		s.deps.MsgLog.Addf(msglog.ColorDefault, "The %s is no longer confused.", a.Name)
	})
}
