package system

import (
	"github.com/duskhall/server/internal/core/turn"
	"github.com/duskhall/server/internal/handler"
)

// CleanupSystem sweeps dead monsters from the actor list at the end of the
// turn. Corpses have already been announced and journalled by then.
type CleanupSystem struct {
	deps *handler.Deps
}

func NewCleanupSystem(deps *handler.Deps) *CleanupSystem {
	return &CleanupSystem{deps: deps}
}

func (s *CleanupSystem) Phase() turn.Phase { return turn.PhaseCleanup }

func (s *CleanupSystem) Update(_ int64) {
	s.deps.World.RemoveDead()
}
