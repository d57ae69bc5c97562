package system

import (
	"github.com/duskhall/server/internal/core/turn"
	"github.com/duskhall/server/internal/handler"
)

// VisibilitySystem recomputes the player's field of view once everything has
// moved, so the renderer and next turn's targeting see the settled world.
type VisibilitySystem struct {
	deps *handler.Deps
}

func NewVisibilitySystem(deps *handler.Deps) *VisibilitySystem {
	return &VisibilitySystem{deps: deps}
}

func (s *VisibilitySystem) Phase() turn.Phase { return turn.PhaseVisibility }

func (s *VisibilitySystem) Update(_ int64) {
	player := s.deps.World.Player
	if player == nil || player.Dead {
		return
	}
	s.deps.World.Map.ComputeFOV(player.X, player.Y, s.deps.Config.Dungeon.FOVRadius)
}
