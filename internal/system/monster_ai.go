package system

import (
	"github.com/duskhall/server/internal/core/turn"
	"github.com/duskhall/server/internal/handler"
	"github.com/duskhall/server/internal/world"
)

// MonsterAISystem moves every living monster once per turn. Hostile monsters
// hunt the player when they can see him; confused ones stumble into a random
// adjacent tile and attack whatever they bump into.
type MonsterAISystem struct {
	deps *handler.Deps
}

func NewMonsterAISystem(deps *handler.Deps) *MonsterAISystem {
	return &MonsterAISystem{deps: deps}
}

func (s *MonsterAISystem) Phase() turn.Phase { return turn.PhaseMonsters }

func (s *MonsterAISystem) Update(_ int64) {
	for _, m := range s.deps.World.Monsters() {
		if m.Dead {
			continue
		}
		switch m.AI {
		case world.AIConfused:
			s.stumble(m)
		case world.AIHostile:
			s.hunt(m)
		}
	}
}

var stumbleDirs = [8][2]int{
	{-1, -1}, {0, -1}, {1, -1},
	{-1, 0}, {1, 0},
	{-1, 1}, {0, 1}, {1, 1},
}

// stumble picks a random direction and bump-attacks anything there, player
// or monster alike.
func (s *MonsterAISystem) stumble(m *world.ActorInfo) {
	d := stumbleDirs[s.deps.World.RandInt(len(stumbleDirs))]
	nx, ny := m.X+d[0], m.Y+d[1]

	if target := s.deps.World.ActorAt(nx, ny); target != nil && target != m {
		handler.MeleeAttack(m, target, s.deps)
		return
	}
	if s.deps.World.Map.At(nx, ny).Walkable {
		m.X = nx
		m.Y = ny
	}
}

func (s *MonsterAISystem) hunt(m *world.ActorInfo) {
	player := s.deps.World.Player
	if player == nil || player.Dead {
		return
	}
	if m.DistanceTo(player.X, player.Y) > float64(m.Vision) {
		return
	}
	if !s.deps.World.Map.LineOfSight(m.X, m.Y, player.X, player.Y) {
		return
	}

	if world.Chebyshev(m.X, m.Y, player.X, player.Y) <= 1 {
		handler.MeleeAttack(m, player, s.deps)
		return
	}
	s.stepToward(m, player.X, player.Y)
}

// stepToward takes the greedy diagonal step, falling back to each axis when
// the preferred tile is blocked.
func (s *MonsterAISystem) stepToward(m *world.ActorInfo, tx, ty int) {
	dx := sign(tx - m.X)
	dy := sign(ty - m.Y)

	candidates := [3][2]int{{dx, dy}, {dx, 0}, {0, dy}}
	for _, c := range candidates {
		if c[0] == 0 && c[1] == 0 {
			continue
		}
		nx, ny := m.X+c[0], m.Y+c[1]
		if !s.deps.World.Map.At(nx, ny).Walkable {
			continue
		}
		if s.deps.World.ActorAt(nx, ny) != nil {
			continue
		}
		m.X = nx
		m.Y = ny
		return
	}
}

func sign(v int) int {
	switch {
	case v < 0:
		return -1
	case v > 0:
		return 1
	}
	return 0
}
