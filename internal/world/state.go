package world

import "math/rand"

// State is the in-memory world for the current dungeon level.
// Accessed only from the game loop goroutine — no locks needed.
type State struct {
	Map    *GameMap
	Player *ActorInfo
	Turn   int64
	Depth  int
	Seed   int64

	actors      []*ActorInfo // monsters; the player is tracked separately
	ground      []*GroundItem
	rng         *rand.Rand
	nextActorID int32
}

// NewState creates an empty world seeded for deterministic generation.
func NewState(seed int64) *State {
	return &State{
		Seed:        seed,
		rng:         rand.New(rand.NewSource(seed)),
		nextActorID: 1,
		Depth:       1,
	}
}

// RNG exposes the world's random source for generation and AI rolls.
func (s *State) RNG() *rand.Rand {
	return s.rng
}

// RandInt returns a random int in [0, n).
func (s *State) RandInt(n int) int {
	if n <= 0 {
		return 0
	}
	return s.rng.Intn(n)
}

// NextActorID returns a unique actor ID.
func (s *State) NextActorID() int32 {
	id := s.nextActorID
	s.nextActorID++
	return id
}

// AddMonster registers a monster in the world.
func (s *State) AddMonster(a *ActorInfo) {
	s.actors = append(s.actors, a)
}

// Monsters returns the live monster list (dead entries included until the
// cleanup phase removes them).
func (s *State) Monsters() []*ActorInfo {
	return s.actors
}

// AllActors visits the player and every monster.
func (s *State) AllActors(fn func(*ActorInfo)) {
	if s.Player != nil {
		fn(s.Player)
	}
	for _, a := range s.actors {
		fn(a)
	}
}

// ActorByID returns the actor with the given ID, dead or alive, or nil.
func (s *State) ActorByID(id int32) *ActorInfo {
	if s.Player != nil && s.Player.ID == id {
		return s.Player
	}
	for _, a := range s.actors {
		if a.ID == id {
			return a
		}
	}
	return nil
}

// ActorAt returns the living actor standing on (x, y), or nil.
func (s *State) ActorAt(x, y int) *ActorInfo {
	if s.Player != nil && s.Player.Alive() && s.Player.X == x && s.Player.Y == y {
		return s.Player
	}
	for _, a := range s.actors {
		if a.Alive() && a.X == x && a.Y == y {
			return a
		}
	}
	return nil
}

// IsBlocked reports whether (x, y) cannot be walked onto.
func (s *State) IsBlocked(x, y int) bool {
	if !s.Map.At(x, y).Walkable {
		return true
	}
	return s.ActorAt(x, y) != nil
}

// RemoveDead deletes dead monsters from the actor list. The player is never
// removed; player death ends the run instead.
func (s *State) RemoveDead() int {
	removed := 0
	kept := s.actors[:0]
	for _, a := range s.actors {
		if a.Dead {
			removed++
			continue
		}
		kept = append(kept, a)
	}
	s.actors = kept
	return removed
}

// ResetLevel clears level-local state (monsters, ground items, map) while
// keeping the player, turn counter, and RNG. Used when descending.
func (s *State) ResetLevel() {
	s.actors = s.actors[:0]
	s.ground = s.ground[:0]
	s.Map = nil
}
