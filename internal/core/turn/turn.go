// Package turn orders the systems that resolve the world after each player
// action. The game is synchronous: one player action runs one full pass.
package turn

// Phase defines execution ordering within a single turn.
type Phase int

const (
	PhaseMonsters   Phase = iota // 0: monster AI acts
	PhaseStatus                  // 1: timed statuses decrement (confusion expiry)
	PhaseVisibility              // 2: FOV recompute
	PhaseJournal                 // 3: event dispatch + journaling
	PhaseCleanup                 // 4: remove dead monsters
)

// System is the interface every turn system implements.
type System interface {
	Phase() Phase
	Update(turn int64)
}
