package turn

import "sort"

// Runner executes systems in phase order once per completed player action.
type Runner struct {
	systems []System
	sorted  bool
}

func NewRunner() *Runner {
	return &Runner{
		systems: make([]System, 0, 8),
	}
}

func (r *Runner) Register(s System) {
	r.systems = append(r.systems, s)
	r.sorted = false
}

// Advance runs all systems for the given turn number.
func (r *Runner) Advance(turn int64) {
	r.ensureSorted()
	for _, s := range r.systems {
		s.Update(turn)
	}
}

// AdvancePhase runs only the systems of one phase. Used for the free actions
// that resolve world state without spending a turn (e.g. the first FOV
// compute after level generation).
func (r *Runner) AdvancePhase(phase Phase, turn int64) {
	r.ensureSorted()
	for _, s := range r.systems {
		if s.Phase() == phase {
			s.Update(turn)
		}
	}
}

func (r *Runner) ensureSorted() {
	if !r.sorted {
		sort.SliceStable(r.systems, func(i, j int) bool {
			return r.systems[i].Phase() < r.systems[j].Phase()
		})
		r.sorted = true
	}
}
