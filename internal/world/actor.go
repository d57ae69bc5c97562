package world

// AIKind selects an actor's behavior. Swappable at runtime: the confusion
// scroll replaces a monster's AI and restores the previous one on expiry.
type AIKind byte

const (
	AINone     AIKind = 0 // the player, or inert actors
	AIHostile  AIKind = 1
	AIConfused AIKind = 2
)

// ActorInfo holds in-memory data for one actor (player or monster).
// Accessed only from the game loop goroutine — no locks needed.
type ActorInfo struct {
	ID         int32
	TemplateID int32 // monster template, 0 for the player
	Name       string
	Glyph      rune
	Color      string
	X          int
	Y          int
	Fighter    Fighter
	Dead       bool
	IsPlayer   bool

	// AI state
	AI            AIKind
	PrevAI        AIKind // restored when confusion expires
	ConfusedTurns int
	Vision        int

	XP int // awarded to the player on kill

	// Player-only
	Inv   *Inventory
	Depth int
	Score int
}

// Alive reports whether the actor can still act or be targeted.
func (a *ActorInfo) Alive() bool {
	return !a.Dead && a.Fighter.HP > 0
}

// Confuse swaps the actor's AI to confused for the given number of turns.
// Re-applying while already confused refreshes the timer without chaining
// PrevAI, so expiry always restores the original behavior.
func (a *ActorInfo) Confuse(turns int) {
	if a.AI != AIConfused {
		a.PrevAI = a.AI
		a.AI = AIConfused
	}
	a.ConfusedTurns = turns
}

// DistanceTo returns the Euclidean distance to the given tile.
func (a *ActorInfo) DistanceTo(x, y int) float64 {
	return Distance(a.X, a.Y, x, y)
}
