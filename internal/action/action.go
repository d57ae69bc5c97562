// Package action defines the player commands the turn loop can execute and
// the rejection signal handlers use to refuse invalid ones.
package action

import "fmt"

// Kind identifies a player command.
type Kind byte

const (
	KindWait Kind = iota
	KindMove
	KindUseItem
	KindPickup
	KindDrop
	KindDescend
)

// Point is a map tile coordinate.
type Point struct {
	X int
	Y int
}

// Action is one player command for the current turn.
type Action struct {
	Kind Kind

	// Move direction
	DX int
	DY int

	// UseItem / Drop
	ObjectID int32

	// UseItem target (for targeted consumables)
	Target    Point
	HasTarget bool
}

// ImpossibleError rejects an action that cannot be performed. The message is
// player-facing: the turn loop shows it in the message log, the turn does
// not advance, and nothing is consumed.
type ImpossibleError struct {
	Msg string
}

func (e *ImpossibleError) Error() string {
	return e.Msg
}

// Impossible builds an ImpossibleError with fmt formatting.
func Impossible(format string, args ...any) error {
	return &ImpossibleError{Msg: fmt.Sprintf(format, args...)}
}
