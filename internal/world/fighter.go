package world

// Fighter holds the combat stats of an actor.
type Fighter struct {
	HP      int
	MaxHP   int
	Power   int
	Defense int
}

// Heal restores up to amount HP and returns the amount actually recovered.
// Returns 0 when already at full HP.
func (f *Fighter) Heal(amount int) int {
	if amount <= 0 || f.HP >= f.MaxHP {
		return 0
	}
	newHP := f.HP + amount
	if newHP > f.MaxHP {
		newHP = f.MaxHP
	}
	recovered := newHP - f.HP
	f.HP = newHP
	return recovered
}

// TakeDamage reduces HP, clamping at 0. Defense is applied by the attacker,
// not here — scroll damage ignores defense.
func (f *Fighter) TakeDamage(amount int) {
	if amount <= 0 {
		return
	}
	f.HP -= amount
	if f.HP < 0 {
		f.HP = 0
	}
}
