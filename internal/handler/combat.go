package handler

import (
	"github.com/duskhall/server/internal/core/event"
	"github.com/duskhall/server/internal/msglog"
	"github.com/duskhall/server/internal/world"
	"go.uber.org/zap"
)

// DisplayName returns the actor's name as shown in messages: "you" for the
// player, "the <name>" otherwise.
func DisplayName(a *world.ActorInfo) string {
	if a.IsPlayer {
		return "you"
	}
	return "the " + a.Name
}

// MeleeAttack resolves a bump attack. Damage is power minus defense; scroll
// damage bypasses this path and ignores defense.
func MeleeAttack(attacker, target *world.ActorInfo, deps *Deps) {
	damage := attacker.Fighter.Power - target.Fighter.Defense

	color := msglog.ColorEnemyAttack
	if attacker.IsPlayer {
		color = msglog.ColorPlayerAttack
	}

	if damage > 0 {
		deps.MsgLog.Addf(color, "%s attacks %s for %d hit points.",
			capitalize(DisplayName(attacker)), DisplayName(target), damage)
		DealDamage(attacker.ID, target, damage, deps)
	} else {
		deps.MsgLog.Addf(color, "%s attacks %s but does no damage.",
			capitalize(DisplayName(attacker)), DisplayName(target))
	}
}

// DealDamage applies raw damage to a target and handles death.
func DealDamage(sourceID int32, target *world.ActorInfo, amount int, deps *Deps) {
	if target.Dead {
		return
	}
	target.Fighter.TakeDamage(amount)
	event.Emit(deps.Events, event.DamageDealt{
		SourceID: sourceID,
		TargetID: target.ID,
		Amount:   amount,
		Turn:     deps.World.Turn,
	})
	if target.Fighter.HP <= 0 {
		Kill(target, sourceID, deps)
	}
}

// Kill marks an actor dead, emits the death event, and awards score when the
// player made the kill.
func Kill(target *world.ActorInfo, killerID int32, deps *Deps) {
	if target.Dead {
		return
	}
	target.Dead = true
	target.Fighter.HP = 0

	if target.IsPlayer {
		deps.MsgLog.Add("You died!", msglog.ColorPlayerDie)
	} else {
		deps.MsgLog.Addf(msglog.ColorEnemyDie, "The %s is dead!", target.Name)
		if deps.World.Player != nil && killerID == deps.World.Player.ID {
			deps.World.Player.Score += target.XP
		}
	}

	event.Emit(deps.Events, event.ActorDied{
		ActorID:  target.ID,
		Name:     target.Name,
		IsPlayer: target.IsPlayer,
		KillerID: killerID,
		Turn:     deps.World.Turn,
		Depth:    deps.World.Depth,
		XP:       target.XP,
	})

	deps.Log.Debug("actor died",
		zap.String("name", target.Name),
		zap.Bool("player", target.IsPlayer),
		zap.Int64("turn", deps.World.Turn),
	)
}

func capitalize(s string) string {
	if s == "" {
		return s
	}
	b := []byte(s)
	if b[0] >= 'a' && b[0] <= 'z' {
		b[0] -= 'a' - 'A'
	}
	return string(b)
}
