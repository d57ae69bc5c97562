package system

import (
	"github.com/duskhall/server/internal/action"
	"github.com/duskhall/server/internal/core/event"
	"github.com/duskhall/server/internal/data"
	"github.com/duskhall/server/internal/handler"
	"github.com/duskhall/server/internal/msglog"
	"github.com/duskhall/server/internal/world"
	"go.uber.org/zap"
)

// ItemUseSystem activates consumables: potions and scrolls. Effect parameters
// come from Lua (scripts/item/consumables.lua); this file owns the targeting
// rules and when the item is actually spent.
type ItemUseSystem struct {
	deps *handler.Deps
}

func NewItemUseSystem(deps *handler.Deps) *ItemUseSystem {
	return &ItemUseSystem{deps: deps}
}

// UseConsumable activates one charge of invItem for the consumer. A returned
// ImpossibleError means the action was rejected: no effect applied, nothing
// consumed, no turn spent. target carries the selected tile for targeted
// scrolls; auto-targeting effects ignore it.
func (s *ItemUseSystem) UseConsumable(consumer *world.ActorInfo, invItem *world.InvItem, info *data.ItemInfo, target *action.Point) error {
	effect := s.deps.Scripting.GetConsumableEffect(int(invItem.ItemID))
	if effect == nil {
		s.deps.Log.Debug("unhandled consumable use",
			zap.Int32("item_id", invItem.ItemID),
			zap.String("use_type", info.UseType),
		)
		return action.Impossible("nothing happens.")
	}

	if info.Targeting != data.TargetNone && target == nil {
		return action.Impossible("no target selected.")
	}

	var err error
	switch effect.Type {
	case "heal":
		err = s.applyHeal(consumer, invItem, effect.Amount)
	case "confusion":
		// The effect type comes from Lua and the targeting class from YAML;
		// the two files are edited independently, so re-check here.
		if target == nil {
			return action.Impossible("no target selected.")
		}
		err = s.applyConfusion(consumer, *target, effect.Turns)
	case "fireball":
		if target == nil {
			return action.Impossible("no target selected.")
		}
		err = s.applyFireball(consumer, *target, effect.Damage, effect.Radius)
	case "lightning":
		err = s.applyLightning(consumer, effect.Damage, effect.Range)
	default:
		s.deps.Log.Warn("unknown consumable effect type",
			zap.Int32("item_id", invItem.ItemID),
			zap.String("type", effect.Type),
		)
		return action.Impossible("nothing happens.")
	}
	if err != nil {
		return err
	}

	s.consume(consumer, invItem)
	return nil
}

// applyHeal restores HP. Drinking at full health is rejected, so the potion
// is never wasted.
func (s *ItemUseSystem) applyHeal(consumer *world.ActorInfo, invItem *world.InvItem, amount int) error {
	healAmt := s.deps.Scripting.CalcHealAmount(amount)
	recovered := consumer.Fighter.Heal(healAmt)
	if recovered <= 0 {
		return action.Impossible("your health is already full.")
	}
	s.deps.MsgLog.Addf(msglog.ColorHealthRecovered,
		"You consume the %s, and recover %d HP!", invItem.Name, recovered)
	return nil
}

// applyConfusion swaps the target's AI to a random stumble for turns turns.
func (s *ItemUseSystem) applyConfusion(consumer *world.ActorInfo, target action.Point, turns int) error {
	if !s.deps.World.Map.IsVisible(target.X, target.Y) {
		return action.Impossible("you cannot target an area that you cannot see.")
	}
	victim := s.deps.World.ActorAt(target.X, target.Y)
	if victim == nil {
		return action.Impossible("you must select an enemy to target.")
	}
	if victim == consumer {
		return action.Impossible("you cannot confuse yourself!")
	}

	s.deps.MsgLog.Addf(msglog.ColorStatusApplied,
		"The eyes of the %s look vacant, as it starts to stumble around!", victim.Name)
	victim.Confuse(turns)
	return nil
}

// applyFireball damages every actor within radius of the target tile.
// The consumer is not exempt.
func (s *ItemUseSystem) applyFireball(consumer *world.ActorInfo, target action.Point, damage, radius int) error {
	if !s.deps.World.Map.IsVisible(target.X, target.Y) {
		return action.Impossible("you cannot target an area that you cannot see.")
	}

	var hit []*world.ActorInfo
	s.deps.World.AllActors(func(a *world.ActorInfo) {
		if a.Alive() && a.DistanceTo(target.X, target.Y) <= float64(radius) {
			hit = append(hit, a)
		}
	})
	if len(hit) == 0 {
		return action.Impossible("there are no targets in the radius.")
	}

	for _, a := range hit {
		if a.IsPlayer {
			s.deps.MsgLog.Addf(msglog.ColorEnemyAttack,
				"You are engulfed in a fiery explosion, taking %d damage!", damage)
		} else {
			s.deps.MsgLog.Addf(msglog.ColorPlayerAttack,
				"The %s is engulfed in a fiery explosion, taking %d damage!",
				a.Name, damage)
		}
		handler.DealDamage(consumer.ID, a, damage, s.deps)
	}
	return nil
}

// applyLightning strikes the closest visible actor within maximum range,
// excluding the consumer.
func (s *ItemUseSystem) applyLightning(consumer *world.ActorInfo, damage, maxRange int) error {
	var victim *world.ActorInfo
	closest := float64(maxRange) + 1.0

	s.deps.World.AllActors(func(a *world.ActorInfo) {
		if a == consumer || !a.Alive() {
			return
		}
		if !s.deps.World.Map.IsVisible(a.X, a.Y) {
			return
		}
		dist := consumer.DistanceTo(a.X, a.Y)
		if dist < closest {
			victim = a
			closest = dist
		}
	})

	if victim == nil {
		return action.Impossible("no enemy is close enough to strike.")
	}

	s.deps.MsgLog.Addf(msglog.ColorPlayerAttack,
		"A lightning bolt strikes the %s with a loud thunder, for %d damage!",
		victim.Name, damage)
	handler.DealDamage(consumer.ID, victim, damage, s.deps)
	return nil
}

// consume spends one charge and removes empty slots from the inventory.
func (s *ItemUseSystem) consume(consumer *world.ActorInfo, invItem *world.InvItem) {
	if consumer.Inv != nil {
		consumer.Inv.RemoveItem(invItem.ObjectID, 1)
	}
	event.Emit(s.deps.Events, event.ItemConsumed{
		ActorID: consumer.ID,
		ItemID:  invItem.ItemID,
		Name:    invItem.Name,
		Turn:    s.deps.World.Turn,
		Depth:   s.deps.World.Depth,
	})
}
