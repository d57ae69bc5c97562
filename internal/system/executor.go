package system

import (
	"github.com/duskhall/server/internal/action"
	"github.com/duskhall/server/internal/core/event"
	"github.com/duskhall/server/internal/data"
	"github.com/duskhall/server/internal/dungeon"
	"github.com/duskhall/server/internal/handler"
	"github.com/duskhall/server/internal/msglog"
	"github.com/duskhall/server/internal/world"
	"go.uber.org/zap"
)

// Executor runs one player action against the world. A nil return means the
// action succeeded and the turn advances; an ImpossibleError means the
// action was rejected and the turn is not spent.
type Executor struct {
	deps    *handler.Deps
	itemUse *ItemUseSystem
}

func NewExecutor(deps *handler.Deps, itemUse *ItemUseSystem) *Executor {
	return &Executor{deps: deps, itemUse: itemUse}
}

func (e *Executor) Execute(a action.Action) error {
	player := e.deps.World.Player
	if player == nil || player.Dead {
		return action.Impossible("you are dead.")
	}

	switch a.Kind {
	case action.KindWait:
		return nil
	case action.KindMove:
		return e.move(player, a.DX, a.DY)
	case action.KindPickup:
		return e.pickup(player)
	case action.KindDrop:
		return e.drop(player, a.ObjectID)
	case action.KindDescend:
		return e.descend(player)
	case action.KindUseItem:
		return e.useItem(player, a)
	}
	return action.Impossible("nothing happens.")
}

// move steps the player, or bump-attacks the actor in the way.
func (e *Executor) move(player *world.ActorInfo, dx, dy int) error {
	nx, ny := player.X+dx, player.Y+dy

	if target := e.deps.World.ActorAt(nx, ny); target != nil && target != player {
		handler.MeleeAttack(player, target, e.deps)
		return nil
	}
	if !e.deps.World.Map.At(nx, ny).Walkable {
		return action.Impossible("that way is blocked.")
	}
	player.X = nx
	player.Y = ny
	return nil
}

func (e *Executor) pickup(player *world.ActorInfo) error {
	ground := e.deps.World.GroundAt(player.X, player.Y)
	if len(ground) == 0 {
		return action.Impossible("there is nothing here to pick up.")
	}
	if player.Inv.IsFull() {
		return action.Impossible("your inventory is full.")
	}

	g := ground[0]
	e.deps.World.PickupGround(g)
	player.Inv.Add(g.Item)
	e.deps.MsgLog.Addf(msglog.ColorDefault, "You picked up the %s!", g.Item.Name)
	return nil
}

func (e *Executor) drop(player *world.ActorInfo, objectID int32) error {
	item := player.Inv.FindByObjectID(objectID)
	if item == nil {
		return action.Impossible("you do not have that item.")
	}

	removed := player.Inv.RemoveItem(objectID, 1)
	dropped := item
	if !removed {
		// Slot still holds the rest of the stack — split one charge off.
		dropped = &world.InvItem{
			ObjectID:  world.NextItemObjID(),
			ItemID:    item.ItemID,
			Name:      item.Name,
			Glyph:     item.Glyph,
			Color:     item.Color,
			Count:     1,
			Stackable: item.Stackable,
			Weight:    item.Weight,
			UseType:   item.UseType,
		}
	}
	e.deps.World.DropItem(dropped, player.X, player.Y)
	e.deps.MsgLog.Addf(msglog.ColorDefault, "You dropped the %s.", item.Name)
	return nil
}

// descend regenerates the level one depth down.
func (e *Executor) descend(player *world.ActorInfo) error {
	if !e.deps.World.Map.IsStairs(player.X, player.Y) {
		return action.Impossible("there are no stairs here.")
	}

	st := e.deps.World
	st.Depth++
	player.Depth = st.Depth
	st.ResetLevel()
	dungeon.Generate(e.deps.Config.Dungeon, st, e.deps.Items, e.deps.Monsters)

	e.deps.MsgLog.Add("You descend the staircase.", msglog.ColorDescend)
	event.Emit(e.deps.Events, event.PlayerDescended{Depth: st.Depth, Turn: st.Turn})
	e.deps.Log.Info("descended",
		zap.Int("depth", st.Depth),
		zap.Int64("turn", st.Turn),
	)
	return nil
}

func (e *Executor) useItem(player *world.ActorInfo, a action.Action) error {
	invItem := player.Inv.FindByObjectID(a.ObjectID)
	if invItem == nil {
		return action.Impossible("you do not have that item.")
	}
	info := e.deps.Items.Get(invItem.ItemID)
	if info == nil || info.UseType != "consumable" {
		return action.Impossible("the %s cannot be used.", invItem.Name)
	}

	var target *action.Point
	if a.HasTarget {
		t := a.Target
		target = &t
	}
	return e.itemUse.UseConsumable(player, invItem, info, target)
}

// TargetingFor reports how the UI must acquire a target before the item can
// be used: none for potions and auto-targeting scrolls, single or area for
// the targeted ones.
func (e *Executor) TargetingFor(player *world.ActorInfo, objectID int32) (data.Targeting, int) {
	invItem := player.Inv.FindByObjectID(objectID)
	if invItem == nil {
		return data.TargetNone, 0
	}
	info := e.deps.Items.Get(invItem.ItemID)
	if info == nil {
		return data.TargetNone, 0
	}
	radius := 0
	if info.Targeting == data.TargetArea {
		if eff := e.deps.Scripting.GetConsumableEffect(int(invItem.ItemID)); eff != nil {
			radius = eff.Radius
		}
	}
	return info.Targeting, radius
}
