package world

import "sync/atomic"

// itemObjIDCounter generates unique item object IDs.
// Starts high to avoid collision with actor IDs in save rows.
var itemObjIDCounter atomic.Int32

func init() {
	itemObjIDCounter.Store(500_000_000)
}

// NextItemObjID returns a unique object ID for an item instance.
func NextItemObjID() int32 {
	return itemObjIDCounter.Add(1)
}

// SetItemObjIDStart bumps the counter past IDs already used by saved games.
func SetItemObjIDStart(maxUsed int32) {
	for {
		cur := itemObjIDCounter.Load()
		if maxUsed <= cur {
			return
		}
		if itemObjIDCounter.CompareAndSwap(cur, maxUsed) {
			return
		}
	}
}

// InvItem represents a single item instance in an inventory or on the ground.
type InvItem struct {
	ObjectID  int32  // unique per instance
	ItemID    int32  // template ID
	Name      string // display name
	Glyph     rune
	Color     string
	Count     int32 // stack count (1 for non-stackable)
	Stackable bool
	Weight    int32 // per-unit weight
	UseType   string
}

// Inventory holds an actor's in-memory item list.
// An item belongs to at most one inventory: callers must Remove from the old
// owner (or the ground) before adding elsewhere.
type Inventory struct {
	Items    []*InvItem
	capacity int
}

// NewInventory creates an empty inventory with the given slot capacity.
func NewInventory(capacity int) *Inventory {
	if capacity <= 0 {
		capacity = 26
	}
	return &Inventory{
		Items:    make([]*InvItem, 0, 8),
		capacity: capacity,
	}
}

// FindByItemID returns the first item matching the template ID.
func (inv *Inventory) FindByItemID(itemID int32) *InvItem {
	for _, it := range inv.Items {
		if it.ItemID == itemID {
			return it
		}
	}
	return nil
}

// FindByObjectID returns the item with the given object ID.
func (inv *Inventory) FindByObjectID(objectID int32) *InvItem {
	for _, it := range inv.Items {
		if it.ObjectID == objectID {
			return it
		}
	}
	return nil
}

// Size returns the number of item slots used.
func (inv *Inventory) Size() int {
	return len(inv.Items)
}

// IsFull returns true if the inventory is at slot capacity.
func (inv *Inventory) IsFull() bool {
	return len(inv.Items) >= inv.capacity
}

// Add inserts an existing item instance, stacking onto a matching stackable
// slot. Returns the slot holding the item afterwards.
func (inv *Inventory) Add(item *InvItem) *InvItem {
	if item.Stackable {
		if existing := inv.FindByItemID(item.ItemID); existing != nil {
			existing.Count += item.Count
			return existing
		}
	}
	inv.Items = append(inv.Items, item)
	return item
}

// RemoveItem removes count from a stackable item or removes the item entirely.
// Returns true if the slot was freed, false if just decremented.
func (inv *Inventory) RemoveItem(objectID int32, count int32) (removed bool) {
	for i, it := range inv.Items {
		if it.ObjectID == objectID {
			if it.Stackable && it.Count > count {
				it.Count -= count
				return false
			}
			inv.Items = append(inv.Items[:i], inv.Items[i+1:]...)
			return true
		}
	}
	return false
}

// TotalWeight returns the total carried weight.
func (inv *Inventory) TotalWeight() int32 {
	var total int32
	for _, it := range inv.Items {
		total += it.Count * it.Weight
	}
	return total
}
