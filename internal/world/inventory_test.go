package world

import "testing"

func potion() *InvItem {
	return &InvItem{
		ObjectID:  NextItemObjID(),
		ItemID:    200,
		Name:      "healing potion",
		Count:     1,
		Stackable: true,
		Weight:    10,
	}
}

func scroll() *InvItem {
	return &InvItem{
		ObjectID: NextItemObjID(),
		ItemID:   202,
		Name:     "fireball scroll",
		Count:    1,
		Weight:   5,
	}
}

func TestAddStacksOnExistingSlot(t *testing.T) {
	inv := NewInventory(26)
	first := inv.Add(potion())
	second := inv.Add(potion())
	if first != second {
		t.Fatal("stackable add must reuse the existing slot")
	}
	if inv.Size() != 1 {
		t.Fatalf("expected 1 slot, got %d", inv.Size())
	}
	if first.Count != 2 {
		t.Fatalf("expected stack count 2, got %d", first.Count)
	}
}

func TestAddNonStackableUsesNewSlot(t *testing.T) {
	inv := NewInventory(26)
	inv.Add(scroll())
	inv.Add(scroll())
	if inv.Size() != 2 {
		t.Fatalf("expected 2 slots, got %d", inv.Size())
	}
}

func TestRemoveItemDecrementsStack(t *testing.T) {
	inv := NewInventory(26)
	it := inv.Add(potion())
	inv.Add(potion())

	if removed := inv.RemoveItem(it.ObjectID, 1); removed {
		t.Fatal("expected decrement, not slot removal")
	}
	if it.Count != 1 {
		t.Fatalf("expected count 1, got %d", it.Count)
	}
	if removed := inv.RemoveItem(it.ObjectID, 1); !removed {
		t.Fatal("expected slot removal on last charge")
	}
	if inv.Size() != 0 {
		t.Fatalf("expected empty inventory, got %d slots", inv.Size())
	}
}

func TestRemoveItemUnknownObjectID(t *testing.T) {
	inv := NewInventory(26)
	if inv.RemoveItem(12345, 1) {
		t.Fatal("removing an unknown object must report false")
	}
}

func TestIsFull(t *testing.T) {
	inv := NewInventory(2)
	inv.Add(scroll())
	if inv.IsFull() {
		t.Fatal("inventory with free slot reported full")
	}
	inv.Add(scroll())
	if !inv.IsFull() {
		t.Fatal("inventory at capacity not reported full")
	}
}

func TestFindByObjectID(t *testing.T) {
	inv := NewInventory(26)
	it := inv.Add(scroll())
	if got := inv.FindByObjectID(it.ObjectID); got != it {
		t.Fatal("FindByObjectID missed the stored item")
	}
	if got := inv.FindByObjectID(-1); got != nil {
		t.Fatalf("expected nil for unknown id, got %+v", got)
	}
}

func TestTotalWeight(t *testing.T) {
	inv := NewInventory(26)
	p := inv.Add(potion())
	inv.Add(potion())
	inv.Add(scroll())
	want := p.Count*p.Weight + 5
	if got := inv.TotalWeight(); got != want {
		t.Fatalf("expected weight %d, got %d", want, got)
	}
}
