package world

// GroundItem is an item instance lying on the map.
type GroundItem struct {
	Item *InvItem
	X    int
	Y    int
}

// GroundAt returns all items on the given tile.
func (s *State) GroundAt(x, y int) []*GroundItem {
	var out []*GroundItem
	for _, g := range s.ground {
		if g.X == x && g.Y == y {
			out = append(out, g)
		}
	}
	return out
}

// AllGround returns every ground item.
func (s *State) AllGround() []*GroundItem {
	return s.ground
}

// DropItem places an item on the map. Stackable items merge with a stack of
// the same template already on the tile.
func (s *State) DropItem(item *InvItem, x, y int) *GroundItem {
	if item.Stackable {
		for _, g := range s.ground {
			if g.X == x && g.Y == y && g.Item.ItemID == item.ItemID {
				g.Item.Count += item.Count
				return g
			}
		}
	}
	g := &GroundItem{Item: item, X: x, Y: y}
	s.ground = append(s.ground, g)
	return g
}

// PickupGround removes a ground item entry (the item moves to an inventory).
func (s *State) PickupGround(g *GroundItem) bool {
	for i, it := range s.ground {
		if it == g {
			s.ground = append(s.ground[:i], s.ground[i+1:]...)
			return true
		}
	}
	return false
}
