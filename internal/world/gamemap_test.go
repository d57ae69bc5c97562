package world

import "testing"

// openMap returns a w×h map of open floor.
func openMap(w, h int) *GameMap {
	m := NewGameMap(w, h)
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			m.SetTile(x, y, TileFloor)
		}
	}
	return m
}

func TestComputeFOVRadius(t *testing.T) {
	m := openMap(21, 21)
	m.ComputeFOV(10, 10, 5)

	if !m.IsVisible(10, 10) {
		t.Fatal("origin must be visible")
	}
	if !m.IsVisible(15, 10) {
		t.Fatal("tile at exact radius must be visible")
	}
	if m.IsVisible(16, 10) {
		t.Fatal("tile beyond radius must not be visible")
	}
	// Euclidean, not Chebyshev: the far diagonal corner is out of range.
	if m.IsVisible(14, 14) {
		t.Fatal("diagonal tile beyond euclidean radius must not be visible")
	}
}

func TestComputeFOVWallBlocksSight(t *testing.T) {
	m := openMap(21, 21)
	m.SetTile(12, 10, TileWall)
	m.ComputeFOV(10, 10, 6)

	if !m.IsVisible(12, 10) {
		t.Fatal("the blocking wall itself must be visible")
	}
	if m.IsVisible(14, 10) {
		t.Fatal("tile behind a wall must not be visible")
	}
}

func TestExploredAccumulates(t *testing.T) {
	m := openMap(21, 21)
	m.ComputeFOV(2, 2, 3)
	if !m.IsExplored(4, 2) {
		t.Fatal("seen tile must be explored")
	}
	m.ComputeFOV(18, 18, 3)
	if m.IsVisible(4, 2) {
		t.Fatal("old tile must no longer be visible")
	}
	if !m.IsExplored(4, 2) {
		t.Fatal("explored set must accumulate")
	}
}

func TestOutOfBoundsReadsAsWall(t *testing.T) {
	m := NewGameMap(5, 5)
	if m.At(-1, 0).Walkable || m.At(0, 99).Walkable {
		t.Fatal("out-of-bounds tiles must read as wall")
	}
}

func TestDistanceHelpers(t *testing.T) {
	if d := Distance(0, 0, 3, 4); d != 5 {
		t.Fatalf("expected euclidean 5, got %v", d)
	}
	if d := Chebyshev(0, 0, 3, 4); d != 4 {
		t.Fatalf("expected chebyshev 4, got %d", d)
	}
}

func TestActorByIDFindsDeadActors(t *testing.T) {
	st := NewState(1)
	st.Player = &ActorInfo{ID: st.NextActorID(), IsPlayer: true, Fighter: Fighter{HP: 10, MaxHP: 10}}
	orc := &ActorInfo{ID: st.NextActorID(), Name: "orc", Fighter: Fighter{HP: 5, MaxHP: 5}, AI: AIHostile}
	st.AddMonster(orc)

	if got := st.ActorByID(st.Player.ID); got != st.Player {
		t.Fatal("expected the player")
	}
	// The killer must stay resolvable while death events dispatch, even if
	// it died in the same turn.
	orc.Dead = true
	if got := st.ActorByID(orc.ID); got != orc {
		t.Fatal("expected the dead orc")
	}
	if got := st.ActorByID(999); got != nil {
		t.Fatal("unknown ID must return nil")
	}
}

func TestActorAtSkipsDead(t *testing.T) {
	st := NewState(1)
	st.Map = openMap(10, 10)
	st.Player = &ActorInfo{IsPlayer: true, X: 1, Y: 1, Fighter: Fighter{HP: 10, MaxHP: 10}}
	orc := &ActorInfo{ID: st.NextActorID(), Name: "orc", X: 3, Y: 3, Fighter: Fighter{HP: 5, MaxHP: 5}, AI: AIHostile}
	st.AddMonster(orc)

	if got := st.ActorAt(3, 3); got != orc {
		t.Fatal("expected orc at (3,3)")
	}
	orc.Dead = true
	if got := st.ActorAt(3, 3); got != nil {
		t.Fatal("dead actor must not be targetable")
	}
	if n := st.RemoveDead(); n != 1 {
		t.Fatalf("expected 1 removed, got %d", n)
	}
	if len(st.Monsters()) != 0 {
		t.Fatal("monster list must be empty after cleanup")
	}
}
