package dungeon

import (
	"testing"

	"github.com/duskhall/server/internal/config"
	"github.com/duskhall/server/internal/world"
)

func testCfg() config.DungeonConfig {
	return config.DungeonConfig{
		Width:           80,
		Height:          43,
		MaxRooms:        30,
		RoomMinSize:     6,
		RoomMaxSize:     10,
		MaxMonstersRoom: 0,
		MaxItemsRoom:    0,
		FOVRadius:       8,
	}
}

func newPlayer(st *world.State) *world.ActorInfo {
	p := &world.ActorInfo{
		ID:       st.NextActorID(),
		IsPlayer: true,
		Fighter:  world.Fighter{HP: 30, MaxHP: 30},
		Inv:      world.NewInventory(26),
	}
	st.Player = p
	return p
}

func TestGeneratePlacesPlayerOnFloor(t *testing.T) {
	st := world.NewState(42)
	p := newPlayer(st)

	Generate(testCfg(), st, nil, nil)

	if st.Map == nil {
		t.Fatal("no map generated")
	}
	if !st.Map.At(p.X, p.Y).Walkable {
		t.Fatalf("player placed on non-walkable tile (%d, %d)", p.X, p.Y)
	}
}

func TestGeneratePlacesStairs(t *testing.T) {
	st := world.NewState(42)
	newPlayer(st)

	Generate(testCfg(), st, nil, nil)

	found := false
	for y := 0; y < st.Map.H && !found; y++ {
		for x := 0; x < st.Map.W; x++ {
			if st.Map.IsStairs(x, y) {
				if !st.Map.At(x, y).Walkable {
					t.Fatalf("stairs on non-walkable tile (%d, %d)", x, y)
				}
				found = true
				break
			}
		}
	}
	if !found {
		t.Fatal("no stairs placed")
	}
}

func TestGenerateIsDeterministic(t *testing.T) {
	layout := func(seed int64) []bool {
		st := world.NewState(seed)
		newPlayer(st)
		Generate(testCfg(), st, nil, nil)
		out := make([]bool, 0, st.Map.W*st.Map.H)
		for y := 0; y < st.Map.H; y++ {
			for x := 0; x < st.Map.W; x++ {
				out = append(out, st.Map.At(x, y).Walkable)
			}
		}
		return out
	}

	a, b := layout(7), layout(7)
	for i := range a {
		if a[i] != b[i] {
			t.Fatalf("layouts diverge at tile %d", i)
		}
	}
}

func TestGenerateDegenerateConfigStillPlayable(t *testing.T) {
	st := world.NewState(1)
	p := newPlayer(st)

	cfg := testCfg()
	cfg.MaxRooms = 0
	Generate(cfg, st, nil, nil)

	if !st.Map.At(p.X, p.Y).Walkable {
		t.Fatal("fallback room did not contain the player")
	}
}
