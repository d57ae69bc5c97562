// Package dungeon procedurally generates levels: rooms joined by tunnels,
// with monsters and items placed per the dungeon config.
package dungeon

import (
	"github.com/duskhall/server/internal/config"
	"github.com/duskhall/server/internal/data"
	"github.com/duskhall/server/internal/world"
)

// room is an axis-aligned rectangle on the map, walls included.
type room struct {
	x1, y1, x2, y2 int
}

func (r room) center() (int, int) {
	return (r.x1 + r.x2) / 2, (r.y1 + r.y2) / 2
}

func (r room) intersects(o room) bool {
	return r.x1 <= o.x2 && r.x2 >= o.x1 && r.y1 <= o.y2 && r.y2 >= o.y1
}

// Generate carves a new level into the state, places the player in the first
// room, stairs in the last, and populates the rest. The state's RNG drives
// every roll so a fixed seed reproduces the dungeon.
func Generate(cfg config.DungeonConfig, st *world.State, items *data.ItemTable, monsters *data.MonsterTable) {
	m := world.NewGameMap(cfg.Width, cfg.Height)
	st.Map = m

	var rooms []room
	for i := 0; i < cfg.MaxRooms; i++ {
		w := cfg.RoomMinSize + st.RandInt(cfg.RoomMaxSize-cfg.RoomMinSize+1)
		h := cfg.RoomMinSize + st.RandInt(cfg.RoomMaxSize-cfg.RoomMinSize+1)
		x := st.RandInt(cfg.Width - w - 1)
		y := st.RandInt(cfg.Height - h - 1)

		r := room{x1: x, y1: y, x2: x + w, y2: y + h}
		overlap := false
		for _, other := range rooms {
			if r.intersects(other) {
				overlap = true
				break
			}
		}
		if overlap {
			continue
		}

		carveRoom(m, r)
		if len(rooms) > 0 {
			// Tunnel to the previous room.
			px, py := rooms[len(rooms)-1].center()
			cx, cy := r.center()
			carveTunnel(m, st, px, py, cx, cy)
		}
		rooms = append(rooms, r)
	}

	if len(rooms) == 0 {
		// Degenerate config: carve a single fallback room so the level is playable.
		r := room{x1: 1, y1: 1, x2: cfg.Width - 2, y2: cfg.Height - 2}
		carveRoom(m, r)
		rooms = append(rooms, r)
	}

	// Player starts in the first room, stairs go in the last.
	px, py := rooms[0].center()
	if st.Player != nil {
		st.Player.X = px
		st.Player.Y = py
	}
	sx, sy := rooms[len(rooms)-1].center()
	m.SetStairs(sx, sy)

	for i, r := range rooms {
		if i == 0 {
			continue // no spawns in the starting room
		}
		placeMonsters(cfg, st, monsters, r)
		placeItems(cfg, st, items, r)
	}
}

func carveRoom(m *world.GameMap, r room) {
	for y := r.y1 + 1; y < r.y2; y++ {
		for x := r.x1 + 1; x < r.x2; x++ {
			m.SetTile(x, y, world.TileFloor)
		}
	}
}

// carveTunnel digs an L-shaped corridor; corner direction is a coin flip.
func carveTunnel(m *world.GameMap, st *world.State, x1, y1, x2, y2 int) {
	cx, cy := x2, y1
	if st.RandInt(2) == 0 {
		cx, cy = x1, y2
	}
	for _, p := range [][4]int{{x1, y1, cx, cy}, {cx, cy, x2, y2}} {
		x, y := p[0], p[1]
		for x != p[2] {
			m.SetTile(x, y, world.TileFloor)
			x += sign(p[2] - x)
		}
		for y != p[3] {
			m.SetTile(x, y, world.TileFloor)
			y += sign(p[3] - y)
		}
		m.SetTile(x, y, world.TileFloor)
	}
}

func placeMonsters(cfg config.DungeonConfig, st *world.State, monsters *data.MonsterTable, r room) {
	count := st.RandInt(cfg.MaxMonstersRoom + 1)
	for i := 0; i < count; i++ {
		x := r.x1 + 1 + st.RandInt(r.x2-r.x1-1)
		y := r.y1 + 1 + st.RandInt(r.y2-r.y1-1)
		if st.IsBlocked(x, y) {
			continue
		}
		tmpl := monsters.PickSpawn(st.Depth, st.RandInt)
		if tmpl == nil {
			return
		}
		st.AddMonster(&world.ActorInfo{
			ID:         st.NextActorID(),
			TemplateID: tmpl.MonsterID,
			Name:       tmpl.Name,
			Glyph:      tmpl.Glyph,
			Color:      tmpl.Color,
			X:          x,
			Y:          y,
			Fighter: world.Fighter{
				HP:      tmpl.HP,
				MaxHP:   tmpl.HP,
				Power:   tmpl.Power,
				Defense: tmpl.Defense,
			},
			AI:     world.AIHostile,
			Vision: tmpl.Vision,
			XP:     tmpl.XP,
		})
	}
}

func placeItems(cfg config.DungeonConfig, st *world.State, items *data.ItemTable, r room) {
	count := st.RandInt(cfg.MaxItemsRoom + 1)
	for i := 0; i < count; i++ {
		x := r.x1 + 1 + st.RandInt(r.x2-r.x1-1)
		y := r.y1 + 1 + st.RandInt(r.y2-r.y1-1)
		if !st.Map.At(x, y).Walkable {
			continue
		}
		tmpl := items.PickSpawn(st.Depth, st.RandInt)
		if tmpl == nil {
			return
		}
		st.DropItem(&world.InvItem{
			ObjectID:  world.NextItemObjID(),
			ItemID:    tmpl.ItemID,
			Name:      tmpl.Name,
			Glyph:     tmpl.Glyph,
			Color:     tmpl.Color,
			Count:     1,
			Stackable: tmpl.Stackable,
			Weight:    tmpl.Weight,
			UseType:   tmpl.UseType,
		}, x, y)
	}
}

func sign(v int) int {
	switch {
	case v > 0:
		return 1
	case v < 0:
		return -1
	}
	return 0
}
