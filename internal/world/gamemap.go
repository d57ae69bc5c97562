package world

import "math"

// Tile is one map cell.
type Tile struct {
	Walkable    bool
	Transparent bool
}

var (
	TileWall  = Tile{Walkable: false, Transparent: false}
	TileFloor = Tile{Walkable: true, Transparent: true}
	TileStair = Tile{Walkable: true, Transparent: true}
)

// GameMap is the dungeon grid plus the player's visibility memory.
// Visible is recomputed every turn, Explored only accumulates.
type GameMap struct {
	W, H     int
	tiles    []Tile
	stairs   []bool
	Visible  []bool
	Explored []bool
}

// NewGameMap creates a map filled with wall.
func NewGameMap(w, h int) *GameMap {
	n := w * h
	m := &GameMap{
		W:        w,
		H:        h,
		tiles:    make([]Tile, n),
		stairs:   make([]bool, n),
		Visible:  make([]bool, n),
		Explored: make([]bool, n),
	}
	for i := range m.tiles {
		m.tiles[i] = TileWall
	}
	return m
}

func (m *GameMap) idx(x, y int) int { return y*m.W + x }

// InBounds reports whether the tile lies on the map.
func (m *GameMap) InBounds(x, y int) bool {
	return x >= 0 && x < m.W && y >= 0 && y < m.H
}

// At returns the tile at (x, y). Out-of-bounds reads as wall.
func (m *GameMap) At(x, y int) Tile {
	if !m.InBounds(x, y) {
		return TileWall
	}
	return m.tiles[m.idx(x, y)]
}

// SetTile writes a tile.
func (m *GameMap) SetTile(x, y int, t Tile) {
	if m.InBounds(x, y) {
		m.tiles[m.idx(x, y)] = t
	}
}

// SetStairs marks the descent tile.
func (m *GameMap) SetStairs(x, y int) {
	if m.InBounds(x, y) {
		m.tiles[m.idx(x, y)] = TileStair
		m.stairs[m.idx(x, y)] = true
	}
}

// IsStairs reports whether (x, y) is the descent tile.
func (m *GameMap) IsStairs(x, y int) bool {
	return m.InBounds(x, y) && m.stairs[m.idx(x, y)]
}

// IsVisible reports whether the player currently sees (x, y).
func (m *GameMap) IsVisible(x, y int) bool {
	return m.InBounds(x, y) && m.Visible[m.idx(x, y)]
}

// IsExplored reports whether the player has ever seen (x, y).
func (m *GameMap) IsExplored(x, y int) bool {
	return m.InBounds(x, y) && m.Explored[m.idx(x, y)]
}

// ComputeFOV recomputes the visible set from (ox, oy) with the given radius
// and folds it into the explored set. Line of sight is a Bresenham walk that
// stops behind the first opaque tile; opaque tiles themselves are visible so
// walls render.
func (m *GameMap) ComputeFOV(ox, oy, radius int) {
	for i := range m.Visible {
		m.Visible[i] = false
	}
	if !m.InBounds(ox, oy) {
		return
	}
	m.reveal(ox, oy)

	for y := oy - radius; y <= oy+radius; y++ {
		for x := ox - radius; x <= ox+radius; x++ {
			if !m.InBounds(x, y) {
				continue
			}
			if Distance(ox, oy, x, y) > float64(radius) {
				continue
			}
			if m.LineOfSight(ox, oy, x, y) {
				m.reveal(x, y)
			}
		}
	}
}

func (m *GameMap) reveal(x, y int) {
	i := m.idx(x, y)
	m.Visible[i] = true
	m.Explored[i] = true
}

// LineOfSight walks from (x0, y0) toward (x1, y1) and reports whether the
// endpoint is reachable without an opaque tile strictly in between.
func (m *GameMap) LineOfSight(x0, y0, x1, y1 int) bool {
	dx := abs(x1 - x0)
	dy := -abs(y1 - y0)
	sx := 1
	if x0 > x1 {
		sx = -1
	}
	sy := 1
	if y0 > y1 {
		sy = -1
	}
	err := dx + dy

	x, y := x0, y0
	for {
		if x == x1 && y == y1 {
			return true
		}
		// Opaque tile between origin and endpoint blocks sight.
		if (x != x0 || y != y0) && !m.At(x, y).Transparent {
			return false
		}
		e2 := 2 * err
		if e2 >= dy {
			err += dy
			x += sx
		}
		if e2 <= dx {
			err += dx
			y += sy
		}
	}
}

// Distance returns the Euclidean distance between two tiles.
func Distance(x1, y1, x2, y2 int) float64 {
	dx := float64(x2 - x1)
	dy := float64(y2 - y1)
	return math.Sqrt(dx*dx + dy*dy)
}

// Chebyshev returns the chessboard distance between two tiles.
func Chebyshev(x1, y1, x2, y2 int) int {
	dx := abs(x2 - x1)
	dy := abs(y2 - y1)
	if dx > dy {
		return dx
	}
	return dy
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}
