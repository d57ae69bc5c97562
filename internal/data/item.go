package data

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Targeting describes how a consumable acquires its target when used.
type Targeting int

const (
	TargetNone   Targeting = 0 // applies to the consumer (potions) or auto-targets (lightning)
	TargetSingle Targeting = 1 // player picks one visible tile
	TargetArea   Targeting = 2 // player picks a tile, effect covers a radius
)

// targetingMap maps YAML targeting strings to Targeting values.
var targetingMap = map[string]Targeting{
	"none":   TargetNone,
	"single": TargetSingle,
	"area":   TargetArea,
}

// TargetingFromString converts a YAML targeting string, defaulting to none.
func TargetingFromString(s string) Targeting {
	if v, ok := targetingMap[s]; ok {
		return v
	}
	return TargetNone
}

// ItemInfo holds item template data needed for game logic.
// Flat struct — fields that don't apply to a use type are zero-valued.
type ItemInfo struct {
	ItemID    int32
	Name      string
	Glyph     rune
	Color     string
	Weight    int32
	Stackable bool

	// Etcitem behavior
	UseType   string // "consumable" or "none"
	Targeting Targeting

	// Dungeon placement
	SpawnWeight int // 0 = never spawns naturally
	MinDepth    int
}

// ItemTable holds all item templates indexed by ItemID.
type ItemTable struct {
	items map[int32]*ItemInfo
	// spawnable caches templates with SpawnWeight > 0, in file order so
	// seeded generation stays deterministic.
	spawnable []*ItemInfo
}

// Get returns an item template by ID, or nil if not found.
func (t *ItemTable) Get(itemID int32) *ItemInfo {
	return t.items[itemID]
}

// Count returns total loaded templates.
func (t *ItemTable) Count() int {
	return len(t.items)
}

// PickSpawn selects a spawnable template by weight for the given depth.
// roll must be a function returning a random int in [0, n).
func (t *ItemTable) PickSpawn(depth int, roll func(n int) int) *ItemInfo {
	total := 0
	for _, it := range t.spawnable {
		if it.MinDepth <= depth {
			total += it.SpawnWeight
		}
	}
	if total <= 0 {
		return nil
	}
	r := roll(total)
	for _, it := range t.spawnable {
		if it.MinDepth > depth {
			continue
		}
		r -= it.SpawnWeight
		if r < 0 {
			return it
		}
	}
	return nil
}

type itemEntry struct {
	ItemID      int32  `yaml:"item_id"`
	Name        string `yaml:"name"`
	Glyph       string `yaml:"glyph"`
	Color       string `yaml:"color"`
	Weight      int32  `yaml:"weight"`
	Stackable   bool   `yaml:"stackable"`
	UseType     string `yaml:"use_type"`
	Targeting   string `yaml:"targeting"`
	SpawnWeight int    `yaml:"spawn_weight"`
	MinDepth    int    `yaml:"min_depth"`
}

type itemListFile struct {
	Items []itemEntry `yaml:"items"`
}

// LoadItemTable loads the item template YAML file.
func LoadItemTable(path string) (*ItemTable, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read items: %w", err)
	}
	var f itemListFile
	if err := yaml.Unmarshal(raw, &f); err != nil {
		return nil, fmt.Errorf("parse items: %w", err)
	}

	t := &ItemTable{items: make(map[int32]*ItemInfo, len(f.Items))}
	for _, e := range f.Items {
		if e.ItemID == 0 {
			return nil, fmt.Errorf("item %q: missing item_id", e.Name)
		}
		if _, dup := t.items[e.ItemID]; dup {
			return nil, fmt.Errorf("item %d: duplicate item_id", e.ItemID)
		}
		glyph := '?'
		for _, r := range e.Glyph {
			glyph = r
			break
		}
		info := &ItemInfo{
			ItemID:      e.ItemID,
			Name:        e.Name,
			Glyph:       glyph,
			Color:       e.Color,
			Weight:      e.Weight,
			Stackable:   e.Stackable,
			UseType:     e.UseType,
			Targeting:   TargetingFromString(e.Targeting),
			SpawnWeight: e.SpawnWeight,
			MinDepth:    e.MinDepth,
		}
		t.items[e.ItemID] = info
		if info.SpawnWeight > 0 {
			t.spawnable = append(t.spawnable, info)
		}
	}
	return t, nil
}
