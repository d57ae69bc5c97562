package data

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// MonsterInfo holds monster template data.
type MonsterInfo struct {
	MonsterID int32
	Name      string
	Glyph     rune
	Color     string
	HP        int
	Power     int
	Defense   int
	Vision    int // aggro scan radius in tiles
	XP        int

	SpawnWeight int
	MinDepth    int
}

// MonsterTable holds all monster templates indexed by MonsterID.
type MonsterTable struct {
	monsters  map[int32]*MonsterInfo
	spawnable []*MonsterInfo
}

func (t *MonsterTable) Get(monsterID int32) *MonsterInfo {
	return t.monsters[monsterID]
}

func (t *MonsterTable) Count() int {
	return len(t.monsters)
}

// PickSpawn selects a spawnable template by weight for the given depth.
func (t *MonsterTable) PickSpawn(depth int, roll func(n int) int) *MonsterInfo {
	total := 0
	for _, m := range t.spawnable {
		if m.MinDepth <= depth {
			total += m.SpawnWeight
		}
	}
	if total <= 0 {
		return nil
	}
	r := roll(total)
	for _, m := range t.spawnable {
		if m.MinDepth > depth {
			continue
		}
		r -= m.SpawnWeight
		if r < 0 {
			return m
		}
	}
	return nil
}

type monsterEntry struct {
	MonsterID   int32  `yaml:"monster_id"`
	Name        string `yaml:"name"`
	Glyph       string `yaml:"glyph"`
	Color       string `yaml:"color"`
	HP          int    `yaml:"hp"`
	Power       int    `yaml:"power"`
	Defense     int    `yaml:"defense"`
	Vision      int    `yaml:"vision"`
	XP          int    `yaml:"xp"`
	SpawnWeight int    `yaml:"spawn_weight"`
	MinDepth    int    `yaml:"min_depth"`
}

type monsterListFile struct {
	Monsters []monsterEntry `yaml:"monsters"`
}

// LoadMonsterTable loads the monster template YAML file.
func LoadMonsterTable(path string) (*MonsterTable, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read monsters: %w", err)
	}
	var f monsterListFile
	if err := yaml.Unmarshal(raw, &f); err != nil {
		return nil, fmt.Errorf("parse monsters: %w", err)
	}

	t := &MonsterTable{monsters: make(map[int32]*MonsterInfo, len(f.Monsters))}
	for _, e := range f.Monsters {
		if e.MonsterID == 0 {
			return nil, fmt.Errorf("monster %q: missing monster_id", e.Name)
		}
		if _, dup := t.monsters[e.MonsterID]; dup {
			return nil, fmt.Errorf("monster %d: duplicate monster_id", e.MonsterID)
		}
		glyph := '?'
		for _, r := range e.Glyph {
			glyph = r
			break
		}
		vision := e.Vision
		if vision <= 0 {
			vision = 8
		}
		info := &MonsterInfo{
			MonsterID:   e.MonsterID,
			Name:        e.Name,
			Glyph:       glyph,
			Color:       e.Color,
			HP:          e.HP,
			Power:       e.Power,
			Defense:     e.Defense,
			Vision:      vision,
			XP:          e.XP,
			SpawnWeight: e.SpawnWeight,
			MinDepth:    e.MinDepth,
		}
		t.monsters[e.MonsterID] = info
		if info.SpawnWeight > 0 {
			t.spawnable = append(t.spawnable, info)
		}
	}
	return t, nil
}
