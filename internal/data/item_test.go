package data

import (
	"os"
	"path/filepath"
	"testing"
)

func writeFile(t *testing.T, name, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	if err := os.WriteFile(path, []byte(body), 0o644); err != nil {
		t.Fatalf("write %s: %v", name, err)
	}
	return path
}

func TestLoadItemTable(t *testing.T) {
	path := writeFile(t, "item_list.yaml", `
items:
  - item_id: 200
    name: healing potion
    glyph: "!"
    color: purple
    weight: 10
    stackable: true
    use_type: consumable
    targeting: none
    spawn_weight: 35
  - item_id: 202
    name: fireball scroll
    glyph: "~"
    color: red
    weight: 5
    use_type: consumable
    targeting: area
    spawn_weight: 10
    min_depth: 2
`)
	tbl, err := LoadItemTable(path)
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if tbl.Count() != 2 {
		t.Fatalf("expected 2 templates, got %d", tbl.Count())
	}

	potion := tbl.Get(200)
	if potion == nil {
		t.Fatal("expected template 200")
	}
	if potion.Glyph != '!' || !potion.Stackable {
		t.Fatalf("potion template mismatched: %+v", potion)
	}
	if potion.Targeting != TargetNone {
		t.Fatalf("expected TargetNone, got %v", potion.Targeting)
	}

	scroll := tbl.Get(202)
	if scroll.Targeting != TargetArea {
		t.Fatalf("expected TargetArea, got %v", scroll.Targeting)
	}
	if scroll.Stackable {
		t.Fatal("scroll must default to non-stackable")
	}
}

func TestLoadItemTableRejectsDuplicateID(t *testing.T) {
	path := writeFile(t, "item_list.yaml", `
items:
  - item_id: 200
    name: healing potion
  - item_id: 200
    name: healing potion again
`)
	if _, err := LoadItemTable(path); err == nil {
		t.Fatal("expected duplicate item_id error")
	}
}

func TestPickSpawnHonorsDepthGate(t *testing.T) {
	path := writeFile(t, "item_list.yaml", `
items:
  - item_id: 200
    name: healing potion
    glyph: "!"
    spawn_weight: 10
  - item_id: 203
    name: lightning scroll
    glyph: "~"
    spawn_weight: 90
    min_depth: 5
`)
	tbl, err := LoadItemTable(path)
	if err != nil {
		t.Fatalf("load: %v", err)
	}

	// At depth 1 only the potion is eligible, whatever the roll.
	got := tbl.PickSpawn(1, func(n int) int { return n - 1 })
	if got == nil || got.ItemID != 200 {
		t.Fatalf("expected potion at depth 1, got %+v", got)
	}

	// At depth 5 a high roll lands in the scroll's weight band.
	got = tbl.PickSpawn(5, func(n int) int { return n - 1 })
	if got == nil || got.ItemID != 203 {
		t.Fatalf("expected scroll at depth 5, got %+v", got)
	}
}

func TestLoadMonsterTable(t *testing.T) {
	path := writeFile(t, "monster_list.yaml", `
monsters:
  - monster_id: 10
    name: orc
    glyph: o
    color: green
    hp: 10
    power: 3
    defense: 0
    xp: 35
    spawn_weight: 80
  - monster_id: 11
    name: troll
    glyph: T
    color: green
    hp: 16
    power: 4
    defense: 1
    vision: 10
    xp: 100
    spawn_weight: 20
    min_depth: 3
`)
	tbl, err := LoadMonsterTable(path)
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if tbl.Count() != 2 {
		t.Fatalf("expected 2 templates, got %d", tbl.Count())
	}
	orc := tbl.Get(10)
	if orc == nil || orc.HP != 10 || orc.Glyph != 'o' {
		t.Fatalf("orc template mismatched: %+v", orc)
	}
	if orc.Vision != 8 {
		t.Fatalf("expected default vision 8, got %d", orc.Vision)
	}
	if troll := tbl.Get(11); troll.Vision != 10 {
		t.Fatalf("expected troll vision 10, got %d", troll.Vision)
	}
}
