package scripting

import (
	"os"
	"path/filepath"
	"testing"

	"go.uber.org/zap"
)

func newTestEngine(t *testing.T, script string) *Engine {
	t.Helper()
	dir := t.TempDir()
	itemDir := filepath.Join(dir, "item")
	if err := os.MkdirAll(itemDir, 0o755); err != nil {
		t.Fatalf("mkdir: %v", err)
	}
	if err := os.WriteFile(filepath.Join(itemDir, "consumables.lua"), []byte(script), 0o644); err != nil {
		t.Fatalf("write script: %v", err)
	}
	e, err := NewEngine(dir, zap.NewNop())
	if err != nil {
		t.Fatalf("new engine: %v", err)
	}
	t.Cleanup(e.Close)
	return e
}

const testScript = `
local consumables = {
  [200] = { type = "heal", amount = 4 },
  [201] = { type = "confusion", turns = 10 },
  [202] = { type = "fireball", damage = 12, radius = 3 },
  [203] = { type = "lightning", damage = 20, range = 5 },
}

function get_consumable_effect(item_id)
  return consumables[item_id]
end

function calc_heal_amount(base)
  return base + 1
end
`

func TestGetConsumableEffect(t *testing.T) {
	e := newTestEngine(t, testScript)

	heal := e.GetConsumableEffect(200)
	if heal == nil || heal.Type != "heal" || heal.Amount != 4 {
		t.Fatalf("unexpected heal effect %+v", heal)
	}

	conf := e.GetConsumableEffect(201)
	if conf == nil || conf.Type != "confusion" || conf.Turns != 10 {
		t.Fatalf("unexpected confusion effect %+v", conf)
	}

	fire := e.GetConsumableEffect(202)
	if fire == nil || fire.Damage != 12 || fire.Radius != 3 {
		t.Fatalf("unexpected fireball effect %+v", fire)
	}

	bolt := e.GetConsumableEffect(203)
	if bolt == nil || bolt.Damage != 20 || bolt.Range != 5 {
		t.Fatalf("unexpected lightning effect %+v", bolt)
	}
}

func TestGetConsumableEffectUnknownItem(t *testing.T) {
	e := newTestEngine(t, testScript)
	if eff := e.GetConsumableEffect(999); eff != nil {
		t.Fatalf("expected nil for unscripted item, got %+v", eff)
	}
}

func TestCalcHealAmountUsesHook(t *testing.T) {
	e := newTestEngine(t, testScript)
	if got := e.CalcHealAmount(4); got != 5 {
		t.Fatalf("expected hook result 5, got %d", got)
	}
}

func TestCalcHealAmountFallsBackWithoutHook(t *testing.T) {
	e := newTestEngine(t, `-- no hooks defined`)
	if got := e.CalcHealAmount(4); got != 4 {
		t.Fatalf("expected base 4 without hook, got %d", got)
	}
}
