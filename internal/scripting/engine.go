// Package scripting hosts the Lua VM that defines consumable effects and
// balancing formulas, so item tuning never requires a recompile.
package scripting

import (
	"fmt"
	"os"
	"path/filepath"

	lua "github.com/yuin/gopher-lua"
	"go.uber.org/zap"
)

// Engine wraps a single gopher-lua VM for game logic execution.
// Single-goroutine access only (game loop).
type Engine struct {
	vm  *lua.LState
	log *zap.Logger
}

// NewEngine creates a Lua engine and loads all scripts from the given directory.
func NewEngine(scriptsDir string, log *zap.Logger) (*Engine, error) {
	vm := lua.NewState(lua.Options{
		SkipOpenLibs: false,
	})

	vm.SetGlobal("API_VERSION", lua.LNumber(1))

	e := &Engine{vm: vm, log: log}

	// Core scripts first, then feature scripts.
	for _, sub := range []string{"core", "item"} {
		p := filepath.Join(scriptsDir, sub)
		if err := e.loadDir(p); err != nil {
			vm.Close()
			return nil, fmt.Errorf("load %s scripts: %w", sub, err)
		}
	}

	return e, nil
}

// loadDir loads all .lua files in a directory.
func (e *Engine) loadDir(dir string) error {
	entries, err := os.ReadDir(dir)
	if err != nil {
		if os.IsNotExist(err) {
			return nil // skip missing dirs
		}
		return err
	}
	for _, entry := range entries {
		if entry.IsDir() || filepath.Ext(entry.Name()) != ".lua" {
			continue
		}
		path := filepath.Join(dir, entry.Name())
		if err := e.vm.DoFile(path); err != nil {
			return fmt.Errorf("load %s: %w", path, err)
		}
		e.log.Debug("loaded lua script", zap.String("file", path))
	}
	return nil
}

// ConsumableEffect describes what a consumable does when activated.
// Fields that don't apply to a type are zero-valued.
type ConsumableEffect struct {
	Type   string // "heal", "confusion", "fireball", "lightning"
	Amount int    // heal: HP restored
	Damage int    // fireball/lightning: HP removed
	Radius int    // fireball: blast radius in tiles
	Range  int    // lightning: maximum strike range in tiles
	Turns  int    // confusion: duration in turns
}

// GetConsumableEffect calls Lua get_consumable_effect(item_id).
// Returns nil when the item has no scripted effect.
func (e *Engine) GetConsumableEffect(itemID int) *ConsumableEffect {
	fn := e.vm.GetGlobal("get_consumable_effect")
	if fn == lua.LNil {
		return nil
	}

	if err := e.vm.CallByParam(lua.P{
		Fn:      fn,
		NRet:    1,
		Protect: true,
	}, lua.LNumber(itemID)); err != nil {
		e.log.Error("lua get_consumable_effect error", zap.Error(err))
		return nil
	}

	result := e.vm.Get(-1)
	e.vm.Pop(1)

	if result == lua.LNil {
		return nil
	}
	rt, ok := result.(*lua.LTable)
	if !ok {
		return nil
	}

	return &ConsumableEffect{
		Type:   lStr(rt, "type"),
		Amount: lInt(rt, "amount"),
		Damage: lInt(rt, "damage"),
		Radius: lInt(rt, "radius"),
		Range:  lInt(rt, "range"),
		Turns:  lInt(rt, "turns"),
	}
}

// CalcHealAmount calls Lua calc_heal_amount(base) so healing jitter lives in
// script. Falls back to the base amount when the hook is missing or errors.
func (e *Engine) CalcHealAmount(base int) int {
	fn := e.vm.GetGlobal("calc_heal_amount")
	if fn == lua.LNil {
		return base
	}

	if err := e.vm.CallByParam(lua.P{
		Fn:      fn,
		NRet:    1,
		Protect: true,
	}, lua.LNumber(base)); err != nil {
		e.log.Error("lua calc_heal_amount error", zap.Error(err))
		return base
	}

	result := e.vm.Get(-1)
	e.vm.Pop(1)

	v := int(lua.LVAsNumber(result))
	if v < 1 {
		v = 1
	}
	return v
}

// Close releases the Lua VM.
func (e *Engine) Close() {
	e.vm.Close()
}

func lStr(t *lua.LTable, key string) string {
	return lua.LVAsString(t.RawGetString(key))
}

func lInt(t *lua.LTable, key string) int {
	return int(lua.LVAsNumber(t.RawGetString(key)))
}
