package system

import (
	"testing"

	"github.com/duskhall/server/internal/world"
)

func TestHostileHuntsVisiblePlayer(t *testing.T) {
	deps, _ := newUseFixture(t)
	sys := NewMonsterAISystem(deps)
	orc := spawnMonster(deps.World, "orc", 10, 5)

	sys.Update(1)
	if orc.X != 9 || orc.Y != 5 {
		t.Fatalf("orc at (%d, %d), want (9, 5)", orc.X, orc.Y)
	}
}

func TestHostileAttacksAdjacentPlayer(t *testing.T) {
	deps, _ := newUseFixture(t)
	sys := NewMonsterAISystem(deps)
	orc := spawnMonster(deps.World, "orc", 6, 5)
	hp := deps.World.Player.Fighter.HP

	sys.Update(1)
	if orc.X != 6 || orc.Y != 5 {
		t.Fatal("adjacent orc moved instead of attacking")
	}
	// Orc power 3, player defense 1.
	if got := deps.World.Player.Fighter.HP; got != hp-2 {
		t.Fatalf("player HP = %d, want %d", got, hp-2)
	}
}

func TestHostileIdlesBeyondVision(t *testing.T) {
	deps, _ := newUseFixture(t)
	sys := NewMonsterAISystem(deps)
	orc := spawnMonster(deps.World, "orc", 20, 20)

	sys.Update(1)
	if orc.X != 20 || orc.Y != 20 {
		t.Fatal("orc moved without seeing the player")
	}
}

func TestHostileIdlesBehindWall(t *testing.T) {
	deps, _ := newUseFixture(t)
	sys := NewMonsterAISystem(deps)
	for y := 0; y < 30; y++ {
		deps.World.Map.SetTile(7, y, world.TileWall)
	}
	orc := spawnMonster(deps.World, "orc", 9, 5)

	sys.Update(1)
	if orc.X != 9 || orc.Y != 5 {
		t.Fatal("orc moved without line of sight")
	}
}

func TestConfusedMonsterStumbles(t *testing.T) {
	deps, _ := newUseFixture(t)
	sys := NewMonsterAISystem(deps)
	orc := spawnMonster(deps.World, "orc", 15, 15)
	orc.Confuse(5)
	hp := deps.World.Player.Fighter.HP

	sys.Update(1)
	// Every adjacent tile is open, so the stumble always lands somewhere.
	if orc.X == 15 && orc.Y == 15 {
		t.Fatal("confused orc did not stumble")
	}
	if deps.World.Player.Fighter.HP != hp {
		t.Fatal("confused orc attacked a distant player")
	}
}

func TestConfusionExpires(t *testing.T) {
	deps, _ := newUseFixture(t)
	sys := NewStatusSystem(deps)
	orc := spawnMonster(deps.World, "orc", 15, 15)
	orc.Confuse(2)

	sys.Update(1)
	if orc.AI != world.AIConfused || orc.ConfusedTurns != 1 {
		t.Fatalf("after one tick: AI=%v turns=%d", orc.AI, orc.ConfusedTurns)
	}
	sys.Update(2)
	if orc.AI != world.AIHostile {
		t.Fatalf("AI = %v, want hostile restored", orc.AI)
	}
	if orc.PrevAI != world.AINone {
		t.Fatalf("PrevAI = %v, want cleared", orc.PrevAI)
	}
}

func TestCleanupRemovesDead(t *testing.T) {
	deps, _ := newUseFixture(t)
	sys := NewCleanupSystem(deps)
	orc := spawnMonster(deps.World, "orc", 10, 10)
	spawnMonster(deps.World, "troll", 12, 12)
	orc.Dead = true

	sys.Update(1)
	if len(deps.World.Monsters()) != 1 {
		t.Fatalf("monsters = %d, want 1", len(deps.World.Monsters()))
	}
	if deps.World.Monsters()[0].Name != "troll" {
		t.Fatal("wrong monster removed")
	}
}
