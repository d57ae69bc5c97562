package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"
	"time"
	"unicode"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/duskhall/server/internal/action"
	"github.com/duskhall/server/internal/config"
	"github.com/duskhall/server/internal/core/event"
	"github.com/duskhall/server/internal/core/turn"
	"github.com/duskhall/server/internal/data"
	"github.com/duskhall/server/internal/dungeon"
	"github.com/duskhall/server/internal/handler"
	"github.com/duskhall/server/internal/msglog"
	"github.com/duskhall/server/internal/persist"
	"github.com/duskhall/server/internal/scripting"
	"github.com/duskhall/server/internal/system"
	"github.com/duskhall/server/internal/ui"
	"github.com/duskhall/server/internal/world"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "fatal: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	// 1. Load config
	cfgPath := "config/server.toml"
	if p := os.Getenv("DUSKHALL_CONFIG"); p != "" {
		cfgPath = p
	}
	cfg, err := loadConfig(cfgPath)
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}

	// 2. Init logger. termbox owns the terminal, so logs go to a file.
	log, err := newLogger(cfg.Logging)
	if err != nil {
		return fmt.Errorf("init logger: %w", err)
	}
	defer log.Sync()

	// 3. Load data tables
	itemTable, err := data.LoadItemTable(filepath.Join(cfg.Paths.DataDir, "item_list.yaml"))
	if err != nil {
		return fmt.Errorf("load item table: %w", err)
	}
	monsterTable, err := data.LoadMonsterTable(filepath.Join(cfg.Paths.DataDir, "monster_list.yaml"))
	if err != nil {
		return fmt.Errorf("load monster table: %w", err)
	}
	log.Info("data tables loaded",
		zap.Int("items", itemTable.Count()),
		zap.Int("monsters", monsterTable.Count()),
	)

	// 4. Initialize Lua scripting engine
	luaEngine, err := scripting.NewEngine(cfg.Paths.ScriptsDir, log)
	if err != nil {
		return fmt.Errorf("lua engine: %w", err)
	}
	defer luaEngine.Close()

	// 5. Connect to PostgreSQL if enabled
	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	deps := &handler.Deps{
		Config:   cfg,
		Log:      log,
		Items:    itemTable,
		Monsters: monsterTable,
		Events:   event.NewBus(),
		MsgLog:   msglog.New(cfg.Game.MessageHistory),
	}
	deps.Scripting = luaEngine

	var db *persist.DB
	if cfg.Database.Enabled {
		db, err = persist.NewDB(ctx, cfg.Database, log)
		if err != nil {
			return fmt.Errorf("database: %w", err)
		}
		defer db.Close()
		if err := persist.RunMigrations(ctx, db.Pool); err != nil {
			return fmt.Errorf("migrations: %w", err)
		}
		deps.ProfileRepo = persist.NewProfileRepo(db)
		deps.CharRepo = persist.NewCharacterRepo(db)
		deps.ItemRepo = persist.NewItemRepo(db)
		deps.JournalRepo = persist.NewJournalRepo(db)
		deps.ScoreRepo = persist.NewScoreRepo(db)

		maxObjID, err := deps.ItemRepo.MaxObjID(ctx)
		if err != nil {
			return fmt.Errorf("query max obj_id: %w", err)
		}
		world.SetItemObjIDStart(maxObjID)
	}

	// 6. Create or resume the character
	ws, err := setupWorld(ctx, cfg, deps, itemTable)
	if err != nil {
		return err
	}
	deps.World = ws
	ws.Map.ComputeFOV(ws.Player.X, ws.Player.Y, cfg.Dungeon.FOVRadius)

	// 7. Register turn systems
	itemUse := system.NewItemUseSystem(deps)
	exec := system.NewExecutor(deps, itemUse)
	journal := system.NewJournalSystem(deps)

	runner := turn.NewRunner()
	runner.Register(system.NewMonsterAISystem(deps))
	runner.Register(system.NewStatusSystem(deps))
	runner.Register(system.NewVisibilitySystem(deps))
	runner.Register(journal)
	runner.Register(system.NewCleanupSystem(deps))

	// 8. Take over the terminal
	view := ui.New(deps, exec)
	if err := view.Init(); err != nil {
		return err
	}
	defer view.Close()

	// SIGINT/SIGTERM unblocks the input loop so we still save.
	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
	go func() {
		<-sigCh
		view.Interrupt()
	}()

	log.Info("run started",
		zap.Int64("seed", ws.Seed),
		zap.Int("depth", ws.Depth),
		zap.Int64("turn", ws.Turn),
	)
	deps.MsgLog.Add("Hello and welcome, adventurer, to yet another dungeon!", msglog.ColorWelcome)

	return gameLoop(cfg, deps, exec, runner, journal, view)
}

// gameLoop runs until the player quits or dies. One iteration is one player
// turn: read an action, execute it, advance the world.
func gameLoop(cfg *config.Config, deps *handler.Deps, exec *system.Executor,
	runner *turn.Runner, journal *system.JournalSystem, view *ui.UI) error {

	ws := deps.World
	saveCounter := 0

	// Remember what killed the player for the high-score row. The killer is
	// still in the world when the death event dispatches; cleanup runs later.
	diedTo := "unknown"
	event.Subscribe(deps.Events, func(ev event.ActorDied) {
		if !ev.IsPlayer {
			return
		}
		if killer := ws.ActorByID(ev.KillerID); killer != nil {
			diedTo = killer.Name
		}
	})

	view.Render()
	for {
		a, ok := view.NextAction()
		if !ok {
			deps.Log.Info("quit requested", zap.Int64("turn", ws.Turn))
			return endRun(deps, journal, "quit")
		}

		if err := exec.Execute(a); err != nil {
			var imp *action.ImpossibleError
			if !errors.As(err, &imp) {
				return err
			}
			deps.MsgLog.Add(capitalize(imp.Msg), msglog.ColorImpossible)
			view.Render()
			continue
		}

		ws.Turn++
		runner.Advance(ws.Turn)
		view.Render()

		if ws.Player.Dead {
			view.WaitForKey()
			return endRun(deps, journal, diedTo)
		}

		saveCounter++
		if cfg.Game.AutosaveTurns > 0 && saveCounter >= cfg.Game.AutosaveTurns {
			saveCounter = 0
			if err := saveGame(deps, journal); err != nil {
				deps.Log.Error("autosave failed", zap.Error(err))
			}
		}
	}
}

// endRun flushes the final save, journal, and high score, then exits cleanly.
// diedTo names the killer for the high-score row; a quit passes "quit".
func endRun(deps *handler.Deps, journal *system.JournalSystem, diedTo string) error {
	if err := saveGame(deps, journal); err != nil {
		deps.Log.Error("final save failed", zap.Error(err))
	}
	if deps.ScoreRepo != nil && deps.World.Player.Dead {
		ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		err := deps.ScoreRepo.Insert(ctx, persist.ScoreRow{
			ProfileName: profileName(),
			CharName:    deps.World.Player.Name,
			Score:       deps.World.Player.Score,
			Depth:       deps.World.Depth,
			Turn:        deps.World.Turn,
			DiedTo:      diedTo,
		})
		if err != nil {
			deps.Log.Error("high score insert failed", zap.Error(err))
		}
	}
	deps.Log.Info("run ended",
		zap.String("died_to", diedTo),
		zap.Int("score", deps.World.Player.Score),
		zap.Int("depth", deps.World.Depth),
		zap.Int64("turn", deps.World.Turn),
	)
	return nil
}

// saveGame persists the character, inventory, and buffered journal entries.
// No-op without a database.
func saveGame(deps *handler.Deps, journal *system.JournalSystem) error {
	if deps.CharRepo == nil {
		journal.Drain()
		return nil
	}
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := deps.CharRepo.Save(ctx, deps.CharID, deps.World.Player, deps.World.Turn); err != nil {
		return fmt.Errorf("save character: %w", err)
	}
	if err := deps.ItemRepo.SaveInventory(ctx, deps.CharID, deps.World.Player.Inv); err != nil {
		return fmt.Errorf("save inventory: %w", err)
	}
	if err := deps.JournalRepo.Append(ctx, journal.Drain()); err != nil {
		return fmt.Errorf("append journal: %w", err)
	}
	return nil
}

// setupWorld resumes the newest living character or starts a fresh run.
// The map itself is not persisted: a resumed run regenerates a level at the
// saved depth from the run seed.
func setupWorld(ctx context.Context, cfg *config.Config, deps *handler.Deps, items *data.ItemTable) (*world.State, error) {
	seed := cfg.Game.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}

	var row *persist.CharacterRow
	if deps.CharRepo != nil {
		profile, err := ensureProfile(ctx, deps)
		if err != nil {
			return nil, err
		}
		row, err = deps.CharRepo.Load(ctx, profile.Name)
		if err != nil {
			return nil, fmt.Errorf("load character: %w", err)
		}
	}
	if row != nil {
		seed = row.Seed
	}

	ws := world.NewState(seed)
	player := &world.ActorInfo{
		ID:       ws.NextActorID(),
		Name:     charName(),
		Glyph:    '@',
		IsPlayer: true,
		Fighter:  world.Fighter{HP: 30, MaxHP: 30, Power: 5, Defense: 2},
		Inv:      world.NewInventory(cfg.Game.MaxInventorySize),
		Depth:    1,
	}
	ws.Player = player

	if row != nil {
		player.Fighter = world.Fighter{HP: row.HP, MaxHP: row.MaxHP, Power: row.Power, Defense: row.Defense}
		player.Depth = row.Depth
		player.Score = row.Score
		ws.Depth = row.Depth
		ws.Turn = row.Turn
		deps.CharID = row.ID

		saved, err := deps.ItemRepo.LoadByCharID(ctx, row.ID)
		if err != nil {
			return nil, fmt.Errorf("load inventory: %w", err)
		}
		for _, it := range saved {
			tmpl := items.Get(it.ItemID)
			if tmpl == nil {
				deps.Log.Warn("saved item has no template", zap.Int32("item_id", it.ItemID))
				continue
			}
			player.Inv.Add(&world.InvItem{
				ObjectID:  it.ObjID,
				ItemID:    tmpl.ItemID,
				Name:      tmpl.Name,
				Glyph:     tmpl.Glyph,
				Color:     tmpl.Color,
				Count:     it.Count,
				Stackable: tmpl.Stackable,
				Weight:    tmpl.Weight,
				UseType:   tmpl.UseType,
			})
		}
		deps.Log.Info("character resumed",
			zap.Int32("char_id", row.ID),
			zap.Int("depth", row.Depth),
			zap.Int("items", len(saved)),
		)
	}

	dungeon.Generate(cfg.Dungeon, ws, deps.Items, deps.Monsters)

	if row == nil && deps.CharRepo != nil {
		id, err := deps.CharRepo.Create(ctx, &persist.CharacterRow{
			ProfileName: profileName(),
			Name:        player.Name,
			HP:          player.Fighter.HP,
			MaxHP:       player.Fighter.MaxHP,
			Power:       player.Fighter.Power,
			Defense:     player.Fighter.Defense,
			Depth:       ws.Depth,
			Seed:        seed,
		})
		if err != nil {
			return nil, fmt.Errorf("create character: %w", err)
		}
		deps.CharID = id
	}

	return ws, nil
}

// ensureProfile loads the local profile, creating it on first run.
func ensureProfile(ctx context.Context, deps *handler.Deps) (*persist.ProfileRow, error) {
	name := profileName()
	profile, err := deps.ProfileRepo.Load(ctx, name)
	if err != nil {
		return nil, fmt.Errorf("load profile: %w", err)
	}
	if profile == nil {
		profile, err = deps.ProfileRepo.Create(ctx, name, profilePassword())
		if err != nil {
			return nil, fmt.Errorf("create profile: %w", err)
		}
		deps.Log.Info("profile created", zap.String("name", name))
	} else {
		if !deps.ProfileRepo.ValidatePassword(profile.PasswordHash, profilePassword()) {
			return nil, fmt.Errorf("wrong password for profile %q", name)
		}
		if err := deps.ProfileRepo.TouchLastActive(ctx, name); err != nil {
			deps.Log.Warn("touch profile failed", zap.Error(err))
		}
	}
	return profile, nil
}

func loadConfig(path string) (*config.Config, error) {
	if _, err := os.Stat(path); os.IsNotExist(err) {
		return config.Default(), nil
	}
	return config.Load(path)
}

func profileName() string {
	if n := os.Getenv("DUSKHALL_PROFILE"); n != "" {
		return n
	}
	return "local"
}

func profilePassword() string {
	if p := os.Getenv("DUSKHALL_PASSWORD"); p != "" {
		return p
	}
	return profileName()
}

func charName() string {
	if n := os.Getenv("DUSKHALL_NAME"); n != "" {
		return n
	}
	return "adventurer"
}

func capitalize(s string) string {
	if s == "" {
		return s
	}
	runes := []rune(s)
	runes[0] = unicode.ToUpper(runes[0])
	return string(runes)
}

func newLogger(cfg config.LoggingConfig) (*zap.Logger, error) {
	var level zapcore.Level
	if err := level.UnmarshalText([]byte(cfg.Level)); err != nil {
		level = zapcore.InfoLevel
	}

	var zapCfg zap.Config
	if cfg.Format == "json" {
		zapCfg = zap.NewProductionConfig()
	} else {
		zapCfg = zap.NewDevelopmentConfig()
		zapCfg.EncoderConfig.EncodeTime = zapcore.TimeEncoderOfLayout("15:04:05")
		zapCfg.EncoderConfig.ConsoleSeparator = "  "
		zapCfg.DisableCaller = true
		zapCfg.DisableStacktrace = true
	}
	zapCfg.Level = zap.NewAtomicLevelAt(level)
	zapCfg.OutputPaths = []string{cfg.File}
	zapCfg.ErrorOutputPaths = []string{cfg.File}

	return zapCfg.Build()
}
