package handler

import (
	"github.com/duskhall/server/internal/config"
	"github.com/duskhall/server/internal/core/event"
	"github.com/duskhall/server/internal/data"
	"github.com/duskhall/server/internal/msglog"
	"github.com/duskhall/server/internal/persist"
	"github.com/duskhall/server/internal/scripting"
	"github.com/duskhall/server/internal/world"
	"go.uber.org/zap"
)

// Deps holds shared dependencies injected into systems and action handlers.
// Repos are nil when the game runs without a database.
type Deps struct {
	Config    *config.Config
	Log       *zap.Logger
	World     *world.State
	Scripting *scripting.Engine
	Items     *data.ItemTable
	Monsters  *data.MonsterTable
	Events    *event.Bus
	MsgLog    *msglog.Log

	CharID      int32 // DB id of the loaded character, 0 without a database
	ProfileRepo *persist.ProfileRepo
	CharRepo    *persist.CharacterRepo
	ItemRepo    *persist.ItemRepo
	JournalRepo *persist.JournalRepo
	ScoreRepo   *persist.ScoreRepo
}
