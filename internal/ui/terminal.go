// Package ui renders the game in a terminal with termbox and translates
// keystrokes into actions. It owns the screen for the whole run, so all
// logging goes to the configured log file instead of stderr.
package ui

import (
	"fmt"

	"github.com/nsf/termbox-go"

	"github.com/duskhall/server/internal/action"
	"github.com/duskhall/server/internal/data"
	"github.com/duskhall/server/internal/handler"
	"github.com/duskhall/server/internal/msglog"
	"github.com/duskhall/server/internal/system"
	"github.com/duskhall/server/internal/world"
)

const messageLines = 5

// UI drives the terminal: one Render/NextAction pair per player turn.
type UI struct {
	deps *handler.Deps
	ex   *system.Executor
}

func New(deps *handler.Deps, ex *system.Executor) *UI {
	return &UI{deps: deps, ex: ex}
}

// Init takes over the terminal.
func (u *UI) Init() error {
	if err := termbox.Init(); err != nil {
		return fmt.Errorf("termbox init: %w", err)
	}
	termbox.SetInputMode(termbox.InputEsc)
	return nil
}

// Close releases the terminal.
func (u *UI) Close() {
	termbox.Close()
}

// Interrupt unblocks a pending NextAction, used by the signal handler so a
// SIGINT still saves before exit.
func (u *UI) Interrupt() {
	termbox.Interrupt()
}

// WaitForKey blocks until any key is pressed. Shown after death so the final
// frame stays readable.
func (u *UI) WaitForKey() {
	for {
		ev := termbox.PollEvent()
		if ev.Type == termbox.EventKey || ev.Type == termbox.EventInterrupt {
			return
		}
	}
}

// Render draws the full frame: map, actors, status line, message log.
func (u *UI) Render() {
	termbox.Clear(termbox.ColorDefault, termbox.ColorDefault)
	u.drawMap()
	u.drawGround()
	u.drawActors()
	u.drawStatus()
	u.drawMessages()
	termbox.Flush()
}

func (u *UI) drawMap() {
	m := u.deps.World.Map
	for y := 0; y < m.H; y++ {
		for x := 0; x < m.W; x++ {
			if !m.IsExplored(x, y) {
				continue
			}
			t := m.At(x, y)
			glyph := '#'
			if t.Walkable {
				glyph = '.'
				if m.IsStairs(x, y) {
					glyph = '>'
				}
			}
			color := termbox.ColorDarkGray
			if m.IsVisible(x, y) {
				color = termbox.ColorWhite
				if glyph == '>' {
					color = termbox.ColorYellow | termbox.AttrBold
				}
			}
			termbox.SetCell(x, y, glyph, color, termbox.ColorDefault)
		}
	}
}

func (u *UI) drawGround() {
	for _, g := range u.deps.World.AllGround() {
		if !u.deps.World.Map.IsVisible(g.X, g.Y) {
			continue
		}
		termbox.SetCell(g.X, g.Y, g.Item.Glyph, colorAttr(g.Item.Color), termbox.ColorDefault)
	}
}

func (u *UI) drawActors() {
	// Monsters under the player, dead under the living.
	for _, a := range u.deps.World.Monsters() {
		if a.Dead || !u.deps.World.Map.IsVisible(a.X, a.Y) {
			continue
		}
		termbox.SetCell(a.X, a.Y, a.Glyph, colorAttr(a.Color), termbox.ColorDefault)
	}
	p := u.deps.World.Player
	if p != nil && !p.Dead {
		termbox.SetCell(p.X, p.Y, '@', termbox.ColorWhite|termbox.AttrBold, termbox.ColorDefault)
	}
}

func (u *UI) drawStatus() {
	p := u.deps.World.Player
	y := u.deps.World.Map.H
	line := fmt.Sprintf("HP: %d/%d  Depth: %d  Turn: %d  Score: %d",
		p.Fighter.HP, p.Fighter.MaxHP, u.deps.World.Depth, u.deps.World.Turn, p.Score)
	drawText(0, y, line, termbox.ColorWhite)

	// HP bar under the numbers.
	const barWidth = 20
	filled := 0
	if p.Fighter.MaxHP > 0 {
		filled = p.Fighter.HP * barWidth / p.Fighter.MaxHP
	}
	for i := 0; i < barWidth; i++ {
		c := termbox.ColorDarkGray
		if i < filled {
			c = termbox.ColorGreen
		}
		termbox.SetCell(i, y+1, '=', c, termbox.ColorDefault)
	}
}

func (u *UI) drawMessages() {
	base := u.deps.World.Map.H + 2
	for i, msg := range u.deps.MsgLog.Tail(messageLines) {
		drawText(0, base+i, msg.FullText(), messageAttr(msg.Color))
	}
}

// NextAction blocks until the player commits to an action. The second result
// is false when the player asked to quit.
func (u *UI) NextAction() (action.Action, bool) {
	for {
		ev := termbox.PollEvent()
		if ev.Type == termbox.EventInterrupt {
			return action.Action{}, false
		}
		if ev.Type != termbox.EventKey {
			continue
		}
		if ev.Key == termbox.KeyEsc || ev.Ch == 'q' {
			return action.Action{}, false
		}

		if dx, dy, ok := moveKey(ev); ok {
			return action.Action{Kind: action.KindMove, DX: dx, DY: dy}, true
		}
		switch ev.Ch {
		case '.':
			return action.Action{Kind: action.KindWait}, true
		case 'g':
			return action.Action{Kind: action.KindPickup}, true
		case '>':
			return action.Action{Kind: action.KindDescend}, true
		case 'i':
			if a, ok := u.useFromInventory(); ok {
				return a, true
			}
		case 'd':
			if objID, ok := u.pickInventoryItem("Drop which item?"); ok {
				return action.Action{Kind: action.KindDrop, ObjectID: objID}, true
			}
		}
	}
}

// moveKey maps vi keys and arrows to a step direction.
func moveKey(ev termbox.Event) (dx, dy int, ok bool) {
	switch ev.Key {
	case termbox.KeyArrowUp:
		return 0, -1, true
	case termbox.KeyArrowDown:
		return 0, 1, true
	case termbox.KeyArrowLeft:
		return -1, 0, true
	case termbox.KeyArrowRight:
		return 1, 0, true
	}
	switch ev.Ch {
	case 'h':
		return -1, 0, true
	case 'l':
		return 1, 0, true
	case 'k':
		return 0, -1, true
	case 'j':
		return 0, 1, true
	case 'y':
		return -1, -1, true
	case 'u':
		return 1, -1, true
	case 'b':
		return -1, 1, true
	case 'n':
		return 1, 1, true
	}
	return 0, 0, false
}

// useFromInventory runs the select-item, select-target flow. Returns false
// when the player backed out at any step.
func (u *UI) useFromInventory() (action.Action, bool) {
	objID, ok := u.pickInventoryItem("Use which item?")
	if !ok {
		return action.Action{}, false
	}

	a := action.Action{Kind: action.KindUseItem, ObjectID: objID}
	targeting, radius := u.ex.TargetingFor(u.deps.World.Player, objID)
	if targeting == data.TargetNone {
		return a, true
	}

	pt, ok := u.pickTarget(radius)
	if !ok {
		return action.Action{}, false
	}
	a.Target = pt
	a.HasTarget = true
	return a, true
}

// pickInventoryItem draws a lettered menu over the map and waits for a choice.
func (u *UI) pickInventoryItem(title string) (int32, bool) {
	inv := u.deps.World.Player.Inv
	if inv.Size() == 0 {
		u.deps.MsgLog.Add("Your inventory is empty.", msglog.ColorImpossible)
		u.Render()
		return 0, false
	}

	u.Render()
	drawText(0, 0, title, termbox.ColorYellow|termbox.AttrBold)
	for i, it := range inv.Items {
		label := fmt.Sprintf("(%c) %s", 'a'+i, it.Name)
		if it.Count > 1 {
			label = fmt.Sprintf("%s x%d", label, it.Count)
		}
		drawText(2, 1+i, label, termbox.ColorWhite)
	}
	termbox.Flush()

	for {
		ev := termbox.PollEvent()
		if ev.Type != termbox.EventKey {
			continue
		}
		if ev.Key == termbox.KeyEsc {
			return 0, false
		}
		idx := int(ev.Ch - 'a')
		if idx >= 0 && idx < inv.Size() {
			return inv.Items[idx].ObjectID, true
		}
	}
}

// pickTarget moves a cursor over the map and confirms with enter or space.
// radius > 0 highlights the blast area around the cursor.
func (u *UI) pickTarget(radius int) (action.Point, bool) {
	p := u.deps.World.Player
	cx, cy := p.X, p.Y

	for {
		u.Render()
		if radius > 0 {
			u.highlightRadius(cx, cy, radius)
		}
		termbox.SetCell(cx, cy, 'X', termbox.ColorBlack, termbox.ColorYellow)
		drawText(0, 0, "Select a target. Enter to confirm, Esc to cancel.", termbox.ColorYellow)
		termbox.Flush()

		ev := termbox.PollEvent()
		if ev.Type != termbox.EventKey {
			continue
		}
		switch ev.Key {
		case termbox.KeyEsc:
			return action.Point{}, false
		case termbox.KeyEnter, termbox.KeySpace:
			return action.Point{X: cx, Y: cy}, true
		}
		if dx, dy, ok := moveKey(ev); ok {
			nx, ny := cx+dx, cy+dy
			if u.deps.World.Map.InBounds(nx, ny) {
				cx, cy = nx, ny
			}
		}
	}
}

func (u *UI) highlightRadius(cx, cy, radius int) {
	m := u.deps.World.Map
	for y := cy - radius; y <= cy+radius; y++ {
		for x := cx - radius; x <= cx+radius; x++ {
			if !m.InBounds(x, y) || world.Distance(cx, cy, x, y) > float64(radius) {
				continue
			}
			termbox.SetCell(x, y, glyphAt(x, y), termbox.ColorBlack, termbox.ColorRed)
		}
	}
}

// glyphAt reads back the rune already drawn at a cell so highlights keep the
// underlying symbol.
func glyphAt(x, y int) rune {
	w, _ := termbox.Size()
	cells := termbox.CellBuffer()
	i := y*w + x
	if i < 0 || i >= len(cells) || cells[i].Ch == 0 {
		return ' '
	}
	return cells[i].Ch
}

func drawText(x, y int, text string, fg termbox.Attribute) {
	for i, c := range text {
		termbox.SetCell(x+i, y, c, fg, termbox.ColorDefault)
	}
}

// colorAttr maps the color names used in the YAML tables.
func colorAttr(name string) termbox.Attribute {
	switch name {
	case "red":
		return termbox.ColorRed
	case "green":
		return termbox.ColorGreen
	case "blue":
		return termbox.ColorBlue
	case "yellow":
		return termbox.ColorYellow
	case "magenta", "purple":
		return termbox.ColorMagenta
	case "cyan":
		return termbox.ColorCyan
	case "white":
		return termbox.ColorWhite
	case "gray", "grey":
		return termbox.ColorDarkGray
	default:
		return termbox.ColorDefault
	}
}

// messageAttr maps log colors to terminal attributes.
func messageAttr(c msglog.Color) termbox.Attribute {
	switch c {
	case msglog.ColorWelcome:
		return termbox.ColorCyan
	case msglog.ColorImpossible:
		return termbox.ColorDarkGray
	case msglog.ColorNeedsTarget:
		return termbox.ColorCyan
	case msglog.ColorHealthRecovered:
		return termbox.ColorGreen
	case msglog.ColorStatusApplied:
		return termbox.ColorMagenta
	case msglog.ColorPlayerAttack:
		return termbox.ColorWhite
	case msglog.ColorEnemyAttack:
		return termbox.ColorRed
	case msglog.ColorPlayerDie:
		return termbox.ColorRed | termbox.AttrBold
	case msglog.ColorEnemyDie:
		return termbox.ColorYellow
	case msglog.ColorDescend:
		return termbox.ColorMagenta | termbox.AttrBold
	default:
		return termbox.ColorDefault
	}
}
