package ui

import (
	"fmt"

	"github.com/gdamore/tcell/v2"

	"github.com/samdwyer/wander/internal/entity"
	"github.com/samdwyer/wander/internal/gamedata"
	"github.com/samdwyer/wander/internal/tilemap"
	"github.com/samdwyer/wander/internal/world"
)

const (
	// panelX is the column where the side panel starts.
	panelX = 14

	statsRow     = 1
	inventoryRow = 3
	diaryRow     = 8
	diaryLines   = 6
)

// Renderer draws the game to the screen and implements the session view.
type Renderer struct {
	screen *Screen
	defs   map[tilemap.TileID]*gamedata.TileDef
}

// NewRenderer creates a renderer using the given tile catalog for glyphs
// and colors.
func NewRenderer(screen *Screen, defs []gamedata.TileDef) *Renderer {
	byID := make(map[tilemap.TileID]*gamedata.TileDef, len(defs))
	for i := range defs {
		byID[tilemap.TileID(defs[i].ID)] = &defs[i]
	}
	return &Renderer{screen: screen, defs: byID}
}

// Render redraws the scene: base tiles, event overlays, hero, side panel.
func (r *Renderer) Render(loc *world.Location, hero *entity.Hero) {
	r.screen.Clear()

	tm := loc.Tilemap
	for y := 0; y < tm.Height; y++ {
		for x := 0; x < tm.Width; x++ {
			r.drawTile(x, y, tm.GetTile(x, y))
		}
	}
	for _, e := range tm.Events {
		if e.Tile != nil {
			r.drawTile(e.X, e.Y, e.Tile)
		}
	}

	heroStyle := tcell.StyleDefault.Foreground(tcell.ColorYellow).Bold(true)
	r.screen.SetContent(hero.X, hero.Y, '@', heroStyle)

	r.drawText(panelX, 0, loc.Name, tcell.StyleDefault.Bold(true))
	r.paintStats(hero)
	r.paintInventory(hero)
	r.paintDiary(hero)

	r.screen.Show()
}

// UpdateHeroStats refreshes the stats line only.
func (r *Renderer) UpdateHeroStats(hero *entity.Hero) {
	r.paintStats(hero)
	r.screen.Show()
}

// UpdateDiary refreshes the diary tail only.
func (r *Renderer) UpdateDiary(hero *entity.Hero) {
	r.paintDiary(hero)
	r.screen.Show()
}

// UpdateInventory refreshes the inventory listing only.
func (r *Renderer) UpdateInventory(hero *entity.Hero) {
	r.paintInventory(hero)
	r.screen.Show()
}

func (r *Renderer) drawTile(x, y int, tile *tilemap.Tile) {
	def, ok := r.defs[tile.ID]
	if !ok {
		r.screen.SetContent(x, y, ' ', tcell.StyleDefault)
		return
	}
	style := tcell.StyleDefault.Foreground(def.TCellColor())
	r.screen.SetContent(x, y, def.GlyphRune(), style)
}

func (r *Renderer) paintStats(hero *entity.Hero) {
	line := fmt.Sprintf("%s  Lv %d  XP %d  Gold %d  Energy %d/%d",
		hero.Name, hero.Level, hero.XP, hero.Gold, hero.Energy, hero.MaxEnergy)
	r.drawText(panelX, statsRow, line, tcell.StyleDefault)
}

func (r *Renderer) paintInventory(hero *entity.Hero) {
	r.drawText(panelX, inventoryRow, "Inventory:", tcell.StyleDefault.Bold(true))
	row := inventoryRow + 1
	for _, item := range hero.Inventory() {
		if row >= diaryRow {
			break
		}
		r.drawText(panelX, row, "- "+item.Def.Name, tcell.StyleDefault)
		row++
	}
	// Blank the remaining rows so removed items disappear.
	for ; row < diaryRow; row++ {
		r.drawText(panelX, row, "", tcell.StyleDefault)
	}
}

func (r *Renderer) paintDiary(hero *entity.Hero) {
	r.drawText(panelX, diaryRow, "Diary:", tcell.StyleDefault.Bold(true))
	diary := hero.Diary()
	if len(diary) > diaryLines {
		diary = diary[len(diary)-diaryLines:]
	}
	for i, entry := range diary {
		r.drawText(panelX, diaryRow+1+i, entry, tcell.StyleDefault)
	}
}

// drawText writes a string, clearing the rest of the terminal row so stale
// panel content does not linger.
func (r *Renderer) drawText(x, y int, text string, style tcell.Style) {
	width, _ := r.screen.Size()
	col := x
	for _, ch := range text {
		if col >= width {
			break
		}
		r.screen.SetContent(col, y, ch, style)
		col++
	}
	for ; col < width; col++ {
		r.screen.SetContent(col, y, ' ', tcell.StyleDefault)
	}
}
