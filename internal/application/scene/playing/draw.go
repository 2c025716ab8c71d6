package playing

import (
	"fmt"
	"image/color"
	"math"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/younwookim/unfair/internal/application/run"
	"github.com/younwookim/unfair/internal/application/state"
	"github.com/younwookim/unfair/internal/application/world"
	"github.com/younwookim/unfair/internal/domain/entity"
	"github.com/younwookim/unfair/internal/domain/geom"
)

// Colors for rendering
var (
	colorBG         = color.RGBA{34, 34, 34, 255}
	colorBlock      = color.RGBA{85, 85, 85, 255}
	colorRevealed   = color.RGBA{120, 120, 160, 255}
	colorMoving     = color.RGBA{100, 100, 130, 255}
	colorTrap       = color.RGBA{200, 50, 50, 255}
	colorEnemy      = color.RGBA{200, 100, 100, 255}
	colorHazard     = color.RGBA{150, 150, 150, 255}
	colorSave       = color.RGBA{80, 160, 255, 255}
	colorCheckpoint = color.RGBA{60, 120, 60, 255}
	colorActiveCP   = color.RGBA{100, 230, 100, 255}
	colorGoal       = color.RGBA{255, 215, 0, 255}
	colorPad        = color.RGBA{230, 130, 30, 255}
	colorAccel      = color.RGBA{80, 200, 200, 90}
	colorGravity    = color.RGBA{160, 80, 220, 255}
	colorMissile    = color.RGBA{255, 90, 40, 255}
	colorBreakable  = color.RGBA{140, 100, 60, 255}
	colorStar       = color.RGBA{255, 240, 90, 255}
	colorLaserWarn  = color.RGBA{255, 60, 60, 80}
	colorLaser      = color.RGBA{255, 30, 30, 255}
	colorSign       = color.RGBA{150, 110, 70, 255}
	colorPlayer     = color.RGBA{100, 200, 100, 255}
	colorInvincible = color.RGBA{255, 255, 255, 255}
	colorDeathMark  = color.RGBA{136, 0, 0, 255}
	colorButton     = color.RGBA{68, 68, 68, 255}
	colorLocked     = color.RGBA{40, 40, 40, 255}
	colorHighlight  = color.RGBA{110, 110, 110, 255}
	colorOverlay    = color.RGBA{0, 0, 0, 180}
)

// entityColor picks the fill for an entity view; ok is false when the
// entity should not be drawn at all
func entityColor(v entity.View) (c color.RGBA, ok bool) {
	if !v.Visible {
		return color.RGBA{}, false
	}

	switch v.Kind {
	case entity.KindStaticBlock:
		return colorBlock, true
	case entity.KindInvisibleBlock:
		return colorRevealed, true
	case entity.KindMovingBlock:
		return colorMoving, true
	case entity.KindTrustBlock:
		return colorBlock, true
	case entity.KindBreakableBlock:
		return colorBreakable, true
	case entity.KindEnemy:
		return colorEnemy, true
	case entity.KindTrap:
		return colorTrap, true
	case entity.KindFakeSpike:
		// Indistinguishable from a trap until touched
		if v.Revealed {
			return colorHazard, true
		}
		return colorTrap, true
	case entity.KindFallingHazard:
		return colorHazard, true
	case entity.KindFakeSavePoint:
		return colorSave, true
	case entity.KindCheckpoint:
		if v.Active {
			return colorActiveCP, true
		}
		return colorCheckpoint, true
	case entity.KindGoal:
		if v.Fake && v.Revealed {
			return colorTrap, true
		}
		return colorGoal, true
	case entity.KindLaunchPad:
		if v.LooksSafe {
			return colorBlock, true
		}
		return colorPad, true
	case entity.KindAccelZone:
		return colorAccel, true
	case entity.KindGravitySwitch:
		return colorGravity, true
	case entity.KindHomingMissile:
		return colorMissile, true
	case entity.KindPowerStar:
		return colorStar, true
	case entity.KindLaserTrap:
		switch v.Phase {
		case entity.PhaseWarning:
			return colorLaserWarn, true
		case entity.PhaseActive:
			return colorLaser, true
		}
		return color.RGBA{}, false
	case entity.KindSignPost:
		return colorSign, true
	}
	return color.RGBA{}, false
}

// actorColor blinks while invincibility is about to run out
func actorColor(a world.ActorView, tick uint64) color.RGBA {
	switch {
	case a.Warning:
		if tick/4%2 == 0 {
			return colorInvincible
		}
		return colorPlayer
	case a.Invincible:
		return colorInvincible
	default:
		return colorPlayer
	}
}

// Draw renders the game screen
func (p *Playing) Draw(screen *ebiten.Image) {
	screen.Fill(colorBG)

	snap := p.machine.Snapshot()
	switch snap.State {
	case state.StateTitle:
		p.drawTitle(screen, snap)
	case state.StateStageSelect:
		p.drawStageSelect(screen, snap)
	default:
		if snap.World != nil {
			p.drawWorld(screen, snap)
		}
		p.drawHUD(screen, snap)
		switch snap.State {
		case state.StateGameOver:
			p.drawGameOver(screen, snap)
		case state.StateWin:
			p.drawWin(screen, snap)
		}
	}

	p.drawGlitch(screen)
	if c, ok := p.effects.Flash(); ok {
		ebitenutil.DrawRect(screen, 0, 0, float64(p.screenW), float64(p.screenH), c)
	}
}

func (p *Playing) drawTitle(screen *ebiten.Image, snap run.Snapshot) {
	cx := p.screenW/2 - 40
	ebitenutil.DebugPrintAt(screen, "THE UNFAIR", cx, 200)
	ebitenutil.DebugPrintAt(screen, fmt.Sprintf("Deaths: %d", snap.DeathCount), cx, 230)
	ebitenutil.DebugPrintAt(screen, "ESC to quit", 8, p.screenH-20)

	fake := p.title.fake
	if !p.machine.TitleTrapped() {
		ebitenutil.DrawRect(screen, fake.X, fake.Y, fake.W, fake.H, colorButton)
		ebitenutil.DebugPrintAt(screen, "TAP TO START", int(fake.X)+60, int(fake.Y)+24)
	} else {
		ebitenutil.DebugPrintAt(screen, "Of course it was a trap.", int(fake.X)+20, int(fake.Y)+24)
	}

	start := p.title.start
	ebitenutil.DrawRect(screen, start.X, start.Y, start.W, start.H, colorLocked)
	ebitenutil.DebugPrintAt(screen, "start", int(start.X)-10, int(start.Y)-16)
}

func (p *Playing) drawStageSelect(screen *ebiten.Image, snap run.Snapshot) {
	ebitenutil.DebugPrintAt(screen, "SELECT STAGE", p.screenW/2-40, 150)

	stages := p.machine.Stages()
	store := p.machine.Progress()
	for i, b := range stageButtons(len(stages), float64(p.screenW)) {
		id := i + 1
		fill := colorLocked
		if store.Unlocked(id) {
			fill = colorButton
		}
		if id == p.selected {
			fill = colorHighlight
		}
		ebitenutil.DrawRect(screen, b.X, b.Y, b.W, b.H, fill)

		label := fmt.Sprintf("STAGE %d", id)
		if store.Stage(id).Cleared {
			label += " *"
		}
		ebitenutil.DebugPrintAt(screen, label, int(b.X)+16, int(b.Y)+24)
		ebitenutil.DebugPrintAt(screen, stages[i].Name, int(b.X)+16, int(b.Y)+44)
	}

	if p.message != "" {
		ebitenutil.DebugPrintAt(screen, p.message, p.screenW/2-60, p.screenH-130)
	}
	ebitenutil.DebugPrintAt(screen, fmt.Sprintf("Total Deaths: %d", snap.DeathCount), p.screenW/2-50, p.screenH-100)
}

func (p *Playing) drawWorld(screen *ebiten.Image, snap run.Snapshot) {
	off := p.camera.Offset()
	ws := snap.World

	// Previous deaths on this stage
	for _, d := range p.machine.Progress().HistoryForStage(snap.StageID) {
		ebitenutil.DebugPrintAt(screen, "x", int(d.X+off.X), int(d.Y+off.Y)-12)
		ebitenutil.DrawRect(screen, d.X+off.X, d.Y+off.Y, 3, 3, colorDeathMark)
	}

	for _, v := range ws.Entities {
		p.drawEntity(screen, v, off)
	}

	if !ws.Actor.Dead {
		b := ws.Actor.Box.Translate(off)
		ebitenutil.DrawRect(screen, b.X, b.Y, b.W, b.H, actorColor(ws.Actor, ws.Tick))
		// eyes
		eyeY := b.Y + 4
		if ws.GravityDir < 0 {
			eyeY = b.Bottom() - 8
		}
		ebitenutil.DrawRect(screen, b.X+4, eyeY, 4, 4, color.Black)
		ebitenutil.DrawRect(screen, b.X+12, eyeY, 4, 4, color.Black)
	}
}

func (p *Playing) drawEntity(screen *ebiten.Image, v entity.View, off geom.Vec) {
	c, ok := entityColor(v)
	if !ok {
		return
	}
	b := v.Box.Translate(off)
	if b.Right() < 0 || b.X > float64(p.screenW) {
		return
	}

	switch v.Kind {
	case entity.KindHomingMissile:
		cx, cy := b.Center().X, b.Center().Y
		tail := 12.0
		ebitenutil.DrawLine(screen, cx, cy, cx-math.Cos(v.Angle)*tail, cy-math.Sin(v.Angle)*tail, c)
		ebitenutil.DrawRect(screen, cx-2, cy-2, 4, 4, c)
	case entity.KindSignPost:
		ebitenutil.DrawRect(screen, b.X+b.W/2-2, b.Y, 4, b.H, c)
		ebitenutil.DebugPrintAt(screen, v.Text, int(b.X), int(b.Y)-16)
	default:
		ebitenutil.DrawRect(screen, b.X, b.Y, b.W, b.H, c)
		if v.Text != "" {
			ebitenutil.DebugPrintAt(screen, v.Text, int(b.X)+4, int(b.Y)+2)
		}
	}
}

func (p *Playing) drawHUD(screen *ebiten.Image, snap run.Snapshot) {
	hud := fmt.Sprintf("%s | Deaths: %d", snap.StageName, snap.DeathCount)
	if snap.World != nil && snap.World.Actor.Invincible {
		hud += " | INVINCIBLE"
	}
	ebitenutil.DebugPrint(screen, hud)
}

func (p *Playing) drawGameOver(screen *ebiten.Image, snap run.Snapshot) {
	ebitenutil.DrawRect(screen, 0, 0, float64(p.screenW), float64(p.screenH), colorOverlay)

	text := "GAME OVER"
	if d := snap.LastDeath; d != nil {
		text = fmt.Sprintf("%s\n\n(%s)", d.Taunt, d.Reason)
	}
	ebitenutil.DebugPrintAt(screen, text, p.screenW/2-80, p.screenH/2-20)
	ebitenutil.DebugPrintAt(screen, "Tap / Space to Retry, ESC for stage select", p.screenW/2-120, p.screenH/2+100)
}

func (p *Playing) drawWin(screen *ebiten.Image, snap run.Snapshot) {
	ebitenutil.DrawRect(screen, 0, 0, float64(p.screenW), float64(p.screenH), colorOverlay)
	text := fmt.Sprintf("STAGE CLEAR\n\n%s\n\nTap / Space to continue", snap.StageName)
	ebitenutil.DebugPrintAt(screen, text, p.screenW/2-70, p.screenH/2-30)
}

// drawGlitch tears horizontal bands of the screen sideways
func (p *Playing) drawGlitch(screen *ebiten.Image) {
	off := p.effects.GlitchOffset()
	if off == 0 {
		return
	}
	band := p.screenH / 12
	for y := 0; y < p.screenH; y += band * 2 {
		ebitenutil.DrawRect(screen, off, float64(y), float64(p.screenW), float64(band/3), color.RGBA{255, 0, 80, 60})
	}
}
