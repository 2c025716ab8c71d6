// Package playing provides the single scene that drives a run: title,
// stage select, play, game over and win screens.
package playing

import (
	"errors"
	"fmt"
	"log"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/younwookim/unfair/internal/application/replay"
	"github.com/younwookim/unfair/internal/application/run"
	"github.com/younwookim/unfair/internal/application/scene"
	"github.com/younwookim/unfair/internal/application/state"
	"github.com/younwookim/unfair/internal/application/system"
	"github.com/younwookim/unfair/internal/domain/entity"
	"github.com/younwookim/unfair/internal/infrastructure/config"
)

var digitKeys = []ebiten.Key{
	ebiten.Key1, ebiten.Key2, ebiten.Key3, ebiten.Key4, ebiten.Key5,
	ebiten.Key6, ebiten.Key7, ebiten.Key8, ebiten.Key9,
}

// Options tune the scene
type Options struct {
	// RecordPath enables input recording; each life-sequence on a stage is
	// saved when the run ends. Empty disables recording.
	RecordPath string
	// Seed is written into recordings
	Seed int64
	// Reload is polled once per frame; stages it returns replace the
	// loaded ones before the next tick
	Reload func() []*entity.Stage
}

// Playing is the main gameplay scene
type Playing struct {
	config  *config.PhysicsConfig
	machine *run.Machine
	input   *system.InputSystem
	camera  *Camera
	effects *Effects
	opts    Options
	screenW int
	screenH int

	title    titleLayout
	selected int    // highlighted stage id on the select screen
	message  string // last rejection shown on the select screen

	recorder *replay.Recorder
}

// New creates a new Playing scene around a run machine
func New(cfg *config.PhysicsConfig, machine *run.Machine, opts Options) *Playing {
	camera := NewCamera(float64(cfg.Display.ScreenWidth))
	return &Playing{
		config:   cfg,
		machine:  machine,
		input:    system.NewInputSystem(cfg),
		camera:   camera,
		effects:  NewEffects(camera),
		opts:     opts,
		screenW:  cfg.Display.ScreenWidth,
		screenH:  cfg.Display.ScreenHeight,
		title:    newTitleLayout(float64(cfg.Display.ScreenWidth), float64(cfg.Display.ScreenHeight)),
		selected: 1,
	}
}

// Update proceeds the game state (implements scene.Scene)
func (p *Playing) Update(dt float64) (scene.Scene, error) {
	p.applyReloads()

	switch p.machine.State() {
	case state.StateTitle:
		if p.input.Back() {
			return nil, scene.ErrQuit
		}
		p.updateTitle()
	case state.StateStageSelect:
		p.updateStageSelect()
	case state.StatePlaying:
		p.updatePlaying()
	case state.StateGameOver:
		p.updateGameOver()
	case state.StateWin:
		p.updateWin()
	}

	p.effects.Handle(p.machine.DrainEvents())
	p.effects.Update(float32(dt))
	return nil, nil
}

func (p *Playing) applyReloads() {
	if p.opts.Reload == nil {
		return
	}
	for _, stage := range p.opts.Reload() {
		if err := p.machine.ReplaceStage(stage); err != nil {
			log.Printf("Failed to reload stage %d: %v", stage.ID, err)
			continue
		}
		log.Printf("Reloaded stage %d (%s)", stage.ID, stage.Name)
	}
}

func (p *Playing) updateTitle() {
	if inpututil.IsKeyJustPressed(ebiten.KeyEnter) {
		_ = p.machine.PressStart()
		return
	}

	pos, ok := p.input.Pointer()
	if !ok {
		return
	}
	switch {
	case p.title.fake.ContainsPoint(pos):
		p.machine.PressFakeStart(pos)
	case p.title.start.ContainsPoint(pos):
		_ = p.machine.PressStart()
	}
}

func (p *Playing) updateStageSelect() {
	n := len(p.machine.Stages())

	if inpututil.IsKeyJustPressed(ebiten.KeyArrowLeft) && p.selected > 1 {
		p.selected--
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyArrowRight) && p.selected < n {
		p.selected++
	}
	for i, k := range digitKeys {
		if i < n && inpututil.IsKeyJustPressed(k) {
			p.selected = i + 1
			p.startStage(p.selected)
			return
		}
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyEnter) {
		p.startStage(p.selected)
		return
	}

	if pos, ok := p.input.Pointer(); ok {
		if i := buttonAt(stageButtons(n, float64(p.screenW)), pos); i >= 0 {
			p.selected = i + 1
			p.startStage(p.selected)
		}
	}
}

func (p *Playing) startStage(id int) {
	err := p.machine.SelectStage(id)
	switch {
	case err == nil:
		p.message = ""
		p.camera.Snap(p.machine.Spawn().X)
		if p.opts.RecordPath != "" {
			p.recorder = replay.NewRecorder(p.opts.Seed, id)
			log.Printf("Recording enabled: %s (stage: %d)", p.opts.RecordPath, id)
		}
	case errors.Is(err, run.ErrStageLocked):
		p.message = fmt.Sprintf("Stage %d is locked", id)
	default:
		p.message = err.Error()
	}
}

func (p *Playing) updatePlaying() {
	if p.input.Back() {
		p.endRecording()
		_ = p.machine.Abandon()
		return
	}

	// F5: save the recording so far
	if inpututil.IsKeyJustPressed(ebiten.KeyF5) {
		p.saveRecording()
	}

	in := p.input.Intent()
	if p.recorder != nil {
		p.recorder.RecordFrame(in)
	}
	p.machine.Tick(in)

	if w := p.machine.World(); w != nil {
		p.camera.Follow(w.Actor().X)
	}
	if p.machine.State() == state.StateWin {
		p.endRecording()
	}
}

func (p *Playing) updateGameOver() {
	if p.input.Back() {
		p.endRecording()
		_ = p.machine.Abandon()
		return
	}
	if !p.input.Confirm() {
		return
	}
	if err := p.machine.Retry(); err != nil {
		log.Printf("Failed to restart stage: %v", err)
		return
	}
	if p.recorder != nil {
		p.recorder.RecordRetry()
	}
	p.camera.Snap(p.machine.Spawn().X)
}

func (p *Playing) updateWin() {
	if p.input.Confirm() {
		_ = p.machine.Continue()
	}
}

// saveRecording saves the current recording to file
func (p *Playing) saveRecording() {
	if p.recorder == nil {
		return
	}

	filename := p.opts.RecordPath
	if filename == "" {
		filename = replay.GenerateFilename()
	}

	if err := p.recorder.Save(filename); err != nil {
		log.Printf("Failed to save recording: %v", err)
	} else {
		log.Printf("Recording saved: %s (%d frames)", filename, p.recorder.FrameCount())
	}
}

func (p *Playing) endRecording() {
	if p.recorder == nil {
		return
	}
	p.recorder.Stop()
	p.saveRecording()
	p.recorder = nil
}

// OnEnter is called when entering this scene
func (p *Playing) OnEnter() {}

// OnExit is called when leaving this scene
func (p *Playing) OnExit() {
	p.endRecording()
}

// Layout returns the game's screen dimensions (used by game.Game)
func (p *Playing) Layout(outsideWidth, outsideHeight int) (int, int) {
	return p.screenW, p.screenH
}
