package lview

import (
	"fmt"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/sirupsen/logrus"
)

// Structure describes a UI. Root is called once, before the first frame,
// and the returned tree is kept for the life of the engine.
type Structure interface {
	Root() *View
}

// StructureFunc adapts a function to Structure.
type StructureFunc func() *View

// Root calls f.
func (f StructureFunc) Root() *View { return f() }

// defaultDumpInterval is five seconds at 60 TPS.
const defaultDumpInterval = 300

// Engine drives a view tree once per frame. It implements ebiten.Game: Update
// runs the logic pass (components), Draw runs the render pass (emission and
// rasterization). The tree is read, never rebuilt, by both passes.
type Engine struct {
	root  *View
	batch *ShapeBatch
	store EventStore
	debug bool
	frame uint64

	// ClearColor fills the screen before the tree is drawn.
	ClearColor Color

	// DumpInterval is how many frames pass between debug tree dumps.
	// Zero disables dumps.
	DumpInterval uint64

	// ScreenshotDir is where Screenshot writes PNG files.
	ScreenshotDir string

	// ShowFPS overlays FPS and TPS after the tree is drawn.
	ShowFPS bool

	surfaceW, surfaceH int

	// savedLevel is the logger level SetDebugMode(true) replaced, restored
	// by SetDebugMode(false).
	savedLevel *logrus.Level

	// Input state
	source      PointerSource
	pointer     pointerTracker
	lastPointer PointerState
	injectQueue []syntheticPointerEvent

	testRunner      *TestRunner
	screenshotQueue []string
}

var _ ebiten.Game = (*Engine)(nil)

// NewEngine builds the tree from s and returns an engine ready to run.
// Panics if s returns a nil root.
func NewEngine(s Structure) *Engine {
	root := s.Root()
	if root == nil {
		panic("lview: structure returned nil root")
	}
	return &Engine{
		root:          root,
		batch:         NewShapeBatch(defaultPrimitiveCap),
		ClearColor:    ColorWhite,
		DumpInterval:  defaultDumpInterval,
		ScreenshotDir: defaultScreenshotDir,
		source:        ebitenPointer{},
	}
}

// Root returns the engine's root view.
func (e *Engine) Root() *View {
	return e.root
}

// Frame returns the number of Update calls so far.
func (e *Engine) Frame() uint64 {
	return e.frame
}

// Surface returns the current drawable surface as the root's parent
// rectangle.
func (e *Engine) Surface() Rect {
	return Rect{Width: float64(e.surfaceW), Height: float64(e.surfaceH)}
}

// Pointer returns the pointer state sampled by the last Update.
func (e *Engine) Pointer() PointerState {
	return e.lastPointer
}

// Layout records the surface size and uses it as the logical screen size.
func (e *Engine) Layout(outsideWidth, outsideHeight int) (int, int) {
	e.surfaceW, e.surfaceH = outsideWidth, outsideHeight
	return outsideWidth, outsideHeight
}

// Update runs one logic tick: the test runner step, pointer sampling, and
// component processing over the whole tree.
func (e *Engine) Update() error {
	e.frame++
	if e.testRunner != nil {
		e.testRunner.step(e)
	}

	var t0 time.Time
	if e.debug {
		t0 = time.Now()
	}

	e.lastPointer = e.readPointer()
	e.root.Process(e.Surface(), ProcessContext{
		Pointer: e.lastPointer,
		Frame:   e.frame,
		store:   e.store,
	})

	if e.debug {
		logger.WithFields(logrus.Fields{
			"frame":   e.frame,
			"process": time.Since(t0),
		}).Debug("logic tick")
	}
	return nil
}

// RenderFrame emits the tree against surface into the engine's batch and
// returns it. The batch is reused across frames.
func (e *Engine) RenderFrame(surface Rect) *ShapeBatch {
	e.batch.Reset()
	e.root.Emit(e.batch, surface)
	return e.batch
}

// Draw clears the screen, emits the tree against the screen bounds, and
// rasterizes the result.
func (e *Engine) Draw(screen *ebiten.Image) {
	screen.Fill(e.ClearColor.toRGBA())

	b := screen.Bounds()
	surface := Rect{Width: float64(b.Dx()), Height: float64(b.Dy())}

	var stats debugStats
	var t0 time.Time
	if e.debug {
		t0 = time.Now()
	}

	batch := e.RenderFrame(surface)

	if e.debug {
		stats.traverseTime = time.Since(t0)
		t0 = time.Now()
	}

	batch.Draw(screen)
	if e.ShowFPS {
		drawFPS(screen)
	}

	if e.debug {
		stats.rasterTime = time.Since(t0)
		stats.primitiveCount = batch.Len()
		stats.drawnCount = countDrawable(batch.Primitives())
		e.debugLog(stats)
		e.debugDumpTree()
	}

	e.flushScreenshots(screen)
}

// SetEventStore sets the optional event bridge. Pass nil to drop events.
func (e *Engine) SetEventStore(store EventStore) {
	e.store = store
}

// SetDebugMode enables or disables debug mode. When enabled, per-frame stats
// and periodic tree dumps are logged at debug level (the package logger is
// raised to debug level if needed), and tree construction warns about
// oversized nodes. Disabling restores the level debug mode replaced.
func (e *Engine) SetDebugMode(enabled bool) {
	e.debug = enabled
	globalDebug = enabled
	switch {
	case enabled && !logger.IsLevelEnabled(logrus.DebugLevel):
		prev := logger.GetLevel()
		e.savedLevel = &prev
		logger.SetLevel(logrus.DebugLevel)
	case !enabled && e.savedLevel != nil:
		logger.SetLevel(*e.savedLevel)
		e.savedLevel = nil
	}
}

// Run builds an engine from s, opens a window configured by cfg, and blocks
// until the window closes. Errors from ebiten are returned wrapped.
func Run(s Structure, cfg RunConfig) error {
	if err := cfg.Validate(); err != nil {
		return err
	}
	if cfg.LogLevel != logrus.PanicLevel {
		logger.SetLevel(cfg.LogLevel)
	}

	e := NewEngine(s)
	if cfg.ScreenshotDir != "" {
		e.ScreenshotDir = cfg.ScreenshotDir
	}
	e.ShowFPS = cfg.ShowFPS
	e.SetDebugMode(cfg.Debug)

	ebiten.SetWindowTitle(cfg.Title)
	ebiten.SetWindowSize(cfg.Width, cfg.Height)
	ebiten.SetTPS(cfg.TPS)
	if cfg.Resizable {
		ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
	}

	logger.WithFields(logrus.Fields{
		"title":  cfg.Title,
		"width":  cfg.Width,
		"height": cfg.Height,
		"tps":    cfg.TPS,
	}).Info("starting engine")

	if err := ebiten.RunGame(e); err != nil {
		return fmt.Errorf("lview: run: %w", err)
	}
	return nil
}
