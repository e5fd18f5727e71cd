//go:build ebiten

package app

import (
	"image/color"

	"c64life/internal/core"
	"c64life/internal/display"
	"c64life/internal/life"
	"c64life/internal/render"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/text"
	"golang.org/x/image/font/basicfont"
)

type mode int

const (
	modeMenu mode = iota
	modePresets
	modeEditor
	modeRunning
)

// Game adapts the Life world and the menus around it to the ebiten.Game
// interface. The running mode drives exactly the loop cycle the headless
// runner uses: present the prepared frame to the device, then compute the
// next generation behind it.
type Game struct {
	world   *life.World
	dev     *display.Buffer
	painter *render.CellPainter
	pacer   *core.FixedStep

	onColor  color.Color
	offColor color.Color

	mode  mode
	scale int
	seed  int64

	curX, curY int
}

// New constructs a Game around the provided world.
func New(world *life.World, cfg *Config, seed int64) *Game {
	w, h := world.Size()
	return &Game{
		world:   world,
		dev:     display.NewBuffer(w, h),
		painter: render.NewCellPainter(w, h),
		pacer:   core.NewFixedStep(cfg.Rate),
		// Light green on black, like the machine this is a homage to.
		onColor:  color.RGBA{R: 0xaa, G: 0xff, B: 0x66, A: 0xff},
		offColor: color.Black,
		mode:     modeMenu,
		scale:    cfg.Scale,
		seed:     seed,
		curX:     w / 2,
		curY:     h / 2,
	}
}

// Update handles input and advances the simulation while running.
func (g *Game) Update() error {
	switch g.mode {
	case modeMenu:
		return g.updateMenu()
	case modePresets:
		g.updatePresets()
	case modeEditor:
		g.updateEditor()
	case modeRunning:
		g.updateRunning()
	}
	return nil
}

func (g *Game) updateMenu() error {
	switch {
	case inpututil.IsKeyJustPressed(ebiten.KeyDigit1):
		g.world.Reset(g.seed)
		g.seed++
		g.start()
	case inpututil.IsKeyJustPressed(ebiten.KeyDigit2):
		g.world.Clear()
		w, h := g.world.Size()
		g.curX, g.curY = w/2, h/2
		g.mode = modeEditor
	case inpututil.IsKeyJustPressed(ebiten.KeyDigit3):
		g.mode = modePresets
	case inpututil.IsKeyJustPressed(ebiten.KeyQ),
		inpututil.IsKeyJustPressed(ebiten.KeyEscape):
		return ebiten.Termination
	}
	return nil
}

func (g *Game) updatePresets() {
	w, h := g.world.Size()
	cx, cy := w/2, h/2
	switch {
	case inpututil.IsKeyJustPressed(ebiten.KeyB):
		g.stamp(life.Block, cx, cy)
	case inpututil.IsKeyJustPressed(ebiten.KeyN):
		g.stamp(life.Blinker, cx-1, cy)
	case inpututil.IsKeyJustPressed(ebiten.KeyG):
		g.stamp(life.Glider, cx-1, cy-1)
	case inpututil.IsKeyJustPressed(ebiten.KeyU):
		// Anchored near the corner so the gliders have room to fly.
		g.stamp(life.GliderGun, 1, 2)
	case inpututil.IsKeyJustPressed(ebiten.KeyEnter),
		inpututil.IsKeyJustPressed(ebiten.KeyEscape):
		g.mode = modeMenu
	}
}

func (g *Game) stamp(p life.Pattern, x, y int) {
	g.world.Clear()
	g.world.Stamp(p, x, y)
	g.start()
}

func (g *Game) updateEditor() {
	w, h := g.world.Size()
	switch {
	case inpututil.IsKeyJustPressed(ebiten.KeyArrowUp):
		g.curY = (g.curY - 1 + h) % h
	case inpututil.IsKeyJustPressed(ebiten.KeyArrowDown):
		g.curY = (g.curY + 1) % h
	case inpututil.IsKeyJustPressed(ebiten.KeyArrowLeft):
		g.curX = (g.curX - 1 + w) % w
	case inpututil.IsKeyJustPressed(ebiten.KeyArrowRight):
		g.curX = (g.curX + 1) % w
	case inpututil.IsKeyJustPressed(ebiten.KeySpace):
		g.world.Toggle(g.curX, g.curY)
	case inpututil.IsKeyJustPressed(ebiten.KeyX):
		g.world.Clear()
	case inpututil.IsKeyJustPressed(ebiten.KeyC):
		g.world.ClearRow(g.curY)
	case inpututil.IsKeyJustPressed(ebiten.KeyEnter):
		g.world.RebuildScreen()
		g.start()
	case inpututil.IsKeyJustPressed(ebiten.KeyEscape):
		g.mode = modeMenu
	}
}

func (g *Game) updateRunning() {
	if inpututil.IsKeyJustPressed(ebiten.KeyQ) ||
		inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		// Back to the menu; the grid is left as it stands.
		g.mode = modeMenu
		return
	}
	if g.pacer.ShouldStep() {
		g.world.Cycle(g.dev)
	}
}

// start enters running mode with the seeded frame as the first one shown.
func (g *Game) start() {
	g.dev.Present(g.world.Screen())
	g.mode = modeRunning
}

// Draw renders the current mode.
func (g *Game) Draw(screen *ebiten.Image) {
	switch g.mode {
	case modeMenu:
		g.drawLines(screen, []string{
			"Conway's Life",
			"",
			"1) Random start",
			"2) Draw your own",
			"   (cursor keys move, SPACE toggle,",
			"    X clear all, C clear row, ENTER start)",
			"3) Presets (Block, Blinker, Glider, Glider Gun)",
			"",
			"Q) Quit",
		})
	case modePresets:
		g.drawLines(screen, []string{
			"Presets",
			"",
			"B) Block",
			"N) Blinker",
			"G) Glider",
			"U) Glider Gun",
			"",
			"ENTER) Back",
		})
	case modeEditor:
		w, _ := g.world.Size()
		g.painter.Blit(screen, g.world.Screen(), g.onColor, g.offColor, g.scale, g.curY*w+g.curX)
	case modeRunning:
		g.painter.Blit(screen, g.dev.Cells(), g.onColor, g.offColor, g.scale, -1)
	}
}

func (g *Game) drawLines(dst *ebiten.Image, lines []string) {
	face := basicfont.Face7x13
	for i, line := range lines {
		text.Draw(dst, line, face, 16, 24+i*16, g.onColor)
	}
}

// Layout returns the logical screen size.
func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	w, h := g.world.Size()
	return w * g.scale, h * g.scale
}
