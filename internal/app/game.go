// internal/app/game.go
package app

import (
	"github.com/hajimehoshi/ebiten/v2"

	"github.com/llehouerou/spectra/internal/config"
	"github.com/llehouerou/spectra/internal/ui/gfx"
)

// Game runs a Handler inside an ebiten window.
type Game struct {
	handler *Handler
	input   gfx.InputCollector
	canvas  *gfx.Canvas
	width   int
	height  int
}

var _ ebiten.Game = (*Game)(nil)

// NewGame wraps h for a window of the given logical size.
func NewGame(h *Handler, width, height int) *Game {
	return &Game{handler: h, width: width, height: height}
}

// Update drains the input events, then advances playback.
func (g *Game) Update() error {
	if ebiten.IsWindowBeingClosed() {
		return ebiten.Termination
	}
	for _, e := range g.input.Collect() {
		if err := g.handler.HandleEvent(e); err != nil {
			return err
		}
		if g.handler.Done() {
			return ebiten.Termination
		}
	}
	return g.handler.Tick()
}

// Draw renders the dirty widgets. The screen is not cleared between frames,
// so everything else stays as it was.
func (g *Game) Draw(screen *ebiten.Image) {
	if g.canvas == nil {
		g.canvas = gfx.NewCanvas(screen)
	} else {
		g.canvas.Target(screen)
	}
	g.handler.Render(g.canvas)
}

// Layout keeps the logical screen at the configured size.
func (g *Game) Layout(_, _ int) (int, int) {
	return g.width, g.height
}

// Run opens the window and blocks until it is closed, the user quits or
// playback fails for good.
func Run(h *Handler, cfg *config.Config) error {
	ebiten.SetWindowSize(cfg.Window.Width, cfg.Window.Height)
	ebiten.SetWindowTitle(cfg.Window.Title)
	ebiten.SetTPS(cfg.FrameRate)
	ebiten.SetScreenClearedEveryFrame(false)
	ebiten.SetWindowClosingHandled(true)

	return ebiten.RunGame(NewGame(h, cfg.Window.Width, cfg.Window.Height))
}
