package main

import (
	"errors"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/ncruces/zenity"

	"github.com/iburimskiy/stereo-galaxy/internal/config"
	"github.com/iburimskiy/stereo-galaxy/internal/game"
)

func main() {
	ebiten.SetWindowSize(config.InitialWidth, config.InitialHeight)
	ebiten.SetWindowTitle(config.WindowTitle)
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
	ebiten.SetWindowClosingHandled(true)

	g := game.NewGame(uint64(time.Now().UnixNano()))
	if err := ebiten.RunGame(g); err != nil && !errors.Is(err, ebiten.Termination) {
		// the dialog is best effort; the panic below is the real exit
		_ = zenity.Error(err.Error(), zenity.Title("Stereo Galaxy"))
		panic(err)
	}
}
