package main

import (
	"github.com/gdamore/tcell/v2"

	"github.com/tinygo-org/cellterm/sim"
	"github.com/tinygo-org/cellterm/terminal"
)

// runInteractive shows the panel in the terminal with tcell and feeds key
// presses to term. Ctrl-C quits.
func runInteractive(term *terminal.Terminal, panel *sim.Panel, in *queue, scale int) error {
	screen, err := tcell.NewScreen()
	if err != nil {
		return err
	}
	if err := screen.Init(); err != nil {
		return err
	}
	defer screen.Fini()

	if err := drain(term); err != nil {
		return err
	}
	render(screen, panel, scale)
	for {
		switch ev := screen.PollEvent().(type) {
		case *tcell.EventKey:
			if ev.Key() == tcell.KeyCtrlC {
				return nil
			}
			in.push(keyBytes(ev)...)
		case *tcell.EventResize:
			screen.Sync()
		case nil:
			return nil
		}
		if err := drain(term); err != nil {
			return err
		}
		render(screen, panel, scale)
	}
}

// drain steps term until the input queue runs dry.
func drain(term *terminal.Terminal) error {
	for {
		err := term.Step()
		if err == errNoInput {
			return nil
		}
		if err != nil {
			return err
		}
	}
}

// render draws the panel with one half block per two sampled pixel rows,
// sampling every scale-th pixel.
func render(screen tcell.Screen, panel *sim.Panel, scale int) {
	if scale < 1 {
		scale = 1
	}
	w, h := panel.Size()
	sw, sh := screen.Size()
	screen.Clear()
	for cy := 0; cy < sh && 2*cy*scale < h; cy++ {
		for cx := 0; cx < sw && cx*scale < w; cx++ {
			x := cx * scale
			top := panel.Pixel(x, 2*cy*scale)
			bottom := panel.Pixel(x, (2*cy+1)*scale)
			style := tcell.StyleDefault.
				Foreground(tcell.NewRGBColor(int32(top.R), int32(top.G), int32(top.B))).
				Background(tcell.NewRGBColor(int32(bottom.R), int32(bottom.G), int32(bottom.B)))
			screen.SetContent(cx, cy, '▀', nil, style)
		}
	}
	screen.Show()
}
