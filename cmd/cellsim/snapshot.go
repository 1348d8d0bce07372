package main

import (
	"image/png"
	"io"
	"os"

	"github.com/tinygo-org/cellterm/sim"
)

// encodePNG writes the panel as the viewer sees it, 320x240 with the glyph
// rows running left to right.
func encodePNG(w io.Writer, panel *sim.Panel) error {
	return png.Encode(w, panel.Image())
}

// savePNG writes a snapshot of panel to path.
func savePNG(path string, panel *sim.Panel) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	if err := encodePNG(f, panel); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}
