package main

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strings"

	"golang.org/x/term"

	"github.com/tinygo-org/cellterm/font"
	"github.com/tinygo-org/cellterm/lcd"
	"github.com/tinygo-org/cellterm/sim"
)

const (
	ctrlC = 0x03
	ctrlD = 0x04
)

// stopReader ends input at Ctrl-C or Ctrl-D, which raw mode no longer turns
// into signals.
type stopReader struct {
	r io.ByteReader
}

func (s stopReader) ReadByte() (byte, error) {
	b, err := s.r.ReadByte()
	if err != nil {
		return 0, err
	}
	if b == ctrlC || b == ctrlD {
		return 0, io.EOF
	}
	return b, nil
}

// headlessInput returns a byte reader on stdin. If stdin is a terminal it is
// put in raw mode so every key reaches the terminal unmodified; the returned
// function restores it.
func headlessInput(stdin *os.File) (io.ByteReader, func(), error) {
	fd := int(stdin.Fd())
	r := bufio.NewReader(stdin)
	if !term.IsTerminal(fd) {
		return r, func() {}, nil
	}
	old, err := term.MakeRaw(fd)
	if err != nil {
		return nil, nil, err
	}
	return stopReader{r: r}, func() { _ = term.Restore(fd, old) }, nil
}

// printGrid writes the decoded character grid framed by a border.
func printGrid(w io.Writer, panel *sim.Panel) {
	border := "+" + strings.Repeat("-", lcd.Columns) + "+"
	fmt.Fprintln(w, border)
	for _, line := range panel.Text(font.Default, lcd.Rows, lcd.Columns) {
		fmt.Fprintln(w, "|"+line+"|")
	}
	fmt.Fprintln(w, border)
}
