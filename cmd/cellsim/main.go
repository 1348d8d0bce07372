// Command cellsim runs the terminal firmware against an emulated display
// controller.
//
// By default the emulated panel is shown in the terminal and key presses are
// sent as serial input. With -headless, stdin is read raw until EOF (Ctrl-D
// or Ctrl-C on a tty) and the final character grid is printed. -png saves
// the final panel contents as an image in either mode:
//
//	printf 'HELLO\rWORLD' | cellsim -headless -png hello.png
package main

import (
	"flag"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/tinygo-org/cellterm/lcd"
	"github.com/tinygo-org/cellterm/sim"
	"github.com/tinygo-org/cellterm/terminal"
)

func main() {
	var (
		headless = flag.Bool("headless", false, "read stdin and print the final grid instead of showing the panel")
		logPath  = flag.String("log", "", "write debug logs to `file`")
		scale    = flag.Int("scale", 2, "show every n-th panel pixel")
		pngPath  = flag.String("png", "", "save the final panel contents to `file`")
	)
	flag.Parse()

	if err := run(*headless, *logPath, *pngPath, *scale); err != nil {
		fmt.Fprintln(os.Stderr, "cellsim:", err)
		os.Exit(1)
	}
}

func run(headless bool, logPath, pngPath string, scale int) error {
	logOut := io.Discard
	if logPath != "" {
		f, err := os.Create(logPath)
		if err != nil {
			return err
		}
		defer f.Close()
		logOut = f
	}
	logger := slog.New(slog.NewTextHandler(logOut, &slog.HandlerOptions{
		Level: slog.LevelDebug,
	}))

	panel := sim.NewPanel()
	dev := lcd.New(panel, panel.DC(), panel.CS())
	if err := dev.Init(); err != nil {
		return err
	}
	if err := dev.Clear(); err != nil {
		return err
	}
	scr := lcd.NewScreen(dev, nil)

	if headless {
		in, restore, err := headlessInput(os.Stdin)
		if err != nil {
			return err
		}
		t := terminal.New(scr, in)
		t.SetLogger(logger)
		err = t.Run()
		restore()
		if err != nil {
			return err
		}
		printGrid(os.Stdout, panel)
	} else {
		in := &queue{}
		t := terminal.New(scr, in)
		t.SetLogger(logger)
		if err := runInteractive(t, panel, in, scale); err != nil {
			return err
		}
	}
	logger.Info("cellsim:done", slog.Any("stats", panel.Stats()))

	if pngPath != "" {
		return savePNG(pngPath, panel)
	}
	return nil
}
