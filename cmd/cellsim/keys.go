package main

import (
	"errors"
	"unicode/utf8"

	"github.com/gdamore/tcell/v2"
)

var errNoInput = errors.New("cellsim: no input queued")

// queue is the simulated serial receive buffer. ReadByte returns errNoInput
// when empty instead of blocking so the UI loop keeps running.
type queue struct {
	buf []byte
}

func (q *queue) push(b ...byte) { q.buf = append(q.buf, b...) }

func (q *queue) ReadByte() (byte, error) {
	if len(q.buf) == 0 {
		return 0, errNoInput
	}
	b := q.buf[0]
	q.buf = q.buf[1:]
	return b, nil
}

// keyBytes returns what a serial terminal sends for a key press.
func keyBytes(ev *tcell.EventKey) []byte {
	switch ev.Key() {
	case tcell.KeyRune:
		return utf8.AppendRune(nil, ev.Rune())
	case tcell.KeyEnter:
		return []byte{13}
	case tcell.KeyBackspace, tcell.KeyBackspace2, tcell.KeyDelete:
		return []byte{127}
	case tcell.KeyUp:
		return []byte{27, '[', 'A'}
	case tcell.KeyDown:
		return []byte{27, '[', 'B'}
	case tcell.KeyRight:
		return []byte{27, '[', 'C'}
	case tcell.KeyLeft:
		return []byte{27, '[', 'D'}
	}
	if k := ev.Key(); k < 0x80 {
		// Control keys carry their ASCII code.
		return []byte{byte(k)}
	}
	return nil
}
