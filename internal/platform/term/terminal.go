// Package term provides the raw-terminal collaborators of the frame loop:
// non-blocking key input, frame output, and terminal size, on golang.org/x/term.
package term

import (
	"errors"
	"fmt"
	"os"

	"golang.org/x/term"
)

// ErrNotTerminal is returned when stdin or stdout is not a terminal.
var ErrNotTerminal = errors.New("term: not a terminal")

// Terminal owns a terminal in raw mode for the length of a run.
type Terminal struct {
	*KeyReader
	*Display

	in    *os.File
	out   *os.File
	state *term.State
}

// Open switches in to raw mode (no echo, no line buffering) and hides the
// cursor. Close must be called to give the terminal back.
func Open(in, out *os.File) (*Terminal, error) {
	if !term.IsTerminal(int(in.Fd())) || !term.IsTerminal(int(out.Fd())) {
		return nil, ErrNotTerminal
	}

	state, err := term.MakeRaw(int(in.Fd()))
	if err != nil {
		return nil, fmt.Errorf("term: cannot enter raw mode: %w", err)
	}

	t := &Terminal{
		KeyReader: NewKeyReader(in),
		Display:   NewDisplay(out),
		in:        in,
		out:       out,
		state:     state,
	}
	if err := t.write(hideCursor); err != nil {
		t.Close()
		return nil, fmt.Errorf("term: cannot write to terminal: %w", err)
	}
	return t, nil
}

// Size returns the terminal size as rows and columns.
func (t *Terminal) Size() (rows, cols int, err error) {
	return Window{t.out}.Size()
}

// Window reads the size of a terminal without taking it over. It is used
// when another program (Bubble Tea) owns the input.
type Window struct {
	Out *os.File
}

// Size returns the terminal size as rows and columns.
func (w Window) Size() (rows, cols int, err error) {
	if !term.IsTerminal(int(w.Out.Fd())) {
		return 0, 0, ErrNotTerminal
	}
	cols, rows, err = term.GetSize(int(w.Out.Fd()))
	if err != nil {
		return 0, 0, fmt.Errorf("term: cannot get size: %w", err)
	}
	return rows, cols, nil
}

// Close clears the screen, shows the cursor and restores the original mode.
func (t *Terminal) Close() error {
	//nolint:errcheck // Best-effort cleanup, restoring the mode matters more
	t.write(clearScreen + showCursor)
	if err := term.Restore(int(t.in.Fd()), t.state); err != nil {
		return fmt.Errorf("term: cannot restore terminal: %w", err)
	}
	return nil
}
