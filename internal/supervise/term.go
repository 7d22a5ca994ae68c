package supervise

import (
	"os"

	"golang.org/x/term"
)

// rawTerminal puts stdin into raw mode for the single-key command loop.
// A non-tty input (pipes, tests) is a no-op.
type rawTerminal struct {
	in *os.File
}

func NewRawTerminal(in *os.File) Terminal {
	return rawTerminal{in: in}
}

func (t rawTerminal) Enter() (func(), error) {
	fd := int(t.in.Fd())
	if !term.IsTerminal(fd) {
		return func() {}, nil
	}
	old, err := term.MakeRaw(fd)
	if err != nil {
		return nil, err
	}
	return func() { _ = term.Restore(fd, old) }, nil
}
