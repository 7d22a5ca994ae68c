// Package supervise owns the lifecycle of an isolated rendering unit
// and multiplexes a single-key console command loop against the unit's
// liveness. The unit runs in its own process so a blocking chart call
// can never starve keyboard input; restart is destructive cancellation.
package supervise

import (
	"fmt"
	"io"
	"os"
	"os/signal"
	"sync"
	"syscall"
	"time"
)

// State of the supervisor.
type State int

const (
	Idle State = iota
	Rendering
	Terminating
	Stopped
)

// Control keys. In raw mode Ctrl-C arrives as ETX on stdin rather than
// as a signal.
const (
	keyQuit    = 'q'
	keyRestart = 'r'
	keyETX     = 0x03
	keyEOT     = 0x04
)

const teardownTimeout = 3 * time.Second

// Unit is one isolated rendering execution. Kill is forcible: the unit
// gets no graceful-shutdown opportunity. Done is closed when the unit
// has exited, for whatever reason.
type Unit interface {
	Start() error
	Kill()
	Done() <-chan struct{}
}

// Terminal is the scoped raw-input resource. Enter returns the restore
// function; restore must run on every exit path.
type Terminal interface {
	Enter() (restore func(), err error)
}

// Supervisor runs the interactive control loop over at most one live
// rendering unit at a time.
type Supervisor struct {
	input   io.Reader
	out     io.Writer
	term    Terminal
	newUnit func() Unit

	mu    sync.Mutex
	state State
}

func New(input io.Reader, out io.Writer, term Terminal, newUnit func() Unit) *Supervisor {
	return &Supervisor{
		input:   input,
		out:     out,
		term:    term,
		newUnit: newUnit,
		state:   Idle,
	}
}

// State is the supervisor's observable lifecycle state.
func (s *Supervisor) State() State {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.state
}

func (s *Supervisor) setState(state State) {
	s.mu.Lock()
	s.state = state
	s.mu.Unlock()
}

// Run starts the first unit and blocks in the command loop until quit,
// interrupt, or the unit exiting on its own. The terminal's prior input
// mode is restored before Run returns.
func (s *Supervisor) Run() error {
	restore, err := s.term.Enter()
	if err != nil {
		return fmt.Errorf("supervise: enter raw mode: %w", err)
	}
	defer restore()

	sig := make(chan os.Signal, 1)
	signal.Notify(sig, os.Interrupt, syscall.SIGTERM)
	defer signal.Stop(sig)

	keys := readKeys(s.input)

	unit, err := s.start()
	if err != nil {
		s.setState(Stopped)
		return err
	}
	fmt.Fprintf(s.out, "r: reload  q: quit\r\n")

	for {
		select {
		case b, ok := <-keys:
			if !ok {
				// control input closed
				s.shutdown(unit)
				return nil
			}
			switch b {
			case keyRestart:
				unit, err = s.restart(unit)
				if err != nil {
					s.setState(Stopped)
					return err
				}
			case keyQuit, keyETX, keyEOT:
				s.shutdown(unit)
				return nil
			}
		case <-unit.Done():
			// unit exited on its own
			s.setState(Stopped)
			return nil
		case <-sig:
			s.shutdown(unit)
			return nil
		}
	}
}

// readKeys feeds single bytes from the control input; the channel is
// closed on read error or EOF.
func readKeys(in io.Reader) <-chan byte {
	keys := make(chan byte)
	go func() {
		defer close(keys)
		buf := make([]byte, 1)
		for {
			n, err := in.Read(buf)
			if n > 0 {
				keys <- buf[0]
			}
			if err != nil {
				return
			}
		}
	}()
	return keys
}

func (s *Supervisor) start() (Unit, error) {
	u := s.newUnit()
	if err := u.Start(); err != nil {
		return nil, err
	}
	s.setState(Rendering)
	return u, nil
}

// restart forcibly terminates the active unit and starts a fresh one
// with the same arguments, so resolution re-runs against current file
// contents.
func (s *Supervisor) restart(unit Unit) (Unit, error) {
	s.terminate(unit)
	s.setState(Idle)
	fmt.Fprintf(s.out, "reloading\r\n")
	return s.start()
}

func (s *Supervisor) shutdown(unit Unit) {
	s.terminate(unit)
	s.setState(Stopped)
}

func (s *Supervisor) terminate(unit Unit) {
	s.setState(Terminating)
	unit.Kill()
	select {
	case <-unit.Done():
	case <-time.After(teardownTimeout):
	}
}
