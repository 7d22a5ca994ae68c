package supervise

import (
	"os"
	"os/exec"
)

// processUnit runs the rendering pipeline by re-executing this binary
// with a render subcommand, so the blocking chart display lives behind
// a process boundary.
type processUnit struct {
	args []string
	cmd  *exec.Cmd
	done chan struct{}
}

// NewProcessUnit returns a factory for units running `argv[0] args...`.
func NewProcessUnit(args []string) func() Unit {
	return func() Unit {
		return &processUnit{args: args, done: make(chan struct{})}
	}
}

func (p *processUnit) Start() error {
	p.cmd = exec.Command(os.Args[0], p.args...)
	p.cmd.Stdout = os.Stdout
	p.cmd.Stderr = os.Stderr
	if err := p.cmd.Start(); err != nil {
		return err
	}
	go func() {
		_ = p.cmd.Wait()
		close(p.done)
	}()
	return nil
}

func (p *processUnit) Kill() {
	if p.cmd != nil && p.cmd.Process != nil {
		_ = p.cmd.Process.Kill()
	}
}

func (p *processUnit) Done() <-chan struct{} { return p.done }
