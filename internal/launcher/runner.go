package launcher

import (
	"fmt"
	"os"
	"os/exec"

	"github.com/charmbracelet/log"
)

// Runner executes the command of a selected entry.
type Runner interface {
	Run(command []string) error
}

// ExecRunner runs commands as child processes attached to the current
// terminal, blocking until they exit.
type ExecRunner struct {
	logger *log.Logger
}

// NewExecRunner creates a runner logging launches through the given logger.
func NewExecRunner(logger *log.Logger) *ExecRunner {
	return &ExecRunner{logger: logger}
}

// Run executes the command and waits for it to finish.
func (r *ExecRunner) Run(command []string) error {
	if len(command) == 0 {
		return fmt.Errorf("launcher: empty command")
	}
	r.logger.Info("launching", "command", command)
	cmd := exec.Command(command[0], command[1:]...)
	cmd.Stdin = os.Stdin
	cmd.Stdout = os.Stdout
	cmd.Stderr = os.Stderr
	if err := cmd.Run(); err != nil {
		return fmt.Errorf("launcher: run %q: %w", command[0], err)
	}
	return nil
}

// NullRunner records commands instead of executing them.
type NullRunner struct {
	commands [][]string
}

// NewNullRunner creates an empty recording runner.
func NewNullRunner() *NullRunner {
	return &NullRunner{}
}

// Run records the command and succeeds.
func (r *NullRunner) Run(command []string) error {
	r.commands = append(r.commands, command)
	return nil
}

// Commands returns every command run so far, in order.
func (r *NullRunner) Commands() [][]string {
	return r.commands
}
