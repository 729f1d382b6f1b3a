// Package executil runs shell command lines such as the presentation opener.
package executil

import (
	"context"
	"fmt"
	"os/exec"
	"runtime"
	"strings"

	"github.com/charmbracelet/x/ansi"
)

// maxStderrLen bounds how much stderr ends up in an error message.
const maxStderrLen = 500

// Executor runs shell commands.
type Executor interface {
	// RunSh executes a shell command line in dir (empty means inherit cwd).
	RunSh(ctx context.Context, dir, cmd string) error
}

// RealExecutor runs commands through the platform shell.
type RealExecutor struct{}

// RunSh executes cmd through the platform shell.
func (e *RealExecutor) RunSh(ctx context.Context, dir, cmd string) error {
	return RunSh(ctx, dir, cmd)
}

// shell returns the interpreter and its command flag for goos.
func shell(goos string) (string, string) {
	if goos == "windows" {
		return "cmd", "/c"
	}
	return "sh", "-c"
}

// RunSh executes cmd in dir. On failure the tail of stderr, stripped of
// escape sequences, becomes the error message; the *exec.ExitError stays
// reachable through errors.As.
func RunSh(ctx context.Context, dir, cmd string) error {
	name, flag := shell(runtime.GOOS)
	c := exec.CommandContext(ctx, name, flag, cmd)
	c.Dir = dir

	stderr := &tailBuffer{max: maxStderrLen}
	c.Stderr = stderr

	if err := c.Run(); err != nil {
		if msg := strings.TrimSpace(ansi.Strip(string(stderr.buf))); msg != "" {
			return fmt.Errorf("%s: %w", msg, err)
		}
		return err
	}
	return nil
}

// tailBuffer keeps the last max bytes written to it.
type tailBuffer struct {
	buf []byte
	max int
}

func (t *tailBuffer) Write(p []byte) (int, error) {
	t.buf = append(t.buf, p...)
	if over := len(t.buf) - t.max; over > 0 {
		t.buf = append(t.buf[:0], t.buf[over:]...)
	}
	return len(p), nil
}
