package executil

import (
	"context"
	"sync"
)

// RecordedCommand is one RunSh call seen by a RecordingExecutor.
type RecordedCommand struct {
	Dir string
	Cmd string
}

// RecordingExecutor records command lines instead of running them. Every call
// returns Err.
type RecordingExecutor struct {
	mu       sync.Mutex
	commands []RecordedCommand

	Err error
}

// RunSh records the call.
func (e *RecordingExecutor) RunSh(_ context.Context, dir, cmd string) error {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.commands = append(e.commands, RecordedCommand{Dir: dir, Cmd: cmd})
	return e.Err
}

// Commands returns a copy of the recorded calls in order.
func (e *RecordingExecutor) Commands() []RecordedCommand {
	e.mu.Lock()
	defer e.mu.Unlock()
	return append([]RecordedCommand(nil), e.commands...)
}

// Last returns the most recent call, false when nothing ran.
func (e *RecordingExecutor) Last() (RecordedCommand, bool) {
	e.mu.Lock()
	defer e.mu.Unlock()
	if len(e.commands) == 0 {
		return RecordedCommand{}, false
	}
	return e.commands[len(e.commands)-1], true
}
