package fixture

import (
	"log/slog"
	"sync"
)

type teardownStep struct {
	name string
	fn   func() error
}

// teardown is a stack of cleanup steps. Steps run in reverse order of
// registration; a failing step is logged and the remaining steps still run.
type teardown struct {
	logger *slog.Logger

	mu    sync.Mutex
	steps []teardownStep
}

func newTeardown(logger *slog.Logger) *teardown {
	return &teardown{logger: logger}
}

func (td *teardown) push(name string, fn func() error) {
	td.mu.Lock()
	defer td.mu.Unlock()
	td.steps = append(td.steps, teardownStep{name: name, fn: fn})
}

// run executes and removes all registered steps.
func (td *teardown) run() {
	td.mu.Lock()
	steps := td.steps
	td.steps = nil
	td.mu.Unlock()

	for i := len(steps) - 1; i >= 0; i-- {
		step := steps[i]
		td.logger.Debug("Releasing resource", slog.String("resource", step.name))
		if err := step.fn(); err != nil {
			td.logger.Error("Failed to release resource", slog.String("resource", step.name), slog.Any("err", err))
			continue
		}
		td.logger.Debug("Released resource", slog.String("resource", step.name))
	}
}
