package tasks

import (
	"context"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
)

// Task is a background job that runs until its context is cancelled
type Task interface {
	Name() string
	Run(ctx context.Context) error
}

// Manager handles the execution of background tasks
type Manager struct {
	logger *zap.Logger
	tasks  []Task
}

// NewManager creates a new task manager
func NewManager(logger *zap.Logger) *Manager {
	return &Manager{
		logger: logger,
		tasks:  make([]Task, 0),
	}
}

// RegisterTask registers a task with the manager
func (m *Manager) RegisterTask(task Task) {
	m.tasks = append(m.tasks, task)
}

// Run starts every registered task and blocks until all have returned.
// The first task error cancels the others.
func (m *Manager) Run(ctx context.Context) error {
	g, ctx := errgroup.WithContext(ctx)
	for _, task := range m.tasks {
		task := task
		g.Go(func() error {
			m.logger.Info("task started", zap.String("task", task.Name()))
			err := task.Run(ctx)
			m.logger.Info("task stopped", zap.String("task", task.Name()), zap.Error(err))
			return err
		})
	}
	return g.Wait()
}
