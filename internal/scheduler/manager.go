package scheduler

import (
	"fmt"
	"log/slog"

	"github.com/go-co-op/gocron/v2"
)

// Job is a periodic task registered with the Manager.
type Job interface {
	Name() string
	Definition() gocron.JobDefinition
	Execute()
}

// Manager owns the gocron scheduler running the background jobs.
type Manager struct {
	scheduler gocron.Scheduler
	logger    *slog.Logger
}

// NewManager creates a stopped manager. Options are passed to gocron.
func NewManager(logger *slog.Logger, opts ...gocron.SchedulerOption) (*Manager, error) {
	s, err := gocron.NewScheduler(opts...)
	if err != nil {
		return nil, fmt.Errorf("create scheduler: %w", err)
	}
	return &Manager{scheduler: s, logger: logger}, nil
}

// Register adds job in singleton mode: a run that is still going when the
// next one is due makes the scheduler skip to the following slot.
func (m *Manager) Register(job Job) error {
	_, err := m.scheduler.NewJob(
		job.Definition(),
		gocron.NewTask(job.Execute),
		gocron.WithName(job.Name()),
		gocron.WithSingletonMode(gocron.LimitModeReschedule),
	)
	if err != nil {
		return fmt.Errorf("register job %s: %w", job.Name(), err)
	}
	m.logger.Info("job registered", slog.String("job", job.Name()))
	return nil
}

// Start starts running the registered jobs in the background.
func (m *Manager) Start() {
	m.scheduler.Start()
	m.logger.Info("scheduler started")
}

// Stop waits for running jobs and shuts the scheduler down.
func (m *Manager) Stop() {
	if err := m.scheduler.Shutdown(); err != nil {
		m.logger.Error("scheduler shutdown error", slog.Any("error", err))
		return
	}
	m.logger.Info("scheduler stopped")
}
