package scheduler

import (
	"context"
	"fmt"
	"sync"
	"time"

	"sitesearch/core/logger"

	"github.com/robfig/cron/v3"
)

// CronTask is a named job run on a cron schedule
type CronTask struct {
	Name        string
	Description string
	CronExpr    string
	Handler     func(ctx context.Context) error
	Enabled     bool
	// Timeout bounds one run; zero means one minute
	Timeout time.Duration
}

// CronScheduler runs registered tasks. A task never overlaps with its own
// previous run.
type CronScheduler struct {
	cron   *cron.Cron
	logger logger.Logger

	mu    sync.Mutex
	tasks map[string]cron.EntryID
}

// NewCronScheduler creates a scheduler using standard five-field expressions
func NewCronScheduler(log logger.Logger) *CronScheduler {
	return &CronScheduler{
		cron: cron.New(cron.WithChain(
			cron.Recover(cron.DefaultLogger),
			cron.SkipIfStillRunning(cron.DefaultLogger),
		)),
		logger: log,
		tasks:  make(map[string]cron.EntryID),
	}
}

// RegisterTask schedules a task. Disabled tasks are accepted and ignored.
func (s *CronScheduler) RegisterTask(task *CronTask) error {
	if !task.Enabled {
		s.logger.Info("Cron task disabled", logger.String("task", task.Name))
		return nil
	}
	if task.Handler == nil {
		return fmt.Errorf("cron task %s has no handler", task.Name)
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	if _, exists := s.tasks[task.Name]; exists {
		return fmt.Errorf("cron task %s already registered", task.Name)
	}

	id, err := s.cron.AddFunc(task.CronExpr, func() { s.run(task) })
	if err != nil {
		return fmt.Errorf("invalid cron expression %q for %s: %w", task.CronExpr, task.Name, err)
	}
	s.tasks[task.Name] = id
	return nil
}

func (s *CronScheduler) run(task *CronTask) {
	timeout := task.Timeout
	if timeout <= 0 {
		timeout = time.Minute
	}
	ctx, cancel := context.WithTimeout(context.Background(), timeout)
	defer cancel()

	start := time.Now()
	if err := task.Handler(ctx); err != nil {
		s.logger.Error("Cron task failed",
			logger.String("task", task.Name),
			logger.Err(err))
		return
	}
	s.logger.Debug("Cron task finished",
		logger.String("task", task.Name),
		logger.Duration("duration", time.Since(start)))
}

// Tasks returns the names of the scheduled tasks
func (s *CronScheduler) Tasks() []string {
	s.mu.Lock()
	defer s.mu.Unlock()
	names := make([]string, 0, len(s.tasks))
	for name := range s.tasks {
		names = append(names, name)
	}
	return names
}

// Start begins running scheduled tasks in the background
func (s *CronScheduler) Start() {
	s.cron.Start()
}

// Stop halts scheduling and waits for running tasks to finish
func (s *CronScheduler) Stop() {
	<-s.cron.Stop().Done()
}
