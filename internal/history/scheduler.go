package history

import (
	"context"
	"time"

	"github.com/go-co-op/gocron/v2"
	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
)

// Scheduler runs the system-wide retention sweep on a fixed cadence.
// It owns nothing else: ingest is driven by the API, not by cron.
type Scheduler struct {
	history  *Service
	cronExpr string
	// -----
	sched gocron.Scheduler
}

func (s *Scheduler) Start(ctx context.Context) error {
	scheduler, err := gocron.NewScheduler()
	if err != nil {
		return err
	}
	s.sched = scheduler

	job := func(jobCtx context.Context) {
		execID := uuid.NewString()
		if sweepErr := s.history.SweepAll(jobCtx, time.Now()); sweepErr != nil {
			logrus.Errorf("Retention sweep job %s failed: %v", execID, sweepErr)
		}
	}

	_, err = scheduler.NewJob(
		gocron.CronJob(s.cronExpr, false),
		gocron.NewTask(job),
		gocron.WithSingletonMode(gocron.LimitModeReschedule),
	)

	if err != nil {
		return err
	}

	scheduler.Start()

	// Stop scheduler when the provided context is canceled.
	go func() {
		<-ctx.Done()
		if sdErr := s.Shutdown(); sdErr != nil {
			logrus.Errorf("Scheduler shutdown error: %v", sdErr)
		}
	}()
	return nil
}

func (s *Scheduler) Shutdown() error {
	if s.sched == nil {
		return nil
	}
	err := s.sched.Shutdown()
	s.sched = nil
	return err
}

func NewScheduler(history *Service, cronExpr string) *Scheduler {
	return &Scheduler{history: history, cronExpr: cronExpr}
}
