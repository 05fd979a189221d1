// Package scheduler runs background maintenance jobs for the reservation
// system, currently the booking reminder sweep.
package scheduler

import (
	"errors"
	"strings"
	"sync"
	"time"

	"github.com/go-co-op/gocron/v2"
	"github.com/google/uuid"
	"github.com/rs/zerolog/log"
)

var (
	runner     gocron.Scheduler
	runnerOnce sync.Once
	runnerErr  error
	stopOnce   sync.Once
	stopErr    error
)

var (
	ErrNotInitialized = errors.New("scheduler not initialized")
	ErrEmptyJobName   = errors.New("job name is required")
	ErrEmptyCronExpr  = errors.New("cron expression is required")
)

// Init creates the process-wide job runner. Reminder windows are computed
// in UTC, so the runner ticks in UTC as well.
func Init() error {
	runnerOnce.Do(func() {
		sched, err := gocron.NewScheduler(
			gocron.WithLocation(time.UTC),
			gocron.WithGlobalJobOptions(
				gocron.WithEventListeners(
					gocron.AfterJobRunsWithPanic(func(jobID uuid.UUID, jobName string, recoverData any) {
						log.Error().
							Str("job_id", jobID.String()).
							Str("job_name", jobName).
							Interface("panic", recoverData).
							Msg("Background job panicked")
					}),
				),
			),
		)
		if err != nil {
			runnerErr = err
			return
		}
		runner = sched
		log.Info().Msg("Job runner initialized")
	})
	return runnerErr
}

// AddJob registers a cron job with the runner. Init must have succeeded.
func AddJob(name, cronExpr string, task func()) (gocron.Job, error) {
	if runner == nil {
		return nil, ErrNotInitialized
	}
	if strings.TrimSpace(name) == "" {
		return nil, ErrEmptyJobName
	}
	if strings.TrimSpace(cronExpr) == "" {
		return nil, ErrEmptyCronExpr
	}

	jobLogger := log.With().Str("job_name", name).Str("cron", cronExpr).Logger()

	job, err := runner.NewJob(
		gocron.CronJob(cronExpr, false),
		gocron.NewTask(func() {
			jobLogger.Debug().Msg("Job run started")
			task()
			jobLogger.Debug().Msg("Job run completed")
		}),
		gocron.WithName(name),
	)
	if err != nil {
		jobLogger.Error().Err(err).Msg("Failed to register job")
		return nil, err
	}
	jobLogger.Info().Msg("Job registered")
	return job, nil
}

// Start begins running registered jobs.
func Start() error {
	if runner == nil {
		return ErrNotInitialized
	}
	log.Info().Msg("Job runner starting")
	runner.Start()
	return nil
}

// Stop shuts the runner down. Safe to call more than once; later calls
// return the first shutdown's result.
func Stop() error {
	if runner == nil {
		return ErrNotInitialized
	}
	stopOnce.Do(func() {
		log.Info().Msg("Job runner stopping")
		stopErr = runner.Shutdown()
	})
	return stopErr
}
