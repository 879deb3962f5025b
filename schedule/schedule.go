// Package schedule runs a job periodically on a cron expression.
package schedule

import (
	"context"
	"fmt"
	"time"

	"github.com/lineup-cli/lineup/log"
	"github.com/robfig/cron/v3"
)

// Job is a unit of periodic work. Its error is logged and does not stop the schedule.
type Job func(ctx context.Context) error

// cronLogger forwards cron's own diagnostics to the application log.
type cronLogger struct{}

func (cronLogger) Info(msg string, keysAndValues ...any) {
	log.Debugf("cron: %s %v", msg, keysAndValues)
}

func (cronLogger) Error(err error, msg string, keysAndValues ...any) {
	log.Errorf("cron: %s %v: %v", msg, keysAndValues, err)
}

// Validate reports whether spec is a valid five-field cron expression.
func Validate(spec string) error {
	if _, err := cron.ParseStandard(spec); err != nil {
		return fmt.Errorf("invalid cron expression %q: %w", spec, err)
	}
	return nil
}

// Run invokes job on every activation of spec until ctx is done.
// An activation that fires while the previous run is still going is skipped.
func Run(ctx context.Context, spec string, job Job) error {
	if err := Validate(spec); err != nil {
		return err
	}

	c := cron.New(cron.WithChain(cron.SkipIfStillRunning(cronLogger{})))
	if _, err := c.AddFunc(spec, func() {
		if err := job(ctx); err != nil {
			log.Errorf("scheduled run failed: %v", err)
		}
	}); err != nil {
		return err
	}

	c.Start()
	log.Infof("schedule started with %q", spec)

	<-ctx.Done()
	<-c.Stop().Done()
	log.Info("schedule stopped")

	return nil
}

// Next returns the activation times of spec after the given time, at most n of them.
func Next(spec string, after time.Time, n int) ([]time.Time, error) {
	schedule, err := cron.ParseStandard(spec)
	if err != nil {
		return nil, fmt.Errorf("invalid cron expression %q: %w", spec, err)
	}

	times := make([]time.Time, 0, n)
	for len(times) < n {
		after = schedule.Next(after)
		times = append(times, after)
	}
	return times, nil
}
