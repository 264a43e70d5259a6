package service

import (
	"fmt"
	"log/slog"

	"github.com/robfig/cron/v3"
)

// RefreshJob reloads the page templates on a cron schedule so content
// edits on disk go live without a restart.
type RefreshJob struct {
	renderer *Renderer
	cron     *cron.Cron
}

func NewRefreshJob(renderer *Renderer) *RefreshJob {
	return &RefreshJob{renderer: renderer, cron: cron.New()}
}

// Start registers the reload task under the given cron schedule and
// starts the scheduler.
func (j *RefreshJob) Start(schedule string) error {
	_, err := j.cron.AddFunc(schedule, func() {
		if err := j.renderer.Refresh(); err != nil {
			slog.Error("template refresh failed, previous set stays live", "error", err)
			return
		}
		slog.Info("page templates reloaded")
	})
	if err != nil {
		return fmt.Errorf("scheduling template refresh: %w", err)
	}
	j.cron.Start()
	return nil
}

// Stop halts the scheduler. A refresh already running finishes on its own.
func (j *RefreshJob) Stop() {
	j.cron.Stop()
}
