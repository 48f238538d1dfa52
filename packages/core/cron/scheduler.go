package cron

import (
	"context"
	"fmt"

	"foosball-league/packages/core/services"

	"github.com/robfig/cron/v3"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

// DefaultAuditSchedule runs at minute 0 of every hour (seconds field first).
const DefaultAuditSchedule = "0 0 * * * *"

type Scheduler struct {
	cron         *cron.Cron
	schedule     string
	auditService *services.AuditService
	logger       zerolog.Logger
}

func NewScheduler(auditService *services.AuditService, schedule string) *Scheduler {
	if schedule == "" {
		schedule = DefaultAuditSchedule
	}

	logger := log.With().Str("component", "scheduler").Logger()
	c := cron.New(cron.WithSeconds(), cron.WithLogger(cronLogger{logger: logger}))

	return &Scheduler{
		cron:         c,
		schedule:     schedule,
		auditService: auditService,
		logger:       logger,
	}
}

// Start registers the jobs and starts the scheduler
func (s *Scheduler) Start() error {
	if _, err := s.cron.AddFunc(s.schedule, s.runAudit); err != nil {
		return fmt.Errorf("schedule audit job %q: %w", s.schedule, err)
	}

	s.cron.Start()
	s.logger.Info().Str("schedule", s.schedule).Msg("cron scheduler started")
	return nil
}

// Stop waits for running jobs to finish
func (s *Scheduler) Stop() {
	<-s.cron.Stop().Done()
	s.logger.Info().Msg("cron scheduler stopped")
}

func (s *Scheduler) runAudit() {
	ctx := s.logger.WithContext(context.Background())

	report, err := s.auditService.Audit(ctx)
	if err != nil {
		s.logger.Error().Err(err).Msg("audit job failed")
		return
	}

	if report.Consistent() {
		s.logger.Info().
			Int("players", report.PlayersChecked).
			Int("matches", report.MatchesChecked).
			Msg("audit job completed, counters consistent")
		return
	}

	s.logger.Warn().
		Int("discrepancies", len(report.Discrepancies)).
		Msg("audit job completed with discrepancies")
}

// RunNow triggers the audit job synchronously
func (s *Scheduler) RunNow() {
	s.runAudit()
}

// cronLogger adapts zerolog to cron.Logger.
type cronLogger struct {
	logger zerolog.Logger
}

func (l cronLogger) Info(msg string, keysAndValues ...interface{}) {
	l.logger.Debug().Fields(keysAndValues).Msg(msg)
}

func (l cronLogger) Error(err error, msg string, keysAndValues ...interface{}) {
	l.logger.Error().Err(err).Fields(keysAndValues).Msg(msg)
}
