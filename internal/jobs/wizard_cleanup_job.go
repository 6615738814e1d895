package jobs

import (
	"context"
	"time"

	"enquiry/internal/core/application/usecases/commands"

	"github.com/robfig/cron/v3"
	"go.uber.org/zap"
)

// PurgeExpiredWizardsHandler deletes the wizards created before the command cutoff.
type PurgeExpiredWizardsHandler interface {
	Handle(ctx context.Context, cmd commands.PurgeExpiredWizardsCommand) (int64, error)
}

// WizardCleanupJob deletes wizard records older than the configured TTL,
// applied or not.
type WizardCleanupJob struct {
	handler  PurgeExpiredWizardsHandler
	schedule string
	ttl      time.Duration
	now      func() time.Time
	cron     *cron.Cron
	logger   *zap.Logger
}

// NewWizardCleanupJob creates the job. schedule is a cron expression with a
// seconds field, e.g. "0 */10 * * * *".
func NewWizardCleanupJob(
	handler PurgeExpiredWizardsHandler,
	schedule string,
	ttl time.Duration,
	logger *zap.Logger,
) *WizardCleanupJob {
	logger = logger.With(zap.String("component", "wizard_cleanup_job"))
	cronLog := cronLogger{logger.Sugar()}
	return &WizardCleanupJob{
		handler:  handler,
		schedule: schedule,
		ttl:      ttl,
		now:      time.Now,
		cron: cron.New(
			cron.WithSeconds(),
			cron.WithLogger(cronLog),
			cron.WithChain(cron.Recover(cronLog), cron.SkipIfStillRunning(cronLog)),
		),
		logger: logger,
	}
}

// Start schedules the purge and starts the scheduler.
func (j *WizardCleanupJob) Start() error {
	_, err := j.cron.AddFunc(j.schedule, func() {
		j.Run(context.Background())
	})
	if err != nil {
		return err
	}

	j.cron.Start()
	j.logger.Info("Wizard cleanup job started",
		zap.String("schedule", j.schedule), zap.Duration("ttl", j.ttl))
	return nil
}

// Run purges once.
func (j *WizardCleanupJob) Run(ctx context.Context) {
	cmd, err := commands.NewPurgeExpiredWizardsCommand(j.now(), j.ttl)
	if err != nil {
		j.logger.Error("Wizard cleanup job misconfigured", zap.Error(err))
		return
	}

	deleted, err := j.handler.Handle(ctx, cmd)
	if err != nil {
		j.logger.Error("Wizard cleanup job failed", zap.Error(err))
		return
	}
	if deleted > 0 {
		j.logger.Info("Expired wizards deleted",
			zap.Int64("count", deleted), zap.Time("cutoff", cmd.Cutoff()))
	}
}

// Stop stops the scheduler and waits for a running purge.
func (j *WizardCleanupJob) Stop() {
	<-j.cron.Stop().Done()
	j.logger.Info("Wizard cleanup job stopped")
}

// cronLogger routes the scheduler logs to zap.
type cronLogger struct {
	s *zap.SugaredLogger
}

func (l cronLogger) Info(msg string, keysAndValues ...interface{}) {
	l.s.Debugw(msg, keysAndValues...)
}

func (l cronLogger) Error(err error, msg string, keysAndValues ...interface{}) {
	l.s.Errorw(msg, append(keysAndValues, "error", err)...)
}
