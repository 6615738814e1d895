// Package jobs provides scheduled background tasks for the enquiry service.
//
// Jobs are cron based (github.com/robfig/cron/v3, with a seconds field) and
// log through zap.
//
// # Available Jobs
//
// 1. WizardCleanupJob - Deletes wizard records older than WIZARD_TTL, on the
// WIZARD_CLEANUP_SCHEDULE expression (every 10 minutes by default)
//
// # Usage
//
//	jobManager := jobs.NewJobManager(purgeHandler, jobs.WizardCleanupConfig{
//		Schedule: "0 */10 * * * *",
//		TTL:      time.Hour,
//	}, logger)
//
//	if err := jobManager.StartAll(); err != nil {
//		return err
//	}
//	defer jobManager.StopAll()
//
// # Error Handling
//
// - A failed purge is logged and retried on the next tick
// - A purge still running when the next tick fires is skipped
// - An invalid schedule fails StartAll
package jobs
