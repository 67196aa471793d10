// Package jobs provides scheduled background tasks for the travel order
// service.
//
// This package implements cron-based jobs using github.com/robfig/cron/v3.
// The only job today is NotificationReplayJob, which periodically drains
// notifications parked in the local fallback cache back into the durable
// store after an outage.
//
// Jobs are managed through JobManager, which provides a unified interface:
//
//	jobManager := jobs.NewJobManager(notificationUoWFactory, cache, schedule, logger)
//
//	if err := jobManager.StartAll(); err != nil {
//		log.Fatal("Failed to start jobs:", err)
//	}
//
//	defer jobManager.StopAll()
//
// Replay failures are logged and the affected entries stay cached for the
// next run; the job never loses a notification it could not persist.
package jobs
