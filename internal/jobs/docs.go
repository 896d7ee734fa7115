// Package jobs provides scheduled background tasks for the commerce system.
//
// Jobs are cron-based, using github.com/robfig/cron/v3.
//
// # Available Jobs
//
// 1. DeliveryDelayJob - Flags deliveries whose scheduled date has passed
// as Delayed, on a configurable cron schedule
//
// # Usage
//
// Jobs are managed through JobManager which provides a unified interface:
//
//	jobManager := jobs.NewJobManager(flagDelayedHandler, "* * * * *", logger)
//
//	if err := jobManager.StartAll(); err != nil {
//		log.Fatal("Failed to start jobs:", err)
//	}
//
//	defer jobManager.StopAll()
package jobs
