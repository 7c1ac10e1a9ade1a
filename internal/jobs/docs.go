// Package jobs provides scheduled background tasks for the marketplace.
//
// This package implements cron-based jobs using github.com/robfig/cron/v3
// to handle periodic operations required by the service.
//
// # Available Jobs
//
// 1. OrderBacklogJob - Runs every minute and logs how many orders are in
// each active status. It is a read-only visibility job: a growing
// ready-for-pickup count means orders are waiting with no courier.
//
// # Usage
//
// Jobs are managed through JobManager which provides a unified interface:
//
//	jobManager := jobs.NewJobManager(db, logger)
//
//	if err := jobManager.StartAll(); err != nil {
//		log.Fatal("Failed to start jobs:", err)
//	}
//
//	defer jobManager.StopAll()
//
// # Error Handling
//
// A failed backlog sweep is logged and skipped; the next tick tries again.
// Failed job starts report the error to the caller.
package jobs
