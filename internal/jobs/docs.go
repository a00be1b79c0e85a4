// Package jobs provides scheduled background tasks for the fulfillment system.
//
// This package implements cron-based jobs using github.com/robfig/cron/v3
// to handle periodic operations required for the fulfillment service.
//
// # Available Jobs
//
// 1. LowStockAlertJob - Periodically logs inventory items at or below the configured quantity threshold
//
// # Usage
//
// Jobs are managed through JobManager which provides a unified interface:
//
//	// Create job manager with required handlers
//	jobManager := jobs.NewJobManager(lowStockHandler, threshold, schedule, logger)
//
//	// Start all jobs
//	if err := jobManager.StartAll(); err != nil {
//		log.Fatal("Failed to start jobs:", err)
//	}
//
//	// Stop all jobs when shutting down
//	defer jobManager.StopAll()
//
// # Scheduling
//
// The low-stock job takes a standard five-field cron expression from
// configuration; "*/5 * * * *" (every five minutes) is a sensible default.
//
// # Error Handling
//
// The alert job is read-only: every failure is logged and the next run
// proceeds normally. It never mutates inventory.
package jobs
