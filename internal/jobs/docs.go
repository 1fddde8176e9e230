// Package jobs provides scheduled background tasks for the fulfillment engine.
//
// This package implements cron-based jobs using github.com/robfig/cron/v3
// to handle periodic operations required for delivery orchestration.
//
// # Available Jobs
//
// 1. DeliveryProgressionJob - Runs at a configurable interval to advance
// active delivery units through the shipment lifecycle once their per-status
// dwell time has elapsed.
//
// # Usage
//
// Jobs are managed through JobManager which provides a unified interface:
//
//	// Create job manager with required handlers
//	jobManager := jobs.NewJobManager(progressHandler, interval, logger)
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
// The progression job uses cron's "@every" descriptor with the interval taken
// from configuration. Ticks that fire while a pass is still running are
// skipped, not queued.
//
// # Error Handling
//
// - A failed pass is logged and retried on the next tick
// - Per-unit failures inside a pass never abort the pass
// - A failed job start stops any already running jobs
package jobs
