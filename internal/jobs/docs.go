// Package jobs provides the scheduled mode of the service.
//
// By default the process performs exactly one order processing pass and exits.
// When a schedule is configured, OrderProcessingJob repeats that single pass on a
// github.com/robfig/cron/v3 schedule (seconds field enabled):
//
//	jobManager := jobs.NewJobManager(handler, "0 */5 * * * *", 30*time.Second, logger)
//	if err := jobManager.StartAll(); err != nil {
//		return err
//	}
//	defer jobManager.StopAll()
//
// # Error Handling
//
//   - A failed pass is logged; the next tick starts a fresh pass over a fresh batch
//   - Overlapping ticks are skipped rather than queued
//   - An invalid schedule fails StartAll
package jobs
