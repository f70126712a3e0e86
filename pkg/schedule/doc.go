// Package schedule describes recurring visits and projects them onto
// calendar days.
//
// This package includes:
//   - Schedule interface for describing when a visit recurs
//   - Every() for fixed-interval visits
//   - Daily() for a visit at the same time each day
//   - Weekly() for a visit on a fixed weekday and time
//   - Cron() for cron expression-based recurrence
//   - RecurringVisit, which materializes placeholder jobs for a day so
//     recurring work shows up in snapshots and layouts alongside
//     one-off jobs
package schedule
