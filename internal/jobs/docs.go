// Package jobs contains the scheduled background jobs of the application.
// Jobs run on cron schedules and are coordinated by the JobManager.
package jobs
