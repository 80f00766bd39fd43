package utils

import (
	"log"
	"time"

	"skillup/database"
	courseModels "skillup/models/course"
	courseService "skillup/services/course"

	"github.com/robfig/cron/v3"
)

// logScheduler logs scheduler events with timestamp
func logScheduler(message string) {
	log.Printf("[PROGRESS-SCHEDULER %s] %s", time.Now().Format(time.RFC3339), message)
}

// reconcileEnrollmentProgress recomputes every enrollment's cached progress
// from the ledger. Heals drift after catalog edits (lessons added to or
// removed from a course change the denominator without any student action).
func reconcileEnrollmentProgress() {
	db := database.Database.Db
	enrollments := courseService.NewEnrollmentService(db)

	var rows []courseModels.Enrollment
	if err := db.Find(&rows).Error; err != nil {
		logScheduler("Error fetching enrollments: " + err.Error())
		return
	}

	updated := 0
	for _, enrollment := range rows {
		summary, err := enrollments.RecomputeProgress(enrollment.UserID, enrollment.CourseID)
		if err != nil {
			logScheduler("Error recomputing progress: " + err.Error())
			continue
		}
		if summary.Percentage != enrollment.Progress {
			updated++
		}
	}

	logScheduler("Reconciliation pass finished")
	if updated > 0 {
		log.Printf("Progress reconciliation updated %d enrollments", updated)
	}
}

// StartProgressReconciliation schedules the nightly reconciliation run
func StartProgressReconciliation(c *cron.Cron) {
	c.AddFunc("0 2 * * *", func() {
		reconcileEnrollmentProgress()
	})
	logScheduler("Progress reconciliation scheduled - runs daily at 02:00")
}

// InitializeSchedulers initializes all background schedulers
func InitializeSchedulers() *cron.Cron {
	c := cron.New()

	StartProgressReconciliation(c)

	c.Start()

	logScheduler("All schedulers initialized successfully")
	return c
}
