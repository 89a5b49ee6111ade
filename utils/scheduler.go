package utils

import (
	"log"
	"time"
	"tms/database"
	"tms/models"

	"github.com/robfig/cron/v3"
)

// logScheduler logs scheduler events with timestamp
func logScheduler(message string) {
	log.Printf("[SCHEDULER %s] %s", time.Now().Format(time.RFC3339), message)
}

// purgeExpiredOTPs marks expired, unused OTP rows as deleted.
func purgeExpiredOTPs() {
	db := database.Database.Db

	res := db.Model(&models.OTP{}).
		Where("expires_at < ? AND is_used = false AND is_deleted = false", time.Now()).
		Update("is_deleted", true)
	if res.Error != nil {
		logScheduler("Error purging expired OTPs: " + res.Error.Error())
		return
	}
	if res.RowsAffected > 0 {
		logScheduler("Purged expired OTPs")
	}
}

// remindPendingApprovals mails every admin a summary of trainees and
// progress reviews still waiting on a decision.
func remindPendingApprovals() {
	db := database.Database.Db

	var pendingTrainees int64
	db.Model(&models.Trainee{}).
		Where("status = ? AND is_deleted = false", models.TraineeStatusPending).
		Count(&pendingTrainees)

	var pendingReviews int64
	db.Model(&models.ProgressReview{}).
		Where("status = ? AND is_deleted = false", models.ReviewStatusInReview).
		Count(&pendingReviews)

	if pendingTrainees == 0 && pendingReviews == 0 {
		return
	}

	var admins []models.User
	if err := db.Where("role = ? AND is_deleted = false", models.RoleAdmin).Find(&admins).Error; err != nil {
		logScheduler("Error fetching admins for reminder: " + err.Error())
		return
	}

	for _, admin := range admins {
		SendPendingApprovalsReminderEmail(admin.Email, admin.Name, pendingTrainees, pendingReviews)
	}
	logScheduler("Pending approvals reminder sent")
}

// InitializeSchedulers starts the background cron jobs.
func InitializeSchedulers() *cron.Cron {
	c := cron.New()

	// Hourly OTP cleanup
	if _, err := c.AddFunc("@hourly", purgeExpiredOTPs); err != nil {
		logScheduler("Failed to schedule OTP cleanup: " + err.Error())
	}

	// Daily 9AM reminder for pending approvals
	if _, err := c.AddFunc("0 9 * * *", remindPendingApprovals); err != nil {
		logScheduler("Failed to schedule pending approvals reminder: " + err.Error())
	}

	c.Start()
	logScheduler("Background schedulers started")
	return c
}
