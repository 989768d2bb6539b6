// file: internals/features/accounts/auth/scheduler/otp_cleanup.go
package scheduler

import (
	"log"
	"time"

	"github.com/robfig/cron/v3"
	"gorm.io/gorm"

	authModel "moshaverino_backend/internals/features/accounts/auth/model"
)

// StartOTPCleanupScheduler purges used and expired login codes every
// hour so the table does not grow without bound.
func StartOTPCleanupScheduler(db *gorm.DB) *cron.Cron {
	c := cron.New()

	_, err := c.AddFunc("@hourly", func() {
		res := db.
			Where("login_otp_is_used = ? OR login_otp_expires_at < ?", true, time.Now()).
			Delete(&authModel.LoginOTPModel{})
		if res.Error != nil {
			log.Printf("[ERROR] otp cleanup failed: %v", res.Error)
			return
		}
		if res.RowsAffected > 0 {
			log.Printf("[INFO] otp cleanup removed %d rows", res.RowsAffected)
		}
	})
	if err != nil {
		log.Printf("[ERROR] failed to schedule otp cleanup: %v", err)
		return c
	}

	c.Start()
	log.Println("[INFO] otp cleanup scheduler started")
	return c
}
