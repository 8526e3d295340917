package utils

import (
	"fmt"
	"log"
	"strings"
	"time"

	"edugate/config"
	"edugate/repository"

	"github.com/robfig/cron/v3"
)

// StartDigestScheduler schedules the daily activity digest email
func StartDigestScheduler(activities *repository.ActivityRepository) *cron.Cron {
	c := cron.New()

	_, err := c.AddFunc("@daily", func() {
		SendActivityDigest(activities)
	})
	if err != nil {
		log.Printf("Failed to schedule activity digest: %v", err)
		return c
	}

	c.Start()
	log.Println("Activity digest scheduler started")
	return c
}

// SendActivityDigest emails a summary of the last 24 hours of audit
// activity to the configured recipient. No-op when email is not configured
// or there was no activity.
func SendActivityDigest(activities *repository.ActivityRepository) {
	if config.AppConfig.DigestRecipient == "" || config.AppConfig.EmailSender == "" {
		return
	}

	since := time.Now().Add(-24 * time.Hour)
	counts, err := activities.CountByTypeSince(since)
	if err != nil {
		log.Printf("Failed to build activity digest: %v", err)
		return
	}
	if len(counts) == 0 {
		return
	}

	var rows strings.Builder
	for activityType, count := range counts {
		rows.WriteString(fmt.Sprintf(
			`<tr><td style="padding: 8px 16px;">%s</td><td style="padding: 8px 16px; text-align: right;">%d</td></tr>`,
			activityType, count,
		))
	}

	body := fmt.Sprintf(`
		<html>
			<body style="font-family: Arial, sans-serif; background-color: #f4f4f4; padding: 20px;">
				<div style="max-width: 500px; margin: auto; background-color: #ffffff; border-radius: 8px; padding: 30px;">
					<h2 style="color: #333333; text-align: center;">Daily Activity Digest</h2>
					<p style="font-size: 14px; color: #555555;">Activity recorded in the last 24 hours:</p>
					<table style="width: 100%%; border-collapse: collapse;">%s</table>
				</div>
			</body>
		</html>
	`, rows.String())

	if err := SendDigestEmail(config.AppConfig.DigestRecipient, "EduGate Daily Activity Digest", body); err != nil {
		log.Printf("Failed to send activity digest: %v", err)
		return
	}

	log.Println("Activity digest sent to", config.AppConfig.DigestRecipient)
}
