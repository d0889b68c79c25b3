package utils

import (
	"log"

	"github.com/robfig/cron/v3"
)

// InitializeVerificationSweeper starts the periodic cleanup of expired
// verification-code entries so abandoned registrations do not pile up.
func InitializeVerificationSweeper() {
	log.Println("[VERIFICATION-SWEEPER] Initializing verification code sweeper...")

	c := cron.New()

	c.AddFunc("@every 10m", func() {
		if removed := Verifications.Sweep(); removed > 0 {
			log.Printf("[VERIFICATION-SWEEPER] Removed %d expired registration entries", removed)
		}
	})

	c.Start()
	log.Println("[VERIFICATION-SWEEPER] Sweeper started - runs every 10 minutes")
}
