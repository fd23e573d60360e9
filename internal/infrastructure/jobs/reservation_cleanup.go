package jobs

import (
	"context"
	"log"
	"time"

	"edu-connect.backend/internal/domain/repositories"
)

// ReservationCleanupJob evicts unverified registration reservations whose
// one-time code expired. A reservation is not a real account, so removing it
// keeps the email/phone keys free for new registration attempts.
type ReservationCleanupJob struct {
	repo     repositories.UserRepository
	interval time.Duration
	stop     chan struct{}
}

func NewReservationCleanupJob(repo repositories.UserRepository) *ReservationCleanupJob {
	return &ReservationCleanupJob{
		repo:     repo,
		interval: 10 * time.Minute,
		stop:     make(chan struct{}),
	}
}

func (j *ReservationCleanupJob) Start(ctx context.Context) {
	log.Println("🕐 Starting reservation cleanup job...")

	ticker := time.NewTicker(j.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			log.Println("⏹️ Reservation cleanup job stopped (context cancelled)")
			return
		case <-j.stop:
			log.Println("⏹️ Reservation cleanup job stopped")
			return
		case <-ticker.C:
			j.processExpiredReservations(ctx)
		}
	}
}

func (j *ReservationCleanupJob) Stop() {
	close(j.stop)
}

func (j *ReservationCleanupJob) processExpiredReservations(ctx context.Context) {
	removed, err := j.repo.DeleteExpiredReservations(ctx, time.Now())
	if err != nil {
		log.Printf("❌ Error removing expired reservations: %v", err)
		return
	}
	if removed > 0 {
		log.Printf("✅ Removed %d expired reservations", removed)
	}
}
