package session

import (
	"context"
	"log"

	"github.com/robfig/cron/v3"
)

// Sweeper periodically prunes stale user-set members.
type Sweeper struct {
	store *Store
	cron  *cron.Cron
}

func NewSweeper(store *Store) *Sweeper {
	return &Sweeper{store: store}
}

// Start initializes the cron task (hourly, on the hour).
func (s *Sweeper) Start() {
	c := cron.New(cron.WithSeconds())

	_, err := c.AddFunc("0 0 * * * *", func() {
		removed, err := s.store.Sweep(context.Background())
		if err != nil {
			log.Printf("Session sweep failed: %v", err)
			return
		}
		log.Printf("Session sweep completed, removed=%d", removed)
	})

	if err != nil {
		log.Printf("Failed to create session sweep cron job: %v", err)
		return
	}

	log.Println("Session sweeper started (running hourly)")
	c.Start()
	s.cron = c
}

// Stop halts the cron scheduler.
func (s *Sweeper) Stop() {
	if s.cron != nil {
		s.cron.Stop()
	}
}
