package CronJobs

import (
	"fmt"
	"log"
	"time"

	"EmpTrack/Models"

	"github.com/robfig/cron/v3"
	"gorm.io/gorm"
)

// LedgerSweeper closes time log entries left active past their day.
// An employee who never pressed logout would otherwise keep an open
// entry forever.
type LedgerSweeper struct {
	cronScheduler *cron.Cron
	db            *gorm.DB
	jobID         cron.EntryID
}

// NewLedgerSweeper creates a sweeper bound to the given store handle
func NewLedgerSweeper(db *gorm.DB) *LedgerSweeper {
	return &LedgerSweeper{
		cronScheduler: cron.New(),
		db:            db,
	}
}

// Start schedules the nightly sweep shortly after midnight
func (s *LedgerSweeper) Start() error {
	var err error
	s.jobID, err = s.cronScheduler.AddFunc("5 0 * * *", func() {
		log.Println("Running scheduled time log sweep")
		s.runSweep()
	})
	if err != nil {
		return fmt.Errorf("error scheduling cron job: %w", err)
	}

	s.cronScheduler.Start()
	log.Println("Time log sweeper started - will run daily at 00:05")
	return nil
}

// Stop terminates the sweeper
func (s *LedgerSweeper) Stop() {
	if s.cronScheduler != nil {
		s.cronScheduler.Stop()
		log.Println("Time log sweeper stopped")
	}
}

// RunManualSweep executes a sweep outside the schedule
func (s *LedgerSweeper) RunManualSweep() {
	log.Println("Running manual time log sweep")
	s.runSweep()
}

func (s *LedgerSweeper) runSweep() {
	closed, err := Models.CloseStaleTimeLogs(s.db, time.Now())
	if err != nil {
		log.Printf("Error in time log sweep: %v\n", err)
		return
	}
	if closed == 0 {
		log.Println("No stale time log entries found")
	} else {
		log.Printf("Closed %d stale time log entries\n", closed)
	}
}
