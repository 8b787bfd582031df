package CronJobs

import (
	"fmt"
	"log"
	"time"

	"Workshop/Database"

	"github.com/robfig/cron/v3"
)

// AppointmentReminder represents a scheduled appointment reminder service
type AppointmentReminder struct {
	cronScheduler  *cron.Cron
	store          *Database.Store
	runImmediately bool
	jobID          cron.EntryID
}

// NewAppointmentReminder creates a new appointment reminder with the given configuration
func NewAppointmentReminder(store *Database.Store, runImmediately bool) *AppointmentReminder {
	return &AppointmentReminder{
		cronScheduler:  cron.New(cron.WithSeconds()),
		store:          store,
		runImmediately: runImmediately,
	}
}

// Start initiates the appointment reminder cron job
func (r *AppointmentReminder) Start() error {
	// Add the scheduled task
	var err error
	r.jobID, err = r.cronScheduler.AddFunc("0 0 8 * * *", func() {
		log.Println("Running scheduled daily appointment reminder")
		r.runReminderCheck()
	})

	if err != nil {
		return fmt.Errorf("error scheduling cron job: %w", err)
	}

	// Start the scheduler
	r.cronScheduler.Start()
	fmt.Println("Appointment reminder scheduler started - will run daily at 8:00 AM")

	// Run immediately if requested
	if r.runImmediately {
		fmt.Println("Running initial appointment check")
		r.runReminderCheck()
	}

	return nil
}

// Stop terminates the appointment reminder
func (r *AppointmentReminder) Stop() {
	if r.cronScheduler != nil {
		r.cronScheduler.Stop()
		log.Println("Appointment reminder scheduler stopped")
	}
}

// UpdateSchedule changes the schedule of the reminder
// Format: "0 0 8 * * *" = At 08:00:00 AM every day
func (r *AppointmentReminder) UpdateSchedule(schedule string) error {
	// Remove existing job
	r.cronScheduler.Remove(r.jobID)

	// Add with new schedule
	var err error
	r.jobID, err = r.cronScheduler.AddFunc(schedule, func() {
		log.Println("Running scheduled appointment reminder")
		r.runReminderCheck()
	})

	if err != nil {
		return fmt.Errorf("error updating schedule: %w", err)
	}

	log.Printf("Appointment reminder schedule updated to: %s\n", schedule)
	return nil
}

// RunManualCheck executes a manual reminder check
func (r *AppointmentReminder) RunManualCheck() {
	log.Println("Running manual appointment check")
	r.runReminderCheck()
}

// runReminderCheck logs all appointments scheduled for today
func (r *AppointmentReminder) runReminderCheck() {
	today := time.Now().Format("2006-01-02")

	appointments, err := r.store.GetAppointmentsByDate(today)
	if err != nil {
		log.Printf("Error loading appointments for %s: %v\n", today, err)
		return
	}

	if len(appointments) == 0 {
		log.Printf("No appointments scheduled for %s\n", today)
		return
	}

	log.Printf("%d appointment(s) scheduled for %s:\n", len(appointments), today)
	for _, appt := range appointments {
		log.Printf("  %s - %s: %s\n", appt.Date, appt.Name, appt.Description)
	}
}
