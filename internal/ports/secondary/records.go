// Package secondary defines the secondary ports (driven adapters) for the
// application. These are the interfaces through which the application reads
// its inputs and writes its outputs.
package secondary

import (
	"context"
	"time"

	"github.com/bluezephyr/patients/internal/models"
)

// PatientSource defines the secondary port that loads the patient records.
type PatientSource interface {
	// Load reads the full patient collection, duplicates included.
	Load(ctx context.Context) (*models.Cohort, error)
}

// DoctorSource defines the secondary port that loads the doctor roster.
type DoctorSource interface {
	// Load reads the doctor roster in file order.
	Load(ctx context.Context) (*models.Roster, error)
}

// PatientSink defines the secondary port that writes the augmented record
// set once assignment has completed.
type PatientSink interface {
	// Write emits every patient row with its two appended doctor columns.
	Write(ctx context.Context, cohort *models.Cohort) error
}

// AuditRepository defines the secondary port that exports a completed run
// for offline review. The export is write-only; no run ever reads it back.
type AuditRepository interface {
	// SaveRun persists one completed assignment run.
	SaveRun(ctx context.Context, run *RunRecord) error
}

// RunRecord represents a completed assignment run as handed to the audit
// export.
type RunRecord struct {
	StartedAt   time.Time
	Seed        int64
	Seeded      bool
	Patients    int
	Doctors     int
	Assignments []AssignmentRecord
}

// AssignmentRecord is one patient-to-doctor pairing in one round.
type AssignmentRecord struct {
	PatientID string
	Round     int
	Doctor    string
}
