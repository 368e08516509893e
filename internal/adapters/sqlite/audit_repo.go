// Package sqlite contains SQLite implementations of repository interfaces.
package sqlite

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/bluezephyr/patients/internal/ports/secondary"
)

// AuditRepository implements secondary.AuditRepository with SQLite.
type AuditRepository struct {
	db *sql.DB
}

// NewAuditRepository creates a new SQLite audit repository.
func NewAuditRepository(db *sql.DB) *AuditRepository {
	return &AuditRepository{db: db}
}

// SaveRun persists one completed run and all its assignments in a single
// transaction.
func (r *AuditRepository) SaveRun(ctx context.Context, run *secondary.RunRecord) error {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin audit transaction: %w", err)
	}
	defer tx.Rollback()

	res, err := tx.ExecContext(ctx,
		"INSERT INTO runs (started_at, seed, seeded, patients, doctors) VALUES (?, ?, ?, ?, ?)",
		run.StartedAt, run.Seed, run.Seeded, run.Patients, run.Doctors,
	)
	if err != nil {
		return fmt.Errorf("failed to insert run: %w", err)
	}
	runID, err := res.LastInsertId()
	if err != nil {
		return fmt.Errorf("failed to resolve run id: %w", err)
	}

	stmt, err := tx.PrepareContext(ctx,
		"INSERT INTO assignments (run_id, patient_id, round, doctor) VALUES (?, ?, ?, ?)")
	if err != nil {
		return fmt.Errorf("failed to prepare assignment insert: %w", err)
	}
	defer stmt.Close()

	for _, a := range run.Assignments {
		if _, err := stmt.ExecContext(ctx, runID, a.PatientID, a.Round, a.Doctor); err != nil {
			return fmt.Errorf("failed to insert assignment for patient %s: %w", a.PatientID, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit audit transaction: %w", err)
	}
	return nil
}

// Ensure AuditRepository implements the interface.
var _ secondary.AuditRepository = (*AuditRepository)(nil)
