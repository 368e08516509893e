// Package wire assembles the adapters and services of the application.
package wire

import (
	"fmt"

	"github.com/bluezephyr/patients/internal/adapters/csvfile"
	"github.com/bluezephyr/patients/internal/adapters/roster"
	"github.com/bluezephyr/patients/internal/adapters/sqlite"
	"github.com/bluezephyr/patients/internal/app"
	"github.com/bluezephyr/patients/internal/db"
	"github.com/bluezephyr/patients/internal/ports/primary"
	"github.com/bluezephyr/patients/internal/ports/secondary"
)

// AssignmentService wires the file adapters (and, when auditPath is
// non-empty, the sqlite audit export) into an AssignmentService. The
// returned cleanup must be called once the service is no longer needed.
func AssignmentService(patientsPath, doctorsPath, outputPath, auditPath string) (primary.AssignmentService, func() error, error) {
	cleanup := func() error { return nil }

	var audit secondary.AuditRepository
	if auditPath != "" {
		conn, err := db.Open(auditPath)
		if err != nil {
			return nil, nil, fmt.Errorf("failed to open audit database: %w", err)
		}
		audit = sqlite.NewAuditRepository(conn)
		cleanup = conn.Close
	}

	svc := app.NewAssignmentService(
		csvfile.NewPatientReader(patientsPath),
		roster.NewReader(doctorsPath),
		csvfile.NewPatientWriter(outputPath),
		audit,
	)
	return svc, cleanup, nil
}
