// Package csvfile contains the CSV file adapters for reading patient
// records and writing the augmented record set.
package csvfile

import (
	"context"
	"encoding/csv"
	"fmt"
	"os"

	"github.com/bluezephyr/patients/internal/models"
)

// idColumn is the 0-based index of the patient identifier column.
const idColumn = 2

// Output column names appended to the header row.
const (
	headerFirst  = "DOCTOR 1"
	headerSecond = "DOCTOR 2"
)

// PatientReader implements secondary.PatientSource over a CSV file whose
// first row is the header and whose third column is the patient ID.
type PatientReader struct {
	path string
}

// NewPatientReader creates a reader for the given patient file.
func NewPatientReader(path string) *PatientReader {
	return &PatientReader{path: path}
}

// Load reads every data row, keeping file order and duplicate IDs. Each
// patient remembers its 1-based source line so the input validator can
// point at duplicates.
func (r *PatientReader) Load(ctx context.Context) (*models.Cohort, error) {
	f, err := os.Open(r.path)
	if err != nil {
		return nil, fmt.Errorf("failed to open patient file: %w", err)
	}
	defer f.Close()

	rows, err := csv.NewReader(f).ReadAll()
	if err != nil {
		return nil, fmt.Errorf("failed to parse patient file %s: %w", r.path, err)
	}
	if len(rows) == 0 {
		return nil, fmt.Errorf("patient file %s has no header row", r.path)
	}

	header := rows[0]
	patients := make([]*models.Patient, 0, len(rows)-1)
	for i, row := range rows[1:] {
		line := i + 2 // data rows start below the header
		if len(row) <= idColumn {
			return nil, fmt.Errorf("patient file %s row %d has %d columns, need at least %d", r.path, line, len(row), idColumn+1)
		}
		patients = append(patients, &models.Patient{
			ID:   row[idColumn],
			Row:  row,
			Line: line,
		})
	}

	return models.NewCohort(header, patients), nil
}

// PatientWriter implements secondary.PatientSink, writing the input schema
// back out with the two doctor columns appended.
type PatientWriter struct {
	path string
}

// NewPatientWriter creates a writer targeting the given output file. An
// existing file is overwritten.
func NewPatientWriter(path string) *PatientWriter {
	return &PatientWriter{path: path}
}

// Write emits the header plus every patient row in load order.
func (w *PatientWriter) Write(ctx context.Context, cohort *models.Cohort) error {
	f, err := os.Create(w.path)
	if err != nil {
		return fmt.Errorf("failed to create output file: %w", err)
	}
	defer f.Close()

	out := csv.NewWriter(f)
	header := append(append([]string(nil), cohort.Header...), headerFirst, headerSecond)
	if err := out.Write(header); err != nil {
		return fmt.Errorf("failed to write header: %w", err)
	}
	for _, p := range cohort.Patients {
		if err := out.Write(p.Row); err != nil {
			return fmt.Errorf("failed to write row for patient %s: %w", p.ID, err)
		}
	}
	out.Flush()
	if err := out.Error(); err != nil {
		return fmt.Errorf("failed to flush output file: %w", err)
	}
	return f.Close()
}
