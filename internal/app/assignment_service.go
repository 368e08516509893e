package app

import (
	"context"
	cryptorand "crypto/rand"
	"encoding/binary"
	"fmt"
	"math/rand"
	"time"

	"github.com/bluezephyr/patients/internal/core/assign"
	"github.com/bluezephyr/patients/internal/models"
	"github.com/bluezephyr/patients/internal/ports/primary"
	"github.com/bluezephyr/patients/internal/ports/secondary"
)

// AssignmentServiceImpl implements the AssignmentService interface.
type AssignmentServiceImpl struct {
	patients secondary.PatientSource
	doctors  secondary.DoctorSource
	sink     secondary.PatientSink
	audit    secondary.AuditRepository // nil disables the audit export
}

// NewAssignmentService creates a new AssignmentService with injected
// dependencies. audit may be nil.
func NewAssignmentService(patients secondary.PatientSource, doctors secondary.DoctorSource, sink secondary.PatientSink, audit secondary.AuditRepository) *AssignmentServiceImpl {
	return &AssignmentServiceImpl{
		patients: patients,
		doctors:  doctors,
		sink:     sink,
		audit:    audit,
	}
}

// Distribute runs the full pipeline: load, input check, round 1, round 2,
// summary, post-assignment verification, output, optional audit export.
// Both rounds draw from one random stream seeded exactly once, so a seeded
// run is reproducible end to end.
func (s *AssignmentServiceImpl) Distribute(ctx context.Context, req primary.DistributeRequest) (*primary.DistributeResponse, error) {
	start := time.Now()

	roster, err := s.doctors.Load(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to load doctor roster: %w", err)
	}
	cohort, err := s.patients.Load(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to load patient records: %w", err)
	}

	if rep := assign.CheckInput(cohort, roster); !rep.OK() {
		return nil, rep.Error()
	}

	seed := req.Seed
	if !req.Seeded {
		seed, err = entropySeed()
		if err != nil {
			return nil, fmt.Errorf("failed to seed random source: %w", err)
		}
	}
	rng := rand.New(rand.NewSource(seed))

	if err := assign.DistributeFirst(rng, cohort, roster); err != nil {
		return nil, fmt.Errorf("round 1 failed: %w", err)
	}
	if err := assign.DistributeSecond(rng, cohort, roster); err != nil {
		return nil, fmt.Errorf("round 2 failed: %w", err)
	}

	summary := assign.Summarize(roster)

	if err := assign.Verify(cohort, roster); err != nil {
		return nil, err
	}

	if err := s.sink.Write(ctx, cohort); err != nil {
		return nil, fmt.Errorf("failed to write output: %w", err)
	}

	if s.audit != nil {
		run := buildRunRecord(start, seed, req.Seeded, cohort, roster)
		if err := s.audit.SaveRun(ctx, run); err != nil {
			return nil, fmt.Errorf("failed to export audit record: %w", err)
		}
	}

	return &primary.DistributeResponse{
		DoctorNames:    roster.Names(),
		Patients:       cohort.Len(),
		UniquePatients: cohort.Unique(),
		Counts:         summaryCounts(summary),
		TotalFirst:     summary.TotalFirst,
		TotalSecond:    summary.TotalSecond,
		Elapsed:        time.Since(start),
	}, nil
}

// entropySeed draws a fresh seed from the system entropy source.
func entropySeed() (int64, error) {
	var buf [8]byte
	if _, err := cryptorand.Read(buf[:]); err != nil {
		return 0, err
	}
	return int64(binary.LittleEndian.Uint64(buf[:])), nil
}

func summaryCounts(summary assign.Summary) []primary.DoctorRoundCounts {
	counts := make([]primary.DoctorRoundCounts, len(summary.Doctors))
	for i, d := range summary.Doctors {
		counts[i] = primary.DoctorRoundCounts{Name: d.Name, First: d.First, Second: d.Second}
	}
	return counts
}

func buildRunRecord(start time.Time, seed int64, seeded bool, cohort *models.Cohort, roster *models.Roster) *secondary.RunRecord {
	run := &secondary.RunRecord{
		StartedAt: start,
		Seed:      seed,
		Seeded:    seeded,
		Patients:  cohort.Len(),
		Doctors:   roster.Len(),
	}
	for _, d := range roster.Doctors {
		for _, id := range d.First {
			run.Assignments = append(run.Assignments, secondary.AssignmentRecord{PatientID: id, Round: 1, Doctor: d.Name})
		}
	}
	for _, d := range roster.Doctors {
		for _, id := range d.Second {
			run.Assignments = append(run.Assignments, secondary.AssignmentRecord{PatientID: id, Round: 2, Doctor: d.Name})
		}
	}
	return run
}

// Ensure AssignmentServiceImpl implements the interface.
var _ primary.AssignmentService = (*AssignmentServiceImpl)(nil)
