// Package primary defines the primary ports (driving interfaces) for the
// application.
package primary

import (
	"context"
	"time"
)

// AssignmentService defines the primary port for running the two-round
// patient distribution pipeline.
type AssignmentService interface {
	// Distribute loads the inputs, validates them, runs both assignment
	// rounds, verifies the result and writes the augmented record set.
	Distribute(ctx context.Context, req DistributeRequest) (*DistributeResponse, error)
}

// DistributeRequest contains parameters for a distribution run.
type DistributeRequest struct {
	Seed   int64
	Seeded bool // false means seed from fresh entropy
}

// DistributeResponse contains the diagnostics of a successful run.
type DistributeResponse struct {
	DoctorNames    []string
	Patients       int
	UniquePatients int
	Counts         []DoctorRoundCounts
	TotalFirst     int
	TotalSecond    int
	Elapsed        time.Duration
}

// DoctorRoundCounts is one doctor's per-round patient counts at the port
// boundary.
type DoctorRoundCounts struct {
	Name   string
	First  int
	Second int
}
