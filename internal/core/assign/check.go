package assign

import (
	"fmt"
	"strings"

	"github.com/bluezephyr/patients/internal/models"
)

// Report collects the problems found by an input check. An empty report
// means the input is fit for assignment.
type Report struct {
	Problems []string
}

// OK reports whether the input passed all checks.
func (r Report) OK() bool {
	return len(r.Problems) == 0
}

// Error converts the report to an error if any problem was found. The caller
// is expected to abort the pipeline on a non-nil result.
func (r Report) Error() error {
	if r.OK() {
		return nil
	}
	return fmt.Errorf("input check failed:\n  %s", strings.Join(r.Problems, "\n  "))
}

// CheckInput verifies the structural integrity of the loaded collections
// before any assignment runs. It performs no mutation.
// Rules:
// - every patient ID occurs exactly once (duplicates reported with the
//   1-based line of each occurrence)
// - every doctor name occurs exactly once
// - at least one doctor is present
func CheckInput(cohort *models.Cohort, roster *models.Roster) Report {
	var rep Report

	// Collect occurrence lines per ID, preserving first-seen order.
	lines := make(map[string][]int, cohort.Len())
	var duplicates []string
	for _, p := range cohort.Patients {
		lines[p.ID] = append(lines[p.ID], p.Line)
		if len(lines[p.ID]) == 2 {
			duplicates = append(duplicates, p.ID)
		}
	}
	for _, id := range duplicates {
		occ := make([]string, len(lines[id]))
		for i, line := range lines[id] {
			occ[i] = fmt.Sprintf("%d", line)
		}
		rep.Problems = append(rep.Problems,
			fmt.Sprintf("patient %s found more than once (rows: %s)", id, strings.Join(occ, ", ")))
	}

	seen := make(map[string]bool, roster.Len())
	for _, d := range roster.Doctors {
		if seen[d.Name] {
			rep.Problems = append(rep.Problems,
				fmt.Sprintf("duplicate doctor %q - check input file", d.Name))
			continue
		}
		seen[d.Name] = true
	}

	if roster.Len() == 0 {
		rep.Problems = append(rep.Problems, "no doctors found in roster file")
	}

	return rep
}
