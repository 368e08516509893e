package assign

import (
	"fmt"

	"github.com/bluezephyr/patients/internal/models"
)

// testCohort builds a cohort of n patients P1..Pn with three-column rows,
// lines numbered as in a real file (header on line 1).
func testCohort(n int) *models.Cohort {
	patients := make([]*models.Patient, n)
	for i := 0; i < n; i++ {
		id := fmt.Sprintf("P%d", i+1)
		patients[i] = &models.Patient{
			ID:   id,
			Row:  []string{fmt.Sprintf("fname%d", i+1), fmt.Sprintf("lname%d", i+1), id},
			Line: i + 2,
		}
	}
	return models.NewCohort([]string{"FIRST NAME", "LAST NAME", "ID"}, patients)
}

// testRoster builds a roster of d doctors named Dr1..Drd.
func testRoster(d int) *models.Roster {
	names := make([]string, d)
	for i := 0; i < d; i++ {
		names[i] = fmt.Sprintf("Dr%d", i+1)
	}
	return models.NewRoster(names)
}
