package assign

import "github.com/bluezephyr/patients/internal/models"

// DoctorCount is one doctor's per-round patient counts.
type DoctorCount struct {
	Name   string
	First  int
	Second int
}

// Summary holds per-doctor counts for both rounds plus their totals, in
// roster order.
type Summary struct {
	Doctors     []DoctorCount
	TotalFirst  int
	TotalSecond int
}

// Summarize derives the per-doctor count report from the roster. Pure read.
func Summarize(roster *models.Roster) Summary {
	sum := Summary{Doctors: make([]DoctorCount, 0, roster.Len())}
	for _, d := range roster.Doctors {
		sum.Doctors = append(sum.Doctors, DoctorCount{
			Name:   d.Name,
			First:  len(d.First),
			Second: len(d.Second),
		})
		sum.TotalFirst += len(d.First)
		sum.TotalSecond += len(d.Second)
	}
	return sum
}
