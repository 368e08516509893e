package assign

import (
	"fmt"

	"github.com/bluezephyr/patients/internal/models"
)

// Round identifies one of the two assignment passes.
type Round int

const (
	RoundOne Round = 1
	RoundTwo Round = 2
)

func (r Round) of(d *models.Doctor) []string {
	if r == RoundOne {
		return d.First
	}
	return d.Second
}

// Verify re-derives every invariant over the completed assignment and
// returns the first violation found, wrapped in ErrInvariant. It is the
// correctness oracle for the whole run: pure reads only, so it doubles as
// the assertion set for property tests.
func Verify(cohort *models.Cohort, roster *models.Roster) error {
	ids := cohort.IDs()
	if err := VerifyDisjoint(roster); err != nil {
		return err
	}
	if err := VerifyPartition(roster, ids, RoundOne); err != nil {
		return err
	}
	if err := VerifyPartition(roster, ids, RoundTwo); err != nil {
		return err
	}
	return VerifyRows(cohort)
}

// VerifyDisjoint checks that no doctor holds the same patient in both
// rounds.
func VerifyDisjoint(roster *models.Roster) error {
	for _, d := range roster.Doctors {
		inFirst := make(map[string]bool, len(d.First))
		for _, id := range d.First {
			inFirst[id] = true
		}
		for _, id := range d.Second {
			if inFirst[id] {
				return fmt.Errorf("%w: doctor %s holds patient %s in both rounds", ErrInvariant, d.Name, id)
			}
		}
	}
	return nil
}

// VerifyPartition checks that one round's per-doctor groups form an exact
// balanced partition of the patient ID set: every ID assigned exactly once,
// no stray IDs, and group sizes of base or base+1 with exactly N mod D of
// the larger size.
func VerifyPartition(roster *models.Roster, ids []string, round Round) error {
	known := make(map[string]bool, len(ids))
	for _, id := range ids {
		known[id] = true
	}

	assigned := make(map[string]string, len(ids))
	for _, d := range roster.Doctors {
		for _, id := range round.of(d) {
			if !known[id] {
				return fmt.Errorf("%w: round %d: doctor %s assigned unknown patient %s", ErrInvariant, round, d.Name, id)
			}
			if prev, ok := assigned[id]; ok {
				return fmt.Errorf("%w: round %d: patient %s assigned to both %s and %s", ErrInvariant, round, id, prev, d.Name)
			}
			assigned[id] = d.Name
		}
	}
	for _, id := range ids {
		if _, ok := assigned[id]; !ok {
			return fmt.Errorf("%w: round %d: patient %s was never assigned", ErrInvariant, round, id)
		}
	}

	if roster.Len() > 0 {
		base := len(ids) / roster.Len()
		extra := len(ids) % roster.Len()
		larger := 0
		for _, d := range roster.Doctors {
			switch size := len(round.of(d)); size {
			case base:
			case base + 1:
				larger++
			default:
				return fmt.Errorf("%w: round %d: doctor %s has %d patients, want %d or %d",
					ErrInvariant, round, d.Name, size, base, base+1)
			}
		}
		if larger != extra {
			return fmt.Errorf("%w: round %d: %d doctors hold the larger group, want %d", ErrInvariant, round, larger, extra)
		}
	}

	return nil
}

// VerifyRows checks that every patient row carries two appended doctor
// names and that they differ.
func VerifyRows(cohort *models.Cohort) error {
	for _, p := range cohort.Patients {
		if len(p.Row) < 2 {
			return fmt.Errorf("%w: patient %s row carries no assigned doctors", ErrInvariant, p.ID)
		}
		d1 := p.Row[len(p.Row)-2]
		d2 := p.Row[len(p.Row)-1]
		if d1 == d2 {
			return fmt.Errorf("%w: patient %s assigned to %s in both rounds", ErrInvariant, p.ID, d1)
		}
	}
	return nil
}
