package assign

import (
	"fmt"
	"math/rand"

	"github.com/bluezephyr/patients/internal/models"
)

// DistributeFirst partitions all patient IDs across the doctors as evenly as
// possible, in uniformly random order: the full ID list is shuffled once and
// then sliced into consecutive runs of size base or base+1, where
// base = N div D and the first N mod D doctors (in roster order) receive the
// larger run. Each doctor's name is appended to its patients' rows, doctors
// iterated in roster order.
func DistributeFirst(rng *rand.Rand, cohort *models.Cohort, roster *models.Roster) error {
	doctors := roster.Doctors
	if len(doctors) == 0 {
		return ErrNoDoctors
	}

	ids := cohort.IDs()
	rng.Shuffle(len(ids), func(i, j int) {
		ids[i], ids[j] = ids[j], ids[i]
	})

	base := len(ids) / len(doctors)
	extra := len(ids) % len(doctors)

	start := 0
	for i, d := range doctors {
		size := base
		if i < extra {
			size++
		}
		d.First = append([]string(nil), ids[start:start+size]...)
		start += size
	}

	for _, d := range doctors {
		for _, id := range d.First {
			p, err := cohort.Get(id)
			if err != nil {
				return fmt.Errorf("failed to record round-1 doctor: %w", err)
			}
			p.Row = append(p.Row, d.Name)
		}
	}

	return nil
}
