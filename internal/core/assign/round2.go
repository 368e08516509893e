package assign

import (
	"fmt"
	"math/rand"

	"github.com/bluezephyr/patients/internal/models"
)

// DistributeSecond re-partitions the same patient set across the doctors so
// that no patient lands on its round-1 doctor. The roster is swept in order,
// each doctor with remaining room drawing one randomly chosen eligible
// patient per sweep, which keeps group sizes within one of each other. When
// a doctor that still has room finds no eligible patient, an already placed
// patient is pulled over through a chain of reassignments (an augmenting
// path over the current placement); the round fails only when a full sweep
// places nothing while patients remain, i.e. the allocation is infeasible.
func DistributeSecond(rng *rand.Rand, cohort *models.Cohort, roster *models.Roster) error {
	doctors := roster.Doctors
	if len(doctors) == 0 {
		return ErrNoDoctors
	}

	ids := cohort.IDs()
	first := make([]map[string]bool, len(doctors))
	for i, d := range doctors {
		first[i] = make(map[string]bool, len(d.First))
		for _, id := range d.First {
			first[i][id] = true
		}
	}

	s := &secondRound{
		rng:      rng,
		doctors:  doctors,
		first:    first,
		base:     len(ids) / len(doctors),
		extra:    len(ids) % len(doctors),
		unplaced: ids,
		placedAt: make(map[string]int, len(ids)),
	}

	for len(s.unplaced) > 0 {
		progressed := false
		for i := range doctors {
			if len(s.unplaced) == 0 {
				break
			}
			if !s.hasRoom(i) {
				continue
			}
			if id, ok := s.draw(i); ok {
				s.place(i, id)
				progressed = true
				continue
			}
			if s.augment(i) {
				progressed = true
			}
		}
		if !progressed {
			return fmt.Errorf("%w: %d patient(s) cannot be placed without repeating their round-1 doctor",
				ErrInfeasible, len(s.unplaced))
		}
	}

	// Names are appended only once placement is final, in the order the
	// patients were first placed, so a reassignment chain cannot leave a
	// stale name on a row.
	for _, id := range s.order {
		p, err := cohort.Get(id)
		if err != nil {
			return fmt.Errorf("failed to record round-2 doctor: %w", err)
		}
		p.Row = append(p.Row, doctors[s.placedAt[id]].Name)
	}

	return nil
}

// secondRound carries the mutable state of one DistributeSecond run.
type secondRound struct {
	rng      *rand.Rand
	doctors  []*models.Doctor
	first    []map[string]bool
	base     int
	extra    int
	unplaced []string       // load order, shrinks as patients are placed
	placedAt map[string]int // patient ID -> doctor index
	order    []string       // patient IDs in first-placement order
}

// hasRoom reports whether doctor i may take another patient: below the base
// group size, or at it while larger groups are still available.
func (s *secondRound) hasRoom(i int) bool {
	size := len(s.doctors[i].Second)
	if size < s.base {
		return true
	}
	return size == s.base && s.extrasUsed() < s.extra
}

func (s *secondRound) extrasUsed() int {
	used := 0
	for _, d := range s.doctors {
		if len(d.Second) > s.base {
			used++
		}
	}
	return used
}

// draw picks a uniformly random unplaced patient eligible for doctor i.
func (s *secondRound) draw(i int) (string, bool) {
	var eligible []string
	for _, id := range s.unplaced {
		if !s.first[i][id] {
			eligible = append(eligible, id)
		}
	}
	if len(eligible) == 0 {
		return "", false
	}
	s.rng.Shuffle(len(eligible), func(a, b int) {
		eligible[a], eligible[b] = eligible[b], eligible[a]
	})
	return eligible[0], true
}

// place assigns an unplaced patient to doctor i.
func (s *secondRound) place(i int, id string) {
	s.doctors[i].Second = append(s.doctors[i].Second, id)
	s.placedAt[id] = i
	s.order = append(s.order, id)
	for k, v := range s.unplaced {
		if v == id {
			s.unplaced = append(s.unplaced[:k], s.unplaced[k+1:]...)
			break
		}
	}
}

// link records that doctor taker pulls patient id from the doctor the link
// is stored under.
type link struct {
	taker int
	id    string
}

// augment searches for a chain of reassignments that frees up an eligible
// patient for doctor i: i pulls a placed patient from some doctor, which
// pulls from another, until a doctor is reached that can draw an unplaced
// patient directly. A breadth-first search over the doctors; only doctor i
// gains a patient, every other doctor on the chain keeps its count.
func (s *secondRound) augment(i int) bool {
	parent := make(map[int]link)
	visited := map[int]bool{i: true}
	queue := []int{i}
	for len(queue) > 0 {
		w := queue[0]
		queue = queue[1:]
		for e := range s.doctors {
			if visited[e] {
				continue
			}
			x, ok := s.donation(e, w)
			if !ok {
				continue
			}
			visited[e] = true
			parent[e] = link{taker: w, id: x}
			if u, ok := s.draw(e); ok {
				s.apply(e, u, parent)
				return true
			}
			queue = append(queue, e)
		}
	}
	return false
}

// donation picks a uniformly random patient placed at doctor e that is
// eligible for doctor w.
func (s *secondRound) donation(e, w int) (string, bool) {
	var candidates []string
	for _, id := range s.doctors[e].Second {
		if !s.first[w][id] {
			candidates = append(candidates, id)
		}
	}
	if len(candidates) == 0 {
		return "", false
	}
	s.rng.Shuffle(len(candidates), func(a, b int) {
		candidates[a], candidates[b] = candidates[b], candidates[a]
	})
	return candidates[0], true
}

// apply walks the chain from the drawing doctor e back to the starving
// doctor, moving one patient across each link, then places the drawn
// patient at e.
func (s *secondRound) apply(e int, u string, parent map[int]link) {
	for cur := e; ; {
		ln, ok := parent[cur]
		if !ok {
			break
		}
		s.move(ln.id, cur, ln.taker)
		cur = ln.taker
	}
	s.place(e, u)
}

// move reassigns an already placed patient from one doctor to another. The
// placement order slot of the patient is kept.
func (s *secondRound) move(id string, from, to int) {
	sec := s.doctors[from].Second
	for k, v := range sec {
		if v == id {
			s.doctors[from].Second = append(sec[:k], sec[k+1:]...)
			break
		}
	}
	s.doctors[to].Second = append(s.doctors[to].Second, id)
	s.placedAt[id] = to
}
