package models

// Doctor holds one roster entry together with the patient IDs assigned to it
// in each round. First and Second are populated exactly once each, by the
// round-1 and round-2 allocators, and keep assignment order.
type Doctor struct {
	Name   string
	First  []string
	Second []string
}

// Roster is the ordered doctor collection. Roster order decides which
// doctors receive the larger groups and is part of the reproducibility
// contract for seeded runs.
type Roster struct {
	Doctors []*Doctor
}

// NewRoster builds a roster from doctor names in file order. Duplicate names
// are kept so the input validator can report them.
func NewRoster(names []string) *Roster {
	doctors := make([]*Doctor, len(names))
	for i, name := range names {
		doctors[i] = &Doctor{Name: name}
	}
	return &Roster{Doctors: doctors}
}

// Names returns the doctor names in roster order.
func (r *Roster) Names() []string {
	names := make([]string, len(r.Doctors))
	for i, d := range r.Doctors {
		names[i] = d.Name
	}
	return names
}

// Len returns the number of doctors.
func (r *Roster) Len() int {
	return len(r.Doctors)
}
