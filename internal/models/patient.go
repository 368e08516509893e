package models

import "fmt"

// Patient is one data row of the patient file. Identity is the ID (third
// column of the row); Row holds the full record and is carried through to the
// output untouched except for the two doctor names appended during
// assignment.
type Patient struct {
	ID   string
	Row  []string
	Line int // 1-based line in the source file (line 1 is the header)
}

// Cohort is the ordered patient collection. Order is load order and is what
// makes seeded runs reproducible; the index is only used for lookups after
// input validation has established uniqueness.
type Cohort struct {
	Header   []string
	Patients []*Patient

	byID map[string]*Patient
}

// NewCohort builds a cohort from the header row and the data rows in file
// order. Duplicate IDs are kept in Patients so the input validator can report
// them; the lookup index points at the first occurrence.
func NewCohort(header []string, patients []*Patient) *Cohort {
	c := &Cohort{
		Header:   header,
		Patients: patients,
		byID:     make(map[string]*Patient, len(patients)),
	}
	for _, p := range patients {
		if _, ok := c.byID[p.ID]; !ok {
			c.byID[p.ID] = p
		}
	}
	return c
}

// IDs returns the patient IDs in load order.
func (c *Cohort) IDs() []string {
	ids := make([]string, len(c.Patients))
	for i, p := range c.Patients {
		ids[i] = p.ID
	}
	return ids
}

// Get returns the patient with the given ID.
func (c *Cohort) Get(id string) (*Patient, error) {
	p, ok := c.byID[id]
	if !ok {
		return nil, fmt.Errorf("unknown patient %s", id)
	}
	return p, nil
}

// Len returns the number of patient rows, duplicates included.
func (c *Cohort) Len() int {
	return len(c.Patients)
}

// Unique returns the number of distinct patient IDs.
func (c *Cohort) Unique() int {
	return len(c.byID)
}
