package personnel

import (
	"sort"

	"github.com/andrescamacho/starlane-logistics/internal/domain/acquisition"
)

// Roster is the set of personnel eligible for logistics work
type Roster struct {
	people []*Person
}

// NewRoster creates a roster in the given order
func NewRoster(people ...*Person) *Roster {
	return &Roster{people: append([]*Person(nil), people...)}
}

// People returns every member
func (r *Roster) People() []*Person {
	return append([]*Person(nil), r.people...)
}

// Find looks a member up by id
func (r *Roster) Find(id string) (*Person, bool) {
	for _, p := range r.people {
		if p.ID() == id {
			return p, true
		}
	}
	return nil, false
}

// ResetAcquisitions clears every member's per-period attempt counter
func (r *Roster) ResetAcquisitions() {
	for _, p := range r.people {
		p.ResetAcquisitions()
	}
}

// Acquirers returns members holding discipline, best experience level first and then
// by id, as acquisition.Person values ready for the scheduler.
func (r *Roster) Acquirers(discipline string) []acquisition.Person {
	var eligible []*Person
	for _, p := range r.people {
		if _, ok := p.Skill(discipline); ok {
			eligible = append(eligible, p)
		}
	}
	sort.SliceStable(eligible, func(i, j int) bool {
		a, _ := eligible[i].Skill(discipline)
		b, _ := eligible[j].Skill(discipline)
		if a.Level != b.Level {
			return a.Level > b.Level
		}
		return eligible[i].ID() < eligible[j].ID()
	})

	result := make([]acquisition.Person, len(eligible))
	for i, p := range eligible {
		result[i] = p
	}
	return result
}
