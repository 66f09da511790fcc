package personnel

import (
	"fmt"
	"strings"

	"github.com/andrescamacho/starlane-logistics/internal/domain/acquisition"
	"github.com/andrescamacho/starlane-logistics/internal/domain/shared"
)

// Person is a crew member as far as logistics is concerned: skills, counters and edge.
type Person struct {
	id              string
	fullName        string
	skills          map[string]acquisition.Skill
	acquisitions    int
	xp              int
	edge            int
	acquisitionEdge bool
	successfulTasks int
}

var _ acquisition.Person = (*Person)(nil)

// NewPerson creates a crew member. Skills are looked up case-insensitively.
func NewPerson(id, fullName string, skills ...acquisition.Skill) (*Person, error) {
	if id == "" {
		return nil, shared.NewValidationError("id", "cannot be empty")
	}
	if fullName == "" {
		return nil, shared.NewValidationError("full_name", "cannot be empty")
	}
	p := &Person{id: id, fullName: fullName, skills: make(map[string]acquisition.Skill)}
	for _, s := range skills {
		p.skills[strings.ToLower(s.Name)] = s
	}
	return p, nil
}

// WithEdge gives the person an edge pool, optionally usable on acquisitions
func (p *Person) WithEdge(points int, acquisitionEdge bool) *Person {
	p.edge = points
	p.acquisitionEdge = acquisitionEdge
	return p
}

func (p *Person) ID() string       { return p.id }
func (p *Person) FullName() string { return p.fullName }
func (p *Person) XP() int          { return p.xp }

// Skill looks up a discipline
func (p *Person) Skill(discipline string) (acquisition.Skill, bool) {
	s, ok := p.skills[strings.ToLower(discipline)]
	return s, ok
}

// Skills returns every skill held
func (p *Person) Skills() []acquisition.Skill {
	result := make([]acquisition.Skill, 0, len(p.skills))
	for _, s := range p.skills {
		result = append(result, s)
	}
	return result
}

func (p *Person) Acquisitions() int { return p.acquisitions }

func (p *Person) IncrementAcquisitions() {
	p.acquisitions++
}

// ResetAcquisitions starts a new period
func (p *Person) ResetAcquisitions() {
	p.acquisitions = 0
}

// AwardXP adds experience. Non-positive amounts are ignored.
func (p *Person) AwardXP(amount int) {
	if amount > 0 {
		p.xp += amount
	}
}

func (p *Person) CurrentEdge() int         { return p.edge }
func (p *Person) HasAcquisitionEdge() bool { return p.acquisitionEdge }

// SpendEdge uses one edge point, reporting false when none remain
func (p *Person) SpendEdge() bool {
	if p.edge <= 0 {
		return false
	}
	p.edge--
	return true
}

func (p *Person) SuccessfulTasks() int  { return p.successfulTasks }
func (p *Person) RecordSuccessfulTask() { p.successfulTasks++ }
func (p *Person) ResetSuccessfulTasks() { p.successfulTasks = 0 }

func (p *Person) String() string {
	return fmt.Sprintf("Person(%s, %s)", p.id, p.fullName)
}
