package acquisition

import (
	"time"

	"github.com/andrescamacho/starlane-logistics/internal/domain/shared"
)

// SkillAutomatic disables personnel checks; every acquisition succeeds
const SkillAutomatic = "automatic"

// Options are the campaign rules that shape target numbers and experience awards
type Options struct {
	// AcquisitionSkill names the discipline used for rolls, or SkillAutomatic
	AcquisitionSkill string

	AllowClanPurchases bool
	AllowISPurchases   bool

	// TechLevel is the highest rules level the campaign allows
	TechLevel       TechLevel
	LimitByYear     bool
	DisallowExtinct bool

	// FactionIsClan marks the campaign faction as Clan; non-Clan buyers pay ClanPenalty
	FactionIsClan bool
	ClanPenalty   int

	RestrictPartsByContract bool

	CrisisStart   time.Time
	CrisisEnd     time.Time
	CrisisPenalty int

	UseSupportEdge bool

	SuccessXP int
	MistakeXP int
	TaskXP    int
	NTasksXP  int

	// Planetary acquisition rules
	NoClanCrossover bool
	ClanFactions    []string
	TechBonus       map[shared.Rating]int
	IndustryBonus   map[shared.Rating]int
	OutputBonus     map[shared.Rating]int
}

// DefaultOptions mirrors the stock campaign rules
func DefaultOptions() Options {
	return Options{
		AcquisitionSkill:   "Administration",
		AllowClanPurchases: true,
		AllowISPurchases:   true,
		TechLevel:          TechLevelExperimental,
		LimitByYear:        true,
		DisallowExtinct:    true,
		SuccessXP:          0,
		MistakeXP:          0,
		TaskXP:             1,
		NTasksXP:           25,
		TechBonus:          DefaultTechBonus(),
		IndustryBonus:      DefaultIndustryBonus(),
		OutputBonus:        DefaultOutputBonus(),
	}
}

// DefaultTechBonus rewards advanced worlds
func DefaultTechBonus() map[shared.Rating]int {
	return map[shared.Rating]int{
		shared.RatingA: -1, shared.RatingB: -1, shared.RatingC: 0,
		shared.RatingD: 1, shared.RatingE: 2, shared.RatingF: 8,
	}
}

// DefaultIndustryBonus rewards industrialised worlds
func DefaultIndustryBonus() map[shared.Rating]int {
	return map[shared.Rating]int{
		shared.RatingA: 0, shared.RatingB: 0, shared.RatingC: 0,
		shared.RatingD: 0, shared.RatingE: 0, shared.RatingF: 0,
	}
}

// DefaultOutputBonus rewards high output worlds
func DefaultOutputBonus() map[shared.Rating]int {
	return map[shared.Rating]int{
		shared.RatingA: -1, shared.RatingB: 0, shared.RatingC: 1,
		shared.RatingD: 2, shared.RatingE: 3, shared.RatingF: 4,
	}
}

// IsAutomatic reports whether acquisitions bypass personnel
func (o Options) IsAutomatic() bool {
	return o.AcquisitionSkill == SkillAutomatic
}

// IsClanFaction reports whether code is one of the configured Clan factions
func (o Options) IsClanFaction(code string) bool {
	for _, c := range o.ClanFactions {
		if c == code {
			return true
		}
	}
	return false
}

// InCrisis reports whether date falls inside the economic crisis window
func (o Options) InCrisis(date time.Time) bool {
	if o.CrisisStart.IsZero() || o.CrisisEnd.IsZero() {
		return false
	}
	return !date.Before(o.CrisisStart) && !date.After(o.CrisisEnd)
}
