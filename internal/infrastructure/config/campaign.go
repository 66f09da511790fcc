package config

// CampaignConfig holds the campaign rules handed to the logistics services
type CampaignConfig struct {
	// Scenario is the YAML file describing the map, roster and stock
	Scenario string `mapstructure:"scenario"`

	// Seed for the shared dice; 0 seeds from the clock
	Seed int64 `mapstructure:"seed"`

	Access        AccessConfig        `mapstructure:"access"`
	Routing       RoutingConfig       `mapstructure:"routing"`
	Transit       TransitConfig       `mapstructure:"transit"`
	Acquisition   AcquisitionConfig   `mapstructure:"acquisition"`
	Quartermaster QuartermasterConfig `mapstructure:"quartermaster"`
	Procurement   ProcurementConfig   `mapstructure:"procurement"`
}

// AccessConfig holds faction standing and command circuit rules
type AccessConfig struct {
	// TravellingFaction defaults to the scenario faction
	TravellingFaction       string  `mapstructure:"travelling_faction"`
	GMOverride              bool    `mapstructure:"gm_override"`
	TrackFactionStanding    bool    `mapstructure:"track_faction_standing"`
	OutlawThreshold         float64 `mapstructure:"outlaw_threshold"`
	UseCommandCircuit       bool    `mapstructure:"use_command_circuit"`
	CommandCircuitThreshold float64 `mapstructure:"command_circuit_threshold"`
}

// RoutingConfig holds jump path search options
type RoutingConfig struct {
	AvoidEmptySystems bool `mapstructure:"avoid_empty_systems"`
}

// TransitConfig holds delivery time options
type TransitConfig struct {
	// Unit: day, week, month
	Unit string `mapstructure:"unit" validate:"required,oneof=day week month"`
}

// AcquisitionConfig holds the rules for acquisition target numbers
type AcquisitionConfig struct {
	// Skill is the discipline rolled against, or "automatic"
	Skill string `mapstructure:"skill" validate:"required"`

	// AllowClan and AllowIS are pointers so an explicit false survives defaulting
	AllowClan       *bool  `mapstructure:"allow_clan"`
	AllowIS         *bool  `mapstructure:"allow_is"`
	TechLevel       string `mapstructure:"tech_level" validate:"required,oneof=introductory standard advanced experimental"`
	LimitByYear     *bool  `mapstructure:"limit_by_year"`
	DisallowExtinct *bool  `mapstructure:"disallow_extinct"`

	FactionIsClan bool `mapstructure:"faction_is_clan"`
	ClanPenalty   int  `mapstructure:"clan_penalty" validate:"min=0"`

	RestrictPartsByContract bool `mapstructure:"restrict_parts_by_contract"`

	// Crisis window, YYYY-MM-DD
	CrisisStart   string `mapstructure:"crisis_start" validate:"omitempty,datetime=2006-01-02"`
	CrisisEnd     string `mapstructure:"crisis_end" validate:"omitempty,datetime=2006-01-02"`
	CrisisPenalty int    `mapstructure:"crisis_penalty" validate:"min=0"`

	UseSupportEdge bool `mapstructure:"use_support_edge"`

	SuccessXP int `mapstructure:"success_xp" validate:"min=0"`
	MistakeXP int `mapstructure:"mistake_xp" validate:"min=0"`
	TaskXP    int `mapstructure:"task_xp" validate:"min=0"`
	NTasksXP  int `mapstructure:"n_tasks_xp" validate:"min=0"`

	Planetary PlanetaryConfig `mapstructure:"planetary"`
}

// PlanetaryConfig holds the socio-industrial modifiers used when shopping by planet.
// Bonus tables are keyed by rating letter.
type PlanetaryConfig struct {
	NoClanCrossover bool           `mapstructure:"no_clan_crossover"`
	ClanFactions    []string       `mapstructure:"clan_factions"`
	TechBonus       map[string]int `mapstructure:"tech_bonus" validate:"dive,keys,rating,endkeys"`
	IndustryBonus   map[string]int `mapstructure:"industry_bonus" validate:"dive,keys,rating,endkeys"`
	OutputBonus     map[string]int `mapstructure:"output_bonus" validate:"dive,keys,rating,endkeys"`
}

// QuartermasterConfig holds stock substitution options
type QuartermasterConfig struct {
	UseAmmoByType bool `mapstructure:"use_ammo_by_type"`
}

// ProcurementConfig holds the shopping cycle options
type ProcurementConfig struct {
	// Mode: automatic, standard, planetary
	Mode              string `mapstructure:"mode" validate:"required,oneof=automatic standard planetary"`
	MaxAcquisitions   int    `mapstructure:"max_acquisitions" validate:"min=0"`
	WaitingPeriod     int    `mapstructure:"waiting_period" validate:"min=1"`
	MaxJumpsPlanetary int    `mapstructure:"max_jumps_planetary" validate:"min=0"`
}

// BoolOr dereferences b, falling back to def when unset
func BoolOr(b *bool, def bool) bool {
	if b == nil {
		return def
	}
	return *b
}
