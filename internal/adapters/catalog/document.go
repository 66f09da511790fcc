package catalog

// Document is the YAML layout of a scenario file. Dates are YYYY-MM-DD and ratings
// are letter grades.
type Document struct {
	Date      string             `yaml:"date" validate:"required,datetime=2006-01-02"`
	Faction   string             `yaml:"faction" validate:"required"`
	Balance   int64              `yaml:"balance" validate:"min=0"`
	Location  string             `yaml:"location" validate:"required"`
	Standings map[string]float64 `yaml:"standings"`
	Systems   []SystemDoc        `yaml:"systems" validate:"required,min=1,dive"`
	Contracts []ContractDoc      `yaml:"contracts" validate:"dive"`
	Personnel []PersonDoc        `yaml:"personnel" validate:"dive"`
	AmmoTypes []AmmoTypeDoc      `yaml:"ammo_types" validate:"dive"`
	Shopping  []WorkDoc          `yaml:"shopping" validate:"dive"`
	Stock     []StockDoc         `yaml:"stock" validate:"dive"`
}

type SystemDoc struct {
	ID             string          `yaml:"id" validate:"required"`
	Name           string          `yaml:"name"`
	X              float64         `yaml:"x"`
	Y              float64         `yaml:"y"`
	RechargeHours  float64         `yaml:"recharge_hours" validate:"min=0"`
	StationHours   float64         `yaml:"station_hours" validate:"min=0"`
	JumpPointDays  float64         `yaml:"jump_point_days" validate:"min=0"`
	CommandCircuit string          `yaml:"command_circuit" validate:"omitempty,datetime=2006-01-02"`
	Population     []PopulationDoc `yaml:"population" validate:"dive"`
	Ownership      []OwnershipDoc  `yaml:"ownership" validate:"dive"`
	Stations       []StationDoc    `yaml:"stations" validate:"dive"`
	Tech           string          `yaml:"tech" validate:"omitempty,len=1"`
	Industry       string          `yaml:"industry" validate:"omitempty,len=1"`
	Output         string          `yaml:"output" validate:"omitempty,len=1"`
}

type PopulationDoc struct {
	Date       string `yaml:"date" validate:"required,datetime=2006-01-02"`
	Population int64  `yaml:"population" validate:"min=0"`
}

type OwnershipDoc struct {
	Date     string   `yaml:"date" validate:"required,datetime=2006-01-02"`
	Factions []string `yaml:"factions"`
}

type StationDoc struct {
	Date string `yaml:"date" validate:"required,datetime=2006-01-02"`
	Kind string `yaml:"kind" validate:"required,oneof=zenith nadir"`
}

type ContractDoc struct {
	ID                string `yaml:"id" validate:"required"`
	Employer          string `yaml:"employer" validate:"required"`
	Enemy             string `yaml:"enemy"`
	Start             string `yaml:"start" validate:"required,datetime=2006-01-02"`
	End               string `yaml:"end" validate:"omitempty,datetime=2006-01-02"`
	PartsAvailability string `yaml:"parts_availability" validate:"omitempty,len=1"`
}

type PersonDoc struct {
	ID              string     `yaml:"id" validate:"required"`
	Name            string     `yaml:"name" validate:"required"`
	Edge            int        `yaml:"edge" validate:"min=0"`
	AcquisitionEdge bool       `yaml:"acquisition_edge"`
	Skills          []SkillDoc `yaml:"skills" validate:"dive"`
}

type SkillDoc struct {
	Name   string `yaml:"name" validate:"required"`
	Level  int    `yaml:"level" validate:"min=0"`
	Target int    `yaml:"target" validate:"required,min=2,max=12"`
}

type AmmoTypeDoc struct {
	Name     string `yaml:"name" validate:"required"`
	Family   string `yaml:"family" validate:"required"`
	RackSize int    `yaml:"rack_size" validate:"required,min=1"`
}

type ModifierDoc struct {
	Delta int    `yaml:"delta"`
	Label string `yaml:"label" validate:"required"`
}

type WorkDoc struct {
	Name         string        `yaml:"name" validate:"required"`
	Quantity     int           `yaml:"quantity" validate:"min=0"`
	Cost         int64         `yaml:"cost" validate:"min=0"`
	Availability string        `yaml:"availability" validate:"required,len=1"`
	TechBase     string        `yaml:"tech_base" validate:"omitempty,oneof=all is clan"`
	TechLevel    string        `yaml:"tech_level" validate:"omitempty,oneof=introductory standard advanced experimental"`
	IntroYear    int           `yaml:"intro_year"`
	ExtinctYear  int           `yaml:"extinct_year"`
	ReintroYear  int           `yaml:"reintro_year"`
	DaysToWait   int           `yaml:"days_to_wait" validate:"min=0"`
	Modifiers    []ModifierDoc `yaml:"modifiers" validate:"dive"`

	// Part type and quality delivered; part type defaults to Name
	PartType string `yaml:"part_type"`
	Quality  string `yaml:"quality" validate:"omitempty,len=1"`
	Units    int    `yaml:"units" validate:"min=0"`

	// AmmoType names an entry of ammo_types; Units then counts shots
	AmmoType string `yaml:"ammo_type"`
}

type StockDoc struct {
	Type          string `yaml:"type" validate:"required"`
	Quality       string `yaml:"quality" validate:"omitempty,len=1"`
	Quantity      int    `yaml:"quantity" validate:"required,min=1"`
	UnitCost      int64  `yaml:"unit_cost" validate:"min=0"`
	AmmoType      string `yaml:"ammo_type"`
	DaysToArrival int    `yaml:"days_to_arrival" validate:"min=0"`
}
