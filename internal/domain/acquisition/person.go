package acquisition

// Skill is a person's standing in one discipline
type Skill struct {
	Name string

	// Level is the experience level used to order personnel
	Level int

	// TargetNumber is the 2d6 value the person needs before modifiers
	TargetNumber int
}

// Person is the view of a crew member the resolver and scheduler need.
// Implementations own their counters; the engine only calls the mutators below.
type Person interface {
	ID() string
	FullName() string
	Skill(discipline string) (Skill, bool)

	Acquisitions() int
	IncrementAcquisitions()

	AwardXP(amount int)

	CurrentEdge() int
	SpendEdge() bool
	HasAcquisitionEdge() bool

	SuccessfulTasks() int
	RecordSuccessfulTask()
	ResetSuccessfulTasks()
}
