package procurement

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/andrescamacho/starlane-logistics/internal/adapters/metrics"
	"github.com/andrescamacho/starlane-logistics/internal/application/common"
	"github.com/andrescamacho/starlane-logistics/internal/domain/access"
	"github.com/andrescamacho/starlane-logistics/internal/domain/acquisition"
	"github.com/andrescamacho/starlane-logistics/internal/domain/finance"
	"github.com/andrescamacho/starlane-logistics/internal/domain/routing"
	"github.com/andrescamacho/starlane-logistics/internal/domain/shared"
	"github.com/andrescamacho/starlane-logistics/internal/domain/system"
	"github.com/andrescamacho/starlane-logistics/internal/domain/transit"
)

// Mode selects how the shopping list is worked
type Mode string

const (
	ModeAutomatic Mode = "automatic"
	ModeStandard  Mode = "standard"
	ModePlanetary Mode = "planetary"
)

// ParseMode converts a configuration value into a Mode
func ParseMode(value string) (Mode, error) {
	switch Mode(value) {
	case ModeAutomatic, ModeStandard, ModePlanetary:
		return Mode(value), nil
	case "":
		return ModeStandard, nil
	default:
		return ModeStandard, fmt.Errorf("unknown procurement mode %q", value)
	}
}

// Options configure the scheduler
type Options struct {
	Mode Mode

	// MaxAcquisitions caps attempts per person per period; 0 means unlimited
	MaxAcquisitions int

	// WaitingPeriod is the cooldown in days after a failed or skipped item
	WaitingPeriod int

	// MaxJumpsPlanetary bounds the systems searched in planetary mode
	MaxJumpsPlanetary int
}

// PersonnelSource supplies acquirers in priority order
type PersonnelSource interface {
	Acquirers(discipline string) []acquisition.Person
}

// Delivery is an acquired item on its way to the warehouse
type Delivery struct {
	WorkID      uuid.UUID
	Name        string
	Payload     acquisition.Payload
	Cost        int64
	TransitDays int
	SystemID    string
	PersonID    string
}

// DeliverySink receives every successful acquisition
type DeliverySink interface {
	Receive(delivery Delivery)
}

// CycleReport summarises one run of the scheduler
type CycleReport struct {
	Mode       Mode
	Date       time.Time
	Attempts   int
	Deliveries []Delivery
	Resolved   int
	Carried    int
	Shelved    int
	Lines      []string
}

func (r *CycleReport) addLine(format string, args ...interface{}) {
	r.Lines = append(r.Lines, fmt.Sprintf(format, args...))
}

// Dependencies are the collaborators a Scheduler works with
type Dependencies struct {
	Resolver  *acquisition.Resolver
	Estimator *transit.Estimator
	Funds     finance.Funds
	Personnel PersonnelSource
	Clock     shared.Clock
	Contracts []access.Contract

	// Router and Location are required in planetary mode only
	Router   *routing.Router
	Location *system.PlanetarySystem

	// Sink is optional
	Sink DeliverySink
}

// Scheduler works the shopping list once per cycle
type Scheduler struct {
	deps    Dependencies
	options Options
}

// NewScheduler creates a scheduler. An automatic acquisition skill forces automatic mode.
func NewScheduler(deps Dependencies, options Options) *Scheduler {
	if deps.Resolver != nil && deps.Resolver.Options().IsAutomatic() {
		options.Mode = ModeAutomatic
	}
	if options.Mode == "" {
		options.Mode = ModeStandard
	}
	return &Scheduler{deps: deps, options: options}
}

// Mode returns the effective mode
func (s *Scheduler) Mode() Mode {
	return s.options.Mode
}

// attemptResult is what happened when trying to buy an item
type attemptResult int

const (
	resultFound attemptResult = iota
	resultFailed
	resultUnaffordable
	resultImpossible
)

// cycle holds the state of one RunCycle call
type cycle struct {
	ctx       context.Context
	query     acquisition.Query
	report    *CycleReport
	attempted map[uuid.UUID]bool
	shelved   map[uuid.UUID]bool
}

// RunCycle works list according to the configured mode and returns a new list holding
// only unresolved items, plus a report of what happened.
func (s *Scheduler) RunCycle(ctx context.Context, list *acquisition.ShoppingList) (*acquisition.ShoppingList, CycleReport) {
	logger := common.LoggerFromContext(ctx)
	date := s.deps.Clock.Today()
	report := CycleReport{Mode: s.options.Mode, Date: date}

	if list == nil || list.IsEmpty() {
		return acquisition.NewShoppingList(), report
	}

	list.DecrementDaysToWait()

	c := &cycle{
		ctx:       ctx,
		query:     acquisition.Query{Date: date, Contracts: s.deps.Contracts},
		report:    &report,
		attempted: make(map[uuid.UUID]bool),
		shelved:   make(map[uuid.UUID]bool),
	}

	switch s.options.Mode {
	case ModeAutomatic:
		s.runAutomatic(c, list)
	case ModePlanetary:
		s.runPlanetary(c, list)
	default:
		s.runStandard(c, list)
	}

	next := s.carryForward(c, list)

	metrics.RecordCycle(string(s.options.Mode), report.Resolved, report.Carried, report.Shelved)
	logger.Log(common.LevelInfo, "Procurement cycle complete", map[string]interface{}{
		"mode":       string(s.options.Mode),
		"date":       date.Format("2006-01-02"),
		"attempts":   report.Attempts,
		"deliveries": len(report.Deliveries),
		"carried":    report.Carried,
		"shelved":    report.Shelved,
	})
	for _, line := range report.Lines {
		logger.Log(common.LevelDebug, line, nil)
	}
	return next, report
}

// runAutomatic buys each item until it is filled or one attempt fails
func (s *Scheduler) runAutomatic(c *cycle, list *acquisition.ShoppingList) {
	for _, work := range list.Items() {
		for work.Quantity > 0 {
			if s.acquire(c, work, nil, s.transitByAvailability) != resultFound {
				work.ResetDaysToWait(s.options.WaitingPeriod)
				break
			}
		}
	}
}

// runStandard lets each person in priority order work every open item
func (s *Scheduler) runStandard(c *cycle, list *acquisition.ShoppingList) {
	people := s.acquirers()
	if len(people) == 0 {
		c.report.addLine("no one on your force is capable of acquiring parts")
		return
	}

	for _, person := range people {
		if s.atCap(person) {
			c.report.addLine("%s has reached the acquisition limit for this period", person.FullName())
			continue
		}
		for _, work := range list.Items() {
			if s.atCap(person) {
				break
			}
			if !isOpen(work) {
				continue
			}
			for work.Quantity > 0 && !s.atCap(person) {
				result := s.acquire(c, work, person, s.transitByAvailability)
				if result != resultFound {
					work.ResetDaysToWait(s.options.WaitingPeriod)
					break
				}
			}
		}
	}
}

// runPlanetary searches nearby populated systems for a contact before each purchase
func (s *Scheduler) runPlanetary(c *cycle, list *acquisition.ShoppingList) {
	people := s.acquirers()
	if len(people) == 0 {
		c.report.addLine("no one on your force is capable of acquiring parts")
		return
	}
	if s.deps.Router == nil || s.deps.Location == nil {
		common.LoggerFromContext(c.ctx).Log(common.LevelError, "Planetary procurement needs a router and a current location", nil)
		return
	}

	nearby := s.deps.Router.NearbySystems(s.deps.Location, s.options.MaxJumpsPlanetary, c.query.Date)
	if len(nearby) == 0 {
		c.report.addLine("no populated systems within %d jumps of %s", s.options.MaxJumpsPlanetary, s.deps.Location.Name())
		return
	}

	for _, person := range people {
		if s.atCap(person) {
			c.report.addLine("%s has reached the acquisition limit for this period", person.FullName())
			continue
		}
		for _, candidate := range nearby {
			if s.atCap(person) {
				break
			}
			for _, work := range list.Items() {
				if s.atCap(person) {
					break
				}
				if !isOpen(work) || c.shelved[work.ID] {
					continue
				}
				s.shopAt(c, work, person, candidate.System)
			}
		}
	}
}

// shopAt tries to find a contact for work at target and then buy from them
func (s *Scheduler) shopAt(c *cycle, work *acquisition.Work, person acquisition.Person, target *system.PlanetarySystem) {
	if !s.canAfford(work.BuyCost) {
		c.shelved[work.ID] = true
		c.report.addLine("cannot afford %s; shelved for this cycle", work.Name)
		return
	}
	if base := s.deps.Resolver.TargetRoll(c.query, work, person, false); base.IsImpossible() {
		c.shelved[work.ID] = true
		c.report.addLine("%s cannot be acquired: %s", work.Name, base.Reason())
		return
	}

	found, contact := s.deps.Resolver.FindContact(c.query, work, person, target)
	if !found {
		if !contact.IsImpossible() {
			c.attempted[work.ID] = true
		}
		c.report.addLine("%s found no seller for %s at %s (%s)", person.FullName(), work.Name, target.Name(), contact.ValueString())
		return
	}

	transitDays := func(*acquisition.Work) int {
		return s.deps.Estimator.DaysFor(s.deps.Location, target)
	}
	for work.Quantity > 0 && !s.atCap(person) {
		result := s.acquire(c, work, person, transitDays, target.ID())
		if result == resultUnaffordable || result == resultImpossible {
			c.shelved[work.ID] = true
		}
		if result != resultFound {
			return
		}
	}
}

type transitFunc func(work *acquisition.Work) int

// acquire makes one paid acquisition attempt
func (s *Scheduler) acquire(c *cycle, work *acquisition.Work, person acquisition.Person, transitDays transitFunc, systemID ...string) attemptResult {
	mode := string(s.options.Mode)
	who := "automatic acquisition"
	personID := ""
	if person != nil {
		who = person.FullName()
		personID = person.ID()
	}

	if !s.canAfford(work.BuyCost) {
		c.report.addLine("cannot afford %s (%d)", work.Name, work.BuyCost)
		metrics.RecordAttempt(mode, "unaffordable")
		return resultUnaffordable
	}

	target := s.targetFor(c, work, person)
	if target.IsImpossible() {
		c.report.addLine("%s cannot acquire %s: %s", who, work.Name, target.Reason())
		metrics.RecordAttempt(mode, "impossible")
		return resultImpossible
	}

	outcome := s.deps.Resolver.Resolve(work, person, target)
	c.attempted[work.ID] = true
	if !target.IsSentinel() {
		c.report.Attempts++
	}
	if !outcome.Success {
		c.report.addLine("%s failed to find %s (rolled %d, needed %s)", who, work.Name, outcome.Roll, target.ValueString())
		metrics.RecordAttempt(mode, "failed")
		return resultFailed
	}

	if s.deps.Funds != nil {
		description := fmt.Sprintf("Acquisition of %s", work.Name)
		if err := s.deps.Funds.Debit(work.BuyCost, finance.TransactionTypeAcquisition, description, work.ID.String()); err != nil {
			c.report.addLine("payment for %s failed: %v", work.Name, err)
			metrics.RecordAttempt(mode, "unaffordable")
			return resultUnaffordable
		}
	}

	work.DecrementQuantity()
	delivery := Delivery{
		WorkID:      work.ID,
		Name:        work.Name,
		Payload:     work.Payload,
		Cost:        work.BuyCost,
		TransitDays: transitDays(work),
		PersonID:    personID,
	}
	if len(systemID) > 0 {
		delivery.SystemID = systemID[0]
	}
	c.report.Deliveries = append(c.report.Deliveries, delivery)
	c.report.addLine("%s found %s; it will arrive in %d days", who, work.Name, delivery.TransitDays)

	metrics.RecordAttempt(mode, "found")
	metrics.RecordDelivery(work.Name, work.BuyCost, delivery.TransitDays)
	if s.deps.Sink != nil {
		s.deps.Sink.Receive(delivery)
	}
	return resultFound
}

// targetFor is the roll for one attempt. Automatic mode needs no personnel, so it
// succeeds even when the resolver's skill is not automatic.
func (s *Scheduler) targetFor(c *cycle, work *acquisition.Work, person acquisition.Person) acquisition.TargetRoll {
	if s.options.Mode == ModeAutomatic && person == nil {
		return acquisition.AutomaticSuccess("Automatic Success")
	}
	return s.deps.Resolver.TargetRoll(c.query, work, person, s.options.Mode != ModePlanetary)
}

func (s *Scheduler) transitByAvailability(work *acquisition.Work) int {
	return s.deps.Estimator.DaysForAvailability(int(work.Availability))
}

// carryForward builds the next list from items still wanted
func (s *Scheduler) carryForward(c *cycle, list *acquisition.ShoppingList) *acquisition.ShoppingList {
	next := acquisition.NewShoppingList()
	for _, work := range list.Items() {
		if work.Quantity <= 0 {
			c.report.Resolved++
			continue
		}
		if c.shelved[work.ID] {
			c.report.Shelved++
			next.Add(work)
			continue
		}

		resetCooldown := !work.IsCoolingDown()
		if s.options.Mode == ModePlanetary {
			resetCooldown = resetCooldown && !c.attempted[work.ID]
		}
		if resetCooldown {
			work.ResetDaysToWait(s.options.WaitingPeriod)
		}
		c.report.Carried++
		next.Add(work)
	}
	return next
}

func (s *Scheduler) acquirers() []acquisition.Person {
	if s.deps.Personnel == nil {
		return nil
	}
	return s.deps.Personnel.Acquirers(s.deps.Resolver.Options().AcquisitionSkill)
}

func (s *Scheduler) atCap(person acquisition.Person) bool {
	return s.options.MaxAcquisitions > 0 && person.Acquisitions() >= s.options.MaxAcquisitions
}

func (s *Scheduler) canAfford(cost int64) bool {
	return s.deps.Funds == nil || s.deps.Funds.CanAfford(cost)
}

func isOpen(work *acquisition.Work) bool {
	return work.Quantity > 0 && !work.IsCoolingDown()
}
