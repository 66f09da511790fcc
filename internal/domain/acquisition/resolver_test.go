package acquisition_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/andrescamacho/starlane-logistics/internal/domain/access"
	"github.com/andrescamacho/starlane-logistics/internal/domain/acquisition"
	"github.com/andrescamacho/starlane-logistics/internal/domain/personnel"
	"github.com/andrescamacho/starlane-logistics/internal/domain/shared"
	"github.com/andrescamacho/starlane-logistics/test/helpers"
)

func newClerk(t *testing.T) *personnel.Person {
	t.Helper()
	p, err := personnel.NewPerson("ana", "Ana Kell", acquisition.Skill{Name: "Administration", Level: 3, TargetNumber: 7})
	require.NoError(t, err)
	return p
}

func newWork(t *testing.T, availability shared.Rating) *acquisition.Work {
	t.Helper()
	w, err := acquisition.NewWork("Medium Laser", 2, 40_000, availability)
	require.NoError(t, err)
	return w
}

func at() acquisition.Query {
	return acquisition.Query{Date: helpers.CampaignStart}
}

func TestResolver_AutomaticSkillAlwaysSucceeds(t *testing.T) {
	// Arrange
	options := acquisition.DefaultOptions()
	options.AcquisitionSkill = acquisition.SkillAutomatic
	resolver := acquisition.NewResolver(options, shared.NewScriptedDice())

	// Act
	target := resolver.TargetRoll(at(), newWork(t, shared.RatingF), nil, true)
	outcome := resolver.Resolve(newWork(t, shared.RatingF), nil, target)

	// Assert
	assert.True(t, target.IsAutomaticSuccess())
	assert.True(t, outcome.Success)
	assert.Zero(t, outcome.Roll)
}

func TestResolver_EligibilitySentinels(t *testing.T) {
	tests := []struct {
		name    string
		options func(*acquisition.Options)
		work    func(*acquisition.Work)
		reason  string
	}{
		{
			name:    "clan purchases disabled",
			options: func(o *acquisition.Options) { o.AllowClanPurchases = false },
			work:    func(w *acquisition.Work) { w.TechBase = acquisition.TechBaseClan },
			reason:  "you cannot acquire Clan parts",
		},
		{
			name:    "inner sphere purchases disabled",
			options: func(o *acquisition.Options) { o.AllowISPurchases = false },
			work:    func(w *acquisition.Work) { w.TechBase = acquisition.TechBaseIS },
			reason:  "you cannot acquire Inner Sphere parts",
		},
		{
			name:    "tech level above campaign limit",
			options: func(o *acquisition.Options) { o.TechLevel = acquisition.TechLevelStandard },
			work:    func(w *acquisition.Work) { w.TechLevel = acquisition.TechLevelAdvanced },
			reason:  "you cannot acquire parts of this tech level",
		},
		{
			name:    "not invented yet",
			options: func(o *acquisition.Options) {},
			work:    func(w *acquisition.Work) { w.IntroYear = 3050 },
			reason:  "it has not been invented yet",
		},
		{
			name:    "extinct availability",
			options: func(o *acquisition.Options) {},
			work:    func(w *acquisition.Work) { w.Availability = shared.RatingX },
			reason:  "it is extinct",
		},
		{
			name:    "extinct by year",
			options: func(o *acquisition.Options) {},
			work:    func(w *acquisition.Work) { w.ExtinctYear = 2800 },
			reason:  "it is extinct",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			options := acquisition.DefaultOptions()
			tt.options(&options)
			work := newWork(t, shared.RatingC)
			tt.work(work)
			resolver := acquisition.NewResolver(options, shared.NewScriptedDice())

			target := resolver.TargetRoll(at(), work, newClerk(t), false)

			assert.True(t, target.IsImpossible())
			assert.Equal(t, tt.reason, target.Reason())
		})
	}
}

func TestResolver_ReintroducedItemIsAvailable(t *testing.T) {
	work := newWork(t, shared.RatingC)
	work.ExtinctYear = 2800
	work.ReintroYear = 3020
	resolver := acquisition.NewResolver(acquisition.DefaultOptions(), shared.NewScriptedDice())

	target := resolver.TargetRoll(at(), work, newClerk(t), false)

	assert.False(t, target.IsSentinel())
}

func TestResolver_ExtinctAllowedWhenRuleDisabled(t *testing.T) {
	options := acquisition.DefaultOptions()
	options.DisallowExtinct = false
	resolver := acquisition.NewResolver(options, shared.NewScriptedDice())

	target := resolver.TargetRoll(at(), newWork(t, shared.RatingX), newClerk(t), false)

	assert.False(t, target.IsSentinel())
	assert.Equal(t, 7+5, target.Value())
}

func TestResolver_MissingPersonOrSkillIsImpossible(t *testing.T) {
	resolver := acquisition.NewResolver(acquisition.DefaultOptions(), shared.NewScriptedDice())
	untrained, err := personnel.NewPerson("bo", "Bo Raines", acquisition.Skill{Name: "Gunnery", TargetNumber: 6})
	require.NoError(t, err)

	assert.True(t, resolver.TargetRoll(at(), newWork(t, shared.RatingC), nil, false).IsImpossible())
	assert.True(t, resolver.TargetRoll(at(), newWork(t, shared.RatingC), untrained, false).IsImpossible())
}

func TestResolver_CoolingDownItemFailsOnlyWhenChecked(t *testing.T) {
	resolver := acquisition.NewResolver(acquisition.DefaultOptions(), shared.NewScriptedDice())
	work := newWork(t, shared.RatingC)
	work.ResetDaysToWait(3)

	assert.True(t, resolver.TargetRoll(at(), work, newClerk(t), true).IsAutomaticFail())
	assert.False(t, resolver.TargetRoll(at(), work, newClerk(t), false).IsSentinel())
}

func TestResolver_ModifiersAccumulateInOrder(t *testing.T) {
	// Arrange
	options := acquisition.DefaultOptions()
	options.ClanPenalty = 3
	options.RestrictPartsByContract = true
	options.CrisisStart = shared.NewDate(3024, time.June, 1)
	options.CrisisEnd = shared.NewDate(3025, time.June, 1)
	options.CrisisPenalty = 1
	resolver := acquisition.NewResolver(options, shared.NewScriptedDice())

	work := newWork(t, shared.RatingE)
	work.TechBase = acquisition.TechBaseClan
	work.Modifiers = []acquisition.Modifier{{Delta: -1, Label: "salvage"}}

	q := at()
	q.Contracts = []access.Contract{{ID: "c1", Employer: "FS", Start: helpers.CampaignStart, PartsAvailability: shared.RatingC}}

	// Act
	target := resolver.TargetRoll(q, work, newClerk(t), false)

	// Assert: 7 base, availability E +0, clan-tech +3, salvage -1, contract +2, crisis +1
	require.False(t, target.IsSentinel())
	assert.Equal(t, 12, target.Value())
	labels := make([]string, 0)
	for _, m := range target.Modifiers() {
		labels = append(labels, m.Label)
	}
	assert.Equal(t, []string{"availability (E)", "clan-tech", "salvage", "contract availability", "economic crisis"}, labels)
	assert.Equal(t, "12+", target.ValueString())
}

func TestResolver_ResolveSuccessCountsAttemptAndTask(t *testing.T) {
	// Arrange
	options := acquisition.DefaultOptions()
	options.NTasksXP = 1
	options.TaskXP = 2
	resolver := acquisition.NewResolver(options, shared.NewScriptedDice(4, 4))
	clerk := newClerk(t)

	// Act
	outcome := resolver.Resolve(newWork(t, shared.RatingC), clerk, acquisition.NewTargetRoll(8, "test"))

	// Assert
	assert.True(t, outcome.Success)
	assert.Equal(t, 8, outcome.Roll)
	assert.Equal(t, 2, outcome.XP)
	assert.Equal(t, 1, clerk.Acquisitions())
	assert.Equal(t, 2, clerk.XP())
	assert.Zero(t, clerk.SuccessfulTasks())
}

func TestResolver_FailureStillCountsAttempt(t *testing.T) {
	options := acquisition.DefaultOptions()
	options.MistakeXP = 1
	resolver := acquisition.NewResolver(options, shared.NewScriptedDice(1, 1))
	clerk := newClerk(t)

	outcome := resolver.Resolve(newWork(t, shared.RatingC), clerk, acquisition.NewTargetRoll(8, "test"))

	assert.False(t, outcome.Success)
	assert.Equal(t, 2, outcome.Roll)
	assert.Equal(t, 1, outcome.XP)
	assert.Equal(t, 1, clerk.Acquisitions())
}

func TestResolver_SupportEdgeRerollsFailure(t *testing.T) {
	// Arrange
	options := acquisition.DefaultOptions()
	options.UseSupportEdge = true
	options.SuccessXP = 3
	options.MistakeXP = 1
	resolver := acquisition.NewResolver(options, shared.NewScriptedDice(1, 1, 6, 6))
	clerk := newClerk(t).WithEdge(1, true)

	// Act
	outcome := resolver.Resolve(newWork(t, shared.RatingC), clerk, acquisition.NewTargetRoll(9, "test"))

	// Assert: experience follows the reroll, not the first roll
	assert.True(t, outcome.Success)
	assert.True(t, outcome.Rerolled)
	assert.Equal(t, 2, outcome.FirstRoll)
	assert.Equal(t, 12, outcome.Roll)
	assert.Equal(t, 3, outcome.XP)
	assert.Zero(t, clerk.CurrentEdge())
}

func TestResolver_SentinelsNeverRoll(t *testing.T) {
	dice := shared.NewScriptedDice(6, 6)
	resolver := acquisition.NewResolver(acquisition.DefaultOptions(), dice)
	clerk := newClerk(t)

	impossible := resolver.Resolve(newWork(t, shared.RatingC), clerk, acquisition.Impossible("no"))
	fail := resolver.Resolve(newWork(t, shared.RatingC), clerk, acquisition.AutomaticFail("wait"))

	assert.False(t, impossible.Success)
	assert.False(t, fail.Success)
	assert.Equal(t, 2, dice.Remaining())
	assert.Zero(t, clerk.Acquisitions())
}

func TestResolver_PlanetaryModifiers(t *testing.T) {
	options := acquisition.DefaultOptions()
	options.NoClanCrossover = true
	options.ClanFactions = []string{"CJF"}
	resolver := acquisition.NewResolver(options, shared.NewScriptedDice())
	base := acquisition.NewTargetRoll(7, "Administration")

	t.Run("unpopulated", func(t *testing.T) {
		empty := helpers.NewSystem(t, "empty", 0, 0, helpers.Empty())

		target := resolver.PlanetaryModifiers(base, newWork(t, shared.RatingC), empty, helpers.CampaignStart)

		assert.True(t, target.IsImpossible())
	})

	t.Run("clan item outside clan space", func(t *testing.T) {
		world := helpers.NewSystem(t, "world", 0, 0, helpers.OwnedBy("FS"))
		work := newWork(t, shared.RatingC)
		work.TechBase = acquisition.TechBaseClan

		target := resolver.PlanetaryModifiers(base, work, world, helpers.CampaignStart)

		assert.True(t, target.IsImpossible())
	})

	t.Run("clan item in clan space", func(t *testing.T) {
		world := helpers.NewSystem(t, "world", 0, 0, helpers.OwnedBy("CJF"))
		work := newWork(t, shared.RatingC)
		work.TechBase = acquisition.TechBaseClan

		target := resolver.PlanetaryModifiers(base, work, world, helpers.CampaignStart)

		assert.False(t, target.IsSentinel())
	})

	t.Run("socio-industrial bonuses", func(t *testing.T) {
		world := helpers.NewSystem(t, "world", 0, 0,
			helpers.Ratings(shared.RatingA, shared.RatingC, shared.RatingF))

		target := resolver.PlanetaryModifiers(base, newWork(t, shared.RatingC), world, helpers.CampaignStart)

		// tech A -1, industry C 0, output F +4
		assert.Equal(t, 10, target.Value())
		assert.Len(t, target.Modifiers(), 2)
	})
}

func TestResolver_FindContactDoesNotCountAttempt(t *testing.T) {
	resolver := acquisition.NewResolver(acquisition.DefaultOptions(), shared.NewScriptedDice(6, 6))
	world := helpers.NewSystem(t, "world", 0, 0)
	clerk := newClerk(t)

	found, target := resolver.FindContact(at(), newWork(t, shared.RatingC), clerk, world)

	assert.True(t, found)
	assert.False(t, target.IsSentinel())
	assert.Zero(t, clerk.Acquisitions())
}
