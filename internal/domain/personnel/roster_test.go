package personnel_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/andrescamacho/starlane-logistics/internal/domain/acquisition"
	"github.com/andrescamacho/starlane-logistics/internal/domain/personnel"
)

func person(t *testing.T, id string, skills ...acquisition.Skill) *personnel.Person {
	t.Helper()
	p, err := personnel.NewPerson(id, "Crew "+id, skills...)
	require.NoError(t, err)
	return p
}

func admin(level int) acquisition.Skill {
	return acquisition.Skill{Name: "Administration", Level: level, TargetNumber: 10 - level}
}

func TestRoster_AcquirersOrderedByLevelThenID(t *testing.T) {
	// Arrange
	roster := personnel.NewRoster(
		person(t, "carl", admin(2)),
		person(t, "bea", admin(4)),
		person(t, "gunner", acquisition.Skill{Name: "Gunnery", Level: 5}),
		person(t, "abe", admin(2)),
	)

	// Act
	acquirers := roster.Acquirers("administration")

	// Assert
	ids := make([]string, len(acquirers))
	for i, p := range acquirers {
		ids[i] = p.ID()
	}
	assert.Equal(t, []string{"bea", "abe", "carl"}, ids)
}

func TestRoster_ResetAcquisitions(t *testing.T) {
	p := person(t, "abe", admin(1))
	p.IncrementAcquisitions()
	p.IncrementAcquisitions()
	roster := personnel.NewRoster(p)

	roster.ResetAcquisitions()

	assert.Zero(t, p.Acquisitions())
	found, ok := roster.Find("abe")
	require.True(t, ok)
	assert.Same(t, p, found)
}

func TestPerson_EdgeAndExperience(t *testing.T) {
	p := person(t, "abe", admin(1)).WithEdge(1, true)

	assert.True(t, p.SpendEdge())
	assert.False(t, p.SpendEdge())

	p.AwardXP(3)
	p.AwardXP(-2)
	assert.Equal(t, 3, p.XP())
}

func TestNewPerson_Validation(t *testing.T) {
	_, err := personnel.NewPerson("", "Nobody")
	assert.Error(t, err)

	_, err = personnel.NewPerson("x", "")
	assert.Error(t, err)
}
