package acquisition_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/andrescamacho/starlane-logistics/internal/domain/acquisition"
	"github.com/andrescamacho/starlane-logistics/internal/domain/shared"
)

func TestNewWork_KeepsEveryField(t *testing.T) {
	work, err := acquisition.NewWork("Gyro", 2, 30_000, shared.RatingC)

	require.NoError(t, err)
	assert.Equal(t, "Gyro", work.Name)
	assert.Equal(t, 2, work.Quantity)
	assert.Equal(t, int64(30_000), work.BuyCost)
	assert.Equal(t, shared.RatingC, work.Availability)
	assert.Equal(t, "Gyro", work.Payload.PartType)
}

func TestNewWork_RejectsNegativeCost(t *testing.T) {
	_, err := acquisition.NewWork("Gyro", 1, -1, shared.RatingC)

	assert.Error(t, err)
}
