package cli

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/andrescamacho/starlane-logistics/internal/application/procurement"
	"github.com/andrescamacho/starlane-logistics/internal/domain/acquisition"
	"github.com/andrescamacho/starlane-logistics/internal/domain/shared"
	"github.com/andrescamacho/starlane-logistics/internal/domain/transit"
	"github.com/andrescamacho/starlane-logistics/internal/infrastructure/config"
)

func TestSettingsFromConfig_Defaults(t *testing.T) {
	cfg := config.DefaultConfig().Campaign

	settings, err := SettingsFromConfig(cfg)

	require.NoError(t, err)
	assert.Equal(t, transit.UnitMonth, settings.Transit.Unit)
	assert.Equal(t, procurement.ModeStandard, settings.Procurement.Mode)
	assert.Equal(t, 7, settings.Procurement.WaitingPeriod)
	assert.True(t, settings.Acquisition.AllowClanPurchases)
	assert.True(t, settings.Acquisition.DisallowExtinct)
	assert.Equal(t, acquisition.TechLevelExperimental, settings.Acquisition.TechLevel)
	assert.Equal(t, -4.0, settings.Access.OutlawThreshold)
}

func TestSettingsFromConfig_Overrides(t *testing.T) {
	// Arrange
	cfg := config.DefaultConfig().Campaign
	no := false
	cfg.Acquisition.Skill = "AUTOMATIC"
	cfg.Acquisition.AllowClan = &no
	cfg.Acquisition.CrisisStart = "3025-01-01"
	cfg.Acquisition.CrisisEnd = "3025-12-31"
	cfg.Acquisition.CrisisPenalty = 2
	cfg.Acquisition.Planetary.TechBonus = map[string]int{"a": -3}
	cfg.Quartermaster.UseAmmoByType = true
	cfg.Routing.AvoidEmptySystems = true

	// Act
	settings, err := SettingsFromConfig(cfg)

	// Assert
	require.NoError(t, err)
	acq := settings.Acquisition
	assert.True(t, acq.IsAutomatic())
	assert.False(t, acq.AllowClanPurchases)
	assert.True(t, acq.InCrisis(shared.NewDate(3025, time.June, 1)))
	assert.Equal(t, -3, acq.TechBonus[shared.RatingA])
	assert.Equal(t, -1, acq.TechBonus[shared.RatingB])
	assert.True(t, settings.Warehouse.UseAmmoByType)
	assert.True(t, settings.Routing.AvoidEmptySystems)
}

func TestSettingsFromConfig_RejectsUnknownValues(t *testing.T) {
	cfg := config.DefaultConfig().Campaign
	cfg.Transit.Unit = "fortnight"
	_, err := SettingsFromConfig(cfg)
	assert.Error(t, err)

	cfg = config.DefaultConfig().Campaign
	cfg.Acquisition.Planetary.OutputBonus = map[string]int{"Q": 1}
	_, err = SettingsFromConfig(cfg)
	assert.Error(t, err)
}
