package cli

import (
	"fmt"
	"strings"
	"time"

	"github.com/andrescamacho/starlane-logistics/internal/application/campaign"
	"github.com/andrescamacho/starlane-logistics/internal/application/procurement"
	"github.com/andrescamacho/starlane-logistics/internal/domain/access"
	"github.com/andrescamacho/starlane-logistics/internal/domain/acquisition"
	"github.com/andrescamacho/starlane-logistics/internal/domain/routing"
	"github.com/andrescamacho/starlane-logistics/internal/domain/shared"
	"github.com/andrescamacho/starlane-logistics/internal/domain/transit"
	"github.com/andrescamacho/starlane-logistics/internal/domain/warehouse"
	"github.com/andrescamacho/starlane-logistics/internal/infrastructure/config"
)

// SettingsFromConfig converts the campaign section into service options
func SettingsFromConfig(cfg config.CampaignConfig) (campaign.Settings, error) {
	unit, err := transit.ParseUnit(cfg.Transit.Unit)
	if err != nil {
		return campaign.Settings{}, err
	}
	mode, err := procurement.ParseMode(cfg.Procurement.Mode)
	if err != nil {
		return campaign.Settings{}, err
	}
	acq, err := acquisitionOptions(cfg.Acquisition)
	if err != nil {
		return campaign.Settings{}, err
	}

	return campaign.Settings{
		Access: access.Settings{
			TravellingFaction:       cfg.Access.TravellingFaction,
			GMOverride:              cfg.Access.GMOverride,
			TrackFactionStanding:    cfg.Access.TrackFactionStanding,
			OutlawThreshold:         cfg.Access.OutlawThreshold,
			UseCommandCircuit:       cfg.Access.UseCommandCircuit,
			CommandCircuitThreshold: cfg.Access.CommandCircuitThreshold,
		},
		Routing:     routing.Options{AvoidEmptySystems: cfg.Routing.AvoidEmptySystems},
		Transit:     transit.Options{Unit: unit},
		Acquisition: acq,
		Warehouse:   warehouse.Options{UseAmmoByType: cfg.Quartermaster.UseAmmoByType},
		Procurement: procurement.Options{
			Mode:              mode,
			MaxAcquisitions:   cfg.Procurement.MaxAcquisitions,
			WaitingPeriod:     cfg.Procurement.WaitingPeriod,
			MaxJumpsPlanetary: cfg.Procurement.MaxJumpsPlanetary,
		},
	}, nil
}

func acquisitionOptions(cfg config.AcquisitionConfig) (acquisition.Options, error) {
	opts := acquisition.DefaultOptions()
	opts.AcquisitionSkill = cfg.Skill
	if strings.EqualFold(cfg.Skill, acquisition.SkillAutomatic) {
		opts.AcquisitionSkill = acquisition.SkillAutomatic
	}
	opts.AllowClanPurchases = config.BoolOr(cfg.AllowClan, opts.AllowClanPurchases)
	opts.AllowISPurchases = config.BoolOr(cfg.AllowIS, opts.AllowISPurchases)
	opts.LimitByYear = config.BoolOr(cfg.LimitByYear, opts.LimitByYear)
	opts.DisallowExtinct = config.BoolOr(cfg.DisallowExtinct, opts.DisallowExtinct)

	level, err := acquisition.ParseTechLevel(cfg.TechLevel)
	if err != nil {
		return opts, err
	}
	opts.TechLevel = level

	opts.FactionIsClan = cfg.FactionIsClan
	opts.ClanPenalty = cfg.ClanPenalty
	opts.RestrictPartsByContract = cfg.RestrictPartsByContract
	opts.CrisisPenalty = cfg.CrisisPenalty
	if cfg.CrisisStart != "" {
		if opts.CrisisStart, err = time.Parse("2006-01-02", cfg.CrisisStart); err != nil {
			return opts, fmt.Errorf("crisis_start: %w", err)
		}
	}
	if cfg.CrisisEnd != "" {
		if opts.CrisisEnd, err = time.Parse("2006-01-02", cfg.CrisisEnd); err != nil {
			return opts, fmt.Errorf("crisis_end: %w", err)
		}
	}

	opts.UseSupportEdge = cfg.UseSupportEdge
	opts.SuccessXP = cfg.SuccessXP
	opts.MistakeXP = cfg.MistakeXP
	opts.TaskXP = cfg.TaskXP
	opts.NTasksXP = cfg.NTasksXP

	p := cfg.Planetary
	opts.NoClanCrossover = p.NoClanCrossover
	opts.ClanFactions = append([]string(nil), p.ClanFactions...)
	if opts.TechBonus, err = mergeBonus(opts.TechBonus, p.TechBonus); err != nil {
		return opts, fmt.Errorf("tech_bonus: %w", err)
	}
	if opts.IndustryBonus, err = mergeBonus(opts.IndustryBonus, p.IndustryBonus); err != nil {
		return opts, fmt.Errorf("industry_bonus: %w", err)
	}
	if opts.OutputBonus, err = mergeBonus(opts.OutputBonus, p.OutputBonus); err != nil {
		return opts, fmt.Errorf("output_bonus: %w", err)
	}
	return opts, nil
}

// mergeBonus overrides entries of base with the letter-keyed overrides
func mergeBonus(base map[shared.Rating]int, overrides map[string]int) (map[shared.Rating]int, error) {
	merged := make(map[shared.Rating]int, len(base))
	for rating, bonus := range base {
		merged[rating] = bonus
	}
	for letter, bonus := range overrides {
		rating, err := shared.ParseRating(letter)
		if err != nil {
			return nil, err
		}
		merged[rating] = bonus
	}
	return merged, nil
}
