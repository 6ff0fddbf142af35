package config

import (
	"github.com/andrescamacho/satisplan-go/internal/domain/blueprint"
)

// FactoryConfig holds the in-game numeric constants the planner runs
// against: transport line capacities and the batch size machines of
// each building type are conventionally built in.
type FactoryConfig struct {
	// Belt capacity in items per minute
	BeltItemsPerMinute float64 `mapstructure:"belt_items_per_minute" validate:"omitempty,gt=0"`

	// Pipe capacity in items per minute
	PipeItemsPerMinute float64 `mapstructure:"pipe_items_per_minute" validate:"omitempty,gt=0"`

	// Preferred machine multiple per building type. A building absent
	// from this map cannot be sized.
	PreferredMultiples map[string]float64 `mapstructure:"preferred_multiples"`
}

// Constants converts the config section into the sizing algorithm's
// input struct.
func (c *FactoryConfig) Constants() blueprint.Constants {
	return blueprint.Constants{
		BeltItemsPerMinute: c.BeltItemsPerMinute,
		PipeItemsPerMinute: c.PipeItemsPerMinute,
		PreferredMultiples: c.PreferredMultiples,
	}
}
