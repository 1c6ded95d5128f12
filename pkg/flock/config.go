package flock

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/santhosh-tekuri/jsonschema/v5"
)

// Config is the startup settings file. It only seeds the initial Params;
// everything except the flock size stays live-adjustable afterwards.
type Config struct {
	NumBoids int `json:"numBoids"`

	MaxSpeed     float64 `json:"maxSpeed"`
	ViewDistance float64 `json:"viewDistance"`
	MinDistance  float64 `json:"minDistance"`
	BoxSize      float64 `json:"boxSize"`

	Avoidance float64 `json:"avoidance"`
	Centering float64 `json:"centering"`
	Matching  float64 `json:"matching"`
}

// DefaultConfig mirrors DefaultParams.
func DefaultConfig() *Config {
	return &Config{
		NumBoids:     100,
		MaxSpeed:     500.0,
		ViewDistance: 10.0,
		MinDistance:  5.0,
		BoxSize:      100.0,
		Avoidance:    0.5,
		Centering:    0.075,
		Matching:     0.2,
	}
}

// Params converts the startup settings into the engine parameter set.
func (c *Config) Params() Params {
	return Params{
		MaxSpeed:     c.MaxSpeed,
		ViewDistance: c.ViewDistance,
		MinDistance:  c.MinDistance,
		BoxSize:      c.BoxSize,
		Avoidance:    c.Avoidance,
		Centering:    c.Centering,
		Matching:     c.Matching,
		NumBoids:     c.NumBoids,
	}
}

// LoadConfig loads configuration from a JSON file and validates it against the schema.
func LoadConfig(configFile string, schemaFile string) (*Config, error) {
	// 1. Compile Schema
	sch, err := jsonschema.Compile(schemaFile)
	if err != nil {
		return nil, fmt.Errorf("failed to compile schema: %w", err)
	}

	// 2. Read Config File
	b, err := os.ReadFile(configFile)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	// 3. Validate the raw document against the schema
	var v interface{}
	if err := json.Unmarshal(b, &v); err != nil {
		return nil, fmt.Errorf("failed to decode config json: %w", err)
	}
	if err := sch.Validate(v); err != nil {
		return nil, fmt.Errorf("config validation failed: %w", err)
	}

	// 4. Unmarshal into the struct
	var cfg Config
	if err := json.Unmarshal(b, &cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	return &cfg, nil
}
