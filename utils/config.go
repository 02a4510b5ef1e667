package utils

import (
	"encoding/json"
	"os"
	"time"

	"github.com/pkg/errors"

	"github.com/sheikhrachel/go-life/model"
)

// Config holds the configuration for the launcher
type Config struct {
	Rows             int           `json:"rows"`
	Cols             int           `json:"cols"`
	FrameRate        time.Duration `json:"frame_rate"`
	FramesPerCycle   int           `json:"frames_per_cycle"`
	MaxGenerations   int           `json:"max_generations"`
	Pattern          string        `json:"pattern"`
	OriginX          int           `json:"origin_x"`
	OriginY          int           `json:"origin_y"`
	RandomDensity    float64       `json:"random_density"`
	Seed             uint64        `json:"seed"`
	UseParallel      bool          `json:"use_parallel"`
	Workers          int           `json:"workers"`
	HistorySize      int           `json:"history_size"`
	StopOnStagnation bool          `json:"stop_on_stagnation"`
}

// DefaultConfig returns the launcher's standard 20x20 board with its seed at (9, 9)
func DefaultConfig() Config {
	return Config{
		Rows:             20,
		Cols:             20,
		FrameRate:        16 * time.Millisecond,
		FramesPerCycle:   20,
		MaxGenerations:   1000,
		Pattern:          "launcher",
		OriginX:          9,
		OriginY:          9,
		RandomDensity:    0,
		Seed:             1,
		UseParallel:      false,
		Workers:          0, // one per CPU
		HistorySize:      5,
		StopOnStagnation: false,
	}
}

// LoadConfig loads configuration from JSON file, on top of the defaults
func LoadConfig(filename string) (Config, error) {
	config := DefaultConfig()

	data, err := os.ReadFile(filename)
	if err != nil {
		return config, errors.Wrapf(err, "[LoadConfig] failed to read file: %+v", filename)
	}

	if err = json.Unmarshal(data, &config); err != nil {
		return config, errors.Wrapf(err, "[LoadConfig] failed to unmarshal data from file: %+v", filename)
	}

	return config, nil
}

// Validate checks the values that would otherwise fail later in the loop
func (c Config) Validate() error {
	switch {
	case c.Rows < 0 || c.Cols < 0:
		return errors.Errorf("[Validate] negative dimensions %dx%d", c.Rows, c.Cols)
	case c.FrameRate <= 0:
		return errors.Errorf("[Validate] frame_rate must be positive, got %v", c.FrameRate)
	case c.FramesPerCycle <= 0:
		return errors.Errorf("[Validate] frames_per_cycle must be positive, got %d", c.FramesPerCycle)
	case c.RandomDensity < 0 || c.RandomDensity > 1:
		return errors.Errorf("[Validate] random_density must be within [0, 1], got %v", c.RandomDensity)
	case c.HistorySize <= 0:
		return errors.Errorf("[Validate] history_size must be positive, got %d", c.HistorySize)
	}
	if c.Pattern != "" {
		if _, err := model.PatternByName(c.Pattern); err != nil {
			return errors.Wrapf(err, "[Validate] pattern must be one of %v", model.PatternNames())
		}
	}
	return nil
}
