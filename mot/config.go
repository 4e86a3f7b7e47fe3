package mot

import (
	"encoding/json"
	"os"
	"path/filepath"

	"github.com/pkg/errors"
)

// ErrInvalidConfig is returned when tracker configuration has out of range values
var ErrInvalidConfig = errors.New("invalid tracker configuration")

// maxConfigSize is maximum size of configuration file in bytes
const maxConfigSize = 1 * 1024 * 1024

// TrackerConfig is JSON configuration of TTLTracker.
// Omitted fields keep their default values, so partial files are fine.
type TrackerConfig struct {
	AliveDuration  *int     `json:"alive_duration,omitempty"`
	MatchThreshold *float64 `json:"match_threshold,omitempty"`
	// Age unmatched tracks and spawn unmatched detections on every frame
	AgeAndSpawn *bool `json:"age_and_spawn,omitempty"`
}

func ptrInt(v int) *int             { return &v }
func ptrFloat64(v float64) *float64 { return &v }
func ptrBool(v bool) *bool          { return &v }

// DefaultTrackerConfig returns configuration matching NewDefaultTTLTracker
func DefaultTrackerConfig() *TrackerConfig {
	return &TrackerConfig{
		AliveDuration:  ptrInt(DefaultAliveDuration),
		MatchThreshold: ptrFloat64(DefaultMatchThreshold),
		AgeAndSpawn:    ptrBool(false),
	}
}

// LoadTrackerConfig reads configuration from JSON file on top of defaults
func LoadTrackerConfig(path string) (*TrackerConfig, error) {
	cleanPath := filepath.Clean(path)
	if ext := filepath.Ext(cleanPath); ext != ".json" {
		return nil, errors.Errorf("config file must have .json extension, got %q", ext)
	}
	fileInfo, err := os.Stat(cleanPath)
	if err != nil {
		return nil, errors.Wrap(err, "Can't stat config file")
	}
	if fileInfo.Size() > maxConfigSize {
		return nil, errors.Errorf("config file too large: %d bytes (max %d)", fileInfo.Size(), maxConfigSize)
	}
	data, err := os.ReadFile(cleanPath)
	if err != nil {
		return nil, errors.Wrap(err, "Can't read config file")
	}
	cfg := DefaultTrackerConfig()
	if err := json.Unmarshal(data, cfg); err != nil {
		return nil, errors.Wrapf(err, "Can't parse config file %s", cleanPath)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Validate checks ranges of set fields
func (cfg *TrackerConfig) Validate() error {
	if cfg == nil {
		return errors.Wrap(ErrInvalidConfig, "config is nil")
	}
	if cfg.AliveDuration != nil && *cfg.AliveDuration < 1 {
		return errors.Wrapf(ErrInvalidConfig, "alive_duration must be positive, got %d", *cfg.AliveDuration)
	}
	if cfg.MatchThreshold != nil && (*cfg.MatchThreshold < 0 || *cfg.MatchThreshold > 1) {
		return errors.Wrapf(ErrInvalidConfig, "match_threshold must be in [0, 1], got %f", *cfg.MatchThreshold)
	}
	return nil
}

// GetAliveDuration returns alive duration or default one
func (cfg *TrackerConfig) GetAliveDuration() int {
	if cfg.AliveDuration == nil {
		return DefaultAliveDuration
	}
	return *cfg.AliveDuration
}

// GetMatchThreshold returns match threshold or default one
func (cfg *TrackerConfig) GetMatchThreshold() float64 {
	if cfg.MatchThreshold == nil {
		return DefaultMatchThreshold
	}
	return *cfg.MatchThreshold
}

// GetAgeAndSpawn returns whether independent lifecycle is requested
func (cfg *TrackerConfig) GetAgeAndSpawn() bool {
	if cfg.AgeAndSpawn == nil {
		return false
	}
	return *cfg.AgeAndSpawn
}
