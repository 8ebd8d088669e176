package layout

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"

	"gopkg.in/yaml.v3"
)

// Config holds the spacing constants placement works from. The zero
// value is not usable; start from DefaultConfig.
type Config struct {
	// LayerSpacing separates consecutive layers along X.
	LayerSpacing int `yaml:"layerSpacing"`
	// RankSpacing separates consecutive ranks within a layer along Z.
	RankSpacing int `yaml:"rankSpacing"`
	// BaselineY is the Y coordinate every node starts on.
	BaselineY int `yaml:"baselineY"`
	// FanOutThreshold is the distinct-consumer count a node must exceed
	// before it gets lifted off the baseline.
	FanOutThreshold int `yaml:"fanOutThreshold"`
	// FanOutLift is how far above the baseline a high-fan-out node sits.
	FanOutLift int `yaml:"fanOutLift"`
}

// DefaultConfig returns the stock spacing values.
func DefaultConfig() Config {
	return Config{
		LayerSpacing:    16,
		RankSpacing:     12,
		BaselineY:       0,
		FanOutThreshold: 3,
		FanOutLift:      2,
	}
}

// LoadConfig reads a YAML config file and decodes it over the defaults,
// so a partial file overrides only the fields it names. Unknown keys
// are rejected.
func LoadConfig(path string) (Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Config{}, fmt.Errorf("layout config: %w", err)
	}

	cfg := DefaultConfig()
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(&cfg); err != nil && !errors.Is(err, io.EOF) {
		return Config{}, errorf("config %s: %v", path, err)
	}
	return cfg, nil
}

func (c Config) validate() error {
	if c.LayerSpacing < 1 {
		return errorf("layerSpacing %d is below 1; layers would overlap", c.LayerSpacing)
	}
	if c.RankSpacing < 1 {
		return errorf("rankSpacing %d is below 1; ranks would overlap", c.RankSpacing)
	}
	if c.FanOutThreshold < 1 {
		return errorf("fanOutThreshold %d is below 1", c.FanOutThreshold)
	}
	if c.FanOutLift < 0 {
		return errorf("fanOutLift %d is negative", c.FanOutLift)
	}
	return nil
}
