package stagefit

import (
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
)

// SizeConfig is the JSON form of a Size.
type SizeConfig struct {
	Width  float64 `json:"width"`
	Height float64 `json:"height"`
}

// Size converts the config to a Size.
func (c SizeConfig) Size() Size {
	return Size{Width: c.Width, Height: c.Height}
}

// Config describes a design resolution and the policy that adapts it.
// Exactly one of Policy and FixedSize must be set.
//
//	{"design": {"width": 480, "height": 320}, "policy": "FIXED_HEIGHT"}
//	{"design": {"width": 320, "height": 480}, "fixedSize": {"width": 640, "height": 1280}}
type Config struct {
	Design    SizeConfig  `json:"design"`
	Policy    string      `json:"policy,omitempty"`
	FixedSize *SizeConfig `json:"fixedSize,omitempty"`
	Debug     bool        `json:"debug,omitempty"`
}

// LoadConfig parses and validates a JSON config.
func LoadConfig(data []byte) (*Config, error) {
	var cfg Config
	if err := json.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("parse stage config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("parse stage config: %w", err)
	}
	return &cfg, nil
}

// LoadConfigFS reads and parses the named config file from fsys.
func LoadConfigFS(fsys fs.FS, name string) (*Config, error) {
	data, err := fs.ReadFile(fsys, name)
	if err != nil {
		return nil, fmt.Errorf("failed to read %s: %w", name, err)
	}
	cfg, err := LoadConfig(data)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", name, err)
	}
	return cfg, nil
}

// Validate checks the design size and that exactly one policy form is set.
func (c *Config) Validate() error {
	if !c.Design.Size().Valid() {
		return fmt.Errorf("design %vx%v: %w", c.Design.Width, c.Design.Height, ErrInvalidDesignSize)
	}
	switch {
	case c.Policy != "" && c.FixedSize != nil:
		return errors.New("policy and fixedSize are mutually exclusive")
	case c.Policy == "" && c.FixedSize == nil:
		return fmt.Errorf("policy or fixedSize required: %w", ErrNoPolicy)
	}
	_, err := c.PolicySource()
	return err
}

// PolicySource returns the preset or fixed-size policy the config names.
func (c *Config) PolicySource() (PolicySource, error) {
	if c.FixedSize != nil {
		fixed, err := NewFixedSize(c.FixedSize.Width, c.FixedSize.Height)
		if err != nil {
			return nil, err
		}
		return NewResolutionPolicy(EqualToFrame{}, fixed), nil
	}
	return ParsePreset(c.Policy)
}

// Apply configures d: debug mode, then design size and policy.
func (c *Config) Apply(d *Delegate) error {
	src, err := c.PolicySource()
	if err != nil {
		return fmt.Errorf("apply stage config: %w", err)
	}
	d.SetDebugMode(c.Debug)
	return d.SetDesignSize(c.Design.Width, c.Design.Height, src)
}
