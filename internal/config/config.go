package config

import (
	"os"

	"gopkg.in/yaml.v3"
)

const (
	DefaultSteps      = 200
	DefaultDt         = 1.0
	DefaultBeta       = 1.0
	DefaultK          = 0.5
	DefaultN          = 2.0
	DefaultAlpha      = 0.1
	DefaultPulseOn    = 20
	DefaultPulseOff   = 120
	DefaultPulseValue = 1.0
)

type Config struct {
	Motif      string      `yaml:"motif"`
	Rule       string      `yaml:"rule"`
	Steps      int         `yaml:"steps"`
	Dt         float64     `yaml:"dt"`
	Seed       int64       `yaml:"seed"`
	NoiseSigma float64     `yaml:"noise_sigma"`
	Pulse      PulseConfig `yaml:"pulse"`
	Params     RuleParams  `yaml:"params"`
}

type PulseConfig struct {
	On    int     `yaml:"on"`
	Off   int     `yaml:"off"`
	Value float64 `yaml:"value"`
}

// RuleParams carries the union of motif parameters; each motif reads the
// fields it understands.
type RuleParams struct {
	Beta   float64 `yaml:"beta"`
	K      float64 `yaml:"k"`
	N      float64 `yaml:"n"`
	Alpha  float64 `yaml:"alpha"`
	BetaY  float64 `yaml:"beta_y"`
	Kxy    float64 `yaml:"k_xy"`
	AlphaY float64 `yaml:"alpha_y"`
	BetaZ  float64 `yaml:"beta_z"`
	Kxz    float64 `yaml:"k_xz"`
	Kyz    float64 `yaml:"k_yz"`
	AlphaZ float64 `yaml:"alpha_z"`
	Beta1  float64 `yaml:"beta_1"`
	Beta2  float64 `yaml:"beta_2"`
}

func DefaultConfig() *Config {
	return &Config{
		Motif: "simple",
		Rule:  "logic",
		Steps: DefaultSteps,
		Dt:    DefaultDt,
		Pulse: PulseConfig{
			On:    DefaultPulseOn,
			Off:   DefaultPulseOff,
			Value: DefaultPulseValue,
		},
		Params: RuleParams{
			Beta:   DefaultBeta,
			K:      DefaultK,
			N:      DefaultN,
			Alpha:  DefaultAlpha,
			BetaY:  DefaultBeta,
			Kxy:    DefaultK,
			AlphaY: DefaultAlpha,
			BetaZ:  DefaultBeta,
			Kxz:    DefaultK,
			Kyz:    5.0,
			AlphaZ: DefaultAlpha,
			Beta1:  DefaultBeta,
			Beta2:  0.1,
		},
	}
}

func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	cfg := DefaultConfig()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, err
	}
	return cfg, nil
}

func Save(path string, cfg *Config) error {
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0644)
}
