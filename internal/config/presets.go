package config

var Presets = map[string]map[string]*Config{
	"simple": {
		"step": {
			Motif: "simple", Rule: "logic", Steps: 200, Dt: 1.0,
			Pulse:  PulseConfig{On: 20, Off: 160, Value: 1.0},
			Params: RuleParams{Beta: 1.0, K: 0.5, N: 2.0, Alpha: 0.1},
		},
		"graded": {
			Motif: "simple", Rule: "hill", Steps: 200, Dt: 1.0,
			Pulse:  PulseConfig{On: 20, Off: 160, Value: 1.0},
			Params: RuleParams{Beta: 1.0, K: 0.5, N: 1.0, Alpha: 0.1},
		},
		"cooperative": {
			Motif: "simple", Rule: "hill", Steps: 200, Dt: 1.0,
			Pulse:  PulseConfig{On: 20, Off: 160, Value: 1.0},
			Params: RuleParams{Beta: 1.0, K: 0.5, N: 4.0, Alpha: 0.1},
		},
		"noisy": {
			Motif: "simple", Rule: "logic", Steps: 200, Dt: 1.0, Seed: 42,
			NoiseSigma: 0.2,
			Pulse:      PulseConfig{On: 20, Off: 160, Value: 1.0},
			Params:     RuleParams{Beta: 1.0, K: 0.5, Alpha: 0.1},
		},
	},
	"cascade": {
		"delay": {
			Motif: "cascade", Rule: "logic", Steps: 300, Dt: 1.0,
			Pulse: PulseConfig{On: 20, Off: 220, Value: 1.0},
			Params: RuleParams{
				BetaY: 1.0, Kxy: 0.5, AlphaY: 0.1,
				BetaZ: 1.0, Kyz: 5.0, AlphaZ: 0.1,
			},
		},
	},
	"cffl": {
		"filter": {
			// Pulse shorter than the Y turn-on delay: Z never fires.
			Motif: "cffl", Rule: "logic", Steps: 300, Dt: 1.0,
			Pulse: PulseConfig{On: 20, Off: 25, Value: 1.0},
			Params: RuleParams{
				BetaY: 1.0, Kxy: 0.5, AlphaY: 0.1,
				BetaZ: 1.0, Kxz: 0.5, Kyz: 5.0, AlphaZ: 0.1,
			},
		},
		"persistent": {
			Motif: "cffl", Rule: "logic", Steps: 300, Dt: 1.0,
			Pulse: PulseConfig{On: 20, Off: 220, Value: 1.0},
			Params: RuleParams{
				BetaY: 1.0, Kxy: 0.5, AlphaY: 0.1,
				BetaZ: 1.0, Kxz: 0.5, Kyz: 5.0, AlphaZ: 0.1,
			},
		},
	},
	"iffl": {
		"pulse": {
			Motif: "iffl", Rule: "logic", Steps: 300, Dt: 1.0,
			Pulse: PulseConfig{On: 20, Off: 280, Value: 1.0},
			Params: RuleParams{
				BetaY: 1.0, Kxy: 0.5, AlphaY: 0.1,
				Beta1: 1.0, Beta2: 0.1, Kxz: 0.5, Kyz: 5.0, AlphaZ: 0.1,
			},
		},
	},
}

func GetPreset(motif, preset string) *Config {
	motifPresets, ok := Presets[motif]
	if !ok {
		return nil
	}
	cfg, ok := motifPresets[preset]
	if !ok {
		return nil
	}
	return cfg
}

func ListPresets(motif string) []string {
	motifPresets, ok := Presets[motif]
	if !ok {
		return nil
	}
	names := make([]string, 0, len(motifPresets))
	for name := range motifPresets {
		names = append(names, name)
	}
	return names
}
