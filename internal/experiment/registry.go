package experiment

import (
	"fmt"

	"github.com/kmsahu/genesim/internal/config"
	"github.com/kmsahu/genesim/internal/grn"
	"github.com/kmsahu/genesim/internal/metrics"
	"github.com/kmsahu/genesim/internal/motif"
)

type Registry struct {
	motifs map[string]func(cfg *config.Config) motif.Motif
}

func NewRegistry() *Registry {
	r := &Registry{
		motifs: make(map[string]func(cfg *config.Config) motif.Motif),
	}

	r.motifs["simple"] = func(cfg *config.Config) motif.Motif {
		m := motif.NewSimpleRegulation()
		m.Kind = cfg.Rule
		m.Beta = cfg.Params.Beta
		m.K = cfg.Params.K
		m.N = cfg.Params.N
		m.Alpha = cfg.Params.Alpha
		return m
	}
	r.motifs["cascade"] = func(cfg *config.Config) motif.Motif {
		m := motif.NewCascade()
		m.BetaY = cfg.Params.BetaY
		m.Kxy = cfg.Params.Kxy
		m.AlphaY = cfg.Params.AlphaY
		m.BetaZ = cfg.Params.BetaZ
		m.Kyz = cfg.Params.Kyz
		m.AlphaZ = cfg.Params.AlphaZ
		return m
	}
	r.motifs["cffl"] = func(cfg *config.Config) motif.Motif {
		m := motif.NewCoherentFFL()
		m.BetaY = cfg.Params.BetaY
		m.Kxy = cfg.Params.Kxy
		m.AlphaY = cfg.Params.AlphaY
		m.BetaZ = cfg.Params.BetaZ
		m.Kxz = cfg.Params.Kxz
		m.Kyz = cfg.Params.Kyz
		m.AlphaZ = cfg.Params.AlphaZ
		return m
	}
	r.motifs["iffl"] = func(cfg *config.Config) motif.Motif {
		m := motif.NewIncoherentFFL()
		m.BetaY = cfg.Params.BetaY
		m.Kxy = cfg.Params.Kxy
		m.AlphaY = cfg.Params.AlphaY
		m.Beta1 = cfg.Params.Beta1
		m.Beta2 = cfg.Params.Beta2
		m.Kxz = cfg.Params.Kxz
		m.Kyz = cfg.Params.Kyz
		m.AlphaZ = cfg.Params.AlphaZ
		return m
	}

	return r
}

func (r *Registry) GetMotif(name string, cfg *config.Config) (motif.Motif, error) {
	fn, ok := r.motifs[name]
	if !ok {
		return nil, fmt.Errorf("unknown motif: %s", name)
	}
	return fn(cfg), nil
}

func (r *Registry) ListMotifs() []string {
	names := make([]string, 0, len(r.motifs))
	for name := range r.motifs {
		names = append(names, name)
	}
	return names
}

// DefaultMetrics returns steady-state and peak trackers for every gene of
// the motif, plus a rise-time tracker on the terminal gene at half its
// predicted steady state.
func (r *Registry) DefaultMetrics(motifName string, cfg *config.Config) []grn.Metric {
	switch motifName {
	case "simple":
		half := 0.0
		if cfg.Params.Alpha > 0 {
			half = cfg.Params.Beta / cfg.Params.Alpha / 2
		}
		return []grn.Metric{
			metrics.NewSteadyValue("steady_y", 0),
			metrics.NewPeak("peak_y", 0),
			metrics.NewRiseTime("rise_y", 0, half),
		}
	case "cascade", "cffl", "iffl":
		halfZ := 0.0
		betaZ := cfg.Params.BetaZ
		if motifName == "iffl" {
			betaZ = cfg.Params.Beta1
		}
		if cfg.Params.AlphaZ > 0 {
			halfZ = betaZ / cfg.Params.AlphaZ / 2
		}
		return []grn.Metric{
			metrics.NewSteadyValue("steady_y", 0),
			metrics.NewPeak("peak_y", 0),
			metrics.NewSteadyValue("steady_z", 1),
			metrics.NewPeak("peak_z", 1),
			metrics.NewRiseTime("rise_z", 1, halfZ),
		}
	default:
		return nil
	}
}
