package app

import (
	"context"

	"adhtc/domain/analysis"
	"adhtc/domain/core"
	"adhtc/domain/thermo"
	"adhtc/internal"

	"github.com/montanaflynn/stats"
	"golang.org/x/sync/errgroup"
	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/stat"
)

// SweepService evaluates the gas-turbine cycle across a pressure-ratio grid
// at otherwise fixed inputs, for the efficiency-curve chart. Each grid point
// is an independent single-shot evaluation; there is no search or objective.
type SweepService struct {
	log         *internal.Logger
	points      int
	concurrency int
	braytonCfg  thermo.BraytonConfig
}

// NewSweepService creates a sweep service with the given grid size and
// worker limit.
func NewSweepService(points, concurrency int) *SweepService {
	if points < 2 {
		points = 2
	}
	if concurrency < 1 {
		concurrency = 1
	}
	return &SweepService{
		log:         internal.DefaultLogger,
		points:      points,
		concurrency: concurrency,
		braytonCfg:  thermo.DefaultBraytonConfig(),
	}
}

// SweepPoint is one evaluated grid point.
type SweepPoint struct {
	PressureRatio     float64 `json:"pressure_ratio"`
	ThermalEfficiency float64 `json:"thermal_efficiency"`
	NetWorkKJKg       float64 `json:"net_work_kj_kg"`
}

// SweepSummary aggregates the efficiency curve.
type SweepSummary struct {
	MeanEfficiency float64 `json:"mean_efficiency"`
	MinEfficiency  float64 `json:"min_efficiency"`
	MaxEfficiency  float64 `json:"max_efficiency"`
	P90Efficiency  float64 `json:"p90_efficiency"`
	// Pearson correlation between pressure ratio and efficiency over the
	// swept range; sign flips once the optimum pressure ratio is inside it.
	EffPRCorrelation float64 `json:"eff_pr_correlation"`
}

// SweepResult holds the evaluated curve in grid order plus its summary.
type SweepResult struct {
	Points  []SweepPoint `json:"points"`
	Summary SweepSummary `json:"summary"`
}

// EfficiencyCurve sweeps the pressure ratio from minPR to maxPR holding the
// other inputs fixed. Grid points are evaluated concurrently; the result
// order is the grid order regardless of completion order.
func (s *SweepService) EfficiencyCurve(ctx context.Context, base analysis.InputSet, minPR, maxPR float64) (*SweepResult, error) {
	if minPR <= 1 {
		return nil, core.NewFieldRangeError("min_pressure_ratio", minPR, "(1, inf)")
	}
	if maxPR <= minPR {
		return nil, core.NewInvalidInputError("max_pressure_ratio", "must exceed min_pressure_ratio")
	}

	grid := make([]float64, s.points)
	floats.Span(grid, minPR, maxPR)

	points := make([]SweepPoint, s.points)
	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(s.concurrency)

	for i, pr := range grid {
		i, pr := i, pr
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			result, err := thermo.ComputeBrayton(thermo.BraytonInput{
				PressureRatio:    pr,
				CompressorInletK: base.AmbientTempK,
				TurbineInletK:    base.TurbineInletTempK,
				CompressorEff:    base.CompressorEff,
				TurbineEff:       base.TurbineEff,
			}, s.braytonCfg)
			if err != nil {
				return err
			}
			points[i] = SweepPoint{
				PressureRatio:     pr,
				ThermalEfficiency: result.Metrics.ThermalEfficiency,
				NetWorkKJKg:       result.Metrics.NetWork,
			}
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	// Per-point dump only at debug level
	if s.log.GetLevel() >= internal.LogLevelDebug {
		for _, p := range points {
			s.log.Debug("sweep point rp=%.2f eta=%.4f w_net=%.2f", p.PressureRatio, p.ThermalEfficiency, p.NetWorkKJKg)
		}
	}

	effs := make([]float64, len(points))
	for i, p := range points {
		effs[i] = p.ThermalEfficiency
	}

	mean, _ := stats.Mean(effs)
	minEff, _ := stats.Min(effs)
	maxEff, _ := stats.Max(effs)
	p90, _ := stats.Percentile(effs, 90)

	return &SweepResult{
		Points: points,
		Summary: SweepSummary{
			MeanEfficiency:   mean,
			MinEfficiency:    minEff,
			MaxEfficiency:    maxEff,
			P90Efficiency:    p90,
			EffPRCorrelation: stat.Correlation(grid, effs, nil),
		},
	}, nil
}
