package app

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"adhtc/domain/analysis"
	"adhtc/domain/core"
)

func TestEfficiencyCurveGrid(t *testing.T) {
	service := NewSweepService(11, 4)

	result, err := service.EfficiencyCurve(context.Background(), analysis.DefaultInputSet(), 4, 25)
	require.NoError(t, err)
	require.Len(t, result.Points, 11)

	// Grid order regardless of completion order, endpoints included
	assert.Equal(t, 4.0, result.Points[0].PressureRatio)
	assert.Equal(t, 25.0, result.Points[len(result.Points)-1].PressureRatio)
	for i := 1; i < len(result.Points); i++ {
		assert.Greater(t, result.Points[i].PressureRatio, result.Points[i-1].PressureRatio)
	}

	for _, p := range result.Points {
		assert.Greater(t, p.ThermalEfficiency, 0.0, "PR %.2f", p.PressureRatio)
		assert.Less(t, p.ThermalEfficiency, 1.0, "PR %.2f", p.PressureRatio)
	}
}

func TestEfficiencyCurveSummary(t *testing.T) {
	service := NewSweepService(22, 2)

	result, err := service.EfficiencyCurve(context.Background(), analysis.DefaultInputSet(), 4, 25)
	require.NoError(t, err)

	s := result.Summary
	assert.LessOrEqual(t, s.MinEfficiency, s.MeanEfficiency)
	assert.LessOrEqual(t, s.MeanEfficiency, s.MaxEfficiency)
	assert.LessOrEqual(t, s.P90Efficiency, s.MaxEfficiency)
	assert.GreaterOrEqual(t, s.EffPRCorrelation, -1.0)
	assert.LessOrEqual(t, s.EffPRCorrelation, 1.0)
}

func TestEfficiencyCurveDeterminism(t *testing.T) {
	service := NewSweepService(16, 8)

	first, err := service.EfficiencyCurve(context.Background(), analysis.DefaultInputSet(), 4, 25)
	require.NoError(t, err)
	second, err := service.EfficiencyCurve(context.Background(), analysis.DefaultInputSet(), 4, 25)
	require.NoError(t, err)

	assert.Equal(t, first.Points, second.Points)
	assert.Equal(t, first.Summary, second.Summary)
}

func TestEfficiencyCurveBounds(t *testing.T) {
	service := NewSweepService(10, 2)

	_, err := service.EfficiencyCurve(context.Background(), analysis.DefaultInputSet(), 0.5, 25)
	require.Error(t, err)
	assert.True(t, core.IsInvalidInput(err))

	_, err = service.EfficiencyCurve(context.Background(), analysis.DefaultInputSet(), 10, 10)
	require.Error(t, err)
	assert.True(t, core.IsInvalidInput(err))
}

func TestEfficiencyCurveCancelledContext(t *testing.T) {
	service := NewSweepService(50, 1)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := service.EfficiencyCurve(ctx, analysis.DefaultInputSet(), 4, 25)
	require.Error(t, err)
	assert.ErrorIs(t, err, context.Canceled)
}

func TestNewSweepServiceClampsConfig(t *testing.T) {
	service := NewSweepService(0, 0)

	result, err := service.EfficiencyCurve(context.Background(), analysis.DefaultInputSet(), 4, 25)
	require.NoError(t, err)
	assert.GreaterOrEqual(t, len(result.Points), 2)
}
