package app

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"adhtc/adapters/memory"
	"adhtc/domain/analysis"
	"adhtc/domain/core"
)

func TestAnalysisServiceRunDefaults(t *testing.T) {
	history := memory.NewHistoryRepository(10)
	service := NewAnalysisService(history)

	report, err := service.Run(context.Background(), analysis.DefaultInputSet())
	require.NoError(t, err)
	require.NotNil(t, report)

	assert.NotEmpty(t, report.AnalysisID)
	assert.Greater(t, report.Summary.TotalPowerKW, 0.0)
	assert.Len(t, report.StateTables, 2)

	// The run summary is persisted
	records, err := service.History(context.Background(), 10)
	require.NoError(t, err)
	require.Len(t, records, 1)
	assert.Equal(t, report.AnalysisID, records[0].ID)
	assert.Equal(t, report.Summary.TotalPowerKW, records[0].TotalPowerKW)
	assert.Equal(t, report.HTC.HydrocharKgh, records[0].HydrocharKgh)
}

func TestAnalysisServiceDeterminism(t *testing.T) {
	service := NewAnalysisService(nil)

	first, err := service.Run(context.Background(), analysis.DefaultInputSet())
	require.NoError(t, err)
	second, err := service.Run(context.Background(), analysis.DefaultInputSet())
	require.NoError(t, err)

	// Same physics, fresh identity
	assert.NotEqual(t, first.AnalysisID, second.AnalysisID)
	assert.Equal(t, first.Summary, second.Summary)
	assert.Equal(t, first.Brayton.Metrics, second.Brayton.Metrics)
	assert.Equal(t, first.Rankine.Metrics, second.Rankine.Metrics)
	assert.Equal(t, *first.AD, *second.AD)
	assert.Equal(t, *first.HTC, *second.HTC)
}

func TestAnalysisServiceInvalidInputAborts(t *testing.T) {
	history := memory.NewHistoryRepository(10)
	service := NewAnalysisService(history)

	bad := analysis.DefaultInputSet()
	bad.PressureRatio = 0.5

	report, err := service.Run(context.Background(), bad)
	require.Error(t, err)
	assert.True(t, core.IsInvalidInput(err))
	assert.Nil(t, report)

	// Nothing was persisted for the failed run
	records, err := service.History(context.Background(), 10)
	require.NoError(t, err)
	assert.Empty(t, records)
}

func TestAnalysisServiceNilHistory(t *testing.T) {
	service := NewAnalysisService(nil)

	_, err := service.Run(context.Background(), analysis.DefaultInputSet())
	require.NoError(t, err)

	records, err := service.History(context.Background(), 10)
	require.NoError(t, err)
	assert.Nil(t, records)
}
