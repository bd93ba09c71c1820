package metrics

import (
	"testing"

	dto "github.com/prometheus/client_model/go"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestManager_RegistersAndCounts(t *testing.T) {
	manager, registry := NewTestManagerAndRegistry()
	require.NotNil(t, manager)

	manager.CounterWorkoutsLogged.Inc()
	manager.CounterWorkoutsLogged.Inc()
	manager.CounterGoalsCreated.Inc()
	manager.GaugeLifeSignal.Set(1)

	families, err := registry.Gather()
	require.NoError(t, err)

	byName := map[string]*dto.MetricFamily{}
	for _, mf := range families {
		byName[mf.GetName()] = mf
	}

	workouts, ok := byName["fittrack_test_server_workouts_logged"]
	require.True(t, ok)
	assert.Equal(t, float64(2), workouts.GetMetric()[0].GetCounter().GetValue())

	goals, ok := byName["fittrack_test_server_goals_created"]
	require.True(t, ok)
	assert.Equal(t, float64(1), goals.GetMetric()[0].GetCounter().GetValue())

	life, ok := byName["fittrack_test_server_life_signal"]
	require.True(t, ok)
	assert.Equal(t, float64(1), life.GetMetric()[0].GetGauge().GetValue())
}
