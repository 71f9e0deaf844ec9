package retrieval

import (
	"encoding/json"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"

	"github.com/PratikS7412/Tower-Retrival-Time/internal/estimation/params"
)

func TestResultJSON_NonFiniteAsNull(t *testing.T) {
	core, logs := observer.New(zapcore.DPanicLevel)
	undo := zap.ReplaceGlobals(zap.New(core))
	defer undo()

	p := params.Normalize(params.Raw{
		params.FieldTraversingDistance1: "Infinity",
		params.FieldAboveHeight1:        "1e400",
		params.FieldLevelsAbove:         "3",
	}, params.HeightModelTiered)
	res := NewEstimator().Compute(p)
	require.True(t, math.IsInf(res.Metrics.MaxTime, 1))
	assert.Equal(t, 1, logs.FilterMessage("non-finite retrieval metrics").Len())

	out, err := json.Marshal(res)
	require.NoError(t, err)

	var doc map[string]map[string]interface{}
	require.NoError(t, json.Unmarshal(out, &doc))
	assert.Nil(t, doc["metrics"]["minTime"])
	assert.Nil(t, doc["metrics"]["maxTime"])
	assert.InDelta(t, 1.2, doc["metrics"]["complexityFactor"], 1e-9)
	assert.Nil(t, doc["parameters"]["traversingDistance1"])
	assert.Equal(t, 2370.0, doc["parameters"]["traversingDistance2"])
	assert.Nil(t, doc["levels"]["totalHeight"])
	assert.Nil(t, doc["breakdown"]["avgTraversingTime"])
	efficiency := doc["performance"]["efficiency"].(map[string]interface{})
	assert.Equal(t, "poor", efficiency["class"])

	tiered := doc["parameters"]["tiered"].(map[string]interface{})
	assert.Nil(t, tiered["aboveHeight1"])
	assert.Equal(t, 3.0, tiered["levelsAbove"])
}

func TestResultJSON_FiniteRoundTrip(t *testing.T) {
	t.Parallel()
	res := NewEstimator().Compute(params.Normalize(params.Raw{params.FieldLevelsAbove: "10"}, params.HeightModelTiered))

	out, err := json.Marshal(res)
	require.NoError(t, err)

	var back Result
	require.NoError(t, json.Unmarshal(out, &back))
	assert.Equal(t, res.Metrics, back.Metrics)
	assert.Equal(t, res.Levels, back.Levels)
	assert.Equal(t, res.Parameters, back.Parameters)
}
