package service

import (
	"context"

	"github.com/PratikS7412/Tower-Retrival-Time/internal/estimation/params"
	"github.com/PratikS7412/Tower-Retrival-Time/internal/estimation/retrieval"
	"github.com/PratikS7412/Tower-Retrival-Time/pkg/log"
	"github.com/PratikS7412/Tower-Retrival-Time/pkg/metrics"
)

// RetrievalService turns raw field mappings into retrieval estimates.
// It holds no per-call state and is safe for concurrent use.
type RetrievalService struct {
	estimator *retrieval.Estimator
	model     params.HeightModel
	logger    *log.StructuredLogger
}

// NewRetrievalService creates a RetrievalService using model unless a request overrides it.
func NewRetrievalService(estimator *retrieval.Estimator, model params.HeightModel) *RetrievalService {
	if estimator == nil {
		estimator = retrieval.NewEstimator()
	}
	return &RetrievalService{
		estimator: estimator,
		model:     model,
		logger:    log.NewDebugLogger("retrieval_service"),
	}
}

// Model returns the default height model.
func (s *RetrievalService) Model() params.HeightModel {
	return s.model
}

// Calculate normalizes raw and estimates it. Invalid input never fails: every
// unusable field falls back to its default.
func (s *RetrievalService) Calculate(ctx context.Context, raw params.Raw) *retrieval.Result {
	return s.CalculateWithModel(ctx, raw, s.model)
}

// CalculateWithModel is Calculate with an explicit default height model.
func (s *RetrievalService) CalculateWithModel(ctx context.Context, raw params.Raw, model params.HeightModel) *retrieval.Result {
	tracer := s.logger.WithContext(ctx).
		Operation("calculate_retrieval_time").
		WithString("default_model", string(model)).
		WithInt("field_count", len(raw)).
		Build()

	p := params.Normalize(raw, model)
	tracer.Step("normalized").
		WithString("model", string(p.Model)).
		WithString("tower_type", p.TowerType.String()).
		Log()

	result := s.estimator.Compute(p)

	metrics.IncreaseCalculationsTotalMetric(string(p.Model), p.TowerType.String())
	metrics.ObserveAverageRetrievalTime(string(p.Model), result.Metrics.AvgTime)

	tracer.Success().
		WithFloat("avg_time", result.Metrics.AvgTime).
		WithFloat("throughput_percent", result.Metrics.ThroughputPercent).
		Log()

	return &result
}
