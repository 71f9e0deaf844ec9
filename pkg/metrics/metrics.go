package metrics

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

const (
	towerPlanner = "tower_planner"

	calculationsTotal = "calculations_total"
	exportsTotal      = "exports_total"
	avgRetrievalTime  = "average_retrieval_time_seconds"

	// Labels
	modelLabel       = "model"
	towerTypeLabel   = "tower_type"
	formatLabel      = "format"
	exportStateLabel = "state"

	ExportStateSuccess = "success"
	ExportStateFailed  = "failed"
)

/**
* Metrics definition
**/
var calculationsTotalMetric = prometheus.NewCounterVec(
	prometheus.CounterOpts{
		Subsystem: towerPlanner,
		Name:      calculationsTotal,
		Help:      "number of retrieval estimations computed",
	},
	[]string{modelLabel, towerTypeLabel},
)

var exportsTotalMetric = prometheus.NewCounterVec(
	prometheus.CounterOpts{
		Subsystem: towerPlanner,
		Name:      exportsTotal,
		Help:      "number of result exports by format and outcome",
	},
	[]string{formatLabel, exportStateLabel},
)

var avgRetrievalTimeMetric = prometheus.NewHistogramVec(
	prometheus.HistogramOpts{
		Subsystem: towerPlanner,
		Name:      avgRetrievalTime,
		Help:      "distribution of estimated average retrieval time per car",
		Buckets:   []float64{60, 90, 120, 180, 240, 300, 450, 600},
	},
	[]string{modelLabel},
)

func IncreaseCalculationsTotalMetric(model, towerType string) {
	calculationsTotalMetric.With(prometheus.Labels{
		modelLabel:     model,
		towerTypeLabel: towerType,
	}).Inc()
}

func IncreaseExportsTotalMetric(format, state string) {
	exportsTotalMetric.With(prometheus.Labels{
		formatLabel:      format,
		exportStateLabel: state,
	}).Inc()
}

func ObserveAverageRetrievalTime(model string, seconds float64) {
	avgRetrievalTimeMetric.With(prometheus.Labels{modelLabel: model}).Observe(seconds)
}

// PrometheusMetricsHandler serves the default registry.
type PrometheusMetricsHandler struct {
	gatherer prometheus.Gatherer
}

func NewPrometheusMetricsHandler() *PrometheusMetricsHandler {
	return &PrometheusMetricsHandler{gatherer: prometheus.DefaultGatherer}
}

func (h *PrometheusMetricsHandler) Handler() http.Handler {
	return promhttp.HandlerFor(h.gatherer, promhttp.HandlerOpts{})
}

func init() {
	registerMetrics()
}

func registerMetrics() {
	prometheus.MustRegister(calculationsTotalMetric)
	prometheus.MustRegister(exportsTotalMetric)
	prometheus.MustRegister(avgRetrievalTimeMetric)
}
