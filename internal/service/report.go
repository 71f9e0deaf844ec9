package service

import (
	"context"
	"fmt"

	"github.com/PratikS7412/Tower-Retrival-Time/internal/estimation/retrieval"
	"github.com/PratikS7412/Tower-Retrival-Time/internal/service/report"
	"github.com/PratikS7412/Tower-Retrival-Time/internal/service/report/csv"
	"github.com/PratikS7412/Tower-Retrival-Time/internal/service/report/html"
	"github.com/PratikS7412/Tower-Retrival-Time/internal/service/report/structured"
	"github.com/PratikS7412/Tower-Retrival-Time/internal/service/report/types"
	"github.com/PratikS7412/Tower-Retrival-Time/internal/service/report/xlsx"
	"github.com/PratikS7412/Tower-Retrival-Time/pkg/log"
	"github.com/PratikS7412/Tower-Retrival-Time/pkg/metrics"
)

type ReportRenderer = types.ReportRenderer
type ReportFormat = types.ReportFormat
type ReportData = types.ReportData
type Report = types.Report

const (
	ReportFormatCSV  = types.ReportFormatCSV
	ReportFormatXLSX = types.ReportFormatXLSX
	ReportFormatHTML = types.ReportFormatHTML
	ReportFormatJSON = types.ReportFormatJSON
	ReportFormatYAML = types.ReportFormatYAML
)

type ReportService struct {
	processor types.ResultProcessor
	renderers map[types.ReportFormat]types.ReportRenderer
	logger    *log.StructuredLogger
}

func NewReportService(opts ...report.ProcessorOption) *ReportService {
	service := &ReportService{
		processor: report.NewStandardResultProcessor(opts...),
		renderers: make(map[types.ReportFormat]types.ReportRenderer),
		logger:    log.NewDebugLogger("report_service"),
	}

	for _, renderer := range []types.ReportRenderer{
		csv.NewRenderer(),
		xlsx.NewRenderer(),
		html.NewRenderer(),
		structured.NewJSONRenderer(),
		structured.NewYAMLRenderer(),
	} {
		service.renderers[renderer.SupportedFormat()] = renderer
	}

	return service
}

// ParseFormat checks that format has a renderer.
func (r *ReportService) ParseFormat(format string) (types.ReportFormat, error) {
	f := types.ReportFormat(format)
	if _, ok := r.renderers[f]; !ok {
		return "", NewErrUnsupportedFormat(format)
	}
	return f, nil
}

// Export renders result in the requested format. Failures are returned to the
// caller and never affect the result itself.
func (r *ReportService) Export(ctx context.Context, result *retrieval.Result, format types.ReportFormat) (*types.Report, error) {
	tracer := r.logger.WithContext(ctx).
		Operation("export_result").
		WithString("format", string(format)).
		Build()

	renderer, exists := r.renderers[format]
	if !exists {
		err := NewErrUnsupportedFormat(string(format))
		tracer.Error(err).Log()
		metrics.IncreaseExportsTotalMetric(string(format), metrics.ExportStateFailed)
		return nil, err
	}

	if result == nil {
		err := NewErrNoResult()
		tracer.Error(err).Log()
		metrics.IncreaseExportsTotalMetric(string(format), metrics.ExportStateFailed)
		return nil, err
	}

	reportData, err := r.processor.ProcessResult(result)
	if err != nil {
		tracer.Error(err).Log()
		metrics.IncreaseExportsTotalMetric(string(format), metrics.ExportStateFailed)
		return nil, fmt.Errorf("failed to process result: %w", err)
	}

	content, err := renderer.Render(reportData)
	if err != nil {
		tracer.Error(err).Log()
		metrics.IncreaseExportsTotalMetric(string(format), metrics.ExportStateFailed)
		return nil, fmt.Errorf("failed to render %s report: %w", format, err)
	}

	metrics.IncreaseExportsTotalMetric(string(format), metrics.ExportStateSuccess)
	tracer.Success().WithInt("bytes", len(content)).Log()

	return &types.Report{
		FileName:    report.FileName(reportData.Timestamps.FileStamp, format),
		Format:      format,
		ContentType: format.ContentType(),
		Content:     content,
	}, nil
}
