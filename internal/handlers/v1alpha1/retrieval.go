package v1alpha1

import (
	"errors"
	"fmt"
	"io"
	"net/http"

	"github.com/go-chi/render"

	"github.com/PratikS7412/Tower-Retrival-Time/internal/estimation/params"
	"github.com/PratikS7412/Tower-Retrival-Time/internal/handlers/v1alpha1/mappers"
	"github.com/PratikS7412/Tower-Retrival-Time/internal/service"
	"github.com/PratikS7412/Tower-Retrival-Time/pkg/log"
)

// (POST /api/v1/retrieval-estimation)
func (h *ServiceHandler) CalculateRetrievalEstimation(w http.ResponseWriter, r *http.Request) {
	logger := log.NewDebugLogger("retrieval_handler").
		WithContext(r.Context()).
		Operation("calculate_retrieval_estimation").
		WithString("model", r.URL.Query().Get("model")).
		Build()

	query := estimationQuery{Model: r.URL.Query().Get("model")}
	if err := h.validator.Struct(query); err != nil {
		logger.Error(err).Log()
		replyError(w, r, http.StatusBadRequest, err.Error())
		return
	}

	raw, err := decodeBody(r)
	if err != nil {
		logger.Error(err).Log()
		replyError(w, r, http.StatusBadRequest, err.Error())
		return
	}
	logger.Step("decode_body").WithInt("field_count", len(raw)).Log()

	result := h.retrievalSrv.CalculateWithModel(r.Context(), raw, h.model(query.Model))

	logger.Success().
		WithFloat("avg_time", result.Metrics.AvgTime).
		Log()

	render.Status(r, http.StatusOK)
	render.JSON(w, r, result)
}

// (POST /api/v1/retrieval-estimation/export)
func (h *ServiceHandler) ExportRetrievalEstimation(w http.ResponseWriter, r *http.Request) {
	logger := log.NewDebugLogger("retrieval_handler").
		WithContext(r.Context()).
		Operation("export_retrieval_estimation").
		WithString("format", r.URL.Query().Get("format")).
		Build()

	query := exportQuery{
		Model:  r.URL.Query().Get("model"),
		Format: r.URL.Query().Get("format"),
	}
	if err := h.validator.Struct(query); err != nil {
		logger.Error(err).Log()
		replyError(w, r, http.StatusBadRequest, err.Error())
		return
	}

	format, err := h.reportSrv.ParseFormat(query.Format)
	if err != nil {
		logger.Error(err).Log()
		replyError(w, r, http.StatusBadRequest, err.Error())
		return
	}

	raw, err := decodeBody(r)
	if err != nil {
		logger.Error(err).Log()
		replyError(w, r, http.StatusBadRequest, err.Error())
		return
	}

	result := h.retrievalSrv.CalculateWithModel(r.Context(), raw, h.model(query.Model))

	report, err := h.reportSrv.Export(r.Context(), result, format)
	if err != nil {
		logger.Error(err).Log()
		var unsupported *service.ErrUnsupportedFormat
		if errors.As(err, &unsupported) {
			replyError(w, r, http.StatusBadRequest, err.Error())
			return
		}
		replyError(w, r, http.StatusInternalServerError, "failed to export retrieval estimation")
		return
	}

	logger.Success().
		WithString("file_name", report.FileName).
		WithInt("size_bytes", len(report.Content)).
		Log()

	w.Header().Set("Content-Type", report.ContentType)
	w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=%q", report.FileName))
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write(report.Content)
}

// decodeBody reads a JSON object of raw fields. An empty body means every
// field takes its default.
func decodeBody(r *http.Request) (params.Raw, error) {
	var body map[string]interface{}
	if err := render.DecodeJSON(r.Body, &body); err != nil {
		if errors.Is(err, io.EOF) {
			return params.Raw{}, nil
		}
		return nil, fmt.Errorf("invalid request body: %w", err)
	}
	return mappers.BodyToRaw(body), nil
}
