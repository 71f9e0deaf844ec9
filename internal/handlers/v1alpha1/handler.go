package v1alpha1

import (
	"context"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/render"
	"github.com/gorilla/websocket"

	api "github.com/PratikS7412/Tower-Retrival-Time/api/v1alpha1"
	"github.com/PratikS7412/Tower-Retrival-Time/internal/estimation/params"
	"github.com/PratikS7412/Tower-Retrival-Time/internal/estimation/retrieval"
	"github.com/PratikS7412/Tower-Retrival-Time/internal/handlers/validator"
	"github.com/PratikS7412/Tower-Retrival-Time/internal/service"
	"github.com/PratikS7412/Tower-Retrival-Time/pkg/requestid"
)

type ServiceHandler struct {
	retrievalSrv *service.RetrievalService
	reportSrv    *service.ReportService
	validator    *validator.Validator
	upgrader     websocket.Upgrader
}

// NewServiceHandler returns a handler serving the retrieval API. Websocket
// upgrades are accepted from allowedOrigins; "*" accepts any origin.
func NewServiceHandler(retrievalSrv *service.RetrievalService, reportSrv *service.ReportService, allowedOrigins []string) *ServiceHandler {
	v := validator.NewValidator()
	v.Register(validator.NewRetrievalValidationRules()...)

	return &ServiceHandler{
		retrievalSrv: retrievalSrv,
		reportSrv:    reportSrv,
		validator:    v,
		upgrader: websocket.Upgrader{
			ReadBufferSize:  1024,
			WriteBufferSize: 1024,
			CheckOrigin:     originChecker(allowedOrigins),
		},
	}
}

// Routes mounts every endpoint on router.
func (h *ServiceHandler) Routes(router chi.Router) {
	router.Get("/health", h.Health)
	router.Route("/api/v1", func(r chi.Router) {
		r.Post("/retrieval-estimation", h.CalculateRetrievalEstimation)
		r.Post("/retrieval-estimation/export", h.ExportRetrievalEstimation)
		r.Get("/tower-types", h.ListTowerTypes)
		r.Get("/ws", h.LiveSession)
	})
}

// (GET /health)
func (h *ServiceHandler) Health(w http.ResponseWriter, r *http.Request) {
	_ = render.Render(w, r, HealthReply{Status: api.HealthStatusOK})
}

type HealthReply api.Health

func (HealthReply) Render(w http.ResponseWriter, r *http.Request) error {
	return nil
}

type estimationQuery struct {
	Model string `validate:"height_model"`
}

type exportQuery struct {
	Model  string `validate:"height_model"`
	Format string `validate:"required,report_format"`
}

// model resolves the requested height model, falling back to the service default.
func (h *ServiceHandler) model(requested string) params.HeightModel {
	if m, err := params.ParseHeightModel(requested); err == nil {
		return m
	}
	return h.retrievalSrv.Model()
}

func replyError(w http.ResponseWriter, r *http.Request, status int, message string) {
	render.Status(r, status)
	render.JSON(w, r, errorBody(r.Context(), message))
}

func errorBody(ctx context.Context, message string) api.Error {
	e := api.Error{Message: message}
	if id := requestid.FromContext(ctx); id != "" {
		e.RequestId = &id
	}
	return e
}

// sessionCalculator pins a height model for the lifetime of a live session.
type sessionCalculator struct {
	srv   *service.RetrievalService
	model params.HeightModel
}

func (c sessionCalculator) Calculate(ctx context.Context, raw params.Raw) *retrieval.Result {
	return c.srv.CalculateWithModel(ctx, raw, c.model)
}

func originChecker(allowed []string) func(r *http.Request) bool {
	return func(r *http.Request) bool {
		origin := r.Header.Get("Origin")
		if origin == "" {
			return true
		}
		for _, a := range allowed {
			if a == "*" || a == origin {
				return true
			}
		}
		return false
	}
}
