package v1alpha1_test

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"time"

	"github.com/go-chi/chi/v5"
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	api "github.com/PratikS7412/Tower-Retrival-Time/api/v1alpha1"
	"github.com/PratikS7412/Tower-Retrival-Time/internal/estimation/params"
	"github.com/PratikS7412/Tower-Retrival-Time/internal/estimation/retrieval"
	handlers "github.com/PratikS7412/Tower-Retrival-Time/internal/handlers/v1alpha1"
	"github.com/PratikS7412/Tower-Retrival-Time/internal/service"
	"github.com/PratikS7412/Tower-Retrival-Time/internal/service/report"
	"github.com/PratikS7412/Tower-Retrival-Time/pkg/middleware"
	"github.com/PratikS7412/Tower-Retrival-Time/pkg/requestid"
)

func newRouter(origins ...string) http.Handler {
	if len(origins) == 0 {
		origins = []string{"*"}
	}
	clock := func() time.Time { return time.Date(2026, 10, 19, 14, 30, 5, 0, time.UTC) }
	h := handlers.NewServiceHandler(
		service.NewRetrievalService(nil, params.HeightModelTiered),
		service.NewReportService(report.WithClock(clock)),
		origins,
	)
	router := chi.NewRouter()
	router.Use(middleware.RequestID)
	h.Routes(router)
	return router
}

func post(router http.Handler, target string, body string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodPost, target, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	rr := httptest.NewRecorder()
	router.ServeHTTP(rr, req)
	return rr
}

var _ = Describe("retrieval handlers", func() {
	var router http.Handler

	BeforeEach(func() {
		router = newRouter()
	})

	Context("health", func() {
		It("reports ok", func() {
			rr := httptest.NewRecorder()
			router.ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/health", nil))
			Expect(rr.Code).To(Equal(http.StatusOK))

			var body api.Health
			Expect(json.Unmarshal(rr.Body.Bytes(), &body)).To(Succeed())
			Expect(body.Status).To(Equal(api.HealthStatusOK))
		})
	})

	Context("calculate", func() {
		It("returns defaults for an empty body", func() {
			rr := post(router, "/api/v1/retrieval-estimation", "")
			Expect(rr.Code).To(Equal(http.StatusOK))

			var res retrieval.Result
			Expect(json.Unmarshal(rr.Body.Bytes(), &res)).To(Succeed())
			Expect(res.Parameters.Model).To(Equal(params.HeightModelTiered))
			Expect(res.Parameters.NumberOfCars).To(Equal(params.DefaultNumberOfCars))
			Expect(res.Metrics.AvgTime).To(BeNumerically(">", 0))
		})

		It("uses the raw field mapping", func() {
			rr := post(router, "/api/v1/retrieval-estimation", `{"levelsAbove":"10","towerType":"3+3","numberOfCars":35}`)
			Expect(rr.Code).To(Equal(http.StatusOK))

			var res retrieval.Result
			Expect(json.Unmarshal(rr.Body.Bytes(), &res)).To(Succeed())
			Expect(res.Parameters.Tiered.LevelsAbove).To(Equal(10))
			Expect(res.Parameters.TowerType.String()).To(Equal("3+3"))
			Expect(res.Parameters.NumberOfCars).To(Equal(35))
			Expect(res.Levels.Total).To(Equal(21000.0))
		})

		It("honors the model query", func() {
			rr := post(router, "/api/v1/retrieval-estimation?model=linear", `{}`)
			Expect(rr.Code).To(Equal(http.StatusOK))

			var res retrieval.Result
			Expect(json.Unmarshal(rr.Body.Bytes(), &res)).To(Succeed())
			Expect(res.Parameters.Model).To(Equal(params.HeightModelLinear))
			Expect(res.Levels.MaxLevel).To(BeNumerically("~", 52.95, 1e-9))
		})

		It("rejects an unknown model", func() {
			rr := post(router, "/api/v1/retrieval-estimation?model=stepped", `{}`)
			Expect(rr.Code).To(Equal(http.StatusBadRequest))
		})

		It("rejects malformed json with the request id", func() {
			req := httptest.NewRequest(http.MethodPost, "/api/v1/retrieval-estimation", strings.NewReader(`{"levelsAbove":`))
			req.Header.Set(requestid.Header, "req-123")
			rr := httptest.NewRecorder()
			router.ServeHTTP(rr, req)

			Expect(rr.Code).To(Equal(http.StatusBadRequest))
			var body api.Error
			Expect(json.Unmarshal(rr.Body.Bytes(), &body)).To(Succeed())
			Expect(body.Message).To(ContainSubstring("invalid request body"))
			Expect(body.RequestId).ToNot(BeNil())
			Expect(*body.RequestId).To(Equal("req-123"))
		})

		DescribeTable("answers with null metrics for unbounded inputs",
			func(body string) {
				rr := post(router, "/api/v1/retrieval-estimation", body)
				Expect(rr.Code).To(Equal(http.StatusOK))
				Expect(rr.Header().Get("Content-Type")).To(HavePrefix("application/json"))

				var res map[string]map[string]interface{}
				Expect(json.Unmarshal(rr.Body.Bytes(), &res)).To(Succeed())
				Expect(res["metrics"]).To(HaveKeyWithValue("maxTime", BeNil()))
				Expect(res["metrics"]).To(HaveKeyWithValue("avgTime", BeNil()))
				Expect(res["metrics"]).To(HaveKeyWithValue("complexityFactor", BeNumerically("~", 1.2)))
			},
			Entry("infinite distance", `{"traversingDistance1":"Infinity"}`),
			Entry("vanishing lifting speed", `{"liftingSpeed":"1e-320","levelsAbove":"10"}`),
		)

		It("echoes an infinite parameter as null", func() {
			rr := post(router, "/api/v1/retrieval-estimation", `{"traversingDistance1":"Infinity"}`)
			Expect(rr.Code).To(Equal(http.StatusOK))

			var res map[string]map[string]interface{}
			Expect(json.Unmarshal(rr.Body.Bytes(), &res)).To(Succeed())
			Expect(res["parameters"]).To(HaveKeyWithValue("traversingDistance1", BeNil()))
			Expect(res["parameters"]).To(HaveKeyWithValue("traversingDistance2", BeNumerically("==", params.DefaultTraversingDistance2)))
		})
	})

	Context("export", func() {
		It("downloads a csv file", func() {
			rr := post(router, "/api/v1/retrieval-estimation/export?format=csv", `{"levelsAbove":"10"}`)
			Expect(rr.Code).To(Equal(http.StatusOK))
			Expect(rr.Header().Get("Content-Type")).To(Equal("text/csv"))
			Expect(rr.Header().Get("Content-Disposition")).To(Equal(`attachment; filename="tower-parking-enhanced-2026-10-19T14-30-05.csv"`))
			Expect(rr.Body.String()).To(HavePrefix("Tower Parking"))
		})

		It("downloads an xlsx workbook", func() {
			rr := post(router, "/api/v1/retrieval-estimation/export?format=xlsx", ``)
			Expect(rr.Code).To(Equal(http.StatusOK))
			// xlsx files are zip archives
			Expect(bytes.HasPrefix(rr.Body.Bytes(), []byte("PK"))).To(BeTrue())
		})

		DescribeTable("exports an infinite distance in every format",
			func(format string) {
				rr := post(router, "/api/v1/retrieval-estimation/export?format="+format, `{"traversingDistance1":"Infinity"}`)
				Expect(rr.Code).To(Equal(http.StatusOK))
				Expect(rr.Body.Len()).To(BeNumerically(">", 0))
			},
			Entry("csv", "csv"),
			Entry("xlsx", "xlsx"),
			Entry("html", "html"),
			Entry("json", "json"),
			Entry("yaml", "yaml"),
		)

		It("requires a format", func() {
			rr := post(router, "/api/v1/retrieval-estimation/export", `{}`)
			Expect(rr.Code).To(Equal(http.StatusBadRequest))
		})

		It("rejects an unsupported format", func() {
			rr := post(router, "/api/v1/retrieval-estimation/export?format=pdf", `{}`)
			Expect(rr.Code).To(Equal(http.StatusBadRequest))

			var body api.Error
			Expect(json.Unmarshal(rr.Body.Bytes(), &body)).To(Succeed())
			Expect(body.Message).To(ContainSubstring("pdf"))
		})
	})

	Context("tower types", func() {
		It("lists every configuration", func() {
			rr := httptest.NewRecorder()
			router.ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/api/v1/tower-types", nil))
			Expect(rr.Code).To(Equal(http.StatusOK))

			var list api.TowerTypeList
			Expect(json.Unmarshal(rr.Body.Bytes(), &list)).To(Succeed())
			Expect(list).To(HaveLen(9))
			Expect(list[3].Code).To(Equal("1+1"))
			Expect(list[3].ComplexityFactor).To(BeNumerically("~", 1.2, 1e-12))
		})
	})
})
