package v1alpha1_test

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"time"

	"github.com/gorilla/websocket"
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	api "github.com/PratikS7412/Tower-Retrival-Time/api/v1alpha1"
	"github.com/PratikS7412/Tower-Retrival-Time/internal/estimation/params"
	"github.com/PratikS7412/Tower-Retrival-Time/internal/estimation/retrieval"
)

var _ = Describe("live session", func() {
	var (
		server *httptest.Server
		conn   *websocket.Conn
	)

	dial := func(query string, header http.Header) (*websocket.Conn, *http.Response, error) {
		url := "ws" + strings.TrimPrefix(server.URL, "http") + "/api/v1/ws" + query
		return websocket.DefaultDialer.Dial(url, header)
	}

	readResult := func() retrieval.Result {
		var res retrieval.Result
		Expect(conn.SetReadDeadline(time.Now().Add(5 * time.Second))).To(Succeed())
		_, data, err := conn.ReadMessage()
		Expect(err).ToNot(HaveOccurred())
		Expect(json.Unmarshal(data, &res)).To(Succeed())
		return res
	}

	readError := func() api.Error {
		var e api.Error
		Expect(conn.SetReadDeadline(time.Now().Add(5 * time.Second))).To(Succeed())
		_, data, err := conn.ReadMessage()
		Expect(err).ToNot(HaveOccurred())
		Expect(json.Unmarshal(data, &e)).To(Succeed())
		Expect(e.Message).ToNot(BeEmpty())
		return e
	}

	BeforeEach(func() {
		server = httptest.NewServer(newRouter())
		DeferCleanup(server.Close)

		var err error
		conn, _, err = dial("", nil)
		Expect(err).ToNot(HaveOccurred())
		DeferCleanup(conn.Close)
	})

	It("pushes the default result on connect", func() {
		res := readResult()
		Expect(res.Parameters.Model).To(Equal(params.HeightModelTiered))
		Expect(res.Parameters.NumberOfCars).To(Equal(params.DefaultNumberOfCars))
	})

	It("recomputes after a field change", func() {
		initial := readResult()

		Expect(conn.WriteJSON(api.SessionMessage{Field: params.FieldLevelsAbove, Value: "15"})).To(Succeed())
		updated := readResult()
		Expect(updated.Parameters.Tiered.LevelsAbove).To(Equal(15))
		Expect(updated.Metrics.MaxTime).To(BeNumerically(">", initial.Metrics.MaxTime))
	})

	It("applies a batch and resets", func() {
		initial := readResult()

		Expect(conn.WriteJSON(api.SessionMessage{Fields: map[string]interface{}{
			params.FieldTowerType:    "2+3",
			params.FieldNumberOfCars: 20,
		}})).To(Succeed())
		batch := readResult()
		Expect(batch.Parameters.TowerType.String()).To(Equal("2+3"))
		Expect(batch.Parameters.NumberOfCars).To(Equal(20))

		Expect(conn.WriteJSON(api.SessionMessage{Reset: true})).To(Succeed())
		reset := readResult()
		Expect(reset.Metrics).To(Equal(initial.Metrics))
	})

	It("rejects unknown fields and keeps the session", func() {
		readResult()

		Expect(conn.WriteJSON(api.SessionMessage{Field: "speed", Value: "3"})).To(Succeed())
		readError()

		Expect(conn.WriteMessage(websocket.TextMessage, []byte("not json"))).To(Succeed())
		readError()

		Expect(conn.WriteJSON(api.SessionMessage{})).To(Succeed())
		readError()

		Expect(conn.WriteJSON(api.SessionMessage{Field: params.FieldLevelsBelow, Value: "2"})).To(Succeed())
		Expect(readResult().Parameters.Tiered.LevelsBelow).To(Equal(2))
	})

	It("keeps the session open when a field becomes infinite", func() {
		readResult()

		Expect(conn.WriteJSON(api.SessionMessage{Field: params.FieldTraversingDistance1, Value: "Infinity"})).To(Succeed())
		Expect(conn.SetReadDeadline(time.Now().Add(5 * time.Second))).To(Succeed())
		_, data, err := conn.ReadMessage()
		Expect(err).ToNot(HaveOccurred())

		var res map[string]map[string]interface{}
		Expect(json.Unmarshal(data, &res)).To(Succeed())
		Expect(res["metrics"]).To(HaveKeyWithValue("maxTime", BeNil()))
		Expect(res["parameters"]).To(HaveKeyWithValue("traversingDistance1", BeNil()))

		Expect(conn.WriteJSON(api.SessionMessage{Field: params.FieldTraversingDistance1, Value: ""})).To(Succeed())
		Expect(readResult().Parameters.TraversingDistance1).To(Equal(params.DefaultTraversingDistance1))
	})

	It("starts a linear session from the model query", func() {
		linear, _, err := dial("?model=linear", nil)
		Expect(err).ToNot(HaveOccurred())
		defer linear.Close()

		Expect(linear.SetReadDeadline(time.Now().Add(5 * time.Second))).To(Succeed())
		var res retrieval.Result
		Expect(linear.ReadJSON(&res)).To(Succeed())
		Expect(res.Parameters.Model).To(Equal(params.HeightModelLinear))
	})

	It("refuses foreign origins when restricted", func() {
		restricted := httptest.NewServer(newRouter("https://tower.example.com"))
		defer restricted.Close()

		url := "ws" + strings.TrimPrefix(restricted.URL, "http") + "/api/v1/ws"
		_, resp, err := websocket.DefaultDialer.Dial(url, http.Header{"Origin": []string{"https://evil.example.com"}})
		Expect(err).To(HaveOccurred())
		Expect(resp).ToNot(BeNil())
		Expect(resp.StatusCode).To(Equal(http.StatusForbidden))
	})
})
