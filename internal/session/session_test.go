package session_test

import (
	"context"
	"sync"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/PratikS7412/Tower-Retrival-Time/internal/estimation/params"
	"github.com/PratikS7412/Tower-Retrival-Time/internal/estimation/retrieval"
	"github.com/PratikS7412/Tower-Retrival-Time/internal/service"
	"github.com/PratikS7412/Tower-Retrival-Time/internal/session"
)

// countingCalculator records every computation it is asked for.
type countingCalculator struct {
	mu    sync.Mutex
	calls []params.Raw
	inner session.Calculator
}

func (c *countingCalculator) Calculate(ctx context.Context, raw params.Raw) *retrieval.Result {
	c.mu.Lock()
	c.calls = append(c.calls, raw)
	c.mu.Unlock()
	return c.inner.Calculate(ctx, raw)
}

var _ = Describe("Session", func() {
	var (
		calc *countingCalculator
		s    *session.Session
		ctx  context.Context
	)

	BeforeEach(func() {
		ctx = context.Background()
		calc = &countingCalculator{inner: service.NewRetrievalService(nil, params.HeightModelTiered)}
		s = session.New(ctx, calc)
	})

	It("computes once on start", func() {
		Expect(calc.calls).To(HaveLen(1))
		Expect(s.Result()).ToNot(BeNil())
		Expect(s.Fields()).To(BeEmpty())
		Expect(s.ID().String()).ToNot(BeEmpty())
	})

	It("recomputes after every change", func() {
		before := s.Result().Metrics.MaxTime
		res := s.Set(ctx, params.FieldLevelsAbove, "20")

		Expect(calc.calls).To(HaveLen(2))
		Expect(res).To(Equal(s.Result()))
		Expect(res.Metrics.MaxTime).To(BeNumerically(">", before))
		Expect(s.Fields()).To(HaveKeyWithValue(params.FieldLevelsAbove, "20"))
	})

	It("applies several changes with one recomputation", func() {
		s.Apply(ctx, params.Raw{
			params.FieldLevelsAbove: "12",
			params.FieldTowerType:   "3+3",
		})
		Expect(calc.calls).To(HaveLen(2))
		Expect(s.Result().Parameters.TowerType.String()).To(Equal("3+3"))
	})

	It("clears a field set to empty", func() {
		s.Set(ctx, params.FieldLiftingSpeed, "90")
		s.Set(ctx, params.FieldLiftingSpeed, "")
		Expect(s.Fields()).ToNot(HaveKey(params.FieldLiftingSpeed))
		Expect(s.Result().Parameters.LiftingSpeed).To(Equal(params.DefaultLiftingSpeed))
	})

	It("resets to defaults", func() {
		initial := *s.Result()
		s.Set(ctx, params.FieldNumberOfCars, "10")
		s.Reset(ctx)
		Expect(s.Fields()).To(BeEmpty())
		Expect(*s.Result()).To(Equal(initial))
	})

	It("returns copies of the fields", func() {
		s.Set(ctx, params.FieldDoorTime, "30")
		fields := s.Fields()
		fields[params.FieldDoorTime] = "99"
		Expect(s.Fields()).To(HaveKeyWithValue(params.FieldDoorTime, "30"))
	})

	It("serializes concurrent updates", func() {
		var wg sync.WaitGroup
		for i := 0; i < 20; i++ {
			wg.Add(1)
			go func() {
				defer wg.Done()
				defer GinkgoRecover()
				s.Set(ctx, params.FieldLevelsAbove, "5")
			}()
		}
		wg.Wait()
		Expect(calc.calls).To(HaveLen(21))
		Expect(s.Result().Parameters.Tiered.LevelsAbove).To(Equal(5))
	})
})
