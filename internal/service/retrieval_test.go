package service_test

import (
	"context"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/PratikS7412/Tower-Retrival-Time/internal/estimation/params"
	"github.com/PratikS7412/Tower-Retrival-Time/internal/estimation/tower"
	"github.com/PratikS7412/Tower-Retrival-Time/internal/service"
	"github.com/PratikS7412/Tower-Retrival-Time/pkg/requestid"
)

var _ = Describe("RetrievalService", func() {
	var (
		svc *service.RetrievalService
		ctx context.Context
	)

	BeforeEach(func() {
		svc = service.NewRetrievalService(nil, params.HeightModelTiered)
		ctx = requestid.ToContext(context.Background(), "test-request")
	})

	It("uses defaults for an empty mapping", func() {
		res := svc.Calculate(ctx, params.Raw{})
		Expect(res).ToNot(BeNil())
		Expect(res.Parameters.Model).To(Equal(params.HeightModelTiered))
		Expect(res.Parameters.TowerType).To(Equal(tower.Type1Plus1))
		Expect(res.Metrics.MinTime).To(BeNumerically("~", 97.5963636, 1e-6))
		Expect(res.Metrics.MaxTime).To(BeNumerically("~", 117.1156364, 1e-6))
	})

	It("absorbs invalid input", func() {
		res := svc.Calculate(ctx, params.Raw{
			params.FieldLiftingSpeed: "fast",
			params.FieldTowerType:    "7+7",
			params.FieldNumberOfCars: "",
		})
		Expect(res.Parameters.LiftingSpeed).To(Equal(params.DefaultLiftingSpeed))
		Expect(res.Parameters.TowerType).To(Equal(tower.Default))
		Expect(res.Parameters.NumberOfCars).To(Equal(params.DefaultNumberOfCars))
	})

	It("honours a per-request model", func() {
		res := svc.CalculateWithModel(ctx, params.Raw{}, params.HeightModelLinear)
		Expect(res.Levels.Model).To(Equal(params.HeightModelLinear))
		Expect(res.Levels.MaxLevel).To(BeNumerically("~", 52.95, 1e-9))

		res = svc.Calculate(ctx, params.Raw{params.FieldHeightModel: "linear"})
		Expect(res.Levels.Model).To(Equal(params.HeightModelLinear))
	})

	It("is idempotent", func() {
		raw := params.Raw{params.FieldLevelsAbove: "30", params.FieldTowerType: "3+3"}
		Expect(*svc.Calculate(ctx, raw)).To(Equal(*svc.Calculate(ctx, raw)))
	})

	It("exposes its default model", func() {
		Expect(svc.Model()).To(Equal(params.HeightModelTiered))
	})
})
