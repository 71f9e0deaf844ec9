package service_test

import (
	"context"
	"errors"
	"strings"
	"time"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/PratikS7412/Tower-Retrival-Time/internal/estimation/params"
	"github.com/PratikS7412/Tower-Retrival-Time/internal/service"
	"github.com/PratikS7412/Tower-Retrival-Time/internal/service/report"
)

var _ = Describe("ReportService", func() {
	var (
		reports *service.ReportService
		calc    *service.RetrievalService
		ctx     context.Context
	)

	BeforeEach(func() {
		clock := func() time.Time { return time.Date(2026, 1, 2, 3, 4, 5, 0, time.UTC) }
		reports = service.NewReportService(report.WithClock(clock))
		calc = service.NewRetrievalService(nil, params.HeightModelTiered)
		ctx = context.Background()
	})

	DescribeTable("exports every supported format",
		func(format service.ReportFormat, contentType string) {
			res := calc.Calculate(ctx, params.Raw{params.FieldLevelsAbove: "8"})
			out, err := reports.Export(ctx, res, format)
			Expect(err).ToNot(HaveOccurred())
			Expect(out.FileName).To(Equal("tower-parking-enhanced-2026-01-02T03-04-05." + string(format)))
			Expect(out.ContentType).To(Equal(contentType))
			Expect(out.Content).ToNot(BeEmpty())
		},
		Entry("csv", service.ReportFormatCSV, "text/csv"),
		Entry("xlsx", service.ReportFormatXLSX, "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"),
		Entry("html", service.ReportFormatHTML, "text/html; charset=utf-8"),
		Entry("json", service.ReportFormatJSON, "application/json"),
		Entry("yaml", service.ReportFormatYAML, "application/yaml"),
	)

	It("rejects unknown formats", func() {
		res := calc.Calculate(ctx, params.Raw{})
		_, err := reports.Export(ctx, res, "pdf")
		Expect(err).To(HaveOccurred())
		var unsupported *service.ErrUnsupportedFormat
		Expect(errors.As(err, &unsupported)).To(BeTrue())
		Expect(err.Error()).To(ContainSubstring("csv, xlsx, html, json, yaml"))

		_, err = reports.ParseFormat("pdf")
		Expect(errors.As(err, &unsupported)).To(BeTrue())
	})

	It("parses supported formats", func() {
		f, err := reports.ParseFormat("csv")
		Expect(err).ToNot(HaveOccurred())
		Expect(f).To(Equal(service.ReportFormatCSV))
	})

	It("fails without a result", func() {
		_, err := reports.Export(ctx, nil, service.ReportFormatCSV)
		var noResult *service.ErrNoResult
		Expect(errors.As(err, &noResult)).To(BeTrue())
	})

	It("leaves the result untouched", func() {
		res := calc.Calculate(ctx, params.Raw{})
		before := *res
		out, err := reports.Export(ctx, res, service.ReportFormatCSV)
		Expect(err).ToNot(HaveOccurred())
		Expect(strings.Count(string(out.Content), "\n")).To(BeNumerically(">", 10))
		Expect(*res).To(Equal(before))
	})
})
