package report_test

import (
	"bytes"
	"encoding/json"
	"strings"
	"time"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
	"github.com/xuri/excelize/v2"
	"sigs.k8s.io/yaml"

	"github.com/PratikS7412/Tower-Retrival-Time/internal/estimation/params"
	"github.com/PratikS7412/Tower-Retrival-Time/internal/estimation/retrieval"
	"github.com/PratikS7412/Tower-Retrival-Time/internal/service/report"
	"github.com/PratikS7412/Tower-Retrival-Time/internal/service/report/csv"
	"github.com/PratikS7412/Tower-Retrival-Time/internal/service/report/html"
	"github.com/PratikS7412/Tower-Retrival-Time/internal/service/report/structured"
	"github.com/PratikS7412/Tower-Retrival-Time/internal/service/report/types"
	"github.com/PratikS7412/Tower-Retrival-Time/internal/service/report/xlsx"
)

var fixedClock = func() time.Time {
	return time.Date(2026, 10, 19, 14, 30, 5, 0, time.UTC)
}

func compute(raw params.Raw, model params.HeightModel) *retrieval.Result {
	res := retrieval.NewEstimator().Compute(params.Normalize(raw, model))
	return &res
}

func process(res *retrieval.Result) *types.ReportData {
	data, err := report.NewStandardResultProcessor(report.WithClock(fixedClock)).ProcessResult(res)
	Expect(err).ToNot(HaveOccurred())
	return data
}

var _ = Describe("StandardResultProcessor", func() {
	It("fails without a result", func() {
		_, err := report.NewStandardResultProcessor().ProcessResult(nil)
		Expect(err).To(HaveOccurred())
	})

	It("stamps the report with the clock", func() {
		data := process(compute(params.Raw{}, params.HeightModelTiered))
		Expect(data.Title).To(Equal(report.Title))
		Expect(data.Timestamps.Generated).To(Equal("2026-10-19"))
		Expect(data.Timestamps.GeneratedTime).To(Equal("14:30:05"))
		Expect(data.Timestamps.FileStamp).To(Equal("2026-10-19T14-30-05"))
	})

	It("builds timestamped file names", func() {
		Expect(report.FileName("2026-10-19T14-30-05", types.ReportFormatCSV)).
			To(Equal("tower-parking-enhanced-2026-10-19T14-30-05.csv"))
	})

	It("uses the tiered level block", func() {
		data := process(compute(params.Raw{params.FieldLevelsAbove: "10"}, params.HeightModelTiered))
		Expect(data.Sections).To(HaveLen(3))
		Expect(data.Sections[0].Title).To(Equal("Level Configuration"))
		Expect(data.Sections[0].Rows[0]).To(Equal(types.Row{Label: "Levels Above Ground", Value: "10"}))
		Expect(data.Sections[0].Rows[2]).To(Equal(types.Row{Label: "Above Ground Height 1", Value: "2100", Unit: "mm"}))
	})

	It("uses the linear level block", func() {
		data := process(compute(params.Raw{}, params.HeightModelLinear))
		Expect(data.Sections[0].Rows).To(ContainElement(types.Row{Label: "Number of Levels", Value: "25"}))
		Expect(data.Sections[0].Rows).To(ContainElement(types.Row{Label: "Maximum Level", Value: "52.95", Unit: "m"}))
	})
})

var _ = Describe("csv.Renderer", func() {
	It("writes the labelled rows with units", func() {
		out, err := csv.NewRenderer().Render(process(compute(params.Raw{}, params.HeightModelTiered)))
		Expect(err).ToNot(HaveOccurred())

		lines := strings.Split(strings.TrimSuffix(string(out), "\n"), "\n")
		Expect(lines[0]).To(Equal("Tower Parking System - Enhanced Time Retrieval Analysis"))
		Expect(lines[1]).To(Equal("Generated: 2026-10-19 14:30:05"))
		Expect(lines[2]).To(Equal(""))
		Expect(lines[3]).To(Equal("Level Configuration"))
		Expect(lines).To(ContainElements(
			"Levels Above Ground,0",
			"Enable Combinations,false",
			"Below Ground Height,2000,mm",
			"Lifting Speed,60,m/min",
			"Turn Table Speed,2.2,RPM",
			"Tower Type,1+1",
			"Number of Cars,70",
			"Minimum Retrieval Time,97.60,seconds",
			"Maximum Retrieval Time,117.10,seconds",
			"Average Retrieval Time,107.40,seconds",
			"Total Time for All Cars,2.10,hours",
			"System Throughput,33.50,cars/hour",
		))
		Expect(lines[len(lines)-1]).To(Equal("System Throughput,33.50,cars/hour"))
	})
})

var _ = Describe("xlsx.Renderer", func() {
	It("writes one sheet with numeric values", func() {
		out, err := xlsx.NewRenderer().Render(process(compute(params.Raw{}, params.HeightModelTiered)))
		Expect(err).ToNot(HaveOccurred())

		f, err := excelize.OpenReader(bytes.NewReader(out))
		Expect(err).ToNot(HaveOccurred())
		defer f.Close()

		Expect(f.GetSheetList()).To(Equal([]string{xlsx.SheetName}))
		rows, err := f.GetRows(xlsx.SheetName)
		Expect(err).ToNot(HaveOccurred())
		Expect(rows[0]).To(Equal([]string{report.Title}))
		Expect(rows).To(ContainElement([]string{"Lifting Speed", "60", "m/min"}))
	})
})

var _ = Describe("structured.Renderer", func() {
	var data *types.ReportData

	BeforeEach(func() {
		data = process(compute(params.Raw{params.FieldTowerType: "2+2"}, params.HeightModelTiered))
	})

	It("encodes json", func() {
		out, err := structured.NewJSONRenderer().Render(data)
		Expect(err).ToNot(HaveOccurred())

		var doc map[string]interface{}
		Expect(json.Unmarshal(out, &doc)).To(Succeed())
		Expect(doc["generated"]).To(Equal("2026-10-19T14:30:05"))
		result := doc["result"].(map[string]interface{})
		Expect(result["parameters"].(map[string]interface{})["towerType"]).To(Equal("2+2"))
		Expect(result["metrics"].(map[string]interface{})).To(HaveKey("throughputPercent"))
	})

	It("encodes yaml with the json field names", func() {
		out, err := structured.NewYAMLRenderer().Render(data)
		Expect(err).ToNot(HaveOccurred())
		Expect(string(out)).To(ContainSubstring("complexityFactor: 1.6"))

		var doc structured.Document
		Expect(yaml.Unmarshal(out, &doc)).To(Succeed())
		Expect(doc.Result.Metrics.MinTime).To(BeNumerically("~", data.Result.Metrics.MinTime, 1e-9))
	})

	It("reports its format", func() {
		Expect(structured.NewJSONRenderer().SupportedFormat()).To(Equal(types.ReportFormatJSON))
		Expect(structured.NewYAMLRenderer().SupportedFormat()).To(Equal(types.ReportFormatYAML))
	})
})

var _ = Describe("html.Renderer", func() {
	It("renders the level summary and indicators", func() {
		raw := params.Raw{
			params.FieldLevelsAbove:  "10",
			params.FieldEnableCombos: "true",
			params.FieldAboveCount2:  "3",
			params.FieldAboveCount3:  "4",
		}
		out, err := html.NewRenderer().Render(process(compute(raw, params.HeightModelTiered)))
		Expect(err).ToNot(HaveOccurred())

		page := string(out)
		Expect(page).To(ContainSubstring("Above Ground - Combo 1:"))
		Expect(page).To(ContainSubstring("3 levels × 1900mm = 5,700mm"))
		Expect(page).To(ContainSubstring("20,800 mm (20.8 m)"))
		Expect(page).To(ContainSubstring("performance-good"))
	})
})
