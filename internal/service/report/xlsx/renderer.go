package xlsx

import (
	"bytes"
	"math"
	"strconv"

	"github.com/pkg/errors"
	"github.com/xuri/excelize/v2"

	"github.com/PratikS7412/Tower-Retrival-Time/internal/service/report/types"
)

// SheetName is the single worksheet of the workbook.
const SheetName = "Retrieval Analysis"

type Renderer struct{}

func NewRenderer() *Renderer {
	return &Renderer{}
}

func (r *Renderer) SupportedFormat() types.ReportFormat {
	return types.ReportFormatXLSX
}

// Render writes the tabular rows into one sheet. Numeric values are stored as
// numbers so they stay usable in formulas.
func (r *Renderer) Render(data *types.ReportData) ([]byte, error) {
	f := excelize.NewFile()
	defer f.Close()

	if err := f.SetSheetName("Sheet1", SheetName); err != nil {
		return nil, errors.Wrap(err, "failed to name worksheet")
	}

	for i, line := range data.Lines() {
		cell, err := excelize.CoordinatesToCellName(1, i+1)
		if err != nil {
			return nil, errors.Wrapf(err, "failed to address row %d", i+1)
		}
		if err := f.SetSheetRow(SheetName, cell, toCells(line)); err != nil {
			return nil, errors.Wrapf(err, "failed to write row %d", i+1)
		}
	}

	if err := f.SetColWidth(SheetName, "A", "A", 32); err != nil {
		return nil, errors.Wrap(err, "failed to size label column")
	}

	var buf bytes.Buffer
	if _, err := f.WriteTo(&buf); err != nil {
		return nil, errors.Wrap(err, "failed to write workbook")
	}
	return buf.Bytes(), nil
}

func toCells(line []string) *[]interface{} {
	cells := make([]interface{}, 0, len(line))
	for i, v := range line {
		if i == 1 {
			// non-finite values stay text, a workbook has no cell type for them
			if f, err := strconv.ParseFloat(v, 64); err == nil && !math.IsInf(f, 0) && !math.IsNaN(f) {
				cells = append(cells, f)
				continue
			}
		}
		cells = append(cells, v)
	}
	return &cells
}
