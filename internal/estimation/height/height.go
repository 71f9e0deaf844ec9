// Package height resolves the vertical travel height of a tower from its level
// layout. Two interchangeable strategies exist: Tiered partitions the levels
// above ground into up to three height bands, Linear derives the top level
// from a first level plus uniform regular levels.
package height

import (
	"github.com/PratikS7412/Tower-Retrival-Time/internal/estimation/params"
)

// Tier labels, in the order tiers are produced.
const (
	LabelCombo1       = "Above Ground - Combo 1"
	LabelCombo2       = "Above Ground - Combo 2"
	LabelAboveDefault = "Above Ground - Default"
	LabelAbove        = "Above Ground"
	LabelBelow        = "Below Ground"
)

// Tier is one band of levels sharing a height. Heights are in millimeters.
type Tier struct {
	Label    string  `json:"label"`
	Height   float64 `json:"height"`
	Count    int     `json:"count"`
	Subtotal float64 `json:"subtotal"`
}

// Levels is the resolved height of a tower. The tiered fields are in
// millimeters and set by Tiered only; MinLevel and MaxLevel are in meters and
// set by Linear only.
type Levels struct {
	Model params.HeightModel `json:"model"`

	Tiers      []Tier  `json:"tiers,omitempty"`
	TotalAbove float64 `json:"totalAboveHeight"`
	TotalBelow float64 `json:"totalBelowHeight"`
	Total      float64 `json:"totalHeight"`

	MinLevel float64 `json:"minLevel"`
	MaxLevel float64 `json:"maxLevel"`
}

// Resolver computes the travel height for a parameter record.
type Resolver interface {
	Model() params.HeightModel
	Resolve(p params.Parameters) Levels
}

// For returns the resolver implementing model. Anything but linear resolves
// to the tiered strategy.
func For(model params.HeightModel) Resolver {
	if model == params.HeightModelLinear {
		return Linear{}
	}
	return Tiered{}
}

// Resolve picks the strategy from p.Model.
func Resolve(p params.Parameters) Levels {
	return For(p.Model).Resolve(p)
}

// Compile-time assertions that both strategies implement Resolver.
var (
	_ Resolver = Tiered{}
	_ Resolver = Linear{}
)

// Tiered consumes the levels above ground as a budget: first the combo 1
// band, then the combo 2 band, then whatever remains at the default height.
type Tiered struct{}

func (Tiered) Model() params.HeightModel { return params.HeightModelTiered }

func (Tiered) Resolve(p params.Parameters) Levels {
	in := p.Tiered
	lv := Levels{Model: params.HeightModelTiered}

	if in.LevelsAbove > 0 {
		if in.EnableCombos {
			remaining := in.LevelsAbove
			for _, band := range []struct {
				label  string
				height float64
				count  int
			}{
				{LabelCombo1, in.AboveHeight2, in.AboveCount2},
				{LabelCombo2, in.AboveHeight3, in.AboveCount3},
			} {
				if band.count <= 0 || remaining <= 0 {
					continue
				}
				n := min(band.count, remaining)
				lv.add(band.label, band.height, n, true)
				remaining -= n
			}
			if remaining > 0 {
				lv.add(LabelAboveDefault, in.AboveHeight1, remaining, true)
			}
		} else {
			lv.add(LabelAbove, in.AboveHeight1, in.LevelsAbove, true)
		}
	}

	if in.LevelsBelow > 0 {
		lv.add(LabelBelow, in.BelowHeight, in.LevelsBelow, false)
	}

	lv.Total = lv.TotalAbove + lv.TotalBelow
	return lv
}

func (lv *Levels) add(label string, height float64, count int, above bool) {
	subtotal := height * float64(count)
	lv.Tiers = append(lv.Tiers, Tier{Label: label, Height: height, Count: count, Subtotal: subtotal})
	if above {
		lv.TotalAbove += subtotal
	} else {
		lv.TotalBelow += subtotal
	}
}

// Linear places the first level at its own height and every further level at
// the regular height. Only the ground and top levels are reported.
type Linear struct{}

func (Linear) Model() params.HeightModel { return params.HeightModelLinear }

func (Linear) Resolve(p params.Parameters) Levels {
	in := p.Linear
	n := in.NumberOfLevels
	if n < 1 {
		n = 1
	}
	top := in.FirstLevelHeight + float64(n-1)*in.RegularLevelHeight
	return Levels{
		Model:    params.HeightModelLinear,
		MinLevel: 0,
		MaxLevel: top / 1000,
	}
}
