package mappers

import (
	api "github.com/PratikS7412/Tower-Retrival-Time/api/v1alpha1"
	"github.com/PratikS7412/Tower-Retrival-Time/internal/estimation/tower"
)

func TowerTypeToAPI(t tower.Type) api.TowerType {
	f := t.Factors()
	return api.TowerType{
		Code:             t.String(),
		Weights:          f[:],
		ComplexityFactor: t.ComplexityFactor(),
	}
}

func TowerTypesToAPI(types []tower.Type) api.TowerTypeList {
	out := make(api.TowerTypeList, 0, len(types))
	for _, t := range types {
		out = append(out, TowerTypeToAPI(t))
	}
	return out
}
