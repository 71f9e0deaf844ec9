package v1alpha1

import (
	"net/http"

	"github.com/go-chi/render"

	"github.com/PratikS7412/Tower-Retrival-Time/internal/estimation/tower"
	"github.com/PratikS7412/Tower-Retrival-Time/internal/handlers/v1alpha1/mappers"
)

// (GET /api/v1/tower-types)
func (h *ServiceHandler) ListTowerTypes(w http.ResponseWriter, r *http.Request) {
	render.Status(r, http.StatusOK)
	render.JSON(w, r, mappers.TowerTypesToAPI(tower.Types()))
}
