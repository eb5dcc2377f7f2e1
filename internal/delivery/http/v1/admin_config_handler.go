package v1

import (
	"net/http"
	"strconv"

	"storefront-backend/internal/domain"
	"storefront-backend/internal/usecase"
	"storefront-backend/pkg/utils"
)

type AdminConfigHandler struct {
	shippingUC ShippingService
}

func NewAdminConfigHandler(uc ShippingService) *AdminConfigHandler {
	return &AdminConfigHandler{shippingUC: uc}
}

func zoneIDFromPath(r *http.Request) (int32, bool) {
	id, err := strconv.ParseInt(r.PathValue("id"), 10, 32)
	if err != nil || id <= 0 {
		return 0, false
	}
	return int32(id), true
}

func (h *AdminConfigHandler) GetAllShippingZones(w http.ResponseWriter, r *http.Request) {
	zones, err := h.shippingUC.ListZones(r.Context())
	if err != nil {
		writeServiceError(w, r, err)
		return
	}
	utils.WriteJSON(w, http.StatusOK, zones)
}

func (h *AdminConfigHandler) GetShippingZone(w http.ResponseWriter, r *http.Request) {
	id, ok := zoneIDFromPath(r)
	if !ok {
		utils.WriteError(w, http.StatusBadRequest, "Invalid ID")
		return
	}

	zone, err := h.shippingUC.GetZone(r.Context(), id)
	if err != nil {
		writeServiceError(w, r, err)
		return
	}
	utils.WriteJSON(w, http.StatusOK, zone)
}

func (h *AdminConfigHandler) CreateShippingZone(w http.ResponseWriter, r *http.Request) {
	var req usecase.ShippingZoneRequest
	if err := utils.DecodeJSON(r, &req); err != nil {
		utils.WriteError(w, http.StatusBadRequest, err.Error())
		return
	}

	created, err := h.shippingUC.CreateZone(r.Context(), req)
	if err != nil {
		writeServiceError(w, r, err)
		return
	}
	utils.WriteJSON(w, http.StatusCreated, created)
}

func (h *AdminConfigHandler) UpdateShippingZone(w http.ResponseWriter, r *http.Request) {
	id, ok := zoneIDFromPath(r)
	if !ok {
		utils.WriteError(w, http.StatusBadRequest, "Invalid ID")
		return
	}

	var req usecase.ShippingZoneRequest
	if err := utils.DecodeJSON(r, &req); err != nil {
		utils.WriteError(w, http.StatusBadRequest, err.Error())
		return
	}

	updated, err := h.shippingUC.UpdateZone(r.Context(), id, req)
	if err != nil {
		writeServiceError(w, r, err)
		return
	}
	utils.WriteJSON(w, http.StatusOK, updated)
}

func (h *AdminConfigHandler) UpdateShippingZoneStatus(w http.ResponseWriter, r *http.Request) {
	id, ok := zoneIDFromPath(r)
	if !ok {
		utils.WriteError(w, http.StatusBadRequest, "Invalid ID")
		return
	}

	var req struct {
		Enabled *bool `json:"enabled"`
	}
	if err := utils.DecodeJSON(r, &req); err != nil || req.Enabled == nil {
		utils.WriteError(w, http.StatusBadRequest, "enabled is required")
		return
	}

	if err := h.shippingUC.SetZoneEnabled(r.Context(), id, *req.Enabled); err != nil {
		writeServiceError(w, r, err)
		return
	}
	utils.WriteJSON(w, http.StatusOK, map[string]interface{}{"id": id, "enabled": *req.Enabled})
}

func (h *AdminConfigHandler) DeleteShippingZone(w http.ResponseWriter, r *http.Request) {
	id, ok := zoneIDFromPath(r)
	if !ok {
		utils.WriteError(w, http.StatusBadRequest, "Invalid ID")
		return
	}

	if err := h.shippingUC.DeleteZone(r.Context(), id); err != nil {
		writeServiceError(w, r, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// POST /api/v1/admin/config/shipping-zones/match
// Reports which zone an address would land in, without quoting.
func (h *AdminConfigHandler) MatchShippingZone(w http.ResponseWriter, r *http.Request) {
	var addr domain.Address
	if err := utils.DecodeJSON(r, &addr); err != nil {
		utils.WriteError(w, http.StatusBadRequest, err.Error())
		return
	}

	match, err := h.shippingUC.DryRunMatch(r.Context(), addr)
	if err != nil {
		writeServiceError(w, r, err)
		return
	}
	utils.WriteJSON(w, http.StatusOK, map[string]interface{}{
		"matched": match != nil,
		"match":   match,
	})
}

// POST /api/v1/admin/config/shipping-zones/export
func (h *AdminConfigHandler) ExportShippingZones(w http.ResponseWriter, r *http.Request) {
	url, err := h.shippingUC.ExportSnapshot(r.Context())
	if err != nil {
		writeServiceError(w, r, err)
		return
	}
	utils.WriteJSON(w, http.StatusCreated, map[string]string{"url": url})
}
