package v1

import (
	"net/http"

	"storefront-backend/internal/domain"
	"storefront-backend/pkg/utils"
)

type ShippingHandler struct {
	shippingUC ShippingService
}

func NewShippingHandler(uc ShippingService) *ShippingHandler {
	return &ShippingHandler{shippingUC: uc}
}

// GET /api/v1/shipping/quote?country=&province=&city=&postalCode=&subtotal=
func (h *ShippingHandler) GetQuote(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	subtotal, err := utils.ParseFloat(q.Get("subtotal"))
	if err != nil {
		utils.WriteError(w, http.StatusBadRequest, "subtotal must be a number")
		return
	}

	addr := domain.Address{
		City:       q.Get("city"),
		Province:   q.Get("province"),
		Country:    q.Get("country"),
		PostalCode: q.Get("postalCode"),
	}
	h.writeQuote(w, r, addr, subtotal)
}

type quoteReq struct {
	Address  domain.Address `json:"address"`
	Subtotal *float64       `json:"subtotal"`
}

// POST /api/v1/shipping/quote
func (h *ShippingHandler) PostQuote(w http.ResponseWriter, r *http.Request) {
	var req quoteReq
	if err := utils.DecodeJSON(r, &req); err != nil {
		utils.WriteError(w, http.StatusBadRequest, "Invalid request")
		return
	}
	if req.Subtotal == nil {
		utils.WriteError(w, http.StatusBadRequest, "subtotal is required")
		return
	}
	h.writeQuote(w, r, req.Address, *req.Subtotal)
}

func (h *ShippingHandler) writeQuote(w http.ResponseWriter, r *http.Request, addr domain.Address, subtotal float64) {
	quote, err := h.shippingUC.Quote(r.Context(), addr, subtotal)
	if err != nil {
		writeServiceError(w, r, err)
		return
	}
	utils.WriteJSON(w, http.StatusOK, quote)
}
