package httpadapter

import (
	"encoding/json"
	"net/http"
	"time"
)

type stockResponse struct {
	ID          int64     `json:"id"`
	Name        string    `json:"name"`
	Price       int64     `json:"price"`
	ImageName   string    `json:"imageName,omitempty"`
	UpdatedAt   time.Time `json:"updatedAt"`
	Allocated   int       `json:"totalAllocated"`
	Distributed int       `json:"totalDistributed"`
}

// handleListStocks returns every support with summed allocation totals.
func (h *Handler) handleListStocks(w http.ResponseWriter, r *http.Request) {
	stocks, err := h.stocks.ListStocks(r.Context())
	if err != nil {
		h.writeError(w, err)
		return
	}
	resp := make([]stockResponse, 0, len(stocks))
	for _, s := range stocks {
		resp = append(resp, stockResponse{
			ID:          s.ID,
			Name:        s.Name,
			Price:       s.Price,
			ImageName:   s.ImageName,
			UpdatedAt:   s.UpdatedAt,
			Allocated:   s.Allocated,
			Distributed: s.Distributed,
		})
	}
	h.writeJSON(w, http.StatusOK, resp)
}

type updateStockRequest struct {
	Name  string `json:"name"`
	Price int64  `json:"price"`
}

// handleUpdateStock renames and reprices the support in {id}.
func (h *Handler) handleUpdateStock(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(r)
	if !ok {
		http.Error(w, "invalid stock id", http.StatusBadRequest)
		return
	}
	var req updateStockRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "invalid JSON", http.StatusBadRequest)
		return
	}
	if err := h.stocks.UpdateStock(r.Context(), id, req.Name, req.Price); err != nil {
		h.writeError(w, err)
		return
	}
	h.writeJSON(w, http.StatusOK, map[string]string{"message": "stock updated"})
}

// handleDeleteStock removes the support in {id} and its allocations.
func (h *Handler) handleDeleteStock(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(r)
	if !ok {
		http.Error(w, "invalid stock id", http.StatusBadRequest)
		return
	}
	if err := h.stocks.DeleteStock(r.Context(), id); err != nil {
		h.writeError(w, err)
		return
	}
	h.writeJSON(w, http.StatusOK, map[string]string{"message": "stock deleted"})
}

type createDeliveryRequest struct {
	SupportID int64 `json:"supportId"`
	Quantity  int   `json:"quantity"`
}

// handleCreateDelivery records a manual hand-out of support units.
func (h *Handler) handleCreateDelivery(w http.ResponseWriter, r *http.Request) {
	var req createDeliveryRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "invalid JSON", http.StatusBadRequest)
		return
	}
	if err := h.stocks.CreateDelivery(r.Context(), req.SupportID, req.Quantity); err != nil {
		h.writeError(w, err)
		return
	}
	h.writeJSON(w, http.StatusCreated, map[string]string{"message": "delivery recorded"})
}

type supportTotalsResponse struct {
	SupportName string `json:"supportName"`
	Allocated   int    `json:"totalAllocated"`
	Distributed int    `json:"totalDistributed"`
}

// handleSupportDistribution returns per-support allocation totals.
func (h *Handler) handleSupportDistribution(w http.ResponseWriter, r *http.Request) {
	totals, err := h.stocks.SupportDistribution(r.Context())
	if err != nil {
		h.writeError(w, err)
		return
	}
	resp := make([]supportTotalsResponse, 0, len(totals))
	for _, t := range totals {
		resp = append(resp, supportTotalsResponse{
			SupportName: t.SupportName,
			Allocated:   t.Allocated,
			Distributed: t.Distributed,
		})
	}
	h.writeJSON(w, http.StatusOK, resp)
}
