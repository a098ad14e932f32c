package httpadapter

import (
	"encoding/json"
	"net/http"
	"strconv"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/shopspring/decimal"

	"carry-ads/internal/core/port"
)

func pathID(r *http.Request) (int64, bool) {
	id, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
	return id, err == nil && id > 0
}

type pendingCampaignResponse struct {
	ID          int64  `json:"id"`
	Name        string `json:"name"`
	ClientName  string `json:"clientName"`
	Bags        int    `json:"bags"`
	Description string `json:"description"`
	ImageName   string `json:"imageName,omitempty"`
}

// handleListPending returns draft campaigns the distributor can accept
// or decline.
func (h *Handler) handleListPending(w http.ResponseWriter, r *http.Request) {
	p, _ := principalFrom(r)
	campaigns, err := h.distributions.ListEligiblePending(r.Context(), p.UserID)
	if err != nil {
		h.writeError(w, err)
		return
	}
	resp := make([]pendingCampaignResponse, 0, len(campaigns))
	for _, c := range campaigns {
		resp = append(resp, pendingCampaignResponse{
			ID:          c.ID,
			Name:        c.Name,
			ClientName:  c.ClientName,
			Bags:        c.Bags,
			Description: c.Description,
			ImageName:   c.ImageName,
		})
	}
	h.writeJSON(w, http.StatusOK, resp)
}

// handleAccept accepts the campaign in the {id} path parameter.
func (h *Handler) handleAccept(w http.ResponseWriter, r *http.Request) {
	p, _ := principalFrom(r)
	id, ok := pathID(r)
	if !ok {
		http.Error(w, "invalid campaign id", http.StatusBadRequest)
		return
	}
	if err := h.distributions.AcceptCampaign(r.Context(), p.UserID, id); err != nil {
		h.writeError(w, err)
		return
	}
	h.writeJSON(w, http.StatusOK, map[string]string{"message": "campaign accepted"})
}

// handleDecline declines the campaign in the {id} path parameter.
func (h *Handler) handleDecline(w http.ResponseWriter, r *http.Request) {
	p, _ := principalFrom(r)
	id, ok := pathID(r)
	if !ok {
		http.Error(w, "invalid campaign id", http.StatusBadRequest)
		return
	}
	if err := h.distributions.DeclineCampaign(r.Context(), p.UserID, id); err != nil {
		h.writeError(w, err)
		return
	}
	h.writeJSON(w, http.StatusOK, map[string]string{"message": "campaign declined"})
}

type distributeRequest struct {
	Quantity int `json:"quantity"`
}

// handleDistribute reports bags handed out against the distribution in
// the {id} path parameter and returns the remaining quantity.
func (h *Handler) handleDistribute(w http.ResponseWriter, r *http.Request) {
	p, _ := principalFrom(r)
	id, ok := pathID(r)
	if !ok {
		http.Error(w, "invalid distribution id", http.StatusBadRequest)
		return
	}
	var req distributeRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "invalid JSON", http.StatusBadRequest)
		return
	}
	remaining, err := h.distributions.DistributeBags(r.Context(), p.UserID, id, req.Quantity)
	if err != nil {
		h.writeError(w, err)
		return
	}
	h.writeJSON(w, http.StatusOK, map[string]int{"bagsRemaining": remaining})
}

type distributionResponse struct {
	ID            int64      `json:"id"`
	CampaignName  string     `json:"name"`
	ClientName    string     `json:"clientName"`
	Description   string     `json:"description"`
	ImageName     string     `json:"imageName,omitempty"`
	Status        string     `json:"status"`
	BagsTotal     int        `json:"bagsTotal"`
	BagsHanded    int        `json:"bagsDistributed"`
	BagsRemaining int        `json:"bagsRemaining"`
	StartDate     *time.Time `json:"startDate,omitempty"`
	EndDate       *time.Time `json:"endDate,omitempty"`
}

func (h *Handler) writeDistributions(w http.ResponseWriter, views []port.DistributionView) {
	resp := make([]distributionResponse, 0, len(views))
	for _, v := range views {
		resp = append(resp, distributionResponse{
			ID:            v.ID,
			CampaignName:  v.CampaignName,
			ClientName:    v.ClientName,
			Description:   v.Description,
			ImageName:     v.ImageName,
			Status:        v.Status.String(),
			BagsTotal:     v.Allocated,
			BagsHanded:    v.Distributed,
			BagsRemaining: v.Remaining(),
			StartDate:     v.StartDate,
			EndDate:       v.EndDate,
		})
	}
	h.writeJSON(w, http.StatusOK, resp)
}

// handleListActive returns the distributor's ongoing distributions.
func (h *Handler) handleListActive(w http.ResponseWriter, r *http.Request) {
	p, _ := principalFrom(r)
	views, err := h.distributions.ListActive(r.Context(), p.UserID)
	if err != nil {
		h.writeError(w, err)
		return
	}
	h.writeDistributions(w, views)
}

// handleListMine returns the distributor's ongoing and completed
// distributions.
func (h *Handler) handleListMine(w http.ResponseWriter, r *http.Request) {
	p, _ := principalFrom(r)
	views, err := h.distributions.ListMine(r.Context(), p.UserID)
	if err != nil {
		h.writeError(w, err)
		return
	}
	h.writeDistributions(w, views)
}

type statsResponse struct {
	BagsAllocated   int             `json:"bagsAllocated"`
	BagsDistributed int             `json:"bagsDistributed"`
	ActiveCampaigns int             `json:"activeCampaigns"`
	Revenue         decimal.Decimal `json:"estimatedRevenue"`
}

// handleStats returns the distributor's aggregate counters.
func (h *Handler) handleStats(w http.ResponseWriter, r *http.Request) {
	p, _ := principalFrom(r)
	stats, err := h.distributions.Stats(r.Context(), p.UserID)
	if err != nil {
		h.writeError(w, err)
		return
	}
	h.writeJSON(w, http.StatusOK, statsResponse{
		BagsAllocated:   stats.BagsAllocated,
		BagsDistributed: stats.BagsDistributed,
		ActiveCampaigns: stats.ActiveCampaigns,
		Revenue:         stats.Revenue,
	})
}

type paymentResponse struct {
	ID            int64           `json:"id"`
	InvoiceNumber string          `json:"invoiceNumber"`
	CampaignName  string          `json:"campaignName"`
	IssueDate     time.Time       `json:"issueDate"`
	Amount        decimal.Decimal `json:"amountReceived"`
}

func paymentToResponse(p port.Payment) paymentResponse {
	return paymentResponse{
		ID:            p.CampaignID,
		InvoiceNumber: p.Number,
		CampaignName:  p.CampaignName,
		IssueDate:     p.IssueDate,
		Amount:        p.Amount,
	}
}

// handleListPayments returns payout lines for completed campaigns.
func (h *Handler) handleListPayments(w http.ResponseWriter, r *http.Request) {
	p, _ := principalFrom(r)
	payments, err := h.distributions.ListPayments(r.Context(), p.UserID)
	if err != nil {
		h.writeError(w, err)
		return
	}
	resp := make([]paymentResponse, 0, len(payments))
	for _, pay := range payments {
		resp = append(resp, paymentToResponse(pay))
	}
	h.writeJSON(w, http.StatusOK, resp)
}

// handleGetPayment returns one payout line by campaign id.
func (h *Handler) handleGetPayment(w http.ResponseWriter, r *http.Request) {
	p, _ := principalFrom(r)
	id, ok := pathID(r)
	if !ok {
		http.Error(w, "invalid payment id", http.StatusBadRequest)
		return
	}
	payment, err := h.distributions.GetPayment(r.Context(), p.UserID, id)
	if err != nil {
		h.writeError(w, err)
		return
	}
	h.writeJSON(w, http.StatusOK, paymentToResponse(*payment))
}
