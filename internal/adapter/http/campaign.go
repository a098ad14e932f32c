package httpadapter

import (
	"encoding/json"
	"net/http"
	"path/filepath"
	"time"

	"github.com/shopspring/decimal"

	"carry-ads/internal/core/port"
)

// maxVisualSize caps uploaded campaign visuals at 10 MiB.
const maxVisualSize = 10 << 20

type createCampaignRequest struct {
	Name           string    `json:"name"`
	Description    string    `json:"description"`
	StartDate      time.Time `json:"startDate"`
	DistributorIDs []int64   `json:"distributorIds"`
	SupportName    string    `json:"supportName"`
	UnitPrice      int64     `json:"supportUnitPrice"`
	Quantity       int       `json:"numberOfSupports"`
	NeedDesigner   bool      `json:"needDesigner"`
	VisualName     string    `json:"visualName"`
}

// handleCreateCampaign creates a campaign with its support allocation.
// On success it returns HTTP 201 with the new campaign id.
func (h *Handler) handleCreateCampaign(w http.ResponseWriter, r *http.Request) {
	p, _ := principalFrom(r)
	var req createCampaignRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "invalid JSON", http.StatusBadRequest)
		return
	}
	id, err := h.campaigns.CreateCampaign(r.Context(), p.UserID, port.CreateCampaignReq{
		Name:           req.Name,
		Description:    req.Description,
		StartDate:      req.StartDate,
		DistributorIDs: req.DistributorIDs,
		SupportName:    req.SupportName,
		UnitPrice:      req.UnitPrice,
		Quantity:       req.Quantity,
		NeedDesigner:   req.NeedDesigner,
		VisualName:     req.VisualName,
	})
	if err != nil {
		h.writeError(w, err)
		return
	}
	h.writeJSON(w, http.StatusCreated, map[string]int64{"campaignId": id})
}

type advertiserCampaignResponse struct {
	ID           int64      `json:"id"`
	Name         string     `json:"name"`
	Description  string     `json:"description"`
	ImageName    string     `json:"imageName,omitempty"`
	Status       string     `json:"status"`
	BudgetTotal  int64      `json:"budgetTotal"`
	BagsTotal    int        `json:"bagsTotal"`
	BagsHanded   int        `json:"bagsDistributed"`
	StartDate    *time.Time `json:"startDate,omitempty"`
	EndDate      *time.Time `json:"endDate,omitempty"`
	Distributors []string   `json:"distributors"`
}

// handleListMyCampaigns returns the advertiser's campaigns.
func (h *Handler) handleListMyCampaigns(w http.ResponseWriter, r *http.Request) {
	p, _ := principalFrom(r)
	campaigns, err := h.campaigns.ListAdvertiserCampaigns(r.Context(), p.UserID)
	if err != nil {
		h.writeError(w, err)
		return
	}
	resp := make([]advertiserCampaignResponse, 0, len(campaigns))
	for _, c := range campaigns {
		distributors := c.Distributors
		if distributors == nil {
			distributors = []string{}
		}
		resp = append(resp, advertiserCampaignResponse{
			ID:           c.ID,
			Name:         c.Name,
			Description:  c.Description,
			ImageName:    c.ImageName,
			Status:       c.Status.String(),
			BudgetTotal:  c.TotalPrice,
			BagsTotal:    c.Allocated,
			BagsHanded:   c.Distributed,
			StartDate:    c.StartDate,
			EndDate:      c.EndDate,
			Distributors: distributors,
		})
	}
	h.writeJSON(w, http.StatusOK, resp)
}

type invoiceResponse struct {
	ID            int64           `json:"id"`
	InvoiceNumber string          `json:"invoiceNumber"`
	CampaignName  string          `json:"campaignName"`
	IssueDate     time.Time       `json:"issueDate"`
	Amount        decimal.Decimal `json:"amount"`
	AmountToPay   decimal.Decimal `json:"amountToPay"`
}

// handleListInvoices returns invoices for the advertiser's completed
// campaigns.
func (h *Handler) handleListInvoices(w http.ResponseWriter, r *http.Request) {
	p, _ := principalFrom(r)
	invoices, err := h.campaigns.ListInvoices(r.Context(), p.UserID)
	if err != nil {
		h.writeError(w, err)
		return
	}
	resp := make([]invoiceResponse, 0, len(invoices))
	for _, inv := range invoices {
		resp = append(resp, invoiceResponse{
			ID:            inv.CampaignID,
			InvoiceNumber: inv.Number,
			CampaignName:  inv.CampaignName,
			IssueDate:     inv.IssueDate,
			Amount:        inv.Amount,
			AmountToPay:   inv.AmountToPay,
		})
	}
	h.writeJSON(w, http.StatusOK, resp)
}

// handleUploadVisual stores a campaign visual and returns the generated
// name to reference in a later create request.
func (h *Handler) handleUploadVisual(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseMultipartForm(maxVisualSize); err != nil {
		http.Error(w, "invalid multipart form", http.StatusBadRequest)
		return
	}
	file, header, err := r.FormFile("visual")
	if err != nil {
		http.Error(w, "missing visual file", http.StatusBadRequest)
		return
	}
	defer file.Close()

	name, err := h.visuals.Save(r.Context(), file, filepath.Ext(header.Filename))
	if err != nil {
		h.writeError(w, err)
		return
	}
	h.writeJSON(w, http.StatusCreated, map[string]string{"visualName": name})
}
