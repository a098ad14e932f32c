package httpadapter

import (
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/cors"

	"carry-ads/internal/core/domain"
	"carry-ads/internal/core/port"
)

// Handler is the inbound HTTP adapter. It holds the usecases for each
// marketplace area and a logger for structured logging. Routes are
// registered on a chi.Router; each area sits behind a role guard fed by
// the identity gateway headers.
type Handler struct {
	campaigns     port.CampaignUseCase
	distributions port.DistributionUseCase
	stocks        port.StockUseCase
	visuals       port.VisualStore
	logger        *slog.Logger
	router        chi.Router
}

// NewHandler creates a handler with all routes configured.
func NewHandler(
	campaigns port.CampaignUseCase,
	distributions port.DistributionUseCase,
	stocks port.StockUseCase,
	visuals port.VisualStore,
	logger *slog.Logger,
	allowedOrigins []string,
) *Handler {
	h := &Handler{
		campaigns:     campaigns,
		distributions: distributions,
		stocks:        stocks,
		visuals:       visuals,
		logger:        logger,
	}
	r := chi.NewRouter()

	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   allowedOrigins,
		AllowedMethods:   []string{http.MethodGet, http.MethodPost, http.MethodPut, http.MethodDelete},
		AllowedHeaders:   []string{"Accept", "Content-Type", "X-User-Id", "X-User-Roles"},
		AllowCredentials: true,
	}))
	r.Use(withPrincipal)

	r.Route("/api/v1", func(r chi.Router) {
		r.Group(func(r chi.Router) {
			r.Use(requireRole(domain.RoleAdvertiser))
			r.Post("/campaigns", h.handleCreateCampaign)
			r.Get("/campaigns", h.handleListMyCampaigns)
			r.Get("/campaigns/invoices", h.handleListInvoices)
			r.Post("/campaigns/visuals", h.handleUploadVisual)
		})
		r.Route("/distributor", func(r chi.Router) {
			r.Use(requireRole(domain.RoleDistributor))
			r.Get("/campaigns/pending", h.handleListPending)
			r.Get("/campaigns/active", h.handleListActive)
			r.Get("/campaigns", h.handleListMine)
			r.Post("/campaigns/{id}/accept", h.handleAccept)
			r.Post("/campaigns/{id}/decline", h.handleDecline)
			r.Post("/distributions/{id}/distribute", h.handleDistribute)
			r.Get("/stats", h.handleStats)
			r.Get("/payments", h.handleListPayments)
			r.Get("/payments/{id}", h.handleGetPayment)
		})
		r.Route("/admin", func(r chi.Router) {
			r.Use(requireRole(domain.RoleAdmin))
			r.Get("/stocks", h.handleListStocks)
			r.Put("/stocks/{id}", h.handleUpdateStock)
			r.Delete("/stocks/{id}", h.handleDeleteStock)
			r.Get("/stocks/distribution", h.handleSupportDistribution)
			r.Post("/deliveries", h.handleCreateDelivery)
		})
	})
	h.router = r
	return h
}

// Router returns the underlying http.Handler.
func (h *Handler) Router() http.Handler {
	return h.router
}
