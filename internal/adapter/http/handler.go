package httpadapter

import (
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"groupbuy/internal/core/port"
)

// Handler contains dependencies and routes. It is an inbound adapter for HTTP
// over the campaign, invoice and payment intent use cases. Routes are
// registered on a chi.Router under /api/v1.
type Handler struct {
	campaigns port.CampaignUseCase
	invoices  port.InvoiceUseCase
	intents   port.PaymentIntentUseCase
	logger    *slog.Logger
	router    chi.Router
}

// NewHandler creates a handler with all routes configured.
func NewHandler(campaigns port.CampaignUseCase, invoices port.InvoiceUseCase, intents port.PaymentIntentUseCase, logger *slog.Logger) *Handler {
	h := &Handler{campaigns: campaigns, invoices: invoices, intents: intents, logger: logger}
	r := chi.NewRouter()
	r.Use(middleware.RequestID, middleware.Recoverer)

	r.Route("/api/v1", func(r chi.Router) {
		r.Route("/campaigns", func(r chi.Router) {
			r.Post("/", h.handleCreateCampaign)
			r.Get("/", h.handleListCampaigns)
			r.Route("/{id}", func(r chi.Router) {
				r.Get("/", h.handleGetCampaign)
				r.Put("/", h.handleUpdateCampaign)
				r.Delete("/", h.handleDeleteCampaign)
				r.Post("/publish", h.handlePublishCampaign)
				r.Post("/lock", h.handleLockCampaign)
				r.Post("/cancel", h.handleCancelCampaign)
				r.Post("/complete", h.handleCompleteCampaign)
				r.Get("/pricing", h.handleGetPricing)

				r.Get("/brackets", h.handleListBrackets)
				r.Post("/brackets", h.handleAddBracket)
				r.Put("/brackets/{bracketID}", h.handleUpdateBracket)
				r.Delete("/brackets/{bracketID}", h.handleDeleteBracket)

				r.Get("/invoices", h.handleListCampaignInvoices)
				r.Post("/invoices", h.handleGenerateInvoices)
			})
		})

		r.Route("/invoices", func(r chi.Router) {
			r.Get("/bank-details", h.handleBankDetails)
			r.Get("/number/{number}", h.handleGetInvoiceByNumber)
			r.Get("/{id}", h.handleGetInvoice)
			r.Post("/{id}/send", h.handleSendInvoice)
			r.Post("/{id}/pay", h.handleMarkPaid)
			r.Post("/{id}/cancel", h.handleCancelInvoice)
		})
		r.Post("/internal/invoices/overdue-sweep", h.handleOverdueSweep)

		r.Get("/payment-intents/{id}", h.handleGetPaymentIntent)
		r.Patch("/payment-intents/{id}/status", h.handleUpdatePaymentStatus)
	})
	h.router = r
	return h
}

// Router returns the underlying http.Handler.
func (h *Handler) Router() http.Handler {
	return h.router
}
