package httpadapter

import (
	"context"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"groupbuy/internal/core/domain"
	"groupbuy/internal/core/port"
)

func (h *Handler) handleListCampaignInvoices(w http.ResponseWriter, r *http.Request) {
	id, err := uuidParam(r, "id")
	if err != nil {
		h.badRequest(w, err.Error())
		return
	}
	list, err := h.invoices.ListCampaignInvoices(r.Context(), id)
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	h.writeInvoices(w, list)
}

// handleGenerateInvoices re-runs generation for a locked campaign with the
// bracket fixed at lock time. Only invoices created by this call are
// returned, so a repeated call answers with an empty list.
func (h *Handler) handleGenerateInvoices(w http.ResponseWriter, r *http.Request) {
	id, err := uuidParam(r, "id")
	if err != nil {
		h.badRequest(w, err.Error())
		return
	}
	list, err := h.invoices.RegenerateInvoices(r.Context(), id)
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	h.writeInvoices(w, list)
}

func (h *Handler) writeInvoices(w http.ResponseWriter, list []domain.Invoice) {
	if list == nil {
		list = []domain.Invoice{}
	}
	h.writeJSON(w, http.StatusOK, list)
}

func (h *Handler) handleGetInvoice(w http.ResponseWriter, r *http.Request) {
	h.invoiceAction(w, r, h.invoices.GetInvoice)
}

func (h *Handler) handleGetInvoiceByNumber(w http.ResponseWriter, r *http.Request) {
	inv, err := h.invoices.GetInvoiceByNumber(r.Context(), chi.URLParam(r, "number"))
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	h.writeJSON(w, http.StatusOK, inv)
}

func (h *Handler) handleSendInvoice(w http.ResponseWriter, r *http.Request) {
	h.invoiceAction(w, r, h.invoices.SendInvoice)
}

func (h *Handler) handleCancelInvoice(w http.ResponseWriter, r *http.Request) {
	h.invoiceAction(w, r, h.invoices.CancelInvoice)
}

func (h *Handler) invoiceAction(w http.ResponseWriter, r *http.Request, act func(ctx context.Context, id uuid.UUID) (*domain.Invoice, error)) {
	id, err := uuidParam(r, "id")
	if err != nil {
		h.badRequest(w, err.Error())
		return
	}
	inv, err := act(r.Context(), id)
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	h.writeJSON(w, http.StatusOK, inv)
}

// handleMarkPaid settles an invoice. The body carries amount,
// payment_method and the optional payment_date (RFC3339) and note; the
// recording user is taken from the X-User-ID header.
func (h *Handler) handleMarkPaid(w http.ResponseWriter, r *http.Request) {
	id, err := uuidParam(r, "id")
	if err != nil {
		h.badRequest(w, err.Error())
		return
	}
	var req port.MarkPaidReq
	if err = decodeJSON(w, r, &req); err != nil {
		h.badRequest(w, err.Error())
		return
	}
	req.RecordedBy = r.Header.Get(userHeader)

	inv, err := h.invoices.MarkAsPaid(r.Context(), id, req)
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	h.writeJSON(w, http.StatusOK, inv)
}

func (h *Handler) handleBankDetails(w http.ResponseWriter, _ *http.Request) {
	h.writeJSON(w, http.StatusOK, h.invoices.GetBankAccountDetails())
}

type sweepResponse struct {
	Marked int64 `json:"marked"`
}

// handleOverdueSweep runs the overdue batch job once. It is meant for
// operators and external schedulers; the in-process scheduler calls the use
// case directly.
func (h *Handler) handleOverdueSweep(w http.ResponseWriter, r *http.Request) {
	n, err := h.invoices.MarkOverdueInvoices(r.Context())
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	h.writeJSON(w, http.StatusOK, sweepResponse{Marked: n})
}
