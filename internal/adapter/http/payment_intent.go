package httpadapter

import (
	"net/http"

	"groupbuy/internal/core/domain"
)

func (h *Handler) handleGetPaymentIntent(w http.ResponseWriter, r *http.Request) {
	id, err := uuidParam(r, "id")
	if err != nil {
		h.badRequest(w, err.Error())
		return
	}
	pi, err := h.intents.GetPaymentIntent(r.Context(), id)
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	h.writeJSON(w, http.StatusOK, pi)
}

type paymentStatusReq struct {
	Status domain.PaymentIntentStatus `json:"status"`
}

// handleUpdatePaymentStatus is called by the collection orchestrator after
// each charge attempt. Illegal steps, such as skipping a retry stage, are
// answered with 400.
func (h *Handler) handleUpdatePaymentStatus(w http.ResponseWriter, r *http.Request) {
	id, err := uuidParam(r, "id")
	if err != nil {
		h.badRequest(w, err.Error())
		return
	}
	var req paymentStatusReq
	if err = decodeJSON(w, r, &req); err != nil {
		h.badRequest(w, err.Error())
		return
	}
	pi, err := h.intents.UpdatePaymentStatus(r.Context(), id, req.Status)
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	h.writeJSON(w, http.StatusOK, pi)
}
