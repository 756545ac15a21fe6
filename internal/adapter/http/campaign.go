package httpadapter

import (
	"context"
	"net/http"

	"github.com/google/uuid"

	"groupbuy/internal/core/domain"
	"groupbuy/internal/core/port"
)

func (h *Handler) handleCreateCampaign(w http.ResponseWriter, r *http.Request) {
	var req port.CampaignReq
	if err := decodeJSON(w, r, &req); err != nil {
		h.badRequest(w, err.Error())
		return
	}
	c, err := h.campaigns.CreateCampaign(r.Context(), req)
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	h.writeJSON(w, http.StatusCreated, c)
}

// handleListCampaigns accepts optional `supplier_id` (UUID) and `status`
// query parameters.
func (h *Handler) handleListCampaigns(w http.ResponseWriter, r *http.Request) {
	var (
		q      = r.URL.Query()
		filter port.CampaignFilter
	)
	if sid := q.Get("supplier_id"); sid != "" {
		id, err := uuid.Parse(sid)
		if err != nil {
			h.badRequest(w, "invalid supplier_id")
			return
		}
		filter.SupplierOrganizationID = &id
	}
	if st := q.Get("status"); st != "" {
		status := domain.CampaignStatus(st)
		filter.Status = &status
	}

	list, err := h.campaigns.ListCampaigns(r.Context(), filter)
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	if list == nil {
		list = []domain.Campaign{}
	}
	h.writeJSON(w, http.StatusOK, list)
}

func (h *Handler) handleGetCampaign(w http.ResponseWriter, r *http.Request) {
	id, err := uuidParam(r, "id")
	if err != nil {
		h.badRequest(w, err.Error())
		return
	}
	c, err := h.campaigns.GetCampaign(r.Context(), id)
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	h.writeJSON(w, http.StatusOK, c)
}

func (h *Handler) handleUpdateCampaign(w http.ResponseWriter, r *http.Request) {
	id, err := uuidParam(r, "id")
	if err != nil {
		h.badRequest(w, err.Error())
		return
	}
	var req port.CampaignReq
	if err = decodeJSON(w, r, &req); err != nil {
		h.badRequest(w, err.Error())
		return
	}
	c, err := h.campaigns.UpdateCampaign(r.Context(), id, req)
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	h.writeJSON(w, http.StatusOK, c)
}

func (h *Handler) handleDeleteCampaign(w http.ResponseWriter, r *http.Request) {
	id, err := uuidParam(r, "id")
	if err != nil {
		h.badRequest(w, err.Error())
		return
	}
	if err = h.campaigns.DeleteCampaign(r.Context(), id); err != nil {
		h.writeError(w, r, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (h *Handler) handlePublishCampaign(w http.ResponseWriter, r *http.Request) {
	h.campaignAction(w, r, h.campaigns.PublishCampaign)
}

func (h *Handler) handleCancelCampaign(w http.ResponseWriter, r *http.Request) {
	h.campaignAction(w, r, h.campaigns.CancelCampaign)
}

func (h *Handler) handleCompleteCampaign(w http.ResponseWriter, r *http.Request) {
	h.campaignAction(w, r, h.campaigns.CompleteCampaign)
}

func (h *Handler) campaignAction(w http.ResponseWriter, r *http.Request, act func(ctx context.Context, id uuid.UUID) (*domain.Campaign, error)) {
	id, err := uuidParam(r, "id")
	if err != nil {
		h.badRequest(w, err.Error())
		return
	}
	c, err := act(r.Context(), id)
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	h.writeJSON(w, http.StatusOK, c)
}

// handleLockCampaign locks the campaign at its current bracket and returns
// the invoices generated for its committed pledges.
func (h *Handler) handleLockCampaign(w http.ResponseWriter, r *http.Request) {
	id, err := uuidParam(r, "id")
	if err != nil {
		h.badRequest(w, err.Error())
		return
	}
	res, err := h.campaigns.LockCampaign(r.Context(), id)
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	if res.Invoices == nil {
		res.Invoices = []domain.Invoice{}
	}
	h.writeJSON(w, http.StatusOK, res)
}

func (h *Handler) handleGetPricing(w http.ResponseWriter, r *http.Request) {
	id, err := uuidParam(r, "id")
	if err != nil {
		h.badRequest(w, err.Error())
		return
	}
	snap, err := h.campaigns.GetPricing(r.Context(), id)
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	h.writeJSON(w, http.StatusOK, snap)
}
