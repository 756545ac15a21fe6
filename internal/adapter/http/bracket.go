package httpadapter

import (
	"net/http"

	"groupbuy/internal/core/domain"
	"groupbuy/internal/core/port"
)

func (h *Handler) handleListBrackets(w http.ResponseWriter, r *http.Request) {
	id, err := uuidParam(r, "id")
	if err != nil {
		h.badRequest(w, err.Error())
		return
	}
	list, err := h.campaigns.ListBrackets(r.Context(), id)
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	if list == nil {
		list = []domain.DiscountBracket{}
	}
	h.writeJSON(w, http.StatusOK, list)
}

// handleAddBracket appends a bracket to a DRAFT campaign. A nil
// max_quantity makes the bracket unbounded.
func (h *Handler) handleAddBracket(w http.ResponseWriter, r *http.Request) {
	id, err := uuidParam(r, "id")
	if err != nil {
		h.badRequest(w, err.Error())
		return
	}
	var req port.BracketReq
	if err = decodeJSON(w, r, &req); err != nil {
		h.badRequest(w, err.Error())
		return
	}
	b, err := h.campaigns.AddBracket(r.Context(), id, req)
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	h.writeJSON(w, http.StatusCreated, b)
}

func (h *Handler) handleUpdateBracket(w http.ResponseWriter, r *http.Request) {
	id, err := uuidParam(r, "id")
	if err != nil {
		h.badRequest(w, err.Error())
		return
	}
	bracketID, err := uuidParam(r, "bracketID")
	if err != nil {
		h.badRequest(w, err.Error())
		return
	}
	var req port.BracketReq
	if err = decodeJSON(w, r, &req); err != nil {
		h.badRequest(w, err.Error())
		return
	}
	b, err := h.campaigns.UpdateBracket(r.Context(), id, bracketID, req)
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	h.writeJSON(w, http.StatusOK, b)
}

func (h *Handler) handleDeleteBracket(w http.ResponseWriter, r *http.Request) {
	id, err := uuidParam(r, "id")
	if err != nil {
		h.badRequest(w, err.Error())
		return
	}
	bracketID, err := uuidParam(r, "bracketID")
	if err != nil {
		h.badRequest(w, err.Error())
		return
	}
	if err = h.campaigns.DeleteBracket(r.Context(), id, bracketID); err != nil {
		h.writeError(w, r, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
