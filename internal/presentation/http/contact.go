package httppresentation

import (
	"net/http"

	"github.com/kashoe/chessclub-api/internal/domain/contact"
)

func (h *Handler) handleSubmitContact(w http.ResponseWriter, r *http.Request) {
	var req contact.CreateInput
	if err := decodeJSON(w, r, &req); err != nil {
		writeDomainError(w, h.requestLogger(r), err)
		return
	}

	sub, err := h.svc.Contact.Submit(r.Context(), req)
	if err != nil {
		writeDomainError(w, h.requestLogger(r), err)
		return
	}
	writeJSON(w, http.StatusOK, sub)
}

func (h *Handler) handleListContact(w http.ResponseWriter, r *http.Request) {
	list, err := h.svc.Contact.List(r.Context())
	if err != nil {
		writeDomainError(w, h.requestLogger(r), err)
		return
	}
	writeJSON(w, http.StatusOK, nonNil(list))
}
