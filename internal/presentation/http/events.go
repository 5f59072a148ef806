package httppresentation

import (
	"net/http"

	"github.com/kashoe/chessclub-api/internal/domain/event"
)

func (h *Handler) handleCreateEvent(w http.ResponseWriter, r *http.Request) {
	var req event.CreateInput
	if err := decodeJSON(w, r, &req); err != nil {
		writeDomainError(w, h.requestLogger(r), err)
		return
	}

	e, err := h.svc.Events.Create(r.Context(), req)
	if err != nil {
		writeDomainError(w, h.requestLogger(r), err)
		return
	}
	writeJSON(w, http.StatusOK, e)
}

func (h *Handler) handleListEvents(w http.ResponseWriter, r *http.Request) {
	var status *event.Status
	if raw := r.URL.Query().Get("status"); raw != "" {
		s := event.Status(raw)
		status = &s
	}

	list, err := h.svc.Events.List(r.Context(), status)
	if err != nil {
		writeDomainError(w, h.requestLogger(r), err)
		return
	}
	writeJSON(w, http.StatusOK, nonNil(list))
}

func (h *Handler) handleGetEvent(w http.ResponseWriter, r *http.Request) {
	e, err := h.svc.Events.Get(r.Context(), r.PathValue("id"))
	if err != nil {
		writeDomainError(w, h.requestLogger(r), err)
		return
	}
	writeJSON(w, http.StatusOK, e)
}
