package httppresentation

import (
	"net/http"

	"github.com/kashoe/chessclub-api/internal/domain/newsletter"
)

// handleSubscribe answers 200 for both a new and a reactivated subscription.
func (h *Handler) handleSubscribe(w http.ResponseWriter, r *http.Request) {
	var req newsletter.SubscribeInput
	if err := decodeJSON(w, r, &req); err != nil {
		writeDomainError(w, h.requestLogger(r), err)
		return
	}

	sub, _, err := h.svc.Newsletter.Subscribe(r.Context(), req)
	if err != nil {
		writeDomainError(w, h.requestLogger(r), err)
		return
	}
	writeJSON(w, http.StatusOK, sub)
}
