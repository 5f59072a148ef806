package httppresentation

import (
	"net/http"
	"strconv"

	"github.com/kashoe/chessclub-api/internal/domain/payment"
	"github.com/kashoe/chessclub-api/internal/domain/validate"
	"github.com/kashoe/chessclub-api/internal/observability"
)

// handleSTKPush takes phone_number, amount and order_id from the query string or a JSON body.
func (h *Handler) handleSTKPush(w http.ResponseWriter, r *http.Request) {
	var req payment.InitiateRequest
	q := r.URL.Query()
	if q.Has("phone_number") || q.Has("amount") || q.Has("order_id") {
		req.PhoneNumber = q.Get("phone_number")
		req.OrderID = q.Get("order_id")
		if raw := q.Get("amount"); raw != "" {
			amount, err := strconv.ParseFloat(raw, 64)
			if err != nil {
				writeDomainError(w, h.requestLogger(r), validate.Field("amount", "value is not a valid number"))
				return
			}
			req.Amount = &amount
		}
	} else if err := decodeJSON(w, r, &req); err != nil {
		writeDomainError(w, h.requestLogger(r), err)
		return
	}

	res, err := h.svc.PaymentInitiate.Execute(r.Context(), req)
	if err != nil {
		writeDomainError(w, h.requestLogger(r), err)
		return
	}
	writeJSON(w, http.StatusOK, res)
}

// handleMpesaCallback acknowledges every callback, including unreadable ones.
func (h *Handler) handleMpesaCallback(w http.ResponseWriter, r *http.Request) {
	var payload map[string]any
	if err := decodeOptionalJSON(w, r, &payload); err != nil {
		h.requestLogger(r).Warn("mpesa_callback_unreadable", observability.Err(err))
	}

	res, _ := h.svc.PaymentCallback.Execute(r.Context(), payload)
	writeJSON(w, http.StatusOK, res)
}
