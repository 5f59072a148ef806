package httppresentation

import (
	"net/http"

	"github.com/kashoe/chessclub-api/internal/domain/order"
)

func (h *Handler) handleCreateOrder(w http.ResponseWriter, r *http.Request) {
	var req order.CreateInput
	if err := decodeJSON(w, r, &req); err != nil {
		writeDomainError(w, h.requestLogger(r), err)
		return
	}

	o, err := h.svc.Orders.Create(r.Context(), req)
	if err != nil {
		writeDomainError(w, h.requestLogger(r), err)
		return
	}
	writeJSON(w, http.StatusOK, o)
}

func (h *Handler) handleListOrders(w http.ResponseWriter, r *http.Request) {
	var status *order.Status
	if raw := r.URL.Query().Get("status"); raw != "" {
		s := order.Status(raw)
		status = &s
	}

	list, err := h.svc.Orders.List(r.Context(), status)
	if err != nil {
		writeDomainError(w, h.requestLogger(r), err)
		return
	}
	writeJSON(w, http.StatusOK, nonNil(list))
}

func (h *Handler) handleGetOrder(w http.ResponseWriter, r *http.Request) {
	o, err := h.svc.Orders.Get(r.Context(), r.PathValue("id"))
	if err != nil {
		writeDomainError(w, h.requestLogger(r), err)
		return
	}
	writeJSON(w, http.StatusOK, o)
}

// handleUpdateOrderStatus reads ?status=…&mpesa_reference=…, falling back to a JSON body.
func (h *Handler) handleUpdateOrderStatus(w http.ResponseWriter, r *http.Request) {
	var req order.StatusInput
	q := r.URL.Query()
	if raw := q.Get("status"); raw != "" {
		req.Status = order.Status(raw)
		req.MpesaReference = q.Get("mpesa_reference")
	} else if err := decodeOptionalJSON(w, r, &req); err != nil {
		writeDomainError(w, h.requestLogger(r), err)
		return
	}

	if err := h.svc.Orders.UpdateStatus(r.Context(), r.PathValue("id"), req); err != nil {
		writeDomainError(w, h.requestLogger(r), err)
		return
	}
	writeJSON(w, http.StatusOK, statusUpdatedResponse{
		Message: "Order status updated",
		Status:  string(req.Status),
	})
}
