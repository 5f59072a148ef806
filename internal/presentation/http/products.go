package httppresentation

import (
	"net/http"
	"strconv"

	"github.com/kashoe/chessclub-api/internal/domain/product"
	"github.com/kashoe/chessclub-api/internal/domain/validate"
)

func (h *Handler) handleCreateProduct(w http.ResponseWriter, r *http.Request) {
	var req product.CreateInput
	if err := decodeJSON(w, r, &req); err != nil {
		writeDomainError(w, h.requestLogger(r), err)
		return
	}

	p, err := h.svc.Catalog.Create(r.Context(), req)
	if err != nil {
		writeDomainError(w, h.requestLogger(r), err)
		return
	}
	writeJSON(w, http.StatusOK, p)
}

// handleListProducts: ?category=…&is_active=… with is_active defaulting to true.
func (h *Handler) handleListProducts(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	filter := product.ListFilter{IsActive: true}
	if raw := q.Get("is_active"); raw != "" {
		v, err := strconv.ParseBool(raw)
		if err != nil {
			writeDomainError(w, h.requestLogger(r), validate.Field("is_active", "value could not be parsed to a boolean"))
			return
		}
		filter.IsActive = v
	}
	if raw := q.Get("category"); raw != "" {
		c := product.Category(raw)
		filter.Category = &c
	}

	list, err := h.svc.Catalog.List(r.Context(), filter)
	if err != nil {
		writeDomainError(w, h.requestLogger(r), err)
		return
	}
	writeJSON(w, http.StatusOK, nonNil(list))
}

func (h *Handler) handleGetProduct(w http.ResponseWriter, r *http.Request) {
	p, err := h.svc.Catalog.Get(r.Context(), r.PathValue("id"))
	if err != nil {
		writeDomainError(w, h.requestLogger(r), err)
		return
	}
	writeJSON(w, http.StatusOK, p)
}

func (h *Handler) handleUpdateProduct(w http.ResponseWriter, r *http.Request) {
	var req product.UpdateInput
	if err := decodeOptionalJSON(w, r, &req); err != nil {
		writeDomainError(w, h.requestLogger(r), err)
		return
	}

	p, err := h.svc.Catalog.Update(r.Context(), r.PathValue("id"), req)
	if err != nil {
		writeDomainError(w, h.requestLogger(r), err)
		return
	}
	writeJSON(w, http.StatusOK, p)
}
