package httppresentation

import (
	"net/http"

	"github.com/kashoe/chessclub-api/internal/domain/lesson"
)

type statusUpdatedResponse struct {
	Message string `json:"message"`
	Status  string `json:"status"`
}

func (h *Handler) handleRegisterLesson(w http.ResponseWriter, r *http.Request) {
	var req lesson.CreateInput
	if err := decodeJSON(w, r, &req); err != nil {
		writeDomainError(w, h.requestLogger(r), err)
		return
	}

	reg, err := h.svc.Lessons.Register(r.Context(), req)
	if err != nil {
		writeDomainError(w, h.requestLogger(r), err)
		return
	}
	writeJSON(w, http.StatusOK, reg)
}

func (h *Handler) handleListLessons(w http.ResponseWriter, r *http.Request) {
	var status *lesson.Status
	if raw := r.URL.Query().Get("status"); raw != "" {
		s := lesson.Status(raw)
		status = &s
	}

	list, err := h.svc.Lessons.List(r.Context(), status)
	if err != nil {
		writeDomainError(w, h.requestLogger(r), err)
		return
	}
	writeJSON(w, http.StatusOK, nonNil(list))
}

// handleUpdateLessonStatus reads ?status=…, falling back to a JSON body.
func (h *Handler) handleUpdateLessonStatus(w http.ResponseWriter, r *http.Request) {
	var req lesson.StatusInput
	if raw := r.URL.Query().Get("status"); raw != "" {
		req.Status = lesson.Status(raw)
	} else if err := decodeOptionalJSON(w, r, &req); err != nil {
		writeDomainError(w, h.requestLogger(r), err)
		return
	}

	if err := h.svc.Lessons.UpdateStatus(r.Context(), r.PathValue("id"), req); err != nil {
		writeDomainError(w, h.requestLogger(r), err)
		return
	}
	writeJSON(w, http.StatusOK, statusUpdatedResponse{
		Message: "Status updated successfully",
		Status:  string(req.Status),
	})
}
