package httppresentation

import (
	"net/http"
	"strings"

	appCatalog "github.com/kashoe/chessclub-api/internal/application/catalog"
	appContact "github.com/kashoe/chessclub-api/internal/application/contact"
	appEvents "github.com/kashoe/chessclub-api/internal/application/events"
	appLessons "github.com/kashoe/chessclub-api/internal/application/lessons"
	appNewsletter "github.com/kashoe/chessclub-api/internal/application/newsletter"
	appOrders "github.com/kashoe/chessclub-api/internal/application/orders"
	appPayment "github.com/kashoe/chessclub-api/internal/application/payment"
	"github.com/kashoe/chessclub-api/internal/observability"
	"github.com/kashoe/chessclub-api/internal/observability/logctx"
)

const (
	componentHTTPHandler = "http_server"
	apiName              = "Kashoe Chess Club API"
)

// Services are the use cases exposed over HTTP.
type Services struct {
	Catalog         *appCatalog.Service
	Events          *appEvents.Service
	Lessons         *appLessons.Service
	Orders          *appOrders.Service
	Contact         *appContact.Service
	Newsletter      *appNewsletter.Service
	PaymentInitiate *appPayment.InitiateUseCase
	PaymentCallback *appPayment.CallbackUseCase
}

type Handler struct {
	svc    Services
	prefix string
	log    observability.Logger
	tel    observability.Observability
}

// NewHandler serves the API under prefix, e.g. "/api".
func NewHandler(svc Services, prefix string, logger observability.Logger, tel observability.Observability) *Handler {
	if tel == nil {
		tel = observability.Nop()
	}
	if logger == nil {
		logger = tel.Logger()
	}
	return &Handler{
		svc:    svc,
		prefix: strings.TrimRight(prefix, "/"),
		log:    logger.With(observability.F("component", componentHTTPHandler)),
		tel:    tel,
	}
}

func (h *Handler) Router() http.Handler {
	mux := http.NewServeMux()

	// Trace → ObservabilityMiddleware (request logger, metrics) → Access log → Handler
	h.muxHandle(mux, http.MethodGet, "/{$}", h.handleRoot)

	h.muxHandle(mux, http.MethodPost, "/products", h.handleCreateProduct)
	h.muxHandle(mux, http.MethodGet, "/products", h.handleListProducts)
	h.muxHandle(mux, http.MethodGet, "/products/{id}", h.handleGetProduct)
	h.muxHandle(mux, http.MethodPatch, "/products/{id}", h.handleUpdateProduct)

	h.muxHandle(mux, http.MethodPost, "/events", h.handleCreateEvent)
	h.muxHandle(mux, http.MethodGet, "/events", h.handleListEvents)
	h.muxHandle(mux, http.MethodGet, "/events/{id}", h.handleGetEvent)

	h.muxHandle(mux, http.MethodPost, "/lessons/register", h.handleRegisterLesson)
	h.muxHandle(mux, http.MethodGet, "/lessons/registrations", h.handleListLessons)
	h.muxHandle(mux, http.MethodPatch, "/lessons/registrations/{id}/status", h.handleUpdateLessonStatus)

	h.muxHandle(mux, http.MethodPost, "/orders", h.handleCreateOrder)
	h.muxHandle(mux, http.MethodGet, "/orders", h.handleListOrders)
	h.muxHandle(mux, http.MethodGet, "/orders/{id}", h.handleGetOrder)
	h.muxHandle(mux, http.MethodPatch, "/orders/{id}/status", h.handleUpdateOrderStatus)

	h.muxHandle(mux, http.MethodPost, "/contact", h.handleSubmitContact)
	h.muxHandle(mux, http.MethodGet, "/contact/submissions", h.handleListContact)

	h.muxHandle(mux, http.MethodPost, "/newsletter/subscribe", h.handleSubscribe)

	h.muxHandle(mux, http.MethodPost, "/mpesa/stk-push", h.handleSTKPush)
	h.muxHandle(mux, http.MethodPost, "/mpesa/callback", h.handleMpesaCallback)

	mux.HandleFunc("GET /health", h.handleHealth)

	return mux
}

// muxHandle registers "METHOD prefix+route". The route template doubles as the metrics label.
func (h *Handler) muxHandle(mux *http.ServeMux, method, route string, handler http.HandlerFunc) {
	template := h.prefix + route
	label := strings.TrimSuffix(template, "{$}")

	wrapped := withTrace(
		ObservabilityMiddleware(
			h.log,
			func(r *http.Request) string { return r.Header.Get(headerRequestID) },
			h.tel,
		)(
			h.withAccessLog(handler),
		),
	)
	mux.Handle(method+" "+template, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		wrapped.ServeHTTP(w, r.WithContext(contextWithRoute(r.Context(), label)))
	}))
}

type rootResponse struct {
	Message string `json:"message"`
	Status  string `json:"status"`
}

func (h *Handler) handleRoot(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, rootResponse{Message: apiName, Status: "active"})
}

func (h *Handler) handleHealth(w http.ResponseWriter, _ *http.Request) {
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write([]byte("ok"))
}

// requestLogger is the request-scoped logger, falling back to the handler's own.
func (h *Handler) requestLogger(r *http.Request) observability.Logger {
	return logctx.FromOr(r.Context(), h.log)
}
