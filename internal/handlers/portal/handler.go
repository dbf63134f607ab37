package portal

import (
	"fmt"
	"net/http"
	"strconv"
	"strings"
	"tripdesk/infras/otel"
	"tripdesk/internal/domains/travel/service"
	"tripdesk/internal/render"
	"tripdesk/shared/constant"
	"tripdesk/shared/failure"
	"tripdesk/shared/validator"

	"github.com/go-chi/chi/v5"

	"github.com/rs/zerolog/log"
)

const (
	msgEmptyInput = "Please enter a customer ID."
	msgNonNumeric = "Customer ID must contain only digits."
)

// Handler serves the lookup portal: a search form plus the server-rendered
// itinerary view. Each search is a full request cycle, so overlapping
// searches cannot race each other's output.
type Handler struct {
	service  service.Travel
	renderer *render.Renderer
	otel     otel.Otel
}

func New(service service.Travel, renderer *render.Renderer, otel otel.Otel) Handler {
	return Handler{
		service:  service,
		renderer: renderer,
		otel:     otel,
	}
}

func (handler *Handler) Router(router chi.Router) {
	router.Get("/", handler.Home)
	router.Get("/search", handler.Search)
}

// Home renders the empty search page.
func (handler *Handler) Home(w http.ResponseWriter, r *http.Request) {
	_, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".Home")
	defer scope.End()

	handler.renderPage(w, http.StatusOK, render.Page{})
}

// Search validates the submitted identifier and renders the result. The
// input value is kept on not-found and fetch failures, cleared on non-digit
// input and on success.
func (handler *Handler) Search(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".Search")
	defer scope.End()

	raw := strings.TrimSpace(r.URL.Query().Get(constant.RequestQueryCustomerID))

	if raw == "" {
		handler.renderPage(w, http.StatusBadRequest, render.Page{Error: msgEmptyInput})

		return
	}

	if err := validator.ValidateVar(raw, "customerid"); err != nil {
		scope.TraceError(err)
		log.Warn().Str("customer_id", raw).Msg("rejected non-numeric customer ID")

		handler.renderPage(w, http.StatusBadRequest, render.Page{Error: msgNonNumeric})

		return
	}

	customerID, err := strconv.ParseInt(raw, 10, 64)
	if err != nil {
		scope.TraceError(err)

		handler.renderPage(w, http.StatusBadRequest, render.Page{Error: msgNonNumeric})

		return
	}

	doc, err := handler.service.Aggregate(ctx, customerID)
	if err != nil {
		scope.TraceError(err)

		if failure.GetCode(err) == http.StatusNotFound {
			handler.renderPage(w, http.StatusNotFound, render.Page{
				Query: raw,
				Error: fmt.Sprintf("Customer not found (ID: %s)", raw),
			})

			return
		}

		handler.renderPage(w, http.StatusInternalServerError, render.Page{
			Query: raw,
			Error: fmt.Sprintf("Failed to fetch customer data: %s", err.Error()),
		})

		return
	}

	scope.AddEvent("Customer record rendered successfully")

	document := render.BuildDocument(doc)
	handler.renderPage(w, http.StatusOK, render.Page{Document: &document})
}

func (handler *Handler) renderPage(w http.ResponseWriter, code int, page render.Page) {
	w.Header().Set(constant.RequestHeaderContentType, constant.ContentTypeHTML)
	w.WriteHeader(code)

	if err := handler.renderer.Page(w, page); err != nil {
		log.Error().Err(err).Msg("failed to render portal page")
	}
}
