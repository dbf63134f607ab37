package itinerary

import (
	"net/http"
	"strconv"
	"tripdesk/infras/otel"
	"tripdesk/internal/domains/travel/service"
	"tripdesk/shared/constant"
	"tripdesk/shared/failure"
	"tripdesk/shared/validator"
	"tripdesk/transport/http/response"

	"github.com/go-chi/chi/v5"

	"github.com/rs/zerolog/log"
)

type Handler struct {
	service service.Travel
	otel    otel.Otel
}

func New(service service.Travel, otel otel.Otel) Handler {
	return Handler{
		service: service,
		otel:    otel,
	}
}

func (handler *Handler) Router(router chi.Router) {
	router.Route("/itinerary", func(routerGroup chi.Router) {
		routerGroup.Get("/{customerID}", handler.GetItinerary)
	})
}

// GetItinerary returns the full itinerary document for one customer.
// @Summary Get a customer's itinerary document
// @Description Retrieve the customer's record with all itineraries, bookings and billings nested.
// @Tags Itinerary
// @Accept json
// @Produce json
// @Param customerID path string true "Customer ID (digits only)"
// @Success 200 {object} dto.ItineraryDocument "Aggregated customer record"
// @Failure 400 {object} response.Error
// @Failure 404 {object} response.Message
// @Failure 500 {object} response.Error
// @Router /itinerary/{customerID} [get]
func (handler *Handler) GetItinerary(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetItinerary")
	defer scope.End()

	param := chi.URLParam(r, constant.RequestParamCustomerID)

	log.Info().Str("customer_id", param).Msg("received itinerary request")

	if err := validator.ValidateVar(param, "required,customerid"); err != nil {
		scope.TraceError(err)
		log.Warn().Str("customer_id", param).Msg("invalid customer ID provided")

		response.WithError(w, failure.InvalidCustomerID)

		return
	}

	customerID, err := strconv.ParseInt(param, 10, 64)
	if err != nil {
		scope.TraceError(err)
		log.Warn().Str("customer_id", param).Msg("customer ID out of range")

		response.WithError(w, failure.InvalidCustomerID)

		return
	}

	doc, err := handler.service.Aggregate(ctx, customerID)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Int64("customer_id", customerID).Msg("failed to aggregate customer record")

		// Not-found uses the message envelope, every other failure the
		// error envelope; both bodies are part of the endpoint contract.
		if failure.GetCode(err) == http.StatusNotFound {
			response.WithMessage(w, http.StatusNotFound, err.Error())

			return
		}

		response.WithError(w, err)

		return
	}

	scope.AddEvent("Customer record retrieved successfully")

	response.WithJSON(w, http.StatusOK, doc)
}
