package service

//go:generate go run go.uber.org/mock/mockgen -source=./service.go -destination=./mocks/service_mock.go -package=mocks

import (
	"context"
	"errors"
	"tripdesk/infras/otel"
	"tripdesk/internal/domains/travel/model"
	"tripdesk/internal/domains/travel/model/dto"
	"tripdesk/internal/domains/travel/repository"
	"tripdesk/shared/constant"
	"tripdesk/shared/failure"

	"github.com/rs/zerolog/log"
)

// Travel aggregates one customer's full record. Entities are materialized per
// request and discarded with the response; nothing is cached between lookups.
type Travel interface {
	Aggregate(ctx context.Context, customerID int64) (dto.ItineraryDocument, error)
}

type serviceImpl struct {
	repo repository.Travel
	otel otel.Otel
}

func New(repo repository.Travel, otel otel.Otel) Travel {
	return &serviceImpl{
		repo: repo,
		otel: otel,
	}
}

// Aggregate resolves the customer and collects its itineraries, bookings and
// billings with one batched query per level. A missing customer maps to a 404
// failure; any query error is logged in full and surfaced as the opaque
// database failure.
func (s *serviceImpl) Aggregate(ctx context.Context, customerID int64) (doc dto.ItineraryDocument, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Aggregate")
	defer scope.End()
	defer scope.TraceIfError(err)

	log.Info().Int64("customer_id", customerID).Msg("aggregating customer record")

	customer, err := s.repo.GetCustomerByID(ctx, customerID)
	if err != nil {
		if errors.Is(err, repository.ErrCustomerNotFound) {
			log.Warn().Int64("customer_id", customerID).Msg("customer not found")

			return dto.ItineraryDocument{}, failure.NotFound("Customer not found") //nolint:wrapcheck
		}

		log.Error().Err(err).Int64("customer_id", customerID).Msg("failed to get customer")

		return dto.ItineraryDocument{}, failure.Database
	}

	itineraries, err := s.repo.GetItinerariesByCustomerID(ctx, customerID)
	if err != nil {
		log.Error().Err(err).Int64("customer_id", customerID).Msg("failed to get itineraries")

		return dto.ItineraryDocument{}, failure.Database
	}

	bookings, err := s.repo.GetBookingsByItineraryIDs(ctx, itineraryIDs(itineraries))
	if err != nil {
		log.Error().Err(err).Int64("customer_id", customerID).Msg("failed to get bookings")

		return dto.ItineraryDocument{}, failure.Database
	}

	billings, err := s.repo.GetBillingsByBookingIDs(ctx, bookingIDs(bookings))
	if err != nil {
		log.Error().Err(err).Int64("customer_id", customerID).Msg("failed to get billings")

		return dto.ItineraryDocument{}, failure.Database
	}

	scope.AddEvent("Customer record aggregated successfully")
	log.Info().
		Int64("customer_id", customerID).
		Int("itineraries", len(itineraries)).
		Int("bookings", len(bookings)).
		Int("billings", len(billings)).
		Msg("customer record aggregated")

	return dto.Assemble(customer, itineraries, bookings, billings), nil
}

func itineraryIDs(itineraries []model.Itinerary) []int64 {
	ids := make([]int64, 0, len(itineraries))
	for _, itinerary := range itineraries {
		ids = append(ids, itinerary.ItineraryID)
	}

	return ids
}

func bookingIDs(bookings []model.Booking) []int64 {
	ids := make([]int64, 0, len(bookings))
	for _, booking := range bookings {
		ids = append(ids, booking.BookingID)
	}

	return ids
}
