package repository

//go:generate go run go.uber.org/mock/mockgen -source=./repository.go -destination=../mocks/repository_mock.go -package=mocks

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"tripdesk/infras/otel"
	"tripdesk/infras/postgres"
	"tripdesk/internal/domains/travel/model"
	"tripdesk/shared/constant"
	"tripdesk/shared/logger"

	"github.com/jmoiron/sqlx"
	"github.com/rs/zerolog/log"
)

// ErrCustomerNotFound reports that no customer row matched the identifier.
var ErrCustomerNotFound = errors.New("customer not found")

const (
	queryCustomerByID = `
		SELECT customer_id, first_name, last_name, email, primary_phone, birth_date,
		       address, city, province, country, postal_code
		FROM ` + model.CustomerTable + `
		WHERE ` + model.FieldCustomerID + ` = $1`

	queryItinerariesByCustomerID = `
		SELECT itinerary_id, customer_id, travel_class, booking_date, num_of_travellers
		FROM ` + model.ItineraryTable + `
		WHERE ` + model.FieldCustomerID + ` = $1
		ORDER BY ` + model.FieldItineraryID

	queryBookingsByItineraryIDs = `
		SELECT booking_id, itinerary_id, start_date, end_date, description
		FROM ` + model.BookingTable + `
		WHERE ` + model.FieldItineraryID + ` IN (?)
		ORDER BY ` + model.FieldBookingID

	queryBillingsByBookingIDs = `
		SELECT billing_id, booking_id, billing_date, bill_description, base_price,
		       agency_fee, total_amount, paid_amount
		FROM ` + model.BillingTable + `
		WHERE ` + model.FieldBookingID + ` IN (?)
		ORDER BY ` + model.FieldBillingID
)

// Travel reads the customer/itinerary/booking/billing hierarchy. Children are
// fetched one query per level, keyed by the parent identifier set, instead of
// one query per parent row.
type Travel interface {
	GetCustomerByID(ctx context.Context, customerID int64) (model.Customer, error)
	GetItinerariesByCustomerID(ctx context.Context, customerID int64) ([]model.Itinerary, error)
	GetBookingsByItineraryIDs(ctx context.Context, itineraryIDs []int64) ([]model.Booking, error)
	GetBillingsByBookingIDs(ctx context.Context, bookingIDs []int64) ([]model.Billing, error)
}

type repositoryImpl struct {
	db   *postgres.Connection
	otel otel.Otel
}

func New(db *postgres.Connection, otel otel.Otel) Travel {
	return &repositoryImpl{
		db:   db,
		otel: otel,
	}
}

func (repo *repositoryImpl) GetCustomerByID(ctx context.Context, customerID int64) (customer model.Customer, err error) {
	ctx, scope := repo.otel.NewScope(ctx, constant.OtelRepositoryScopeName, constant.OtelRepositoryScopeName+"."+model.CustomerEntity+".GetCustomerByID")
	defer scope.End()
	defer scope.TraceIfError(err)

	scope.SetAttribute(constant.OtelQueryAttributeKey, queryCustomerByID)
	log.Debug().Str("entity", model.CustomerEntity).Int64("customer_id", customerID).Msg("executing customer query")

	err = repo.db.Read.GetContext(ctx, &customer, queryCustomerByID, customerID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return model.Customer{}, ErrCustomerNotFound
		}

		logger.ErrorWithStack(err)

		return model.Customer{}, fmt.Errorf("failed to get data (%s): %w", model.CustomerEntity, err)
	}

	return customer, nil
}

func (repo *repositoryImpl) GetItinerariesByCustomerID(ctx context.Context, customerID int64) (itineraries []model.Itinerary, err error) {
	ctx, scope := repo.otel.NewScope(ctx, constant.OtelRepositoryScopeName, constant.OtelRepositoryScopeName+"."+model.ItineraryEntity+".GetItinerariesByCustomerID")
	defer scope.End()
	defer scope.TraceIfError(err)

	scope.SetAttribute(constant.OtelQueryAttributeKey, queryItinerariesByCustomerID)
	log.Debug().Str("entity", model.ItineraryEntity).Int64("customer_id", customerID).Msg("executing itinerary query")

	itineraries = []model.Itinerary{}

	err = repo.db.Read.SelectContext(ctx, &itineraries, queryItinerariesByCustomerID, customerID)
	if err != nil {
		logger.ErrorWithStack(err)

		return nil, fmt.Errorf("failed to get data (%s): %w", model.ItineraryEntity, err)
	}

	return itineraries, nil
}

func (repo *repositoryImpl) GetBookingsByItineraryIDs(ctx context.Context, itineraryIDs []int64) (bookings []model.Booking, err error) {
	ctx, scope := repo.otel.NewScope(ctx, constant.OtelRepositoryScopeName, constant.OtelRepositoryScopeName+"."+model.BookingEntity+".GetBookingsByItineraryIDs")
	defer scope.End()
	defer scope.TraceIfError(err)

	bookings = []model.Booking{}

	if len(itineraryIDs) == 0 {
		return bookings, nil
	}

	query, args, err := sqlx.In(queryBookingsByItineraryIDs, itineraryIDs)
	if err != nil {
		logger.ErrorWithStack(err)

		return nil, fmt.Errorf("failed to build query (%s): %w", model.BookingEntity, err)
	}

	query = repo.db.Read.Rebind(query)
	scope.SetAttribute(constant.OtelQueryAttributeKey, query)
	log.Debug().Str("entity", model.BookingEntity).Ints64("itinerary_ids", itineraryIDs).Msg("executing booking query")

	err = repo.db.Read.SelectContext(ctx, &bookings, query, args...)
	if err != nil {
		logger.ErrorWithStack(err)

		return nil, fmt.Errorf("failed to get data (%s): %w", model.BookingEntity, err)
	}

	return bookings, nil
}

func (repo *repositoryImpl) GetBillingsByBookingIDs(ctx context.Context, bookingIDs []int64) (billings []model.Billing, err error) {
	ctx, scope := repo.otel.NewScope(ctx, constant.OtelRepositoryScopeName, constant.OtelRepositoryScopeName+"."+model.BillingEntity+".GetBillingsByBookingIDs")
	defer scope.End()
	defer scope.TraceIfError(err)

	billings = []model.Billing{}

	if len(bookingIDs) == 0 {
		return billings, nil
	}

	query, args, err := sqlx.In(queryBillingsByBookingIDs, bookingIDs)
	if err != nil {
		logger.ErrorWithStack(err)

		return nil, fmt.Errorf("failed to build query (%s): %w", model.BillingEntity, err)
	}

	query = repo.db.Read.Rebind(query)
	scope.SetAttribute(constant.OtelQueryAttributeKey, query)
	log.Debug().Str("entity", model.BillingEntity).Ints64("booking_ids", bookingIDs).Msg("executing billing query")

	err = repo.db.Read.SelectContext(ctx, &billings, query, args...)
	if err != nil {
		logger.ErrorWithStack(err)

		return nil, fmt.Errorf("failed to get data (%s): %w", model.BillingEntity, err)
	}

	return billings, nil
}
