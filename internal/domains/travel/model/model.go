package model

import (
	"time"
)

const (
	CustomerTable  = "customers"
	CustomerEntity = "customer"

	FieldCustomerID = "customer_id"
)

const (
	ItineraryTable  = "itineraries"
	ItineraryEntity = "itinerary"

	FieldItineraryID = "itinerary_id"
)

const (
	BookingTable  = "bookings"
	BookingEntity = "booking"

	FieldBookingID = "booking_id"
)

const (
	BillingTable  = "billings"
	BillingEntity = "billing"

	FieldBillingID = "billing_id"
)

// Customer is a read-only projection of one customer row. Every column except
// the identifier is nullable in the source schema, so everything scans into
// pointers.
type Customer struct {
	CustomerID   int64      `db:"customer_id"`
	FirstName    *string    `db:"first_name"`
	LastName     *string    `db:"last_name"`
	Email        *string    `db:"email"`
	PrimaryPhone *string    `db:"primary_phone"`
	BirthDate    *time.Time `db:"birth_date"`
	Address      *string    `db:"address"`
	City         *string    `db:"city"`
	Province     *string    `db:"province"`
	Country      *string    `db:"country"`
	PostalCode   *string    `db:"postal_code"`
}

// Itinerary belongs to exactly one customer. TravelClass is a short enumerated
// code (FST, BSN, ECN, ...) resolved to a label at render time.
type Itinerary struct {
	ItineraryID     int64      `db:"itinerary_id"`
	CustomerID      int64      `db:"customer_id"`
	TravelClass     *string    `db:"travel_class"`
	BookingDate     *time.Time `db:"booking_date"`
	NumOfTravellers *int64     `db:"num_of_travellers"`
}

// Booking belongs to exactly one itinerary.
type Booking struct {
	BookingID   int64      `db:"booking_id"`
	ItineraryID int64      `db:"itinerary_id"`
	StartDate   *time.Time `db:"start_date"`
	EndDate     *time.Time `db:"end_date"`
	Description *string    `db:"description"`
}

// Billing belongs to exactly one booking. Monetary columns are decimal(10,2)
// in the schema and scan into float pointers; a null paid_amount counts as
// zero when payment status is derived but still renders as N/A.
type Billing struct {
	BillingID       int64      `db:"billing_id"`
	BookingID       int64      `db:"booking_id"`
	BillingDate     *time.Time `db:"billing_date"`
	BillDescription *string    `db:"bill_description"`
	BasePrice       *float64   `db:"base_price"`
	AgencyFee       *float64   `db:"agency_fee"`
	TotalAmount     *float64   `db:"total_amount"`
	PaidAmount      *float64   `db:"paid_amount"`
}
