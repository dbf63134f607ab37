package dto

import (
	"time"
	"tripdesk/internal/domains/travel/model"
)

// ItineraryDocument is the full response for one customer lookup. Nullable
// fields stay pointers all the way to serialization so that missing values
// appear as explicit JSON null; the portal relies on null (never absence) for
// its N/A fallback.
type ItineraryDocument struct {
	Customer    CustomerInfo        `json:"customer"`
	Itineraries []ItineraryResponse `json:"itineraries"`
}

type CustomerInfo struct {
	CustomerID   int64      `json:"customer_id"`
	FirstName    *string    `json:"first_name"`
	LastName     *string    `json:"last_name"`
	Email        *string    `json:"email"`
	PrimaryPhone *string    `json:"primary_phone"`
	BirthDate    *time.Time `json:"birth_date"`
	Address      *string    `json:"address"`
	City         *string    `json:"city"`
	Province     *string    `json:"province"`
	Country      *string    `json:"country"`
	PostalCode   *string    `json:"postal_code"`
}

type ItineraryResponse struct {
	ItineraryID     int64             `json:"itinerary_id"`
	TravelClass     *string           `json:"travel_class"`
	BookingDate     *time.Time        `json:"booking_date"`
	NumOfTravellers *int64            `json:"num_of_travellers"`
	Bookings        []BookingResponse `json:"bookings"`
}

type BookingResponse struct {
	BookingID   int64             `json:"booking_id"`
	StartDate   *time.Time        `json:"start_date"`
	EndDate     *time.Time        `json:"end_date"`
	Description *string           `json:"description"`
	Billings    []BillingResponse `json:"billings"`
}

type BillingResponse struct {
	BillingID       int64      `json:"billing_id"`
	BillingDate     *time.Time `json:"billing_date"`
	BillDescription *string    `json:"bill_description"`
	BasePrice       *float64   `json:"base_price"`
	AgencyFee       *float64   `json:"agency_fee"`
	TotalAmount     *float64   `json:"total_amount"`
	PaidAmount      *float64   `json:"paid_amount"`
}

func (c *CustomerInfo) FromModel(customer model.Customer) {
	c.CustomerID = customer.CustomerID
	c.FirstName = customer.FirstName
	c.LastName = customer.LastName
	c.Email = customer.Email
	c.PrimaryPhone = customer.PrimaryPhone
	c.BirthDate = customer.BirthDate
	c.Address = customer.Address
	c.City = customer.City
	c.Province = customer.Province
	c.Country = customer.Country
	c.PostalCode = customer.PostalCode
}

func (r *ItineraryResponse) FromModel(itinerary model.Itinerary) {
	r.ItineraryID = itinerary.ItineraryID
	r.TravelClass = itinerary.TravelClass
	r.BookingDate = itinerary.BookingDate
	r.NumOfTravellers = itinerary.NumOfTravellers
	r.Bookings = []BookingResponse{}
}

func (r *BookingResponse) FromModel(booking model.Booking) {
	r.BookingID = booking.BookingID
	r.StartDate = booking.StartDate
	r.EndDate = booking.EndDate
	r.Description = booking.Description
	r.Billings = []BillingResponse{}
}

func (r *BillingResponse) FromModel(billing model.Billing) {
	r.BillingID = billing.BillingID
	r.BillingDate = billing.BillingDate
	r.BillDescription = billing.BillDescription
	r.BasePrice = billing.BasePrice
	r.AgencyFee = billing.AgencyFee
	r.TotalAmount = billing.TotalAmount
	r.PaidAmount = billing.PaidAmount
}

// Assemble builds the nested document from flat row sets, grouping bookings
// under their itinerary and billings under their booking. Empty child sets
// stay non-nil so they serialize as [] rather than null.
func Assemble(customer model.Customer, itineraries []model.Itinerary, bookings []model.Booking, billings []model.Billing) ItineraryDocument {
	billingsByBooking := make(map[int64][]BillingResponse, len(bookings))

	for _, billing := range billings {
		resp := BillingResponse{}
		resp.FromModel(billing)
		billingsByBooking[billing.BookingID] = append(billingsByBooking[billing.BookingID], resp)
	}

	bookingsByItinerary := make(map[int64][]BookingResponse, len(itineraries))

	for _, booking := range bookings {
		resp := BookingResponse{}
		resp.FromModel(booking)

		if owned, ok := billingsByBooking[booking.BookingID]; ok {
			resp.Billings = owned
		}

		bookingsByItinerary[booking.ItineraryID] = append(bookingsByItinerary[booking.ItineraryID], resp)
	}

	doc := ItineraryDocument{
		Itineraries: make([]ItineraryResponse, 0, len(itineraries)),
	}
	doc.Customer.FromModel(customer)

	for _, itinerary := range itineraries {
		resp := ItineraryResponse{}
		resp.FromModel(itinerary)

		if owned, ok := bookingsByItinerary[itinerary.ItineraryID]; ok {
			resp.Bookings = owned
		}

		doc.Itineraries = append(doc.Itineraries, resp)
	}

	return doc
}
