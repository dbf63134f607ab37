package render

import (
	"tripdesk/internal/domains/travel/model/dto"
)

// Page is the full portal view: the search form state plus, after a
// successful lookup, the rendered document.
type Page struct {
	Query    string
	Error    string
	Document *Document
}

// Document is the view form of one aggregated customer record: the general
// info fields in their declared order and one collapsible section per
// itinerary.
type Document struct {
	CustomerID  int64
	Fields      []Field
	Itineraries []ItinerarySection
}

type Field struct {
	Label string
	Value string
}

type ItinerarySection struct {
	ID          int64
	ClassLabel  string
	BookingDate string
	Travellers  string
	Status      Status
	Bookings    []BookingSection
}

type BookingSection struct {
	ID          int64
	StartDate   string
	EndDate     string
	Description string
	Status      Status
	Billings    []BillingRow
}

type BillingRow struct {
	ID          int64
	Date        string
	Description string
	BasePrice   string
	AgencyFee   string
	TotalAmount string
	PaidAmount  string
}

// BuildDocument maps the JSON document into its view form. Every null field
// becomes N/A here so the templates stay purely presentational.
func BuildDocument(doc dto.ItineraryDocument) Document {
	view := Document{
		CustomerID: doc.Customer.CustomerID,
		Fields: []Field{
			{Label: "First Name", Value: Text(doc.Customer.FirstName)},
			{Label: "Last Name", Value: Text(doc.Customer.LastName)},
			{Label: "Email", Value: Text(doc.Customer.Email)},
			{Label: "Primary Phone", Value: Text(doc.Customer.PrimaryPhone)},
			{Label: "Birth Date", Value: FormatDate(doc.Customer.BirthDate)},
			{Label: "Address", Value: Text(doc.Customer.Address)},
			{Label: "City", Value: Text(doc.Customer.City)},
			{Label: "Province", Value: Text(doc.Customer.Province)},
			{Label: "Country", Value: Text(doc.Customer.Country)},
			{Label: "Postal Code", Value: Text(doc.Customer.PostalCode)},
		},
		Itineraries: make([]ItinerarySection, 0, len(doc.Itineraries)),
	}

	for _, itinerary := range doc.Itineraries {
		section := ItinerarySection{
			ID:          itinerary.ItineraryID,
			ClassLabel:  ClassLabel(itinerary.TravelClass),
			BookingDate: FormatDate(itinerary.BookingDate),
			Travellers:  Count(itinerary.NumOfTravellers),
			Status:      ItineraryStatusOf(itinerary.Bookings),
			Bookings:    make([]BookingSection, 0, len(itinerary.Bookings)),
		}

		for _, booking := range itinerary.Bookings {
			bookingSection := BookingSection{
				ID:          booking.BookingID,
				StartDate:   FormatDate(booking.StartDate),
				EndDate:     FormatDate(booking.EndDate),
				Description: Text(booking.Description),
				Status:      StatusOf(booking.Billings),
				Billings:    make([]BillingRow, 0, len(booking.Billings)),
			}

			for _, billing := range booking.Billings {
				bookingSection.Billings = append(bookingSection.Billings, BillingRow{
					ID:          billing.BillingID,
					Date:        FormatDate(billing.BillingDate),
					Description: Text(billing.BillDescription),
					BasePrice:   Money(billing.BasePrice),
					AgencyFee:   Money(billing.AgencyFee),
					TotalAmount: Money(billing.TotalAmount),
					PaidAmount:  Money(billing.PaidAmount),
				})
			}

			section.Bookings = append(section.Bookings, bookingSection)
		}

		view.Itineraries = append(view.Itineraries, section)
	}

	return view
}
