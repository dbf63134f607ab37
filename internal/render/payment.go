package render

import (
	"math"
	"tripdesk/internal/domains/travel/model/dto"
)

type Status string

const (
	StatusPaid   Status = "paid"
	StatusUnpaid Status = "unpaid"
)

// paymentTolerance absorbs float rounding when comparing summed decimals.
const paymentTolerance = 0.01

// StatusOf derives the payment status of one billing set: paid when the
// summed total and summed paid amounts agree within tolerance. Null amounts
// count as zero, so an empty set is paid.
func StatusOf(billings []dto.BillingResponse) Status {
	var total, paid float64

	for _, billing := range billings {
		if billing.TotalAmount != nil {
			total += *billing.TotalAmount
		}

		if billing.PaidAmount != nil {
			paid += *billing.PaidAmount
		}
	}

	if math.Abs(total-paid) < paymentTolerance {
		return StatusPaid
	}

	return StatusUnpaid
}

// ItineraryStatusOf derives the payment status over the union of all billing
// sets belonging to the itinerary's bookings.
func ItineraryStatusOf(bookings []dto.BookingResponse) Status {
	var union []dto.BillingResponse

	for _, booking := range bookings {
		union = append(union, booking.Billings...)
	}

	return StatusOf(union)
}
