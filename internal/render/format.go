package render

import (
	"fmt"
	"strconv"
	"time"
	"tripdesk/shared/constant"
	"tripdesk/shared/timezone"
)

// FormatDate renders a date as "Month DD, YYYY" in the application timezone.
// A missing date renders as N/A; there is no "Invalid Date" variant.
func FormatDate(t *time.Time) string {
	if t == nil || t.IsZero() {
		return constant.ValueNotAvailable
	}

	return timezone.Format(*t, constant.LongDateFormat)
}

// Money renders a monetary value with a dollar prefix, N/A when null.
func Money(amount *float64) string {
	if amount == nil {
		return constant.ValueNotAvailable
	}

	return fmt.Sprintf("$%.2f", *amount)
}

// Text renders an optional string, N/A when null.
func Text(s *string) string {
	if s == nil {
		return constant.ValueNotAvailable
	}

	return *s
}

// Count renders an optional integer, N/A when null.
func Count(n *int64) string {
	if n == nil {
		return constant.ValueNotAvailable
	}

	return strconv.FormatInt(*n, 10)
}
