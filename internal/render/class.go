package render

// travelClassLabels maps the enumerated travel-class codes stored on an
// itinerary to their customer-facing labels.
var travelClassLabels = map[string]string{
	"FST":   "First Class",
	"BSN":   "Business",
	"ECN":   "Economy",
	"OCNVI": "Ocean View Interior",
	"OCNV":  "Ocean View",
	"INT":   "Interior",
	"DELX":  "Deluxe",
	"DLX":   "Deluxe",
	"DBL":   "Double Occupancy",
	"SNG":   "Single Occupancy",
}

const unknownClassLabel = "Unknown"

// ClassLabel resolves a travel-class code to its label. Unknown or missing
// codes resolve to "Unknown".
func ClassLabel(code *string) string {
	if code == nil {
		return unknownClassLabel
	}

	label, ok := travelClassLabels[*code]
	if !ok {
		return unknownClassLabel
	}

	return label
}
