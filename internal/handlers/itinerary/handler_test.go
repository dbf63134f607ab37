package itinerary_test

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	otelMocks "tripdesk/infras/otel/mocks"
	"tripdesk/internal/domains/travel/model/dto"
	serviceMocks "tripdesk/internal/domains/travel/service/mocks"
	"tripdesk/internal/handlers/itinerary"
	"tripdesk/shared/failure"
)

func strPtr(s string) *string { return &s }

func setupHandler(t *testing.T) (*serviceMocks.MockTravel, *chi.Mux) {
	t.Helper()

	ctrl := gomock.NewController(t)
	t.Cleanup(ctrl.Finish)

	mockService := serviceMocks.NewMockTravel(ctrl)
	handler := itinerary.New(mockService, otelMocks.NewOtel())

	router := chi.NewRouter()
	handler.Router(router)

	return mockService, router
}

func TestGetItinerary_InvalidCustomerID(t *testing.T) {
	tests := []struct {
		name string
		path string
	}{
		{name: "letters", path: "/itinerary/abc"},
		{name: "mixed digits and letters", path: "/itinerary/12a"},
		{name: "negative number", path: "/itinerary/-1"},
		{name: "decimal number", path: "/itinerary/1.5"},
		{name: "exceeds int64 range", path: "/itinerary/99999999999999999999"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, router := setupHandler(t)

			rec := httptest.NewRecorder()
			router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, tt.path, nil))

			assert.Equal(t, http.StatusBadRequest, rec.Code)
			assert.JSONEq(t, `{"error":"Invalid customer ID"}`, rec.Body.String())
		})
	}
}

func TestGetItinerary_CustomerNotFound(t *testing.T) {
	mockService, router := setupHandler(t)
	mockService.EXPECT().
		Aggregate(gomock.Any(), int64(999)).
		Return(dto.ItineraryDocument{}, failure.NotFound("Customer not found"))

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/itinerary/999", nil))

	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.JSONEq(t, `{"message":"Customer not found"}`, rec.Body.String())
}

func TestGetItinerary_DatabaseError(t *testing.T) {
	mockService, router := setupHandler(t)
	mockService.EXPECT().
		Aggregate(gomock.Any(), int64(104)).
		Return(dto.ItineraryDocument{}, failure.Database)

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/itinerary/104", nil))

	assert.Equal(t, http.StatusInternalServerError, rec.Code)
	assert.JSONEq(t, `{"error":"Database error"}`, rec.Body.String())
}

func TestGetItinerary_Success(t *testing.T) {
	doc := dto.ItineraryDocument{
		Customer: dto.CustomerInfo{
			CustomerID: 104,
			FirstName:  strPtr("Amelia"),
		},
		Itineraries: []dto.ItineraryResponse{
			{
				ItineraryID: 1,
				TravelClass: strPtr("ECN"),
				Bookings:    []dto.BookingResponse{},
			},
		},
	}

	mockService, router := setupHandler(t)
	mockService.EXPECT().
		Aggregate(gomock.Any(), int64(104)).
		Return(doc, nil)

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/itinerary/104", nil))

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "application/json", rec.Header().Get("Content-Type"))

	// The document is the whole body; nothing wraps it.
	var body map[string]json.RawMessage
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Contains(t, body, "customer")
	assert.Contains(t, body, "itineraries")
	assert.NotContains(t, body, "data")

	var decoded dto.ItineraryDocument
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &decoded))
	assert.Equal(t, doc, decoded)
}
