package portal_test

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"

	otelMocks "tripdesk/infras/otel/mocks"
	"tripdesk/internal/domains/travel/model/dto"
	serviceMocks "tripdesk/internal/domains/travel/service/mocks"
	"tripdesk/internal/handlers/portal"
	"tripdesk/internal/render"
	"tripdesk/shared/failure"
)

func strPtr(s string) *string { return &s }

func setupHandler(t *testing.T) (*serviceMocks.MockTravel, *chi.Mux) {
	t.Helper()

	ctrl := gomock.NewController(t)
	t.Cleanup(ctrl.Finish)

	mockService := serviceMocks.NewMockTravel(ctrl)
	handler := portal.New(mockService, render.New(), otelMocks.NewOtel())

	router := chi.NewRouter()
	handler.Router(router)

	return mockService, router
}

func TestHome(t *testing.T) {
	_, router := setupHandler(t)

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/", nil))

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "text/html; charset=utf-8", rec.Header().Get("Content-Type"))
	assert.Contains(t, rec.Body.String(), "Customer Itinerary Lookup")
	assert.NotContains(t, rec.Body.String(), "general-info")
}

func TestSearch_EmptyInput(t *testing.T) {
	tests := []struct {
		name string
		path string
	}{
		{name: "missing parameter", path: "/search"},
		{name: "blank parameter", path: "/search?customer_id="},
		{name: "whitespace only", path: "/search?customer_id=%20%20"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, router := setupHandler(t)

			rec := httptest.NewRecorder()
			router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, tt.path, nil))

			assert.Equal(t, http.StatusBadRequest, rec.Code)
			assert.Contains(t, rec.Body.String(), "Please enter a customer ID.")
		})
	}
}

func TestSearch_NonNumericInput(t *testing.T) {
	_, router := setupHandler(t)

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/search?customer_id=12ab", nil))

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, rec.Body.String(), "Customer ID must contain only digits.")
	// Rejected input is not echoed back into the form.
	assert.Contains(t, rec.Body.String(), `value=""`)
}

func TestSearch_CustomerNotFound(t *testing.T) {
	mockService, router := setupHandler(t)
	mockService.EXPECT().
		Aggregate(gomock.Any(), int64(999)).
		Return(dto.ItineraryDocument{}, failure.NotFound("Customer not found"))

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/search?customer_id=999", nil))

	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.Contains(t, rec.Body.String(), "Customer not found (ID: 999)")
	// The searched value stays in the form for correction.
	assert.Contains(t, rec.Body.String(), `value="999"`)
}

func TestSearch_FetchFailure(t *testing.T) {
	mockService, router := setupHandler(t)
	mockService.EXPECT().
		Aggregate(gomock.Any(), int64(104)).
		Return(dto.ItineraryDocument{}, failure.Database)

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/search?customer_id=104", nil))

	assert.Equal(t, http.StatusInternalServerError, rec.Code)
	assert.Contains(t, rec.Body.String(), "Failed to fetch customer data: Database error")
	assert.Contains(t, rec.Body.String(), `value="104"`)
}

func TestSearch_Success(t *testing.T) {
	doc := dto.ItineraryDocument{
		Customer: dto.CustomerInfo{
			CustomerID: 104,
			FirstName:  strPtr("Amelia"),
			LastName:   strPtr("Tremblay"),
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
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/search?customer_id=104", nil))

	assert.Equal(t, http.StatusOK, rec.Code)

	html := rec.Body.String()
	assert.Contains(t, html, "General Information")
	assert.Contains(t, html, "Amelia")
	assert.Contains(t, html, "Itinerary #1 - Economy")
	// The form resets after a successful lookup.
	assert.Contains(t, html, `value=""`)
}

func TestSearch_TrimsSurroundingWhitespace(t *testing.T) {
	mockService, router := setupHandler(t)
	mockService.EXPECT().
		Aggregate(gomock.Any(), int64(104)).
		Return(dto.ItineraryDocument{Customer: dto.CustomerInfo{CustomerID: 104}, Itineraries: []dto.ItineraryResponse{}}, nil)

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/search?customer_id=%20104%20", nil))

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "General Information")
}
