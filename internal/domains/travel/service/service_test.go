package service_test

import (
	"context"
	"errors"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	otelMocks "tripdesk/infras/otel/mocks"
	travelMocks "tripdesk/internal/domains/travel/mocks"
	"tripdesk/internal/domains/travel/model"
	"tripdesk/internal/domains/travel/repository"
	"tripdesk/internal/domains/travel/service"
	"tripdesk/shared/failure"
)

func strPtr(s string) *string { return &s }

func TestTravelService_Aggregate(t *testing.T) {
	customer := model.Customer{CustomerID: 104, FirstName: strPtr("Amelia")}
	itineraries := []model.Itinerary{{ItineraryID: 1, CustomerID: 104, TravelClass: strPtr("ECN")}}
	bookings := []model.Booking{{BookingID: 10, ItineraryID: 1}}
	billings := []model.Billing{{BillingID: 100, BookingID: 10}}

	tests := []struct {
		name      string
		setupMock func(repo *travelMocks.MockTravel)
		wantCode  int
		wantErr   string
	}{
		{
			name: "successful aggregation",
			setupMock: func(repo *travelMocks.MockTravel) {
				repo.EXPECT().GetCustomerByID(gomock.Any(), int64(104)).Return(customer, nil)
				repo.EXPECT().GetItinerariesByCustomerID(gomock.Any(), int64(104)).Return(itineraries, nil)
				repo.EXPECT().GetBookingsByItineraryIDs(gomock.Any(), []int64{1}).Return(bookings, nil)
				repo.EXPECT().GetBillingsByBookingIDs(gomock.Any(), []int64{10}).Return(billings, nil)
			},
		},
		{
			name: "customer without itineraries",
			setupMock: func(repo *travelMocks.MockTravel) {
				repo.EXPECT().GetCustomerByID(gomock.Any(), int64(104)).Return(customer, nil)
				repo.EXPECT().GetItinerariesByCustomerID(gomock.Any(), int64(104)).Return(nil, nil)
				repo.EXPECT().GetBookingsByItineraryIDs(gomock.Any(), []int64{}).Return(nil, nil)
				repo.EXPECT().GetBillingsByBookingIDs(gomock.Any(), []int64{}).Return(nil, nil)
			},
		},
		{
			name: "customer not found",
			setupMock: func(repo *travelMocks.MockTravel) {
				repo.EXPECT().GetCustomerByID(gomock.Any(), int64(104)).
					Return(model.Customer{}, repository.ErrCustomerNotFound)
			},
			wantCode: http.StatusNotFound,
			wantErr:  "Customer not found",
		},
		{
			name: "customer query error",
			setupMock: func(repo *travelMocks.MockTravel) {
				repo.EXPECT().GetCustomerByID(gomock.Any(), int64(104)).
					Return(model.Customer{}, errors.New("connection refused"))
			},
			wantCode: http.StatusInternalServerError,
			wantErr:  "Database error",
		},
		{
			name: "itinerary query error",
			setupMock: func(repo *travelMocks.MockTravel) {
				repo.EXPECT().GetCustomerByID(gomock.Any(), int64(104)).Return(customer, nil)
				repo.EXPECT().GetItinerariesByCustomerID(gomock.Any(), int64(104)).
					Return(nil, errors.New("connection refused"))
			},
			wantCode: http.StatusInternalServerError,
			wantErr:  "Database error",
		},
		{
			name: "booking query error",
			setupMock: func(repo *travelMocks.MockTravel) {
				repo.EXPECT().GetCustomerByID(gomock.Any(), int64(104)).Return(customer, nil)
				repo.EXPECT().GetItinerariesByCustomerID(gomock.Any(), int64(104)).Return(itineraries, nil)
				repo.EXPECT().GetBookingsByItineraryIDs(gomock.Any(), []int64{1}).
					Return(nil, errors.New("connection refused"))
			},
			wantCode: http.StatusInternalServerError,
			wantErr:  "Database error",
		},
		{
			name: "billing query error",
			setupMock: func(repo *travelMocks.MockTravel) {
				repo.EXPECT().GetCustomerByID(gomock.Any(), int64(104)).Return(customer, nil)
				repo.EXPECT().GetItinerariesByCustomerID(gomock.Any(), int64(104)).Return(itineraries, nil)
				repo.EXPECT().GetBookingsByItineraryIDs(gomock.Any(), []int64{1}).Return(bookings, nil)
				repo.EXPECT().GetBillingsByBookingIDs(gomock.Any(), []int64{10}).
					Return(nil, errors.New("connection refused"))
			},
			wantCode: http.StatusInternalServerError,
			wantErr:  "Database error",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			mockRepo := travelMocks.NewMockTravel(ctrl)
			mockOtel := otelMocks.NewOtel()
			tt.setupMock(mockRepo)

			svc := service.New(mockRepo, mockOtel)

			doc, err := svc.Aggregate(context.Background(), 104)

			if tt.wantErr != "" {
				require.Error(t, err)
				assert.Equal(t, tt.wantErr, err.Error())
				assert.Equal(t, tt.wantCode, failure.GetCode(err))

				return
			}

			require.NoError(t, err)
			assert.Equal(t, int64(104), doc.Customer.CustomerID)
			assert.NotNil(t, doc.Itineraries)
		})
	}
}

func TestTravelService_Aggregate_NestsDocument(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepo := travelMocks.NewMockTravel(ctrl)
	mockRepo.EXPECT().GetCustomerByID(gomock.Any(), int64(104)).
		Return(model.Customer{CustomerID: 104}, nil)
	mockRepo.EXPECT().GetItinerariesByCustomerID(gomock.Any(), int64(104)).
		Return([]model.Itinerary{{ItineraryID: 1, CustomerID: 104}}, nil)
	mockRepo.EXPECT().GetBookingsByItineraryIDs(gomock.Any(), []int64{1}).
		Return([]model.Booking{{BookingID: 10, ItineraryID: 1}}, nil)
	mockRepo.EXPECT().GetBillingsByBookingIDs(gomock.Any(), []int64{10}).
		Return([]model.Billing{{BillingID: 100, BookingID: 10}}, nil)

	svc := service.New(mockRepo, otelMocks.NewOtel())

	doc, err := svc.Aggregate(context.Background(), 104)
	require.NoError(t, err)

	require.Len(t, doc.Itineraries, 1)
	require.Len(t, doc.Itineraries[0].Bookings, 1)
	require.Len(t, doc.Itineraries[0].Bookings[0].Billings, 1)
	assert.Equal(t, int64(100), doc.Itineraries[0].Bookings[0].Billings[0].BillingID)
}
