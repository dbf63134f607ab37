package middleware_test

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"

	"tripdesk/config"
	otelMocks "tripdesk/infras/otel/mocks"
	"tripdesk/shared/cache"
	cacheMocks "tripdesk/shared/cache/mocks"
	"tripdesk/transport/http/middleware"
)

func limiterConfig(enable bool, maxRequests, windowSeconds int) *config.Config {
	cfg := &config.Config{}
	cfg.App.RateLimiter.Enable = enable
	cfg.App.RateLimiter.MaxRequests = maxRequests
	cfg.App.RateLimiter.WindowSeconds = windowSeconds

	return cfg
}

func serveLimited(t *testing.T, cfg *config.Config, setupMock func(*cacheMocks.MockRedisCache)) (*httptest.ResponseRecorder, *bool) {
	t.Helper()

	ctrl := gomock.NewController(t)
	t.Cleanup(ctrl.Finish)

	mockCache := cacheMocks.NewMockRedisCache(ctrl)
	setupMock(mockCache)

	mw := middleware.NewAppMiddleware(otelMocks.NewOtel(), cfg, mockCache)

	nextCalled := false
	next := http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		nextCalled = true
		w.WriteHeader(http.StatusOK)
	})

	rec := httptest.NewRecorder()
	mw.RateLimit()(next).ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/itinerary/104", nil))

	return rec, &nextCalled
}

func TestRateLimit_DisabledPassesThrough(t *testing.T) {
	rec, nextCalled := serveLimited(t, limiterConfig(false, 1, 60), func(_ *cacheMocks.MockRedisCache) {})

	assert.True(t, *nextCalled)
	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestRateLimit_FirstRequestCountsAndSetsHeaders(t *testing.T) {
	rec, nextCalled := serveLimited(t, limiterConfig(true, 2, 60), func(mockCache *cacheMocks.MockRedisCache) {
		mockCache.EXPECT().
			Get(gomock.Any(), "limiter:192.0.2.1:1234:unknown", gomock.Any()).
			Return(cache.Nil)
		mockCache.EXPECT().
			Save(gomock.Any(), "limiter:192.0.2.1:1234:unknown", 1, 60).
			Return(nil)
	})

	assert.True(t, *nextCalled)
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "2", rec.Header().Get("X-RateLimit-Limit"))
	assert.Equal(t, "1", rec.Header().Get("X-RateLimit-Remaining"))
	assert.Equal(t, "60", rec.Header().Get("X-RateLimit-Window"))
}

func TestRateLimit_OverLimitRejects(t *testing.T) {
	rec, nextCalled := serveLimited(t, limiterConfig(true, 2, 60), func(mockCache *cacheMocks.MockRedisCache) {
		mockCache.EXPECT().
			Get(gomock.Any(), gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, _ string, value any) error {
				count, ok := value.(*int)
				if !ok {
					t.Fatal("expected *int counter")
				}
				*count = 2

				return nil
			})
	})

	assert.False(t, *nextCalled)
	assert.Equal(t, http.StatusTooManyRequests, rec.Code)
	assert.JSONEq(t, `{"message":"REQUEST LIMIT EXCEEDED"}`, rec.Body.String())
}

func TestRateLimit_CacheGetFailureFallsOpen(t *testing.T) {
	rec, nextCalled := serveLimited(t, limiterConfig(true, 1, 60), func(mockCache *cacheMocks.MockRedisCache) {
		mockCache.EXPECT().
			Get(gomock.Any(), gomock.Any(), gomock.Any()).
			Return(errors.New("connection refused"))
	})

	assert.True(t, *nextCalled)
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Empty(t, rec.Header().Get("X-RateLimit-Limit"))
}

func TestRateLimit_CacheSaveFailureFallsOpen(t *testing.T) {
	rec, nextCalled := serveLimited(t, limiterConfig(true, 1, 60), func(mockCache *cacheMocks.MockRedisCache) {
		mockCache.EXPECT().
			Get(gomock.Any(), gomock.Any(), gomock.Any()).
			Return(cache.Nil)
		mockCache.EXPECT().
			Save(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
			Return(errors.New("connection refused"))
	})

	assert.True(t, *nextCalled)
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Empty(t, rec.Header().Get("X-RateLimit-Limit"))
}
