package middleware_test

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"sync/atomic"
	"testing"
	"time"

	"donation-ledger/internal/adapter/http/middleware"
	redisStore "donation-ledger/internal/adapter/storage/redis"
	"donation-ledger/internal/core/ports/mocks"

	"github.com/alicebob/miniredis/v2"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	goredis "github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func idempotentRouter(t *testing.T, status int, calls *atomic.Int32) (*gin.Engine, *redisStore.IdempotencyCache) {
	mr := miniredis.RunT(t)
	client := goredis.NewClient(&goredis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { _ = client.Close() })
	cache := redisStore.NewIdempotencyCache(client)

	r := gin.New()
	r.POST("/money-donations", func(c *gin.Context) {
		if id := c.GetHeader("X-Test-User"); id != "" {
			c.Set(middleware.CtxUserID, uuid.MustParse(id))
		}
		c.Next()
	}, middleware.Idempotency(cache, time.Hour, zerolog.Nop()), func(c *gin.Context) {
		n := calls.Add(1)
		c.JSON(status, gin.H{"call": n})
	})
	return r, cache
}

func post(r *gin.Engine, key, user string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodPost, "/money-donations", strings.NewReader(`{}`))
	if key != "" {
		req.Header.Set(middleware.HeaderIdempotencyKey, key)
	}
	if user != "" {
		req.Header.Set("X-Test-User", user)
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestIdempotency_ReplaysSuccessfulResponse(t *testing.T) {
	var calls atomic.Int32
	r, _ := idempotentRouter(t, http.StatusCreated, &calls)
	user := uuid.New().String()

	first := post(r, "key-1", user)
	second := post(r, "key-1", user)

	assert.Equal(t, http.StatusCreated, first.Code)
	assert.Equal(t, http.StatusCreated, second.Code)
	assert.JSONEq(t, first.Body.String(), second.Body.String())
	assert.Equal(t, "true", second.Header().Get(middleware.HeaderReplayed))
	assert.EqualValues(t, 1, calls.Load())
}

func TestIdempotency_KeysAreScopedPerCaller(t *testing.T) {
	var calls atomic.Int32
	r, _ := idempotentRouter(t, http.StatusCreated, &calls)

	post(r, "shared", uuid.New().String())
	post(r, "shared", uuid.New().String())

	assert.EqualValues(t, 2, calls.Load())
}

func TestIdempotency_FailuresAreNotStored(t *testing.T) {
	var calls atomic.Int32
	r, _ := idempotentRouter(t, http.StatusBadRequest, &calls)
	user := uuid.New().String()

	post(r, "key-2", user)
	w := post(r, "key-2", user)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Empty(t, w.Header().Get(middleware.HeaderReplayed))
	assert.EqualValues(t, 2, calls.Load())
}

func TestIdempotency_InFlightKeyConflicts(t *testing.T) {
	var calls atomic.Int32
	r, cache := idempotentRouter(t, http.StatusCreated, &calls)
	user := uuid.New().String()

	ok, err := cache.Reserve(t.Context(), user+":POST:/money-donations:key-3", time.Minute)
	require.NoError(t, err)
	require.True(t, ok)

	w := post(r, "key-3", user)
	assert.Equal(t, http.StatusConflict, w.Code)
	assert.Contains(t, w.Body.String(), "WF_003")
	assert.Zero(t, calls.Load())
}

func TestIdempotency_NoHeaderPassesThrough(t *testing.T) {
	var calls atomic.Int32
	r, _ := idempotentRouter(t, http.StatusCreated, &calls)

	post(r, "", "")
	post(r, "", "")
	assert.EqualValues(t, 2, calls.Load())
}

func TestIdempotency_CacheDownProcessesRequest(t *testing.T) {
	ctrl := gomock.NewController(t)
	cache := mocks.NewMockIdempotencyCache(ctrl)
	cache.EXPECT().Get(gomock.Any(), gomock.Any()).Return(nil, assert.AnError)

	r := gin.New()
	r.POST("/money-donations", middleware.Idempotency(cache, time.Hour, zerolog.Nop()), func(c *gin.Context) {
		c.Status(http.StatusCreated)
	})

	w := post(r, "key-4", "")
	assert.Equal(t, http.StatusCreated, w.Code)
}
