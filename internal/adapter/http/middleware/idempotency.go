package middleware

import (
	"bytes"
	"context"
	"net/http"
	"time"

	"donation-ledger/internal/core/domain"
	"donation-ledger/internal/core/ports"
	"donation-ledger/pkg/apperror"
	"donation-ledger/pkg/response"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
)

const (
	HeaderIdempotencyKey = "Idempotency-Key"
	HeaderReplayed       = "Idempotent-Replayed"

	maxIdempotencyKeyLen = 128
	reservationTTL       = 30 * time.Second
)

type captureWriter struct {
	gin.ResponseWriter
	body bytes.Buffer
}

func (w *captureWriter) Write(b []byte) (int, error) {
	w.body.Write(b)
	return w.ResponseWriter.Write(b)
}

func (w *captureWriter) WriteString(s string) (int, error) {
	w.body.WriteString(s)
	return w.ResponseWriter.WriteString(s)
}

// Idempotency replays the stored response when a caller retries a
// submission with the same Idempotency-Key. Only successful responses are
// stored; a failed attempt releases the key so the caller can retry after
// fixing the request. Cache outages disable replay rather than failing
// the request.
func Idempotency(cache ports.IdempotencyCache, ttl time.Duration, log zerolog.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		raw := c.GetHeader(HeaderIdempotencyKey)
		if raw == "" {
			c.Next()
			return
		}
		if len(raw) > maxIdempotencyKeyLen {
			response.Error(c, apperror.Validation("Idempotency-Key is too long"))
			c.Abort()
			return
		}

		caller := c.ClientIP()
		if id, ok := UserID(c); ok {
			caller = id.String()
		}
		key := caller + ":" + c.Request.Method + ":" + c.FullPath() + ":" + raw
		ctx := c.Request.Context()

		cached, err := cache.Get(ctx, key)
		if err != nil {
			log.Warn().Err(err).Msg("idempotency lookup failed, processing without replay")
			c.Next()
			return
		}
		if cached != nil {
			c.Header(HeaderReplayed, "true")
			c.Data(cached.StatusCode, "application/json; charset=utf-8", cached.Body)
			c.Abort()
			return
		}

		reserved, err := cache.Reserve(ctx, key, reservationTTL)
		if err != nil {
			log.Warn().Err(err).Msg("idempotency reserve failed, processing without replay")
			c.Next()
			return
		}
		if !reserved {
			response.Error(c, apperror.ErrRequestInProgress())
			c.Abort()
			return
		}

		w := &captureWriter{ResponseWriter: c.Writer}
		c.Writer = w
		c.Next()

		// The request deadline may already have passed.
		done := context.WithoutCancel(ctx)
		status := w.Status()
		if status >= http.StatusOK && status < http.StatusMultipleChoices {
			stored := &domain.IdempotentResponse{StatusCode: status, Body: w.body.Bytes()}
			if err := cache.Set(done, key, stored, ttl); err != nil {
				log.Warn().Err(err).Msg("failed to store idempotent response")
			}
		}
		if err := cache.Release(done, key); err != nil {
			log.Warn().Err(err).Msg("failed to release idempotency reservation")
		}
	}
}
