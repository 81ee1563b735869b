package ports

//go:generate mockgen -source=health.go -destination=mocks/health_mock.go -package=mocks

import "context"

// HealthChecker is a backing store probed by GET /health.
type HealthChecker interface {
	Ping(ctx context.Context) error
	Name() string
}
