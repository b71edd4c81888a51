package repository

import "context"

// HealthChecker verifies connectivity to the backing store.
type HealthChecker interface {
	HealthCheck(ctx context.Context) error
}
