package ioutboxrepo

import (
	"context"
	"time"

	"github.com/vinocafe/order-svc/internal/service/models/outbox"
)

// IOutboxRepository stores events that could not be published so a worker can
// retry them later.
type IOutboxRepository interface {
	Insert(ctx context.Context, msg outbox.OutboxMessage) error
	GetPendingMessages(ctx context.Context, limit int) ([]outbox.OutboxMessage, error)
	Delete(ctx context.Context, id int64) error
	UpdateRetry(ctx context.Context, id int64, retryCount int, lastError string, nextRetryAt time.Time) error
}
