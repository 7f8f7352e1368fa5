package ports

import (
	"airlift-load-service/internal/domain"
	"context"
)

// Port: boundary for storing and retrieving pending cargo requests.
type CargoRepository interface {
	// Retrieve all pending requests in submission order.
	ListPending(ctx context.Context) ([]domain.CargoItem, error)
	// Append quantity requests of one type, attributes filled from the
	// preset table. Returns the number of rows added.
	AddRequests(ctx context.Context, t domain.ItemType, priority, quantity int) (int, error)
	// Drop every pending request and reset the submission sequence.
	ClearRequests(ctx context.Context) error
}
