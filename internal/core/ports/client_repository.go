package ports

import (
	"context"

	"comptoirs/internal/core/domain/model/client"
	"comptoirs/internal/core/domain/model/kernel"
)

// ClientRepository defines the read-only persistence contract for clients.
// The order core never creates or modifies client records.
type ClientRepository interface {
	// Get retrieves a client by its unique identifier.
	Get(ctx context.Context, id kernel.UUID) (*client.Client, error)

	// TotalArticlesOrdered returns the sum of quantities across all lines ever
	// recorded for the client's orders. Returns 0 when the client has no history.
	TotalArticlesOrdered(ctx context.Context, clientID kernel.UUID) (int, error)
}
