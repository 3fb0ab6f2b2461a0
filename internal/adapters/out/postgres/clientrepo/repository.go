package clientrepo

import (
	"context"
	"errors"

	"comptoirs/internal/core/domain/model/client"
	"comptoirs/internal/core/domain/model/kernel"
	"comptoirs/internal/pkg/errs"

	"gorm.io/gorm"
)

// GormClientRepository implements ClientRepository using GORM.
type GormClientRepository struct {
	db *gorm.DB
}

// NewGormClientRepository creates a new GORM client repository.
func NewGormClientRepository(db *gorm.DB) *GormClientRepository {
	return &GormClientRepository{db: db}
}

// Add saves a new client to the database. Used by seeding and tests; the
// order core itself never creates clients.
func (r *GormClientRepository) Add(ctx context.Context, c *client.Client) error {
	if err := c.Validate(); err != nil {
		return err
	}

	dto := fromDomain(c)
	return r.db.WithContext(ctx).Create(&dto).Error
}

// Get retrieves a client by ID.
func (r *GormClientRepository) Get(ctx context.Context, id kernel.UUID) (*client.Client, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}

	var dto ClientDTO
	if err := r.db.WithContext(ctx).First(&dto, "id = ?", id.Bytes()).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("client", id.String())
		}
		return nil, err
	}

	return toDomain(dto)
}

// TotalArticlesOrdered returns the sum of line quantities across all of the
// client's orders, shipped or not. Clients with no order history get 0.
func (r *GormClientRepository) TotalArticlesOrdered(ctx context.Context, clientID kernel.UUID) (int, error) {
	if err := clientID.Validate(); err != nil {
		return 0, err
	}

	var total int
	err := r.db.WithContext(ctx).Raw(`
		SELECT COALESCE(SUM(l.quantity), 0)
		FROM lines l
		JOIN orders o ON o.id = l.order_id
		WHERE o.client_id = ?
	`, clientID.Bytes()).Scan(&total).Error
	if err != nil {
		return 0, err
	}

	return total, nil
}
