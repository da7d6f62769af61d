package repository

import (
	"context"
	"time"

	"github.com/alexanderramin/tempo/internal/domain"
)

type ItemRepo interface {
	Create(ctx context.Context, i *domain.Item) error
	GetByID(ctx context.Context, id string) (*domain.Item, error)
	// ListRange returns scheduled items whose interval intersects
	// [from, to). Floating items never match.
	ListRange(ctx context.Context, from, to time.Time) ([]*domain.Item, error)
	// ListAll returns every item, optionally including done/dropped ones.
	ListAll(ctx context.Context, includeClosed bool) ([]*domain.Item, error)
	Update(ctx context.Context, i *domain.Item) error
	Delete(ctx context.Context, id string) error
}
