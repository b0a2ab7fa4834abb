package repository

import (
	"context"

	"github.com/svcbase/item-service/internal/model"
)

type ItemRepository interface {
	Insert(ctx context.Context, name string, description *string) (model.Item, error)
	GetByID(ctx context.Context, id int64) (model.Item, error)
	List(ctx context.Context) ([]model.Item, error)
	Update(ctx context.Context, id int64, name string, description *string) (model.Item, error)
	Delete(ctx context.Context, id int64) error
	Count(ctx context.Context) (int, error)
	Close() error
}
