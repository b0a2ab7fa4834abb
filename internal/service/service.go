package service

import (
	"context"

	"github.com/svcbase/item-service/internal/model"
)

type ItemServiceInterface interface {
	Create(ctx context.Context, payload model.ItemPayload) (model.Item, error)
	Get(ctx context.Context, id int64) (model.Item, error)
	List(ctx context.Context) ([]model.Item, error)
	Update(ctx context.Context, id int64, payload model.ItemPayload) (model.Item, error)
	Delete(ctx context.Context, id int64) error
}
