package service

import (
	"context"

	"github.com/svcbase/item-service/internal/model"
	"github.com/svcbase/item-service/internal/repository"
)

type ItemService struct {
	repo repository.ItemRepository
}

func NewItemService(repo repository.ItemRepository) *ItemService {
	return &ItemService{
		repo: repo,
	}
}

func (s *ItemService) Create(ctx context.Context, payload model.ItemPayload) (model.Item, error) {
	if err := payload.Validate(); err != nil {
		return model.Item{}, err
	}
	return s.repo.Insert(ctx, payload.Name, payload.Description)
}

func (s *ItemService) Get(ctx context.Context, id int64) (model.Item, error) {
	return s.repo.GetByID(ctx, id)
}

func (s *ItemService) List(ctx context.Context) ([]model.Item, error) {
	return s.repo.List(ctx)
}

func (s *ItemService) Update(ctx context.Context, id int64, payload model.ItemPayload) (model.Item, error) {
	if err := payload.Validate(); err != nil {
		return model.Item{}, err
	}
	return s.repo.Update(ctx, id, payload.Name, payload.Description)
}

func (s *ItemService) Delete(ctx context.Context, id int64) error {
	return s.repo.Delete(ctx, id)
}
