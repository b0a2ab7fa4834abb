package service_test

import (
	"context"
	"fmt"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"github.com/svcbase/item-service/internal/model"
	"github.com/svcbase/item-service/internal/service"
)

type MockItemRepository struct {
	mock.Mock
}

func (m *MockItemRepository) Insert(ctx context.Context, name string, description *string) (model.Item, error) {
	args := m.Called(ctx, name, description)
	return args.Get(0).(model.Item), args.Error(1)
}

func (m *MockItemRepository) GetByID(ctx context.Context, id int64) (model.Item, error) {
	args := m.Called(ctx, id)
	return args.Get(0).(model.Item), args.Error(1)
}

func (m *MockItemRepository) List(ctx context.Context) ([]model.Item, error) {
	args := m.Called(ctx)
	return args.Get(0).([]model.Item), args.Error(1)
}

func (m *MockItemRepository) Update(ctx context.Context, id int64, name string, description *string) (model.Item, error) {
	args := m.Called(ctx, id, name, description)
	return args.Get(0).(model.Item), args.Error(1)
}

func (m *MockItemRepository) Delete(ctx context.Context, id int64) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *MockItemRepository) Count(ctx context.Context) (int, error) {
	args := m.Called(ctx)
	return args.Int(0), args.Error(1)
}

func (m *MockItemRepository) Close() error {
	args := m.Called()
	return args.Error(0)
}

func strPtr(s string) *string {
	return &s
}

func TestCreate(t *testing.T) {
	mockRepo := new(MockItemRepository)
	svc := service.NewItemService(mockRepo)
	ctx := context.Background()

	expected := model.Item{ID: 1, Name: "widget", Description: strPtr("a widget")}
	mockRepo.On("Insert", ctx, "widget", strPtr("a widget")).Return(expected, nil).Once()

	item, err := svc.Create(ctx, model.ItemPayload{Name: "widget", Description: strPtr("a widget")})
	require.NoError(t, err)
	assert.Equal(t, expected, item)

	mockRepo.AssertExpectations(t)
}

func TestCreateValidation(t *testing.T) {
	mockRepo := new(MockItemRepository)
	svc := service.NewItemService(mockRepo)
	ctx := context.Background()

	tests := []struct {
		name    string
		payload model.ItemPayload
	}{
		{
			name:    "empty name",
			payload: model.ItemPayload{Name: ""},
		},
		{
			name:    "blank name",
			payload: model.ItemPayload{Name: "   "},
		},
		{
			name:    "name too long",
			payload: model.ItemPayload{Name: strings.Repeat("x", 101)},
		},
		{
			name:    "description too long",
			payload: model.ItemPayload{Name: "widget", Description: strPtr(strings.Repeat("x", 501))},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := svc.Create(ctx, tt.payload)
			require.Error(t, err)

			var validationErr *model.ValidationError
			assert.ErrorAs(t, err, &validationErr)
		})
	}

	// the repository must never be touched on invalid input
	mockRepo.AssertNotCalled(t, "Insert", mock.Anything, mock.Anything, mock.Anything)
}

func TestGetNotFound(t *testing.T) {
	mockRepo := new(MockItemRepository)
	svc := service.NewItemService(mockRepo)
	ctx := context.Background()

	mockRepo.On("GetByID", ctx, int64(42)).
		Return(model.Item{}, fmt.Errorf("%w: 42", model.ErrItemNotFound)).Once()

	_, err := svc.Get(ctx, 42)
	assert.ErrorIs(t, err, model.ErrItemNotFound)

	mockRepo.AssertExpectations(t)
}

func TestList(t *testing.T) {
	mockRepo := new(MockItemRepository)
	svc := service.NewItemService(mockRepo)
	ctx := context.Background()

	expected := []model.Item{{ID: 1, Name: "a"}, {ID: 2, Name: "b"}}
	mockRepo.On("List", ctx).Return(expected, nil).Once()

	items, err := svc.List(ctx)
	require.NoError(t, err)
	assert.Equal(t, expected, items)

	mockRepo.AssertExpectations(t)
}

func TestUpdateValidation(t *testing.T) {
	mockRepo := new(MockItemRepository)
	svc := service.NewItemService(mockRepo)

	_, err := svc.Update(context.Background(), 1, model.ItemPayload{Name: ""})
	require.Error(t, err)

	var validationErr *model.ValidationError
	assert.ErrorAs(t, err, &validationErr)
	mockRepo.AssertNotCalled(t, "Update", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}

func TestUpdateNotFound(t *testing.T) {
	mockRepo := new(MockItemRepository)
	svc := service.NewItemService(mockRepo)
	ctx := context.Background()

	mockRepo.On("Update", ctx, int64(99), "widget", (*string)(nil)).
		Return(model.Item{}, fmt.Errorf("%w: 99", model.ErrItemNotFound)).Once()

	_, err := svc.Update(ctx, 99, model.ItemPayload{Name: "widget"})
	assert.ErrorIs(t, err, model.ErrItemNotFound)

	mockRepo.AssertExpectations(t)
}

func TestDelete(t *testing.T) {
	mockRepo := new(MockItemRepository)
	svc := service.NewItemService(mockRepo)
	ctx := context.Background()

	mockRepo.On("Delete", ctx, int64(1)).Return(nil).Once()
	mockRepo.On("Delete", ctx, int64(1)).
		Return(fmt.Errorf("%w: 1", model.ErrItemNotFound)).Once()

	require.NoError(t, svc.Delete(ctx, 1))
	assert.ErrorIs(t, svc.Delete(ctx, 1), model.ErrItemNotFound)

	mockRepo.AssertExpectations(t)
}
