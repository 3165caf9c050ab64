package repository

import (
	"context"
	"errors"

	"github.com/itemhub/itemhub/internal/model"
	"gorm.io/gorm"
)

type ItemRepository interface {
	Create(ctx context.Context, item *model.Item) error
	FindByID(ctx context.Context, id string) (*model.Item, error)
	List(ctx context.Context) ([]model.Item, error)
	FindByCoverImage(ctx context.Context, coverImage string) (*model.Item, error)
}

type itemRepository struct {
	db *gorm.DB
}

func NewItemRepository(db *gorm.DB) ItemRepository {
	return &itemRepository{db: db}
}

// Create persists the item together with its additional images in one
// association write.
func (r *itemRepository) Create(ctx context.Context, item *model.Item) error {
	return r.db.WithContext(ctx).Create(item).Error
}

func (r *itemRepository) FindByID(ctx context.Context, id string) (*model.Item, error) {
	var item model.Item
	if err := r.db.WithContext(ctx).
		Preload("Images", orderByPosition).
		First(&item, "id = ?", id).Error; err != nil {
		return nil, err
	}
	return &item, nil
}

func (r *itemRepository) List(ctx context.Context) ([]model.Item, error) {
	var items []model.Item
	if err := r.db.WithContext(ctx).
		Preload("Images", orderByPosition).
		Order("created_at desc").
		Find(&items).Error; err != nil {
		return nil, err
	}
	return items, nil
}

func (r *itemRepository) FindByCoverImage(ctx context.Context, coverImage string) (*model.Item, error) {
	var item model.Item
	if err := r.db.WithContext(ctx).
		Where("cover_image = ?", coverImage).
		First(&item).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &item, nil
}

func orderByPosition(tx *gorm.DB) *gorm.DB {
	return tx.Order("position asc")
}
