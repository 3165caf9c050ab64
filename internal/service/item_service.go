package service

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/itemhub/itemhub/internal/model"
	"github.com/itemhub/itemhub/internal/repository"
	"gorm.io/gorm"
)

var (
	ErrNotFound   = errors.New("not found")
	ErrValidation = errors.New("validation failed")
)

type ItemService interface {
	Create(ctx context.Context, name, itemType, description, coverImage string, additionalImages []string) (*model.Item, error)
	Get(ctx context.Context, id string) (*model.Item, error)
	List(ctx context.Context) ([]model.Item, error)
}

type itemService struct {
	repo repository.ItemRepository
}

func NewItemService(repo repository.ItemRepository) ItemService {
	return &itemService{repo: repo}
}

// Create persists a new item. Required-field checks happen here; the
// category set is enforced by the store at write time.
func (s *itemService) Create(ctx context.Context, name, itemType, description, coverImage string, additionalImages []string) (*model.Item, error) {
	name = strings.TrimSpace(name)
	itemType = strings.TrimSpace(itemType)
	description = strings.TrimSpace(description)
	coverImage = strings.TrimSpace(coverImage)

	if name == "" || len(name) > 120 {
		return nil, fmt.Errorf("%w: name is required", ErrValidation)
	}
	if itemType == "" {
		return nil, fmt.Errorf("%w: type is required", ErrValidation)
	}
	if description == "" {
		return nil, fmt.Errorf("%w: description is required", ErrValidation)
	}
	if coverImage == "" {
		return nil, fmt.Errorf("%w: coverImage is required", ErrValidation)
	}

	images := make([]model.ItemImage, 0, len(additionalImages))
	for i, url := range additionalImages {
		images = append(images, model.ItemImage{ImageURL: url, Position: i})
	}

	item := &model.Item{
		Name:        name,
		Type:        itemType,
		Description: description,
		CoverImage:  coverImage,
		Images:      images,
	}
	if err := s.repo.Create(ctx, item); err != nil {
		return nil, err
	}
	return item, nil
}

func (s *itemService) Get(ctx context.Context, id string) (*model.Item, error) {
	item, err := s.repo.FindByID(ctx, strings.TrimSpace(id))
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return item, nil
}

func (s *itemService) List(ctx context.Context) ([]model.Item, error) {
	return s.repo.List(ctx)
}
