package service

import (
	"context"
	"errors"
	"sort"
	"testing"
	"time"

	"github.com/itemhub/itemhub/internal/model"
	"gorm.io/gorm"
)

// fakeItemRepo mimics the store: it runs the model's create hook and
// keeps rows in memory, newest first on List.
type fakeItemRepo struct {
	items     []model.Item
	createErr error
}

func (f *fakeItemRepo) Create(ctx context.Context, item *model.Item) error {
	if f.createErr != nil {
		return f.createErr
	}
	if err := item.BeforeCreate(nil); err != nil {
		return err
	}
	item.CreatedAt = time.Now().Add(time.Duration(len(f.items)) * time.Second)
	item.UpdatedAt = item.CreatedAt
	f.items = append(f.items, *item)
	return nil
}

func (f *fakeItemRepo) FindByID(ctx context.Context, id string) (*model.Item, error) {
	for i := range f.items {
		if f.items[i].ID == id {
			item := f.items[i]
			return &item, nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

func (f *fakeItemRepo) List(ctx context.Context) ([]model.Item, error) {
	out := make([]model.Item, len(f.items))
	copy(out, f.items)
	sort.Slice(out, func(i, j int) bool { return out[i].CreatedAt.After(out[j].CreatedAt) })
	return out, nil
}

func (f *fakeItemRepo) FindByCoverImage(ctx context.Context, coverImage string) (*model.Item, error) {
	for i := range f.items {
		if f.items[i].CoverImage == coverImage {
			item := f.items[i]
			return &item, nil
		}
	}
	return nil, nil
}

func TestCreateRequiredFields(t *testing.T) {
	tests := []struct {
		name                                   string
		itemName, itemType, description, cover string
	}{
		{"missing name", "", "Books", "desc", "https://img/1.jpg"},
		{"missing type", "Lamp", "", "desc", "https://img/1.jpg"},
		{"missing description", "Lamp", "Books", "", "https://img/1.jpg"},
		{"missing cover", "Lamp", "Books", "desc", ""},
		{"whitespace name", "   ", "Books", "desc", "https://img/1.jpg"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo := &fakeItemRepo{}
			svc := NewItemService(repo)
			_, err := svc.Create(context.Background(), tt.itemName, tt.itemType, tt.description, tt.cover, nil)
			if !errors.Is(err, ErrValidation) {
				t.Fatalf("err=%v, want ErrValidation", err)
			}
			if len(repo.items) != 0 {
				t.Fatalf("record persisted despite validation failure")
			}
		})
	}
}

func TestCreateTrimsAndPersists(t *testing.T) {
	repo := &fakeItemRepo{}
	svc := NewItemService(repo)

	item, err := svc.Create(context.Background(), "  Lamp  ", "Home & Garden", " Desk lamp ", " https://img/1.jpg ", []string{"https://img/2.jpg"})
	if err != nil {
		t.Fatalf("Create: %v", err)
	}
	if item.Name != "Lamp" || item.Description != "Desk lamp" || item.CoverImage != "https://img/1.jpg" {
		t.Fatalf("fields not trimmed: %+v", item)
	}
	if item.ID == "" {
		t.Fatal("expected assigned id")
	}
	if item.CreatedAt.IsZero() {
		t.Fatal("expected createdAt set")
	}
	if len(item.Images) != 1 || item.Images[0].ImageURL != "https://img/2.jpg" || item.Images[0].Position != 0 {
		t.Fatalf("additional images wrong: %+v", item.Images)
	}
}

func TestCreateInvalidTypeFailsAtStore(t *testing.T) {
	repo := &fakeItemRepo{}
	svc := NewItemService(repo)

	_, err := svc.Create(context.Background(), "Chair", "Furniture", "desc", "https://img/1.jpg", nil)
	if err == nil {
		t.Fatal("expected store rejection for type outside the set")
	}
	if errors.Is(err, ErrValidation) {
		t.Fatal("category rejection must not be a validation error")
	}
	if len(repo.items) != 0 {
		t.Fatal("record persisted despite store rejection")
	}
}

func TestGetAfterCreate(t *testing.T) {
	repo := &fakeItemRepo{}
	svc := NewItemService(repo)

	created, err := svc.Create(context.Background(), "Lamp", "Home & Garden", "Desk lamp", "https://img/1.jpg", []string{"https://img/2.jpg"})
	if err != nil {
		t.Fatalf("Create: %v", err)
	}

	got, err := svc.Get(context.Background(), created.ID)
	if err != nil {
		t.Fatalf("Get: %v", err)
	}
	if got.ID != created.ID || got.Name != created.Name || got.CoverImage != created.CoverImage {
		t.Fatalf("read-back mismatch: got=%+v want=%+v", got, created)
	}
}

func TestGetUnknownID(t *testing.T) {
	svc := NewItemService(&fakeItemRepo{})
	if _, err := svc.Get(context.Background(), "never-used"); !errors.Is(err, ErrNotFound) {
		t.Fatalf("err=%v, want ErrNotFound", err)
	}
}

func TestListNewestFirst(t *testing.T) {
	repo := &fakeItemRepo{}
	svc := NewItemService(repo)

	names := []string{"First", "Second", "Third"}
	for _, n := range names {
		if _, err := svc.Create(context.Background(), n, "Other", "desc", "https://img/"+n, nil); err != nil {
			t.Fatalf("Create %s: %v", n, err)
		}
	}

	items, err := svc.List(context.Background())
	if err != nil {
		t.Fatalf("List: %v", err)
	}
	if len(items) != len(names) {
		t.Fatalf("len=%d want=%d", len(items), len(names))
	}
	for i := 1; i < len(items); i++ {
		if items[i].CreatedAt.After(items[i-1].CreatedAt) {
			t.Fatalf("not in descending createdAt order at %d", i)
		}
	}
	if items[0].Name != "Third" {
		t.Fatalf("most recent first: got %q", items[0].Name)
	}
}
