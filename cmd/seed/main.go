package main

import (
	"context"
	"fmt"
	"log"

	"github.com/itemhub/itemhub/internal/config"
	"github.com/itemhub/itemhub/internal/db"
	"github.com/itemhub/itemhub/internal/model"
	"github.com/itemhub/itemhub/internal/repository"
	"github.com/joho/godotenv"
)

type sample struct {
	name        string
	itemType    string
	description string
	coverImage  string
	extraImages []string
}

var samples = []sample{
	{
		name:        "Vintage Desk Lamp",
		itemType:    "Home & Garden",
		description: "Brass desk lamp with an adjustable arm, rewired and fully working.",
		coverImage:  "https://picsum.photos/seed/lamp/800/600",
		extraImages: []string{"https://picsum.photos/seed/lamp-2/800/600"},
	},
	{
		name:        "Mechanical Keyboard",
		itemType:    "Electronics",
		description: "Tenkeyless board with brown switches, barely used.",
		coverImage:  "https://picsum.photos/seed/keyboard/800/600",
	},
	{
		name:        "Paperback Box Set",
		itemType:    "Books",
		description: "Complete trilogy in good condition, light shelf wear.",
		coverImage:  "https://picsum.photos/seed/books/800/600",
		extraImages: []string{
			"https://picsum.photos/seed/books-2/800/600",
			"https://picsum.photos/seed/books-3/800/600",
		},
	},
	{
		name:        "Road Bike Helmet",
		itemType:    "Sports",
		description: "Size M, no crashes, replaced pads included.",
		coverImage:  "https://picsum.photos/seed/helmet/800/600",
	},
	{
		name:        "Wooden Train Set",
		itemType:    "Toys",
		description: "Forty-piece set, all tracks and two engines present.",
		coverImage:  "https://picsum.photos/seed/train/800/600",
	},
}

func main() {
	if err := run(); err != nil {
		log.Fatalf("seed failed: %v", err)
	}
}

func run() error {
	_ = godotenv.Load()
	ctx := context.Background()

	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}

	gdb, err := db.Connect(cfg)
	if err != nil {
		return fmt.Errorf("connect db: %w", err)
	}
	if err := gdb.AutoMigrate(&model.Item{}, &model.ItemImage{}); err != nil {
		return fmt.Errorf("auto migrate: %w", err)
	}

	repo := repository.NewItemRepository(gdb)

	inserted, skipped := 0, 0
	for _, s := range samples {
		exists, err := repo.FindByCoverImage(ctx, s.coverImage)
		if err != nil {
			return fmt.Errorf("check existing %q: %w", s.name, err)
		}
		if exists != nil {
			skipped++
			continue
		}

		images := make([]model.ItemImage, 0, len(s.extraImages))
		for i, url := range s.extraImages {
			images = append(images, model.ItemImage{ImageURL: url, Position: i})
		}
		item := &model.Item{
			Name:        s.name,
			Type:        s.itemType,
			Description: s.description,
			CoverImage:  s.coverImage,
			Images:      images,
		}
		if err := repo.Create(ctx, item); err != nil {
			return fmt.Errorf("insert %q: %w", s.name, err)
		}
		inserted++
	}

	log.Printf("seed done: inserted=%d skipped=%d", inserted, skipped)
	return nil
}
