package model

import (
	"fmt"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type Item struct {
	ID          string      `gorm:"primaryKey;size:36"`
	Name        string      `gorm:"size:120;not null"`
	Type        string      `gorm:"size:32;not null"`
	Description string      `gorm:"type:text;not null"`
	CoverImage  string      `gorm:"column:cover_image;size:512;not null"`
	Images      []ItemImage `gorm:"foreignKey:ItemID;references:ID"`
	CreatedAt   time.Time   `gorm:"autoCreateTime"`
	UpdatedAt   time.Time   `gorm:"autoUpdateTime"`
}

func (Item) TableName() string {
	return "items"
}

// BeforeCreate assigns the id and enforces category membership at write
// time, mirroring an enum column constraint.
func (i *Item) BeforeCreate(tx *gorm.DB) error {
	if i.ID == "" {
		i.ID = uuid.NewString()
	}
	if !ValidCategory(i.Type) {
		return fmt.Errorf("invalid item type %q", i.Type)
	}
	return nil
}
