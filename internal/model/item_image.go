package model

import "time"

// ItemImage is one additional image URL attached to an item. Position
// preserves the upload order.
type ItemImage struct {
	ID        uint64    `gorm:"primaryKey;autoIncrement"`
	ItemID    string    `gorm:"column:item_id;size:36;not null;index:idx_item_images_item_id"`
	ImageURL  string    `gorm:"column:image_url;size:512;not null"`
	Position  int       `gorm:"not null"`
	CreatedAt time.Time `gorm:"autoCreateTime"`
	UpdatedAt time.Time `gorm:"autoUpdateTime"`
}

func (ItemImage) TableName() string {
	return "item_images"
}
