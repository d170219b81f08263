package models

import "time"

type Wishlist struct {
	ID        uint      `gorm:"column:id;primaryKey;autoIncrement" json:"id"`
	UserID    uint      `gorm:"column:user_id;not null;index" json:"user_id"`
	Name      string    `gorm:"column:name;size:100;not null" json:"name"`
	CreatedAt time.Time `gorm:"column:created_at;autoCreateTime" json:"created_at"`

	Items []WishlistItem `gorm:"foreignKey:WishlistID" json:"items,omitempty"`
}

func (Wishlist) TableName() string {
	return "wishlists"
}
