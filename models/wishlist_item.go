package models

import "time"

// Bảng nối wishlist - listing. Cặp (wishlist_id, listing_id) được
// chống trùng lúc ghi, không bằng unique constraint.
type WishlistItem struct {
	ID         uint      `gorm:"column:id;primaryKey;autoIncrement" json:"id"`
	WishlistID uint      `gorm:"column:wishlist_id;not null;index" json:"wishlist_id"`
	ListingID  uint      `gorm:"column:listing_id;not null;index" json:"listing_id"`
	CreatedAt  time.Time `gorm:"column:created_at;autoCreateTime" json:"created_at"`

	Listing *Listing `gorm:"foreignKey:ListingID" json:"listing,omitempty"`
}

func (WishlistItem) TableName() string {
	return "wishlist_items"
}
