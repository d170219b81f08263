package models

import "time"

type User struct {
	ID           uint      `gorm:"column:id;primaryKey;autoIncrement" json:"id"`
	Email        string    `gorm:"column:email;size:100;unique;not null" json:"email"`
	PasswordHash string    `gorm:"column:password_hash;size:255;not null" json:"-"` // ẩn khi trả JSON
	Name         string    `gorm:"column:name;size:100;not null" json:"name"`
	Role         string    `gorm:"column:role;size:20;not null;default:'guest'" json:"role"` // guest | host | both
	CreatedAt    time.Time `gorm:"column:created_at;autoCreateTime" json:"created_at"`
	UpdatedAt    time.Time `gorm:"column:updated_at;autoUpdateTime" json:"updated_at"`

	// Quan hệ — không cascade: xóa user không đụng tới dữ liệu liên quan
	Listings  []Listing  `gorm:"foreignKey:HostID" json:"-"`
	Bookings  []Booking  `gorm:"foreignKey:GuestID" json:"-"`
	Reviews   []Review   `gorm:"foreignKey:GuestID" json:"-"`
	Wishlists []Wishlist `gorm:"foreignKey:UserID" json:"-"`
}

func (User) TableName() string {
	return "users"
}
