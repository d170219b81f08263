package models

import "time"

type Listing struct {
	ID            uint      `gorm:"column:id;primaryKey;autoIncrement" json:"id"`
	HostID        uint      `gorm:"column:host_id;not null;index" json:"host_id"`
	Title         string    `gorm:"column:title;size:255;not null" json:"title"`
	Description   string    `gorm:"column:description;type:text;not null" json:"description"`
	Address       string    `gorm:"column:address;size:255;not null" json:"address"`
	PricePerNight int       `gorm:"column:price_per_night;not null" json:"price_per_night"`
	MaxGuests     int       `gorm:"column:max_guests;not null" json:"max_guests"`
	Status        string    `gorm:"column:status;size:20;not null;default:'active'" json:"status"` // active | inactive
	PhotoURL      *string   `gorm:"column:photo_url;size:500" json:"photo_url"`
	CreatedAt     time.Time `gorm:"column:created_at;autoCreateTime" json:"created_at"`
	UpdatedAt     time.Time `gorm:"column:updated_at;autoUpdateTime" json:"updated_at"`

	Host    *User    `gorm:"foreignKey:HostID" json:"host,omitempty"`
	Reviews []Review `gorm:"foreignKey:ListingID" json:"reviews,omitempty"`
}

func (Listing) TableName() string {
	return "listings"
}
