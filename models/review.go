package models

import "time"

type Review struct {
	ID        uint      `gorm:"column:id;primaryKey;autoIncrement" json:"id"`
	ListingID uint      `gorm:"column:listing_id;not null;index" json:"listing_id"`
	GuestID   uint      `gorm:"column:guest_id;not null;index" json:"guest_id"`
	Rating    int       `gorm:"column:rating;not null" json:"rating"`
	Comment   string    `gorm:"column:comment;type:text" json:"comment"`
	CreatedAt time.Time `gorm:"column:created_at;autoCreateTime" json:"created_at"`
	UpdatedAt time.Time `gorm:"column:updated_at;autoUpdateTime" json:"updated_at"`

	Listing *Listing `gorm:"foreignKey:ListingID" json:"listing,omitempty"`
	Guest   *User    `gorm:"foreignKey:GuestID" json:"guest,omitempty"`
}

func (Review) TableName() string {
	return "reviews"
}
