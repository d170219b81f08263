package models

import "time"

// Trạng thái booking: REQUESTED -> CONFIRMED / DECLINED (host),
// REQUESTED / CONFIRMED -> CANCELLED (guest)
type Booking struct {
	ID         uint      `gorm:"column:id;primaryKey;autoIncrement" json:"id"`
	ListingID  uint      `gorm:"column:listing_id;not null;index" json:"listing_id"`
	GuestID    uint      `gorm:"column:guest_id;not null;index" json:"guest_id"`
	CheckIn    time.Time `gorm:"column:check_in;type:date;not null" json:"check_in"`
	CheckOut   time.Time `gorm:"column:check_out;type:date;not null" json:"check_out"`
	TotalPrice int       `gorm:"column:total_price;not null" json:"total_price"`
	Status     string    `gorm:"column:status;size:20;not null;default:'REQUESTED'" json:"status"`
	CreatedAt  time.Time `gorm:"column:created_at;autoCreateTime" json:"created_at"`
	UpdatedAt  time.Time `gorm:"column:updated_at;autoUpdateTime" json:"updated_at"`

	Listing  *Listing  `gorm:"foreignKey:ListingID" json:"listing,omitempty"`
	Guest    *User     `gorm:"foreignKey:GuestID" json:"-"`
	Messages []Message `gorm:"foreignKey:BookingID" json:"-"`
}

func (Booking) TableName() string {
	return "bookings"
}
