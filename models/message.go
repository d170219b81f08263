package models

import "time"

// Tin nhắn giữa guest và host của một booking.
// receiver_id do server suy ra từ booking, client không gửi lên.
type Message struct {
	ID         uint      `gorm:"column:id;primaryKey;autoIncrement" json:"id"`
	BookingID  uint      `gorm:"column:booking_id;not null;index" json:"booking_id"`
	SenderID   uint      `gorm:"column:sender_id;not null;index" json:"sender_id"`
	ReceiverID uint      `gorm:"column:receiver_id;not null;index" json:"receiver_id"`
	Content    string    `gorm:"column:content;type:text;not null" json:"content"`
	CreatedAt  time.Time `gorm:"column:created_at;autoCreateTime" json:"created_at"`
}

func (Message) TableName() string {
	return "messages"
}
