package utils

import "time"

const DateLayout = "2006-01-02"

// Nights tính số đêm giữa check-in và check-out (ngày nguyên),
// tối thiểu 1 đêm nếu hiệu <= 0
func Nights(checkIn, checkOut time.Time) int {
	n := int(checkOut.Sub(checkIn).Hours() / 24)
	if n < 1 {
		return 1
	}
	return n
}
