package middleware

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/vnkhanh/booking-server/config"
	"github.com/vnkhanh/booking-server/models"
)

// CheckListingOwner: nạp listing vào context & xác thực sở hữu.
// NotFound kiểm tra trước Forbidden.
func CheckListingOwner() gin.HandlerFunc {
	return func(c *gin.Context) {
		u := c.MustGet(CtxUser).(models.User)

		id, err := strconv.Atoi(c.Param("id"))
		if err != nil || id <= 0 {
			c.AbortWithStatusJSON(http.StatusBadRequest, gin.H{"message": "ID không hợp lệ"})
			return
		}

		var l models.Listing
		if e := config.DB.First(&l, id).Error; e != nil {
			if errors.Is(e, gorm.ErrRecordNotFound) {
				c.AbortWithStatusJSON(http.StatusNotFound, gin.H{"message": "Listing not found"})
				return
			}
			c.AbortWithStatusJSON(http.StatusInternalServerError, gin.H{"message": "Không thể đọc listing"})
			return
		}

		if l.HostID != u.ID {
			c.AbortWithStatusJSON(http.StatusForbidden, gin.H{"message": "Not your listing"})
			return
		}

		c.Set(CtxListing, l)
		c.Next()
	}
}

// CheckWishlistOwner: wishlist không thuộc về caller trả 404 (không phân biệt
// "không tồn tại" với "không phải của mình")
func CheckWishlistOwner() gin.HandlerFunc {
	return func(c *gin.Context) {
		u := c.MustGet(CtxUser).(models.User)

		id, err := strconv.Atoi(c.Param("id"))
		if err != nil || id <= 0 {
			c.AbortWithStatusJSON(http.StatusBadRequest, gin.H{"message": "ID không hợp lệ"})
			return
		}

		var w models.Wishlist
		if e := config.DB.Where("id = ? AND user_id = ?", id, u.ID).First(&w).Error; e != nil {
			if errors.Is(e, gorm.ErrRecordNotFound) {
				c.AbortWithStatusJSON(http.StatusNotFound, gin.H{"message": "Wishlist not found"})
				return
			}
			c.AbortWithStatusJSON(http.StatusInternalServerError, gin.H{"message": "Không thể đọc wishlist"})
			return
		}

		c.Set(CtxWishlist, w)
		c.Next()
	}
}
