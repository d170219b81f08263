package controllers

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/vnkhanh/booking-server/config"
	"github.com/vnkhanh/booking-server/middleware"
	"github.com/vnkhanh/booking-server/models"
)

type createWishlistReq struct {
	Name string `json:"name" binding:"required,min=1"`
}

// POST /wishlists
func CreateWishlist(c *gin.Context) {
	u := c.MustGet(middleware.CtxUser).(models.User)

	var req createWishlistReq
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "name is required"})
		return
	}

	wishlist := models.Wishlist{
		UserID: u.ID,
		Name:   req.Name,
	}

	if err := config.DB.Create(&wishlist).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Failed to create wishlist"})
		return
	}

	c.JSON(http.StatusCreated, wishlist)
}

type addWishlistItemReq struct {
	ListingID uint `json:"listing_id" binding:"required"`
}

// POST /wishlists/:id/items
// Thêm trùng không tạo row mới — trả lại row đang có (idempotent)
func AddWishlistItem(c *gin.Context) {
	wishlist := c.MustGet(middleware.CtxWishlist).(models.Wishlist)

	var req addWishlistItemReq
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "listingId is required"})
		return
	}

	var listing models.Listing
	if err := config.DB.First(&listing, req.ListingID).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"message": "Listing not found"})
		return
	}

	var item models.WishlistItem
	e := config.DB.
		Where("wishlist_id = ? AND listing_id = ?", wishlist.ID, req.ListingID).
		First(&item).Error
	if errors.Is(e, gorm.ErrRecordNotFound) {
		item = models.WishlistItem{
			WishlistID: wishlist.ID,
			ListingID:  req.ListingID,
		}
		if err := config.DB.Create(&item).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"message": "Failed to add item to wishlist"})
			return
		}
	} else if e != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Failed to add item to wishlist"})
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"id":          item.ID,
		"wishlist_id": item.WishlistID,
		"listing_id":  item.ListingID,
	})
}

// DELETE /wishlists/:id/items/:itemId
func RemoveWishlistItem(c *gin.Context) {
	wishlist := c.MustGet(middleware.CtxWishlist).(models.Wishlist)

	itemID, err := strconv.Atoi(c.Param("itemId"))
	if err != nil || itemID <= 0 {
		c.JSON(http.StatusBadRequest, gin.H{"message": "ID không hợp lệ"})
		return
	}

	var item models.WishlistItem
	e := config.DB.
		Where("id = ? AND wishlist_id = ?", itemID, wishlist.ID).
		First(&item).Error
	if errors.Is(e, gorm.ErrRecordNotFound) {
		c.JSON(http.StatusNotFound, gin.H{"message": "Wishlist item not found"})
		return
	}
	if e != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Failed to remove wishlist item"})
		return
	}

	if err := config.DB.Delete(&item).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Failed to remove wishlist item"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Item removed from wishlist"})
}

// GET /wishlists — toàn bộ wishlist của tôi kèm listing, cũ nhất trước
func GetMyWishlists(c *gin.Context) {
	u := c.MustGet(middleware.CtxUser).(models.User)

	var wishlists []models.Wishlist
	e := config.DB.
		Where("user_id = ?", u.ID).
		Preload("Items.Listing").
		Order("created_at ASC").
		Find(&wishlists).Error
	if e != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Failed to get wishlists"})
		return
	}

	// không có cũng trả 200 + mảng rỗng
	c.JSON(http.StatusOK, wishlists)
}

// GET /wishlists/:id
func GetWishlistByID(c *gin.Context) {
	wishlist := c.MustGet(middleware.CtxWishlist).(models.Wishlist)

	// nạp lại kèm item + listing
	var full models.Wishlist
	e := config.DB.
		Preload("Items.Listing").
		First(&full, wishlist.ID).Error
	if e != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Failed to get wishlist"})
		return
	}

	c.JSON(http.StatusOK, full)
}
