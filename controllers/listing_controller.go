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

// GET /listings?minPrice=&maxPrice=&maxGuests=
// Chỉ trả listing đang active, kèm rating các review và host {id, name}
func GetListings(c *gin.Context) {
	query := config.DB.Model(&models.Listing{}).Where("status = ?", "active")

	// lọc theo giá
	if minPrice := c.Query("minPrice"); minPrice != "" {
		if v, err := strconv.Atoi(minPrice); err == nil {
			query = query.Where("price_per_night >= ?", v)
		}
	}
	if maxPrice := c.Query("maxPrice"); maxPrice != "" {
		if v, err := strconv.Atoi(maxPrice); err == nil {
			query = query.Where("price_per_night <= ?", v)
		}
	}

	// lọc theo sức chứa
	if maxGuests := c.Query("maxGuests"); maxGuests != "" {
		if v, err := strconv.Atoi(maxGuests); err == nil {
			query = query.Where("max_guests >= ?", v)
		}
	}

	var listings []models.Listing
	err := query.
		Preload("Reviews", func(db *gorm.DB) *gorm.DB {
			return db.Select("id, listing_id, rating")
		}).
		Preload("Host", func(db *gorm.DB) *gorm.DB {
			return db.Select("id, name")
		}).
		Find(&listings).Error
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Failed to get listings"})
		return
	}

	c.JSON(http.StatusOK, listings)
}

// GET /listings/:id
// Không lọc theo status: listing inactive vẫn xem được theo id
func GetListingByID(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil || id <= 0 {
		c.JSON(http.StatusBadRequest, gin.H{"message": "ID không hợp lệ"})
		return
	}

	var listing models.Listing
	e := config.DB.
		Preload("Reviews").
		Preload("Host", func(db *gorm.DB) *gorm.DB {
			return db.Select("id, name")
		}).
		First(&listing, id).Error
	if errors.Is(e, gorm.ErrRecordNotFound) {
		c.JSON(http.StatusNotFound, gin.H{"message": "Listing not found"})
		return
	}
	if e != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Failed to get listing"})
		return
	}

	c.JSON(http.StatusOK, listing)
}

type createListingReq struct {
	Title         string  `json:"title" binding:"required,min=1"`
	Description   string  `json:"description" binding:"required"`
	Address       string  `json:"address" binding:"required"`
	PricePerNight int     `json:"price_per_night" binding:"required,gt=0"`
	MaxGuests     int     `json:"max_guests" binding:"required,gt=0"`
	PhotoURL      *string `json:"photo_url"`
}

// POST /listings — role thuần guest không được đăng listing
func CreateListing(c *gin.Context) {
	u := c.MustGet(middleware.CtxUser).(models.User)

	if u.Role == "guest" {
		c.JSON(http.StatusForbidden, gin.H{"message": "Only host can create listing"})
		return
	}

	var req createListingReq
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": err.Error()})
		return
	}

	listing := models.Listing{
		HostID:        u.ID,
		Title:         req.Title,
		Description:   req.Description,
		Address:       req.Address,
		PricePerNight: req.PricePerNight,
		MaxGuests:     req.MaxGuests,
		Status:        "active",
		PhotoURL:      req.PhotoURL,
	}

	if err := config.DB.Create(&listing).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Failed to create listing"})
		return
	}

	c.JSON(http.StatusCreated, listing)
}

type updateListingReq struct {
	Title         *string `json:"title"`
	Description   *string `json:"description"`
	Address       *string `json:"address"`
	PricePerNight *int    `json:"price_per_night"`
	MaxGuests     *int    `json:"max_guests"`
	Status        *string `json:"status"`
	PhotoURL      *string `json:"photo_url"`
}

// PATCH /listings/:id — listingObj đã được middleware.CheckListingOwner nạp vào context
func UpdateListing(c *gin.Context) {
	listing := c.MustGet(middleware.CtxListing).(models.Listing)

	var req updateListingReq
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": err.Error()})
		return
	}

	// update từng field nếu có
	if req.Title != nil && *req.Title != "" {
		listing.Title = *req.Title
	}
	if req.Description != nil && *req.Description != "" {
		listing.Description = *req.Description
	}
	if req.Address != nil && *req.Address != "" {
		listing.Address = *req.Address
	}
	if req.PricePerNight != nil && *req.PricePerNight != 0 {
		listing.PricePerNight = *req.PricePerNight
	}
	if req.MaxGuests != nil && *req.MaxGuests != 0 {
		listing.MaxGuests = *req.MaxGuests
	}
	if req.Status != nil && *req.Status != "" {
		listing.Status = *req.Status
	}
	if req.PhotoURL != nil && *req.PhotoURL != "" {
		listing.PhotoURL = req.PhotoURL
	}

	if err := config.DB.Save(&listing).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Failed to update listing"})
		return
	}

	c.JSON(http.StatusOK, listing)
}

// DELETE /listings/:id — xóa mềm: status = inactive, không bao giờ xóa row
func DeleteListing(c *gin.Context) {
	listing := c.MustGet(middleware.CtxListing).(models.Listing)

	listing.Status = "inactive"
	if err := config.DB.Save(&listing).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Failed to delete listing"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Listing deactivated"})
}

// GET /listings/host/me/mine — listing của chính host, kể cả inactive
func GetMyListings(c *gin.Context) {
	u := c.MustGet(middleware.CtxUser).(models.User)

	var listings []models.Listing
	if err := config.DB.Where("host_id = ?", u.ID).Find(&listings).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Failed to get my listings"})
		return
	}

	c.JSON(http.StatusOK, listings)
}
