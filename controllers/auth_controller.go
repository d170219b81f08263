package controllers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/vnkhanh/booking-server/config"
	"github.com/vnkhanh/booking-server/middleware"
	"github.com/vnkhanh/booking-server/models"
	"github.com/vnkhanh/booking-server/utils"
)

type registerReq struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required,min=6"`
	Name     string `json:"name" binding:"required,min=1"`
	Role     string `json:"role"` // guest | host | both, mặc định guest
}

// POST /auth/register
func Register(c *gin.Context) {
	var req registerReq
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": err.Error()})
		return
	}

	var count int64
	config.DB.Model(&models.User{}).Where("email = ?", req.Email).Count(&count)
	if count > 0 {
		c.JSON(http.StatusConflict, gin.H{"message": "Email already used"})
		return
	}

	hash, err := utils.HashPassword(req.Password)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Không thể mã hóa mật khẩu"})
		return
	}

	role := req.Role
	if role == "" {
		role = "guest"
	}

	user := models.User{
		Email:        req.Email,
		PasswordHash: hash,
		Name:         req.Name,
		Role:         role,
	}

	if err := config.DB.Create(&user).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Không thể tạo tài khoản"})
		return
	}

	// Chỉ trả về thông tin tối thiểu, không kèm hash
	c.JSON(http.StatusCreated, gin.H{
		"id":    user.ID,
		"email": user.Email,
	})
}

type loginReq struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

// POST /auth/login
// Email lạ và sai mật khẩu trả cùng một message, tránh dò tài khoản
func Login(c *gin.Context) {
	var req loginReq
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": err.Error()})
		return
	}

	var user models.User
	if err := config.DB.Where("email = ?", req.Email).First(&user).Error; err != nil {
		c.JSON(http.StatusUnauthorized, gin.H{"message": "Invalid credentials"})
		return
	}

	if !utils.CheckPassword(user.PasswordHash, req.Password) {
		c.JSON(http.StatusUnauthorized, gin.H{"message": "Invalid credentials"})
		return
	}

	token, err := utils.GenerateToken(strconv.FormatUint(uint64(user.ID), 10), user.Role)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Không thể tạo token"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"token": token,
		"user": gin.H{
			"id":    user.ID,
			"email": user.Email,
			"name":  user.Name,
			"role":  user.Role,
		},
	})
}

// GET /auth/me
func Me(c *gin.Context) {
	u := c.MustGet(middleware.CtxUser).(models.User)
	c.JSON(http.StatusOK, gin.H{
		"id":    u.ID,
		"email": u.Email,
		"name":  u.Name,
		"role":  u.Role,
	})
}

type updateMeReq struct {
	Name *string `json:"name"`
	Role *string `json:"role"`
}

// PATCH /auth/me — chỉ cho sửa name và role
func UpdateMe(c *gin.Context) {
	u := c.MustGet(middleware.CtxUser).(models.User)

	var req updateMeReq
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": err.Error()})
		return
	}

	if req.Name != nil && *req.Name != "" {
		u.Name = *req.Name
	}
	if req.Role != nil && *req.Role != "" {
		u.Role = *req.Role
	}

	if err := config.DB.Save(&u).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Cập nhật thất bại"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"id":    u.ID,
		"email": u.Email,
		"name":  u.Name,
		"role":  u.Role,
	})
}

// DELETE /auth/me — hard delete, dữ liệu liên quan giữ nguyên
func DeleteMe(c *gin.Context) {
	u := c.MustGet(middleware.CtxUser).(models.User)

	if err := config.DB.Delete(&models.User{}, u.ID).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Xóa tài khoản thất bại"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "User deleted"})
}
