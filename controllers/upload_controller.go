package controllers

import (
	"fmt"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/vnkhanh/booking-server/utils"
)

// POST /uploads — nhận ảnh listing qua form-data, đẩy lên bucket và trả URL
func UploadFile(c *gin.Context) {
	fileHeader, err := c.FormFile("file")
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Không nhận được file"})
		return
	}

	fileID := fmt.Sprintf("%d", time.Now().UnixNano())
	publicURL, err := utils.UploadListingPhoto(fileHeader, fileID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"message": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{"url": publicURL})
}
