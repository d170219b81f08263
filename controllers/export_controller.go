package controllers

import (
	"encoding/csv"
	"errors"
	"fmt"
	"net/http"
	"os"
	"path"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/vnkhanh/booking-server/config"
	"github.com/vnkhanh/booking-server/middleware"
	"github.com/vnkhanh/booking-server/models"
	"github.com/vnkhanh/booking-server/utils"
)

// POST /bookings/export
// Xuất CSV toàn bộ booking trên các listing caller làm host; chạy nền theo job
func CreateBookingExport(c *gin.Context) {
	u := c.MustGet(middleware.CtxUser).(models.User)

	jobID := uuid.New().String()
	job := models.ExportJob{
		JobID:  jobID,
		HostID: u.ID,
		Status: "queued",
	}
	if err := config.DB.Create(&job).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Không tạo được export job"})
		return
	}

	go processBookingExport(jobID)

	c.JSON(http.StatusAccepted, gin.H{
		"job_id": jobID,
		"status": "queued",
	})
}

// GET /exports/:job_id — chỉ chủ job; xong thì tải file, chưa xong trả trạng thái
func GetExport(c *gin.Context) {
	u := c.MustGet(middleware.CtxUser).(models.User)

	jobID := c.Param("job_id")
	var job models.ExportJob
	e := config.DB.
		Where("job_id = ? AND host_id = ?", jobID, u.ID).
		First(&job).Error
	if errors.Is(e, gorm.ErrRecordNotFound) {
		c.JSON(http.StatusNotFound, gin.H{"message": "Job không tìm thấy"})
		return
	}
	if e != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Lỗi DB"})
		return
	}

	if job.Status == "done" && job.FilePath != nil {
		c.FileAttachment(*job.FilePath, path.Base(*job.FilePath))
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"job_id": job.JobID,
		"status": job.Status,
		"error":  job.ErrorMsg,
	})
}

// xử lý job xuất booking
func processBookingExport(jobID string) {
	var job models.ExportJob
	if err := config.DB.First(&job, "job_id = ?", jobID).Error; err != nil {
		return
	}
	config.DB.Model(&job).Update("status", "processing")

	failJob := func(err error) {
		em := err.Error()
		config.DB.Model(&job).Updates(map[string]interface{}{"status": "failed", "error_msg": em})
	}

	outDir := "./exports"
	os.MkdirAll(outDir, 0755)

	filename := fmt.Sprintf("bookings_%s.csv", job.JobID)
	outPath := path.Join(outDir, filename)

	f, err := os.Create(outPath)
	if err != nil {
		failJob(err)
		return
	}
	defer f.Close()

	w := csv.NewWriter(f)
	defer w.Flush()

	w.Write([]string{"booking_id", "listing", "check_in", "check_out", "total_price", "status"})

	var bookings []models.Booking
	e := config.DB.
		Joins("JOIN listings ON listings.id = bookings.listing_id").
		Where("listings.host_id = ?", job.HostID).
		Preload("Listing").
		Find(&bookings).Error
	if e != nil {
		failJob(e)
		return
	}

	for _, b := range bookings {
		title := ""
		if b.Listing != nil {
			title = b.Listing.Title
		}
		w.Write([]string{
			fmt.Sprintf("%d", b.ID),
			title,
			b.CheckIn.Format(utils.DateLayout),
			b.CheckOut.Format(utils.DateLayout),
			fmt.Sprintf("%d", b.TotalPrice),
			b.Status,
		})
	}
	w.Flush()
	if err := w.Error(); err != nil {
		failJob(err)
		return
	}

	fp := outPath
	config.DB.Model(&job).Updates(map[string]interface{}{"status": "done", "file_path": fp})
}
