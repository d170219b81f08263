package controllers_test

import (
	"fmt"
	"net/http"
	"os"
	"strings"
	"testing"
	"time"

	"github.com/vnkhanh/booking-server/config"
	"github.com/vnkhanh/booking-server/models"
)

func TestBookingExport(t *testing.T) {
	r := setupRouter(t)
	t.Cleanup(func() { os.RemoveAll("./exports") })

	host, hostToken := createUser(t, "host@example.com", "host")
	guest, _ := createUser(t, "guest@example.com", "guest")
	listing := createListing(t, host.ID, 50000, 4, "active")
	booking := createBooking(t, listing.ID, guest.ID, 100000, "CONFIRMED")

	w := doJSON(t, r, http.MethodPost, "/bookings/export", nil, hostToken)
	wantStatus(t, w, http.StatusAccepted)
	accepted := decodeMap(t, w)
	jobID, _ := accepted["job_id"].(string)
	if jobID == "" || accepted["status"] != "queued" {
		t.Fatalf("unexpected accept payload: %v", accepted)
	}

	// chờ job nền hoàn tất
	var job models.ExportJob
	deadline := time.Now().Add(5 * time.Second)
	for {
		if err := config.DB.First(&job, "job_id = ?", jobID).Error; err != nil {
			t.Fatalf("load job: %v", err)
		}
		if job.Status == "done" || job.Status == "failed" {
			break
		}
		if time.Now().After(deadline) {
			t.Fatalf("job stuck in status %q", job.Status)
		}
		time.Sleep(20 * time.Millisecond)
	}
	if job.Status != "done" {
		t.Fatalf("expected done, got %q (%v)", job.Status, job.ErrorMsg)
	}

	// tải file CSV
	w = doJSON(t, r, http.MethodGet, "/exports/"+jobID, nil, hostToken)
	wantStatus(t, w, http.StatusOK)
	body := w.Body.String()
	if !strings.Contains(body, "booking_id,listing,check_in,check_out,total_price,status") {
		t.Errorf("missing CSV header: %q", body)
	}
	wantRow := fmt.Sprintf("%d,%s,2025-12-24,2025-12-26,100000,CONFIRMED", booking.ID, listing.Title)
	if !strings.Contains(body, wantRow) {
		t.Errorf("expected row %q in:\n%s", wantRow, body)
	}
}

func TestGetExportOwnership(t *testing.T) {
	r := setupRouter(t)
	t.Cleanup(func() { os.RemoveAll("./exports") })

	_, hostToken := createUser(t, "host@example.com", "host")
	_, otherToken := createUser(t, "other@example.com", "host")

	w := doJSON(t, r, http.MethodPost, "/bookings/export", nil, hostToken)
	wantStatus(t, w, http.StatusAccepted)
	jobID := decodeMap(t, w)["job_id"].(string)

	// job của người khác: 404
	w = doJSON(t, r, http.MethodGet, "/exports/"+jobID, nil, otherToken)
	wantStatus(t, w, http.StatusNotFound)

	// job không tồn tại
	w = doJSON(t, r, http.MethodGet, "/exports/khong-ton-tai", nil, hostToken)
	wantStatus(t, w, http.StatusNotFound)

	// đợi goroutine nền kết thúc trước khi test dọn DB
	var job models.ExportJob
	deadline := time.Now().Add(5 * time.Second)
	for {
		config.DB.First(&job, "job_id = ?", jobID)
		if job.Status == "done" || job.Status == "failed" || time.Now().After(deadline) {
			break
		}
		time.Sleep(20 * time.Millisecond)
	}
}
