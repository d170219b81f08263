package controllers_test

import (
	"fmt"
	"net/http"
	"testing"
	"time"

	"github.com/vnkhanh/booking-server/config"
	"github.com/vnkhanh/booking-server/models"
)

func TestReviewLifecycle(t *testing.T) {
	r := setupRouter(t)
	host, _ := createUser(t, "host@example.com", "host")
	_, guestToken := createUser(t, "guest@example.com", "guest")
	listing := createListing(t, host.ID, 50000, 4, "active")

	// tạo
	w := doJSON(t, r, http.MethodPost, "/reviews", map[string]interface{}{
		"listing_id": listing.ID,
		"rating":     5,
		"comment":    "Tuyệt vời",
	}, guestToken)
	wantStatus(t, w, http.StatusCreated)
	created := decodeMap(t, w)
	reviewID := int(created["id"].(float64))

	// thiếu rating
	w = doJSON(t, r, http.MethodPost, "/reviews", map[string]interface{}{
		"listing_id": listing.ID,
	}, guestToken)
	wantStatus(t, w, http.StatusBadRequest)

	// sửa rating
	w = doJSON(t, r, http.MethodPatch, fmt.Sprintf("/reviews/%d", reviewID),
		map[string]interface{}{"rating": 3}, guestToken)
	wantStatus(t, w, http.StatusOK)
	if decodeMap(t, w)["rating"].(float64) != 3 {
		t.Errorf("rating not updated")
	}

	// xóa rồi đọc lại phải 404
	w = doJSON(t, r, http.MethodDelete, fmt.Sprintf("/reviews/%d", reviewID), nil, guestToken)
	wantStatus(t, w, http.StatusOK)
	w = doJSON(t, r, http.MethodGet, fmt.Sprintf("/reviews/%d", reviewID), nil, "")
	wantStatus(t, w, http.StatusNotFound)
}

func TestUpdateReviewCommentTriState(t *testing.T) {
	r := setupRouter(t)
	host, _ := createUser(t, "host@example.com", "host")
	guest, guestToken := createUser(t, "guest@example.com", "guest")
	listing := createListing(t, host.ID, 50000, 4, "active")

	review := models.Review{ListingID: listing.ID, GuestID: guest.ID, Rating: 4, Comment: "ban đầu"}
	if err := config.DB.Create(&review).Error; err != nil {
		t.Fatalf("seed review: %v", err)
	}
	path := fmt.Sprintf("/reviews/%d", review.ID)

	// vắng mặt: giữ nguyên
	w := doJSON(t, r, http.MethodPatch, path, map[string]interface{}{"rating": 2}, guestToken)
	wantStatus(t, w, http.StatusOK)
	if decodeMap(t, w)["comment"] != "ban đầu" {
		t.Errorf("absent comment must be preserved")
	}

	// null: xóa rỗng
	w = doJSON(t, r, http.MethodPatch, path, map[string]interface{}{"comment": nil}, guestToken)
	wantStatus(t, w, http.StatusOK)
	if decodeMap(t, w)["comment"] != "" {
		t.Errorf("null comment must clear")
	}

	// giá trị mới
	w = doJSON(t, r, http.MethodPatch, path, map[string]interface{}{"comment": "đã sửa"}, guestToken)
	wantStatus(t, w, http.StatusOK)
	if decodeMap(t, w)["comment"] != "đã sửa" {
		t.Errorf("comment not replaced")
	}
}

func TestReviewOwnership(t *testing.T) {
	r := setupRouter(t)
	host, _ := createUser(t, "host@example.com", "host")
	guest, _ := createUser(t, "guest@example.com", "guest")
	_, otherToken := createUser(t, "other@example.com", "guest")
	listing := createListing(t, host.ID, 50000, 4, "active")

	review := models.Review{ListingID: listing.ID, GuestID: guest.ID, Rating: 4}
	if err := config.DB.Create(&review).Error; err != nil {
		t.Fatalf("seed review: %v", err)
	}
	path := fmt.Sprintf("/reviews/%d", review.ID)

	w := doJSON(t, r, http.MethodPatch, path, map[string]interface{}{"rating": 1}, otherToken)
	wantStatus(t, w, http.StatusForbidden)
	w = doJSON(t, r, http.MethodDelete, path, nil, otherToken)
	wantStatus(t, w, http.StatusForbidden)

	// không tồn tại: 404 trước 403
	w = doJSON(t, r, http.MethodPatch, "/reviews/99999", map[string]interface{}{"rating": 1}, otherToken)
	wantStatus(t, w, http.StatusNotFound)
}

func TestReviewLists(t *testing.T) {
	r := setupRouter(t)
	host, _ := createUser(t, "host@example.com", "host")
	guest, guestToken := createUser(t, "guest@example.com", "guest")
	listing := createListing(t, host.ID, 50000, 4, "active")

	older := models.Review{ListingID: listing.ID, GuestID: guest.ID, Rating: 4, CreatedAt: time.Now().Add(-time.Hour)}
	newer := models.Review{ListingID: listing.ID, GuestID: guest.ID, Rating: 5}
	for _, rv := range []*models.Review{&older, &newer} {
		if err := config.DB.Create(rv).Error; err != nil {
			t.Fatalf("seed review: %v", err)
		}
	}

	// theo listing, mới nhất trước, public
	w := doJSON(t, r, http.MethodGet, fmt.Sprintf("/reviews/listing/%d", listing.ID), nil, "")
	wantStatus(t, w, http.StatusOK)
	list := decodeList(t, w)
	if len(list) != 2 {
		t.Fatalf("expected 2 reviews, got %d", len(list))
	}
	if list[0]["rating"].(float64) != 5 {
		t.Errorf("expected newest review first, got %v", list[0])
	}

	// của tôi, kèm listing rút gọn
	w = doJSON(t, r, http.MethodGet, "/reviews/me", nil, guestToken)
	wantStatus(t, w, http.StatusOK)
	mine := decodeList(t, w)
	if len(mine) != 2 || mine[0]["listing"] == nil {
		t.Errorf("expected my reviews with listing joined: %v", mine)
	}
}
