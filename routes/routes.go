package routes

import (
	"github.com/gin-gonic/gin"

	"github.com/vnkhanh/booking-server/controllers"
	"github.com/vnkhanh/booking-server/middleware"
)

func SetupRoutes(r *gin.Engine) {
	r.GET("/", controllers.Root)
	r.GET("/health", controllers.HealthCheck)

	auth := r.Group("/auth")
	{
		auth.POST("/register", middleware.RateLimitAuth(), controllers.Register)
		auth.POST("/login", middleware.RateLimitAuth(), controllers.Login)
		auth.GET("/me", middleware.AuthJWT(), controllers.Me)
		auth.PATCH("/me", middleware.AuthJWT(), controllers.UpdateMe)
		auth.DELETE("/me", middleware.AuthJWT(), controllers.DeleteMe)
	}

	listings := r.Group("/listings")
	{
		listings.GET("", controllers.GetListings)
		listings.GET("/:id", controllers.GetListingByID)
		listings.POST("", middleware.AuthJWT(), controllers.CreateListing)
		listings.PATCH("/:id", middleware.AuthJWT(), middleware.CheckListingOwner(), controllers.UpdateListing)
		listings.DELETE("/:id", middleware.AuthJWT(), middleware.CheckListingOwner(), controllers.DeleteListing)
		listings.GET("/host/me/mine", middleware.AuthJWT(), controllers.GetMyListings)
	}

	bookings := r.Group("/bookings")
	bookings.Use(middleware.AuthJWT())
	{
		bookings.POST("", controllers.CreateBooking)
		bookings.GET("/me", controllers.GetMyBookings)
		bookings.GET("/host/me", controllers.GetHostBookings)
		bookings.GET("/:id", controllers.GetBookingByID)
		bookings.PATCH("/:id/status", controllers.UpdateBookingStatus)
		bookings.DELETE("/:id", controllers.CancelBooking)
		bookings.POST("/export", controllers.CreateBookingExport)
	}

	reviews := r.Group("/reviews")
	{
		reviews.POST("", middleware.AuthJWT(), controllers.CreateReview)
		reviews.GET("/listing/:listingId", controllers.GetReviewsByListing)
		reviews.GET("/me", middleware.AuthJWT(), controllers.GetMyReviews)
		reviews.GET("/:id", controllers.GetReviewByID)
		reviews.PATCH("/:id", middleware.AuthJWT(), controllers.UpdateReview)
		reviews.DELETE("/:id", middleware.AuthJWT(), controllers.DeleteReview)
	}

	wishlists := r.Group("/wishlists")
	wishlists.Use(middleware.AuthJWT())
	{
		wishlists.POST("", controllers.CreateWishlist)
		wishlists.GET("", controllers.GetMyWishlists)
		wishlists.GET("/:id", middleware.CheckWishlistOwner(), controllers.GetWishlistByID)
		wishlists.POST("/:id/items", middleware.CheckWishlistOwner(), controllers.AddWishlistItem)
		wishlists.DELETE("/:id/items/:itemId", middleware.CheckWishlistOwner(), controllers.RemoveWishlistItem)
	}

	messages := r.Group("/messages")
	messages.Use(middleware.AuthJWT())
	{
		messages.POST("", controllers.CreateMessage)
		messages.GET("/me", controllers.GetMyMessages)
		messages.GET("", controllers.GetMyMessages) // alias của /me
		messages.GET("/booking/:id", controllers.GetMessagesForBooking)
		messages.DELETE("/:id", controllers.DeleteMessage)
	}

	r.POST("/uploads", middleware.AuthJWT(), controllers.UploadFile)
	r.GET("/exports/:job_id", middleware.AuthJWT(), controllers.GetExport)
}
