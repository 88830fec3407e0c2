package router

import (
	"net/http"

	"github.com/wb-go/wbf/ginext"
)

type Handler interface {
	CreateListing(c *ginext.Context)
	ListListings(c *ginext.Context)
	GetCalendar(c *ginext.Context)
	CreateBooking(c *ginext.Context)
	CancelBooking(c *ginext.Context)
	CompleteBooking(c *ginext.Context)
	RunScan(c *ginext.Context)
	ListGaps(c *ginext.Context)
	CreatePromotion(c *ginext.Context)
	ListPromotions(c *ginext.Context)
	SchedulePromotion(c *ginext.Context)
	ActivatePromotion(c *ginext.Context)
	DeletePromotion(c *ginext.Context)
	ListPendingPromotions(c *ginext.Context)
	ApprovePendingPromotion(c *ginext.Context)
	RejectPendingPromotion(c *ginext.Context)
}

func InitRouter(mode string, h Handler, mw ...ginext.HandlerFunc) *ginext.Engine {
	router := ginext.New(mode)
	router.Use(mw...)

	api := router.Group("/api")
	{
		// Listings
		api.POST("/listings", h.CreateListing)
		api.GET("/listings", h.ListListings)
		api.GET("/listings/:id/calendar", h.GetCalendar)

		// Bookings
		api.POST("/listings/:id/bookings", h.CreateBooking)
		api.POST("/bookings/:id/cancel", h.CancelBooking)
		api.POST("/bookings/:id/complete", h.CompleteBooking)

		// Inventory
		api.GET("/inventory/gaps", h.ListGaps)
		api.POST("/inventory/scan", h.RunScan)

		// Promotions
		api.GET("/promotions", h.ListPromotions)
		api.POST("/promotions", h.CreatePromotion)
		api.POST("/promotions/:id/schedule", h.SchedulePromotion)
		api.POST("/promotions/:id/activate", h.ActivatePromotion)
		api.DELETE("/promotions/:id", h.DeletePromotion)

		// Pending approvals
		api.GET("/pending-promotions", h.ListPendingPromotions)
		api.POST("/pending-promotions/:id/approve", h.ApprovePendingPromotion)
		api.POST("/pending-promotions/:id/reject", h.RejectPendingPromotion)
	}

	router.GET("/health", func(c *ginext.Context) {
		c.JSON(http.StatusOK, ginext.H{"status": "ok"})
	})

	return router
}
