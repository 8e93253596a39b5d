// Package router contains routing and server setup for the HTTP delivery.
package router

import (
	"planner/internal/delivery/http/middleware"
	"planner/internal/delivery/http/router/handler"
	"planner/internal/infra/metrics"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

type RouterParams struct {
	fx.In

	AuthHandler         *handler.AuthHandler
	GuestHandler        *handler.GuestHandler
	WeddingHandler      *handler.WeddingHandler
	ScheduleHandler     *handler.ScheduleHandler
	GiftHandler         *handler.GiftHandler
	GalleryHandler      *handler.GalleryHandler
	NotificationHandler *handler.NotificationHandler
	RSVPHandler         *handler.RSVPHandler
	SessionMiddleware   *middleware.SessionMiddleware
	Metrics             *metrics.Metrics
}

// router holds all the handlers that need to be registered.
type router struct {
	authHandler         *handler.AuthHandler
	guestHandler        *handler.GuestHandler
	weddingHandler      *handler.WeddingHandler
	scheduleHandler     *handler.ScheduleHandler
	giftHandler         *handler.GiftHandler
	galleryHandler      *handler.GalleryHandler
	notificationHandler *handler.NotificationHandler
	rsvpHandler         *handler.RSVPHandler
	sessionMiddleware   *middleware.SessionMiddleware
	metrics             *metrics.Metrics
}

// NewRouter is the constructor for the Router.
// Fx will inject the required handlers here.
func NewRouter(params RouterParams) *router {
	return &router{
		authHandler:         params.AuthHandler,
		guestHandler:        params.GuestHandler,
		weddingHandler:      params.WeddingHandler,
		scheduleHandler:     params.ScheduleHandler,
		giftHandler:         params.GiftHandler,
		galleryHandler:      params.GalleryHandler,
		notificationHandler: params.NotificationHandler,
		rsvpHandler:         params.RSVPHandler,
		sessionMiddleware:   params.SessionMiddleware,
		metrics:             params.Metrics,
	}
}

// RegisterRoutes sets up all the dashboard routes.
func (r *router) RegisterRoutes(e *echo.Echo) {
	e.GET("/health", handler.HealthCheck)
	e.GET("/metrics", echo.WrapHandler(r.metrics.Handler()))

	authGroup := e.Group("/auth")
	{
		authGroup.POST("/login", r.authHandler.Login)
		authGroup.POST("/register", r.authHandler.Register)
		authGroup.POST("/logout", r.authHandler.Logout)
		authGroup.GET("/session", r.authHandler.Session)
	}

	// Public reply page, keyed by the RSVP token only
	rsvpGroup := e.Group("/rsvp")
	{
		rsvpGroup.GET("/:token", r.rsvpHandler.GetInvitation)
		rsvpGroup.POST("/:token", r.rsvpHandler.Submit)
	}

	apiV1 := e.Group("/api/v1")
	apiV1.Use(r.sessionMiddleware.RequireSession) // Every dashboard route needs a session

	dashboard := apiV1.Group("/dashboard")

	guestsGroup := dashboard.Group("/guests")
	{
		guestsGroup.GET("", r.guestHandler.ListGuests)
		guestsGroup.POST("", r.guestHandler.AddGuests)
		guestsGroup.POST("/send", r.guestHandler.SendInvitations)
		guestsGroup.DELETE("/:id", r.guestHandler.RemoveGuest)
		guestsGroup.GET("/:id/qr", r.guestHandler.InvitationQR)
	}

	weddingGroup := dashboard.Group("/wedding")
	{
		weddingGroup.GET("", r.weddingHandler.GetWedding)
		weddingGroup.POST("", r.weddingHandler.SetupWedding)
		weddingGroup.PUT("", r.weddingHandler.UpdateWedding)
		weddingGroup.GET("/countdown", r.weddingHandler.Countdown)
	}

	scheduleGroup := dashboard.Group("/schedule")
	{
		scheduleGroup.GET("", r.scheduleHandler.GetSchedule)
		scheduleGroup.POST("", r.scheduleHandler.AddEvent)
		scheduleGroup.PUT("/:id", r.scheduleHandler.UpdateEvent)
		scheduleGroup.DELETE("/:id", r.scheduleHandler.DeleteEvent)
		scheduleGroup.PATCH("/:id/status", r.scheduleHandler.SetEventStatus)
		scheduleGroup.POST("/:id/move", r.scheduleHandler.MoveEvent)
	}

	giftsGroup := dashboard.Group("/gifts")
	{
		giftsGroup.GET("", r.giftHandler.ListGifts)
		giftsGroup.POST("", r.giftHandler.CreateGift)
		giftsGroup.PUT("/:id", r.giftHandler.UpdateGift)
		giftsGroup.DELETE("/:id", r.giftHandler.DeleteGift)
		giftsGroup.PATCH("/:id/status", r.giftHandler.SetGiftStatus)
	}

	galleryGroup := dashboard.Group("/gallery")
	{
		galleryGroup.GET("", r.galleryHandler.ListImages)
		galleryGroup.POST("", r.galleryHandler.UploadImages)
		galleryGroup.DELETE("", r.galleryHandler.DeleteImage)
	}

	notificationsGroup := dashboard.Group("/notifications")
	{
		notificationsGroup.GET("", r.notificationHandler.ListNotifications)
		notificationsGroup.GET("/unread", r.notificationHandler.UnreadCount)
		notificationsGroup.PATCH("/read-all", r.notificationHandler.MarkAllRead)
		notificationsGroup.PATCH("/:id/read", r.notificationHandler.MarkRead)
	}
}
