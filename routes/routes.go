package routes

import (
	"net/http"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"

	"hotelbook/handlers"
	"hotelbook/middleware"
	"hotelbook/models"
	"hotelbook/utils"
)

// RegisterAuthRoutes registers login, registration and logout.
func RegisterAuthRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	api := r.Group("/api/auth")
	{
		api.POST("/login", hb.LoginHandler)
		api.POST("/register", hb.RegisterCustomerHandler)
		api.POST("/register-owner", hb.RegisterHotelOwnerHandler)
		api.POST("/logout", hb.LogoutHandler)

		api.PUT("/profile", middleware.RequireLogin(hb.Sessions), hb.UpdateProfileHandler)
	}
}

// RegisterSessionRoutes exposes the caller's session and its change stream.
func RegisterSessionRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	api := r.Group("/api/session")
	{
		api.GET("", hb.GetSessionHandler)
		api.GET("/events", hb.SessionEventsHandler)
	}
}

// RegisterViewRoutes serves guarded view descriptors.
func RegisterViewRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	r.GET("/views/:view", middleware.ViewGuard(hb.Sessions), hb.ViewHandler)
}

// RegisterCatalogRoutes registers public hotel browsing; a live session's token is forwarded when present.
func RegisterCatalogRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	api := r.Group("/api/hotels")
	api.Use(middleware.OptionalSession(hb.Sessions))
	{
		api.GET("", hb.ListHotelsHandler)
		api.GET("/search", hb.SearchHotelsHandler)
		api.GET("/cities", hb.CitiesHandler)
		api.GET("/:id", hb.HotelDetailsHandler)
		api.GET("/:id/rooms", hb.RoomsHandler)
		api.GET("/:id/reviews", hb.ReviewsHandler)
		api.GET("/:id/availability", hb.AvailabilityHandler)
	}
}

// RegisterBookingRoutes registers customer bookings and drafts.
func RegisterBookingRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	bookingGroup := r.Group("/api/bookings")
	{
		bookingGroup.Use(middleware.RequireRole(hb.Sessions, models.RoleCustomer))
		bookingGroup.POST("", hb.SubmitBookingHandler)
		bookingGroup.GET("", hb.MyBookingsHandler)
		bookingGroup.PUT("/:id", hb.UpdateBookingHandler)
		bookingGroup.POST("/:id/pay", hb.PayBookingHandler)
		bookingGroup.DELETE("/:id", hb.CancelBookingHandler)
	}

	drafts := r.Group("/api/drafts")
	{
		drafts.GET("", hb.ListDraftsHandler)
		drafts.POST("", hb.SaveDraftHandler)
		drafts.DELETE("", hb.ClearDraftsHandler)
	}

	reviews := r.Group("/api/reviews")
	{
		reviews.Use(middleware.RequireRole(hb.Sessions, models.RoleCustomer))
		reviews.POST("", hb.AddReviewHandler)
		reviews.PUT("/:id", hb.UpdateReviewHandler)
		reviews.DELETE("/:id", hb.DeleteReviewHandler)
	}
}

// RegisterOwnerRoutes registers hotel and room management.
func RegisterOwnerRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	ownerGroup := r.Group("/api/owner")
	{
		ownerGroup.Use(middleware.RequireRole(hb.Sessions, models.RoleHotelOwner))
		ownerGroup.GET("/hotels", hb.MyHotelsHandler)
		ownerGroup.POST("/hotels", hb.AddHotelHandler)
		ownerGroup.PATCH("/hotels/:id", hb.UpdateHotelHandler)
		ownerGroup.DELETE("/hotels/:id", hb.DeleteHotelHandler)
		ownerGroup.POST("/hotels/:id/rooms", hb.AddRoomHandler)
		ownerGroup.PATCH("/hotels/:id/rooms/:roomId", hb.UpdateRoomHandler)
		ownerGroup.POST("/hotels/:id/rooms/:roomId/toggle", hb.ToggleRoomHandler)
		ownerGroup.DELETE("/hotels/:id/rooms/:roomId", hb.DeleteRoomHandler)
		ownerGroup.GET("/bookings", hb.OwnerBookingsHandler)
	}
}

// RegisterAdminRoutes sets up endpoints for admin operations.
func RegisterAdminRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	adminGroup := r.Group("/api/admin")
	{
		adminGroup.Use(middleware.RequireRole(hb.Sessions, models.RoleAdmin))
		adminGroup.GET("/users", hb.GetAllUsersHandler)
	}
}

// RegisterHealthRoute registers a health-check endpoint.
func RegisterHealthRoute(r *gin.Engine) {
	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})
}

// RegisterRoutes centralizes registration of all endpoints and middleware.
func RegisterRoutes(r *gin.Engine, hb *handlers.HandlerBundle, allowedOrigins []string) {
	r.Use(cors.New(cors.Config{
		AllowOrigins:     allowedOrigins,
		AllowMethods:     []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Authorization", "Content-Type", utils.ScopeHeader},
		ExposeHeaders:    []string{"Content-Length", utils.ScopeHeader},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))
	r.Use(middleware.SessionScope())
	r.Use(middleware.RequestLogger(utils.GetLogger()))

	RegisterAuthRoutes(r, hb)
	RegisterSessionRoutes(r, hb)
	RegisterViewRoutes(r, hb)
	RegisterCatalogRoutes(r, hb)
	RegisterBookingRoutes(r, hb)
	RegisterOwnerRoutes(r, hb)
	RegisterAdminRoutes(r, hb)
	RegisterHealthRoute(r)
}
