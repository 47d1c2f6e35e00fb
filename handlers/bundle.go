package handlers

import (
	"time"

	"github.com/gin-gonic/gin"

	"hotelbook/backend"
	"hotelbook/middleware"
	"hotelbook/services/booking"
	"hotelbook/services/catalog"
	"hotelbook/services/session"
)

// HandlerBundle groups all endpoint handlers into one struct.
type HandlerBundle struct {
	Sessions middleware.SessionReader

	// Auth endpoints
	LoginHandler              gin.HandlerFunc
	RegisterCustomerHandler   gin.HandlerFunc
	RegisterHotelOwnerHandler gin.HandlerFunc
	UpdateProfileHandler      gin.HandlerFunc
	LogoutHandler             gin.HandlerFunc

	// Session endpoints
	GetSessionHandler    gin.HandlerFunc
	SessionEventsHandler gin.HandlerFunc

	// Views
	ViewHandler gin.HandlerFunc

	// Catalog endpoints
	ListHotelsHandler   gin.HandlerFunc
	SearchHotelsHandler gin.HandlerFunc
	CitiesHandler       gin.HandlerFunc
	HotelDetailsHandler gin.HandlerFunc
	RoomsHandler        gin.HandlerFunc
	ReviewsHandler      gin.HandlerFunc
	AvailabilityHandler gin.HandlerFunc

	// Booking endpoints
	SubmitBookingHandler gin.HandlerFunc
	MyBookingsHandler    gin.HandlerFunc
	UpdateBookingHandler gin.HandlerFunc
	PayBookingHandler    gin.HandlerFunc
	CancelBookingHandler gin.HandlerFunc
	SaveDraftHandler     gin.HandlerFunc
	ListDraftsHandler    gin.HandlerFunc
	ClearDraftsHandler   gin.HandlerFunc

	// Review endpoints
	AddReviewHandler    gin.HandlerFunc
	UpdateReviewHandler gin.HandlerFunc
	DeleteReviewHandler gin.HandlerFunc

	// Hotel owner endpoints
	MyHotelsHandler      gin.HandlerFunc
	AddHotelHandler      gin.HandlerFunc
	UpdateHotelHandler   gin.HandlerFunc
	DeleteHotelHandler   gin.HandlerFunc
	AddRoomHandler       gin.HandlerFunc
	UpdateRoomHandler    gin.HandlerFunc
	ToggleRoomHandler    gin.HandlerFunc
	DeleteRoomHandler    gin.HandlerFunc
	OwnerBookingsHandler gin.HandlerFunc

	// Admin endpoints
	GetAllUsersHandler gin.HandlerFunc
}

// Services are the dependencies the handlers are built from.
type Services struct {
	Sessions  session.SessionService
	Bookings  booking.BookingService
	Catalog   *catalog.Service
	Calendars booking.Calendars
	Auth      backend.AuthAPI
	CookieTTL time.Duration
}

// NewHandlerBundle wires every handler to its services.
func NewHandlerBundle(s Services) *HandlerBundle {
	authHandler := NewAuthHandler(s.Sessions, s.Bookings, s.CookieTTL)
	sessionHandler := NewSessionHandler(s.Sessions)
	catalogHandler := NewCatalogHandler(s.Catalog, s.Calendars)
	bookingHandler := NewBookingHandler(s.Bookings)
	reviewHandler := NewReviewHandler(s.Catalog)
	ownerHandler := NewOwnerHandler(s.Catalog)
	adminHandler := NewAdminHandler(s.Auth)

	return &HandlerBundle{
		Sessions: s.Sessions,

		LoginHandler:              authHandler.LoginHandler,
		RegisterCustomerHandler:   authHandler.RegisterCustomerHandler,
		RegisterHotelOwnerHandler: authHandler.RegisterHotelOwnerHandler,
		UpdateProfileHandler:      authHandler.UpdateProfileHandler,
		LogoutHandler:             authHandler.LogoutHandler,

		GetSessionHandler:    sessionHandler.GetSessionHandler,
		SessionEventsHandler: sessionHandler.SessionEventsHandler,

		ViewHandler: ViewHandler,

		ListHotelsHandler:   catalogHandler.ListHotelsHandler,
		SearchHotelsHandler: catalogHandler.SearchHotelsHandler,
		CitiesHandler:       catalogHandler.CitiesHandler,
		HotelDetailsHandler: catalogHandler.HotelDetailsHandler,
		RoomsHandler:        catalogHandler.RoomsHandler,
		ReviewsHandler:      catalogHandler.ReviewsHandler,
		AvailabilityHandler: catalogHandler.AvailabilityHandler,

		SubmitBookingHandler: bookingHandler.SubmitBookingHandler,
		MyBookingsHandler:    bookingHandler.MyBookingsHandler,
		UpdateBookingHandler: bookingHandler.UpdateBookingHandler,
		PayBookingHandler:    bookingHandler.PayBookingHandler,
		CancelBookingHandler: bookingHandler.CancelBookingHandler,
		SaveDraftHandler:     bookingHandler.SaveDraftHandler,
		ListDraftsHandler:    bookingHandler.ListDraftsHandler,
		ClearDraftsHandler:   bookingHandler.ClearDraftsHandler,

		AddReviewHandler:    reviewHandler.AddReviewHandler,
		UpdateReviewHandler: reviewHandler.UpdateReviewHandler,
		DeleteReviewHandler: reviewHandler.DeleteReviewHandler,

		MyHotelsHandler:      ownerHandler.MyHotelsHandler,
		AddHotelHandler:      ownerHandler.AddHotelHandler,
		UpdateHotelHandler:   ownerHandler.UpdateHotelHandler,
		DeleteHotelHandler:   ownerHandler.DeleteHotelHandler,
		AddRoomHandler:       ownerHandler.AddRoomHandler,
		UpdateRoomHandler:    ownerHandler.UpdateRoomHandler,
		ToggleRoomHandler:    ownerHandler.ToggleRoomHandler,
		DeleteRoomHandler:    ownerHandler.DeleteRoomHandler,
		OwnerBookingsHandler: bookingHandler.OwnerBookingsHandler,

		GetAllUsersHandler: adminHandler.GetAllUsersHandler,
	}
}
