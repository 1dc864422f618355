package routes

import (
	"net/http"

	"eventease/activity"
	"eventease/admin"
	"eventease/auth"
	"eventease/availability"
	"eventease/bookings"
	"eventease/chats"
	"eventease/customizations"
	"eventease/invoices"
	"eventease/live"
	"eventease/middleware"
	"eventease/notifications"
	"eventease/packages"
	"eventease/ratelim"
	"eventease/reviews"
	"eventease/tasks"
	"eventease/wishlist"

	"github.com/julienschmidt/httprouter"
)

func AddStaticRoutes(router *httprouter.Router) {
	router.ServeFiles("/static/packagepic/*filepath", http.Dir("static/packagepic"))
}

func AddAuthRoutes(router *httprouter.Router) {
	router.POST("/api/auth/register", ratelim.RateLimit(auth.Register))
	router.POST("/api/auth/login", ratelim.RateLimit(auth.Login))
	router.POST("/api/auth/logout", middleware.Authenticate(auth.LogoutUser))
	router.POST("/api/auth/token/refresh", ratelim.RateLimit(middleware.Authenticate(auth.RefreshToken)))
}

func AddPackageRoutes(router *httprouter.Router) {
	router.GET("/api/packages", packages.GetPackages)
	router.GET("/api/packages/:packageid", packages.GetPackage)
	router.POST("/api/packages", middleware.RequireRole("admin", packages.CreatePackage))
	router.PUT("/api/packages/:packageid", middleware.RequireRole("admin", packages.EditPackage))
	router.DELETE("/api/packages/:packageid", middleware.RequireRole("admin", packages.DeletePackage))
	router.POST("/api/packages/:packageid/banner", middleware.RequireRole("admin", packages.UploadBanner))
}

func AddCustomizationRoutes(router *httprouter.Router) {
	router.GET("/api/customizations", customizations.ListOptions)
	router.POST("/api/customizations", middleware.RequireRole("admin", customizations.CreateOption))
	router.PUT("/api/customizations/:optionid", middleware.RequireRole("admin", customizations.EditOption))
	router.DELETE("/api/customizations/:optionid", middleware.RequireRole("admin", customizations.DeleteOption))
}

func AddBookingRoutes(router *httprouter.Router) {
	router.POST("/api/bookings", ratelim.RateLimit(middleware.RequireRole("client", bookings.CreateBooking)))
	router.GET("/api/bookings", middleware.RequireRole("admin", bookings.ListBookings))
	router.GET("/api/bookings/mine", middleware.Authenticate(bookings.GetMyBookings))
	router.GET("/api/bookings/unavailable-dates", bookings.GetUnavailableDates)
	router.GET("/api/bookings/booking/:bookingid", middleware.Authenticate(bookings.GetBooking))
	router.PUT("/api/bookings/booking/:bookingid/status", middleware.RequireRole("admin", bookings.UpdateBookingStatus))
	router.POST("/api/bookings/booking/:bookingid/pay", ratelim.RateLimit(middleware.RequireRole("client", bookings.PayBooking)))
	router.GET("/api/bookings/booking/:bookingid/invoice", ratelim.RateLimit(invoices.PrintInvoice))
}

func AddChatRoutes(router *httprouter.Router) {
	router.GET("/api/bookings/booking/:bookingid/chat", middleware.Authenticate(chats.GetMessages))
	router.POST("/api/bookings/booking/:bookingid/chat", ratelim.RateLimit(middleware.Authenticate(chats.SendMessage)))
}

func AddTaskRoutes(router *httprouter.Router) {
	router.POST("/api/bookings/booking/:bookingid/assign", middleware.RequireRole("admin", tasks.AssignVendor))
	router.GET("/api/bookings/booking/:bookingid/tasks", middleware.Authenticate(tasks.GetBookingTasks))
	router.GET("/api/tasks/mine", middleware.RequireRole("vendor", tasks.GetMyTasks))
	router.PUT("/api/tasks/:taskid/status", middleware.RequireRole("vendor", tasks.UpdateTaskStatus))
}

func AddReviewRoutes(router *httprouter.Router) {
	router.GET("/api/reviews/package/:packageid", reviews.GetPackageReviews)
	router.GET("/api/reviews/vendor/:vendorid", reviews.GetVendorRating)
	router.POST("/api/reviews", ratelim.RateLimit(middleware.RequireRole("client", reviews.AddReview)))
}

func AddNotificationRoutes(router *httprouter.Router) {
	router.GET("/api/notifications", middleware.Authenticate(notifications.GetNotifications))
	router.PUT("/api/notifications/read-all", middleware.Authenticate(notifications.MarkAllRead))
	router.PUT("/api/notifications/read/:notificationid", middleware.Authenticate(notifications.MarkRead))
}

func AddActivityRoutes(router *httprouter.Router) {
	router.GET("/api/activity", middleware.RequireRole("admin", activity.GetActivityFeed))
}

func AddWishlistRoutes(router *httprouter.Router) {
	router.GET("/api/wishlist", middleware.RequireRole("client", wishlist.GetWishlist))
	router.POST("/api/wishlist/toggle", middleware.RequireRole("client", wishlist.ToggleWishlist))
}

func AddAvailabilityRoutes(router *httprouter.Router) {
	router.GET("/api/availability", middleware.RequireRole("vendor", availability.GetAvailability))
	router.PUT("/api/availability", middleware.RequireRole("vendor", availability.SetAvailability))
}

func AddAdminRoutes(router *httprouter.Router) {
	router.GET("/api/admin/users", middleware.RequireRole("admin", admin.GetUsers))
	router.PUT("/api/admin/users/:userid/status", middleware.RequireRole("admin", admin.SetUserStatus))
	router.GET("/api/admin/stats", middleware.RequireRole("admin", admin.GetStats))
}

func AddLiveRoutes(router *httprouter.Router, hub *live.Hub) {
	router.GET("/ws/:topic", live.HandleWS(hub))
}
