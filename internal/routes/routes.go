package routes

import (
	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/bookmycut/salon-scheduler/internal/auth"
	"github.com/bookmycut/salon-scheduler/internal/cache"
	"github.com/bookmycut/salon-scheduler/internal/domain/booking"
	"github.com/bookmycut/salon-scheduler/internal/handlers"
	"github.com/bookmycut/salon-scheduler/internal/middleware"
	"github.com/bookmycut/salon-scheduler/internal/models"
	"github.com/bookmycut/salon-scheduler/internal/notification"
	"github.com/bookmycut/salon-scheduler/internal/usecase/appointment"
	"github.com/bookmycut/salon-scheduler/internal/usecase/catalog"
)

// Deps carries the shared singletons the route tree needs.
type Deps struct {
	DB       *gorm.DB
	Cache    *cache.ScheduleCache
	Repo     booking.Repository
	Store    *notification.Store
	Notifier notification.Dispatcher
	Tokens   *auth.TokenManager
}

func RegisterRoutes(r *gin.Engine, d *Deps) {
	corsCfg := cors.DefaultConfig()
	corsCfg.AllowAllOrigins = true
	corsCfg.AllowHeaders = append(corsCfg.AllowHeaders, "Authorization")
	r.Use(cors.New(corsCfg))
	r.Use(middleware.RequestID())

	createUC := appointment.NewCreateAppointment(d.Repo, d.Notifier)
	createPublicUC := appointment.NewCreatePublicAppointment(d.Repo, createUC, d.Tokens)
	updateUC := appointment.NewUpdateAppointment(d.Repo, d.Notifier)
	deleteUC := appointment.NewDeleteAppointment(d.Repo)
	queries := appointment.NewQueries(d.Repo)
	stylistServicesUC := catalog.NewStylistServices(d.Repo)

	authH := handlers.NewAuthHandler(d.DB, d.Tokens)
	userH := handlers.NewUserHandler(d.DB)
	serviceH := handlers.NewServiceOfferHandler(d.DB)
	availabilityH := handlers.NewAvailabilityHandler(d.DB, d.Cache)
	exceptionH := handlers.NewScheduleExceptionHandler(d.DB, d.Cache)
	appointmentH := handlers.NewAppointmentHandler(createUC, createPublicUC, updateUC, deleteUC, queries)
	notificationH := handlers.NewNotificationHandler(d.Store)
	stylistServiceH := handlers.NewStylistServiceHandler(stylistServicesUC)

	api := r.Group("/api")

	// Public surface: registration, login, the booking form and the catalog
	// it needs.
	api.POST("/auth/register", authH.Register)
	api.POST("/auth/login", authH.Login)
	api.POST("/appointments/public", appointmentH.CreatePublic)
	api.GET("/services", serviceH.List)
	api.GET("/services/:id", serviceH.Get)
	api.GET("/stylists", userH.ListStylists)
	api.GET("/stylists/:stylistId/availabilities", availabilityH.ListByStylist)
	api.GET("/stylists/:stylistId/services", stylistServiceH.ListByStylist)

	secured := api.Group("")
	secured.Use(middleware.AuthMiddleware(d.Tokens))

	secured.GET("/me", authH.Me)
	secured.GET("/me/services", middleware.RequireRoles(models.RoleStylist), stylistServiceH.ListMine)
	secured.POST("/stylists/:stylistId/services",
		middleware.RequireRoles(models.RoleStylist, models.RoleAdmin), stylistServiceH.Assign)

	notif := secured.Group("/notifications")
	notif.GET("", notificationH.List)
	notif.GET("/unread", notificationH.ListUnread)
	notif.GET("/unread-count", notificationH.UnreadCount)
	notif.PATCH("/:id/read", notificationH.MarkRead)
	notif.PATCH("/read-all", notificationH.MarkAllRead)
	notif.DELETE("/:id", notificationH.Delete)

	staff := secured.Group("")
	staff.Use(middleware.RequireRoles(models.RoleAdmin, models.RoleStylist))

	staff.POST("/appointments", appointmentH.Create)
	staff.GET("/appointments", appointmentH.List)
	staff.GET("/appointments/search", appointmentH.Search)
	staff.GET("/appointments/date/:date", appointmentH.ListByDate)
	staff.GET("/appointments/client/:clientId", appointmentH.ListByClient)
	staff.GET("/appointments/stylist/:stylistId", appointmentH.ListByStylist)
	staff.GET("/appointments/stylist/:stylistId/date/:date", appointmentH.ListByStylistAndDate)
	staff.GET("/appointments/:id", appointmentH.Get)
	staff.PATCH("/appointments/:id", appointmentH.Update)

	admin := secured.Group("")
	admin.Use(middleware.RequireRoles(models.RoleAdmin))

	admin.DELETE("/appointments/:id", appointmentH.Delete)

	admin.GET("/users", userH.List)
	admin.GET("/users/:id", userH.Get)
	admin.PATCH("/users/:id", userH.Update)
	admin.DELETE("/users/:id", userH.Delete)

	admin.POST("/services", serviceH.Create)
	admin.PUT("/services/:id", serviceH.Update)
	admin.DELETE("/services/:id", serviceH.Delete)

	admin.POST("/availabilities", availabilityH.Create)
	admin.PUT("/availabilities/:id", availabilityH.Update)
	admin.DELETE("/availabilities/:id", availabilityH.Delete)

	admin.GET("/schedule-exceptions", exceptionH.List)
	admin.POST("/schedule-exceptions", exceptionH.Create)
	admin.PUT("/schedule-exceptions/:id", exceptionH.Update)
	admin.DELETE("/schedule-exceptions/:id", exceptionH.Delete)
}
