package routes

import (
	"prestige-salon-backend/config"
	"prestige-salon-backend/controllers"
	"prestige-salon-backend/metrics"
	"prestige-salon-backend/models"
	"prestige-salon-backend/services"
	"prestige-salon-backend/store"

	"github.com/gin-gonic/gin"
)

// Deps are the process-owned values the handlers share.
type Deps struct {
	Config   config.Config
	Store    store.Store
	Notifier *services.Notifier
}

func SetupRouter(d Deps) *gin.Engine {
	models.UseJSONFieldNames()

	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(config.RequestID())
	r.Use(config.PerformanceLogger(d.Config.SlowRequestThreshold))
	r.Use(metrics.Handler())

	r.Use(corsMiddleware()...)

	health := controllers.HealthController{Store: d.Store, URLConfigured: d.Config.DatabaseURL != ""}
	r.GET("/", health.Root)
	r.GET("/test", health.Test)
	r.GET("/metrics", metrics.Exposer())

	serviceController := controllers.ServiceController{Catalog: services.NewCatalog(d.Store)}
	bookingController := controllers.BookingController{Store: d.Store, Notifier: d.Notifier}
	contactController := controllers.ContactController{Store: d.Store, Notifier: d.Notifier}
	socialController := controllers.SocialController{Social: d.Config.Social()}

	api := r.Group("/api")
	{
		api.GET("/services", serviceController.GetServices)

		bookings := api.Group("/bookings")
		{
			bookings.POST("", bookingController.CreateBooking)
			bookings.GET("", bookingController.GetBookings)
		}

		api.POST("/contact", contactController.CreateContactMessage)

		social := api.Group("/social")
		{
			social.GET("/config", socialController.GetConfig)
			social.GET("/instagram", socialController.GetInstagramFeed)
			social.GET("/facebook", socialController.GetFacebookFeed)
		}
	}

	return r
}
