package routes

import (
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"salonbook-backend/cache"
	"salonbook-backend/config"
	"salonbook-backend/controllers"
	"salonbook-backend/logger"
	"salonbook-backend/models"
	"salonbook-backend/repository"
	"salonbook-backend/services"
	"salonbook-backend/utils"
	"salonbook-backend/validation"
)

func SetupRouter(db *gorm.DB, cfg *config.Config, log *logger.Logger) *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery())

	r.Use(cors.New(cors.Config{
		AllowOrigins:     cfg.AllowedOrigins,
		AllowMethods:     []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Authorization", "Content-Type"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: true,
	}))

	r.Use(config.RequestLogger(log))

	checker := validation.NewChecker()
	views := cache.NewViews(5 * time.Minute)

	serviceRepo := repository.NewGormServiceRepository(db)
	stylistRepo := repository.NewGormStylistRepository(db)
	scheduleRepo := repository.NewGormScheduleRepository(db)
	offeredRepo := repository.NewGormOfferedServiceRepository(db)
	customerRepo := repository.NewGormCustomerRepository(db)
	appointmentRepo := repository.NewGormAppointmentRepository(db)
	userRepo := repository.NewGormUserRepository(db)

	serviceSvc := services.NewServiceService(serviceRepo, checker, log)
	stylistSvc := services.NewStylistService(stylistRepo, checker, log)
	scheduleSvc := services.NewScheduleService(scheduleRepo, stylistRepo, checker, log)
	offeredSvc := services.NewOfferedServiceService(offeredRepo, stylistRepo, serviceRepo, checker, log)
	bookingSvc := services.NewBookingService(offeredRepo, scheduleRepo, customerRepo, appointmentRepo, checker, log)
	authSvc := services.NewAuthService(userRepo, checker, cfg.JWTSecret, log)
	dashboardSvc := services.NewDashboardService(serviceRepo, stylistRepo, appointmentRepo, log)

	serviceCtl := controllers.NewServiceController(serviceSvc, views, log)
	stylistCtl := controllers.NewStylistController(stylistSvc, views, log)
	scheduleCtl := controllers.NewScheduleController(scheduleSvc, authSvc, log)
	offeredCtl := controllers.NewOfferedServiceController(offeredSvc, authSvc, views, log)
	publicCtl := controllers.NewPublicController(stylistSvc, serviceSvc, offeredSvc, bookingSvc, views, log)
	authCtl := controllers.NewAuthController(authSvc, log)
	dashboardCtl := controllers.NewDashboardController(dashboardSvc, log)
	appointmentCtl := controllers.NewAppointmentController(bookingSvc, authSvc, log)

	public := r.Group("/api/public")
	{
		public.GET("/services", publicCtl.Services)
		public.GET("/stylists", publicCtl.Stylists)
		public.GET("/stylists/:id", publicCtl.StylistDetail)
		public.POST("/bookings", publicCtl.Book)
	}

	auth := r.Group("/auth")
	{
		auth.POST("/register", authCtl.Register)
		auth.POST("/login", authCtl.Login)

		auth.Use(utils.AuthMiddleware(cfg.JWTSecret))
		auth.GET("/me", authCtl.Me)
		auth.POST("/logout", authCtl.Logout)
		auth.POST("/set-password", authCtl.SetPassword)
	}

	api := r.Group("/api")
	api.Use(utils.AuthMiddleware(cfg.JWTSecret))
	{
		admin := api.Group("/admin")
		admin.Use(utils.RequireRole(models.RoleAdmin))
		{
			adminServices := admin.Group("/services")
			{
				adminServices.GET("", serviceCtl.List)
				adminServices.GET("/:id", serviceCtl.Get)
				adminServices.POST("", serviceCtl.Create)
				adminServices.PUT("/:id", serviceCtl.Update)
				adminServices.DELETE("/:id", serviceCtl.Delete)
			}

			adminStylists := admin.Group("/stylists")
			{
				adminStylists.GET("", stylistCtl.List)
				adminStylists.GET("/:id", stylistCtl.Get)
				adminStylists.POST("", stylistCtl.Create)
				adminStylists.PUT("/:id", stylistCtl.Update)
				adminStylists.DELETE("/:id", stylistCtl.Delete)
			}

			admin.GET("/dashboard", dashboardCtl.Overview)
		}

		stylist := api.Group("/stylist")
		stylist.Use(utils.RequireRole(models.RoleStylist, models.RoleAdmin))
		{
			schedules := stylist.Group("/schedules")
			{
				schedules.GET("", scheduleCtl.List)
				schedules.POST("", scheduleCtl.Create)
				schedules.DELETE("/:id", scheduleCtl.Delete)
			}

			offered := stylist.Group("/offered-services")
			{
				offered.GET("", offeredCtl.List)
				offered.POST("", offeredCtl.Create)
				offered.PATCH("/:id", offeredCtl.SetActive)
				offered.DELETE("/:id", offeredCtl.Delete)
			}

			stylist.GET("/appointments", appointmentCtl.Upcoming)
		}
	}

	return r
}
