package main

import (
	"log"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"

	"salonbook-backend/config"
	"salonbook-backend/logger"
	"salonbook-backend/models"
	"salonbook-backend/repository"
	"salonbook-backend/routes"
	"salonbook-backend/services"
)

func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found")
	}

	cfg := config.Load()

	appLog := logger.New(logger.Config{
		Level:   cfg.LogLevel,
		Service: "salonbook",
	})

	if cfg.Environment == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	db, err := config.ConnectDB(cfg)
	if err != nil {
		appLog.Fatal("failed to connect database", "error", err)
	}

	if err := db.AutoMigrate(
		&models.User{},
		&models.Customer{},
		&models.Service{},
		&models.Stylist{},
		&models.WorkSchedule{},
		&models.OfferedService{},
		&models.Appointment{},
		&models.ReminderLog{},
	); err != nil {
		appLog.Fatal("failed to run migrations", "error", err)
	}

	reminders := services.NewReminderService(
		repository.NewGormAppointmentRepository(db),
		repository.NewGormReminderLogRepository(db),
		appLog,
	)
	scheduler := reminders.StartScheduler()
	defer scheduler.Stop()

	r := routes.SetupRouter(db, cfg, appLog)

	appLog.Info("starting server", "port", cfg.Port)
	if err := r.Run(":" + cfg.Port); err != nil {
		appLog.Fatal("server stopped", "error", err)
	}
}
