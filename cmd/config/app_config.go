package config

import (
	"emenu/internal/api/handlers"
	"emenu/internal/api/routes"
	"emenu/internal/middleware"
	"emenu/internal/utils"
	"emenu/internal/utils/mailing"
	"emenu/internal/utils/storage"
	"emenu/pkg/dish"
	"emenu/pkg/jwt"
	"emenu/pkg/menu"
	"emenu/pkg/report"
	"emenu/pkg/user"
	"os"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/log"
	"github.com/gofiber/fiber/v2/middleware/limiter"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"gorm.io/gorm"
)

func NewApp(db *gorm.DB) (*fiber.App, report.ReportService, error) {
	utils.InitValidator()
	app := fiber.New(fiber.Config{
		EnablePrintRoutes: true,
	})
	middlewares := middleware.NewMiddleware()
	validator := utils.Validate

	// setting up logging and limiter
	err := os.MkdirAll("./logs", os.ModePerm)
	if err != nil {
		log.Fatalf("error creating logs directory: %v", err)
	}
	file, err := os.OpenFile(
		"./logs/app.log",
		os.O_RDWR|os.O_CREATE|os.O_APPEND,
		0666,
	)
	if err != nil {
		log.Fatalf("error opening file: %v", err)
	}
	app.Use(logger.New(logger.Config{
		TimeFormat: "2006-01-02 15:04:05",
		Output:     file,
	}))

	app.Use(limiter.New(limiter.Config{
		Max:        10,
		Expiration: 1 * time.Second,
	}))

	// utils
	s3 := storage.NewAwsS3()
	mailer := mailing.NewSMTPMailer()

	// Repository
	userRepository := user.NewUserRepository(db)
	menuRepository := menu.NewMenuRepository(db)
	dishRepository := dish.NewDishRepository(db)
	reportRepository := report.NewReportRepository(db)

	// Service
	jwtService := jwt.NewJWTService()
	userService := user.NewUserService(userRepository, jwtService)
	menuService := menu.NewMenuService(menuRepository)
	dishService := dish.NewDishService(dishRepository, s3)
	reportService := report.NewReportService(reportRepository, mailer)

	// Handler
	userHandler := handlers.NewUserHandler(userService, validator)
	menuHandler := handlers.NewMenuHandler(menuService, validator)
	dishHandler := handlers.NewDishHandler(dishService, validator)

	// routes
	routesConfig := routes.Config{
		App:         app,
		UserHandler: userHandler,
		MenuHandler: menuHandler,
		DishHandler: dishHandler,
		Middleware:  middlewares,
		JWTService:  jwtService,
	}
	routesConfig.Setup()
	return app, reportService, nil
}
