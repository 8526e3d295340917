package main

import (
	"log"

	"edugate/activity"
	"edugate/config"
	authController "edugate/controllers/auth"
	controllers "edugate/controllers/course"
	universityController "edugate/controllers/university"
	"edugate/database"
	"edugate/importer"
	"edugate/repository"
	authRoutes "edugate/routers/authRoutes"
	courseRoutes "edugate/routers/courseRoutes"
	universityRoutes "edugate/routers/universityRoutes"
	"edugate/utils"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/logger"
)

func main() {
	config.LoadConfig()

	db, err := database.Connect(config.AppConfig)
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}

	courses := repository.NewCourseRepository(db)
	universities := repository.NewUniversityRepository(db)
	activities := repository.NewActivityRepository(db)

	activityLog := activity.NewLogger(activities, 256)
	defer activityLog.Close()

	authCtl := authController.New(db, activityLog)
	courseCtl := controllers.NewCourseController(courses, universities, activityLog)
	importCtl := controllers.NewImportController(importer.New(db), activityLog)
	universityCtl := universityController.New(universities)

	app := fiber.New()

	app.Use(cors.New(cors.Config{
		AllowOrigins: "*",
		AllowMethods: "GET,POST,PUT,DELETE",        // Allowed HTTP methods
		AllowHeaders: "Content-Type,Authorization", // Allowed headers
	}))

	// Enable the built-in logger middleware to log all requests
	app.Use(logger.New(logger.Config{
		Format: "[${time}] ${ip} ${method} ${path} ${status} ${latency}\n",
	}))

	authRoutes.SetupAuthRoutes(app, authCtl)
	courseRoutes.SetupCourseRoutes(app, courseCtl)
	courseRoutes.SetupAdminCourseRoutes(app, courseCtl, importCtl)
	universityRoutes.SetupUniversityRoutes(app, universityCtl)

	digest := utils.StartDigestScheduler(activities)
	defer digest.Stop()

	log.Printf("Server is running on port %s", config.AppConfig.Port)
	log.Fatal(app.Listen(":" + config.AppConfig.Port))
}
