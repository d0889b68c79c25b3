package main

import (
	"fams/config"
	"fams/database"
	adminRoutes "fams/routers/adminRoutes"
	contentRoutes "fams/routers/contentRoutes"
	registrationRoutes "fams/routers/registrationRoutes"
	sponsorRoutes "fams/routers/sponsorRoutes"
	traineeRoutes "fams/routers/traineeRoutes"
	"fams/utils"
	"log"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/logger"
)

func main() {
	config.LoadConfig()
	database.ConnectDb()

	if err := database.Seed(database.Database.Db); err != nil {
		log.Fatalf("Seeding failed: %v", err)
	}

	app := fiber.New()

	app.Use(cors.New(cors.Config{
		AllowOrigins:     "http://localhost:5173",
		AllowMethods:     "GET,POST,PATCH,DELETE",
		AllowHeaders:     "Content-Type,Authorization",
		AllowCredentials: true,
	}))

	// Enable the built-in logger middleware to log all requests
	app.Use(logger.New(logger.Config{
		Format: "[${time}] ${ip} ${method} ${path} ${status} ${latency}\n",
	}))

	// Serve landing assets and uploaded passport photos
	app.Static("/", "./public")
	app.Static("/uploads", config.AppConfig.UploadDir)

	adminRoutes.SetupAdminRoutes(app)
	registrationRoutes.SetupRegistrationRoutes(app)
	sponsorRoutes.SetupSponsorRoutes(app)
	traineeRoutes.SetupTraineeRoutes(app)
	contentRoutes.SetupContentRoutes(app)

	utils.InitializeVerificationSweeper()

	log.Printf("Server is running on port %s", config.AppConfig.Port)
	log.Fatal(app.Listen(":" + config.AppConfig.Port))
}
