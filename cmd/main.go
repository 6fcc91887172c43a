package main

import (
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/fiber/v2/middleware/requestid"
	"github.com/google/uuid"
	"github.com/joho/godotenv"
	"github.com/sirupsen/logrus"

	"travelblog/internal/config"
	"travelblog/internal/db"
	"travelblog/internal/handlers"
	"travelblog/internal/middleware"
	"travelblog/internal/storage"
	"travelblog/internal/store"
)

func main() {
	// Load .env file if it exists
	if err := godotenv.Load(); err != nil {
		logrus.Info("No .env file found, using environment variables")
	}

	cfg, err := config.Load()
	if err != nil {
		logrus.WithError(err).Fatal("Invalid configuration")
	}
	logrus.Info(cfg)

	database, err := db.Connect(cfg.Mongo.URI, cfg.Mongo.Database)
	if err != nil {
		logrus.WithError(err).Fatal("MongoDB connection failed")
	}
	defer func() {
		if err := db.Disconnect(database); err != nil {
			logrus.WithError(err).Warn("Error disconnecting from MongoDB")
		}
	}()
	logrus.Info("Connected to MongoDB")

	images, err := storage.NewImageStore(cfg.Minio)
	if err != nil {
		logrus.WithError(err).Fatal("MinIO connection failed")
	}
	logrus.Info("Connected to MinIO")

	accounts := store.NewMongoAccountStore(database)
	bookings := store.NewMongoBookingStore(database)
	blogs := store.NewMongoBlogStore(database)

	authHandler := handlers.NewAuthHandler(accounts, cfg.JWTSecret)
	bookingHandler := handlers.NewBookingHandler(bookings)
	blogHandler := handlers.NewBlogHandler(blogs, images)
	adminHandler := handlers.NewAdminHandler(accounts, bookings)

	app := fiber.New()
	app.Use(requestid.New(requestid.Config{Generator: uuid.NewString}))
	app.Use(logger.New())
	app.Use(cors.New())

	requireAuth := middleware.RequireAuth(cfg.JWTSecret)

	api := app.Group("/api")
	api.Post("/signup", authHandler.Signup)
	api.Post("/login", authHandler.Login)

	api.Get("/bookings", bookingHandler.List)
	api.Post("/bookings", requireAuth, bookingHandler.Create)

	api.Get("/blogs", blogHandler.List)
	api.Post("/blogs", requireAuth, blogHandler.Create)
	api.Post("/blogs/:id/image", requireAuth, blogHandler.UploadImage)
	api.Delete("/blogs/:id", requireAuth, blogHandler.Delete)

	admin := api.Group("/admin", requireAuth, middleware.RequireAdmin())
	admin.Get("/users", adminHandler.ListUsers)
	admin.Get("/bookings", adminHandler.ListBookings)
	admin.Delete("/bookings/:id", adminHandler.DeleteBooking)

	logrus.Fatal(app.Listen(cfg.Addr))
}
