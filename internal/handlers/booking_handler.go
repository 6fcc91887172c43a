package handlers

import (
	"github.com/gofiber/fiber/v2"
	"github.com/sirupsen/logrus"

	"travelblog/internal/middleware"
	"travelblog/internal/models"
	"travelblog/internal/store"
)

// BookingHandler serves the public booking endpoints.
type BookingHandler struct {
	bookings store.BookingStore
}

func NewBookingHandler(bookings store.BookingStore) *BookingHandler {
	return &BookingHandler{bookings: bookings}
}

// List returns every booking. Public, unfiltered.
func (h *BookingHandler) List(c *fiber.Ctx) error {
	bookings, err := h.bookings.List(c.Context())
	if err != nil {
		logrus.WithError(err).Error("Bookings: list failed")
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"message": "Failed to fetch bookings"})
	}
	return c.JSON(bookings)
}

type createBookingRequest struct {
	Name   string `json:"name" validate:"required"`
	Email  string `json:"email" validate:"required"`
	People int    `json:"people" validate:"required"`
	City   string `json:"city" validate:"required"`
	Price  string `json:"price" validate:"required"`
}

// Create stores a booking for the authenticated caller. The record's user
// field holds the caller's email for reference only.
func (h *BookingHandler) Create(c *fiber.Ctx) error {
	var req createBookingRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"message": "All fields required"})
	}
	if err := validate.Struct(req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"message": "All fields required"})
	}

	claims := middleware.ClaimsFromCtx(c)
	booking := models.Booking{
		Name:   req.Name,
		Email:  req.Email,
		People: req.People,
		City:   req.City,
		Price:  req.Price,
		User:   claims.Email,
	}
	if err := h.bookings.Create(c.Context(), &booking); err != nil {
		logrus.WithError(err).Error("Bookings: insert failed")
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"message": "Failed to save booking"})
	}

	return c.Status(fiber.StatusCreated).JSON(fiber.Map{
		"message": "Booking confirmed",
		"booking": booking,
	})
}
