package handlers

import (
	"github.com/gofiber/fiber/v2"
	"github.com/sirupsen/logrus"

	"travelblog/internal/store"
)

// AdminHandler serves the admin-only endpoints. Role checks happen in the
// middleware chain, not here.
type AdminHandler struct {
	accounts store.AccountStore
	bookings store.BookingStore
}

func NewAdminHandler(accounts store.AccountStore, bookings store.BookingStore) *AdminHandler {
	return &AdminHandler{accounts: accounts, bookings: bookings}
}

// ListUsers returns all accounts without their passwords.
func (h *AdminHandler) ListUsers(c *fiber.Ctx) error {
	users, err := h.accounts.List(c.Context())
	if err != nil {
		logrus.WithError(err).Error("Admin: user list failed")
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"message": "Error fetching users"})
	}
	return c.JSON(users)
}

// ListBookings is the admin view of the booking list.
func (h *AdminHandler) ListBookings(c *fiber.Ctx) error {
	bookings, err := h.bookings.List(c.Context())
	if err != nil {
		logrus.WithError(err).Error("Admin: booking list failed")
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"message": "Error fetching bookings"})
	}
	return c.JSON(bookings)
}

// DeleteBooking removes a booking by id.
func (h *AdminHandler) DeleteBooking(c *fiber.Ctx) error {
	err := h.bookings.Delete(c.Context(), c.Params("id"))
	if err == store.ErrNotFound {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"message": "Booking not found"})
	}
	if err != nil {
		logrus.WithError(err).Error("Admin: booking delete failed")
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"message": "Error deleting booking"})
	}
	return c.JSON(fiber.Map{"message": "Booking cancelled successfully"})
}
