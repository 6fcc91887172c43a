package handlers

import (
	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/sirupsen/logrus"

	"travelblog/internal/auth"
	"travelblog/internal/models"
	"travelblog/internal/store"
)

var validate = validator.New()

// AuthHandler serves signup and login.
type AuthHandler struct {
	accounts store.AccountStore
	secret   string
}

func NewAuthHandler(accounts store.AccountStore, secret string) *AuthHandler {
	return &AuthHandler{accounts: accounts, secret: secret}
}

type signupRequest struct {
	Name     string `json:"name" validate:"required"`
	Email    string `json:"email" validate:"required"`
	Password string `json:"password" validate:"required"`
	Role     string `json:"role"`
}

// Signup registers a new account. The role is taken from the request when
// given, otherwise defaults to "user". No token is issued; the caller logs
// in separately.
func (h *AuthHandler) Signup(c *fiber.Ctx) error {
	var req signupRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"message": "All fields are required"})
	}
	if err := validate.Struct(req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"message": "All fields are required"})
	}

	// Best-effort existence check; the unique index on email catches the
	// race between check and insert.
	if _, err := h.accounts.FindByEmail(c.Context(), req.Email); err == nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"message": "User already exists"})
	} else if err != store.ErrNotFound {
		logrus.WithError(err).Error("Signup: account lookup failed")
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"message": "Error registering user"})
	}

	role := req.Role
	if role == "" {
		role = models.RoleUser
	}

	user := models.User{
		Name:     req.Name,
		Email:    req.Email,
		Password: req.Password,
		Role:     role,
	}
	if err := h.accounts.Create(c.Context(), &user); err != nil {
		if err == store.ErrEmailTaken {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"message": "User already exists"})
		}
		logrus.WithError(err).Error("Signup: insert failed")
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"message": "Error registering user"})
	}

	return c.Status(fiber.StatusCreated).JSON(fiber.Map{"message": "User registered successfully"})
}

type loginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// Login checks credentials by direct comparison and issues a signed token
// on success.
func (h *AuthHandler) Login(c *fiber.Ctx) error {
	var req loginRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"message": "Invalid email or password"})
	}

	user, err := h.accounts.FindByEmail(c.Context(), req.Email)
	if err == store.ErrNotFound {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"message": "Invalid email or password"})
	}
	if err != nil {
		logrus.WithError(err).Error("Login: account lookup failed")
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"message": "Error logging in"})
	}
	if user.Password != req.Password {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"message": "Invalid email or password"})
	}

	token, err := auth.GenerateToken(h.secret, user.Name, user.Email, user.Role)
	if err != nil {
		logrus.WithError(err).Error("Login: token signing failed")
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"message": "Error logging in"})
	}

	return c.JSON(fiber.Map{
		"message": "Login successful",
		"token":   token,
		"user": fiber.Map{
			"name":  user.Name,
			"email": user.Email,
			"role":  user.Role,
		},
	})
}
