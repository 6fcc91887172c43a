package store

import (
	"context"
	"errors"

	"travelblog/internal/models"
)

// Sentinel errors returned by store implementations. Anything else is an
// underlying database failure and maps to a 500 at the boundary.
var (
	ErrNotFound   = errors.New("not found")
	ErrEmailTaken = errors.New("email already registered")
)

// AccountStore defines operations on account documents.
type AccountStore interface {
	Create(ctx context.Context, user *models.User) error
	FindByEmail(ctx context.Context, email string) (*models.User, error)
	List(ctx context.Context) ([]models.User, error)
}

// BookingStore defines operations on booking documents.
type BookingStore interface {
	Create(ctx context.Context, booking *models.Booking) error
	List(ctx context.Context) ([]models.Booking, error)
	Delete(ctx context.Context, id string) error
}

// BlogStore defines operations on blog post documents.
type BlogStore interface {
	Create(ctx context.Context, blog *models.Blog) error
	List(ctx context.Context) ([]models.Blog, error)
	FindByID(ctx context.Context, id string) (*models.Blog, error)
	SetImageURL(ctx context.Context, id, url string) (*models.Blog, error)
	Delete(ctx context.Context, id string) error
}
