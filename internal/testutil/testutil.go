package testutil

import (
	"context"
	"io"
	"sort"
	"sync"
	"testing"
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"travelblog/internal/auth"
	"travelblog/internal/models"
	"travelblog/internal/store"
)

// Token signs a test token with the given claims.
func Token(t *testing.T, secret, name, email, role string) string {
	t.Helper()
	tok, err := auth.GenerateToken(secret, name, email, role)
	if err != nil {
		t.Fatalf("GenerateToken: %v", err)
	}
	return tok
}

// MemAccountStore is an in-memory store.AccountStore.
type MemAccountStore struct {
	mu    sync.Mutex
	users []models.User
}

func NewMemAccountStore() *MemAccountStore {
	return &MemAccountStore{}
}

func (s *MemAccountStore) Create(_ context.Context, user *models.User) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, u := range s.users {
		if u.Email == user.Email {
			return store.ErrEmailTaken
		}
	}
	user.ID = primitive.NewObjectID()
	user.CreatedAt = time.Now()
	s.users = append(s.users, *user)
	return nil
}

func (s *MemAccountStore) FindByEmail(_ context.Context, email string) (*models.User, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, u := range s.users {
		if u.Email == email {
			user := u
			return &user, nil
		}
	}
	return nil, store.ErrNotFound
}

func (s *MemAccountStore) List(_ context.Context) ([]models.User, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	users := make([]models.User, len(s.users))
	for i, u := range s.users {
		u.Password = ""
		users[i] = u
	}
	return users, nil
}

// MemBookingStore is an in-memory store.BookingStore.
type MemBookingStore struct {
	mu       sync.Mutex
	bookings []models.Booking
}

func NewMemBookingStore() *MemBookingStore {
	return &MemBookingStore{}
}

func (s *MemBookingStore) Create(_ context.Context, booking *models.Booking) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	booking.ID = primitive.NewObjectID()
	booking.Date = time.Now()
	s.bookings = append(s.bookings, *booking)
	return nil
}

func (s *MemBookingStore) List(_ context.Context) ([]models.Booking, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]models.Booking{}, s.bookings...), nil
}

func (s *MemBookingStore) Delete(_ context.Context, id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i, b := range s.bookings {
		if b.ID.Hex() == id {
			s.bookings = append(s.bookings[:i], s.bookings[i+1:]...)
			return nil
		}
	}
	return store.ErrNotFound
}

// MemBlogStore is an in-memory store.BlogStore.
type MemBlogStore struct {
	mu    sync.Mutex
	blogs []models.Blog
}

func NewMemBlogStore() *MemBlogStore {
	return &MemBlogStore{}
}

func (s *MemBlogStore) Create(_ context.Context, blog *models.Blog) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	blog.ID = primitive.NewObjectID()
	blog.Date = time.Now()
	s.blogs = append(s.blogs, *blog)
	return nil
}

func (s *MemBlogStore) List(_ context.Context) ([]models.Blog, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	blogs := append([]models.Blog{}, s.blogs...)
	sort.Slice(blogs, func(i, j int) bool {
		return blogs[i].Date.After(blogs[j].Date)
	})
	return blogs, nil
}

func (s *MemBlogStore) FindByID(_ context.Context, id string) (*models.Blog, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, b := range s.blogs {
		if b.ID.Hex() == id {
			blog := b
			return &blog, nil
		}
	}
	return nil, store.ErrNotFound
}

func (s *MemBlogStore) SetImageURL(_ context.Context, id, url string) (*models.Blog, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i, b := range s.blogs {
		if b.ID.Hex() == id {
			s.blogs[i].ImageURL = url
			blog := s.blogs[i]
			return &blog, nil
		}
	}
	return nil, store.ErrNotFound
}

func (s *MemBlogStore) Delete(_ context.Context, id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i, b := range s.blogs {
		if b.ID.Hex() == id {
			s.blogs = append(s.blogs[:i], s.blogs[i+1:]...)
			return nil
		}
	}
	return store.ErrNotFound
}

// MemImageStore records uploads and hands back a fake URL.
type MemImageStore struct {
	mu      sync.Mutex
	Objects []string
}

func NewMemImageStore() *MemImageStore {
	return &MemImageStore{}
}

func (s *MemImageStore) Upload(_ context.Context, objectName string, r io.Reader, _ int64, _ string) (string, error) {
	if _, err := io.ReadAll(r); err != nil {
		return "", err
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	s.Objects = append(s.Objects, objectName)
	return "http://localhost:9000/blog-images/" + objectName, nil
}
