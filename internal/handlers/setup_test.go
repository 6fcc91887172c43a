package handlers

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"

	"travelblog/internal/middleware"
	"travelblog/internal/testutil"
)

const testSecret = "test-secret"

type testEnv struct {
	app      *fiber.App
	accounts *testutil.MemAccountStore
	bookings *testutil.MemBookingStore
	blogs    *testutil.MemBlogStore
	images   *testutil.MemImageStore
}

// newTestEnv wires the full route table against in-memory stores, mirroring
// cmd/main.go.
func newTestEnv() *testEnv {
	env := &testEnv{
		accounts: testutil.NewMemAccountStore(),
		bookings: testutil.NewMemBookingStore(),
		blogs:    testutil.NewMemBlogStore(),
		images:   testutil.NewMemImageStore(),
	}

	authHandler := NewAuthHandler(env.accounts, testSecret)
	bookingHandler := NewBookingHandler(env.bookings)
	blogHandler := NewBlogHandler(env.blogs, env.images)
	adminHandler := NewAdminHandler(env.accounts, env.bookings)

	app := fiber.New()
	requireAuth := middleware.RequireAuth(testSecret)

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

	env.app = app
	return env
}

func (env *testEnv) userToken(t *testing.T, name, email string) string {
	return testutil.Token(t, testSecret, name, email, "user")
}

func (env *testEnv) adminToken(t *testing.T) string {
	return testutil.Token(t, testSecret, "Root", "root@example.com", "admin")
}

// request sends a JSON request and returns the raw response.
func (env *testEnv) request(t *testing.T, method, path, token string, payload interface{}) *http.Response {
	t.Helper()
	var body io.Reader
	if payload != nil {
		data, err := json.Marshal(payload)
		if err != nil {
			t.Fatalf("marshal payload: %v", err)
		}
		body = bytes.NewReader(data)
	}
	req := httptest.NewRequest(method, path, body)
	if payload != nil {
		req.Header.Set(fiber.HeaderContentType, fiber.MIMEApplicationJSON)
	}
	if token != "" {
		req.Header.Set(fiber.HeaderAuthorization, "Bearer "+token)
	}
	resp, err := env.app.Test(req)
	if err != nil {
		t.Fatalf("app.Test: %v", err)
	}
	return resp
}

func decodeMap(t *testing.T, resp *http.Response) map[string]interface{} {
	t.Helper()
	var body map[string]interface{}
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
		t.Fatalf("decode body: %v", err)
	}
	return body
}

func decodeList(t *testing.T, resp *http.Response) []map[string]interface{} {
	t.Helper()
	var body []map[string]interface{}
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
		t.Fatalf("decode body: %v", err)
	}
	return body
}
