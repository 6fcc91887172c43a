package handlers

import (
	"context"
	"net/http"
	"testing"

	"travelblog/internal/auth"
)

func TestSignup(t *testing.T) {
	env := newTestEnv()

	resp := env.request(t, http.MethodPost, "/api/signup", "", map[string]string{
		"name": "Alice", "email": "alice@example.com", "password": "p",
	})
	if resp.StatusCode != http.StatusCreated {
		t.Fatalf("status = %d, want 201", resp.StatusCode)
	}
	if msg := decodeMap(t, resp)["message"]; msg != "User registered successfully" {
		t.Fatalf("message = %v", msg)
	}

	user, err := env.accounts.FindByEmail(context.Background(), "alice@example.com")
	if err != nil {
		t.Fatalf("account not stored: %v", err)
	}
	if user.Role != "user" {
		t.Fatalf("role = %q, want default user", user.Role)
	}
}

func TestSignup_MissingField(t *testing.T) {
	env := newTestEnv()

	resp := env.request(t, http.MethodPost, "/api/signup", "", map[string]string{
		"name": "Alice", "email": "alice@example.com",
	})
	if resp.StatusCode != http.StatusBadRequest {
		t.Fatalf("status = %d, want 400", resp.StatusCode)
	}
	if msg := decodeMap(t, resp)["message"]; msg != "All fields are required" {
		t.Fatalf("message = %v", msg)
	}
}

func TestSignup_DuplicateEmail(t *testing.T) {
	env := newTestEnv()
	payload := map[string]string{"name": "Alice", "email": "alice@example.com", "password": "p"}

	if resp := env.request(t, http.MethodPost, "/api/signup", "", payload); resp.StatusCode != http.StatusCreated {
		t.Fatalf("first signup status = %d", resp.StatusCode)
	}

	resp := env.request(t, http.MethodPost, "/api/signup", "", payload)
	if resp.StatusCode != http.StatusBadRequest {
		t.Fatalf("status = %d, want 400", resp.StatusCode)
	}
	if msg := decodeMap(t, resp)["message"]; msg != "User already exists" {
		t.Fatalf("message = %v", msg)
	}
}

func TestSignup_ExplicitRole(t *testing.T) {
	env := newTestEnv()

	resp := env.request(t, http.MethodPost, "/api/signup", "", map[string]string{
		"name": "Root", "email": "root@example.com", "password": "p", "role": "admin",
	})
	if resp.StatusCode != http.StatusCreated {
		t.Fatalf("status = %d, want 201", resp.StatusCode)
	}

	user, err := env.accounts.FindByEmail(context.Background(), "root@example.com")
	if err != nil {
		t.Fatalf("account not stored: %v", err)
	}
	if user.Role != "admin" {
		t.Fatalf("role = %q, want admin", user.Role)
	}
}

func TestLogin(t *testing.T) {
	env := newTestEnv()
	env.request(t, http.MethodPost, "/api/signup", "", map[string]string{
		"name": "Alice", "email": "alice@example.com", "password": "p",
	})

	resp := env.request(t, http.MethodPost, "/api/login", "", map[string]string{
		"email": "alice@example.com", "password": "p",
	})
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("status = %d, want 200", resp.StatusCode)
	}

	body := decodeMap(t, resp)
	if body["message"] != "Login successful" {
		t.Fatalf("message = %v", body["message"])
	}

	tok, _ := body["token"].(string)
	claims, err := auth.VerifyToken(testSecret, tok)
	if err != nil {
		t.Fatalf("returned token does not verify: %v", err)
	}
	if claims.Name != "Alice" || claims.Email != "alice@example.com" || claims.Role != "user" {
		t.Fatalf("claims mismatch: %+v", claims)
	}

	user, _ := body["user"].(map[string]interface{})
	if user["email"] != "alice@example.com" || user["role"] != "user" {
		t.Fatalf("user payload mismatch: %v", body["user"])
	}
	if _, leaked := user["password"]; leaked {
		t.Fatal("password leaked in login response")
	}
}

func TestLogin_WrongPassword(t *testing.T) {
	env := newTestEnv()
	env.request(t, http.MethodPost, "/api/signup", "", map[string]string{
		"name": "Alice", "email": "alice@example.com", "password": "p",
	})

	resp := env.request(t, http.MethodPost, "/api/login", "", map[string]string{
		"email": "alice@example.com", "password": "wrong",
	})
	if resp.StatusCode != http.StatusBadRequest {
		t.Fatalf("status = %d, want 400", resp.StatusCode)
	}
	body := decodeMap(t, resp)
	if body["message"] != "Invalid email or password" {
		t.Fatalf("message = %v", body["message"])
	}
	if _, ok := body["token"]; ok {
		t.Fatal("token issued for wrong password")
	}
}

func TestLogin_UnknownEmail(t *testing.T) {
	env := newTestEnv()

	resp := env.request(t, http.MethodPost, "/api/login", "", map[string]string{
		"email": "nobody@example.com", "password": "p",
	})
	if resp.StatusCode != http.StatusBadRequest {
		t.Fatalf("status = %d, want 400", resp.StatusCode)
	}
	if msg := decodeMap(t, resp)["message"]; msg != "Invalid email or password" {
		t.Fatalf("message = %v", msg)
	}
}
