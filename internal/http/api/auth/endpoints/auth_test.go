package endpoints_test

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"

	"github.com/iceghosttth/bkalendar/internal/db"
	"github.com/iceghosttth/bkalendar/internal/http/api"
	authapi "github.com/iceghosttth/bkalendar/internal/http/api/auth/endpoints"
)

const testSecret = "supersecret"

func setupRouter(store db.Store) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()

	api.MountGroup(r, api.GroupConfig{
		Prefix: "/api",
	}, authapi.AuthPublicModule(testSecret, store))

	api.MountGroup(r, api.GroupConfig{
		Prefix:    "/api",
		Auth:      true,
		SecretKey: testSecret,
		Store:     store,
	}, authapi.AuthSessionModule(testSecret, store))

	return r
}

func postJSON(t *testing.T, router *gin.Engine, path, token string, body any) *httptest.ResponseRecorder {
	t.Helper()
	payload, err := json.Marshal(body)
	if err != nil {
		t.Fatalf("marshal request: %v", err)
	}
	req := httptest.NewRequest(http.MethodPost, path, bytes.NewReader(payload))
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

func TestSignupLoginAndProfile(t *testing.T) {
	store := db.NewMemStore()
	router := setupRouter(store)

	w := postJSON(t, router, "/api/auth/signup", "", map[string]any{
		"email":    "test@example.com",
		"password": "testpassword",
	})
	if w.Code != http.StatusCreated {
		t.Fatalf("signup failed: %d %s", w.Code, w.Body.String())
	}
	var signupResp struct {
		Token string `json:"token"`
	}
	if err := json.Unmarshal(w.Body.Bytes(), &signupResp); err != nil || signupResp.Token == "" {
		t.Fatalf("signup response lacks token: %s", w.Body.String())
	}

	// The profile endpoint rejects requests without a token.
	req := httptest.NewRequest(http.MethodGet, "/api/auth/current_profile", nil)
	w2 := httptest.NewRecorder()
	router.ServeHTTP(w2, req)
	if w2.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401 without token, got %d", w2.Code)
	}

	// And accepts the fresh one.
	req = httptest.NewRequest(http.MethodGet, "/api/auth/current_profile", nil)
	req.Header.Set("Authorization", "Bearer "+signupResp.Token)
	w3 := httptest.NewRecorder()
	router.ServeHTTP(w3, req)
	if w3.Code != http.StatusOK {
		t.Fatalf("current_profile failed: %d %s", w3.Code, w3.Body.String())
	}

	// Login with the same credentials works too.
	w4 := postJSON(t, router, "/api/auth/login", "", map[string]any{
		"email":    "test@example.com",
		"password": "testpassword",
	})
	if w4.Code != http.StatusOK {
		t.Fatalf("login failed: %d %s", w4.Code, w4.Body.String())
	}
}

func TestLoginRejectsBadPassword(t *testing.T) {
	store := db.NewMemStore()
	router := setupRouter(store)

	w := postJSON(t, router, "/api/auth/signup", "", map[string]any{
		"email":    "test@example.com",
		"password": "testpassword",
	})
	if w.Code != http.StatusCreated {
		t.Fatalf("signup failed: %d", w.Code)
	}

	w = postJSON(t, router, "/api/auth/login", "", map[string]any{
		"email":    "test@example.com",
		"password": "wrongpassword",
	})
	if w.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401 for bad password, got %d", w.Code)
	}
}

func TestSignupRejectsDuplicateEmail(t *testing.T) {
	store := db.NewMemStore()
	router := setupRouter(store)

	body := map[string]any{"email": "test@example.com", "password": "testpassword"}
	if w := postJSON(t, router, "/api/auth/signup", "", body); w.Code != http.StatusCreated {
		t.Fatalf("first signup failed: %d", w.Code)
	}
	if w := postJSON(t, router, "/api/auth/signup", "", body); w.Code != http.StatusConflict {
		t.Fatalf("expected 409 for duplicate email, got %d", w.Code)
	}
}
