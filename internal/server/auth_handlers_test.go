package server

import (
	"net/http"
	"testing"

	"github.com/Matija334/RecipeWorld/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRegister(t *testing.T) {
	_, app := newTestServer(t)

	tests := []struct {
		name           string
		body           map[string]string
		expectedStatus int
	}{
		{
			name: "Valid registration",
			body: map[string]string{
				"email":    "new@example.com",
				"username": "newuser",
				"password": "password123",
			},
			expectedStatus: http.StatusCreated,
		},
		{
			name: "Invalid email",
			body: map[string]string{
				"email":    "not-an-email",
				"username": "someone",
				"password": "password123",
			},
			expectedStatus: http.StatusBadRequest,
		},
		{
			name: "Username too short",
			body: map[string]string{
				"email":    "short@example.com",
				"username": "ab",
				"password": "password123",
			},
			expectedStatus: http.StatusBadRequest,
		},
		{
			name: "Password too short",
			body: map[string]string{
				"email":    "weak@example.com",
				"username": "weakpass",
				"password": "short",
			},
			expectedStatus: http.StatusBadRequest,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			status, body := doRequest(t, app, http.MethodPost, "/api/auth/register", "", tt.body)
			assert.Equal(t, tt.expectedStatus, status)
			if tt.expectedStatus == http.StatusCreated {
				assert.NotEmpty(t, body["token"])
				user := body["user"].(map[string]any)
				assert.Equal(t, tt.body["email"], user["email"])
				assert.Nil(t, user["password"], "password hash must never be serialized")
			}
		})
	}
}

func TestRegisterDuplicateEmail(t *testing.T) {
	s, app := newTestServer(t)

	registerUser(t, app, "original")

	// Same email, different username and password.
	status, body := doRequest(t, app, http.MethodPost, "/api/auth/register", "", map[string]string{
		"email":    "original@example.com",
		"username": "impostor",
		"password": "different-password",
	})
	require.Equal(t, http.StatusConflict, status)
	assert.Equal(t, "CONFLICT", body["code"])

	// The original credential still works, so the account was not overwritten.
	status, _ = doRequest(t, app, http.MethodPost, "/api/auth/login", "", map[string]string{
		"email":    "original@example.com",
		"password": "password123",
	})
	assert.Equal(t, http.StatusOK, status)

	var count int64
	require.NoError(t, s.db.Model(&models.User{}).Where("email = ?", "original@example.com").Count(&count).Error)
	assert.Equal(t, int64(1), count)
}

func TestRegisterPreservesEmailCase(t *testing.T) {
	s, app := newTestServer(t)

	status, body := doRequest(t, app, http.MethodPost, "/api/auth/register", "", map[string]string{
		"email":    "  Alice@Example.com  ",
		"username": "alicemixed",
		"password": "password123",
	})
	require.Equal(t, http.StatusCreated, status)

	// Trimmed, but echoed and stored with the original casing.
	user := body["user"].(map[string]any)
	assert.Equal(t, "Alice@Example.com", user["email"])

	var stored models.User
	require.NoError(t, s.db.Where("username = ?", "alicemixed").First(&stored).Error)
	assert.Equal(t, "Alice@Example.com", stored.Email)

	// Login matches the stored spelling exactly.
	status, _ = doRequest(t, app, http.MethodPost, "/api/auth/login", "", map[string]string{
		"email":    "Alice@Example.com",
		"password": "password123",
	})
	assert.Equal(t, http.StatusOK, status)

	status, _ = doRequest(t, app, http.MethodPost, "/api/auth/login", "", map[string]string{
		"email":    "alice@example.com",
		"password": "password123",
	})
	assert.Equal(t, http.StatusUnauthorized, status)

	// A differently-cased spelling is a distinct account, not a conflict.
	status, _ = doRequest(t, app, http.MethodPost, "/api/auth/register", "", map[string]string{
		"email":    "alice@example.com",
		"username": "alicelower",
		"password": "password123",
	})
	assert.Equal(t, http.StatusCreated, status)
}

func TestLogin(t *testing.T) {
	_, app := newTestServer(t)

	registerUser(t, app, "loginuser")

	tests := []struct {
		name           string
		body           map[string]string
		expectedStatus int
	}{
		{
			name: "Valid credentials",
			body: map[string]string{
				"email":    "loginuser@example.com",
				"password": "password123",
			},
			expectedStatus: http.StatusOK,
		},
		{
			name: "Wrong password",
			body: map[string]string{
				"email":    "loginuser@example.com",
				"password": "wrong-password",
			},
			expectedStatus: http.StatusUnauthorized,
		},
		{
			name: "Unknown email",
			body: map[string]string{
				"email":    "nobody@example.com",
				"password": "password123",
			},
			expectedStatus: http.StatusUnauthorized,
		},
	}

	var failureBodies []map[string]any
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			status, body := doRequest(t, app, http.MethodPost, "/api/auth/login", "", tt.body)
			assert.Equal(t, tt.expectedStatus, status)
			if tt.expectedStatus == http.StatusUnauthorized {
				failureBodies = append(failureBodies, body)
			}
		})
	}

	// Wrong password and unknown email must be indistinguishable.
	require.Len(t, failureBodies, 2)
	assert.Equal(t, failureBodies[0], failureBodies[1])
}

func TestMe(t *testing.T) {
	_, app := newTestServer(t)

	token := registerUser(t, app, "whoami")

	status, body := doRequest(t, app, http.MethodGet, "/api/auth/me", token, nil)
	require.Equal(t, http.StatusOK, status)

	user := body["user"].(map[string]any)
	assert.Equal(t, "whoami", user["username"])
	assert.Equal(t, "whoami@example.com", user["email"])
}

func TestAuthRequired(t *testing.T) {
	_, app := newTestServer(t)

	tests := []struct {
		name  string
		token string
	}{
		{name: "Missing token", token: ""},
		{name: "Garbage token", token: "not-a-jwt"},
		{name: "Wrong signature", token: "eyJhbGciOiJIUzI1NiIsInR5cCI6IkpXVCJ9.eyJzdWIiOiIxIn0.invalid"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			status, body := doRequest(t, app, http.MethodGet, "/api/auth/me", tt.token, nil)
			assert.Equal(t, http.StatusUnauthorized, status)
			assert.Equal(t, "UNAUTHORIZED", body["code"])
		})
	}
}
