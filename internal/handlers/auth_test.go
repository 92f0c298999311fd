package handlers

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"horoscope-api/internal/dto"
	"horoscope-api/internal/middleware"
)

func signupBody(name, email, password, birthdate string) *strings.Reader {
	b, _ := json.Marshal(dto.SignupRequest{
		Name:      name,
		Email:     email,
		Password:  password,
		Birthdate: birthdate,
	})
	return strings.NewReader(string(b))
}

func doSignup(t *testing.T, env *testEnv, body *strings.Reader) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(http.MethodPost, "/api/auth/signup", body)
	rec := httptest.NewRecorder()
	env.auth.Signup(rec, req)
	return rec
}

func TestSignup_Success(t *testing.T) {
	env := newTestEnv()

	rec := doSignup(t, env, signupBody("Jane Doe", "jane@example.com", "secret123", "1990-05-15"))
	require.Equal(t, http.StatusCreated, rec.Code)

	var resp dto.AuthResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))

	assert.Equal(t, "User created successfully", resp.Message)
	assert.Equal(t, "Jane Doe", resp.User.Name)
	assert.Equal(t, "Taurus", resp.User.ZodiacSign)
	assert.Equal(t, "1990-05-15", resp.User.Birthdate)
	assert.NotEmpty(t, resp.Token)

	// The issued token must carry the new user's identity
	claims, err := middleware.ValidateToken(resp.Token, &env.cfg.JWT)
	require.NoError(t, err)
	assert.Equal(t, resp.User.ID, claims.UserID.String())
}

func TestSignup_DuplicateEmail(t *testing.T) {
	env := newTestEnv()

	rec := doSignup(t, env, signupBody("Jane Doe", "jane@example.com", "secret123", "1990-05-15"))
	require.Equal(t, http.StatusCreated, rec.Code)

	rec = doSignup(t, env, signupBody("Other Jane", "jane@example.com", "secret456", "1985-01-01"))
	assert.Equal(t, http.StatusConflict, rec.Code)
	assert.Contains(t, rec.Body.String(), "Email already registered")
}

func TestSignup_Validation(t *testing.T) {
	tests := []struct {
		name string
		body *strings.Reader
		want string
	}{
		{"missing fields", signupBody("", "jane@example.com", "secret123", "1990-05-15"), "required"},
		{"short name", signupBody("J", "jane@example.com", "secret123", "1990-05-15"), "between 2 and 50"},
		{"bad email", signupBody("Jane Doe", "not-an-email", "secret123", "1990-05-15"), "Invalid email format"},
		{"short password", signupBody("Jane Doe", "jane@example.com", "12345", "1990-05-15"), "at least 6"},
		{"bad birthdate", signupBody("Jane Doe", "jane@example.com", "secret123", "15-05-1990"), "birthdate"},
		{"future birthdate", signupBody("Jane Doe", "jane@example.com", "secret123", "2999-01-01"), "future"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			env := newTestEnv()
			rec := doSignup(t, env, tt.body)
			assert.Equal(t, http.StatusBadRequest, rec.Code)
			assert.Contains(t, strings.ToLower(rec.Body.String()), strings.ToLower(tt.want))
		})
	}
}

func TestSignup_MethodNotAllowed(t *testing.T) {
	env := newTestEnv()
	req := httptest.NewRequest(http.MethodGet, "/api/auth/signup", nil)
	rec := httptest.NewRecorder()
	env.auth.Signup(rec, req)
	assert.Equal(t, http.StatusMethodNotAllowed, rec.Code)
}

func TestLogin(t *testing.T) {
	env := newTestEnv()
	rec := doSignup(t, env, signupBody("Jane Doe", "jane@example.com", "secret123", "1990-05-15"))
	require.Equal(t, http.StatusCreated, rec.Code)

	login := func(email, password string) *httptest.ResponseRecorder {
		b, _ := json.Marshal(dto.LoginRequest{Email: email, Password: password})
		req := httptest.NewRequest(http.MethodPost, "/api/auth/login", strings.NewReader(string(b)))
		rec := httptest.NewRecorder()
		env.auth.Login(rec, req)
		return rec
	}

	t.Run("success", func(t *testing.T) {
		rec := login("jane@example.com", "secret123")
		require.Equal(t, http.StatusOK, rec.Code)

		var resp dto.AuthResponse
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
		assert.Equal(t, "Login successful", resp.Message)
		assert.NotEmpty(t, resp.Token)
		assert.NotNil(t, resp.User.LastLogin)
	})

	t.Run("wrong password", func(t *testing.T) {
		rec := login("jane@example.com", "wrong-password")
		assert.Equal(t, http.StatusUnauthorized, rec.Code)
		assert.Contains(t, rec.Body.String(), "Invalid credentials")
		assert.NotContains(t, rec.Body.String(), "token")
	})

	t.Run("unknown email", func(t *testing.T) {
		rec := login("nobody@example.com", "secret123")
		assert.Equal(t, http.StatusUnauthorized, rec.Code)
	})

	t.Run("missing fields", func(t *testing.T) {
		rec := login("", "")
		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})
}

func TestProfile(t *testing.T) {
	env := newTestEnv()
	rec := doSignup(t, env, signupBody("Jane Doe", "jane@example.com", "secret123", "1990-05-15"))
	require.Equal(t, http.StatusCreated, rec.Code)

	var signup dto.AuthResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &signup))

	protected := middleware.AuthMiddleware(env.auth.Profile, &env.cfg.JWT)

	t.Run("with token", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/api/auth/profile", nil)
		req.Header.Set("Authorization", "Bearer "+signup.Token)
		rec := httptest.NewRecorder()
		protected(rec, req)

		require.Equal(t, http.StatusOK, rec.Code)
		var resp dto.ProfileResponse
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
		assert.Equal(t, "jane@example.com", resp.User.Email)
		assert.Equal(t, "Taurus", resp.User.ZodiacSign)
	})

	t.Run("without token", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/api/auth/profile", nil)
		rec := httptest.NewRecorder()
		protected(rec, req)
		assert.Equal(t, http.StatusUnauthorized, rec.Code)
	})
}
