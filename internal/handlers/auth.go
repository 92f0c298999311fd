package handlers

import (
	"errors"
	"net/http"
	"regexp"
	"time"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"

	"horoscope-api/internal/config"
	"horoscope-api/internal/dto"
	"horoscope-api/internal/middleware"
	"horoscope-api/internal/models"
	"horoscope-api/internal/repository"
	"horoscope-api/internal/utils"
	"horoscope-api/internal/zodiac"
)

var emailPattern = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)

// AuthHandler handles authentication-related HTTP requests
type AuthHandler struct {
	users repository.UserRepository
	cfg   *config.Config
}

// NewAuthHandler creates a new AuthHandler instance
func NewAuthHandler(users repository.UserRepository, cfg *config.Config) *AuthHandler {
	return &AuthHandler{users: users, cfg: cfg}
}

// Signup handles user registration
// @Summary Register a new user
// @Description Create a new user account. The zodiac sign is derived from the birthdate server-side.
// @Tags authentication
// @Accept json
// @Produce json
// @Param request body dto.SignupRequest true "User registration data"
// @Success 201 {object} dto.AuthResponse "User created successfully"
// @Failure 400 {object} dto.ErrorResponse "Invalid request data"
// @Failure 409 {object} dto.ErrorResponse "Email already registered"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /api/auth/signup [post]
func (h *AuthHandler) Signup(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}

	var req dto.SignupRequest
	if err := utils.DecodeJSONRequest(r, &req); err != nil {
		utils.WriteErrorResponse(w, http.StatusBadRequest, "Invalid request body", err.Error())
		return
	}

	if errMsg := validateSignup(&req); errMsg != "" {
		utils.WriteErrorResponse(w, http.StatusBadRequest, errMsg, "")
		return
	}

	birthdate, err := utils.ParseDate(req.Birthdate)
	if err != nil {
		utils.WriteErrorResponse(w, http.StatusBadRequest, "Invalid birthdate format", "Use YYYY-MM-DD format")
		return
	}
	if birthdate.After(time.Now()) {
		utils.WriteErrorResponse(w, http.StatusBadRequest, "Birthdate cannot be in the future", "")
		return
	}

	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		utils.WriteErrorResponse(w, http.StatusInternalServerError, "Failed to hash password", err.Error())
		return
	}

	// The sign is derived once here and stored immutably on the user
	sign := zodiac.FromDate(birthdate)

	now := time.Now().UTC()
	user := &models.User{
		ID:           uuid.New(),
		Name:         req.Name,
		Email:        req.Email,
		PasswordHash: string(hashedPassword),
		Birthdate:    birthdate,
		ZodiacSign:   string(sign),
		CreatedAt:    now,
		UpdatedAt:    now,
	}

	if err := h.users.Create(r.Context(), user); err != nil {
		if errors.Is(err, repository.ErrDuplicateEmail) {
			utils.WriteErrorResponse(w, http.StatusConflict, "Email already registered", "")
			return
		}
		utils.WriteErrorResponse(w, http.StatusInternalServerError, "Failed to create user", err.Error())
		return
	}

	token, err := middleware.GenerateToken(user.ID, user.Email, &h.cfg.JWT)
	if err != nil {
		utils.WriteErrorResponse(w, http.StatusInternalServerError, "Failed to generate token", err.Error())
		return
	}

	response := dto.AuthResponse{
		Message: "User created successfully",
		User:    toUserResponse(user),
		Token:   token,
	}

	utils.WriteJSONResponse(w, http.StatusCreated, response)
}

// Login handles user login
// @Summary Login user
// @Description Authenticate user with email and password
// @Tags authentication
// @Accept json
// @Produce json
// @Param request body dto.LoginRequest true "Login credentials"
// @Success 200 {object} dto.AuthResponse "Login successful"
// @Failure 400 {object} dto.ErrorResponse "Invalid request data"
// @Failure 401 {object} dto.ErrorResponse "Invalid credentials"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /api/auth/login [post]
func (h *AuthHandler) Login(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}

	var req dto.LoginRequest
	if err := utils.DecodeJSONRequest(r, &req); err != nil {
		utils.WriteErrorResponse(w, http.StatusBadRequest, "Invalid request body", err.Error())
		return
	}

	if req.Email == "" || req.Password == "" {
		utils.WriteErrorResponse(w, http.StatusBadRequest, "Missing required fields", "Email and password are required")
		return
	}

	user, err := h.users.FindByEmail(r.Context(), req.Email)
	if err != nil {
		utils.WriteErrorResponse(w, http.StatusInternalServerError, "Failed to look up user", err.Error())
		return
	}
	if user == nil {
		utils.WriteErrorResponse(w, http.StatusUnauthorized, "Invalid credentials", "Email or password is incorrect")
		return
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(req.Password)); err != nil {
		utils.WriteErrorResponse(w, http.StatusUnauthorized, "Invalid credentials", "Email or password is incorrect")
		return
	}

	now := time.Now().UTC()
	if err := h.users.UpdateLastLogin(r.Context(), user.ID, now); err != nil {
		utils.WriteErrorResponse(w, http.StatusInternalServerError, "Failed to update last login", err.Error())
		return
	}
	user.LastLogin = &now

	token, err := middleware.GenerateToken(user.ID, user.Email, &h.cfg.JWT)
	if err != nil {
		utils.WriteErrorResponse(w, http.StatusInternalServerError, "Failed to generate token", err.Error())
		return
	}

	response := dto.AuthResponse{
		Message: "Login successful",
		User:    toUserResponse(user),
		Token:   token,
	}

	utils.WriteJSONResponse(w, http.StatusOK, response)
}

// Profile returns the current user's profile
// @Summary Get user profile
// @Description Get the current authenticated user's profile information
// @Tags authentication
// @Produce json
// @Security BearerAuth
// @Success 200 {object} dto.ProfileResponse "User profile retrieved successfully"
// @Failure 401 {object} dto.ErrorResponse "Unauthorized"
// @Failure 404 {object} dto.ErrorResponse "User not found"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /api/auth/profile [get]
func (h *AuthHandler) Profile(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}

	userID, ok := utils.GetUserIDFromContext(r.Context())
	if !ok {
		utils.WriteErrorResponse(w, http.StatusUnauthorized, "Unauthorized", "User not authenticated")
		return
	}

	user, err := h.users.FindByID(r.Context(), userID)
	if err != nil {
		utils.WriteErrorResponse(w, http.StatusInternalServerError, "Failed to look up user", err.Error())
		return
	}
	if user == nil {
		utils.WriteErrorResponse(w, http.StatusNotFound, "User not found", "")
		return
	}

	utils.WriteJSONResponse(w, http.StatusOK, dto.ProfileResponse{User: toUserResponse(user)})
}

// validateSignup returns an error string for invalid signup input, or "".
func validateSignup(req *dto.SignupRequest) string {
	if req.Name == "" || req.Email == "" || req.Password == "" || req.Birthdate == "" {
		return "Name, email, password, and birthdate are required"
	}
	if len(req.Name) < 2 || len(req.Name) > 50 {
		return "Name must be between 2 and 50 characters"
	}
	if !emailPattern.MatchString(req.Email) {
		return "Invalid email format"
	}
	if len(req.Password) < 6 {
		return "Password must be at least 6 characters"
	}
	return ""
}

// toUserResponse converts a user model to its API representation.
func toUserResponse(user *models.User) dto.UserResponse {
	resp := dto.UserResponse{
		ID:         user.ID.String(),
		Name:       user.Name,
		Email:      user.Email,
		Birthdate:  utils.FormatDate(user.Birthdate),
		ZodiacSign: user.ZodiacSign,
		CreatedAt:  utils.FormatTimestamp(user.CreatedAt),
		UpdatedAt:  utils.FormatTimestamp(user.UpdatedAt),
	}
	if user.LastLogin != nil {
		s := utils.FormatTimestamp(*user.LastLogin)
		resp.LastLogin = &s
	}
	return resp
}
