package dto

// SignupRequest represents the user registration request body
type SignupRequest struct {
	Name      string `json:"name" example:"Jane Doe"`
	Email     string `json:"email" example:"jane@example.com"`
	Password  string `json:"password" example:"secret123"`
	Birthdate string `json:"birthdate" example:"1990-05-15"`
}

// LoginRequest represents the login request body
type LoginRequest struct {
	Email    string `json:"email" example:"jane@example.com"`
	Password string `json:"password" example:"secret123"`
}

// UserResponse represents user data returned by the API
type UserResponse struct {
	ID         string  `json:"id"`
	Name       string  `json:"name"`
	Email      string  `json:"email"`
	Birthdate  string  `json:"birthdate" example:"1990-05-15"`
	ZodiacSign string  `json:"zodiacSign" example:"Taurus"`
	LastLogin  *string `json:"lastLogin,omitempty"`
	CreatedAt  string  `json:"createdAt"`
	UpdatedAt  string  `json:"updatedAt"`
}

// AuthResponse represents a successful signup or login response
type AuthResponse struct {
	Message string       `json:"message"`
	User    UserResponse `json:"user"`
	Token   string       `json:"token"`
}

// ProfileResponse wraps the authenticated user's profile
type ProfileResponse struct {
	User UserResponse `json:"user"`
}
