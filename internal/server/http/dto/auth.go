package dto

import "github.com/KonijarlaHemanthkumar/quickbite-campus/internal/domain/model"

// LoginRequest describes the login payload. The password travels with the
// request but is never verified.
type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// UserResponse is the JSON shape of a user.
type UserResponse struct {
	ID    int64  `json:"id"`
	Email string `json:"email"`
	Name  string `json:"name"`
	Role  string `json:"role"`
}

// LoginResponse carries the issued session and its user.
type LoginResponse struct {
	SessionID string       `json:"sessionId"`
	User      UserResponse `json:"user"`
}

// CurrentUserResponse wraps the authenticated user.
type CurrentUserResponse struct {
	User UserResponse `json:"user"`
}

// ErrorResponse carries the message string for failed requests.
type ErrorResponse struct {
	Error string `json:"error"`
}

// ToUserResponse converts a domain user.
func ToUserResponse(u *model.User) UserResponse {
	return UserResponse{ID: u.ID, Email: u.Email, Name: u.Name, Role: string(u.Role)}
}
