package users

import "github.com/jefner876/codernet-backend-solo/internal/domain"

// createUserRequest represents the request to register a new user
type createUserRequest struct {
	Username string `json:"username" example:"new user"`             // Display name, required
	Email    string `json:"email" example:"1234@gmail.com"`          // Email address, required (format not validated)
	Avatar   string `json:"avatar,omitempty" example:"https://..."`  // Optional avatar URL; defaulted when absent
}

// createUserResponse represents the response after registering a user
type createUserResponse struct {
	NewUser domain.User `json:"newUser"` // The created user including its generated id
}
