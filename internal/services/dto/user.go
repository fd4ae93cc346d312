package dto

// RegisterRequest - new account creation
type RegisterRequest struct {
	Name     string `json:"name" binding:"required"`
	Login    string `json:"login" binding:"required"`
	Password string `json:"password" binding:"required,min=6"`
}

// LoginRequest - authentication by login
type LoginRequest struct {
	Login    string `json:"login" binding:"required"`
	Password string `json:"password" binding:"required"`
}

// UserResponse is the public view of a user; the credential never
// leaves the service layer.
type UserResponse struct {
	ID    uint   `json:"id"`
	Name  string `json:"name"`
	Login string `json:"login"`
}
