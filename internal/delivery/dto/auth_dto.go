package dto

// Request DTOs

type LoginRequest struct {
	Email    string `schema:"email" json:"email" validate:"required,email" label:"Email"`
	Password string `schema:"password" json:"password" validate:"required" label:"Lozinka"`
}

type RegisterRequest struct {
	FullName string `schema:"name" json:"name" validate:"required,min=2,max=150" label:"Ime"`
	Email    string `schema:"email" json:"email" validate:"required,email" label:"Email"`
	Password string `schema:"password" json:"password" validate:"required,min=6" label:"Lozinka"`
	IsOwner  bool   `schema:"is_owner" json:"is_owner"`
}

// Response DTOs

type UserResponse struct {
	ID       int64  `json:"id"`
	Username string `json:"username"`
	FullName string `json:"full_name"`
	Email    string `json:"email"`
	Role     string `json:"role"`
}
