package dto

import "time"

// RegisterRequest entrada para crear una cuenta.
type RegisterRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
	Name     string `json:"name"`
}

// LoginRequest credenciales de acceso.
type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// LoginResponse token de sesión más el perfil del usuario.
type LoginResponse struct {
	Token string       `json:"token"`
	User  UserResponse `json:"user"`
}

// UpdateProfileRequest campos editables del perfil. ReducedTax es el flag del
// régimen reducido de cotización (ACRE) que selecciona la tasa de impuesto.
type UpdateProfileRequest struct {
	Name       *string `json:"name"`
	ReducedTax *bool   `json:"reduced_tax"`
}

// UserResponse perfil público del usuario (sin hash de contraseña).
type UserResponse struct {
	ID         string    `json:"id"`
	Email      string    `json:"email"`
	Name       string    `json:"name"`
	ReducedTax bool      `json:"reduced_tax"`
	CreatedAt  time.Time `json:"created_at"`
	UpdatedAt  time.Time `json:"updated_at"`
}
