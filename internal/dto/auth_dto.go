package dto

import "github.com/google/uuid"

type RegisterRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

type RegisterResponse struct {
	Id    uuid.UUID `json:"id"`
	Email string    `json:"email"`
}

// LoginRequest is deliberately unvalidated: any credential mismatch, including
// empty fields, answers 401 so nothing is learned about registered accounts.
type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}
