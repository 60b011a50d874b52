package handler

import "github.com/prismatech/marketing-dashboard/internal/core/domain"

// errorResponse is the standard error envelope returned on all 4xx/5xx responses.
type errorResponse struct {
	Error string `json:"error"`
}

type loginRequest struct {
	Email    string `json:"email"    validate:"required"`
	Password string `json:"password" validate:"required"`
	From     string `json:"from"`
}

type signupRequest struct {
	Name     string `json:"name"     validate:"required"`
	Email    string `json:"email"    validate:"required"`
	Password string `json:"password" validate:"required"`
	From     string `json:"from"`
}

type authResponse struct {
	User     *domain.Identity `json:"user"`
	Redirect string           `json:"redirect"`
}

type sessionResponse struct {
	User            *domain.Identity `json:"user"`
	IsAuthenticated bool             `json:"is_authenticated"`
	IsLoading       bool             `json:"is_loading"`
}

type logoutResponse struct {
	Status string `json:"status"`
}
