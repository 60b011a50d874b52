package handler

import (
	"time"

	"github.com/prismatech/marketing-dashboard/internal/core/domain"
)

type link struct {
	Label string `json:"label"`
	Href  string `json:"href"`
}

type pageResponse struct {
	Title   string `json:"title"`
	Message string `json:"message,omitempty"`
	Links   []link `json:"links,omitempty"`
}

type formField struct {
	Name     string `json:"name"`
	Type     string `json:"type"`
	Required bool   `json:"required"`
}

type formResponse struct {
	Title  string      `json:"title"`
	Action string      `json:"action"`
	Fields []formField `json:"fields"`
	From   string      `json:"from,omitempty"`
	Links  []link      `json:"links"`
}

type unauthorizedResponse struct {
	Title   string `json:"title"`
	Message string `json:"message"`
	// Detail names the logged-in user and role; empty for anonymous visitors.
	Detail string `json:"detail,omitempty"`
	Links  []link `json:"links"`
}

type navResponse struct {
	Links   []link           `json:"links"`
	User    *domain.Identity `json:"user,omitempty"`
	Initial string           `json:"initial,omitempty"`
	Loading bool             `json:"is_loading"`
}

type noticeResponse struct {
	Title     string    `json:"title"`
	Message   string    `json:"message"`
	Severity  string    `json:"severity"`
	CreatedAt time.Time `json:"created_at"`
}

type notificationsResponse struct {
	Notifications []noticeResponse `json:"notifications"`
}

type settingsResponse struct {
	Title string           `json:"title"`
	User  *domain.Identity `json:"user"`
}
