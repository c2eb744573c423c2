package admin

import "time"

type UserResponse struct {
	ID             string    `json:"id"`
	Email          string    `json:"email"`
	Name           string    `json:"name"`
	Role           string    `json:"role"`
	ClinicName     string    `json:"clinic_name,omitempty"`
	Specialization string    `json:"specialization,omitempty"`
	IsVerified     bool      `json:"is_verified"`
	IsActive       bool      `json:"is_active"`
	CreatedAt      time.Time `json:"created_at"`
}

type UserListResponse struct {
	Users []UserResponse `json:"users"`
	Page  int            `json:"page"`
	Limit int            `json:"limit"`
	Total int            `json:"total"`
}

type SetUserActiveRequest struct {
	Active *bool `json:"active" validate:"required"`
}

type PlatformStatsResponse struct {
	TotalUsers          int     `json:"total_users"`
	TotalPatients       int     `json:"total_patients"`
	TotalPredictions    int     `json:"total_predictions"`
	ActiveSubscriptions int     `json:"active_subscriptions"`
	OpenTickets         int     `json:"open_tickets"`
	PaidRevenue         float64 `json:"paid_revenue"`
}

type ReplyTicketRequest struct {
	Body string `json:"body" validate:"required,max=5000"`
}
