package ticket

import "time"

type CreateTicketRequest struct {
	Subject string `json:"subject" validate:"required,max=200"`
	Body    string `json:"body" validate:"required,max=5000"`
}

type AppendMessageRequest struct {
	Body string `json:"body" validate:"required,max=5000"`
}

type MessageResponse struct {
	ID        string    `json:"id"`
	AuthorID  string    `json:"author_id"`
	FromAdmin bool      `json:"from_admin"`
	Body      string    `json:"body"`
	CreatedAt time.Time `json:"created_at"`
}

type TicketResponse struct {
	ID        string    `json:"id"`
	Subject   string    `json:"subject"`
	Category  string    `json:"category"`
	Priority  string    `json:"priority"`
	Status    string    `json:"status"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

type TicketDetailResponse struct {
	TicketResponse
	Messages []MessageResponse `json:"messages"`
}

type TicketListResponse struct {
	Tickets []TicketResponse `json:"tickets"`
}
