package entity

import "time"

type TicketStatus string

const (
	TicketOpen     TicketStatus = "open"
	TicketAnswered TicketStatus = "answered"
	TicketClosed   TicketStatus = "closed"
)

type Ticket struct {
	ID        string    `db:"id"`
	UserID    string    `db:"user_id"`
	Subject   string    `db:"subject"`
	Category  string    `db:"category"`
	Priority  string    `db:"priority"`
	Status    string    `db:"status"`
	CreatedAt time.Time `db:"created_at"`
	UpdatedAt time.Time `db:"updated_at"`
}

type TicketMessage struct {
	ID        string    `db:"id"`
	TicketID  string    `db:"ticket_id"`
	AuthorID  string    `db:"author_id"`
	FromAdmin bool      `db:"from_admin"`
	Body      string    `db:"body"`
	CreatedAt time.Time `db:"created_at"`
}
