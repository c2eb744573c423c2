package ticketRepository

const (
	queryCreateTicket = `
		INSERT INTO tickets (id, user_id, subject, category, priority, status, created_at, updated_at)
		VALUES (:id, :user_id, :subject, :category, :priority, :status, :created_at, :updated_at)
	`

	queryGetTicketByID = `
		SELECT id, user_id, subject, category, priority, status, created_at, updated_at
		FROM tickets
		WHERE id = :id
	`

	queryGetTicketsByUserID = `
		SELECT id, user_id, subject, category, priority, status, created_at, updated_at
		FROM tickets
		WHERE user_id = :user_id
		ORDER BY updated_at DESC
	`

	queryGetTicketsByStatus = `
		SELECT id, user_id, subject, category, priority, status, created_at, updated_at
		FROM tickets
		WHERE status = :status
		ORDER BY updated_at DESC
		LIMIT :limit OFFSET :offset
	`

	queryUpdateTicketStatus = `
		UPDATE tickets
		SET status = :status, updated_at = :updated_at
		WHERE id = :id
	`

	queryCreateTicketMessage = `
		INSERT INTO ticket_messages (id, ticket_id, author_id, from_admin, body, created_at)
		VALUES (:id, :ticket_id, :author_id, :from_admin, :body, :created_at)
	`

	queryGetMessagesByTicketID = `
		SELECT id, ticket_id, author_id, from_admin, body, created_at
		FROM ticket_messages
		WHERE ticket_id = :ticket_id
		ORDER BY created_at ASC
	`
)
