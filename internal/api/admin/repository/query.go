package adminRepository

const queryGetPlatformStats = `
SELECT
	(SELECT COUNT(id) FROM users)                                              AS total_users,
	(SELECT COUNT(id) FROM patients)                                           AS total_patients,
	(SELECT COUNT(id) FROM predictions)                                        AS total_predictions,
	(SELECT COUNT(id) FROM subscriptions
		WHERE period_start <= :now AND period_end > :now)                      AS active_subscriptions,
	(SELECT COUNT(id) FROM tickets WHERE status = 'open')                      AS open_tickets,
	(SELECT COALESCE(SUM(total), 0) FROM orders WHERE status = 'paid')         AS paid_revenue
`
