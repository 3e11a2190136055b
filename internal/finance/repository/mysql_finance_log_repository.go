// Package repository implements finance ledger persistence for MySQL.
package repository

import (
	"context"
	"database/sql"

	apperrors "github.com/allisson/lifetrack/internal/errors"
	financeDomain "github.com/allisson/lifetrack/internal/finance/domain"
)

// MySQLFinanceLogRepository implements FinanceLog persistence for MySQL databases.
type MySQLFinanceLogRepository struct {
	db *sql.DB
}

// NewMySQLFinanceLogRepository creates a new MySQLFinanceLogRepository.
func NewMySQLFinanceLogRepository(db *sql.DB) *MySQLFinanceLogRepository {
	return &MySQLFinanceLogRepository{db: db}
}

// Create inserts a new finance log row and reads back its generated fields.
func (m *MySQLFinanceLogRepository) Create(
	ctx context.Context,
	log *financeDomain.FinanceLog,
) error {
	query := `INSERT INTO finance_logs (user_id, category, amount_enc, note_enc)
			  VALUES (?, ?, ?, ?)`

	result, err := m.db.ExecContext(ctx, query, log.UserID, log.Category, log.AmountEnc, log.NoteEnc)
	if err != nil {
		return apperrors.Wrap(err, "failed to create finance log")
	}

	id, err := result.LastInsertId()
	if err != nil {
		return apperrors.Wrap(err, "failed to get finance log id")
	}
	log.ID = id

	readBack := `SELECT logged_at FROM finance_logs WHERE id = ?`
	if err := m.db.QueryRowContext(ctx, readBack, id).Scan(&log.LoggedAt); err != nil {
		return apperrors.Wrap(err, "failed to read back finance log")
	}

	return nil
}

// ListByWindow retrieves the user's rows logged within the past windowDays
// days, newest first.
func (m *MySQLFinanceLogRepository) ListByWindow(
	ctx context.Context,
	userID int64,
	windowDays int,
) ([]financeDomain.FinanceLog, error) {
	query := `SELECT id, user_id, category, amount_enc, note_enc, logged_at
			  FROM finance_logs
			  WHERE user_id = ? AND logged_at >= NOW() - INTERVAL ? DAY
			  ORDER BY logged_at DESC`

	rows, err := m.db.QueryContext(ctx, query, userID, windowDays)
	if err != nil {
		return nil, apperrors.Wrap(err, "failed to list finance logs")
	}
	defer func() { _ = rows.Close() }()

	var logs []financeDomain.FinanceLog
	for rows.Next() {
		var log financeDomain.FinanceLog
		if err := rows.Scan(
			&log.ID,
			&log.UserID,
			&log.Category,
			&log.AmountEnc,
			&log.NoteEnc,
			&log.LoggedAt,
		); err != nil {
			return nil, apperrors.Wrap(err, "failed to scan finance log")
		}
		logs = append(logs, log)
	}
	if err := rows.Err(); err != nil {
		return nil, apperrors.Wrap(err, "failed to iterate finance logs")
	}

	return logs, nil
}
