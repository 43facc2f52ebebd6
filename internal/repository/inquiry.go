package repository

import (
	"context"
	"fmt"

	"github.com/Balraaj27/lawcrusade/internal/db"
	"github.com/Balraaj27/lawcrusade/internal/model"
)

const inquiryColumns = `
	id,
	name,
	email,
	COALESCE(phone, ''),
	subject,
	message,
	COALESCE(service, ''),
	status,
	created_at,
	updated_at`

func (s *Store) CreateInquiry(ctx context.Context, inq model.Inquiry) (model.Inquiry, error) {
	query := fmt.Sprintf(`
		INSERT INTO inquiries (id, name, email, phone, subject, message, service)
		VALUES ($1, $2, $3, NULLIF($4, ''), $5, $6, NULLIF($7, ''))
		RETURNING %s
	`, inquiryColumns)
	var created model.Inquiry
	err := s.db.QueryRow(ctx, query,
		inq.ID,
		inq.Name,
		inq.Email,
		inq.Phone,
		inq.Subject,
		inq.Message,
		inq.Service,
	).Scan(
		&created.ID,
		&created.Name,
		&created.Email,
		&created.Phone,
		&created.Subject,
		&created.Message,
		&created.Service,
		&created.Status,
		&created.CreatedAt,
		&created.UpdatedAt,
	)
	return created, err
}

// ListInquiries returns one page, newest first, with an optional exact-match
// status filter and the total count for the same filter.
func (s *Store) ListInquiries(ctx context.Context, status string, pg Page) ([]model.Inquiry, int, error) {
	var where string
	var args []any
	if status != "" {
		where = "WHERE status = $1"
		args = append(args, status)
	}

	listQuery := fmt.Sprintf(`
		SELECT %s FROM inquiries
		%s
		ORDER BY created_at DESC
		LIMIT $%d OFFSET $%d
	`, inquiryColumns, where, len(args)+1, len(args)+2)
	listArgs := append(append([]any{}, args...), pg.Limit, pg.Offset())

	rows, err := s.db.Query(ctx, listQuery, listArgs...)
	if err != nil {
		return nil, 0, err
	}
	defer rows.Close()

	inquiries := make([]model.Inquiry, 0, pg.Limit)
	for rows.Next() {
		var inq model.Inquiry
		if err := rows.Scan(
			&inq.ID,
			&inq.Name,
			&inq.Email,
			&inq.Phone,
			&inq.Subject,
			&inq.Message,
			&inq.Service,
			&inq.Status,
			&inq.CreatedAt,
			&inq.UpdatedAt,
		); err != nil {
			return nil, 0, err
		}
		inquiries = append(inquiries, inq)
	}
	if err := rows.Err(); err != nil {
		return nil, 0, err
	}

	var total int
	countQuery := fmt.Sprintf(`SELECT COUNT(*) FROM inquiries %s`, where)
	if err := s.db.QueryRow(ctx, countQuery, args...).Scan(&total); err != nil {
		return nil, 0, err
	}

	return inquiries, total, nil
}

func (s *Store) UpdateInquiryStatus(ctx context.Context, id, status string) (model.Inquiry, error) {
	query := fmt.Sprintf(`
		UPDATE inquiries
		SET status = $1, updated_at = CURRENT_TIMESTAMP
		WHERE id = $2
		RETURNING %s
	`, inquiryColumns)
	var updated model.Inquiry
	err := s.db.QueryRow(ctx, query, status, id).Scan(
		&updated.ID,
		&updated.Name,
		&updated.Email,
		&updated.Phone,
		&updated.Subject,
		&updated.Message,
		&updated.Service,
		&updated.Status,
		&updated.CreatedAt,
		&updated.UpdatedAt,
	)
	return updated, err
}

func (s *Store) DeleteInquiry(ctx context.Context, id string) error {
	tag, err := s.db.Exec(ctx, `DELETE FROM inquiries WHERE id = $1`, id)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return db.ErrNotFound
	}
	return nil
}
