package repository

import (
	"context"

	"github.com/Balraaj27/lawcrusade/internal/model"
)

func (s *Store) GetPageContent(ctx context.Context, page string) (model.PageContent, error) {
	var pc model.PageContent
	err := s.db.QueryRow(ctx, `
		SELECT id, page, title, content, updated_at
		FROM page_content
		WHERE page = $1
	`, page).Scan(
		&pc.ID,
		&pc.Page,
		&pc.Title,
		&pc.Content,
		&pc.UpdatedAt,
	)
	return pc, err
}

// UpsertPageContent creates or replaces the static text for a page and bumps
// updated_at.
func (s *Store) UpsertPageContent(ctx context.Context, pc model.PageContent) (model.PageContent, error) {
	var saved model.PageContent
	err := s.db.QueryRow(ctx, `
		INSERT INTO page_content (id, page, title, content)
		VALUES ($1, $2, $3, $4)
		ON CONFLICT (page) DO UPDATE
		SET title = EXCLUDED.title, content = EXCLUDED.content, updated_at = CURRENT_TIMESTAMP
		RETURNING id, page, title, content, updated_at
	`, pc.ID, pc.Page, pc.Title, pc.Content).Scan(
		&saved.ID,
		&saved.Page,
		&saved.Title,
		&saved.Content,
		&saved.UpdatedAt,
	)
	return saved, err
}
