package repository

import (
	"context"
	"fmt"
	"strings"

	"github.com/Balraaj27/lawcrusade/internal/db"
	"github.com/Balraaj27/lawcrusade/internal/model"
)

const postColumns = `
	id,
	title,
	slug,
	COALESCE(excerpt, ''),
	content,
	category,
	COALESCE(tags, '{}'::text[]),
	published,
	featured,
	COALESCE(image_url, ''),
	created_at,
	updated_at`

// PostFilter narrows blog listings. The public listing always sets
// PublishedOnly; the admin listing never does.
type PostFilter struct {
	PublishedOnly bool
	Category      string
	Search        string
}

// buildPostWhere renders the dynamic WHERE clause with positional parameters.
// Search is a case-insensitive substring match on title or content.
func buildPostWhere(f PostFilter) (string, []any) {
	var conds []string
	var args []any
	if f.PublishedOnly {
		conds = append(conds, "published = true")
	}
	if f.Category != "" {
		args = append(args, f.Category)
		conds = append(conds, fmt.Sprintf("category = $%d", len(args)))
	}
	if f.Search != "" {
		args = append(args, "%"+f.Search+"%")
		first := len(args)
		args = append(args, "%"+f.Search+"%")
		conds = append(conds, fmt.Sprintf("(title ILIKE $%d OR content ILIKE $%d)", first, len(args)))
	}
	if len(conds) == 0 {
		return "", args
	}
	return "WHERE " + strings.Join(conds, " AND "), args
}

// ListPosts returns one page of posts, newest first, plus the total row count
// for the same filter. The count query reuses the filter parameters without
// limit/offset.
func (s *Store) ListPosts(ctx context.Context, f PostFilter, pg Page) ([]model.BlogPost, int, error) {
	where, args := buildPostWhere(f)

	listQuery := fmt.Sprintf(`
		SELECT %s FROM blog_posts
		%s
		ORDER BY created_at DESC
		LIMIT $%d OFFSET $%d
	`, postColumns, where, len(args)+1, len(args)+2)
	listArgs := append(append([]any{}, args...), pg.Limit, pg.Offset())

	rows, err := s.db.Query(ctx, listQuery, listArgs...)
	if err != nil {
		return nil, 0, err
	}
	defer rows.Close()

	posts := make([]model.BlogPost, 0, pg.Limit)
	for rows.Next() {
		var post model.BlogPost
		if err := rows.Scan(
			&post.ID,
			&post.Title,
			&post.Slug,
			&post.Excerpt,
			&post.Content,
			&post.Category,
			&post.Tags,
			&post.Published,
			&post.Featured,
			&post.ImageURL,
			&post.CreatedAt,
			&post.UpdatedAt,
		); err != nil {
			return nil, 0, err
		}
		posts = append(posts, post)
	}
	if err := rows.Err(); err != nil {
		return nil, 0, err
	}

	var total int
	countQuery := fmt.Sprintf(`SELECT COUNT(*) FROM blog_posts %s`, where)
	if err := s.db.QueryRow(ctx, countQuery, args...).Scan(&total); err != nil {
		return nil, 0, err
	}

	return posts, total, nil
}

// GetPostBySlug with publishedOnly set reports not-found for drafts, so an
// unpublished slug is indistinguishable from a missing one.
func (s *Store) GetPostBySlug(ctx context.Context, slug string, publishedOnly bool) (model.BlogPost, error) {
	query := fmt.Sprintf(`SELECT %s FROM blog_posts WHERE slug = $1`, postColumns)
	if publishedOnly {
		query += ` AND published = true`
	}
	var post model.BlogPost
	err := s.db.QueryRow(ctx, query, slug).Scan(
		&post.ID,
		&post.Title,
		&post.Slug,
		&post.Excerpt,
		&post.Content,
		&post.Category,
		&post.Tags,
		&post.Published,
		&post.Featured,
		&post.ImageURL,
		&post.CreatedAt,
		&post.UpdatedAt,
	)
	return post, err
}

func (s *Store) CreatePost(ctx context.Context, post model.BlogPost) (model.BlogPost, error) {
	query := fmt.Sprintf(`
		INSERT INTO blog_posts (id, title, slug, excerpt, content, category, tags, published, featured, image_url)
		VALUES ($1, $2, $3, NULLIF($4, ''), $5, $6, $7, $8, $9, NULLIF($10, ''))
		RETURNING %s
	`, postColumns)
	var created model.BlogPost
	err := s.db.QueryRow(ctx, query,
		post.ID,
		post.Title,
		post.Slug,
		post.Excerpt,
		post.Content,
		post.Category,
		post.Tags,
		post.Published,
		post.Featured,
		post.ImageURL,
	).Scan(
		&created.ID,
		&created.Title,
		&created.Slug,
		&created.Excerpt,
		&created.Content,
		&created.Category,
		&created.Tags,
		&created.Published,
		&created.Featured,
		&created.ImageURL,
		&created.CreatedAt,
		&created.UpdatedAt,
	)
	return created, err
}

// UpdatePost is a full-row replace of the content fields and always advances
// updated_at.
func (s *Store) UpdatePost(ctx context.Context, post model.BlogPost) (model.BlogPost, error) {
	query := fmt.Sprintf(`
		UPDATE blog_posts
		SET title = $1, slug = $2, excerpt = NULLIF($3, ''), content = $4, category = $5,
		    tags = $6, published = $7, featured = $8, image_url = NULLIF($9, ''),
		    updated_at = CURRENT_TIMESTAMP
		WHERE id = $10
		RETURNING %s
	`, postColumns)
	var updated model.BlogPost
	err := s.db.QueryRow(ctx, query,
		post.Title,
		post.Slug,
		post.Excerpt,
		post.Content,
		post.Category,
		post.Tags,
		post.Published,
		post.Featured,
		post.ImageURL,
		post.ID,
	).Scan(
		&updated.ID,
		&updated.Title,
		&updated.Slug,
		&updated.Excerpt,
		&updated.Content,
		&updated.Category,
		&updated.Tags,
		&updated.Published,
		&updated.Featured,
		&updated.ImageURL,
		&updated.CreatedAt,
		&updated.UpdatedAt,
	)
	return updated, err
}

func (s *Store) DeletePost(ctx context.Context, id string) error {
	tag, err := s.db.Exec(ctx, `DELETE FROM blog_posts WHERE id = $1`, id)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return db.ErrNotFound
	}
	return nil
}

// ListCategories counts published posts per category, largest first.
func (s *Store) ListCategories(ctx context.Context) ([]model.CategoryCount, error) {
	rows, err := s.db.Query(ctx, `
		SELECT category, COUNT(*) AS count
		FROM blog_posts
		WHERE published = true
		GROUP BY category
		ORDER BY count DESC
	`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var categories []model.CategoryCount
	for rows.Next() {
		var c model.CategoryCount
		if err := rows.Scan(&c.Category, &c.Count); err != nil {
			return nil, err
		}
		categories = append(categories, c)
	}
	return categories, rows.Err()
}
