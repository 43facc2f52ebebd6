package db

import "context"

// schemaStatements provision every table and index the service needs. Each
// statement is idempotent; there is no migration system beyond this.
var schemaStatements = []string{
	`CREATE TABLE IF NOT EXISTS admins (
		id TEXT PRIMARY KEY,
		email VARCHAR(255) UNIQUE NOT NULL,
		password TEXT NOT NULL,
		name VARCHAR(255) NOT NULL,
		created_at TIMESTAMPTZ NOT NULL DEFAULT CURRENT_TIMESTAMP
	)`,
	`CREATE TABLE IF NOT EXISTS blog_posts (
		id TEXT PRIMARY KEY,
		title VARCHAR(500) NOT NULL,
		slug VARCHAR(500) UNIQUE NOT NULL,
		excerpt TEXT,
		content TEXT NOT NULL,
		category VARCHAR(100) NOT NULL,
		tags TEXT[],
		published BOOLEAN NOT NULL DEFAULT FALSE,
		featured BOOLEAN NOT NULL DEFAULT FALSE,
		image_url TEXT,
		created_at TIMESTAMPTZ NOT NULL DEFAULT CURRENT_TIMESTAMP,
		updated_at TIMESTAMPTZ NOT NULL DEFAULT CURRENT_TIMESTAMP
	)`,
	`CREATE TABLE IF NOT EXISTS inquiries (
		id TEXT PRIMARY KEY,
		name VARCHAR(255) NOT NULL,
		email VARCHAR(255) NOT NULL,
		phone VARCHAR(50),
		subject VARCHAR(500) NOT NULL,
		message TEXT NOT NULL,
		service VARCHAR(100),
		status VARCHAR(50) NOT NULL DEFAULT 'pending',
		created_at TIMESTAMPTZ NOT NULL DEFAULT CURRENT_TIMESTAMP,
		updated_at TIMESTAMPTZ NOT NULL DEFAULT CURRENT_TIMESTAMP
	)`,
	`CREATE TABLE IF NOT EXISTS page_content (
		id TEXT PRIMARY KEY,
		page VARCHAR(255) UNIQUE NOT NULL,
		title VARCHAR(500) NOT NULL,
		content TEXT NOT NULL,
		updated_at TIMESTAMPTZ NOT NULL DEFAULT CURRENT_TIMESTAMP
	)`,
	`CREATE INDEX IF NOT EXISTS idx_blog_posts_published ON blog_posts(published)`,
	`CREATE INDEX IF NOT EXISTS idx_blog_posts_category ON blog_posts(category)`,
	`CREATE INDEX IF NOT EXISTS idx_blog_posts_slug ON blog_posts(slug)`,
	`CREATE INDEX IF NOT EXISTS idx_inquiries_status ON inquiries(status)`,
	`CREATE INDEX IF NOT EXISTS idx_admins_email ON admins(email)`,
}

// InitSchema creates all tables and indexes if they do not exist yet.
func (d *DB) InitSchema(ctx context.Context) error {
	for _, stmt := range schemaStatements {
		if _, err := d.Exec(ctx, stmt); err != nil {
			return err
		}
	}
	return nil
}
