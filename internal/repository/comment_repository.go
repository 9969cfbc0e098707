package repository

import (
	"context"
	"database/sql"
)

// CommentRepo persists visitor comments. Comments are append-only: there is
// no update or single-delete path, and a shop's comments disappear only when
// the shop itself is deleted.
type CommentRepo struct {
	db *sql.DB
}

// NewCommentRepo constructs a CommentRepo with the provided DB handle.
func NewCommentRepo(db *sql.DB) *CommentRepo {
	return &CommentRepo{db: db}
}

// Create inserts a comment for an existing shop and returns its ID.
func (r *CommentRepo) Create(ctx context.Context, shopID uint64, name, body string) (uint64, error) {
	const q = "INSERT INTO comments (shop_id, name, body) VALUES (?, ?, ?)"
	res, err := r.db.ExecContext(ctx, q, shopID, name, body)
	if err != nil {
		return 0, err
	}
	id, err := res.LastInsertId()
	if err != nil {
		return 0, err
	}
	return uint64(id), nil
}
