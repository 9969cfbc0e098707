// Package handler exposes the HTTP handlers behind every route: the public
// browse/detail/comment pages, the admin login and the admin CRUD panel.
// Handlers depend on small store interfaces rather than concrete
// repositories so tests can substitute fakes.
package handler

import (
	"context"

	"github.com/orlcoffee/coffee-shop-finder/internal/model"
	"github.com/orlcoffee/coffee-shop-finder/internal/repository"
)

// ShopStore is the slice of the storage gateway the shop handlers need.
type ShopStore interface {
	ListAll(ctx context.Context) ([]model.Shop, error)
	ListFiltered(ctx context.Context, f model.ShopFilter) ([]model.Shop, error)
	GetBySlug(ctx context.Context, slug string) (*model.ShopDetail, error)
	GetByID(ctx context.Context, id uint64) (*model.Shop, error)
	Create(ctx context.Context, s *model.Shop) error
	Update(ctx context.Context, s *model.Shop, withImage bool) error
	Delete(ctx context.Context, id uint64) error
}

// CommentStore persists visitor comments.
type CommentStore interface {
	Create(ctx context.Context, shopID uint64, name, body string) (uint64, error)
}

// AdminStore authenticates admins and creates the bootstrap admin.
type AdminStore interface {
	Authenticate(ctx context.Context, email, password string) (*model.Admin, error)
	Create(ctx context.Context, email, password string, cost int) (uint64, error)
}

var (
	_ ShopStore    = (*repository.ShopRepo)(nil)
	_ CommentStore = (*repository.CommentRepo)(nil)
	_ AdminStore   = (*repository.AdminRepo)(nil)
)
