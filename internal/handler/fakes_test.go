package handler

import (
	"context"
	"sync"
	"time"

	"github.com/orlcoffee/coffee-shop-finder/internal/cache"
	"github.com/orlcoffee/coffee-shop-finder/internal/model"
	"github.com/orlcoffee/coffee-shop-finder/internal/repository"
)

// fakeShopStore is an in-memory ShopStore recording every call.
type fakeShopStore struct {
	mu       sync.Mutex
	shops    []model.Shop
	comments map[uint64][]model.Comment

	listAllCalls      int
	listFilteredCalls int
	created           []model.Shop
	updated           []model.Shop
	deleted           []uint64
}

func newFakeShopStore(shops ...model.Shop) *fakeShopStore {
	return &fakeShopStore{shops: shops, comments: map[uint64][]model.Comment{}}
}

func (f *fakeShopStore) ListAll(context.Context) ([]model.Shop, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.listAllCalls++
	return append([]model.Shop(nil), f.shops...), nil
}

func (f *fakeShopStore) ListFiltered(_ context.Context, filter model.ShopFilter) ([]model.Shop, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.listFilteredCalls++
	var out []model.Shop
	for _, s := range f.shops {
		if filter.Rating != 0 && s.Rating != filter.Rating {
			continue
		}
		if filter.FoodAvailable != nil && s.FoodAvailable != *filter.FoodAvailable {
			continue
		}
		out = append(out, s)
	}
	return out, nil
}

func (f *fakeShopStore) GetBySlug(_ context.Context, slug string) (*model.ShopDetail, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	for _, s := range f.shops {
		if s.Slug == slug {
			return &model.ShopDetail{Shop: s, Comments: f.comments[s.ID]}, nil
		}
	}
	return nil, repository.ErrShopNotFound
}

func (f *fakeShopStore) GetByID(_ context.Context, id uint64) (*model.Shop, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	for _, s := range f.shops {
		if s.ID == id {
			cp := s
			return &cp, nil
		}
	}
	return nil, repository.ErrShopNotFound
}

func (f *fakeShopStore) Create(_ context.Context, s *model.Shop) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	s.ID = uint64(len(f.shops) + 1)
	f.shops = append(f.shops, *s)
	f.created = append(f.created, *s)
	return nil
}

func (f *fakeShopStore) Update(_ context.Context, s *model.Shop, _ bool) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	for i := range f.shops {
		if f.shops[i].ID == s.ID {
			f.shops[i] = *s
			f.updated = append(f.updated, *s)
			return nil
		}
	}
	return repository.ErrShopNotFound
}

func (f *fakeShopStore) Delete(_ context.Context, id uint64) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	for i := range f.shops {
		if f.shops[i].ID == id {
			f.shops = append(f.shops[:i], f.shops[i+1:]...)
			f.deleted = append(f.deleted, id)
			return nil
		}
	}
	return repository.ErrShopNotFound
}

// fakeCommentStore records created comments.
type fakeCommentStore struct {
	mu      sync.Mutex
	nextID  uint64
	created []model.Comment
}

func (f *fakeCommentStore) Create(_ context.Context, shopID uint64, name, body string) (uint64, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.nextID++
	f.created = append(f.created, model.Comment{ID: f.nextID, ShopID: shopID, Name: name, Body: body})
	return f.nextID, nil
}

// fakeAdminStore authenticates one known admin.
type fakeAdminStore struct {
	admin    model.Admin
	password string
	created  []string
}

func (f *fakeAdminStore) Authenticate(_ context.Context, email, password string) (*model.Admin, error) {
	if email != f.admin.Email || password != f.password {
		return nil, repository.ErrInvalidCredentials
	}
	cp := f.admin
	return &cp, nil
}

func (f *fakeAdminStore) Create(_ context.Context, email, _ string, _ int) (uint64, error) {
	f.created = append(f.created, email)
	return uint64(len(f.created)), nil
}

// recordingStore wraps a memory store and records invalidations.
type recordingStore struct {
	*cache.MemoryStore
	mu          sync.Mutex
	invalidated []string
	clears      int
}

func newRecordingStore() *recordingStore {
	return &recordingStore{MemoryStore: cache.NewMemoryStore(time.Minute)}
}

func (r *recordingStore) Invalidate(ctx context.Context, key string) {
	r.mu.Lock()
	r.invalidated = append(r.invalidated, key)
	r.mu.Unlock()
	r.MemoryStore.Invalidate(ctx, key)
}

func (r *recordingStore) InvalidateAll(ctx context.Context) {
	r.mu.Lock()
	r.clears++
	r.mu.Unlock()
	r.MemoryStore.InvalidateAll(ctx)
}
