// This file contains the shop repository: CRUD and lookup operations for
// coffee shop listings. All queries bind user input as parameters; the slug
// lookup in particular is parameter-bound even though slugs come straight
// from the request path.
package repository

import (
	"context"
	"database/sql"
	"errors"
	"strings"

	"github.com/orlcoffee/coffee-shop-finder/internal/model"
)

// shopColumns is the canonical select list for shop rows.
const shopColumns = "id, name, location, rating, hours_open, drink_types, food_available, slug, image"

// ShopRepo encapsulates all database queries related to shops and their
// comments. It depends on a sql.DB connection pool configured at startup.
type ShopRepo struct {
	db *sql.DB
}

// NewShopRepo constructs a ShopRepo with the provided DB handle. The
// constructor exists so the database can be injected in tests and at
// startup; there is no further initialization.
func NewShopRepo(db *sql.DB) *ShopRepo {
	return &ShopRepo{db: db}
}

func scanShop(row interface{ Scan(...any) error }, s *model.Shop) error {
	var image sql.NullString
	err := row.Scan(&s.ID, &s.Name, &s.Location, &s.Rating, &s.HoursOpen,
		&s.DrinkTypes, &s.FoodAvailable, &s.Slug, &image)
	if err != nil {
		return err
	}
	s.Image = image.String
	return nil
}

// ListAll returns every shop ordered by id.
func (r *ShopRepo) ListAll(ctx context.Context) ([]model.Shop, error) {
	const q = "SELECT " + shopColumns + " FROM shops ORDER BY id"
	rows, err := r.db.QueryContext(ctx, q)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []model.Shop
	for rows.Next() {
		var s model.Shop
		if err := scanShop(rows, &s); err != nil {
			return nil, err
		}
		out = append(out, s)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return out, nil
}

// filterClause builds the conjunctive WHERE condition for a filter set with
// bound arguments. An empty filter yields the neutral "1=1" condition, so
// ListFiltered with no constraints is equivalent to ListAll.
func filterClause(f model.ShopFilter) (string, []any) {
	where := []string{}
	args := []any{}

	if f.Rating != 0 {
		where = append(where, "rating = ?")
		args = append(args, f.Rating)
	}
	if f.DrinkType != "" {
		where = append(where, "drink_types LIKE ?")
		args = append(args, "%"+f.DrinkType+"%")
	}
	if f.FoodAvailable != nil {
		where = append(where, "food_available = ?")
		args = append(args, *f.FoodAvailable)
	}

	if len(where) == 0 {
		return "1=1", args
	}
	return strings.Join(where, " AND "), args
}

// ListFiltered returns the shops matching every set constraint of f,
// ordered by id.
func (r *ShopRepo) ListFiltered(ctx context.Context, f model.ShopFilter) ([]model.Shop, error) {
	cond, args := filterClause(f)
	q := "SELECT " + shopColumns + " FROM shops WHERE " + cond + " ORDER BY id"

	rows, err := r.db.QueryContext(ctx, q, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []model.Shop
	for rows.Next() {
		var s model.Shop
		if err := scanShop(rows, &s); err != nil {
			return nil, err
		}
		out = append(out, s)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return out, nil
}

// GetBySlug fetches a shop by slug together with its comments in database
// order. The comments come from a second query and are joined here in
// application code, so comment bodies can contain any characters. Returns
// ErrShopNotFound when no shop has the slug.
func (r *ShopRepo) GetBySlug(ctx context.Context, slug string) (*model.ShopDetail, error) {
	const q = "SELECT " + shopColumns + " FROM shops WHERE slug = ? LIMIT 1"
	var d model.ShopDetail
	if err := scanShop(r.db.QueryRowContext(ctx, q, slug), &d.Shop); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrShopNotFound
		}
		return nil, err
	}

	const qc = "SELECT id, shop_id, name, body FROM comments WHERE shop_id = ? ORDER BY id"
	rows, err := r.db.QueryContext(ctx, qc, d.ID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	for rows.Next() {
		var c model.Comment
		if err := rows.Scan(&c.ID, &c.ShopID, &c.Name, &c.Body); err != nil {
			return nil, err
		}
		d.Comments = append(d.Comments, c)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return &d, nil
}

// GetByID fetches a shop by id. Returns ErrShopNotFound when no row matches.
func (r *ShopRepo) GetByID(ctx context.Context, id uint64) (*model.Shop, error) {
	const q = "SELECT " + shopColumns + " FROM shops WHERE id = ? LIMIT 1"
	var s model.Shop
	if err := scanShop(r.db.QueryRowContext(ctx, q, id), &s); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrShopNotFound
		}
		return nil, err
	}
	return &s, nil
}

// Create inserts a new shop. On success the shop's ID field is populated
// with the auto-generated value.
func (r *ShopRepo) Create(ctx context.Context, s *model.Shop) error {
	const q = `INSERT INTO shops (name, location, rating, hours_open, drink_types, food_available, slug, image)
	           VALUES (?, ?, ?, ?, ?, ?, ?, ?)`
	res, err := r.db.ExecContext(ctx, q,
		s.Name, s.Location, s.Rating, s.HoursOpen, s.DrinkTypes, s.FoodAvailable, s.Slug, nullIfEmpty(s.Image))
	if err != nil {
		return err
	}
	id, err := res.LastInsertId()
	if err != nil {
		return err
	}
	s.ID = uint64(id)
	return nil
}

// Update rewrites a shop row, including its recomputed slug. The image
// column is only written when withImage is true, so an update without a new
// upload leaves the existing image untouched. Returns ErrShopNotFound when
// the id matches no row.
func (r *ShopRepo) Update(ctx context.Context, s *model.Shop, withImage bool) error {
	q := "UPDATE shops SET name = ?, location = ?, rating = ?, hours_open = ?, drink_types = ?, food_available = ?, slug = ?"
	args := []any{s.Name, s.Location, s.Rating, s.HoursOpen, s.DrinkTypes, s.FoodAvailable, s.Slug}
	if withImage {
		q += ", image = ?"
		args = append(args, nullIfEmpty(s.Image))
	}
	q += " WHERE id = ?"
	args = append(args, s.ID)

	res, err := r.db.ExecContext(ctx, q, args...)
	if err != nil {
		return err
	}
	if n, _ := res.RowsAffected(); n == 0 {
		// Either the id does not exist or nothing changed; re-check so a
		// no-op update of an existing shop is not reported as missing.
		if _, err := r.GetByID(ctx, s.ID); err != nil {
			return err
		}
	}
	return nil
}

// Delete removes a shop and its comments inside one transaction, so no
// orphaned comments are left behind.
func (r *ShopRepo) Delete(ctx context.Context, id uint64) error {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	defer func() {
		if err != nil {
			_ = tx.Rollback()
		} else {
			_ = tx.Commit()
		}
	}()

	if _, err = tx.ExecContext(ctx, "DELETE FROM comments WHERE shop_id = ?", id); err != nil {
		return err
	}
	var res sql.Result
	if res, err = tx.ExecContext(ctx, "DELETE FROM shops WHERE id = ?", id); err != nil {
		return err
	}
	if n, _ := res.RowsAffected(); n == 0 {
		err = ErrShopNotFound
		return err
	}
	return nil
}

func nullIfEmpty(s string) sql.NullString {
	return sql.NullString{String: s, Valid: s != ""}
}
