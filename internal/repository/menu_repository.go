package repository

import (
	"context"
	"database/sql"
	"errors"

	"github.com/iliyamo/restaurant-ops/internal/model"
)

// MenuRepo encapsulates queries against the `menu_items` table.
type MenuRepo struct {
	db *sql.DB
}

func NewMenuRepo(db *sql.DB) *MenuRepo { return &MenuRepo{db: db} }

const menuColumns = "id, name, description, price, category, amount, available, image_url"

// Create inserts a menu item and populates its ID.
func (r *MenuRepo) Create(ctx context.Context, m *model.MenuItem) error {
	res, err := r.db.ExecContext(ctx,
		"INSERT INTO menu_items (name, description, price, category, amount, available, image_url) VALUES (?,?,?,?,?,?,?)",
		m.Name, m.Description, m.Price, m.Category, m.Amount, m.Available, m.ImageURL)
	if err != nil {
		return err
	}
	id, err := res.LastInsertId()
	if err != nil {
		return err
	}
	m.ID = uint64(id)
	return nil
}

// GetByID fetches a menu item, returning ErrMenuItemNotFound when absent.
func (r *MenuRepo) GetByID(ctx context.Context, id uint64) (model.MenuItem, error) {
	var m model.MenuItem
	err := r.db.QueryRowContext(ctx,
		"SELECT "+menuColumns+" FROM menu_items WHERE id=? LIMIT 1", id).
		Scan(&m.ID, &m.Name, &m.Description, &m.Price, &m.Category, &m.Amount, &m.Available, &m.ImageURL)
	if errors.Is(err, sql.ErrNoRows) {
		return m, ErrMenuItemNotFound
	}
	return m, err
}

// List returns every menu item ordered by id.
func (r *MenuRepo) List(ctx context.Context) ([]model.MenuItem, error) {
	rows, err := r.db.QueryContext(ctx, "SELECT "+menuColumns+" FROM menu_items ORDER BY id")
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []model.MenuItem
	for rows.Next() {
		var m model.MenuItem
		if err := rows.Scan(&m.ID, &m.Name, &m.Description, &m.Price, &m.Category, &m.Amount, &m.Available, &m.ImageURL); err != nil {
			return nil, err
		}
		out = append(out, m)
	}
	return out, rows.Err()
}

// Update writes all mutable columns of a menu item.
func (r *MenuRepo) Update(ctx context.Context, m *model.MenuItem) error {
	_, err := r.db.ExecContext(ctx,
		"UPDATE menu_items SET name=?, description=?, price=?, category=?, amount=?, available=?, image_url=? WHERE id=?",
		m.Name, m.Description, m.Price, m.Category, m.Amount, m.Available, m.ImageURL, m.ID)
	return err
}

// Delete removes a menu item by id.
func (r *MenuRepo) Delete(ctx context.Context, id uint64) error {
	res, err := r.db.ExecContext(ctx, "DELETE FROM menu_items WHERE id=?", id)
	if err != nil {
		return err
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return ErrMenuItemNotFound
	}
	return nil
}
