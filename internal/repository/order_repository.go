package repository

import (
	"context"
	"database/sql"
	"errors"

	"github.com/iliyamo/restaurant-ops/internal/model"
)

// OrderRepo encapsulates queries against the `orders` and `order_items`
// tables. Order creation is transactional: the order row, its items and the
// total derived from current menu prices commit together or not at all.
type OrderRepo struct {
	db *sql.DB
}

func NewOrderRepo(db *sql.DB) *OrderRepo { return &OrderRepo{db: db} }

// CreateWithItems inserts the order and its items in one transaction. The
// caller provides items with MenuItemID/Quantity/Notes set; prices are read
// inside the transaction so the stored total matches the menu at commit
// time. Items referencing unknown menu ids fail the whole order with
// ErrMenuItemNotFound.
func (r *OrderRepo) CreateWithItems(ctx context.Context, o *model.Order, items []model.OrderItem) error {
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

	var total float64
	for _, it := range items {
		var price float64
		if err = tx.QueryRowContext(ctx,
			"SELECT price FROM menu_items WHERE id=?", it.MenuItemID).Scan(&price); err != nil {
			if errors.Is(err, sql.ErrNoRows) {
				err = ErrMenuItemNotFound
			}
			return err
		}
		total += price * float64(it.Quantity)
	}

	var res sql.Result
	res, err = tx.ExecContext(ctx,
		"INSERT INTO orders (table_id, user_id, status, total) VALUES (?,?,?,?)",
		o.TableID, o.UserID, o.Status, total)
	if err != nil {
		return err
	}
	var id int64
	id, err = res.LastInsertId()
	if err != nil {
		return err
	}
	o.ID = uint64(id)
	o.Total = total

	for _, it := range items {
		if _, err = tx.ExecContext(ctx,
			"INSERT INTO order_items (order_id, menu_item_id, quantity, notes) VALUES (?,?,?,?)",
			o.ID, it.MenuItemID, it.Quantity, it.Notes); err != nil {
			return err
		}
	}

	// Read back the server-side creation timestamp.
	err = tx.QueryRowContext(ctx, "SELECT created_at FROM orders WHERE id=?", o.ID).Scan(&o.CreatedAt)
	return err
}

const orderColumns = "id, table_id, user_id, status, total, created_at"

// GetByID fetches one order.
func (r *OrderRepo) GetByID(ctx context.Context, id uint64) (model.Order, error) {
	var o model.Order
	err := r.db.QueryRowContext(ctx,
		"SELECT "+orderColumns+" FROM orders WHERE id=? LIMIT 1", id).
		Scan(&o.ID, &o.TableID, &o.UserID, &o.Status, &o.Total, &o.CreatedAt)
	if errors.Is(err, sql.ErrNoRows) {
		return o, ErrOrderNotFound
	}
	return o, err
}

// List returns all orders, newest first.
func (r *OrderRepo) List(ctx context.Context) ([]model.Order, error) {
	rows, err := r.db.QueryContext(ctx, "SELECT "+orderColumns+" FROM orders ORDER BY id DESC")
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []model.Order
	for rows.Next() {
		var o model.Order
		if err := rows.Scan(&o.ID, &o.TableID, &o.UserID, &o.Status, &o.Total, &o.CreatedAt); err != nil {
			return nil, err
		}
		out = append(out, o)
	}
	return out, rows.Err()
}

// ListItems returns the items of one order.
func (r *OrderRepo) ListItems(ctx context.Context, orderID uint64) ([]model.OrderItem, error) {
	rows, err := r.db.QueryContext(ctx,
		"SELECT id, order_id, menu_item_id, quantity, notes FROM order_items WHERE order_id=? ORDER BY id", orderID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []model.OrderItem
	for rows.Next() {
		var it model.OrderItem
		if err := rows.Scan(&it.ID, &it.OrderID, &it.MenuItemID, &it.Quantity, &it.Notes); err != nil {
			return nil, err
		}
		out = append(out, it)
	}
	return out, rows.Err()
}

// UpdateStatus sets the status of an order.
func (r *OrderRepo) UpdateStatus(ctx context.Context, id uint64, status string) error {
	res, err := r.db.ExecContext(ctx, "UPDATE orders SET status=? WHERE id=?", status, id)
	if err != nil {
		return err
	}
	if n, _ := res.RowsAffected(); n == 0 {
		if _, err := r.GetByID(ctx, id); err != nil {
			return err
		}
	}
	return nil
}
