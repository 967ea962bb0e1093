package repository

import (
	"context"
	"database/sql"
	"errors"
	"strings"

	"github.com/iliyamo/restaurant-ops/internal/model"
)

// TableRepo encapsulates queries against the `tables` table. Table codes
// are unique; guests place orders against a code rather than a numeric id.
type TableRepo struct {
	db *sql.DB
}

func NewTableRepo(db *sql.DB) *TableRepo { return &TableRepo{db: db} }

func (r *TableRepo) Create(ctx context.Context, t *model.Table) error {
	res, err := r.db.ExecContext(ctx,
		"INSERT INTO tables (code, seats, location, active) VALUES (?,?,?,?)",
		strings.TrimSpace(t.Code), t.Seats, t.Location, t.Active)
	if err != nil {
		if isDuplicateKey(err) {
			return ErrDuplicate
		}
		return err
	}
	id, err := res.LastInsertId()
	if err != nil {
		return err
	}
	t.ID = uint64(id)
	return nil
}

func (r *TableRepo) GetByID(ctx context.Context, id uint64) (model.Table, error) {
	var t model.Table
	err := r.db.QueryRowContext(ctx,
		"SELECT id, code, seats, location, active FROM tables WHERE id=? LIMIT 1", id).
		Scan(&t.ID, &t.Code, &t.Seats, &t.Location, &t.Active)
	if errors.Is(err, sql.ErrNoRows) {
		return t, ErrTableNotFound
	}
	return t, err
}

// GetByCode resolves a table from its printed code.
func (r *TableRepo) GetByCode(ctx context.Context, code string) (model.Table, error) {
	var t model.Table
	err := r.db.QueryRowContext(ctx,
		"SELECT id, code, seats, location, active FROM tables WHERE code=? LIMIT 1",
		strings.TrimSpace(code)).
		Scan(&t.ID, &t.Code, &t.Seats, &t.Location, &t.Active)
	if errors.Is(err, sql.ErrNoRows) {
		return t, ErrTableNotFound
	}
	return t, err
}

func (r *TableRepo) List(ctx context.Context) ([]model.Table, error) {
	rows, err := r.db.QueryContext(ctx, "SELECT id, code, seats, location, active FROM tables ORDER BY id")
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []model.Table
	for rows.Next() {
		var t model.Table
		if err := rows.Scan(&t.ID, &t.Code, &t.Seats, &t.Location, &t.Active); err != nil {
			return nil, err
		}
		out = append(out, t)
	}
	return out, rows.Err()
}

func (r *TableRepo) Update(ctx context.Context, t *model.Table) error {
	_, err := r.db.ExecContext(ctx,
		"UPDATE tables SET code=?, seats=?, location=?, active=? WHERE id=?",
		strings.TrimSpace(t.Code), t.Seats, t.Location, t.Active, t.ID)
	if isDuplicateKey(err) {
		return ErrDuplicate
	}
	return err
}

func (r *TableRepo) Delete(ctx context.Context, id uint64) error {
	res, err := r.db.ExecContext(ctx, "DELETE FROM tables WHERE id=?", id)
	if err != nil {
		return err
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return ErrTableNotFound
	}
	return nil
}
