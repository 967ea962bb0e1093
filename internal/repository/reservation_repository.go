package repository

import (
	"context"
	"database/sql"
	"errors"

	"github.com/iliyamo/restaurant-ops/internal/model"
)

// ReservationRepo encapsulates queries against the `reservations` table.
type ReservationRepo struct {
	db *sql.DB
}

func NewReservationRepo(db *sql.DB) *ReservationRepo { return &ReservationRepo{db: db} }

func (r *ReservationRepo) Create(ctx context.Context, res *model.Reservation) error {
	out, err := r.db.ExecContext(ctx,
		"INSERT INTO reservations (table_id, start_at, end_at, status) VALUES (?,?,?,?)",
		res.TableID, res.StartAt, res.EndAt, res.Status)
	if err != nil {
		return err
	}
	id, err := out.LastInsertId()
	if err != nil {
		return err
	}
	res.ID = uint64(id)
	return nil
}

func (r *ReservationRepo) GetByID(ctx context.Context, id uint64) (model.Reservation, error) {
	var res model.Reservation
	err := r.db.QueryRowContext(ctx,
		"SELECT id, table_id, start_at, end_at, status FROM reservations WHERE id=? LIMIT 1", id).
		Scan(&res.ID, &res.TableID, &res.StartAt, &res.EndAt, &res.Status)
	if errors.Is(err, sql.ErrNoRows) {
		return res, ErrReservationNotFound
	}
	return res, err
}

func (r *ReservationRepo) List(ctx context.Context) ([]model.Reservation, error) {
	rows, err := r.db.QueryContext(ctx,
		"SELECT id, table_id, start_at, end_at, status FROM reservations ORDER BY id")
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []model.Reservation
	for rows.Next() {
		var res model.Reservation
		if err := rows.Scan(&res.ID, &res.TableID, &res.StartAt, &res.EndAt, &res.Status); err != nil {
			return nil, err
		}
		out = append(out, res)
	}
	return out, rows.Err()
}

func (r *ReservationRepo) Update(ctx context.Context, res *model.Reservation) error {
	_, err := r.db.ExecContext(ctx,
		"UPDATE reservations SET table_id=?, start_at=?, end_at=?, status=? WHERE id=?",
		res.TableID, res.StartAt, res.EndAt, res.Status, res.ID)
	return err
}

func (r *ReservationRepo) Delete(ctx context.Context, id uint64) error {
	out, err := r.db.ExecContext(ctx, "DELETE FROM reservations WHERE id=?", id)
	if err != nil {
		return err
	}
	if n, _ := out.RowsAffected(); n == 0 {
		return ErrReservationNotFound
	}
	return nil
}
