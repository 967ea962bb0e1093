package repository

import (
	"context"
	"database/sql"
	"errors"

	"github.com/iliyamo/restaurant-ops/internal/model"
)

// SubCategoryRepo encapsulates queries against the `subcategories` table.
// Sub-category names are unique, so creates and renames can fail with
// ErrDuplicate.
type SubCategoryRepo struct {
	db *sql.DB
}

func NewSubCategoryRepo(db *sql.DB) *SubCategoryRepo { return &SubCategoryRepo{db: db} }

func (r *SubCategoryRepo) Create(ctx context.Context, s *model.SubCategory) error {
	res, err := r.db.ExecContext(ctx,
		"INSERT INTO subcategories (name, description, img) VALUES (?,?,?)",
		s.Name, s.Description, s.Img)
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
	s.ID = uint64(id)
	return nil
}

func (r *SubCategoryRepo) GetByID(ctx context.Context, id uint64) (model.SubCategory, error) {
	var s model.SubCategory
	err := r.db.QueryRowContext(ctx,
		"SELECT id, name, description, img FROM subcategories WHERE id=? LIMIT 1", id).
		Scan(&s.ID, &s.Name, &s.Description, &s.Img)
	if errors.Is(err, sql.ErrNoRows) {
		return s, ErrSubCategoryNotFound
	}
	return s, err
}

func (r *SubCategoryRepo) List(ctx context.Context) ([]model.SubCategory, error) {
	rows, err := r.db.QueryContext(ctx, "SELECT id, name, description, img FROM subcategories ORDER BY id")
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []model.SubCategory
	for rows.Next() {
		var s model.SubCategory
		if err := rows.Scan(&s.ID, &s.Name, &s.Description, &s.Img); err != nil {
			return nil, err
		}
		out = append(out, s)
	}
	return out, rows.Err()
}

func (r *SubCategoryRepo) Update(ctx context.Context, s *model.SubCategory) error {
	_, err := r.db.ExecContext(ctx,
		"UPDATE subcategories SET name=?, description=?, img=? WHERE id=?",
		s.Name, s.Description, s.Img, s.ID)
	if isDuplicateKey(err) {
		return ErrDuplicate
	}
	return err
}

func (r *SubCategoryRepo) Delete(ctx context.Context, id uint64) error {
	res, err := r.db.ExecContext(ctx, "DELETE FROM subcategories WHERE id=?", id)
	if err != nil {
		return err
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return ErrSubCategoryNotFound
	}
	return nil
}
