package repository

import (
	"context"
	"database/sql"
	"errors"
	"strings"

	"github.com/iliyamo/restaurant-ops/internal/auth"
	"github.com/iliyamo/restaurant-ops/internal/model"
)

// UserRepo encapsulates all database queries against the `users` table.
type UserRepo struct {
	db *sql.DB
}

// NewUserRepo constructs a UserRepo with the provided DB handle, allowing
// dependency injection of the database in tests and at startup.
func NewUserRepo(db *sql.DB) *UserRepo { return &UserRepo{db: db} }

// roleColumn converts a Role into the nullable value written to the role_id
// column; RoleNone is stored as NULL.
func roleColumn(r auth.Role) any {
	if r == auth.RoleNone {
		return nil
	}
	return int64(r)
}

// Create inserts a user and returns its ID. PasswordHash may be nil for
// passwordless guest accounts. Unique violations on dni or email surface as
// ErrDuplicate.
func (r *UserRepo) Create(ctx context.Context, u *model.User) (uint64, error) {
	u.Email = strings.ToLower(strings.TrimSpace(u.Email))
	res, err := r.db.ExecContext(ctx,
		"INSERT INTO users (dni, full_name, email, phone, hashed_password, role_id) VALUES (?,?,?,?,?,?)",
		u.DNI, u.FullName, u.Email, u.Phone, u.PasswordHash, roleColumn(u.RoleID))
	if err != nil {
		if isDuplicateKey(err) {
			return 0, ErrDuplicate
		}
		return 0, err
	}
	id, err := res.LastInsertId()
	if err != nil {
		return 0, err
	}
	u.ID = uint64(id)
	return u.ID, nil
}

const userColumns = "id, dni, full_name, email, phone, hashed_password, role_id"

func scanUser(row *sql.Row) (model.User, error) {
	var u model.User
	var role sql.NullInt64
	err := row.Scan(&u.ID, &u.DNI, &u.FullName, &u.Email, &u.Phone, &u.PasswordHash, &role)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return u, ErrUserNotFound
		}
		return u, err
	}
	u.RoleID = auth.NormalizeRole(role)
	return u, nil
}

// GetByID fetches a user by id.
func (r *UserRepo) GetByID(ctx context.Context, id uint64) (model.User, error) {
	return scanUser(r.db.QueryRowContext(ctx,
		"SELECT "+userColumns+" FROM users WHERE id=? LIMIT 1", id))
}

// GetByDNI fetches a user by its login key.
func (r *UserRepo) GetByDNI(ctx context.Context, dni string) (model.User, error) {
	return scanUser(r.db.QueryRowContext(ctx,
		"SELECT "+userColumns+" FROM users WHERE dni=? LIMIT 1", strings.TrimSpace(dni)))
}

// GetByEmail fetches a user by normalized email.
func (r *UserRepo) GetByEmail(ctx context.Context, email string) (model.User, error) {
	email = strings.ToLower(strings.TrimSpace(email))
	return scanUser(r.db.QueryRowContext(ctx,
		"SELECT "+userColumns+" FROM users WHERE email=? LIMIT 1", email))
}

// List returns all users ordered by id.
func (r *UserRepo) List(ctx context.Context) ([]model.User, error) {
	rows, err := r.db.QueryContext(ctx, "SELECT "+userColumns+" FROM users ORDER BY id")
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []model.User
	for rows.Next() {
		var u model.User
		var role sql.NullInt64
		if err := rows.Scan(&u.ID, &u.DNI, &u.FullName, &u.Email, &u.Phone, &u.PasswordHash, &role); err != nil {
			return nil, err
		}
		u.RoleID = auth.NormalizeRole(role)
		out = append(out, u)
	}
	return out, rows.Err()
}

// Update writes all mutable columns of the user. The handler loads the row,
// applies the fields present in the payload and passes the result here.
func (r *UserRepo) Update(ctx context.Context, u *model.User) error {
	res, err := r.db.ExecContext(ctx,
		"UPDATE users SET full_name=?, email=?, phone=?, hashed_password=?, role_id=? WHERE id=?",
		u.FullName, strings.ToLower(strings.TrimSpace(u.Email)), u.Phone, u.PasswordHash, roleColumn(u.RoleID), u.ID)
	if err != nil {
		if isDuplicateKey(err) {
			return ErrDuplicate
		}
		return err
	}
	if n, _ := res.RowsAffected(); n == 0 {
		// Zero rows can also mean an identical write; verify existence so
		// the caller gets a clean not-found.
		if _, err := r.GetByID(ctx, u.ID); err != nil {
			return err
		}
	}
	return nil
}

// Delete removes a user by id.
func (r *UserRepo) Delete(ctx context.Context, id uint64) error {
	res, err := r.db.ExecContext(ctx, "DELETE FROM users WHERE id=?", id)
	if err != nil {
		return err
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return ErrUserNotFound
	}
	return nil
}
