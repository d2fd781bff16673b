package admin

import (
	"context"
	"database/sql"

	"github.com/jmoiron/sqlx"
	"github.com/kishoregurjar/lyrics-web-backend-sub000/model"
)

type SQL struct {
	conn *sqlx.DB
}

type AdminRepository interface {
	Get(ctx context.Context, filter *model.AdminFilter) (*model.AdminEntity, error)
	Create(ctx context.Context, data *model.AdminEntity) error
	UpdateProfileTx(ctx context.Context, tx *sqlx.Tx, data *model.AdminEntity) error
	UpdatePasswordTx(ctx context.Context, tx *sqlx.Tx, id, passwordHash string) error
}

func NewAdminRepository(conn *sqlx.DB) AdminRepository {
	return &SQL{conn: conn}
}

const getAdminBase = `SELECT id, name, email, password_hash, avatar, role, otp, created_at, updated_at FROM admin WHERE true`

func (s *SQL) Get(ctx context.Context, filter *model.AdminFilter) (*model.AdminEntity, error) {
	query := getAdminBase
	args := make([]any, 0, 2)

	if filter.ID != "" {
		query += " AND id = ?"
		args = append(args, filter.ID)
	}
	if filter.Email != "" {
		query += " AND email = ?"
		args = append(args, filter.Email)
	}

	var entity model.AdminEntity
	if err := s.conn.QueryRowxContext(ctx, query, args...).StructScan(&entity); err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		return nil, err
	}
	return &entity, nil
}

// Create is used by the offline seed tool only.
func (s *SQL) Create(ctx context.Context, data *model.AdminEntity) error {
	_, err := s.conn.ExecContext(ctx,
		`INSERT INTO admin (id, name, email, password_hash, avatar, role, created_at) VALUES (?, ?, ?, ?, ?, ?, NOW())`,
		data.ID, data.Name, data.Email, data.PasswordHash, data.Avatar, data.Role)
	return err
}

func (s *SQL) UpdateProfileTx(ctx context.Context, tx *sqlx.Tx, data *model.AdminEntity) error {
	_, err := tx.ExecContext(ctx,
		`UPDATE admin SET name = ?, avatar = ?, updated_at = NOW() WHERE id = ?`,
		data.Name, data.Avatar, data.ID)
	return err
}

func (s *SQL) UpdatePasswordTx(ctx context.Context, tx *sqlx.Tx, id, passwordHash string) error {
	_, err := tx.ExecContext(ctx,
		`UPDATE admin SET password_hash = ?, updated_at = NOW() WHERE id = ?`, passwordHash, id)
	return err
}
