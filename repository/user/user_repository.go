package user

import (
	"context"
	"database/sql"
	"time"

	"github.com/jmoiron/sqlx"
	"github.com/kishoregurjar/lyrics-web-backend-sub000/model"
)

type SQL struct {
	conn *sqlx.DB
}

type UserRepository interface {
	Get(ctx context.Context, filter *model.UserFilter) (*model.UserEntity, error)
	GetTx(ctx context.Context, tx *sqlx.Tx, filter *model.UserFilter) (*model.UserEntity, error)
	CreateTx(ctx context.Context, tx *sqlx.Tx, data *model.UserEntity) error
	UpdateProfileTx(ctx context.Context, tx *sqlx.Tx, data *model.UserEntity) error
	UpdatePasswordTx(ctx context.Context, tx *sqlx.Tx, id, passwordHash string) error
	MarkVerifiedTx(ctx context.Context, tx *sqlx.Tx, id string) error
	TouchAPIHitTx(ctx context.Context, tx *sqlx.Tx, id string, at time.Time) error
}

func NewUserRepository(conn *sqlx.DB) UserRepository {
	return &SQL{conn: conn}
}

const (
	insertUserQuery = `INSERT INTO user (id, first_name, last_name, email, mobile, password_hash, avatar, is_active, is_verified, role, created_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, NOW())`
	getUserBase = `SELECT id, first_name, last_name, email, mobile, password_hash, avatar, is_active, is_verified, role, last_api_hit_time, created_at, updated_at
		FROM user WHERE true`
)

func buildUserFilter(filter *model.UserFilter) (string, []any) {
	query := getUserBase
	args := make([]any, 0, 2)

	if filter.ID != "" {
		query += " AND id = ?"
		args = append(args, filter.ID)
	}
	if filter.Email != "" {
		query += " AND email = ?"
		args = append(args, filter.Email)
	}
	return query, args
}

func (s *SQL) Get(ctx context.Context, filter *model.UserFilter) (*model.UserEntity, error) {
	query, args := buildUserFilter(filter)

	var entity model.UserEntity
	if err := s.conn.QueryRowxContext(ctx, query, args...).StructScan(&entity); err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		return nil, err
	}
	return &entity, nil
}

func (s *SQL) GetTx(ctx context.Context, tx *sqlx.Tx, filter *model.UserFilter) (*model.UserEntity, error) {
	query, args := buildUserFilter(filter)

	var entity model.UserEntity
	if err := tx.QueryRowxContext(ctx, query, args...).StructScan(&entity); err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		return nil, err
	}
	return &entity, nil
}

func (s *SQL) CreateTx(ctx context.Context, tx *sqlx.Tx, data *model.UserEntity) error {
	_, err := tx.ExecContext(ctx, insertUserQuery,
		data.ID, data.FirstName, data.LastName, data.Email, data.Mobile,
		data.PasswordHash, data.Avatar, data.IsActive, data.IsVerified, data.Role)
	return err
}

func (s *SQL) UpdateProfileTx(ctx context.Context, tx *sqlx.Tx, data *model.UserEntity) error {
	_, err := tx.ExecContext(ctx,
		`UPDATE user SET first_name = ?, last_name = ?, mobile = ?, avatar = ?, updated_at = NOW() WHERE id = ?`,
		data.FirstName, data.LastName, data.Mobile, data.Avatar, data.ID)
	return err
}

func (s *SQL) UpdatePasswordTx(ctx context.Context, tx *sqlx.Tx, id, passwordHash string) error {
	_, err := tx.ExecContext(ctx,
		`UPDATE user SET password_hash = ?, updated_at = NOW() WHERE id = ?`, passwordHash, id)
	return err
}

func (s *SQL) MarkVerifiedTx(ctx context.Context, tx *sqlx.Tx, id string) error {
	_, err := tx.ExecContext(ctx,
		`UPDATE user SET is_verified = true, updated_at = NOW() WHERE id = ?`, id)
	return err
}

func (s *SQL) TouchAPIHitTx(ctx context.Context, tx *sqlx.Tx, id string, at time.Time) error {
	_, err := tx.ExecContext(ctx,
		`UPDATE user SET last_api_hit_time = ? WHERE id = ?`, at, id)
	return err
}
