package feedback

import (
	"context"

	"github.com/jmoiron/sqlx"
	"github.com/kishoregurjar/lyrics-web-backend-sub000/model"
)

type SQL struct {
	conn *sqlx.DB
}

type FeedbackRepository interface {
	CreateTx(ctx context.Context, tx *sqlx.Tx, data *model.FeedbackEntity) error
	List(ctx context.Context) ([]model.FeedbackEntity, error)
}

func NewFeedbackRepository(conn *sqlx.DB) FeedbackRepository {
	return &SQL{conn: conn}
}

func (s *SQL) CreateTx(ctx context.Context, tx *sqlx.Tx, data *model.FeedbackEntity) error {
	_, err := tx.ExecContext(ctx,
		`INSERT INTO feedback (id, name, email, subject, message, created_at) VALUES (?, ?, ?, ?, ?, NOW())`,
		data.ID, data.Name, data.Email, data.Subject, data.Message)
	return err
}

func (s *SQL) List(ctx context.Context) ([]model.FeedbackEntity, error) {
	items := []model.FeedbackEntity{}
	err := s.conn.SelectContext(ctx, &items, `SELECT id, name, email, subject, message, created_at FROM feedback ORDER BY created_at DESC`)
	return items, err
}
