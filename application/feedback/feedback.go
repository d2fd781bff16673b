package feedback

import (
	"context"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/kishoregurjar/lyrics-web-backend-sub000/model"
	feedbackrepo "github.com/kishoregurjar/lyrics-web-backend-sub000/repository/feedback"
	txrepo "github.com/kishoregurjar/lyrics-web-backend-sub000/repository/tx"
	"github.com/kishoregurjar/lyrics-web-backend-sub000/utils/logger"
)

type FeedbackApp interface {
	Submit(ctx context.Context, req *model.SubmitFeedbackRequest) (*model.FeedbackEntity, error)
	List(ctx context.Context) ([]model.FeedbackEntity, error)
}

type feedbackAppImpl struct {
	txRepo       txrepo.TxRepository
	feedbackRepo feedbackrepo.FeedbackRepository
}

func NewFeedbackApp(txRepo txrepo.TxRepository, feedbackRepo feedbackrepo.FeedbackRepository) FeedbackApp {
	return &feedbackAppImpl{
		txRepo:       txRepo,
		feedbackRepo: feedbackRepo,
	}
}

func (s *feedbackAppImpl) Submit(ctx context.Context, req *model.SubmitFeedbackRequest) (*model.FeedbackEntity, error) {
	tx, err := s.txRepo.BeginTx(ctx)
	if err != nil {
		logger.Error("[SubmitFeedback] begin tx", zap.String("error", err.Error()))
		return nil, err
	}
	committed := false
	defer func() {
		if !committed {
			_ = s.txRepo.RollbackTx(tx)
		}
	}()

	entity := &model.FeedbackEntity{
		ID:      uuid.NewString(),
		Name:    req.Name,
		Email:   req.Email,
		Subject: req.Subject,
		Message: req.Message,
	}

	if err := s.feedbackRepo.CreateTx(ctx, tx, entity); err != nil {
		logger.Error("[SubmitFeedback] create", zap.String("error", err.Error()))
		return nil, err
	}

	if err := s.txRepo.CommitTx(tx); err != nil {
		logger.Error("[SubmitFeedback] commit tx", zap.String("error", err.Error()))
		return nil, err
	}
	committed = true
	return entity, nil
}

func (s *feedbackAppImpl) List(ctx context.Context) ([]model.FeedbackEntity, error) {
	items, err := s.feedbackRepo.List(ctx)
	if err != nil {
		logger.Error("[ListFeedback] list", zap.String("error", err.Error()))
		return nil, err
	}
	return items, nil
}
